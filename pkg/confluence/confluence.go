// Package confluence implements the skill operations on top of the client
// facade: one method per CLI skill, each narrowing the generic JSON
// documents into the small typed views the commands display.
package confluence

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/grandcamel/confluence-assistant-skills/pkg/client"
)

const maxTitleLength = 255

// Service exposes the skill operations. It holds no state beyond the facade
// and a logger; one instance is created per CLI invocation.
type Service struct {
	api *client.Client
	log *slog.Logger
}

// NewService wraps an API client. A nil logger panics in slog; pass
// logger.Nop() when output is unwanted.
func NewService(api *client.Client, log *slog.Logger) *Service {
	return &Service{api: api, log: log}
}

// ValidateID checks that id is a non-empty numeric content ID. Runs before
// any network call.
func ValidateID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: content ID is required", client.ErrValidation)
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: content ID %q must be numeric", client.ErrValidation, id)
		}
	}
	return nil
}

// ValidateTitle checks that a page title is non-empty and within Confluence's
// length limit.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title is required", client.ErrValidation)
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return fmt.Errorf("%w: title exceeds %d characters", client.ErrValidation, maxTitleLength)
	}
	return nil
}

// ValidateSpaceKey checks the shape of a space key (uppercase alphanumeric).
func ValidateSpaceKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: space key is required", client.ErrValidation)
	}
	for _, r := range key {
		isUpper := r >= 'A' && r <= 'Z'
		isDigit := r >= '0' && r <= '9'
		if !isUpper && !isDigit {
			return fmt.Errorf("%w: space key %q must be uppercase alphanumeric", client.ErrValidation, key)
		}
	}
	return nil
}
