package confluence

import (
	"context"
	"fmt"
	"net/url"
	"slices"

	"github.com/grandcamel/confluence-assistant-skills/pkg/client"
)

// ListRestrictions returns the read/update restrictions on a page, one
// Restriction per operation.
func (s *Service) ListRestrictions(ctx context.Context, pageID string) ([]Restriction, error) {
	if err := ValidateID(pageID); err != nil {
		return nil, err
	}

	doc, err := s.api.Get(ctx, "/rest/api/content/"+pageID+"/restriction/byOperation", nil)
	if err != nil {
		return nil, err
	}

	var restrictions []Restriction
	for _, op := range []string{"read", "update"} {
		entry, ok := doc[op].(map[string]any)
		if !ok {
			continue
		}
		restrictions = append(restrictions, restrictionFromDoc(op, entry))
	}

	return restrictions, nil
}

// AddUserRestriction grants accountID the given operation ("read" or
// "update") on a page, skipping the write when the user already holds it.
// The check and the write are two requests; a concurrent writer between
// them is not detected.
func (s *Service) AddUserRestriction(ctx context.Context, pageID, operation, accountID string) (added bool, err error) {
	if err := ValidateID(pageID); err != nil {
		return false, err
	}
	if operation != "read" && operation != "update" {
		return false, fmt.Errorf("%w: operation must be read or update, got %q", client.ErrValidation, operation)
	}
	if accountID == "" {
		return false, fmt.Errorf("%w: account ID is required", client.ErrValidation)
	}

	existing, err := s.ListRestrictions(ctx, pageID)
	if err != nil {
		return false, err
	}
	for _, r := range existing {
		if r.Operation == operation && slices.Contains(r.Users, accountID) {
			s.log.Debug("restriction already present", "page", pageID, "operation", operation, "user", accountID)
			return false, nil
		}
	}

	path := fmt.Sprintf("/rest/api/content/%s/restriction/byOperation/%s/user", pageID, operation)
	query := url.Values{"accountId": {accountID}}
	if _, err := s.api.Put(ctx, path+"?"+query.Encode(), nil); err != nil {
		return false, err
	}

	s.log.Debug("added restriction", "page", pageID, "operation", operation, "user", accountID)
	return true, nil
}

func restrictionFromDoc(operation string, entry map[string]any) Restriction {
	r := Restriction{Operation: operation}

	restrictions, _ := entry["restrictions"].(map[string]any)
	if users, ok := restrictions["user"].(map[string]any); ok {
		for _, u := range pageResults(users) {
			if user, ok := u.(map[string]any); ok {
				r.Users = append(r.Users, str(user, "accountId"))
			}
		}
	}
	if groups, ok := restrictions["group"].(map[string]any); ok {
		for _, g := range pageResults(groups) {
			if group, ok := g.(map[string]any); ok {
				r.Groups = append(r.Groups, str(group, "name"))
			}
		}
	}

	return r
}

func pageResults(doc map[string]any) []any {
	results, _ := doc["results"].([]any)
	return results
}
