package confluence

import (
	"context"
	"fmt"
	"strings"

	"github.com/grandcamel/confluence-assistant-skills/pkg/client"
)

// ListLabels returns the labels on a piece of content.
func (s *Service) ListLabels(ctx context.Context, pageID string) ([]Label, error) {
	if err := ValidateID(pageID); err != nil {
		return nil, err
	}

	var labels []Label
	for doc, err := range s.api.Paginate(ctx, "/rest/api/content/"+pageID+"/label", nil, client.PaginateOptions{}) {
		if err != nil {
			return nil, err
		}
		labels = append(labels, labelFromDoc(doc))
	}

	return labels, nil
}

// AddLabel attaches a global label to content, skipping the write when the
// label is already present. The presence check and the write are two
// requests; a concurrent writer between them is not detected.
func (s *Service) AddLabel(ctx context.Context, pageID, name string) (added bool, err error) {
	if err := ValidateID(pageID); err != nil {
		return false, err
	}
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return false, fmt.Errorf("%w: label name is required", client.ErrValidation)
	}

	existing, err := s.ListLabels(ctx, pageID)
	if err != nil {
		return false, err
	}
	for _, label := range existing {
		if label.Name == name {
			s.log.Debug("label already present", "page", pageID, "label", name)
			return false, nil
		}
	}

	_, err = s.api.Post(ctx, "/rest/api/content/"+pageID+"/label", []map[string]string{
		{"prefix": "global", "name": name},
	})
	if err != nil {
		return false, err
	}

	s.log.Debug("added label", "page", pageID, "label", name)
	return true, nil
}

// RemoveLabel detaches a label from content. Removing an absent label
// returns ErrNotFound from the server.
func (s *Service) RemoveLabel(ctx context.Context, pageID, name string) error {
	if err := ValidateID(pageID); err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: label name is required", client.ErrValidation)
	}

	_, err := s.api.Delete(ctx, "/rest/api/content/"+pageID+"/label/"+name)
	return err
}
