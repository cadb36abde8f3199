package confluence

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/grandcamel/confluence-assistant-skills/pkg/client"
)

// ListFooterComments returns the footer comments on a page in server order.
func (s *Service) ListFooterComments(ctx context.Context, pageID string) ([]Comment, error) {
	if err := ValidateID(pageID); err != nil {
		return nil, err
	}

	params := url.Values{"body-format": {"storage"}}

	var comments []Comment
	for doc, err := range s.api.Paginate(ctx, "/api/v2/pages/"+pageID+"/footer-comments", params, client.PaginateOptions{}) {
		if err != nil {
			return nil, err
		}
		comments = append(comments, commentFromDoc(doc))
	}

	return comments, nil
}

// AddFooterComment posts a new footer comment with a storage-format body.
func (s *Service) AddFooterComment(ctx context.Context, pageID, body string) (Comment, error) {
	if err := ValidateID(pageID); err != nil {
		return Comment{}, err
	}
	if strings.TrimSpace(body) == "" {
		return Comment{}, fmt.Errorf("%w: comment body is required", client.ErrValidation)
	}

	doc, err := s.api.Post(ctx, "/api/v2/footer-comments", map[string]any{
		"pageId": pageID,
		"body": map[string]any{
			"representation": "storage",
			"value":          body,
		},
	})
	if err != nil {
		return Comment{}, err
	}

	comment := commentFromDoc(doc)
	s.log.Debug("added comment", "page", pageID, "comment", comment.ID)
	return comment, nil
}
