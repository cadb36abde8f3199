package confluence

import (
	"context"
	"fmt"
	"net/url"

	"github.com/grandcamel/confluence-assistant-skills/pkg/client"
)

// GetPage fetches a page by ID with its storage-format body.
func (s *Service) GetPage(ctx context.Context, id string) (Page, error) {
	if err := ValidateID(id); err != nil {
		return Page{}, err
	}

	doc, err := s.api.Get(ctx, "/api/v2/pages/"+id, url.Values{"body-format": {"storage"}})
	if err != nil {
		return Page{}, err
	}

	return pageFromDoc(doc), nil
}

// GetPageBody returns just the storage-format body of a page.
func (s *Service) GetPageBody(ctx context.Context, id string) (string, error) {
	page, err := s.GetPage(ctx, id)
	if err != nil {
		return "", err
	}
	return page.Body, nil
}

// CreatePage creates a page in spaceID, optionally under parentID, with a
// storage-format body.
func (s *Service) CreatePage(ctx context.Context, spaceID, title, body, parentID string) (Page, error) {
	if err := ValidateID(spaceID); err != nil {
		return Page{}, err
	}
	if err := ValidateTitle(title); err != nil {
		return Page{}, err
	}
	if parentID != "" {
		if err := ValidateID(parentID); err != nil {
			return Page{}, err
		}
	}

	payload := map[string]any{
		"spaceId": spaceID,
		"status":  "current",
		"title":   title,
		"body": map[string]any{
			"representation": "storage",
			"value":          body,
		},
	}
	if parentID != "" {
		payload["parentId"] = parentID
	}

	doc, err := s.api.Post(ctx, "/api/v2/pages", payload)
	if err != nil {
		return Page{}, err
	}

	page := pageFromDoc(doc)
	s.log.Debug("created page", "id", page.ID, "title", page.Title)
	return page, nil
}

// UpdatePage replaces a page's title and body. The current version is fetched
// first and bumped by one; a concurrent edit between the fetch and the PUT
// surfaces as ErrConflict from the server.
func (s *Service) UpdatePage(ctx context.Context, id, title, body string) (Page, error) {
	if err := ValidateID(id); err != nil {
		return Page{}, err
	}
	if err := ValidateTitle(title); err != nil {
		return Page{}, err
	}

	current, err := s.GetPage(ctx, id)
	if err != nil {
		return Page{}, err
	}

	payload := map[string]any{
		"id":     id,
		"status": "current",
		"title":  title,
		"body": map[string]any{
			"representation": "storage",
			"value":          body,
		},
		"version": map[string]any{
			"number": current.Version + 1,
		},
	}

	doc, err := s.api.Put(ctx, "/api/v2/pages/"+id, payload)
	if err != nil {
		return Page{}, err
	}

	page := pageFromDoc(doc)
	s.log.Debug("updated page", "id", page.ID, "version", page.Version)
	return page, nil
}

// DeletePage deletes a page by ID. Deleting twice returns ErrNotFound.
func (s *Service) DeletePage(ctx context.Context, id string) error {
	if err := ValidateID(id); err != nil {
		return err
	}

	if _, err := s.api.Delete(ctx, "/api/v2/pages/"+id); err != nil {
		return err
	}

	s.log.Debug("deleted page", "id", id)
	return nil
}

// ChildPages returns the direct children of a page in server order.
func (s *Service) ChildPages(ctx context.Context, id string) ([]Page, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}

	var pages []Page
	for doc, err := range s.api.Paginate(ctx, "/api/v2/pages/"+id+"/children", nil, client.PaginateOptions{}) {
		if err != nil {
			return nil, err
		}
		pages = append(pages, pageFromDoc(doc))
	}

	return pages, nil
}

// FindPageByTitle locates a page by exact title within a space.
func (s *Service) FindPageByTitle(ctx context.Context, spaceID, title string) (Page, error) {
	if err := ValidateID(spaceID); err != nil {
		return Page{}, err
	}
	if err := ValidateTitle(title); err != nil {
		return Page{}, err
	}

	doc, err := s.api.Get(ctx, "/api/v2/pages", url.Values{
		"space-id": {spaceID},
		"title":    {title},
	})
	if err != nil {
		return Page{}, err
	}

	results, _ := doc["results"].([]any)
	if len(results) == 0 {
		return Page{}, fmt.Errorf("%w: page %q in space %s", client.ErrNotFound, title, spaceID)
	}

	first, ok := results[0].(map[string]any)
	if !ok {
		return Page{}, fmt.Errorf("%w: unexpected page payload", client.ErrAPI)
	}

	return pageFromDoc(first), nil
}
