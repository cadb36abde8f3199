package confluence

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/grandcamel/confluence-assistant-skills/pkg/client"
)

// ListSpaces returns up to limit spaces (all when limit is zero), in server
// order, walking the v2 cursor pagination.
func (s *Service) ListSpaces(ctx context.Context, limit int) ([]Space, error) {
	params := url.Values{}
	if limit > 0 && limit < 25 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var spaces []Space
	for doc, err := range s.api.Paginate(ctx, "/api/v2/spaces", params, client.PaginateOptions{Limit: limit}) {
		if err != nil {
			return nil, err
		}
		spaces = append(spaces, spaceFromDoc(doc))
	}

	s.log.Debug("listed spaces", "count", len(spaces))
	return spaces, nil
}

// GetSpace looks up a single space by key.
func (s *Service) GetSpace(ctx context.Context, key string) (Space, error) {
	if err := ValidateSpaceKey(key); err != nil {
		return Space{}, err
	}

	doc, err := s.api.Get(ctx, "/api/v2/spaces", url.Values{"keys": {key}})
	if err != nil {
		return Space{}, err
	}

	results, _ := doc["results"].([]any)
	if len(results) == 0 {
		return Space{}, fmt.Errorf("%w: space %q", client.ErrNotFound, key)
	}

	first, ok := results[0].(map[string]any)
	if !ok {
		return Space{}, fmt.Errorf("%w: unexpected space payload", client.ErrAPI)
	}

	return spaceFromDoc(first), nil
}
