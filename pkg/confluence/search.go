package confluence

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/grandcamel/confluence-assistant-skills/pkg/client"
)

// SearchCQL runs a CQL query against the v1 search endpoint and returns up
// to limit results (server default when zero).
func (s *Service) SearchCQL(ctx context.Context, cql string, limit int) ([]SearchResult, error) {
	if strings.TrimSpace(cql) == "" {
		return nil, fmt.Errorf("%w: CQL query is required", client.ErrValidation)
	}

	params := url.Values{"cql": {cql}}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var results []SearchResult
	for doc, err := range s.api.Paginate(ctx, "/rest/api/search", params, client.PaginateOptions{Limit: limit}) {
		if err != nil {
			return nil, err
		}
		results = append(results, searchResultFromDoc(doc))
	}

	s.log.Debug("cql search", "query", cql, "results", len(results))
	return results, nil
}

func searchResultFromDoc(doc client.Document) SearchResult {
	r := SearchResult{
		Title:   str(doc, "title"),
		Excerpt: str(doc, "excerpt"),
	}
	if content, ok := doc["content"].(map[string]any); ok {
		r.ID = str(content, "id")
		r.Type = str(content, "type")
		if r.Title == "" {
			r.Title = str(content, "title")
		}
	}
	return r
}
