package client

import (
	"context"
	"fmt"
	"iter"
	"net/url"
	"strconv"
)

// PaginateOptions tunes a Paginate call.
type PaginateOptions struct {
	// Limit stops iteration after this many items. Zero means no limit.
	Limit int
}

// Paginate walks a paginated collection endpoint and yields one Document per
// element of each page's "results" array. Pages are fetched strictly in
// order, one at a time, only as the consumer advances — there is no
// pre-fetching, so abandoning the iterator stops all further requests.
//
// Continuation follows whichever mechanism the response carries: the v2
// `_links.next` URL (cursor-based, site-root-relative links resolve against
// the base URL's scheme and host), or v1 `start`/`limit` offsets when the
// page reports a full `size`. Iteration ends when a page has no
// results, no continuation is present, or the item limit is reached.
//
// A fetch failure mid-iteration yields (nil, err) carrying the same typed
// error a single Get would produce; items from earlier pages have already
// been yielded by then and remain valid.
func (c *Client) Paginate(ctx context.Context, path string, params url.Values, opts PaginateOptions) iter.Seq2[Document, error] {
	return func(yield func(Document, error) bool) {
		nextPath := path
		nextParams := cloneValues(params)
		yielded := 0

		for {
			page, err := c.Get(ctx, nextPath, nextParams)
			if err != nil {
				yield(nil, err)
				return
			}

			results := pageResults(page)
			for _, item := range results {
				doc, ok := item.(map[string]any)
				if !ok {
					yield(nil, fmt.Errorf("%w: unexpected result element of type %T", ErrAPI, item))
					return
				}
				if !yield(doc, nil) {
					return
				}
				yielded++
				if opts.Limit > 0 && yielded >= opts.Limit {
					return
				}
			}

			if len(results) == 0 {
				return
			}

			next, ok := nextPage(page, nextPath, nextParams, len(results))
			if !ok {
				return
			}

			// _links.next already encodes the cursor query and is
			// site-root-relative; offset-based continuation carries
			// adjusted params instead.
			if next.link {
				resolved, err := c.resolveLink(next.path)
				if err != nil {
					yield(nil, err)
					return
				}
				nextPath = resolved
				nextParams = nil
			} else {
				nextPath = next.path
				nextParams = next.params
			}
		}
	}
}

type continuation struct {
	path   string
	params url.Values
	link   bool
}

// nextPage extracts the continuation for the following page, preferring the
// cursor-style _links.next URL over v1 start/limit offsets.
func nextPage(page Document, curPath string, params url.Values, pageLen int) (continuation, bool) {
	if links, ok := page["_links"].(map[string]any); ok {
		if next, ok := links["next"].(string); ok && next != "" {
			return continuation{path: next, link: true}, true
		}
	}

	// v1 offset pagination: only continue when the server filled the page.
	size, hasSize := intField(page, "size")
	limit, hasLimit := intField(page, "limit")
	start, _ := intField(page, "start")
	if hasSize && hasLimit && limit > 0 && size >= limit {
		next := cloneValues(params)
		next.Set("start", strconv.Itoa(start+pageLen))
		return continuation{path: curPath, params: next}, true
	}

	return continuation{}, false
}

// pageResults returns the "results" array of a page, or nil when absent.
func pageResults(page Document) []any {
	results, _ := page["results"].([]any)
	return results
}

func intField(doc Document, key string) (int, bool) {
	switch v := doc[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for key, values := range v {
		out[key] = append([]string(nil), values...)
	}
	return out
}
