package confluence_test

import (
	"context"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/grandcamel/confluence-assistant-skills/pkg/client"
	"github.com/grandcamel/confluence-assistant-skills/pkg/routetest"
)

var _ = Describe("Spaces", func() {
	Describe("ListSpaces", func() {
		It("walks cursor pagination and honors the item limit", func() {
			srv := routetest.NewServer(routetest.Route{
				Method:  http.MethodGet,
				Pattern: "/api/v2/spaces",
				Handler: func(w http.ResponseWriter, r *http.Request, _ []string) {
					if r.URL.Query().Get("cursor") == "" {
						routetest.WriteJSON(w, 200, map[string]any{
							"results": []any{
								map[string]any{"id": "1", "key": "DEV", "name": "Development"},
								map[string]any{"id": "2", "key": "OPS", "name": "Operations"},
							},
							"_links": map[string]any{"next": "/api/v2/spaces?cursor=abc"},
						})
						return
					}
					routetest.WriteJSON(w, 200, map[string]any{
						"results": []any{
							map[string]any{"id": "3", "key": "DOC", "name": "Documentation"},
						},
					})
				},
			})
			defer srv.Close()

			spaces, err := newService(srv).ListSpaces(context.Background(), 3)
			Expect(err).NotTo(HaveOccurred())
			Expect(spaces).To(HaveLen(3))
			Expect(spaces[0].Key).To(Equal("DEV"))
			Expect(spaces[2].Key).To(Equal("DOC"))
			Expect(srv.Requests()).To(Equal(2))
		})
	})

	Describe("GetSpace", func() {
		It("filters by key and returns the match", func() {
			srv := routetest.NewServer(routetest.Route{
				Method:  http.MethodGet,
				Pattern: "/api/v2/spaces",
				Handler: func(w http.ResponseWriter, r *http.Request, _ []string) {
					Expect(r.URL.Query().Get("keys")).To(Equal("DEV"))
					routetest.WriteJSON(w, 200, map[string]any{
						"results": []any{
							map[string]any{"id": "1", "key": "DEV", "name": "Development", "type": "global"},
						},
					})
				},
			})
			defer srv.Close()

			space, err := newService(srv).GetSpace(context.Background(), "DEV")
			Expect(err).NotTo(HaveOccurred())
			Expect(space.Name).To(Equal("Development"))
			Expect(space.Type).To(Equal("global"))
		})

		It("maps an empty result list to ErrNotFound", func() {
			srv := routetest.NewServer(routetest.Route{
				Method:  http.MethodGet,
				Pattern: "/api/v2/spaces",
				Handler: func(w http.ResponseWriter, _ *http.Request, _ []string) {
					routetest.WriteJSON(w, 200, map[string]any{"results": []any{}})
				},
			})
			defer srv.Close()

			_, err := newService(srv).GetSpace(context.Background(), "GHOST")
			Expect(err).To(MatchError(client.ErrNotFound))
		})
	})
})
