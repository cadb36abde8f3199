package confluence_test

import (
	"context"
	"encoding/json"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/grandcamel/confluence-assistant-skills/pkg/client"
	"github.com/grandcamel/confluence-assistant-skills/pkg/routetest"
)

var _ = Describe("Comments", func() {
	Describe("ListFooterComments", func() {
		It("requests storage bodies and narrows them", func() {
			srv := routetest.NewServer(routetest.Route{
				Method:  http.MethodGet,
				Pattern: "/api/v2/pages/42/footer-comments",
				Handler: func(w http.ResponseWriter, r *http.Request, _ []string) {
					Expect(r.URL.Query().Get("body-format")).To(Equal("storage"))
					routetest.WriteJSON(w, 200, map[string]any{
						"results": []any{
							map[string]any{
								"id":        "c1",
								"createdAt": "2026-01-05T10:00:00Z",
								"body": map[string]any{
									"storage": map[string]any{"value": "<p>LGTM</p>"},
								},
							},
						},
					})
				},
			})
			defer srv.Close()

			comments, err := newService(srv).ListFooterComments(context.Background(), "42")
			Expect(err).NotTo(HaveOccurred())
			Expect(comments).To(HaveLen(1))
			Expect(comments[0].ID).To(Equal("c1"))
			Expect(comments[0].Body).To(Equal("<p>LGTM</p>"))
		})
	})

	Describe("AddFooterComment", func() {
		It("posts a storage-format body for the page", func() {
			var payload map[string]any
			srv := routetest.NewServer(routetest.Route{
				Method:  http.MethodPost,
				Pattern: "/api/v2/footer-comments",
				Handler: func(w http.ResponseWriter, r *http.Request, _ []string) {
					Expect(json.NewDecoder(r.Body).Decode(&payload)).To(Succeed())
					routetest.WriteJSON(w, 200, map[string]any{"id": "c2"})
				},
			})
			defer srv.Close()

			comment, err := newService(srv).AddFooterComment(context.Background(), "42", "<p>ship it</p>")
			Expect(err).NotTo(HaveOccurred())
			Expect(comment.ID).To(Equal("c2"))

			Expect(payload["pageId"]).To(Equal("42"))
			body := payload["body"].(map[string]any)
			Expect(body["representation"]).To(Equal("storage"))
		})

		It("rejects an empty body before any request", func() {
			srv := routetest.NewServer()
			defer srv.Close()

			_, err := newService(srv).AddFooterComment(context.Background(), "42", "")
			Expect(err).To(MatchError(client.ErrValidation))
			Expect(srv.Requests()).To(Equal(0))
		})
	})
})
