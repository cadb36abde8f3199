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

func labelListRoute(names ...string) routetest.Route {
	return routetest.Route{
		Method:  http.MethodGet,
		Pattern: "/rest/api/content/42/label",
		Handler: func(w http.ResponseWriter, _ *http.Request, _ []string) {
			results := make([]any, len(names))
			for i, name := range names {
				results[i] = map[string]any{"id": name, "name": name, "prefix": "global"}
			}
			routetest.WriteJSON(w, 200, map[string]any{"results": results, "size": len(results)})
		},
	}
}

var _ = Describe("Labels", func() {
	Describe("ListLabels", func() {
		It("returns the labels in server order", func() {
			srv := routetest.NewServer(labelListRoute("docs", "runbook"))
			defer srv.Close()

			labels, err := newService(srv).ListLabels(context.Background(), "42")
			Expect(err).NotTo(HaveOccurred())
			Expect(labels).To(HaveLen(2))
			Expect(labels[0].Name).To(Equal("docs"))
			Expect(labels[1].Name).To(Equal("runbook"))
		})
	})

	Describe("AddLabel", func() {
		It("skips the write when the label is already present", func() {
			srv := routetest.NewServer(labelListRoute("docs"))
			defer srv.Close()

			added, err := newService(srv).AddLabel(context.Background(), "42", "docs")
			Expect(err).NotTo(HaveOccurred())
			Expect(added).To(BeFalse())
			Expect(srv.Requests()).To(Equal(1))
		})

		It("posts a global label when absent", func() {
			var payload []map[string]string
			srv := routetest.NewServer(
				labelListRoute("docs"),
				routetest.Route{
					Method:  http.MethodPost,
					Pattern: "/rest/api/content/42/label",
					Handler: func(w http.ResponseWriter, r *http.Request, _ []string) {
						Expect(json.NewDecoder(r.Body).Decode(&payload)).To(Succeed())
						routetest.WriteJSON(w, 200, map[string]any{"results": []any{}})
					},
				},
			)
			defer srv.Close()

			added, err := newService(srv).AddLabel(context.Background(), "42", "Runbook")
			Expect(err).NotTo(HaveOccurred())
			Expect(added).To(BeTrue())

			Expect(payload).To(HaveLen(1))
			Expect(payload[0]["prefix"]).To(Equal("global"))
			Expect(payload[0]["name"]).To(Equal("runbook"))
		})

		It("rejects a blank name before any request", func() {
			srv := routetest.NewServer()
			defer srv.Close()

			_, err := newService(srv).AddLabel(context.Background(), "42", "   ")
			Expect(err).To(MatchError(client.ErrValidation))
			Expect(srv.Requests()).To(Equal(0))
		})
	})

	Describe("RemoveLabel", func() {
		It("propagates ErrNotFound for an absent label", func() {
			srv := routetest.NewServer(routetest.Route{
				Method:  http.MethodDelete,
				Pattern: "/rest/api/content/42/label/ghost",
				Handler: func(w http.ResponseWriter, _ *http.Request, _ []string) {
					routetest.WriteError(w, http.StatusNotFound, "label not found")
				},
			})
			defer srv.Close()

			err := newService(srv).RemoveLabel(context.Background(), "42", "ghost")
			Expect(err).To(MatchError(client.ErrNotFound))
		})
	})
})
