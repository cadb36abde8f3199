package confluence_test

import (
	"context"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/grandcamel/confluence-assistant-skills/pkg/routetest"
)

// treeServer serves a fixed hierarchy: 1 -> (2, 3), 2 -> (4).
func treeServer() *routetest.Server {
	children := map[string][]any{
		"1": {pageDoc("2", "Child A", 1), pageDoc("3", "Child B", 1)},
		"2": {pageDoc("4", "Grandchild", 1)},
	}

	return routetest.NewServer(
		routetest.Route{
			Method:  http.MethodGet,
			Pattern: `/api/v2/pages/(\d+)/children`,
			Handler: func(w http.ResponseWriter, _ *http.Request, matches []string) {
				results := children[matches[1]]
				if results == nil {
					results = []any{}
				}
				routetest.WriteJSON(w, 200, map[string]any{"results": results})
			},
		},
		routetest.Route{
			Method:  http.MethodGet,
			Pattern: `/api/v2/pages/(\d+)`,
			Handler: func(w http.ResponseWriter, _ *http.Request, matches []string) {
				routetest.WriteJSON(w, 200, pageDoc(matches[1], "Root", 1))
			},
		},
	)
}

var _ = Describe("PageTree", func() {
	It("builds the hierarchy depth-first in server order", func() {
		srv := treeServer()
		defer srv.Close()

		tree, err := newService(srv).PageTree(context.Background(), "1", 0)
		Expect(err).NotTo(HaveOccurred())

		Expect(tree.Page.ID).To(Equal("1"))
		Expect(tree.Children).To(HaveLen(2))
		Expect(tree.Children[0].Page.Title).To(Equal("Child A"))
		Expect(tree.Children[1].Page.Title).To(Equal("Child B"))
		Expect(tree.Children[0].Children).To(HaveLen(1))
		Expect(tree.Children[0].Children[0].Page.Title).To(Equal("Grandchild"))
		Expect(tree.Children[1].Children).To(BeEmpty())
	})

	It("stops descending at the depth bound", func() {
		srv := treeServer()
		defer srv.Close()

		tree, err := newService(srv).PageTree(context.Background(), "1", 1)
		Expect(err).NotTo(HaveOccurred())

		Expect(tree.Children).To(HaveLen(2))
		Expect(tree.Children[0].Children).To(BeEmpty())
	})
})

var _ = Describe("Descendants", func() {
	It("flattens the tree excluding the root", func() {
		srv := treeServer()
		defer srv.Close()

		pages, err := newService(srv).Descendants(context.Background(), "1", 0)
		Expect(err).NotTo(HaveOccurred())

		ids := make([]string, len(pages))
		for i, p := range pages {
			ids[i] = p.ID
		}
		Expect(ids).To(Equal([]string{"2", "4", "3"}))
	})
})
