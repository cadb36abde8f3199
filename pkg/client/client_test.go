package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/grandcamel/confluence-assistant-skills/pkg/client"
	"github.com/grandcamel/confluence-assistant-skills/pkg/routetest"
)

var _ = Describe("Client", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	newClient := func(baseURL string) *client.Client {
		c, err := client.New(client.Config{
			BaseURL:  baseURL,
			Email:    "dev@example.com",
			APIToken: "token",
		})
		Expect(err).NotTo(HaveOccurred())
		return c
	}

	Describe("New", func() {
		It("performs no network calls during construction", func() {
			server := routetest.NewServer()
			defer server.Close()

			_ = newClient(server.URL)
			Expect(server.Requests()).To(BeZero())
		})

		It("rejects an empty base URL", func() {
			_, err := client.New(client.Config{})
			Expect(err).To(MatchError(client.ErrValidation))
		})

		It("trims a trailing slash from the base URL", func() {
			c := newClient("https://example.atlassian.net/wiki/")
			Expect(c.BaseURL()).To(Equal("https://example.atlassian.net/wiki"))
		})
	})

	Describe("error classification", func() {
		statusServer := func(status int) *routetest.Server {
			return routetest.NewServer(routetest.Route{
				Method:  http.MethodGet,
				Pattern: "/rest/api/content/123",
				Handler: func(w http.ResponseWriter, _ *http.Request, _ []string) {
					routetest.WriteError(w, status, "server says no")
				},
			})
		}

		It("maps 404 to ErrNotFound with the status code", func() {
			server := statusServer(404)
			defer server.Close()

			_, err := newClient(server.URL).Get(ctx, "/rest/api/content/123", nil)
			Expect(err).To(MatchError(client.ErrNotFound))

			var statusErr *client.StatusError
			Expect(errors.As(err, &statusErr)).To(BeTrue())
			Expect(statusErr.StatusCode).To(Equal(404))
			Expect(statusErr.Message).To(Equal("server says no"))
		})

		It("maps 401 to ErrPermission", func() {
			server := statusServer(401)
			defer server.Close()

			_, err := newClient(server.URL).Get(ctx, "/rest/api/content/123", nil)
			Expect(err).To(MatchError(client.ErrPermission))
		})

		It("maps 403 to ErrPermission", func() {
			server := statusServer(403)
			defer server.Close()

			_, err := newClient(server.URL).Get(ctx, "/rest/api/content/123", nil)
			Expect(err).To(MatchError(client.ErrPermission))
		})

		It("maps 409 to ErrConflict", func() {
			server := statusServer(409)
			defer server.Close()

			_, err := newClient(server.URL).Get(ctx, "/rest/api/content/123", nil)
			Expect(err).To(MatchError(client.ErrConflict))
		})

		It("maps 400 to ErrValidation", func() {
			server := statusServer(400)
			defer server.Close()

			_, err := newClient(server.URL).Get(ctx, "/rest/api/content/123", nil)
			Expect(err).To(MatchError(client.ErrValidation))
		})

		It("maps 422 to ErrValidation", func() {
			server := statusServer(422)
			defer server.Close()

			_, err := newClient(server.URL).Get(ctx, "/rest/api/content/123", nil)
			Expect(err).To(MatchError(client.ErrValidation))
		})

		It("maps 500 to ErrAPI", func() {
			server := statusServer(500)
			defer server.Close()

			_, err := newClient(server.URL).Get(ctx, "/rest/api/content/123", nil)
			Expect(err).To(MatchError(client.ErrAPI))
		})

		It("keeps the raw body when it is not JSON", func() {
			server := routetest.NewServer(routetest.Route{
				Method:  http.MethodGet,
				Pattern: "/rest/api/content/123",
				Handler: func(w http.ResponseWriter, _ *http.Request, _ []string) {
					w.WriteHeader(http.StatusBadGateway)
					_, _ = w.Write([]byte("upstream exploded"))
				},
			})
			defer server.Close()

			_, err := newClient(server.URL).Get(ctx, "/rest/api/content/123", nil)
			Expect(err).To(MatchError(client.ErrAPI))

			var statusErr *client.StatusError
			Expect(errors.As(err, &statusErr)).To(BeTrue())
			Expect(statusErr.Body).To(Equal("upstream exploded"))
		})

		It("maps transport failures to ErrAPI", func() {
			c := newClient("http://127.0.0.1:1")
			_, err := c.Get(ctx, "/rest/api/content/123", nil)
			Expect(err).To(MatchError(client.ErrAPI))
		})
	})

	Describe("verbs", func() {
		It("sends query parameters on Get", func() {
			var gotQuery url.Values
			server := routetest.NewServer(routetest.Route{
				Method:  http.MethodGet,
				Pattern: "/api/v2/pages",
				Handler: func(w http.ResponseWriter, r *http.Request, _ []string) {
					gotQuery = r.URL.Query()
					routetest.WriteJSON(w, 200, map[string]any{"results": []any{}})
				},
			})
			defer server.Close()

			_, err := newClient(server.URL).Get(ctx, "/api/v2/pages", url.Values{"title": {"Home"}})
			Expect(err).NotTo(HaveOccurred())
			Expect(gotQuery.Get("title")).To(Equal("Home"))
		})

		It("sends a JSON body on Post and decodes the response", func() {
			server := routetest.NewServer(routetest.Route{
				Method:  http.MethodPost,
				Pattern: "/api/v2/pages",
				Handler: func(w http.ResponseWriter, r *http.Request, _ []string) {
					Expect(r.Header.Get("Content-Type")).To(Equal("application/json"))
					routetest.WriteJSON(w, 200, map[string]any{"id": "99"})
				},
			})
			defer server.Close()

			doc, err := newClient(server.URL).Post(ctx, "/api/v2/pages", map[string]any{"title": "New"})
			Expect(err).NotTo(HaveOccurred())
			Expect(doc["id"]).To(Equal("99"))
		})

		It("returns nil for an empty Delete response", func() {
			server := routetest.NewServer(routetest.Route{
				Method:  http.MethodDelete,
				Pattern: "/api/v2/pages/7",
				Handler: func(w http.ResponseWriter, _ *http.Request, _ []string) {
					w.WriteHeader(http.StatusNoContent)
				},
			})
			defer server.Close()

			doc, err := newClient(server.URL).Delete(ctx, "/api/v2/pages/7")
			Expect(err).NotTo(HaveOccurred())
			Expect(doc).To(BeNil())
		})

		It("returns ErrNotFound on the second delete of the same resource", func() {
			deleted := false
			server := routetest.NewServer(routetest.Route{
				Method:  http.MethodDelete,
				Pattern: "/api/v2/pages/7",
				Handler: func(w http.ResponseWriter, _ *http.Request, _ []string) {
					if deleted {
						routetest.WriteError(w, 404, "page already removed")
						return
					}
					deleted = true
					w.WriteHeader(http.StatusNoContent)
				},
			})
			defer server.Close()

			c := newClient(server.URL)
			_, err := c.Delete(ctx, "/api/v2/pages/7")
			Expect(err).NotTo(HaveOccurred())

			_, err = c.Delete(ctx, "/api/v2/pages/7")
			Expect(err).To(MatchError(client.ErrNotFound))
		})

		It("sends basic auth credentials", func() {
			server := routetest.NewServer(routetest.Route{
				Method:  http.MethodGet,
				Pattern: "/api/v2/spaces",
				Handler: func(w http.ResponseWriter, r *http.Request, _ []string) {
					user, pass, ok := r.BasicAuth()
					Expect(ok).To(BeTrue())
					Expect(user).To(Equal("dev@example.com"))
					Expect(pass).To(Equal("token"))
					routetest.WriteJSON(w, 200, map[string]any{"results": []any{}})
				},
			})
			defer server.Close()

			_, err := newClient(server.URL).Get(ctx, "/api/v2/spaces", nil)
			Expect(err).NotTo(HaveOccurred())
		})

		It("sends a bearer header when configured", func() {
			server := routetest.NewServer(routetest.Route{
				Method:  http.MethodGet,
				Pattern: "/api/v2/spaces",
				Handler: func(w http.ResponseWriter, r *http.Request, _ []string) {
					Expect(r.Header.Get("Authorization")).To(Equal("Bearer pat-token"))
					routetest.WriteJSON(w, 200, map[string]any{"results": []any{}})
				},
			})
			defer server.Close()

			c, err := client.New(client.Config{
				BaseURL:  server.URL,
				AuthType: client.AuthBearer,
				APIToken: "pat-token",
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = c.Get(ctx, "/api/v2/spaces", nil)
			Expect(err).NotTo(HaveOccurred())
		})
	})
})
