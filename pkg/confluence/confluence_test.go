package confluence_test

import (
	"context"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/grandcamel/confluence-assistant-skills/pkg/client"
	"github.com/grandcamel/confluence-assistant-skills/pkg/confluence"
	"github.com/grandcamel/confluence-assistant-skills/pkg/logger"
	"github.com/grandcamel/confluence-assistant-skills/pkg/routetest"
)

// newService builds a Service against a fake server.
func newService(srv *routetest.Server) *confluence.Service {
	api, err := client.New(client.Config{
		BaseURL:  srv.URL,
		Email:    "tester@example.com",
		APIToken: "token",
	})
	Expect(err).NotTo(HaveOccurred())
	return confluence.NewService(api, logger.Nop())
}

var _ = Describe("Validation", func() {
	It("accepts numeric content IDs", func() {
		Expect(confluence.ValidateID("12345")).To(Succeed())
	})

	It("rejects empty and non-numeric IDs", func() {
		Expect(confluence.ValidateID("")).To(MatchError(client.ErrValidation))
		Expect(confluence.ValidateID("abc")).To(MatchError(client.ErrValidation))
		Expect(confluence.ValidateID("12a")).To(MatchError(client.ErrValidation))
	})

	It("rejects empty and overlong titles", func() {
		Expect(confluence.ValidateTitle("  ")).To(MatchError(client.ErrValidation))
		Expect(confluence.ValidateTitle(strings.Repeat("x", 256))).To(MatchError(client.ErrValidation))
		Expect(confluence.ValidateTitle(strings.Repeat("x", 255))).To(Succeed())
	})

	It("rejects lowercase space keys", func() {
		Expect(confluence.ValidateSpaceKey("dev")).To(MatchError(client.ErrValidation))
		Expect(confluence.ValidateSpaceKey("DEV2")).To(Succeed())
	})

	It("makes no request when validation fails", func() {
		srv := routetest.NewServer()
		defer srv.Close()
		svc := newService(srv)

		_, err := svc.GetPage(context.Background(), "not-a-number")
		Expect(err).To(MatchError(client.ErrValidation))

		_, err = svc.CreatePage(context.Background(), "123", "", "body", "")
		Expect(err).To(MatchError(client.ErrValidation))

		Expect(srv.Requests()).To(Equal(0))
	})
})
