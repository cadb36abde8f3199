package authcmder_test

import (
	"bytes"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	authcmder "github.com/grandcamel/confluence-assistant-skills/cmd/confluence/auth"
	"github.com/grandcamel/confluence-assistant-skills/pkg/credentials"
)

var _ = Describe("Auth Command", func() {
	var tmpDir string

	BeforeEach(func() {
		tmpDir = GinkgoT().TempDir()
	})

	Describe("NewAuthCmd", func() {
		It("creates a command with expected properties", func() {
			cmd := authcmder.NewAuthCmd()
			Expect(cmd.Use).To(Equal("auth"))
			Expect(cmd.Short).NotTo(BeEmpty())
		})

		It("registers set, status, and remove subcommands", func() {
			cmd := authcmder.NewAuthCmd()
			names := make([]string, 0, 3)
			for _, sub := range cmd.Commands() {
				names = append(names, sub.Name())
			}
			Expect(names).To(ContainElements("set", "status", "remove"))
		})
	})

	Describe("status", func() {
		It("runs cleanly when no tokens are stored", func() {
			cmd := authcmder.NewAuthCmd()
			cmd.PersistentFlags().String("config-dir", "", "Override the .confluence/ directory")
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetArgs([]string{"status", "--config-dir", tmpDir})

			Expect(cmd.Execute()).To(Succeed())
		})
	})

	Describe("set", func() {
		It("stores a token piped on stdin", func() {
			r, w, err := os.Pipe()
			Expect(err).NotTo(HaveOccurred())
			_, err = w.WriteString("secret-token\n")
			Expect(err).NotTo(HaveOccurred())
			Expect(w.Close()).To(Succeed())

			orig := os.Stdin
			os.Stdin = r
			DeferCleanup(func() { os.Stdin = orig })

			cmd := authcmder.NewAuthCmd()
			cmd.PersistentFlags().String("config-dir", "", "Override the .confluence/ directory")
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetArgs([]string{"set", "staging", "--config-dir", tmpDir})

			Expect(cmd.Execute()).To(Succeed())

			mgr, err := credentials.NewManager(tmpDir)
			Expect(err).NotTo(HaveOccurred())
			token, err := mgr.Token("staging")
			Expect(err).NotTo(HaveOccurred())
			Expect(token).To(Equal("secret-token"))
		})
	})

	Describe("remove", func() {
		It("removes a stored token", func() {
			mgr, err := credentials.NewManager(tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(mgr.SetToken("staging", "secret-token")).To(Succeed())

			cmd := authcmder.NewAuthCmd()
			cmd.PersistentFlags().String("config-dir", "", "Override the .confluence/ directory")
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetArgs([]string{"remove", "staging", "--config-dir", tmpDir})

			Expect(cmd.Execute()).To(Succeed())

			profiles, err := mgr.StoredProfiles()
			Expect(err).NotTo(HaveOccurred())
			Expect(profiles).NotTo(ContainElement("staging"))
		})

		It("errors for a profile with no stored token", func() {
			cmd := authcmder.NewAuthCmd()
			cmd.PersistentFlags().String("config-dir", "", "Override the .confluence/ directory")
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs([]string{"remove", "ghost", "--config-dir", tmpDir})

			Expect(cmd.Execute()).NotTo(Succeed())
		})
	})
})
