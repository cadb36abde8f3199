package configcmder_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/cobra"

	configcmder "github.com/grandcamel/confluence-assistant-skills/cmd/confluence/config"
	"github.com/grandcamel/confluence-assistant-skills/pkg/config"
)

func execConfig(tmpDir string, args ...string) error {
	cmd := configcmder.NewConfigCmd()
	cmd.PersistentFlags().String("config-dir", "", "Override the .confluence/ directory")
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append(args, "--config-dir", tmpDir))
	return cmd.Execute()
}

var _ = Describe("Config Command", func() {
	var tmpDir string

	BeforeEach(func() {
		tmpDir = GinkgoT().TempDir()
	})

	Describe("NewConfigCmd", func() {
		It("registers get, set, and list subcommands", func() {
			cmd := configcmder.NewConfigCmd()
			names := make([]string, 0, 3)
			for _, sub := range cmd.Commands() {
				names = append(names, sub.Name())
			}
			Expect(names).To(ContainElements("get", "set", "list"))
		})

		It("is a plain parent command", func() {
			var _ *cobra.Command = configcmder.NewConfigCmd()
		})
	})

	Describe("set", func() {
		It("persists a fixed key", func() {
			Expect(execConfig(tmpDir, "set", "output.format", "json")).To(Succeed())

			cfger, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())
			value, err := cfger.GetConfigValue("output.format")
			Expect(err).NotTo(HaveOccurred())
			Expect(value).To(Equal("json"))
		})

		It("creates a profile via a profiles.<name>.* key", func() {
			Expect(execConfig(tmpDir, "set", "profiles.staging.base_url", "https://staging.example.com/wiki")).To(Succeed())

			cfger, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())
			cfg, err := cfger.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Profiles).To(HaveKey("staging"))
			Expect(cfg.Profiles["staging"].BaseURL).To(Equal("https://staging.example.com/wiki"))
		})

		It("rejects an unknown key", func() {
			Expect(execConfig(tmpDir, "set", "bogus.key", "value")).NotTo(Succeed())
		})

		It("rejects an invalid output format", func() {
			Expect(execConfig(tmpDir, "set", "output.format", "yaml")).NotTo(Succeed())
		})
	})

	Describe("get", func() {
		It("reads back a stored value", func() {
			Expect(execConfig(tmpDir, "set", "default_profile", "staging")).To(Succeed())
			Expect(execConfig(tmpDir, "get", "default_profile")).To(Succeed())
		})

		It("rejects an unknown key", func() {
			Expect(execConfig(tmpDir, "get", "bogus.key")).NotTo(Succeed())
		})
	})

	Describe("list", func() {
		It("runs against an empty directory", func() {
			Expect(execConfig(tmpDir, "list")).To(Succeed())
		})
	})
})
