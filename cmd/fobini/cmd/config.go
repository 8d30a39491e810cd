package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fobiniyen/fobini-go/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter fobini.yaml to the current directory",
	Run: func(cmd *cobra.Command, args []string) {
		path := "fobini.yaml"
		if _, err := os.Stat(path); err == nil {
			fail(fmt.Errorf("%s already exists, refusing to overwrite", path))
		}

		cfg := config.Config{}
		cfg.SetDefaults()

		data, err := yaml.Marshal(&cfg)
		if err != nil {
			fail(fmt.Errorf("failed to render config: %w", err))
		}
		header := "# fobini configuration\n" +
			"# Values can be overridden with FOBINI_-prefixed environment variables,\n" +
			"# e.g. FOBINI_API_BASE_URL. Set FOBINI_KEYSTORE_PASSPHRASE to\n" +
			"# passphrase-protect the keystore; it is never read from this file.\n"
		data = append([]byte(header), data...)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			fail(fmt.Errorf("failed to write %s: %w", path, err))
		}
		fmt.Printf("Wrote %s\n", path)
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			fail(err)
		}
		if used := config.ConfigFileUsed(); used != "" {
			fmt.Printf("# config file: %s\n", used)
		} else {
			fmt.Println("# no config file found, showing defaults and environment overrides")
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			fail(err)
		}
		fmt.Print(string(data))
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the keystore location",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			fail(err)
		}
		fmt.Println(filepath.Clean(cfg.Keystore.Path))
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}
