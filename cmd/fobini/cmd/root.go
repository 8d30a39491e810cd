// Package cmd provides the CLI commands for the fobini client.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fobiniyen/fobini-go/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "fobini",
	Short: "fobini - FobiniYen phobia-therapy API client",
	Long: `fobini is a command-line client for the FobiniYen phobia-therapy API.

It covers the full API surface: account registration and login, the phobia
catalog, tracked phobias, therapy programs and coping strategies, the AI
chat, and the user profile. Credentials are stored in an encrypted local
keystore, so a login survives between invocations.

Quick start:
  1. fobini config init
  2. fobini register --email you@example.com --username you ...
  3. fobini phobia list

Configuration:
  Config is loaded from fobini.yaml in the current directory,
  $HOME/.fobini/, or /etc/fobini/.

  Environment variables can override config values with the FOBINI_ prefix.
  Example: FOBINI_API_BASE_URL=https://staging.example.com

  Set FOBINI_KEYSTORE_PASSPHRASE to passphrase-protect the keystore.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./fobini.yaml)")
}

func initConfig() {
	config.InitViper(cfgFile)
}
