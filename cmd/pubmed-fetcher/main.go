// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pubmed-fetcher CLI: a
// single-pass batch tool that queries PubMed, flags company-affiliated
// authors, and writes a six-column report.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Nandhakumar-a1999/pubmed-fetcher/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedCredentials holds NCBI access parameters loaded from .secrets/
// at startup.
var loadedCredentials secrets.Credentials

// rootCmd runs the fetch pipeline; subcommands cover version and the
// run archive.
var rootCmd = &cobra.Command{
	Use:   "pubmed-fetcher <query>",
	Short: "Fetch PubMed papers with pharma/biotech-affiliated authors",
	Long: `pubmed-fetcher queries PubMed for papers matching a search term, fetches
per-article metadata, and reports the papers that have at least one author
with a pharmaceutical or biotech company affiliation.

Results go to stdout as a table, or to a CSV file with --file. One
invocation handles one query and terminates.`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		creds, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedCredentials = creds
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pubmed-fetcher.yaml or ~/.config/pubmed-fetcher/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pubmed-fetcher")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pubmed-fetcher"))
		}
	}

	viper.SetEnvPrefix("PUBMED_FETCHER")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
