package main

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Nandhakumar-a1999/pubmed-fetcher/internal/archive"
	"github.com/Nandhakumar-a1999/pubmed-fetcher/internal/eutils"
	"github.com/Nandhakumar-a1999/pubmed-fetcher/internal/report"
	"github.com/Nandhakumar-a1999/pubmed-fetcher/pkg/types"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultDelay      = 350 * time.Millisecond
	defaultKeyedDelay = 110 * time.Millisecond
	defaultRetries    = 3
	defaultMaxResults = 20
	defaultUserAgent  = "pubmed-fetcher/0.1"
	defaultArchive    = "pubmed-fetcher.db"
	toolName          = "pubmed-fetcher"
)

func init() {
	rootCmd.Flags().BoolP("debug", "d", false, "enable verbose tracing to stderr")
	rootCmd.Flags().StringP("file", "f", "", "write the report to a CSV file instead of stdout")
	rootCmd.Flags().Bool("json", false, "print rows as JSON instead of a table")
	rootCmd.Flags().Int("max-results", 0, "maximum number of papers to fetch (default 20)")
	rootCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	rootCmd.Flags().Duration("delay", 0, "delay between consecutive API calls")
	rootCmd.Flags().Int("retries", 0, "bounded re-attempts on failed requests (default 3)")
	rootCmd.Flags().String("save-query", "", "save the query and rows to a YAML result file")
	rootCmd.Flags().Bool("archive", false, "record this run in the local run archive")
}

func setDefaults() {
	viper.SetDefault("http.timeout", defaultTimeout)
	viper.SetDefault("http.user_agent", defaultUserAgent)
	viper.SetDefault("fetch.max_results", defaultMaxResults)
	viper.SetDefault("fetch.request_delay", time.Duration(0))
	viper.SetDefault("fetch.max_retries", defaultRetries)
	viper.SetDefault("archive.path", defaultArchive)
}

// fetchConfig resolves fetch settings: flags win over config-file values,
// config-file values win over defaults.
func fetchConfig(cmd *cobra.Command) types.FetchConfig {
	cfg := types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("http.timeout"),
			UserAgent: viper.GetString("http.user_agent"),
		},
		MaxResults:   viper.GetInt("fetch.max_results"),
		RequestDelay: viper.GetDuration("fetch.request_delay"),
		MaxRetries:   viper.GetInt("fetch.max_retries"),
		APIKey:       loadedCredentials.APIKey,
		Email:        loadedCredentials.Email,
		Tool:         toolName,
	}

	if v, _ := cmd.Flags().GetDuration("timeout"); v > 0 {
		cfg.Timeout = v
	}
	if v, _ := cmd.Flags().GetInt("max-results"); v > 0 {
		cfg.MaxResults = v
	}
	if v, _ := cmd.Flags().GetInt("retries"); v > 0 {
		cfg.MaxRetries = v
	}
	if cmd.Flags().Changed("delay") {
		cfg.RequestDelay, _ = cmd.Flags().GetDuration("delay")
	} else if cfg.RequestDelay == 0 {
		// NCBI etiquette: 3 requests/second anonymously, 10 with a key.
		if cfg.APIKey != "" {
			cfg.RequestDelay = defaultKeyedDelay
		} else {
			cfg.RequestDelay = defaultDelay
		}
	}
	return cfg
}

func runFetch(cmd *cobra.Command, args []string) error {
	query := args[0]
	ctx := cmd.Context()

	debug, _ := cmd.Flags().GetBool("debug")
	trace := io.Discard
	if debug {
		trace = cmd.ErrOrStderr()
	}

	cfg := fetchConfig(cmd)
	client := &http.Client{Timeout: cfg.Timeout}

	fmt.Fprintf(trace, "query: %q (max %d results)\n", query, cfg.MaxResults)

	search, err := eutils.Search(ctx, client, query, cfg)
	if err != nil {
		return fmt.Errorf("searching PubMed: %w", err)
	}
	fmt.Fprintf(trace, "found %d matches, fetching %d\n", search.Count, len(search.IDs))
	if search.QueryTranslation != "" {
		fmt.Fprintf(trace, "query translation: %s\n", search.QueryTranslation)
	}

	batch := eutils.FetchBatch(ctx, client, search.IDs, cfg, trace)
	if batch.Fetched == 0 && batch.Failed > 0 {
		return fmt.Errorf("all %d article fetches failed", batch.Failed)
	}

	rows := report.Build(batch.Articles)
	fmt.Fprintf(trace, "%d of %d papers have company-affiliated authors\n",
		len(rows), batch.Fetched)

	if path, _ := cmd.Flags().GetString("save-query"); path != "" {
		if err := report.WriteResultFile(path, query, cfg, rows, batch.Fetched, batch.Failed); err != nil {
			return err
		}
		fmt.Fprintf(trace, "saved result file: %s\n", path)
	}

	if doArchive, _ := cmd.Flags().GetBool("archive"); doArchive {
		store, err := archive.Open(viper.GetString("archive.path"))
		if err != nil {
			return err
		}
		runID, recErr := store.Record(ctx, query, rows)
		closeErr := store.Close()
		if recErr != nil {
			return fmt.Errorf("archiving run: %w", recErr)
		}
		if closeErr != nil {
			return closeErr
		}
		fmt.Fprintf(trace, "archived as run %d\n", runID)
	}

	out := cmd.OutOrStdout()
	switch {
	case mustString(cmd, "file") != "":
		path := mustString(cmd, "file")
		if err := report.SaveCSV(path, rows); err != nil {
			return err
		}
		fmt.Fprintf(trace, "results saved to %s\n", path)
	case mustBool(cmd, "json"):
		if err := report.FormatJSON(rows, out); err != nil {
			return err
		}
	default:
		report.FormatTable(rows, out)
	}

	if batch.Failed > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %d article(s) could not be fetched\n", batch.Failed)
	}
	return nil
}

func mustString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func mustBool(cmd *cobra.Command, name string) bool {
	v, _ := cmd.Flags().GetBool(name)
	return v
}
