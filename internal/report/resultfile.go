// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/Nandhakumar-a1999/pubmed-fetcher/pkg/types"
)

// ResultFile is the on-disk representation of a run and its rows. A run
// can be saved to a file and reloaded later without re-querying the API.
type ResultFile struct {
	Query   string           `yaml:"query"`
	Config  ResultFileConfig `yaml:"config"`
	Rows    []types.Row      `yaml:"rows"`
	Summary RunSummary       `yaml:"summary"`
}

// ResultFileConfig stores the fetch configuration that produced the rows.
type ResultFileConfig struct {
	MaxResults int `yaml:"max_results"`
}

// RunSummary stores run statistics and a timestamp.
type RunSummary struct {
	Matched   int       `yaml:"matched"`
	Fetched   int       `yaml:"fetched"`
	Failed    int       `yaml:"failed"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteResultFile saves the query, configuration, and rows to a YAML file.
func WriteResultFile(path, query string, cfg types.FetchConfig, rows []types.Row, fetched, failed int) error {
	rf := ResultFile{
		Query: query,
		Config: ResultFileConfig{
			MaxResults: cfg.MaxResults,
		},
		Rows: rows,
		Summary: RunSummary{
			Matched:   len(rows),
			Fetched:   fetched,
			Failed:    failed,
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling result file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadResultFile loads a previously saved result file from disk.
func ReadResultFile(path string) (*ResultFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading result file: %w", err)
	}
	var rf ResultFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing result file: %w", err)
	}
	return &rf, nil
}
