package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pubmed-fetcher/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for the ESearch/EFetch stages.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults caps the number of PMIDs requested from ESearch (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// RequestDelay is the pause between consecutive E-utilities calls.
	// NCBI allows 3 requests/second without an API key and 10 with one.
	RequestDelay time.Duration `json:"request_delay" yaml:"request_delay"`

	// MaxRetries bounds re-attempts on rate-limited or failed requests.
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// APIKey is an optional NCBI API key for higher rate limits.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Email is the contact email sent with requests per NCBI etiquette.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`

	// Tool is the tool name sent with requests per NCBI etiquette.
	Tool string `json:"tool,omitempty" yaml:"tool,omitempty"`
}

// ArchiveConfig holds settings for the run archive.
type ArchiveConfig struct {
	// Path is the SQLite database file for archived runs.
	Path string `json:"path" yaml:"path"`
}
