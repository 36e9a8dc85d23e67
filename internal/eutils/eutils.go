// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package eutils queries the NCBI E-utilities API: ESearch resolves a
// query string to PubMed identifiers, EFetch retrieves per-article XML
// metadata.
package eutils

import (
	"net/url"

	"github.com/Nandhakumar-a1999/pubmed-fetcher/pkg/types"
)

// E-utilities endpoints. Declared as vars so tests can substitute an
// httptest server.
var (
	esearchBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esearch.fcgi"
	efetchBase  = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi"
)

const pubmedDB = "pubmed"

// baseParams returns the query parameters common to every E-utilities
// call: database selection plus the api_key/tool/email etiquette
// parameters when configured.
func baseParams(cfg types.FetchConfig) url.Values {
	params := url.Values{"db": {pubmedDB}}
	if cfg.APIKey != "" {
		params.Set("api_key", cfg.APIKey)
	}
	if cfg.Email != "" {
		params.Set("email", cfg.Email)
	}
	if cfg.Tool != "" {
		params.Set("tool", cfg.Tool)
	}
	return params
}
