// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Nandhakumar-a1999/pubmed-fetcher/internal/httputil"
	"github.com/Nandhakumar-a1999/pubmed-fetcher/pkg/types"
)

// SearchResult holds the outcome of an ESearch query.
type SearchResult struct {
	// Count is the total number of matches reported by the server, which
	// may exceed len(IDs) when capped by MaxResults.
	Count int

	// IDs are the matching PMIDs in server order.
	IDs []string

	// QueryTranslation is the server's expansion of the query, useful for
	// debug tracing.
	QueryTranslation string
}

// Search resolves a free-text query to a list of PMIDs via ESearch.
// The number of returned identifiers is capped by cfg.MaxResults.
func Search(ctx context.Context, client *http.Client, query string, cfg types.FetchConfig) (SearchResult, error) {
	if query == "" {
		return SearchResult{}, fmt.Errorf("query is empty")
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	params := baseParams(cfg)
	params.Set("term", query)
	params.Set("retmode", "json")
	params.Set("retmax", strconv.Itoa(maxResults))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, esearchBase+"?"+params.Encode(), nil)
	if err != nil {
		return SearchResult{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, client, req, cfg.MaxRetries)
	if err != nil {
		return SearchResult{}, fmt.Errorf("ESearch request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return SearchResult{}, fmt.Errorf("ESearch returned HTTP %d", resp.StatusCode)
	}

	var envelope esearchEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return SearchResult{}, fmt.Errorf("parsing ESearch response: %w", err)
	}

	result := SearchResult{
		IDs:              envelope.Result.IDList,
		QueryTranslation: envelope.Result.QueryTranslation,
	}
	// Count arrives as a JSON string.
	if n, convErr := strconv.Atoi(envelope.Result.Count); convErr == nil {
		result.Count = n
	} else {
		result.Count = len(result.IDs)
	}
	return result, nil
}

// ESearch JSON structures.
type esearchEnvelope struct {
	Result esearchResult `json:"esearchresult"`
}

type esearchResult struct {
	Count            string   `json:"count"`
	RetMax           string   `json:"retmax"`
	IDList           []string `json:"idlist"`
	QueryTranslation string   `json:"querytranslation"`
}
