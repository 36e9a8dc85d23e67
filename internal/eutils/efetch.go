// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Nandhakumar-a1999/pubmed-fetcher/internal/httputil"
	"github.com/Nandhakumar-a1999/pubmed-fetcher/pkg/types"
)

// BatchResult holds the outcome of a batch fetch run.
type BatchResult struct {
	Fetched  int
	Failed   int
	Articles []types.Article
}

// Total returns the total number of identifiers processed.
func (r BatchResult) Total() int {
	return r.Fetched + r.Failed
}

// FetchArticle retrieves and parses the EFetch XML document for one PMID.
// Missing fields are left empty rather than reported as errors; only
// transport failures and documents with no article at all are fatal.
func FetchArticle(ctx context.Context, client *http.Client, pmid string, cfg types.FetchConfig) (types.Article, error) {
	params := baseParams(cfg)
	params.Set("id", pmid)
	params.Set("retmode", "xml")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, efetchBase+"?"+params.Encode(), nil)
	if err != nil {
		return types.Article{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, client, req, cfg.MaxRetries)
	if err != nil {
		return types.Article{}, fmt.Errorf("EFetch request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.Article{}, fmt.Errorf("EFetch returned HTTP %d", resp.StatusCode)
	}

	return parseArticle(resp.Body, pmid)
}

// FetchBatch retrieves articles for all PMIDs sequentially, printing
// per-item status to w and pausing cfg.RequestDelay between calls per
// NCBI rate etiquette. It continues after individual failures.
func FetchBatch(ctx context.Context, client *http.Client, pmids []string, cfg types.FetchConfig, w io.Writer) BatchResult {
	var result BatchResult
	for i, pmid := range pmids {
		if i > 0 && cfg.RequestDelay > 0 {
			select {
			case <-ctx.Done():
				return result
			case <-time.After(cfg.RequestDelay):
			}
		}

		article, err := FetchArticle(ctx, client, pmid, cfg)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", pmid, err)
			result.Failed++
			continue
		}
		fmt.Fprintf(w, "fetched: %s (%d authors)\n", pmid, len(article.Authors))
		result.Fetched++
		result.Articles = append(result.Articles, article)
	}
	fmt.Fprintf(w, "\nFetch summary: %d fetched, %d failed (total: %d)\n",
		result.Fetched, result.Failed, result.Total())
	return result
}

// parseArticle decodes a PubmedArticleSet document and flattens its first
// article into a types.Article. requestedPMID backs the identifier when
// the document omits its own PMID element.
func parseArticle(r io.Reader, requestedPMID string) (types.Article, error) {
	var set pubmedArticleSet
	if err := xml.NewDecoder(r).Decode(&set); err != nil {
		return types.Article{}, fmt.Errorf("parsing EFetch response: %w", err)
	}
	if len(set.Articles) == 0 {
		return types.Article{}, fmt.Errorf("no article in EFetch response for %s", requestedPMID)
	}

	raw := set.Articles[0]
	article := types.Article{
		PMID:    strings.TrimSpace(raw.Citation.PMID),
		Title:   strings.TrimSpace(raw.Citation.Article.Title),
		Journal: strings.TrimSpace(raw.Citation.Article.Journal.Title),
		PubDate: parsePubDate(raw.Citation.Article),
	}
	if article.PMID == "" {
		article.PMID = requestedPMID
	}

	for _, a := range raw.Citation.Article.Authors {
		author := types.Author{
			LastName:       strings.TrimSpace(a.LastName),
			ForeName:       strings.TrimSpace(a.ForeName),
			Initials:       strings.TrimSpace(a.Initials),
			CollectiveName: strings.TrimSpace(a.CollectiveName),
		}
		for _, affil := range a.Affiliations {
			if s := strings.TrimSpace(affil); s != "" {
				author.Affiliations = append(author.Affiliations, s)
			}
		}
		if author.FullName() == "" {
			continue
		}
		article.Authors = append(article.Authors, author)
	}

	article.Email = extractEmail(article.Authors)
	return article, nil
}

// EFetch XML structures (PubmedArticleSet subset).
type pubmedArticleSet struct {
	Articles []pubmedArticle `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	Citation medlineCitation `xml:"MedlineCitation"`
}

type medlineCitation struct {
	PMID    string      `xml:"PMID"`
	Article articleNode `xml:"Article"`
}

type articleNode struct {
	Title       string       `xml:"ArticleTitle"`
	Journal     journalNode  `xml:"Journal"`
	Authors     []authorNode `xml:"AuthorList>Author"`
	ArticleDate pubDateNode  `xml:"ArticleDate"`
}

type journalNode struct {
	Title   string      `xml:"Title"`
	PubDate pubDateNode `xml:"JournalIssue>PubDate"`
}

type pubDateNode struct {
	Year        string `xml:"Year"`
	Month       string `xml:"Month"`
	Day         string `xml:"Day"`
	MedlineDate string `xml:"MedlineDate"`
}

type authorNode struct {
	LastName       string   `xml:"LastName"`
	ForeName       string   `xml:"ForeName"`
	Initials       string   `xml:"Initials"`
	CollectiveName string   `xml:"CollectiveName"`
	Affiliations   []string `xml:"AffiliationInfo>Affiliation"`
}
