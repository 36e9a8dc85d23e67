// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify flags authors whose affiliation text indicates a
// pharmaceutical or biotech company rather than an academic institution.
package classify

import (
	"strings"

	"github.com/Nandhakumar-a1999/pubmed-fetcher/pkg/types"
)

// companyKeywords is the fixed, case-insensitive keyword list. An
// affiliation matches when it contains any of these as a substring.
// No stemming and no false-positive suppression.
var companyKeywords = []string{
	"pharma",
	"pharmaceutical",
	"biotech",
	"biotechnology",
	"inc",
	"corp",
	"ltd",
	"company",
	"research",
	"drug",
	"medicine",
	"healthcare",
	"clinical",
	"therapy",
	"medical",
	"center",
	"institute",
	"foundation",
	"hospital",
	"clinic",
	"group",
	"organization",
}

// IsCompany reports whether the affiliation string contains any company
// keyword, ignoring case. Empty input never matches.
func IsCompany(affiliation string) bool {
	if affiliation == "" {
		return false
	}
	lower := strings.ToLower(affiliation)
	for _, kw := range companyKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// MatchingAuthors returns the names of the article's company-affiliated
// authors and, in parallel, the affiliation string that matched for each.
// Authors appear at most once, in source order; an author with several
// matching affiliations contributes the first one. Both slices are empty
// when no author matches.
func MatchingAuthors(article types.Article) (names, affiliations []string) {
	for _, author := range article.Authors {
		for _, affil := range author.Affiliations {
			if IsCompany(affil) {
				names = append(names, author.FullName())
				affiliations = append(affiliations, affil)
				break
			}
		}
	}
	return names, affiliations
}
