// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Nandhakumar-a1999/pubmed-fetcher/pkg/types"
)

// monthNames maps PubMed month abbreviations to month numbers.
var monthNames = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// parsePubDate resolves an article's publication date. It prefers the
// journal issue PubDate, falls back to ArticleDate, and returns the zero
// time when neither carries a year. Partial dates floor to the first
// month/day of the period.
func parsePubDate(article articleNode) time.Time {
	if t := resolveDate(article.Journal.PubDate); !t.IsZero() {
		return t
	}
	return resolveDate(article.ArticleDate)
}

func resolveDate(node pubDateNode) time.Time {
	year, month, day := 0, time.January, 1

	if node.Year != "" {
		if y, err := strconv.Atoi(strings.TrimSpace(node.Year)); err == nil {
			year = y
		}
	}
	if year == 0 && node.MedlineDate != "" {
		// MedlineDate holds ranges like "2020 Jan-Feb" or "1998 Dec-1999 Jan".
		// The leading year and the first month token are what we keep.
		fields := strings.Fields(node.MedlineDate)
		if len(fields) > 0 {
			if y, err := strconv.Atoi(fields[0]); err == nil {
				year = y
			}
		}
		if len(fields) > 1 {
			first := fields[1]
			if idx := strings.IndexByte(first, '-'); idx > 0 {
				first = first[:idx]
			}
			if m, ok := monthNumber(first); ok {
				month = m
			}
		}
	} else {
		if m, ok := monthNumber(node.Month); ok {
			month = m
		}
		if d, err := strconv.Atoi(strings.TrimSpace(node.Day)); err == nil && d >= 1 && d <= 31 {
			day = d
		}
	}

	if year == 0 {
		return time.Time{}
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// monthNumber accepts a month as a name ("Jan", "January"), a number
// ("1", "01"), or empty.
func monthNumber(s string) (time.Month, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return 0, false
	}
	if len(s) >= 3 {
		if m, ok := monthNames[s[:3]]; ok {
			return m, true
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= 12 {
		return time.Month(n), true
	}
	return 0, false
}

// emailPattern matches an email address embedded in affiliation text.
var emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

// extractEmail scans author affiliation strings for an email address.
// PubMed carries the corresponding author's email inside the affiliation
// text rather than in a dedicated element; the first address found wins.
// A trailing period from sentence punctuation is stripped.
func extractEmail(authors []types.Author) string {
	for _, author := range authors {
		for _, affil := range author.Affiliations {
			if match := emailPattern.FindString(affil); match != "" {
				return strings.TrimRight(match, ".")
			}
		}
	}
	return ""
}
