// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report filters fetched articles down to those with
// company-affiliated authors and serializes the result as CSV, a
// human-readable table, or JSON.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Nandhakumar-a1999/pubmed-fetcher/internal/classify"
	"github.com/Nandhakumar-a1999/pubmed-fetcher/pkg/types"
)

const isoDate = "2006-01-02"

// listSeparator joins author names and affiliation strings inside a
// single CSV field.
const listSeparator = ", "

// csvHeader is the fixed six-column report header.
var csvHeader = []string{
	"PubmedID",
	"Title",
	"Publication Date",
	"Non-academic Author(s)",
	"Company Affiliation(s)",
	"Corresponding Author Email",
}

// Build converts fetched articles into report rows. An article with no
// company-affiliated author is dropped entirely; a qualifying article
// yields exactly one row listing only its flagged authors and their
// matched affiliations. Input order is preserved.
func Build(articles []types.Article) []types.Row {
	var rows []types.Row
	for _, article := range articles {
		names, affiliations := classify.MatchingAuthors(article)
		if len(names) == 0 {
			continue
		}
		row := types.Row{
			PMID:         article.PMID,
			Title:        article.Title,
			Authors:      names,
			Affiliations: affiliations,
			Email:        article.Email,
		}
		if !article.PubDate.IsZero() {
			row.PubDate = article.PubDate.Format(isoDate)
		}
		rows = append(rows, row)
	}
	return rows
}

// WriteCSV writes rows to w with the fixed six-column header.
func WriteCSV(w io.Writer, rows []types.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.PMID,
			row.Title,
			row.PubDate,
			strings.Join(row.Authors, listSeparator),
			strings.Join(row.Affiliations, listSeparator),
			row.Email,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing CSV row for %s: %w", row.PMID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes rows to a CSV file, creating or truncating path.
func SaveCSV(path string, rows []types.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WriteCSV(f, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadCSV parses a report previously written by WriteCSV.
func ReadCSV(r io.Reader) ([]types.Row, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty CSV: missing header")
	}

	var rows []types.Row
	for _, record := range records[1:] {
		if len(record) != len(csvHeader) {
			return nil, fmt.Errorf("CSV row has %d fields, want %d", len(record), len(csvHeader))
		}
		rows = append(rows, types.Row{
			PMID:         record[0],
			Title:        record[1],
			PubDate:      record[2],
			Authors:      splitList(record[3]),
			Affiliations: splitList(record[4]),
			Email:        record[5],
		})
	}
	return rows, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, listSeparator)
}

// FormatTable writes rows as a human-readable table to w.
func FormatTable(rows []types.Row, w io.Writer) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No papers found.")
		return
	}

	fmt.Fprintf(w, "%-10s  %-50s  %-10s  %-24s  %s\n",
		"PubmedID", "Title", "Date", "Non-academic Authors", "Company Affiliations")
	fmt.Fprintln(w, strings.Repeat("-", 120))

	for _, row := range rows {
		fmt.Fprintf(w, "%-10s  %-50s  %-10s  %-24s  %s\n",
			row.PMID,
			truncate(row.Title, 50),
			row.PubDate,
			truncate(strings.Join(row.Authors, listSeparator), 24),
			truncate(strings.Join(row.Affiliations, listSeparator), 50),
		)
	}

	fmt.Fprintf(w, "\n%d paper(s) with company-affiliated authors\n", len(rows))
}

// FormatJSON writes rows as indented JSON to w.
func FormatJSON(rows []types.Row, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
