// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import (
	"testing"
	"time"

	"github.com/Nandhakumar-a1999/pubmed-fetcher/pkg/types"
)

func TestResolveDate(t *testing.T) {
	tests := []struct {
		name string
		node pubDateNode
		want time.Time
	}{
		{
			name: "full date with month name",
			node: pubDateNode{Year: "2024", Month: "Mar", Day: "15"},
			want: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "numeric month",
			node: pubDateNode{Year: "2023", Month: "07", Day: "4"},
			want: time.Date(2023, time.July, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "full month name",
			node: pubDateNode{Year: "2022", Month: "December", Day: "1"},
			want: time.Date(2022, time.December, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "year and month floor to first day",
			node: pubDateNode{Year: "2021", Month: "Jun"},
			want: time.Date(2021, time.June, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "year only floors to January first",
			node: pubDateNode{Year: "2020"},
			want: time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "medline date range",
			node: pubDateNode{MedlineDate: "2019 Jan-Feb"},
			want: time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "medline date spanning years",
			node: pubDateNode{MedlineDate: "1998 Dec-1999 Jan"},
			want: time.Date(1998, time.December, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "medline date year only",
			node: pubDateNode{MedlineDate: "2017"},
			want: time.Date(2017, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "no year at all",
			node: pubDateNode{Month: "Jan", Day: "5"},
			want: time.Time{},
		},
		{
			name: "garbage year",
			node: pubDateNode{Year: "n.d."},
			want: time.Time{},
		},
		{
			name: "out of range day ignored",
			node: pubDateNode{Year: "2024", Month: "Feb", Day: "99"},
			want: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveDate(tt.node)
			if !got.Equal(tt.want) {
				t.Errorf("resolveDate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParsePubDateFallsBackToArticleDate(t *testing.T) {
	article := articleNode{
		ArticleDate: pubDateNode{Year: "2024", Month: "02", Day: "29"},
	}
	got := parsePubDate(article)
	want := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parsePubDate() = %v, want %v", got, want)
	}
}

func TestParsePubDatePrefersJournalIssue(t *testing.T) {
	article := articleNode{
		Journal:     journalNode{PubDate: pubDateNode{Year: "2023", Month: "May"}},
		ArticleDate: pubDateNode{Year: "2024", Month: "01", Day: "10"},
	}
	got := parsePubDate(article)
	if got.Year() != 2023 || got.Month() != time.May {
		t.Errorf("parsePubDate() = %v, want May 2023", got)
	}
}

func TestExtractEmail(t *testing.T) {
	tests := []struct {
		name    string
		authors []types.Author
		want    string
	}{
		{
			name: "email in affiliation text",
			authors: []types.Author{
				{LastName: "Doe", Affiliations: []string{"BioPharma Inc., USA. john.doe@biopharma.com."}},
			},
			want: "john.doe@biopharma.com",
		},
		{
			name: "first email wins",
			authors: []types.Author{
				{LastName: "Doe", Affiliations: []string{"Acme Corp. first@acme.com"}},
				{LastName: "Roe", Affiliations: []string{"Beta Ltd. second@beta.com"}},
			},
			want: "first@acme.com",
		},
		{
			name: "no email anywhere",
			authors: []types.Author{
				{LastName: "Smith", Affiliations: []string{"University of Nowhere"}},
				{LastName: "Wu"},
			},
			want: "",
		},
		{
			name:    "no authors",
			authors: nil,
			want:    "",
		},
		{
			name: "plus-tagged address",
			authors: []types.Author{
				{LastName: "Lee", Affiliations: []string{"Contact: j.lee+lab@research.org, Seoul"}},
			},
			want: "j.lee+lab@research.org",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractEmail(tt.authors); got != tt.want {
				t.Errorf("extractEmail() = %q, want %q", got, tt.want)
			}
		})
	}
}
