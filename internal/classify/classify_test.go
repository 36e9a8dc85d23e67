// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"reflect"
	"testing"

	"github.com/Nandhakumar-a1999/pubmed-fetcher/pkg/types"
)

func TestIsCompany(t *testing.T) {
	tests := []struct {
		name        string
		affiliation string
		want        bool
	}{
		{"pharma keyword", "BioPharma Inc., Cambridge, MA, USA", true},
		{"biotech keyword", "Genova Biotech, Basel, Switzerland", true},
		{"uppercase keyword", "ACME PHARMACEUTICAL CORP", true},
		{"mixed case", "NovaTech BioTechnology GmbH", true},
		{"substring match, no word boundaries", "Princeton University", true},
		{"plain university", "Dept. of Physics, ETH Zurich", false},
		{"hospital keyword", "Massachusetts General Hospital, Boston", true},
		{"empty string", "", false},
		{"whitespace only", "   ", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCompany(tt.affiliation); got != tt.want {
				t.Errorf("IsCompany(%q) = %v, want %v", tt.affiliation, got, tt.want)
			}
		})
	}
}

func TestMatchingAuthors(t *testing.T) {
	article := types.Article{
		PMID: "12345",
		Authors: []types.Author{
			{ForeName: "John", LastName: "Doe", Affiliations: []string{"BioPharma Inc., USA"}},
			{ForeName: "Alice", LastName: "Smith", Affiliations: []string{"Dept. of Physics, ETH Zurich"}},
			{ForeName: "Bob", LastName: "Lee", Affiliations: []string{
				"University of Oxford",
				"Vertex Pharmaceuticals, Boston",
			}},
		},
	}

	names, affiliations := MatchingAuthors(article)

	wantNames := []string{"John Doe", "Bob Lee"}
	if !reflect.DeepEqual(names, wantNames) {
		t.Errorf("names = %v, want %v", names, wantNames)
	}
	wantAffils := []string{"BioPharma Inc., USA", "Vertex Pharmaceuticals, Boston"}
	if !reflect.DeepEqual(affiliations, wantAffils) {
		t.Errorf("affiliations = %v, want %v", affiliations, wantAffils)
	}
}

func TestMatchingAuthorsSingleEntryPerAuthor(t *testing.T) {
	// An author with several matching affiliations is listed once, with
	// the first match.
	article := types.Article{
		Authors: []types.Author{
			{ForeName: "Jane", LastName: "Roe", Affiliations: []string{
				"Roche Pharma, Basel",
				"Novartis Institutes for BioMedical Research",
			}},
		},
	}

	names, affiliations := MatchingAuthors(article)
	if len(names) != 1 {
		t.Fatalf("len(names) = %d, want 1", len(names))
	}
	if affiliations[0] != "Roche Pharma, Basel" {
		t.Errorf("affiliation = %q, want first match", affiliations[0])
	}
}

func TestMatchingAuthorsNoMatches(t *testing.T) {
	article := types.Article{
		Authors: []types.Author{
			{ForeName: "Alice", LastName: "Smith", Affiliations: []string{"Sorbonne Universite, Paris"}},
			{ForeName: "Carol", LastName: "Wu"},
		},
	}

	names, affiliations := MatchingAuthors(article)
	if len(names) != 0 || len(affiliations) != 0 {
		t.Errorf("got %v / %v, want empty", names, affiliations)
	}
}

func TestMatchingAuthorsCollectiveName(t *testing.T) {
	article := types.Article{
		Authors: []types.Author{
			{CollectiveName: "COVID Response Consortium", Affiliations: []string{"Moderna Inc., Cambridge"}},
		},
	}

	names, _ := MatchingAuthors(article)
	if len(names) != 1 || names[0] != "COVID Response Consortium" {
		t.Errorf("names = %v, want collective name", names)
	}
}
