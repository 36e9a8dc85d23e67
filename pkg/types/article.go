// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the pubmed-fetcher pipeline.
package types

import "time"

// Author is one entry of an article's author list as returned by EFetch.
type Author struct {
	// LastName is the author's family name.
	LastName string `json:"last_name" yaml:"last_name"`

	// ForeName is the author's given name, possibly multiple words.
	ForeName string `json:"fore_name,omitempty" yaml:"fore_name,omitempty"`

	// Initials are the given-name initials (e.g. "JD").
	Initials string `json:"initials,omitempty" yaml:"initials,omitempty"`

	// CollectiveName is set instead of the name fields when the author is a
	// consortium or working group.
	CollectiveName string `json:"collective_name,omitempty" yaml:"collective_name,omitempty"`

	// Affiliations lists the free-text affiliation strings attached to the
	// author, in source order. May be empty.
	Affiliations []string `json:"affiliations,omitempty" yaml:"affiliations,omitempty"`
}

// FullName returns "ForeName LastName", the collective name for group
// authors, or whatever name parts are present.
func (a Author) FullName() string {
	if a.CollectiveName != "" {
		return a.CollectiveName
	}
	if a.ForeName == "" {
		return a.LastName
	}
	return a.ForeName + " " + a.LastName
}

// Article holds the metadata parsed from one PubMed EFetch document.
type Article struct {
	// PMID is the PubMed identifier, unique per article.
	PMID string `json:"pmid" yaml:"pmid"`

	// Title is the article title as returned by the source.
	Title string `json:"title" yaml:"title"`

	// Journal is the journal title, when present.
	Journal string `json:"journal,omitempty" yaml:"journal,omitempty"`

	// PubDate is the publication date. Partial source dates (year only,
	// year and month) are floored to the first day of the period; a zero
	// value means the source carried no usable date.
	PubDate time.Time `json:"pub_date" yaml:"pub_date"`

	// Authors lists the article authors in source order.
	Authors []Author `json:"authors" yaml:"authors"`

	// Email is the corresponding-author email when one could be found in
	// the affiliation text, empty otherwise.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// Row is one line of the final report: an article with at least one
// company-affiliated author. Rows are never mutated after construction.
type Row struct {
	// PMID is the PubMed identifier.
	PMID string `json:"pubmed_id" yaml:"pubmed_id"`

	// Title is the article title.
	Title string `json:"title" yaml:"title"`

	// PubDate is the publication date in ISO form (2006-01-02), or empty
	// when the source carried no date.
	PubDate string `json:"publication_date" yaml:"publication_date"`

	// Authors lists the names of the company-affiliated authors, source order.
	Authors []string `json:"non_academic_authors" yaml:"non_academic_authors"`

	// Affiliations lists the matched affiliation string for each flagged
	// author, parallel to Authors.
	Affiliations []string `json:"company_affiliations" yaml:"company_affiliations"`

	// Email is the corresponding-author email, or empty.
	Email string `json:"corresponding_email,omitempty" yaml:"corresponding_email,omitempty"`
}
