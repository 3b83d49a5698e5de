package domain

import "strings"

// Sort keys understood by the search use case.
type SortBy string

const (
	SortRelevance SortBy = "relevance"
	SortRecent    SortBy = "recent"
	SortName      SortBy = "name"
	SortScore     SortBy = "score"
)

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// SearchFilters is the request-scoped filter set. Every field is optional;
// absence means "no constraint", never "match empty".
type SearchFilters struct {
	Query              string
	Role               string
	Location           string
	ExperienceLevel    string
	Specialties        []string
	TravelAvailability *bool
	StudioAccess       *bool
	BudgetRange        string

	SortBy    SortBy
	SortOrder SortOrder
	Page      int
	Limit     int
}

// HasQuery reports whether a free-text query is present after trimming.
func (f SearchFilters) HasQuery() bool { return strings.TrimSpace(f.Query) != "" }

// SearchResults is the response envelope for one search page.
//
// Invariants: len(Profiles) <= Limit and HasMore == (Total > Page*Limit).
type SearchResults struct {
	Profiles []Profile `json:"profiles"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	Limit    int       `json:"limit"`
	HasMore  bool      `json:"hasMore"`
}

// FilterOptions is the vocabulary behind the client's filter pickers: the
// closed role and level sets, the curated per-role specialties, and the
// locations currently present in the directory.
type FilterOptions struct {
	Roles            []Role            `json:"roles"`
	Specialties      map[Role][]string `json:"specialties"`
	ExperienceLevels []string          `json:"experience_levels"`
	BudgetRanges     []string          `json:"budget_ranges"`
	Locations        []string          `json:"locations"`
}

// SuggestionType categorizes an autocomplete suggestion.
type SuggestionType string

const (
	SuggestionProfile   SuggestionType = "profile"
	SuggestionLocation  SuggestionType = "location"
	SuggestionSpecialty SuggestionType = "specialty"
)

// Suggestion is one typed autocomplete entry. Within a single response the
// (Type, Value) pair is unique.
type Suggestion struct {
	Type  SuggestionType `json:"type"`
	Value string         `json:"value"`
	Label string         `json:"label"`
}
