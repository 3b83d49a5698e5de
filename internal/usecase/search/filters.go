package search

import (
	"strings"

	"github.com/focoteam/foco-backend/internal/domain"
	"github.com/focoteam/foco-backend/internal/repository"
)

// Predicate decides whether a profile satisfies a compiled filter set.
type Predicate func(domain.Profile) bool

// Compile translates request filters into a coarse store selection plus the
// authoritative in-memory predicate. The selection only narrows; the
// predicate is re-applied to every candidate so the count and the page
// window always agree on the same rows.
//
// All provided filters combine with AND. A zero filter set matches the
// whole collection. An invalid role matches nothing rather than erroring:
// the HTTP layer passes role through untyped and robustness wins over
// strictness here.
func Compile(f domain.SearchFilters) (repository.Selection, Predicate) {
	sel := repository.Selection{
		Role:     strings.TrimSpace(f.Role),
		Location: strings.TrimSpace(f.Location),
		Query:    strings.TrimSpace(f.Query),
	}

	var clauses []Predicate

	if sel.Role != "" {
		role := domain.Role(sel.Role)
		clauses = append(clauses, func(p domain.Profile) bool {
			return p.Role == role
		})
	}

	if sel.Location != "" {
		location := strings.ToLower(sel.Location)
		clauses = append(clauses, func(p domain.Profile) bool {
			return strings.Contains(strings.ToLower(p.Location), location)
		})
	}

	if sel.Query != "" {
		query := strings.ToLower(sel.Query)
		clauses = append(clauses, func(p domain.Profile) bool {
			return strings.Contains(strings.ToLower(p.FullName), query) ||
				strings.Contains(strings.ToLower(p.Bio), query) ||
				strings.Contains(strings.ToLower(p.Location), query) ||
				strings.Contains(strings.ToLower(p.Username), query)
		})
	}

	if f.ExperienceLevel != "" {
		level := f.ExperienceLevel
		clauses = append(clauses, func(p domain.Profile) bool {
			// Vacuously false for variants without an experience field.
			return p.Attributes != nil && p.Attributes.ExperienceLevel() == level
		})
	}

	if len(f.Specialties) > 0 {
		wanted := f.Specialties
		clauses = append(clauses, func(p domain.Profile) bool {
			if p.Attributes == nil {
				return false
			}
			return anyTagMatch(p.Attributes.SpecialtyTags(), wanted)
		})
	}

	if f.TravelAvailability != nil {
		want := *f.TravelAvailability
		clauses = append(clauses, func(p domain.Profile) bool {
			if p.Attributes == nil {
				return false
			}
			travel := p.Attributes.TravelAvailability()
			return travel != nil && *travel == want
		})
	}

	if f.StudioAccess != nil {
		want := *f.StudioAccess
		clauses = append(clauses, func(p domain.Profile) bool {
			if p.Attributes == nil {
				return false
			}
			studio := p.Attributes.StudioAccess()
			return studio != nil && *studio == want
		})
	}

	if f.BudgetRange != "" {
		budget := f.BudgetRange
		clauses = append(clauses, func(p domain.Profile) bool {
			return p.Attributes != nil && p.Attributes.BudgetRange() == budget
		})
	}

	return sel, and(clauses)
}

func and(clauses []Predicate) Predicate {
	return func(p domain.Profile) bool {
		for _, clause := range clauses {
			if !clause(p) {
				return false
			}
		}
		return true
	}
}

// anyTagMatch reports whether tags and wanted intersect. Tags compare as
// exact, case-sensitive strings.
func anyTagMatch(tags, wanted []string) bool {
	for _, tag := range tags {
		for _, w := range wanted {
			if tag == w {
				return true
			}
		}
	}
	return false
}
