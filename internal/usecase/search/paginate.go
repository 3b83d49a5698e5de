package search

import "github.com/focoteam/foco-backend/internal/domain"

const (
	// DefaultLimit applies when the request carries no page size.
	DefaultLimit = 20
	// MaxLimit is the hard page-size cap; larger requests clamp silently.
	MaxLimit = 50
)

// clampPage normalizes the 1-indexed page number.
func clampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// clampLimit normalizes the page size. An unset or negative limit falls
// back to the default; oversized values clamp to the cap instead of erroring.
func clampLimit(limit int) int {
	if limit < 1 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// assemble windows the sorted match set and shapes the result envelope.
// Total and the window come from the same slice, so they agree on exactly
// which records qualified. A page past the end is an empty page, not an
// error.
func assemble(matched []domain.Profile, page, limit int) *domain.SearchResults {
	total := len(matched)
	offset := (page - 1) * limit

	window := []domain.Profile{}
	if offset < total {
		end := offset + limit
		if end > total {
			end = total
		}
		window = matched[offset:end]
	}

	return &domain.SearchResults{
		Profiles: window,
		Total:    total,
		Page:     page,
		Limit:    limit,
		HasMore:  total > offset+len(window),
	}
}
