package search

import (
	"bytes"
	"sort"
	"strings"

	"github.com/focoteam/foco-backend/internal/domain"
)

// Field weights for free-text relevance. A prefix match counts double the
// field's substring weight, so matches at the start of a field always rank
// above mid-string matches of the same field.
const (
	weightFullName = 4
	weightUsername = 3
	weightLocation = 2
	weightBio      = 1
)

// relevanceScore computes the ranking score of a profile for a lowercased
// query. Zero means the query matches none of the scored fields.
func relevanceScore(p domain.Profile, query string) int {
	score := fieldScore(p.FullName, query, weightFullName)
	score += fieldScore(p.Username, query, weightUsername)
	score += fieldScore(p.Location, query, weightLocation)
	score += fieldScore(p.Bio, query, weightBio)
	return score
}

func fieldScore(value, query string, weight int) int {
	value = strings.ToLower(value)
	if strings.HasPrefix(value, query) {
		return 2 * weight
	}
	if strings.Contains(value, query) {
		return weight
	}
	return 0
}

// sortProfiles orders matched profiles in place by the requested key.
// Every comparator ends with an id tie-break so paginated pages stay
// reproducible against an unchanged dataset.
func sortProfiles(profiles []domain.Profile, by domain.SortBy, order domain.SortOrder, query string) {
	switch by {
	case domain.SortRelevance:
		lowered := strings.ToLower(strings.TrimSpace(query))
		sort.Slice(profiles, func(i, j int) bool {
			si, sj := relevanceScore(profiles[i], lowered), relevanceScore(profiles[j], lowered)
			if si != sj {
				return si > sj
			}
			if !profiles[i].UpdatedAt.Equal(profiles[j].UpdatedAt) {
				return profiles[i].UpdatedAt.After(profiles[j].UpdatedAt)
			}
			return lessID(profiles[i], profiles[j])
		})
	case domain.SortName:
		desc := order == domain.OrderDesc
		sort.Slice(profiles, func(i, j int) bool {
			ni, nj := strings.ToLower(profiles[i].FullName), strings.ToLower(profiles[j].FullName)
			if ni != nj {
				if desc {
					return ni > nj
				}
				return ni < nj
			}
			return lessID(profiles[i], profiles[j])
		})
	case domain.SortScore:
		sort.Slice(profiles, func(i, j int) bool {
			ti, tj := tierRank(profiles[i].SubscriptionTier), tierRank(profiles[j].SubscriptionTier)
			if ti != tj {
				return ti > tj
			}
			if !profiles[i].CreatedAt.Equal(profiles[j].CreatedAt) {
				return profiles[i].CreatedAt.After(profiles[j].CreatedAt)
			}
			return lessID(profiles[i], profiles[j])
		})
	default: // SortRecent
		sort.Slice(profiles, func(i, j int) bool {
			if !profiles[i].CreatedAt.Equal(profiles[j].CreatedAt) {
				return profiles[i].CreatedAt.After(profiles[j].CreatedAt)
			}
			return lessID(profiles[i], profiles[j])
		})
	}
}

func tierRank(tier domain.SubscriptionTier) int {
	if tier == domain.TierPro {
		return 1
	}
	return 0
}

func lessID(a, b domain.Profile) bool {
	return bytes.Compare(a.ID[:], b.ID[:]) < 0
}
