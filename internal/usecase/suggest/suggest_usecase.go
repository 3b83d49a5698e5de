package suggest

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/focoteam/foco-backend/internal/domain"
	"github.com/focoteam/foco-backend/internal/repository"
)

const (
	// DefaultLimit applies when the request carries no limit.
	DefaultLimit = 10
	// MaxLimit is the hard suggestion cap.
	MaxLimit = 20
	// minQueryRunes is a hard cutoff: shorter queries yield no suggestions.
	minQueryRunes = 2
)

// Cache stores computed suggestion lists for a short window. Reads and
// writes are both best-effort; a miss or a failure just recomputes.
type Cache interface {
	GetSuggestions(ctx context.Context, query, typ string, limit int) ([]domain.Suggestion, bool)
	SetSuggestions(ctx context.Context, query, typ string, limit int, suggestions []domain.Suggestion)
}

// SuggestUseCase builds typed autocomplete suggestions from three sources:
// live profiles, distinct locations, and the static specialty vocabulary.
// A degraded sub-source yields partial results, never a failed call.
type SuggestUseCase struct {
	profileRepo repository.ProfileRepository
	cache       Cache
	logger      *zap.Logger
}

// NewSuggestUseCase wires the generator. cache may be nil to disable caching.
func NewSuggestUseCase(profileRepo repository.ProfileRepository, cache Cache, logger *zap.Logger) *SuggestUseCase {
	return &SuggestUseCase{
		profileRepo: profileRepo,
		cache:       cache,
		logger:      logger,
	}
}

// Suggest generates suggestions for a raw partial query. typ restricts
// generation to one category ("profile", "location", "specialty"); any
// other value runs every category. The returned slice is never nil.
func (uc *SuggestUseCase) Suggest(ctx context.Context, query, typ string, limit int) []domain.Suggestion {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minQueryRunes {
		return []domain.Suggestion{}
	}

	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	if uc.cache != nil {
		if cached, ok := uc.cache.GetSuggestions(ctx, query, typ, limit); ok {
			return cached
		}
	}

	collector := newCollector()
	wantType := domain.SuggestionType(typ)
	all := wantType != domain.SuggestionProfile &&
		wantType != domain.SuggestionLocation &&
		wantType != domain.SuggestionSpecialty

	if all || wantType == domain.SuggestionProfile {
		uc.collectProfiles(ctx, query, collector)
	}
	if all || wantType == domain.SuggestionLocation {
		uc.collectLocations(ctx, query, collector)
	}
	if all || wantType == domain.SuggestionSpecialty {
		collectSpecialties(query, collector)
	}

	suggestions := collector.ranked(query)
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}

	if uc.cache != nil {
		uc.cache.SetSuggestions(ctx, query, typ, limit, suggestions)
	}
	return suggestions
}

// FilterOptions assembles the filter picker vocabulary. The static tables
// always answer; locations come from live data and degrade to empty.
func (uc *SuggestUseCase) FilterOptions(ctx context.Context) domain.FilterOptions {
	specialties := make(map[domain.Role][]string, len(domain.Roles))
	for _, role := range domain.Roles {
		specialties[role] = SpecialtiesForRole(role)
	}

	locations, err := uc.profileRepo.Locations(ctx)
	if err != nil {
		uc.logger.Warn("filter option locations degraded", zap.Error(err))
	}
	if locations == nil {
		locations = []string{}
	}

	return domain.FilterOptions{
		Roles:            domain.Roles,
		Specialties:      specialties,
		ExperienceLevels: ExperienceLevels,
		BudgetRanges:     BudgetRanges,
		Locations:        locations,
	}
}

func (uc *SuggestUseCase) collectProfiles(ctx context.Context, query string, col *collector) {
	profiles, err := uc.profileRepo.List(ctx, repository.Selection{Query: query})
	if err != nil {
		uc.logger.Warn("profile suggestions degraded", zap.Error(err))
		return
	}

	lowered := strings.ToLower(query)
	for _, p := range profiles {
		if strings.Contains(strings.ToLower(p.Username), lowered) {
			col.add(domain.Suggestion{
				Type:  domain.SuggestionProfile,
				Value: p.Username,
				Label: "@" + p.Username + " (" + p.FullName + ")",
			})
		}
		if strings.Contains(strings.ToLower(p.FullName), lowered) {
			col.add(domain.Suggestion{
				Type:  domain.SuggestionProfile,
				Value: p.FullName,
				Label: p.FullName,
			})
		}
	}
}

func (uc *SuggestUseCase) collectLocations(ctx context.Context, query string, col *collector) {
	locations, err := uc.profileRepo.Locations(ctx)
	if err != nil {
		uc.logger.Warn("location suggestions degraded", zap.Error(err))
		return
	}

	lowered := strings.ToLower(query)
	for _, location := range locations {
		if strings.Contains(strings.ToLower(location), lowered) {
			col.add(domain.Suggestion{
				Type:  domain.SuggestionLocation,
				Value: location,
				Label: location,
			})
		}
	}
}

func collectSpecialties(query string, col *collector) {
	lowered := strings.ToLower(query)
	for _, token := range allSpecialties() {
		if strings.Contains(strings.ToLower(token), lowered) {
			col.add(domain.Suggestion{
				Type:  domain.SuggestionSpecialty,
				Value: token,
				Label: titleCase(token),
			})
		}
	}
}

// collector accumulates suggestions deduplicated by (type, value).
type collector struct {
	seen  map[string]struct{}
	items []domain.Suggestion
}

func newCollector() *collector {
	return &collector{seen: make(map[string]struct{})}
}

func (c *collector) add(s domain.Suggestion) {
	key := string(s.Type) + "\x00" + s.Value
	if _, ok := c.seen[key]; ok {
		return
	}
	c.seen[key] = struct{}{}
	c.items = append(c.items, s)
}

// ranked orders prefix matches before mere substring matches, keeping the
// generation order stable within each group.
func (c *collector) ranked(query string) []domain.Suggestion {
	lowered := strings.ToLower(query)
	items := c.items
	sort.SliceStable(items, func(i, j int) bool {
		pi := strings.HasPrefix(strings.ToLower(items[i].Value), lowered)
		pj := strings.HasPrefix(strings.ToLower(items[j].Value), lowered)
		return pi && !pj
	})
	if items == nil {
		items = []domain.Suggestion{}
	}
	return items
}
