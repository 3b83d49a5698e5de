package search

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/focoteam/foco-backend/internal/domain"
	"github.com/focoteam/foco-backend/internal/repository"
)

const (
	// DefaultFeaturedLimit applies when the featured request carries no limit.
	DefaultFeaturedLimit = 6
	// MaxFeaturedLimit caps the featured listing size.
	MaxFeaturedLimit = 12
)

// SearchUseCase is the stateless search orchestration: compile filters,
// fetch one candidate snapshot, filter, sort, window. It is read-only and
// side-effect free; concurrent requests share nothing.
type SearchUseCase struct {
	profileRepo repository.ProfileRepository
	logger      *zap.Logger
}

func NewSearchUseCase(profileRepo repository.ProfileRepository, logger *zap.Logger) *SearchUseCase {
	return &SearchUseCase{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// Search runs one filter-score-paginate pass. No-result and past-the-end
// requests return valid empty envelopes; only storage failures error.
func (uc *SearchUseCase) Search(ctx context.Context, filters domain.SearchFilters) (*domain.SearchResults, error) {
	sel, predicate := Compile(filters)

	candidates, err := uc.profileRepo.List(ctx, sel)
	if err != nil {
		uc.logger.Error("profile search fetch failed", zap.Error(err))
		return nil, domain.NewError(domain.CodeSearch, "failed to search profiles", err)
	}

	matched := make([]domain.Profile, 0, len(candidates))
	for _, p := range candidates {
		if predicate(p) {
			matched = append(matched, p)
		}
	}

	sortProfiles(matched, resolveSort(filters), resolveOrder(filters), filters.Query)

	page := clampPage(filters.Page)
	limit := clampLimit(filters.Limit)
	return assemble(matched, page, limit), nil
}

// Featured returns the homepage featured listing: the whole collection
// under the computed featured score (tier first, recency second).
func (uc *SearchUseCase) Featured(ctx context.Context, limit int) ([]domain.Profile, error) {
	if limit < 1 {
		limit = DefaultFeaturedLimit
	}
	if limit > MaxFeaturedLimit {
		limit = MaxFeaturedLimit
	}

	profiles, err := uc.profileRepo.List(ctx, repository.Selection{})
	if err != nil {
		uc.logger.Error("featured profiles fetch failed", zap.Error(err))
		return nil, domain.NewError(domain.CodeSearch, "failed to list featured profiles", err)
	}

	sortProfiles(profiles, domain.SortScore, domain.OrderDesc, "")
	if len(profiles) > limit {
		profiles = profiles[:limit]
	}
	return profiles, nil
}

// GetByUsername returns a single public profile with its portfolio.
func (uc *SearchUseCase) GetByUsername(ctx context.Context, username string) (*domain.Profile, []domain.PortfolioImage, error) {
	profile, images, err := uc.profileRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if err == domain.ErrProfileNotFound {
			return nil, nil, domain.NewError(domain.CodeNotFound, "profile not found", err)
		}
		uc.logger.Error("profile lookup failed", zap.String("username", username), zap.Error(err))
		return nil, nil, domain.NewError(domain.CodeSearch, "failed to load profile", err)
	}
	return profile, images, nil
}

// resolveSort picks the effective sort key: an explicit valid key wins,
// otherwise relevance when a query is present and recency when not.
func resolveSort(f domain.SearchFilters) domain.SortBy {
	switch f.SortBy {
	case domain.SortRelevance, domain.SortRecent, domain.SortName, domain.SortScore:
		return f.SortBy
	}
	if f.HasQuery() {
		return domain.SortRelevance
	}
	return domain.SortRecent
}

func resolveOrder(f domain.SearchFilters) domain.SortOrder {
	if f.SortOrder == domain.OrderDesc {
		return domain.OrderDesc
	}
	return domain.OrderAsc
}
