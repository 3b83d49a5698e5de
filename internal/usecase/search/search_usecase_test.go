package search

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/focoteam/foco-backend/internal/domain"
	"github.com/focoteam/foco-backend/internal/repository"
)

// fakeProfileRepo serves a fixed snapshot. It applies the coarse selection
// the way the SQL store would, which keeps the superset contract honest.
type fakeProfileRepo struct {
	profiles []domain.Profile
	err      error
}

func (f *fakeProfileRepo) List(ctx context.Context, sel repository.Selection) ([]domain.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Profile
	for _, p := range f.profiles {
		if sel.Role != "" && string(p.Role) != sel.Role {
			continue
		}
		if sel.Location != "" && !containsFold(p.Location, sel.Location) {
			continue
		}
		if sel.Query != "" &&
			!containsFold(p.FullName, sel.Query) && !containsFold(p.Bio, sel.Query) &&
			!containsFold(p.Location, sel.Query) && !containsFold(p.Username, sel.Query) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProfileRepo) GetByUsername(ctx context.Context, username string) (*domain.Profile, []domain.PortfolioImage, error) {
	if f.err != nil {
		return nil, nil, f.err
	}
	for i := range f.profiles {
		if f.profiles[i].Username == username {
			return &f.profiles[i], nil, nil
		}
	}
	return nil, nil, domain.ErrProfileNotFound
}

func (f *fakeProfileRepo) Locations(ctx context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	seen := map[string]struct{}{}
	var out []string
	for _, p := range f.profiles {
		if p.Location == "" {
			continue
		}
		if _, ok := seen[p.Location]; ok {
			continue
		}
		seen[p.Location] = struct{}{}
		out = append(out, p.Location)
	}
	return out, nil
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func newUseCase(profiles []domain.Profile) *SearchUseCase {
	return NewSearchUseCase(&fakeProfileRepo{profiles: profiles}, zap.NewNop())
}

func directory() []domain.Profile {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	var profiles []domain.Profile
	add := func(p domain.Profile) {
		p.CreatedAt = base.Add(time.Duration(len(profiles)) * time.Hour)
		p.UpdatedAt = p.CreatedAt
		profiles = append(profiles, p)
	}

	add(testProfile("juanperez", "Juan Pérez", domain.RolePhotographer,
		domain.PhotographerAttributes{Specialties: []string{"moda", "retrato"}, Experience: "avanzado"}))
	add(testProfile("juangomez", "Juan Gómez", domain.RoleModel,
		domain.ModelAttributes{ModelTypes: []string{"pasarela"}, Travel: boolPtr(true)}))
	add(testProfile("anaruiz", "Ana Ruiz", domain.RolePhotographer,
		domain.PhotographerAttributes{Specialties: []string{"bodas"}, Studio: boolPtr(true)}))
	add(testProfile("marsoto", "Mar Soto", domain.RoleStylist,
		domain.StylistAttributes{Specialties: []string{"editorial"}}))
	add(testProfile("reyortiz", "Rey Ortiz", domain.RoleProducer,
		domain.ProducerAttributes{Specialties: []string{"publicidad"}, TypicalBudgetRange: "5000-20000"}))
	return profiles
}

func TestSearchUnfilteredReturnsAll(t *testing.T) {
	uc := newUseCase(directory())

	results, err := uc.Search(context.Background(), domain.SearchFilters{})
	require.NoError(t, err)
	assert.Equal(t, 5, results.Total)
	assert.Len(t, results.Profiles, 5, "an unset limit pages by the default, not the minimum")
	assert.Equal(t, DefaultLimit, results.Limit)
	assert.False(t, results.HasMore)
}

func TestSearchCountMatchesFetch(t *testing.T) {
	uc := newUseCase(directory())

	filterSets := []domain.SearchFilters{
		{},
		{Role: "photographer"},
		{Query: "juan"},
		{Role: "photographer", Specialties: []string{"moda", "editorial"}},
		{Location: "madrid"},
		{TravelAvailability: boolPtr(true)},
		{ExperienceLevel: "avanzado"},
		{Role: "nope"},
	}

	for _, filters := range filterSets {
		filters.Limit = MaxLimit
		results, err := uc.Search(context.Background(), filters)
		require.NoError(t, err)
		assert.Equal(t, results.Total, len(results.Profiles),
			"count must agree with fetch for %+v", filters)
	}
}

func TestSearchSpecialtyIntersectionScenario(t *testing.T) {
	uc := newUseCase(directory())

	results, err := uc.Search(context.Background(), domain.SearchFilters{
		Role:        "photographer",
		Specialties: []string{"moda", "editorial"},
	})
	require.NoError(t, err)
	require.Len(t, results.Profiles, 1)
	assert.Equal(t, "juanperez", results.Profiles[0].Username)
}

func TestSearchNameSortScenario(t *testing.T) {
	uc := newUseCase(directory())

	results, err := uc.Search(context.Background(), domain.SearchFilters{
		Query:  "juan",
		SortBy: domain.SortName,
	})
	require.NoError(t, err)
	require.Len(t, results.Profiles, 2)
	assert.Equal(t, "Juan Gómez", results.Profiles[0].FullName)
	assert.Equal(t, "Juan Pérez", results.Profiles[1].FullName)
}

func TestSearchLimitClampedInResponse(t *testing.T) {
	uc := newUseCase(directory())

	results, err := uc.Search(context.Background(), domain.SearchFilters{Limit: 100})
	require.NoError(t, err)
	assert.Equal(t, MaxLimit, results.Limit)
}

func TestSearchPaginationReconstructsSet(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	var profiles []domain.Profile
	for i := 0; i < 45; i++ {
		p := testProfile("user", "User", domain.RoleModel, domain.ModelAttributes{})
		p.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		p.UpdatedAt = p.CreatedAt
		profiles = append(profiles, p)
	}
	uc := newUseCase(profiles)

	seen := map[string]int{}
	var collected int
	for page := 1; page <= 3; page++ {
		results, err := uc.Search(context.Background(), domain.SearchFilters{Page: page, Limit: 20})
		require.NoError(t, err)
		if page < 3 {
			assert.Len(t, results.Profiles, 20)
			assert.True(t, results.HasMore)
		} else {
			assert.Len(t, results.Profiles, 5)
			assert.False(t, results.HasMore)
		}
		for _, p := range results.Profiles {
			seen[p.ID.String()]++
			collected++
		}
	}

	assert.Equal(t, 45, collected)
	for id, count := range seen {
		assert.Equal(t, 1, count, "profile %s appeared %d times across pages", id, count)
	}
}

func TestSearchPastTheEndPage(t *testing.T) {
	uc := newUseCase(directory())

	results, err := uc.Search(context.Background(), domain.SearchFilters{Page: 9, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, results.Profiles)
	assert.Equal(t, 5, results.Total)
	assert.False(t, results.HasMore)
}

func TestSearchDefaultsToRelevanceWithQuery(t *testing.T) {
	profiles := directory()
	// "mar" is a prefix of Mar Soto's name and a substring elsewhere.
	uc := newUseCase(profiles)

	results, err := uc.Search(context.Background(), domain.SearchFilters{Query: "mar"})
	require.NoError(t, err)
	require.NotEmpty(t, results.Profiles)
	assert.Equal(t, "marsoto", results.Profiles[0].Username)
}

func TestSearchStorageFailure(t *testing.T) {
	uc := NewSearchUseCase(&fakeProfileRepo{err: errors.New("connection refused")}, zap.NewNop())

	_, err := uc.Search(context.Background(), domain.SearchFilters{})
	require.Error(t, err)
	assert.Equal(t, domain.CodeSearch, domain.CodeOf(err))
}

func TestFeaturedRanksProFirst(t *testing.T) {
	profiles := directory()
	profiles[2].SubscriptionTier = domain.TierPro // anaruiz
	uc := newUseCase(profiles)

	featured, err := uc.Featured(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, featured, 3)
	assert.Equal(t, "anaruiz", featured[0].Username)
}

func TestFeaturedLimitBounds(t *testing.T) {
	uc := newUseCase(directory())

	featured, err := uc.Featured(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, featured, 5, "default limit covers the whole small directory")

	featured, err = uc.Featured(context.Background(), 100)
	require.NoError(t, err)
	assert.Len(t, featured, 5)
}

func TestGetByUsername(t *testing.T) {
	uc := newUseCase(directory())

	profile, _, err := uc.GetByUsername(context.Background(), "anaruiz")
	require.NoError(t, err)
	assert.Equal(t, "Ana Ruiz", profile.FullName)

	_, _, err = uc.GetByUsername(context.Background(), "nobody")
	require.Error(t, err)
	assert.Equal(t, domain.CodeNotFound, domain.CodeOf(err))
}
