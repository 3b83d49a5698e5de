package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/focoteam/foco-backend/internal/domain"
	"github.com/focoteam/foco-backend/internal/usecase/search"
	"github.com/focoteam/foco-backend/internal/usecase/suggest"
)

type SearchHandler struct {
	searchUseCase  *search.SearchUseCase
	suggestUseCase *suggest.SuggestUseCase
}

func NewSearchHandler(searchUseCase *search.SearchUseCase, suggestUseCase *suggest.SuggestUseCase) *SearchHandler {
	return &SearchHandler{
		searchUseCase:  searchUseCase,
		suggestUseCase: suggestUseCase,
	}
}

type searchQuery struct {
	Query              string `form:"query"`
	Role               string `form:"role"`
	Location           string `form:"location"`
	ExperienceLevel    string `form:"experience_level"`
	Specialties        string `form:"specialties"`
	TravelAvailability *bool  `form:"travel_availability"`
	StudioAccess       *bool  `form:"studio_access"`
	BudgetRange        string `form:"budget_range"`
	Page               int    `form:"page,default=1"`
	Limit              int    `form:"limit,default=20"`
	SortBy             string `form:"sortBy"`
	SortOrder          string `form:"sortOrder"`
}

// Search handles GET /search.
//
// Out-of-range paging values clamp rather than reject; an unknown role
// simply matches nothing. The only request shapes rejected outright are
// ones the query binder cannot type (e.g. a non-boolean travel flag).
func (h *SearchHandler) Search(c *gin.Context) {
	var q searchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, http.StatusBadRequest, domain.CodeValidation, "malformed search parameters")
		return
	}

	filters := domain.SearchFilters{
		Query:              strings.TrimSpace(q.Query),
		Role:               q.Role,
		Location:           q.Location,
		ExperienceLevel:    q.ExperienceLevel,
		Specialties:        splitCSV(q.Specialties),
		TravelAvailability: q.TravelAvailability,
		StudioAccess:       q.StudioAccess,
		BudgetRange:        q.BudgetRange,
		SortBy:             domain.SortBy(q.SortBy),
		SortOrder:          domain.SortOrder(q.SortOrder),
		Page:               q.Page,
		Limit:              q.Limit,
	}

	results, err := h.searchUseCase.Search(c.Request.Context(), filters)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	respondData(c, http.StatusOK, results)
}

type suggestionQuery struct {
	Q     string `form:"q"`
	Type  string `form:"type"`
	Limit int    `form:"limit,default=10"`
}

// Suggestions handles GET /search/suggestions. Degenerate input is an empty
// array, never an error: this endpoint always answers 200.
func (h *SearchHandler) Suggestions(c *gin.Context) {
	var q suggestionQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondData(c, http.StatusOK, []domain.Suggestion{})
		return
	}

	suggestions := h.suggestUseCase.Suggest(c.Request.Context(), q.Q, q.Type, q.Limit)
	respondData(c, http.StatusOK, suggestions)
}

// FilterOptions handles GET /search/filters: the vocabulary the client
// renders in its filter pickers.
func (h *SearchHandler) FilterOptions(c *gin.Context) {
	respondData(c, http.StatusOK, h.suggestUseCase.FilterOptions(c.Request.Context()))
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
