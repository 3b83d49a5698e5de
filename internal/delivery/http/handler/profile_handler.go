package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/focoteam/foco-backend/internal/domain"
	"github.com/focoteam/foco-backend/internal/usecase/search"
)

type ProfileHandler struct {
	searchUseCase *search.SearchUseCase
}

func NewProfileHandler(searchUseCase *search.SearchUseCase) *ProfileHandler {
	return &ProfileHandler{searchUseCase: searchUseCase}
}

type featuredQuery struct {
	Limit int `form:"limit,default=6"`
}

// Featured handles GET /profiles/featured: the homepage listing ranked by
// the computed featured score.
func (h *ProfileHandler) Featured(c *gin.Context) {
	var q featuredQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, http.StatusBadRequest, domain.CodeValidation, "malformed parameters")
		return
	}

	profiles, err := h.searchUseCase.Featured(c.Request.Context(), q.Limit)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	respondData(c, http.StatusOK, profiles)
}

type profileDetail struct {
	domain.Profile
	Portfolio []domain.PortfolioImage `json:"portfolio"`
}

// GetByUsername handles GET /profiles/:username.
func (h *ProfileHandler) GetByUsername(c *gin.Context) {
	profile, images, err := h.searchUseCase.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	if images == nil {
		images = []domain.PortfolioImage{}
	}
	respondData(c, http.StatusOK, profileDetail{Profile: *profile, Portfolio: images})
}
