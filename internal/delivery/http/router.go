package http

import (
	"github.com/gin-gonic/gin"

	"github.com/focoteam/foco-backend/internal/delivery/http/handler"
	"github.com/focoteam/foco-backend/internal/delivery/http/middleware"
)

type Router struct {
	searchHandler  *handler.SearchHandler
	profileHandler *handler.ProfileHandler
	identity       *middleware.Identity
	rateLimit      gin.HandlerFunc
	requestLogger  gin.HandlerFunc
}

// NewRouter wires the HTTP surface. rateLimit may be nil when no counter
// store is configured.
func NewRouter(
	searchHandler *handler.SearchHandler,
	profileHandler *handler.ProfileHandler,
	identity *middleware.Identity,
	rateLimit gin.HandlerFunc,
	requestLogger gin.HandlerFunc,
) *Router {
	return &Router{
		searchHandler:  searchHandler,
		profileHandler: profileHandler,
		identity:       identity,
		rateLimit:      rateLimit,
		requestLogger:  requestLogger,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), r.requestLogger)

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	v1 := router.Group("/api/v1")
	v1.Use(r.identity.Optional())
	if r.rateLimit != nil {
		v1.Use(r.rateLimit)
	}
	{
		searchGroup := v1.Group("/search")
		{
			searchGroup.GET("", r.searchHandler.Search)
			searchGroup.GET("/suggestions", r.searchHandler.Suggestions)
			searchGroup.GET("/filters", r.searchHandler.FilterOptions)
		}

		profiles := v1.Group("/profiles")
		{
			profiles.GET("/featured", r.profileHandler.Featured)
			profiles.GET("/:username", r.profileHandler.GetByUsername)
		}
	}

	return router
}
