package main

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	analyticsHandlers "github.com/architect/soundlearn/internal/analytics/handlers"
	analyticsModels "github.com/architect/soundlearn/internal/analytics/models"
	cardHandlers "github.com/architect/soundlearn/internal/cards/handlers"
	cardModels "github.com/architect/soundlearn/internal/cards/models"
	"github.com/architect/soundlearn/internal/catalog"
	soundHandlers "github.com/architect/soundlearn/internal/catalog/handlers"
	commonHandlers "github.com/architect/soundlearn/internal/common/handlers"
	"github.com/architect/soundlearn/internal/common/health"
	"github.com/architect/soundlearn/internal/common/metrics"
	"github.com/architect/soundlearn/internal/common/middleware"
	contentHandlers "github.com/architect/soundlearn/internal/games/handlers"
	userHandlers "github.com/architect/soundlearn/internal/users/handlers"
	userModels "github.com/architect/soundlearn/internal/users/models"
)

const version = "1.0.0"

// schema lists every server collection.
func schema() []interface{} {
	return []interface{}{
		&userModels.User{},
		&cardModels.CustomCard{},
		&analyticsModels.Analytics{},
	}
}

func newRouter(db *gorm.DB, cat *catalog.Catalog, m *metrics.Metrics) *gin.Engine {
	router := gin.New()

	// Apply middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.Metrics(m))
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.ErrorHandler())

	commonHandlers.NewHealthHandler(health.NewHealthChecker(db, version)).Register(router)
	router.GET("/metrics", gin.WrapH(m.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		userHandlers.RegisterRoutes(v1)
		cardHandlers.RegisterRoutes(v1)
		analyticsHandlers.RegisterRoutes(v1)
		soundHandlers.NewSoundsHandler(cat).Register(v1)
		contentHandlers.NewContentHandler(cat, nil).Register(v1)
	}
	return router
}
