package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/architect/soundlearn/internal/catalog"
	"github.com/architect/soundlearn/internal/common/errors"
	"github.com/architect/soundlearn/internal/common/middleware"
)

// SoundsHandler serves the built-in sound catalog.
type SoundsHandler struct {
	catalog *catalog.Catalog
}

func NewSoundsHandler(cat *catalog.Catalog) *SoundsHandler {
	if cat == nil {
		cat = catalog.Default
	}
	return &SoundsHandler{catalog: cat}
}

type CategoryInfo struct {
	Category catalog.Category `json:"category"`
	Count    int              `json:"count"`
}

// Register mounts /sounds routes on r.
func (h *SoundsHandler) Register(r gin.IRouter) {
	g := r.Group("/sounds")
	g.GET("", h.List)
	g.GET("/categories", h.Categories)
	g.GET("/categories/:category", h.ByCategory)
}

// List returns every sound
func (h *SoundsHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.All())
}

// Categories returns the category names with their item counts
func (h *SoundsHandler) Categories(c *gin.Context) {
	out := make([]CategoryInfo, 0, len(catalog.Categories()))
	for _, cat := range catalog.Categories() {
		out = append(out, CategoryInfo{Category: cat, Count: len(h.catalog.ByCategory(cat))})
	}
	c.JSON(http.StatusOK, out)
}

// ByCategory returns the sounds of one category
func (h *SoundsHandler) ByCategory(c *gin.Context) {
	cat, err := catalog.ParseCategory(c.Param("category"))
	if err != nil {
		middleware.JSONErrorResponse(c, errors.NotFound("Category"))
		return
	}
	c.JSON(http.StatusOK, h.catalog.ByCategory(cat))
}
