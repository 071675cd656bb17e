package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/architect/soundlearn/internal/cards/models"
	"github.com/architect/soundlearn/internal/cards/services"
	"github.com/architect/soundlearn/internal/common/middleware"
	"github.com/architect/soundlearn/internal/common/validation"
)

// RegisterRoutes mounts the custom card endpoints on r.
func RegisterRoutes(r gin.IRouter) {
	cards := r.Group("/cards")
	cards.GET("/user/:userId", GetUserCards)
	cards.GET("/public", GetPublicCards)
	cards.POST("", CreateCard)
	cards.PATCH("/:id", UpdateCard)
	cards.POST("/:id/use", UseCard)
	cards.DELETE("/:id", DeleteCard)
}

// GetUserCards lists a user's cards
func GetUserCards(c *gin.Context) {
	cards, err := services.GetUserCards(c.Param("userId"))
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

// GetPublicCards lists shared cards
func GetPublicCards(c *gin.Context) {
	cards, err := services.GetPublicCards()
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

// CreateCard adds a card
func CreateCard(c *gin.Context) {
	var req models.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, validation.FromBinding(err))
		return
	}

	card, err := services.CreateCard(req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusCreated, card)
}

// UpdateCard changes card fields
func UpdateCard(c *gin.Context) {
	var req models.UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, validation.FromBinding(err))
		return
	}

	card, err := services.UpdateCard(c.Param("id"), req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

// UseCard increments a card's usage count
func UseCard(c *gin.Context) {
	card, err := services.UseCard(c.Param("id"))
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

// DeleteCard removes a card
func DeleteCard(c *gin.Context) {
	if err := services.DeleteCard(c.Param("id")); err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, models.DeleteResponse{Message: "Card deleted successfully"})
}
