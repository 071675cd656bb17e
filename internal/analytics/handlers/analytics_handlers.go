package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/architect/soundlearn/internal/analytics/models"
	"github.com/architect/soundlearn/internal/analytics/services"
	"github.com/architect/soundlearn/internal/common/middleware"
	"github.com/architect/soundlearn/internal/common/validation"
)

// RegisterRoutes mounts the analytics endpoints on r.
func RegisterRoutes(r gin.IRouter) {
	g := r.Group("/analytics")
	g.GET("/user/:userId", GetAnalytics)
	g.DELETE("/user/:userId", ResetAnalytics)
	g.POST("/track-attempt", TrackAttempt)
	g.POST("/track-session", TrackSession)
	g.GET("/summary/:userId", GetSummary)
	g.GET("/breakdown/:userId", GetBreakdown)
}

// GetAnalytics returns the user's analytics document
func GetAnalytics(c *gin.Context) {
	resp, err := services.GetAnalytics(c.Param("userId"))
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// TrackAttempt records one answer
func TrackAttempt(c *gin.Context) {
	var req models.TrackAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, validation.FromBinding(err))
		return
	}

	resp, err := services.TrackAttempt(req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// TrackSession records one play session
func TrackSession(c *gin.Context) {
	var req models.TrackSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, validation.FromBinding(err))
		return
	}

	resp, err := services.TrackSession(req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetSummary returns success rate, attempts, time and favorite mode
func GetSummary(c *gin.Context) {
	summary, err := services.GetSummary(c.Param("userId"))
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetBreakdown returns per-category and per-mode statistics
func GetBreakdown(c *gin.Context) {
	breakdown, err := services.GetBreakdown(c.Param("userId"))
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, breakdown)
}

// ResetAnalytics clears the user's analytics
func ResetAnalytics(c *gin.Context) {
	if err := services.ResetAnalytics(c.Param("userId")); err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Analytics reset successfully"})
}
