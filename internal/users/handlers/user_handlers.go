package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/architect/soundlearn/internal/common/middleware"
	"github.com/architect/soundlearn/internal/common/validation"
	"github.com/architect/soundlearn/internal/progress"
	"github.com/architect/soundlearn/internal/users/models"
	"github.com/architect/soundlearn/internal/users/services"
)

// RegisterRoutes mounts the user endpoints on r.
func RegisterRoutes(r gin.IRouter) {
	users := r.Group("/users")
	users.GET("", ListUsers)
	users.POST("", CreateUser)
	users.GET("/:id", GetUser)
	users.PATCH("/:id/progress", UpdateProgress)
	users.PATCH("/:id/settings", UpdateSettings)
	users.DELETE("/:id", DeleteUser)
}

// ListUsers returns all users
func ListUsers(c *gin.Context) {
	users, err := services.ListUsers()
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser returns one user
func GetUser(c *gin.Context) {
	user, err := services.GetUser(c.Param("id"))
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateUser registers a child profile
func CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, validation.FromBinding(err))
		return
	}

	user, err := services.CreateUser(req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// UpdateProgress merges progress fields
func UpdateProgress(c *gin.Context) {
	var patch progress.CountersPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		middleware.JSONErrorResponse(c, validation.FromBinding(err))
		return
	}

	user, err := services.UpdateProgress(c.Param("id"), patch)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateSettings merges settings fields
func UpdateSettings(c *gin.Context) {
	var patch progress.SettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		middleware.JSONErrorResponse(c, validation.FromBinding(err))
		return
	}

	user, err := services.UpdateSettings(c.Param("id"), patch)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser removes a user
func DeleteUser(c *gin.Context) {
	if err := services.DeleteUser(c.Param("id")); err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, models.DeleteResponse{Message: "User deleted successfully"})
}
