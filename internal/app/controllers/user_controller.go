package controllers

import (
	"net/http"

	"github.com/edupath/admissions/internal/app/models/dto"
	"github.com/edupath/admissions/internal/app/services"
	"github.com/edupath/admissions/internal/middleware"
	"github.com/gin-gonic/gin"
)

// UserController handles profile and eligibility endpoints
type UserController struct {
	userService       services.UserService
	universityService services.UniversityService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService, universityService services.UniversityService) *UserController {
	return &UserController{
		userService:       userService,
		universityService: universityService,
	}
}

// GetMe returns the caller's profile
func (c *UserController) GetMe(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	user, err := c.userService.GetProfile(ctx, actor.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(user, ""))
}

// UpdateProfile changes name, grades and group of a user
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	userID, ok := pathID(ctx, "id", "user")
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	user, err := c.userService.UpdateProfile(ctx, actor, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(user, "Profile updated successfully"))
}

// Eligibility returns an eligibility badge for every university
func (c *UserController) Eligibility(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	userID, ok := pathID(ctx, "id", "user")
	if !ok {
		return
	}

	results, err := c.universityService.EvaluateForUser(ctx, actor, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(results, ""))
}

// EligibleUniversities returns the universities the user qualifies for
func (c *UserController) EligibleUniversities(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	userID, ok := pathID(ctx, "id", "user")
	if !ok {
		return
	}

	universities, err := c.universityService.ListEligible(ctx, actor, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(universities, ""))
}

// ListUsers lists every user with an online flag
func (c *UserController) ListUsers(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	users, err := c.userService.ListForAdmin(ctx, actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(users, ""))
}
