package controllers

import (
	"net/http"

	"github.com/edupath/admissions/internal/app/models"
	"github.com/edupath/admissions/internal/app/models/dto"
	"github.com/edupath/admissions/internal/app/services"
	"github.com/edupath/admissions/internal/middleware"
	"github.com/gin-gonic/gin"
)

// UniversityController handles university endpoints
type UniversityController struct {
	universityService services.UniversityService
}

// NewUniversityController creates a new UniversityController
func NewUniversityController(universityService services.UniversityService) *UniversityController {
	return &UniversityController{
		universityService: universityService,
	}
}

// List returns universities filtered by ?q= and ?type=
func (c *UniversityController) List(ctx *gin.Context) {
	filter := models.UniversityFilter{
		Search: ctx.Query("q"),
		Type:   models.UniversityType(ctx.Query("type")),
	}

	universities, err := c.universityService.List(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(universities, ""))
}

// GetByID returns a single university
func (c *UniversityController) GetByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", "university")
	if !ok {
		return
	}

	university, err := c.universityService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(university, ""))
}

// Create adds a university
func (c *UniversityController) Create(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	var req dto.UniversityRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	university := req.ToModel()
	if _, err := c.universityService.Create(ctx, actor, university); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(university, "University created successfully"))
}

// Update replaces a university
func (c *UniversityController) Update(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	id, ok := pathID(ctx, "id", "university")
	if !ok {
		return
	}

	var req dto.UniversityRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	university := req.ToModel()
	university.ID = id
	if err := c.universityService.Update(ctx, actor, university); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(university, "University updated successfully"))
}

// Delete removes a university
func (c *UniversityController) Delete(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	id, ok := pathID(ctx, "id", "university")
	if !ok {
		return
	}

	if err := c.universityService.Delete(ctx, actor, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "University deleted successfully"))
}
