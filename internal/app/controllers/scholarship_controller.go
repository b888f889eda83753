package controllers

import (
	"net/http"

	"github.com/edupath/admissions/internal/app/models/dto"
	"github.com/edupath/admissions/internal/app/services"
	"github.com/edupath/admissions/internal/middleware"
	"github.com/edupath/admissions/internal/pkg/apperrors"
	"github.com/gin-gonic/gin"
)

// ScholarshipController handles scholarship endpoints
type ScholarshipController struct {
	scholarshipService services.ScholarshipService
}

// NewScholarshipController creates a new ScholarshipController
func NewScholarshipController(scholarshipService services.ScholarshipService) *ScholarshipController {
	return &ScholarshipController{
		scholarshipService: scholarshipService,
	}
}

func (c *ScholarshipController) List(ctx *gin.Context) {
	scholarships, err := c.scholarshipService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(scholarships, ""))
}

func (c *ScholarshipController) GetByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", "scholarship")
	if !ok {
		return
	}

	scholarship, err := c.scholarshipService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(scholarship, ""))
}

func (c *ScholarshipController) Create(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	var req dto.ScholarshipRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	scholarship, err := req.ToModel()
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError(err.Error()))
		return
	}

	if _, err := c.scholarshipService.Create(ctx, actor, scholarship); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(scholarship, "Scholarship created successfully"))
}

func (c *ScholarshipController) Update(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	id, ok := pathID(ctx, "id", "scholarship")
	if !ok {
		return
	}

	var req dto.ScholarshipRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	scholarship, err := req.ToModel()
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError(err.Error()))
		return
	}
	scholarship.ID = id

	if err := c.scholarshipService.Update(ctx, actor, scholarship); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(scholarship, "Scholarship updated successfully"))
}

func (c *ScholarshipController) Delete(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	id, ok := pathID(ctx, "id", "scholarship")
	if !ok {
		return
	}

	if err := c.scholarshipService.Delete(ctx, actor, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Scholarship deleted successfully"))
}
