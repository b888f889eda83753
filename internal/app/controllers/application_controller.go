package controllers

import (
	"context"
	"net/http"

	authz "github.com/edupath/admissions/internal/app/auth"
	"github.com/edupath/admissions/internal/app/models"
	"github.com/edupath/admissions/internal/app/models/dto"
	"github.com/edupath/admissions/internal/app/services"
	"github.com/edupath/admissions/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ApplicationController handles university and scholarship application endpoints
type ApplicationController struct {
	applicationService *services.ApplicationService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService *services.ApplicationService) *ApplicationController {
	return &ApplicationController{
		applicationService: applicationService,
	}
}

// toStatusChangeResponse flattens a decision for the wire
func toStatusChangeResponse(change *services.StatusChange) dto.StatusChangeResponse {
	resp := dto.StatusChangeResponse{ID: change.ID, Status: change.Status}
	if change.Dispatch != nil {
		resp.Notification = change.Dispatch.Notification
		resp.Delivery = string(change.Dispatch.Delivery)
	}
	return resp
}

type decideFunc func(ctx context.Context, actor authz.Actor, id int64, status models.Status) (*services.StatusChange, error)

// decide runs an admin status change against the record named by the id path parameter
func decide(ctx *gin.Context, label string, fn decideFunc) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id", label)
	if !ok {
		return
	}

	var req dto.StatusUpdateRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	change, err := fn(ctx, actor, id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(toStatusChangeResponse(change), "Status updated successfully"))
}

// Apply submits a university application
func (c *ApplicationController) Apply(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	var req dto.CreateApplicationRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	app, err := c.applicationService.Apply(ctx, actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(app, "Application submitted successfully"))
}

// ApplyForScholarship submits a scholarship application
func (c *ApplicationController) ApplyForScholarship(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	var req dto.CreateScholarshipApplicationRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	app, err := c.applicationService.ApplyForScholarship(ctx, actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(app, "Scholarship application submitted successfully"))
}

// ListForUser returns both kinds of applications of a user
func (c *ApplicationController) ListForUser(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	userID, ok := pathID(ctx, "userId", "user")
	if !ok {
		return
	}

	apps, err := c.applicationService.ListForUser(ctx, actor, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(apps, ""))
}

// ListAll returns every application with student details
func (c *ApplicationController) ListAll(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	apps, err := c.applicationService.ListAll(ctx, actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(apps, ""))
}

// UpdateStatus decides a university application
func (c *ApplicationController) UpdateStatus(ctx *gin.Context) {
	decide(ctx, "application", c.applicationService.UpdateStatus)
}

// UpdateScholarshipStatus decides a scholarship application
func (c *ApplicationController) UpdateScholarshipStatus(ctx *gin.Context) {
	decide(ctx, "scholarship application", c.applicationService.UpdateScholarshipStatus)
}
