package controllers

import (
	"net/http"

	"github.com/edupath/admissions/internal/app/models/dto"
	"github.com/edupath/admissions/internal/app/services"
	"github.com/edupath/admissions/internal/middleware"
	"github.com/gin-gonic/gin"
)

// AdminController serves the admin dashboard
type AdminController struct {
	adminService *services.AdminService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService *services.AdminService) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

// Stats returns dashboard counts
func (c *AdminController) Stats(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	stats, err := c.adminService.Stats(ctx, actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats, ""))
}
