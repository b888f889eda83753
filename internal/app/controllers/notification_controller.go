package controllers

import (
	"net/http"

	authz "github.com/edupath/admissions/internal/app/auth"
	"github.com/edupath/admissions/internal/app/models/dto"
	"github.com/edupath/admissions/internal/app/services"
	"github.com/edupath/admissions/internal/middleware"
	"github.com/edupath/admissions/internal/pkg/helpers"
	"github.com/gin-gonic/gin"
)

// NotificationController handles the notification inbox
type NotificationController struct {
	notificationService *services.NotificationService
	pageSize            int
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(notificationService *services.NotificationService, pageSize int) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
		pageSize:            pageSize,
	}
}

// inboxOwner resolves the userId path parameter and checks the caller may read it
func inboxOwner(ctx *gin.Context) (int64, bool) {
	actor, ok := requireActor(ctx)
	if !ok {
		return 0, false
	}
	userID, ok := pathID(ctx, "userId", "user")
	if !ok {
		return 0, false
	}
	if err := authz.CanAccessUser(actor, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return 0, false
	}
	return userID, true
}

// List returns the newest notifications of a user, capped by ?limit=
func (c *NotificationController) List(ctx *gin.Context) {
	userID, ok := inboxOwner(ctx)
	if !ok {
		return
	}

	notifications, err := c.notificationService.ListForUser(ctx, userID, helpers.ParseLimitParam(ctx, c.pageSize))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(notifications, ""))
}

// UnreadCount returns how many notifications of a user are unread
func (c *NotificationController) UnreadCount(ctx *gin.Context) {
	userID, ok := inboxOwner(ctx)
	if !ok {
		return
	}

	count, err := c.notificationService.UnreadCount(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.UnreadCountResponse{Count: count}, ""))
}

// MarkRead marks all notifications of a user as read
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	var req dto.MarkReadRequest
	if ctx.Request.ContentLength > 0 && !middleware.BindJSON(ctx, &req) {
		return
	}

	userID := req.UserID
	if userID == 0 {
		userID = actor.UserID
	}
	if err := authz.CanAccessUser(actor, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	updated, err := c.notificationService.MarkAllRead(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MarkReadResponse{Updated: updated}, "Notifications marked as read"))
}
