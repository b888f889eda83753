package controllers

import (
	"net/http"

	authz "github.com/edupath/admissions/internal/app/auth"
	"github.com/edupath/admissions/internal/app/models/dto"
	"github.com/edupath/admissions/internal/middleware"
	"github.com/edupath/admissions/internal/pkg/helpers"
	"github.com/gin-gonic/gin"
)

// requireActor returns the authenticated caller or writes a 401
func requireActor(ctx *gin.Context) (authz.Actor, bool) {
	actor, ok := middleware.ActorFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return authz.Actor{}, false
	}
	return actor, true
}

// pathID parses a positive ID path parameter or writes a 400
func pathID(ctx *gin.Context, name, label string) (int64, bool) {
	id, ok := helpers.ParseIDParam(ctx, name)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+label+" ID").
			WithField(name).
			WithDetails(label + " ID must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
