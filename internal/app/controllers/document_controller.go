package controllers

import (
	"net/http"

	"github.com/edupath/admissions/internal/app/models/dto"
	"github.com/edupath/admissions/internal/app/services"
	"github.com/edupath/admissions/internal/middleware"
	"github.com/gin-gonic/gin"
)

// DocumentController handles document metadata endpoints
type DocumentController struct {
	documentService *services.DocumentService
}

// NewDocumentController creates a new DocumentController
func NewDocumentController(documentService *services.DocumentService) *DocumentController {
	return &DocumentController{
		documentService: documentService,
	}
}

func (c *DocumentController) Submit(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	var req dto.CreateDocumentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	doc, err := c.documentService.Submit(ctx, actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(doc, "Document submitted successfully"))
}

func (c *DocumentController) ListForUser(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	userID, ok := pathID(ctx, "userId", "user")
	if !ok {
		return
	}

	docs, err := c.documentService.ListForUser(ctx, actor, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(docs, ""))
}

func (c *DocumentController) ListPending(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	docs, err := c.documentService.ListPending(ctx, actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(docs, ""))
}

func (c *DocumentController) UpdateStatus(ctx *gin.Context) {
	decide(ctx, "document", c.documentService.UpdateStatus)
}
