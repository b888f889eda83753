package services

import (
	"context"
	"fmt"
	"strings"

	authz "github.com/edupath/admissions/internal/app/auth"
	"github.com/edupath/admissions/internal/app/models"
	"github.com/edupath/admissions/internal/app/models/dto"
	"github.com/edupath/admissions/internal/app/repositories"
	"github.com/edupath/admissions/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// DocumentService manages submitted document metadata
type DocumentService struct {
	docs     repositories.IDocumentRepository
	notifier Notifier
	authz    AdminVerifier
	logger   zerolog.Logger
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(docs repositories.IDocumentRepository, notifier Notifier, verifier AdminVerifier, logger zerolog.Logger) *DocumentService {
	return &DocumentService{
		docs:     docs,
		notifier: notifier,
		authz:    verifier,
		logger:   logger,
	}
}

// Submit records a pending document for a student
func (s *DocumentService) Submit(ctx context.Context, actor authz.Actor, req *dto.CreateDocumentRequest) (*models.Document, error) {
	userID, err := resolveApplicant(actor, req.UserID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("document name cannot be empty")
	}

	doc := &models.Document{UserID: userID, Name: name, Type: strings.TrimSpace(req.Type)}
	if _, err := s.docs.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("error creating document: %w", err)
	}

	s.logger.Info().Int64("documentID", doc.ID).Int64("userID", userID).Msg("Document submitted")
	return doc, nil
}

// ListForUser returns a student's documents, newest first
func (s *DocumentService) ListForUser(ctx context.Context, actor authz.Actor, userID int64) ([]*models.Document, error) {
	if err := authz.CanAccessUser(actor, userID); err != nil {
		return nil, err
	}

	docs, err := s.docs.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving documents: %w", err)
	}
	return docs, nil
}

// ListPending returns documents awaiting a decision
func (s *DocumentService) ListPending(ctx context.Context, actor authz.Actor) ([]*models.Document, error) {
	if err := s.authz.ValidateAdmin(ctx, actor); err != nil {
		return nil, err
	}

	docs, err := s.docs.ListByStatus(ctx, models.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("error retrieving pending documents: %w", err)
	}
	return docs, nil
}

// UpdateStatus decides a pending document and notifies its owner
func (s *DocumentService) UpdateStatus(ctx context.Context, actor authz.Actor, docID int64, status models.Status) (*StatusChange, error) {
	if err := checkDecision(ctx, s.authz, actor, status); err != nil {
		return nil, err
	}

	doc, err := s.docs.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}
	if !doc.Status.CanTransitionTo(status) {
		return nil, apperrors.ErrInvalidTransition
	}

	changed, err := s.docs.UpdateStatusIfPending(ctx, docID, status)
	if err != nil {
		return nil, fmt.Errorf("error updating document status: %w", err)
	}
	if !changed {
		return nil, apperrors.ErrInvalidTransition
	}

	s.logger.Info().
		Int64("documentID", docID).
		Int64("userID", doc.UserID).
		Int64("actorID", actor.UserID).
		Str("status", string(status)).
		Msg("Document decided")

	dispatch, err := s.notifier.Notify(ctx, doc.UserID, fmt.Sprintf("Your document \"%s\" has been %s.", doc.Name, status))
	if err != nil {
		return nil, fmt.Errorf("status updated but notification failed: %w", err)
	}

	return &StatusChange{ID: docID, Status: status, Dispatch: dispatch}, nil
}
