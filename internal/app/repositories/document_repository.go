package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/edupath/admissions/internal/app/models"
	"github.com/edupath/admissions/internal/pkg/apperrors"
	"github.com/edupath/admissions/internal/pkg/dberrors"
	"github.com/edupath/admissions/internal/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var documentColumns = []string{"id", "user_id", "name", "type", "status", "created_at"}

// DocumentRepository handles document metadata database operations
type DocumentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewDocumentRepository creates a new DocumentRepository
func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanDocument(row scanner) (*models.Document, error) {
	d := &models.Document{}
	if err := row.Scan(&d.ID, &d.UserID, &d.Name, &d.Type, &d.Status, &d.CreatedAt); err != nil {
		return nil, err
	}
	return d, nil
}

func (r *DocumentRepository) query(ctx context.Context, query squirrel.SelectBuilder) ([]*models.Document, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list documents SQL")
		return nil, fmt.Errorf("failed to build list documents query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list documents query")
		return nil, fmt.Errorf("error querying documents: %w", err)
	}
	defer rows.Close()

	docs := []*models.Document{}
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning document row")
			return nil, fmt.Errorf("error scanning document row: %w", err)
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating document rows")
		return nil, fmt.Errorf("error iterating document rows: %w", err)
	}

	return docs, nil
}

// Create records a submitted document as pending
func (r *DocumentRepository) Create(ctx context.Context, doc *models.Document) (int64, error) {
	sql, args, err := r.sb.Insert("documents").
		Columns("user_id", "name", "type", "status").
		Values(doc.UserID, doc.Name, doc.Type, models.StatusPending).
		Suffix("RETURNING id, status, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create document SQL")
		return 0, fmt.Errorf("failed to build create document query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&doc.ID, &doc.Status, &doc.CreatedAt); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", doc.UserID).Msg("Error executing create document query")
		return 0, fmt.Errorf("error creating document: %w", err)
	}

	return doc.ID, nil
}

// GetByID retrieves a document by ID
func (r *DocumentRepository) GetByID(ctx context.Context, id int64) (*models.Document, error) {
	sql, args, err := r.sb.Select(documentColumns...).
		From("documents").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get document by ID SQL")
		return nil, fmt.Errorf("failed to build get document query: %w", err)
	}

	doc, err := scanDocument(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDocumentNotFound
		}
		logger.Error().Err(err).Int64("documentID", id).Msg("Error scanning document row")
		return nil, fmt.Errorf("error getting document by ID: %w", err)
	}

	return doc, nil
}

// ListByUser returns a student's documents, newest first
func (r *DocumentRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Document, error) {
	return r.query(ctx, r.sb.Select(documentColumns...).
		From("documents").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC"))
}

// ListByStatus returns documents in the given state, oldest first
func (r *DocumentRepository) ListByStatus(ctx context.Context, status models.Status) ([]*models.Document, error) {
	return r.query(ctx, r.sb.Select(documentColumns...).
		From("documents").
		Where(squirrel.Eq{"status": status}).
		OrderBy("created_at ASC", "id ASC"))
}

// UpdateStatusIfPending sets the status only while the document is still pending
func (r *DocumentRepository) UpdateStatusIfPending(ctx context.Context, id int64, status models.Status) (bool, error) {
	sql, args, err := pendingStatusUpdate(r.sb, "documents", id, status).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update document status SQL")
		return false, fmt.Errorf("failed to build update document status query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("documentID", id).Msg("Error executing update document status query")
		return false, fmt.Errorf("error updating document status: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}

var _ IDocumentRepository = (*DocumentRepository)(nil)
