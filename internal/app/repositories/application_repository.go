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

// ApplicationRepository handles university application database operations
type ApplicationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *ApplicationRepository) selectJoined() squirrel.SelectBuilder {
	return r.sb.Select(
		"a.id", "a.user_id", "a.university_id", "a.status", "a.applied_at",
		"u.name", "us.name", "us.email",
	).
		From("applications a").
		LeftJoin("universities u ON u.id = a.university_id").
		LeftJoin("users us ON us.id = a.user_id")
}

func scanApplication(row scanner) (*models.UniversityApplication, error) {
	a := &models.UniversityApplication{}
	err := row.Scan(
		&a.ID, &a.UserID, &a.UniversityID, &a.Status, &a.AppliedAt,
		&a.UniversityName, &a.StudentName, &a.StudentEmail,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *ApplicationRepository) query(ctx context.Context, query squirrel.SelectBuilder) ([]*models.UniversityApplication, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list applications SQL")
		return nil, fmt.Errorf("failed to build list applications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list applications query")
		return nil, fmt.Errorf("error querying applications: %w", err)
	}
	defer rows.Close()

	apps := []*models.UniversityApplication{}
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning application row")
			return nil, fmt.Errorf("error scanning application row: %w", err)
		}
		apps = append(apps, app)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating application rows")
		return nil, fmt.Errorf("error iterating application rows: %w", err)
	}

	return apps, nil
}

// Create inserts a pending application
func (r *ApplicationRepository) Create(ctx context.Context, app *models.UniversityApplication) (int64, error) {
	sql, args, err := r.sb.Insert("applications").
		Columns("user_id", "university_id", "status").
		Values(app.UserID, app.UniversityID, models.StatusPending).
		Suffix("RETURNING id, status, applied_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create application SQL")
		return 0, fmt.Errorf("failed to build create application query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&app.ID, &app.Status, &app.AppliedAt); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", app.UserID).Int64("universityID", app.UniversityID).Msg("Error executing create application query")
		return 0, fmt.Errorf("error creating application: %w", err)
	}

	return app.ID, nil
}

// GetByID retrieves an application with joined names
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*models.UniversityApplication, error) {
	sql, args, err := r.selectJoined().
		Where(squirrel.Eq{"a.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get application by ID SQL")
		return nil, fmt.Errorf("failed to build get application query: %w", err)
	}

	app, err := scanApplication(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		logger.Error().Err(err).Int64("applicationID", id).Msg("Error scanning application row")
		return nil, fmt.Errorf("error getting application by ID: %w", err)
	}

	return app, nil
}

// ListByUser returns a student's applications, newest first
func (r *ApplicationRepository) ListByUser(ctx context.Context, userID int64) ([]*models.UniversityApplication, error) {
	return r.query(ctx, r.selectJoined().
		Where(squirrel.Eq{"a.user_id": userID}).
		OrderBy("a.applied_at DESC", "a.id DESC"))
}

// ListAll returns every application, newest first
func (r *ApplicationRepository) ListAll(ctx context.Context) ([]*models.UniversityApplication, error) {
	return r.query(ctx, r.selectJoined().
		OrderBy("a.applied_at DESC", "a.id DESC"))
}

// UpdateStatusIfPending sets the status only while the application is still
// pending and reports whether a row changed.
func (r *ApplicationRepository) UpdateStatusIfPending(ctx context.Context, id int64, status models.Status) (bool, error) {
	sql, args, err := pendingStatusUpdate(r.sb, "applications", id, status).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update application status SQL")
		return false, fmt.Errorf("failed to build update application status query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("applicationID", id).Msg("Error executing update application status query")
		return false, fmt.Errorf("error updating application status: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}

var _ IApplicationRepository = (*ApplicationRepository)(nil)
