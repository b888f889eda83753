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

// ScholarshipApplicationRepository handles scholarship application database operations
type ScholarshipApplicationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewScholarshipApplicationRepository creates a new ScholarshipApplicationRepository
func NewScholarshipApplicationRepository(db *pgxpool.Pool) *ScholarshipApplicationRepository {
	return &ScholarshipApplicationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *ScholarshipApplicationRepository) selectJoined() squirrel.SelectBuilder {
	return r.sb.Select(
		"sa.id", "sa.user_id", "sa.scholarship_id", "sa.status", "sa.applied_at",
		"s.name", "u.name", "us.name", "us.email",
	).
		From("scholarship_applications sa").
		LeftJoin("scholarships s ON s.id = sa.scholarship_id").
		LeftJoin("universities u ON u.id = s.university_id").
		LeftJoin("users us ON us.id = sa.user_id")
}

func scanScholarshipApplication(row scanner) (*models.ScholarshipApplication, error) {
	a := &models.ScholarshipApplication{}
	err := row.Scan(
		&a.ID, &a.UserID, &a.ScholarshipID, &a.Status, &a.AppliedAt,
		&a.ScholarshipName, &a.UniversityName, &a.StudentName, &a.StudentEmail,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *ScholarshipApplicationRepository) query(ctx context.Context, query squirrel.SelectBuilder) ([]*models.ScholarshipApplication, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list scholarship applications SQL")
		return nil, fmt.Errorf("failed to build list scholarship applications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list scholarship applications query")
		return nil, fmt.Errorf("error querying scholarship applications: %w", err)
	}
	defer rows.Close()

	apps := []*models.ScholarshipApplication{}
	for rows.Next() {
		app, err := scanScholarshipApplication(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning scholarship application row")
			return nil, fmt.Errorf("error scanning scholarship application row: %w", err)
		}
		apps = append(apps, app)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating scholarship application rows")
		return nil, fmt.Errorf("error iterating scholarship application rows: %w", err)
	}

	return apps, nil
}

// Create inserts a pending scholarship application
func (r *ScholarshipApplicationRepository) Create(ctx context.Context, app *models.ScholarshipApplication) (int64, error) {
	sql, args, err := r.sb.Insert("scholarship_applications").
		Columns("user_id", "scholarship_id", "status").
		Values(app.UserID, app.ScholarshipID, models.StatusPending).
		Suffix("RETURNING id, status, applied_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create scholarship application SQL")
		return 0, fmt.Errorf("failed to build create scholarship application query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&app.ID, &app.Status, &app.AppliedAt); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", app.UserID).Int64("scholarshipID", app.ScholarshipID).Msg("Error executing create scholarship application query")
		return 0, fmt.Errorf("error creating scholarship application: %w", err)
	}

	return app.ID, nil
}

// GetByID retrieves a scholarship application with joined names
func (r *ScholarshipApplicationRepository) GetByID(ctx context.Context, id int64) (*models.ScholarshipApplication, error) {
	sql, args, err := r.selectJoined().
		Where(squirrel.Eq{"sa.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get scholarship application by ID SQL")
		return nil, fmt.Errorf("failed to build get scholarship application query: %w", err)
	}

	app, err := scanScholarshipApplication(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		logger.Error().Err(err).Int64("applicationID", id).Msg("Error scanning scholarship application row")
		return nil, fmt.Errorf("error getting scholarship application by ID: %w", err)
	}

	return app, nil
}

// ListByUser returns a student's scholarship applications, newest first
func (r *ScholarshipApplicationRepository) ListByUser(ctx context.Context, userID int64) ([]*models.ScholarshipApplication, error) {
	return r.query(ctx, r.selectJoined().
		Where(squirrel.Eq{"sa.user_id": userID}).
		OrderBy("sa.applied_at DESC", "sa.id DESC"))
}

// ListAll returns every scholarship application, newest first
func (r *ScholarshipApplicationRepository) ListAll(ctx context.Context) ([]*models.ScholarshipApplication, error) {
	return r.query(ctx, r.selectJoined().
		OrderBy("sa.applied_at DESC", "sa.id DESC"))
}

// UpdateStatusIfPending sets the status only while the application is still pending
func (r *ScholarshipApplicationRepository) UpdateStatusIfPending(ctx context.Context, id int64, status models.Status) (bool, error) {
	sql, args, err := pendingStatusUpdate(r.sb, "scholarship_applications", id, status).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update scholarship application status SQL")
		return false, fmt.Errorf("failed to build update scholarship application status query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("applicationID", id).Msg("Error executing update scholarship application status query")
		return false, fmt.Errorf("error updating scholarship application status: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}

var _ IScholarshipApplicationRepository = (*ScholarshipApplicationRepository)(nil)
