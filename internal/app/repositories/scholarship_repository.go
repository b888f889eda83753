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

// ScholarshipRepository handles scholarship database operations
type ScholarshipRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewScholarshipRepository creates a new ScholarshipRepository
func NewScholarshipRepository(db *pgxpool.Pool) *ScholarshipRepository {
	return &ScholarshipRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// selectJoined selects scholarships with the owning university's name, which is
// NULL when the university no longer exists.
func (r *ScholarshipRepository) selectJoined() squirrel.SelectBuilder {
	return r.sb.Select(
		"s.id", "s.name", "s.university_id", "u.name", "s.amount", "s.deadline", "s.description",
	).
		From("scholarships s").
		LeftJoin("universities u ON u.id = s.university_id")
}

func scanScholarship(row scanner) (*models.Scholarship, error) {
	s := &models.Scholarship{}
	err := row.Scan(&s.ID, &s.Name, &s.UniversityID, &s.UniversityName, &s.Amount, &s.Deadline, &s.Description)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Create inserts a scholarship
func (r *ScholarshipRepository) Create(ctx context.Context, scholarship *models.Scholarship) (int64, error) {
	sql, args, err := r.sb.Insert("scholarships").
		Columns("name", "university_id", "amount", "deadline", "description").
		Values(scholarship.Name, scholarship.UniversityID, scholarship.Amount, scholarship.Deadline, scholarship.Description).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create scholarship SQL")
		return 0, fmt.Errorf("failed to build create scholarship query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&scholarship.ID); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrScholarshipExists
		}
		logger.Error().Err(err).Msg("Error executing create scholarship query")
		return 0, fmt.Errorf("error creating scholarship: %w", err)
	}

	return scholarship.ID, nil
}

// GetByID retrieves a scholarship by ID
func (r *ScholarshipRepository) GetByID(ctx context.Context, id int64) (*models.Scholarship, error) {
	sql, args, err := r.selectJoined().
		Where(squirrel.Eq{"s.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get scholarship by ID SQL")
		return nil, fmt.Errorf("failed to build get scholarship query: %w", err)
	}

	scholarship, err := scanScholarship(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrScholarshipNotFound
		}
		logger.Error().Err(err).Int64("scholarshipID", id).Msg("Error scanning scholarship row")
		return nil, fmt.Errorf("error getting scholarship by ID: %w", err)
	}

	return scholarship, nil
}

// List returns all scholarships in ID order
func (r *ScholarshipRepository) List(ctx context.Context) ([]*models.Scholarship, error) {
	sql, args, err := r.selectJoined().
		OrderBy("s.id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list scholarships SQL")
		return nil, fmt.Errorf("failed to build list scholarships query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list scholarships query")
		return nil, fmt.Errorf("error querying scholarships: %w", err)
	}
	defer rows.Close()

	scholarships := []*models.Scholarship{}
	for rows.Next() {
		scholarship, err := scanScholarship(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning scholarship row during list")
			return nil, fmt.Errorf("error scanning scholarship row: %w", err)
		}
		scholarships = append(scholarships, scholarship)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating scholarship rows")
		return nil, fmt.Errorf("error iterating scholarship rows: %w", err)
	}

	return scholarships, nil
}

// Update replaces every editable field of a scholarship
func (r *ScholarshipRepository) Update(ctx context.Context, scholarship *models.Scholarship) error {
	sql, args, err := r.sb.Update("scholarships").
		SetMap(map[string]interface{}{
			"name":          scholarship.Name,
			"university_id": scholarship.UniversityID,
			"amount":        scholarship.Amount,
			"deadline":      scholarship.Deadline,
			"description":   scholarship.Description,
		}).
		Where(squirrel.Eq{"id": scholarship.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update scholarship SQL")
		return fmt.Errorf("failed to build update scholarship query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrScholarshipExists
		}
		logger.Error().Err(err).Int64("scholarshipID", scholarship.ID).Msg("Error executing update scholarship query")
		return fmt.Errorf("error updating scholarship: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrScholarshipNotFound
	}

	return nil
}

// Delete removes a scholarship
func (r *ScholarshipRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("scholarships").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete scholarship SQL")
		return fmt.Errorf("failed to build delete scholarship query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("scholarshipID", id).Msg("Error executing delete scholarship query")
		return fmt.Errorf("error deleting scholarship: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrScholarshipNotFound
	}

	return nil
}

var _ IScholarshipRepository = (*ScholarshipRepository)(nil)
