package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/edupath/admissions/internal/app/models"
	"github.com/edupath/admissions/internal/pkg/apperrors"
	"github.com/edupath/admissions/internal/pkg/dberrors"
	"github.com/edupath/admissions/internal/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var universityColumns = []string{
	"id", "name", "type", "location", "description", "min_ssc_gpa", "min_hsc_gpa", "website",
}

// UniversityRepository handles university database operations
type UniversityRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUniversityRepository creates a new UniversityRepository
func NewUniversityRepository(db *pgxpool.Pool) *UniversityRepository {
	return &UniversityRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanUniversity(row scanner) (*models.University, error) {
	u := &models.University{}
	err := row.Scan(&u.ID, &u.Name, &u.Type, &u.Location, &u.Description, &u.MinSSCGPA, &u.MinHSCGPA, &u.Website)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Create inserts a university
func (r *UniversityRepository) Create(ctx context.Context, university *models.University) (int64, error) {
	sql, args, err := r.sb.Insert("universities").
		Columns("name", "type", "location", "description", "min_ssc_gpa", "min_hsc_gpa", "website").
		Values(university.Name, university.Type, university.Location, university.Description,
			university.MinSSCGPA, university.MinHSCGPA, university.Website).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create university SQL")
		return 0, fmt.Errorf("failed to build create university query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&university.ID); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrUniversityAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create university query")
		return 0, fmt.Errorf("error creating university: %w", err)
	}

	return university.ID, nil
}

// GetByID retrieves a university by ID
func (r *UniversityRepository) GetByID(ctx context.Context, id int64) (*models.University, error) {
	sql, args, err := r.sb.Select(universityColumns...).
		From("universities").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get university by ID SQL")
		return nil, fmt.Errorf("failed to build get university query: %w", err)
	}

	university, err := scanUniversity(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUniversityNotFound
		}
		logger.Error().Err(err).Int64("universityID", id).Msg("Error scanning university row")
		return nil, fmt.Errorf("error getting university by ID: %w", err)
	}

	return university, nil
}

// listQuery builds the filtered listing; search matches name or location.
func (r *UniversityRepository) listQuery(filter models.UniversityFilter) squirrel.SelectBuilder {
	query := r.sb.Select(universityColumns...).
		From("universities").
		OrderBy("id ASC")

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + search + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"location": pattern},
		})
	}
	if filter.Type != "" {
		query = query.Where(squirrel.Eq{"type": filter.Type})
	}

	return query
}

// List returns universities matching the filter in ID order
func (r *UniversityRepository) List(ctx context.Context, filter models.UniversityFilter) ([]*models.University, error) {
	sql, args, err := r.listQuery(filter).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list universities SQL")
		return nil, fmt.Errorf("failed to build list universities query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list universities query")
		return nil, fmt.Errorf("error querying universities: %w", err)
	}
	defer rows.Close()

	universities := []*models.University{}
	for rows.Next() {
		university, err := scanUniversity(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning university row during list")
			return nil, fmt.Errorf("error scanning university row: %w", err)
		}
		universities = append(universities, university)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating university rows")
		return nil, fmt.Errorf("error iterating university rows: %w", err)
	}

	return universities, nil
}

// Update replaces every editable field of a university
func (r *UniversityRepository) Update(ctx context.Context, university *models.University) error {
	sql, args, err := r.sb.Update("universities").
		SetMap(map[string]interface{}{
			"name":        university.Name,
			"type":        university.Type,
			"location":    university.Location,
			"description": university.Description,
			"min_ssc_gpa": university.MinSSCGPA,
			"min_hsc_gpa": university.MinHSCGPA,
			"website":     university.Website,
		}).
		Where(squirrel.Eq{"id": university.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update university SQL")
		return fmt.Errorf("failed to build update university query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrUniversityAlreadyExists
		}
		logger.Error().Err(err).Int64("universityID", university.ID).Msg("Error executing update university query")
		return fmt.Errorf("error updating university: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUniversityNotFound
	}

	return nil
}

// Delete removes a university. Scholarships and applications that point at it
// are kept and resolve to no name afterwards.
func (r *UniversityRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("universities").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete university SQL")
		return fmt.Errorf("failed to build delete university query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("universityID", id).Msg("Error executing delete university query")
		return fmt.Errorf("error deleting university: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUniversityNotFound
	}

	return nil
}

var _ IUniversityRepository = (*UniversityRepository)(nil)
