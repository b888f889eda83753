package repositories

import (
	"context"
	"fmt"

	"github.com/edupath/admissions/internal/app/models"
	"github.com/edupath/admissions/internal/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

// StatsRepository runs the admin dashboard aggregate queries
type StatsRepository struct {
	db *pgxpool.Pool
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db}
}

const dashboardSQL = `
	SELECT
		(SELECT COUNT(*) FROM users WHERE role = 'student'),
		(SELECT COUNT(*) FROM universities),
		(SELECT COUNT(*) FROM scholarships),
		(SELECT COUNT(*) FROM applications),
		(SELECT COUNT(*) FROM scholarship_applications),
		(SELECT COUNT(*) FROM applications WHERE status = 'pending')
			+ (SELECT COUNT(*) FROM scholarship_applications WHERE status = 'pending')
			+ (SELECT COUNT(*) FROM documents WHERE status = 'pending')`

// Dashboard returns the stored counts. LiveConnections is left for the caller.
func (r *StatsRepository) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}
	err := r.db.QueryRow(ctx, dashboardSQL).Scan(
		&stats.Students,
		&stats.Universities,
		&stats.Scholarships,
		&stats.UniversityApplications,
		&stats.ScholarshipApplications,
		&stats.PendingDecisions,
	)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing dashboard stats query")
		return nil, fmt.Errorf("error loading dashboard stats: %w", err)
	}

	return stats, nil
}

var _ IStatsRepository = (*StatsRepository)(nil)
