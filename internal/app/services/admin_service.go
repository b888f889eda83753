package services

import (
	"context"
	"fmt"

	authz "github.com/edupath/admissions/internal/app/auth"
	"github.com/edupath/admissions/internal/app/models"
	"github.com/edupath/admissions/internal/app/repositories"
)

// ConnectionCounter reports the number of live push channels
type ConnectionCounter interface {
	Count() int
}

// AdminService serves the admin dashboard
type AdminService struct {
	stats       repositories.IStatsRepository
	connections ConnectionCounter
	verifier    AdminVerifier
}

// NewAdminService creates a new AdminService
func NewAdminService(stats repositories.IStatsRepository, connections ConnectionCounter, verifier AdminVerifier) *AdminService {
	return &AdminService{
		stats:       stats,
		connections: connections,
		verifier:    verifier,
	}
}

// Stats returns dashboard counts including live connections on this instance
func (s *AdminService) Stats(ctx context.Context, actor authz.Actor) (*models.DashboardStats, error) {
	if err := s.verifier.ValidateAdmin(ctx, actor); err != nil {
		return nil, err
	}

	stats, err := s.stats.Dashboard(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving dashboard stats: %w", err)
	}
	stats.LiveConnections = s.connections.Count()
	return stats, nil
}
