package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository                   *UserRepository
	UniversityRepository             *UniversityRepository
	ScholarshipRepository            *ScholarshipRepository
	ApplicationRepository            *ApplicationRepository
	ScholarshipApplicationRepository *ScholarshipApplicationRepository
	DocumentRepository               *DocumentRepository
	NotificationRepository           *NotificationRepository
	StatsRepository                  *StatsRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:                   NewUserRepository(db),
		UniversityRepository:             NewUniversityRepository(db),
		ScholarshipRepository:            NewScholarshipRepository(db),
		ApplicationRepository:            NewApplicationRepository(db),
		ScholarshipApplicationRepository: NewScholarshipApplicationRepository(db),
		DocumentRepository:               NewDocumentRepository(db),
		NotificationRepository:           NewNotificationRepository(db),
		StatsRepository:                  NewStatsRepository(db),
	}
}
