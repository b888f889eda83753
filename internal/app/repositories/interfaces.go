package repositories

import (
	"context"
	"time"

	"github.com/edupath/admissions/internal/app/models"
)

// scanner is satisfied by pgx.Row and pgx.Rows
type scanner interface {
	Scan(dest ...any) error
}

// IUserRepository defines the identity store operations
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Exists(ctx context.Context, id int64) (bool, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	TouchLastActive(ctx context.Context, id int64, at time.Time) error
	List(ctx context.Context) ([]*models.User, error)
}

// IUniversityRepository defines university reference data operations
type IUniversityRepository interface {
	Create(ctx context.Context, university *models.University) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.University, error)
	List(ctx context.Context, filter models.UniversityFilter) ([]*models.University, error)
	Update(ctx context.Context, university *models.University) error
	Delete(ctx context.Context, id int64) error
}

// IScholarshipRepository defines scholarship reference data operations
type IScholarshipRepository interface {
	Create(ctx context.Context, scholarship *models.Scholarship) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Scholarship, error)
	List(ctx context.Context) ([]*models.Scholarship, error)
	Update(ctx context.Context, scholarship *models.Scholarship) error
	Delete(ctx context.Context, id int64) error
}

// IApplicationRepository defines university application ledger operations
type IApplicationRepository interface {
	Create(ctx context.Context, app *models.UniversityApplication) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.UniversityApplication, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.UniversityApplication, error)
	ListAll(ctx context.Context) ([]*models.UniversityApplication, error)
	UpdateStatusIfPending(ctx context.Context, id int64, status models.Status) (bool, error)
}

// IScholarshipApplicationRepository defines scholarship application ledger operations
type IScholarshipApplicationRepository interface {
	Create(ctx context.Context, app *models.ScholarshipApplication) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.ScholarshipApplication, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.ScholarshipApplication, error)
	ListAll(ctx context.Context) ([]*models.ScholarshipApplication, error)
	UpdateStatusIfPending(ctx context.Context, id int64, status models.Status) (bool, error)
}

// IDocumentRepository defines document metadata operations
type IDocumentRepository interface {
	Create(ctx context.Context, doc *models.Document) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Document, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Document, error)
	ListByStatus(ctx context.Context, status models.Status) ([]*models.Document, error)
	UpdateStatusIfPending(ctx context.Context, id int64, status models.Status) (bool, error)
}

// INotificationRepository defines notification persistence operations
type INotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	ListByUser(ctx context.Context, userID int64, limit int) ([]*models.Notification, error)
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
}

// IStatsRepository defines dashboard aggregate queries
type IStatsRepository interface {
	Dashboard(ctx context.Context) (*models.DashboardStats, error)
}
