package seed

import (
	"context"
	"testing"
	"time"

	"github.com/edupath/admissions/internal/app/models"
	"github.com/edupath/admissions/internal/pkg/apperrors"
	"github.com/edupath/admissions/internal/pkg/auth"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memUsers struct{ byEmail map[string]*models.User }

func (m *memUsers) Create(_ context.Context, u *models.User) (int64, error) {
	if _, ok := m.byEmail[u.Email]; ok {
		return 0, apperrors.ErrEmailAlreadyExists
	}
	u.ID = int64(len(m.byEmail) + 1)
	m.byEmail[u.Email] = u
	return u.ID, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := m.byEmail[email]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *memUsers) GetByID(context.Context, int64) (*models.User, error) { return nil, apperrors.ErrUserNotFound }
func (m *memUsers) Exists(context.Context, int64) (bool, error) { return false, nil }
func (m *memUsers) UpdateProfile(context.Context, *models.User) error { return nil }
func (m *memUsers) TouchLastActive(context.Context, int64, time.Time) error {
	return nil
}
func (m *memUsers) List(context.Context) ([]*models.User, error) { return nil, nil }

type memUniversities struct{ rows []*models.University }

func (m *memUniversities) Create(_ context.Context, u *models.University) (int64, error) {
	for _, row := range m.rows {
		if row.Name == u.Name {
			return 0, apperrors.ErrUniversityAlreadyExists
		}
	}
	u.ID = int64(len(m.rows) + 1)
	m.rows = append(m.rows, u)
	return u.ID, nil
}

func (m *memUniversities) List(context.Context, models.UniversityFilter) ([]*models.University, error) {
	return m.rows, nil
}

func (m *memUniversities) GetByID(context.Context, int64) (*models.University, error) {
	return nil, apperrors.ErrUniversityNotFound
}
func (m *memUniversities) Update(context.Context, *models.University) error { return nil }
func (m *memUniversities) Delete(context.Context, int64) error { return nil }

type memScholarships struct{ rows []*models.Scholarship }

func (m *memScholarships) Create(_ context.Context, s *models.Scholarship) (int64, error) {
	s.ID = int64(len(m.rows) + 1)
	m.rows = append(m.rows, s)
	return s.ID, nil
}

func (m *memScholarships) List(context.Context) ([]*models.Scholarship, error) { return m.rows, nil }
func (m *memScholarships) GetByID(context.Context, int64) (*models.Scholarship, error) {
	return nil, apperrors.ErrScholarshipNotFound
}
func (m *memScholarships) Update(context.Context, *models.Scholarship) error { return nil }
func (m *memScholarships) Delete(context.Context, int64) error { return nil }

func TestDefaultDataShape(t *testing.T) {
	public := 0
	names := map[string]bool{}
	for _, u := range defaultUniversities {
		names[u.Name] = true
		if u.Type == models.UniversityPublic {
			public++
		}
	}
	assert.Len(t, defaultUniversities, 17)
	assert.Equal(t, 9, public)

	assert.Len(t, defaultScholarships, 8)
	for _, s := range defaultScholarships {
		assert.True(t, names[s.University], "scholarship %s points at unknown university %s", s.Name, s.University)
	}
}

func TestCreateDefaultDataIsIdempotent(t *testing.T) {
	cost := auth.BcryptCost
	auth.BcryptCost = bcrypt.MinCost
	t.Cleanup(func() { auth.BcryptCost = cost })

	stores := Stores{
		Users:        &memUsers{byEmail: map[string]*models.User{}},
		Universities: &memUniversities{},
		Scholarships: &memScholarships{},
	}
	ctx := context.Background()

	require.NoError(t, CreateDefaultData(ctx, stores, zerolog.Nop()))
	require.NoError(t, CreateDefaultData(ctx, stores, zerolog.Nop()))

	users := stores.Users.(*memUsers)
	require.Len(t, users.byEmail, 1)
	admin := users.byEmail[AdminEmail]
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.True(t, auth.CheckPassword(admin.Password, AdminPassword))

	assert.Len(t, stores.Universities.(*memUniversities).rows, 17)
	scholarships := stores.Scholarships.(*memScholarships).rows
	require.Len(t, scholarships, 8)
	for _, s := range scholarships {
		if s.Name == "BUET Research Fellowship" {
			assert.EqualValues(t, 2, s.UniversityID)
		}
	}
}
