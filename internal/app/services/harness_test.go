package services

import (
	"testing"

	authz "github.com/edupath/admissions/internal/app/auth"
	"github.com/edupath/admissions/internal/app/models"
	"github.com/edupath/admissions/internal/pkg/websocket"
	"github.com/rs/zerolog"
)

type harness struct {
	store         *fakeStore
	registry      *websocket.Registry
	notifications *NotificationService
	applications  *ApplicationService
	documents     *DocumentService
	admin         *models.User
	student       *models.User
}

func (h *harness) adminActor() authz.Actor {
	return authz.Actor{UserID: h.admin.ID, Role: models.RoleAdmin}
}

func (h *harness) studentActor() authz.Actor {
	return authz.Actor{UserID: h.student.ID, Role: models.RoleStudent}
}

// newHarness wires the status workflow over in-memory stores. relay may be nil.
func newHarness(t *testing.T, relay Relay) *harness {
	t.Helper()

	store := newFakeStore()
	registry := websocket.NewRegistry()
	verifier := authz.NewAuthorizationService(fakeUserRepo{store})
	logger := zerolog.Nop()

	h := &harness{
		store:    store,
		registry: registry,
		admin:    store.addUser(&models.User{Name: "Admin", Email: "admin@edupath.bd", Role: models.RoleAdmin}),
		student:  store.addUser(&models.User{Name: "Rahim", Email: "rahim@example.com", Role: models.RoleStudent}),
	}

	h.notifications = NewNotificationService(fakeNotificationRepo{fakeStore: store}, registry, relay, 20, logger)
	h.applications = NewApplicationService(
		fakeAppRepo{store},
		fakeScholarshipAppRepo{store},
		fakeUniversityRepo{store},
		fakeScholarshipRepo{store},
		h.notifications,
		verifier,
		logger,
	)
	h.documents = NewDocumentService(fakeDocRepo{store}, h.notifications, verifier, logger)
	return h
}

// failNotifications makes every later notification write fail with err
func (h *harness) failNotifications(err error) {
	h.notifications.repo = fakeNotificationRepo{fakeStore: h.store, err: err}
}
