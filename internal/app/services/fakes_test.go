package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/edupath/admissions/internal/app/models"
	"github.com/edupath/admissions/internal/pkg/apperrors"
	"github.com/edupath/admissions/internal/pkg/websocket"
)

// fakeStore backs every fake repository with in-memory tables
type fakeStore struct {
	mu              sync.Mutex
	nextID          int64
	users           map[int64]*models.User
	universities    map[int64]*models.University
	scholarships    map[int64]*models.Scholarship
	apps            map[int64]*models.UniversityApplication
	scholarshipApps map[int64]*models.ScholarshipApplication
	docs            map[int64]*models.Document
	notifications   []*models.Notification
	failCreate      error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:           map[int64]*models.User{},
		universities:    map[int64]*models.University{},
		scholarships:    map[int64]*models.Scholarship{},
		apps:            map[int64]*models.UniversityApplication{},
		scholarshipApps: map[int64]*models.ScholarshipApplication{},
		docs:            map[int64]*models.Document{},
	}
}

func (f *fakeStore) id() int64 {
	f.nextID++
	return f.nextID
}

func (f *fakeStore) addUser(u *models.User) *models.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	u.ID = f.id()
	f.users[u.ID] = u
	return u
}

func (f *fakeStore) addUniversity(u *models.University) *models.University {
	f.mu.Lock()
	defer f.mu.Unlock()
	u.ID = f.id()
	f.universities[u.ID] = u
	return u
}

func (f *fakeStore) addScholarship(s *models.Scholarship) *models.Scholarship {
	f.mu.Lock()
	defer f.mu.Unlock()
	s.ID = f.id()
	f.scholarships[s.ID] = s
	return s
}

func (f *fakeStore) notificationsFor(userID int64) []*models.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Notification
	for _, n := range f.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

type fakeUserRepo struct{ *fakeStore }

func (r fakeUserRepo) Create(_ context.Context, user *models.User) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
	}
	user.ID = r.id()
	user.CreatedAt = time.Now()
	r.users[user.ID] = user
	return user.ID, nil
}

func (r fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r fakeUserRepo) Exists(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.users[id]
	return ok, nil
}

func (r fakeUserRepo) UpdateProfile(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r fakeUserRepo) TouchLastActive(_ context.Context, id int64, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.LastActive = &at
	return nil
}

func (r fakeUserRepo) List(_ context.Context) ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeUniversityRepo struct{ *fakeStore }

func (r fakeUniversityRepo) Create(_ context.Context, u *models.University) (int64, error) {
	r.addUniversity(u)
	return u.ID, nil
}

func (r fakeUniversityRepo) GetByID(_ context.Context, id int64) (*models.University, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.universities[id]
	if !ok {
		return nil, apperrors.ErrUniversityNotFound
	}
	return u, nil
}

func (r fakeUniversityRepo) List(_ context.Context, filter models.UniversityFilter) ([]*models.University, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.University{}
	for _, u := range r.universities {
		if filter.Type == "" || u.Type == filter.Type {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r fakeUniversityRepo) Update(_ context.Context, u *models.University) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.universities[u.ID]; !ok {
		return apperrors.ErrUniversityNotFound
	}
	r.universities[u.ID] = u
	return nil
}

func (r fakeUniversityRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.universities[id]; !ok {
		return apperrors.ErrUniversityNotFound
	}
	delete(r.universities, id)
	return nil
}

type fakeScholarshipRepo struct{ *fakeStore }

func (r fakeScholarshipRepo) Create(_ context.Context, s *models.Scholarship) (int64, error) {
	r.addScholarship(s)
	return s.ID, nil
}

func (r fakeScholarshipRepo) GetByID(_ context.Context, id int64) (*models.Scholarship, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.scholarships[id]
	if !ok {
		return nil, apperrors.ErrScholarshipNotFound
	}
	return s, nil
}

func (r fakeScholarshipRepo) List(_ context.Context) ([]*models.Scholarship, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.Scholarship{}
	for _, s := range r.scholarships {
		out = append(out, s)
	}
	return out, nil
}

func (r fakeScholarshipRepo) Update(_ context.Context, s *models.Scholarship) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.scholarships[s.ID]; !ok {
		return apperrors.ErrScholarshipNotFound
	}
	r.scholarships[s.ID] = s
	return nil
}

func (r fakeScholarshipRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.scholarships, id)
	return nil
}

// fakeAppRepo mimics the LEFT JOIN: UniversityName is nil when the university is gone
type fakeAppRepo struct{ *fakeStore }

func (r fakeAppRepo) joined(a *models.UniversityApplication) *models.UniversityApplication {
	copied := *a
	if u, ok := r.universities[a.UniversityID]; ok {
		name := u.Name
		copied.UniversityName = &name
	}
	return &copied
}

func (r fakeAppRepo) Create(_ context.Context, a *models.UniversityApplication) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCreate != nil {
		return 0, r.failCreate
	}
	a.ID = r.id()
	a.Status = models.StatusPending
	a.AppliedAt = time.Now()
	copied := *a
	r.apps[a.ID] = &copied
	return a.ID, nil
}

func (r fakeAppRepo) GetByID(_ context.Context, id int64) (*models.UniversityApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.apps[id]
	if !ok {
		return nil, apperrors.ErrApplicationNotFound
	}
	return r.joined(a), nil
}

func (r fakeAppRepo) ListByUser(_ context.Context, userID int64) ([]*models.UniversityApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.UniversityApplication{}
	for _, a := range r.apps {
		if a.UserID == userID {
			out = append(out, r.joined(a))
		}
	}
	return out, nil
}

func (r fakeAppRepo) ListAll(_ context.Context) ([]*models.UniversityApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.UniversityApplication{}
	for _, a := range r.apps {
		out = append(out, r.joined(a))
	}
	return out, nil
}

func (r fakeAppRepo) UpdateStatusIfPending(_ context.Context, id int64, status models.Status) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.apps[id]
	if !ok || a.Status != models.StatusPending {
		return false, nil
	}
	a.Status = status
	return true, nil
}

type fakeScholarshipAppRepo struct{ *fakeStore }

func (r fakeScholarshipAppRepo) joined(a *models.ScholarshipApplication) *models.ScholarshipApplication {
	copied := *a
	if s, ok := r.scholarships[a.ScholarshipID]; ok {
		name := s.Name
		copied.ScholarshipName = &name
	}
	return &copied
}

func (r fakeScholarshipAppRepo) Create(_ context.Context, a *models.ScholarshipApplication) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.ID = r.id()
	a.Status = models.StatusPending
	a.AppliedAt = time.Now()
	copied := *a
	r.scholarshipApps[a.ID] = &copied
	return a.ID, nil
}

func (r fakeScholarshipAppRepo) GetByID(_ context.Context, id int64) (*models.ScholarshipApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.scholarshipApps[id]
	if !ok {
		return nil, apperrors.ErrApplicationNotFound
	}
	return r.joined(a), nil
}

func (r fakeScholarshipAppRepo) ListByUser(_ context.Context, userID int64) ([]*models.ScholarshipApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.ScholarshipApplication{}
	for _, a := range r.scholarshipApps {
		if a.UserID == userID {
			out = append(out, r.joined(a))
		}
	}
	return out, nil
}

func (r fakeScholarshipAppRepo) ListAll(_ context.Context) ([]*models.ScholarshipApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.ScholarshipApplication{}
	for _, a := range r.scholarshipApps {
		out = append(out, r.joined(a))
	}
	return out, nil
}

func (r fakeScholarshipAppRepo) UpdateStatusIfPending(_ context.Context, id int64, status models.Status) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.scholarshipApps[id]
	if !ok || a.Status != models.StatusPending {
		return false, nil
	}
	a.Status = status
	return true, nil
}

type fakeDocRepo struct{ *fakeStore }

func (r fakeDocRepo) Create(_ context.Context, d *models.Document) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d.ID = r.id()
	d.Status = models.StatusPending
	d.CreatedAt = time.Now()
	copied := *d
	r.docs[d.ID] = &copied
	return d.ID, nil
}

func (r fakeDocRepo) GetByID(_ context.Context, id int64) (*models.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.docs[id]
	if !ok {
		return nil, apperrors.ErrDocumentNotFound
	}
	copied := *d
	return &copied, nil
}

func (r fakeDocRepo) ListByUser(_ context.Context, userID int64) ([]*models.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.Document{}
	for _, d := range r.docs {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r fakeDocRepo) ListByStatus(_ context.Context, status models.Status) ([]*models.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.Document{}
	for _, d := range r.docs {
		if d.Status == status {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r fakeDocRepo) UpdateStatusIfPending(_ context.Context, id int64, status models.Status) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.docs[id]
	if !ok || d.Status != models.StatusPending {
		return false, nil
	}
	d.Status = status
	return true, nil
}

type fakeNotificationRepo struct {
	*fakeStore
	err error
}

func (r fakeNotificationRepo) Create(_ context.Context, n *models.Notification) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	n.ID = r.id()
	n.IsRead = false
	n.CreatedAt = time.Now()
	r.notifications = append(r.notifications, n)
	return nil
}

func (r fakeNotificationRepo) ListByUser(_ context.Context, userID int64, limit int) ([]*models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.Notification{}
	for i := len(r.notifications) - 1; i >= 0 && len(out) < limit; i-- {
		if r.notifications[i].UserID == userID {
			out = append(out, r.notifications[i])
		}
	}
	return out, nil
}

func (r fakeNotificationRepo) MarkAllRead(_ context.Context, userID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, item := range r.notifications {
		if item.UserID == userID && !item.IsRead {
			item.IsRead = true
			n++
		}
	}
	return n, nil
}

func (r fakeNotificationRepo) CountUnread(_ context.Context, userID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, item := range r.notifications {
		if item.UserID == userID && !item.IsRead {
			n++
		}
	}
	return n, nil
}

type fakeStatsRepo struct {
	stats *models.DashboardStats
}

func (r fakeStatsRepo) Dashboard(_ context.Context) (*models.DashboardStats, error) {
	copied := *r.stats
	return &copied, nil
}

// recordingChannel records pushed messages
type recordingChannel struct {
	mu     sync.Mutex
	open   bool
	sent   []websocket.Message
	sendFn func() error
}

func newRecordingChannel() *recordingChannel {
	return &recordingChannel{open: true}
}

func (c *recordingChannel) Send(msg websocket.Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.open {
		return websocket.ErrChannelClosed
	}
	if c.sendFn != nil {
		if err := c.sendFn(); err != nil {
			return err
		}
	}
	c.sent = append(c.sent, msg)
	return nil
}

func (c *recordingChannel) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

func (c *recordingChannel) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = false
}

func (c *recordingChannel) Sent() []websocket.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]websocket.Message(nil), c.sent...)
}

type fakeRelay struct {
	mu        sync.Mutex
	published []int64
	err       error
}

func (r *fakeRelay) Publish(_ context.Context, userID int64, _ string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.published = append(r.published, userID)
	return nil
}
