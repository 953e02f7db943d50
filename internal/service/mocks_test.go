package service

import (
	"context"
	"time"

	"github.com/brunecafe/cafe-service/internal/models"
	"gorm.io/gorm"
)

func errRecordNotFound() error { return gorm.ErrRecordNotFound }

// --- Mock UserRepository ---

type mockUserRepo struct {
	createFn         func(ctx context.Context, user *models.User) error
	findByUsernameFn func(ctx context.Context, username string) (*models.User, error)
	findByIDFn       func(ctx context.Context, id uint) (*models.User, error)
	updatePasswordFn func(ctx context.Context, id uint, hash string) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.findByUsernameFn != nil {
		return m.findByUsernameFn(ctx, username)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) UpdatePassword(ctx context.Context, id uint, hash string) error {
	if m.updatePasswordFn != nil {
		return m.updatePasswordFn(ctx, id, hash)
	}
	return nil
}

// --- Mock SessionRepository ---

type mockSessionRepo struct {
	createFn        func(ctx context.Context, session *models.Session) error
	findByTokenFn   func(ctx context.Context, token string) (*models.Session, error)
	deleteFn        func(ctx context.Context, token string) error
	deleteExpiredFn func(ctx context.Context, now time.Time) error
}

func (m *mockSessionRepo) Create(ctx context.Context, session *models.Session) error {
	if m.createFn != nil {
		return m.createFn(ctx, session)
	}
	return nil
}

func (m *mockSessionRepo) FindByToken(ctx context.Context, token string) (*models.Session, error) {
	if m.findByTokenFn != nil {
		return m.findByTokenFn(ctx, token)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSessionRepo) Delete(ctx context.Context, token string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, token)
	}
	return nil
}

func (m *mockSessionRepo) DeleteExpired(ctx context.Context, now time.Time) error {
	if m.deleteExpiredFn != nil {
		return m.deleteExpiredFn(ctx, now)
	}
	return nil
}

// --- Mock BookingRepository ---

type mockBookingRepo struct {
	createFn       func(ctx context.Context, booking *models.Booking) error
	findByIDFn     func(ctx context.Context, id uint) (*models.Booking, error)
	findAllFn      func(ctx context.Context) ([]models.Booking, error)
	updateStatusFn func(ctx context.Context, id uint, status models.BookingStatus) error
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	if m.createFn != nil {
		return m.createFn(ctx, booking)
	}
	booking.ID = 1
	booking.CreatedAt = time.Now()
	return nil
}

func (m *mockBookingRepo) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBookingRepo) FindAll(ctx context.Context) ([]models.Booking, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id uint, status models.BookingStatus) error {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, id, status)
	}
	return nil
}

// --- Mock SettingsRepository ---

type mockSettingsRepo struct {
	row *models.Settings
}

func (m *mockSettingsRepo) Get(ctx context.Context) (*models.Settings, error) {
	if m.row == nil {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *m.row
	return &copy, nil
}

func (m *mockSettingsRepo) InsertDefaultIfAbsent(ctx context.Context) error {
	if m.row == nil {
		m.row = &models.Settings{
			ID:         models.SettingsID,
			IsOpen:     true,
			AdminEmail: models.DefaultAdminEmail,
		}
	}
	return nil
}

func (m *mockSettingsRepo) Update(ctx context.Context, settings *models.Settings) error {
	copy := *settings
	m.row = &copy
	return nil
}

// --- Mock MenuRepository ---

type mockMenuRepo struct {
	items []models.MenuItem
}

func (m *mockMenuRepo) FindAll(ctx context.Context) ([]models.MenuItem, error) {
	return m.items, nil
}

func (m *mockMenuRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.items)), nil
}

func (m *mockMenuRepo) CreateBatch(ctx context.Context, items []models.MenuItem) error {
	m.items = append(m.items, items...)
	return nil
}

// --- Mock Notifier ---

type mockNotifier struct {
	created       chan *models.Booking
	statusChanged chan *models.Booking
}

func newMockNotifier() *mockNotifier {
	return &mockNotifier{
		created:       make(chan *models.Booking, 1),
		statusChanged: make(chan *models.Booking, 1),
	}
}

func (m *mockNotifier) BookingCreated(booking *models.Booking) {
	m.created <- booking
}

func (m *mockNotifier) BookingStatusChanged(booking *models.Booking) {
	m.statusChanged <- booking
}
