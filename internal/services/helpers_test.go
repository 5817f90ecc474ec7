package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/naijamingles/safety-backend/internal/config"
	"github.com/naijamingles/safety-backend/internal/models"
	"github.com/naijamingles/safety-backend/internal/notify"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.MeetingPlan{},
		&models.CheckIn{},
		&models.TrustedContact{},
		&models.PanicEvent{},
		&models.UserReport{},
		&models.UserBlock{},
		&models.MeetingReview{},
	))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 24 * time.Hour,
	}
}

// fakeNotifier records every delivery attempt and fails the targets it was
// told to fail.
type fakeNotifier struct {
	mu         sync.Mutex
	emails     []notify.Email
	sms        []notify.SMS
	failEmails map[string]bool
	failSMS    map[string]bool
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{
		failEmails: make(map[string]bool),
		failSMS:    make(map[string]bool),
	}
}

func (f *fakeNotifier) SendEmail(_ context.Context, msg notify.Email) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failEmails[msg.To] {
		return errors.New("email provider unavailable")
	}
	f.emails = append(f.emails, msg)
	return nil
}

func (f *fakeNotifier) SendSMS(_ context.Context, msg notify.SMS) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSMS[msg.To] {
		return errors.New("sms provider unavailable")
	}
	f.sms = append(f.sms, msg)
	return nil
}

func (f *fakeNotifier) sentEmails() []notify.Email {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]notify.Email(nil), f.emails...)
}

func (f *fakeNotifier) sentSMS() []notify.SMS {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]notify.SMS(nil), f.sms...)
}

func newTestPanicService(db *gorm.DB, notifier notify.Notifier) *PanicService {
	plans := NewPlanService(db)
	contacts := NewContactService(db)
	return NewPanicService(db, plans, contacts, notifier, "http://localhost:3000", 20, 2*time.Second)
}
