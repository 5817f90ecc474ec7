package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/naijamingles/safety-backend/internal/config"
	"github.com/naijamingles/safety-backend/internal/dto"
	"github.com/naijamingles/safety-backend/internal/handlers"
	"github.com/naijamingles/safety-backend/internal/middleware"
	"github.com/naijamingles/safety-backend/internal/models"
	"github.com/naijamingles/safety-backend/internal/notify"
	"github.com/naijamingles/safety-backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// recordingNotifier captures fan-out deliveries so tests can check them
// alongside the counts reported in the response.
type recordingNotifier struct {
	mu     sync.Mutex
	emails []notify.Email
	sms    []notify.SMS
}

func (r *recordingNotifier) SendEmail(_ context.Context, msg notify.Email) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.emails = append(r.emails, msg)
	return nil
}

func (r *recordingNotifier) SendSMS(_ context.Context, msg notify.SMS) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sms = append(r.sms, msg)
	return nil
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB, *recordingNotifier) {
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

	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 24 * time.Hour,
		AdminEmails:      "Admin@Example.com",
		SiteURL:          "http://localhost:3000",
		ContactLimit:     20,
		NotifyTimeout:    2 * time.Second,
	}

	notifier := &recordingNotifier{}
	planService := services.NewPlanService(db)
	checkInService := services.NewCheckInService(db, planService)
	contactService := services.NewContactService(db)
	panicService := services.NewPanicService(db, planService, contactService, notifier, cfg.SiteURL, cfg.ContactLimit, cfg.NotifyTimeout)
	reviewService := services.NewReviewService(db, planService)
	moderationService := services.NewModerationService(db)
	adminService := services.NewAdminService(db)
	authService := services.NewAuthService(db, cfg)

	app := fiber.New()
	Setup(app, cfg, middleware.AllowListPredicate(cfg),
		handlers.NewAuthHandler(authService),
		handlers.NewHealthHandler(),
		handlers.NewSafetyHandler(planService, checkInService, contactService, reviewService),
		handlers.NewPanicHandler(panicService),
		handlers.NewModerationHandler(moderationService),
		handlers.NewAdminHandler(adminService, moderationService, checkInService),
	)
	return app, db, notifier
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func register(t *testing.T, app *fiber.App, email string) dto.AuthResponse {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Email: email, Password: "password123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var auth dto.AuthResponse
	decode(t, resp, &auth)
	return auth
}

// Walks the happy path end to end: a plan, a check-in along the way, and a
// panic that fans out to the trusted contacts.
func TestSafetyMeetingScenario(t *testing.T) {
	app, db, notifier := newTestApp(t)

	owner := register(t, app, "owner@example.com")
	partner := register(t, app, "partner@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/safety/contacts", owner.AccessToken, dto.AddContactRequest{
		Name: "Ada", Email: "ada@example.com", NotifyEmail: true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = doJSON(t, app, http.MethodPost, "/api/safety/contacts", owner.AccessToken, dto.AddContactRequest{
		Name: "Ben", Email: "ben@example.com", Phone: "+2348000000001",
		NotifyEmail: true, NotifySMS: true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/safety/plans", owner.AccessToken, dto.CreatePlanRequest{
		PartnerUserID: partner.User.ID,
		StartTime:     "2025-06-01T18:00:00Z",
		LocationText:  "Cafe Lagos",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var planResp dto.CreatePlanResponse
	decode(t, resp, &planResp)

	resp = doJSON(t, app, http.MethodPost, "/api/safety/checkins", owner.AccessToken, dto.CheckInRequest{
		PlanID: planResp.ID, Kind: models.CheckInOnTheWay,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	lat, lng := 6.5, 3.3
	resp = doJSON(t, app, http.MethodPost, "/api/safety/panic", owner.AccessToken, dto.PanicRequest{
		PlanID: &planResp.ID,
		Note:   "running late, feeling unsafe",
		Lat:    &lat,
		Lng:    &lng,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var panicResp dto.PanicResponse
	decode(t, resp, &panicResp)
	assert.Equal(t, 2, panicResp.Notified.Emails)
	assert.Equal(t, 1, panicResp.Notified.SMS)

	var plan models.MeetingPlan
	require.NoError(t, db.First(&plan, "id = ?", planResp.ID).Error)
	assert.Equal(t, models.PlanStatusPlanned, plan.Status)

	var checkIns int64
	db.Model(&models.CheckIn{}).Where("plan_id = ?", planResp.ID).Count(&checkIns)
	assert.EqualValues(t, 1, checkIns)

	var event models.PanicEvent
	require.NoError(t, db.First(&event, "id = ?", panicResp.ID).Error)
	assert.Equal(t, models.PanicStatusOpen, event.Status)
	require.NotNil(t, event.PlanID)
	assert.Equal(t, planResp.ID, *event.PlanID)
	assert.Equal(t, "running late, feeling unsafe", event.Note)

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	assert.Len(t, notifier.emails, 2)
	assert.Len(t, notifier.sms, 1)
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	app, db, _ := newTestApp(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/safety/plans"},
		{http.MethodPost, "/api/safety/checkins"},
		{http.MethodPost, "/api/safety/contacts"},
		{http.MethodPost, "/api/safety/panic"},
		{http.MethodPost, "/api/reports"},
		{http.MethodPost, "/api/blocks"},
		{http.MethodGet, "/api/admin/safety/panics"},
	}
	for _, p := range paths {
		resp := doJSON(t, app, p.method, p.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "%s %s", p.method, p.path)
		resp.Body.Close()
	}

	for _, model := range []interface{}{
		&models.MeetingPlan{}, &models.CheckIn{}, &models.TrustedContact{},
		&models.PanicEvent{}, &models.UserReport{}, &models.UserBlock{},
	} {
		var count int64
		db.Model(model).Count(&count)
		assert.Zero(t, count)
	}
}

// A valid login does not grant triage access: the caller must also be on
// the allow-list, and a rejected caller gets the same generic 401.
func TestAdminRoutesRequireAllowList(t *testing.T) {
	app, db, _ := newTestApp(t)

	user := register(t, app, "user@example.com")
	admin := register(t, app, "admin@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/safety/panic", user.AccessToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var panicResp dto.PanicResponse
	decode(t, resp, &panicResp)

	resolvePath := "/api/admin/safety/panics/" + panicResp.ID.String() + "/resolve"

	resp = doJSON(t, app, http.MethodPost, resolvePath, user.AccessToken, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	var event models.PanicEvent
	require.NoError(t, db.First(&event, "id = ?", panicResp.ID).Error)
	assert.Equal(t, models.PanicStatusOpen, event.Status, "a rejected resolve must not touch the event")

	// Allow-list matching is case-insensitive on email.
	resp = doJSON(t, app, http.MethodPost, resolvePath, admin.AccessToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	require.NoError(t, db.First(&event, "id = ?", panicResp.ID).Error)
	assert.Equal(t, models.PanicStatusResolved, event.Status)
	require.NotNil(t, event.ResolvedBy)
	assert.Equal(t, admin.User.ID, *event.ResolvedBy)
}

func TestAdminListPanicsPagination(t *testing.T) {
	app, _, _ := newTestApp(t)

	user := register(t, app, "user@example.com")
	admin := register(t, app, "admin@example.com")

	for i := 0; i < 3; i++ {
		resp := doJSON(t, app, http.MethodPost, "/api/safety/panic", user.AccessToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}

	resp := doJSON(t, app, http.MethodGet, "/api/admin/safety/panics?page=1&size=2", admin.AccessToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var page dto.PanicListResponse
	decode(t, resp, &page)
	assert.Len(t, page.Panics, 2)
	assert.True(t, page.HasNext)

	resp = doJSON(t, app, http.MethodGet, "/api/admin/safety/panics?page=2&size=2", admin.AccessToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &page)
	assert.Len(t, page.Panics, 1)
	assert.False(t, page.HasNext)
}

func TestReportAndTriageFlow(t *testing.T) {
	app, _, _ := newTestApp(t)

	reporter := register(t, app, "reporter@example.com")
	reported := register(t, app, "reported@example.com")
	admin := register(t, app, "admin@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/reports", reporter.AccessToken, dto.CreateReportRequest{
		UserID: reported.User.ID,
		Reason: "harassment",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.CreateReportResponse
	decode(t, resp, &created)

	resp = doJSON(t, app, http.MethodPut, "/api/admin/moderation/reports/"+created.ID.String(), admin.AccessToken,
		dto.SetReportStatusRequest{Status: models.ReportStatusResolved})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/admin/moderation/reports?status=resolved", admin.AccessToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var reports dto.ReportListResponse
	decode(t, resp, &reports)
	require.Len(t, reports.Reports, 1)
	assert.Equal(t, created.ID, reports.Reports[0].ID)
}

func TestBlockRoutes(t *testing.T) {
	app, _, _ := newTestApp(t)

	blocker := register(t, app, "blocker@example.com")
	blocked := register(t, app, "blocked@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/blocks", blocker.AccessToken, dto.BlockUserRequest{
		BlockedUserID: blocked.User.ID,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/blocks/"+blocked.User.ID.String(), blocker.AccessToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var status dto.BlockStatusResponse
	decode(t, resp, &status)
	assert.True(t, status.Blocked)

	// The other direction is unaffected.
	resp = doJSON(t, app, http.MethodGet, "/api/blocks/"+blocker.User.ID.String(), blocked.AccessToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &status)
	assert.False(t, status.Blocked)

	resp = doJSON(t, app, http.MethodDelete, "/api/blocks/"+blocked.User.ID.String(), blocker.AccessToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/blocks/"+blocked.User.ID.String(), blocker.AccessToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &status)
	assert.False(t, status.Blocked)
}
