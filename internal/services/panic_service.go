package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/naijamingles/safety-backend/internal/dto"
	"github.com/naijamingles/safety-backend/internal/models"
	"github.com/naijamingles/safety-backend/internal/notify"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var ErrPanicNotFound = errors.New("panic event not found")

// fanOutConcurrency bounds the number of in-flight delivery attempts.
const fanOutConcurrency = 8

type PanicService struct {
	db            *gorm.DB
	plans         *PlanService
	contacts      *ContactService
	notifier      notify.Notifier
	siteURL       string
	contactLimit  int
	notifyTimeout time.Duration
}

func NewPanicService(db *gorm.DB, plans *PlanService, contacts *ContactService, notifier notify.Notifier, siteURL string, contactLimit int, notifyTimeout time.Duration) *PanicService {
	return &PanicService{
		db:            db,
		plans:         plans,
		contacts:      contacts,
		notifier:      notifier,
		siteURL:       siteURL,
		contactLimit:  contactLimit,
		notifyTimeout: notifyTimeout,
	}
}

// Trigger records a panic event and fans the alert out to the caller's
// trusted contacts. Persisting the event is the only authoritative step: if
// it fails nothing else happens, and once it succeeds the trigger reports
// success no matter how much of the fan-out fails. Every call creates a new
// event and a new fan-out; rapid repeated triggers are not deduplicated.
func (s *PanicService) Trigger(ctx context.Context, callerID uuid.UUID, callerEmail string, req *dto.PanicRequest) (*dto.PanicResponse, error) {
	event := models.PanicEvent{
		ID:     uuid.New(),
		UserID: callerID,
		PlanID: req.PlanID,
		Note:   req.Note,
		Lat:    req.Lat,
		Lng:    req.Lng,
		Status: models.PanicStatusOpen,
	}

	if err := s.db.Create(&event).Error; err != nil {
		return nil, fmt.Errorf("failed to record panic event: %w", err)
	}

	contacts, err := s.contacts.List(callerID, s.contactLimit)
	if err != nil {
		// The event is already durable; a contact-load failure just means
		// nobody gets notified this time.
		slog.Error("panic fan-out: loading contacts failed", "error", err, "panic_id", event.ID)
		contacts = nil
	}

	msg := s.renderAlert(&event, callerEmail)
	emails, sms := s.fanOut(ctx, contacts, msg)

	return &dto.PanicResponse{
		ID:       event.ID,
		Notified: dto.NotifiedCounts{Emails: emails, SMS: sms},
	}, nil
}

// alertMessage is the rendered notification in both channel shapes.
type alertMessage struct {
	subject   string
	body      string
	smsText   string
	safetyURL string
}

func (s *PanicService) renderAlert(event *models.PanicEvent, callerEmail string) alertMessage {
	from := callerEmail
	if from == "" {
		from = "your contact"
	}

	planLine := ""
	if event.PlanID != nil {
		// Best-effort context: a missing or unreadable plan degrades to an
		// omitted line, never a failed trigger.
		if plan, err := s.plans.Get(*event.PlanID); err == nil {
			place := plan.LocationText
			if place == "" {
				place = "Unknown place"
			}
			planLine = fmt.Sprintf("\nPlan: %s at %s", plan.StartTime.Format(time.RFC1123), place)
		} else if !errors.Is(err, ErrPlanNotFound) {
			slog.Error("panic fan-out: loading plan context failed", "error", err, "panic_id", event.ID)
		}
	}

	noteLine := ""
	if event.Note != "" {
		noteLine = fmt.Sprintf("Note: %s\n", event.Note)
	}

	coordLine := ""
	if event.Lat != nil && event.Lng != nil {
		coordLine = fmt.Sprintf("\nLocation: https://maps.google.com/?q=%v,%v", *event.Lat, *event.Lng)
	}

	at := event.CreatedAt
	if at.IsZero() {
		at = time.Now()
	}

	body := fmt.Sprintf(
		"PANIC alert from %s at %s.%s\n%s%s\n\nIf you cannot reach them, consider contacting local authorities.\n- Naijamingles Safety",
		from, at.UTC().Format(time.RFC1123), planLine, noteLine, coordLine,
	)

	smsText := fmt.Sprintf("PANIC: %s%s%s", from, strings.ReplaceAll(planLine, "\n", " "), strings.ReplaceAll(coordLine, "\n", " "))

	return alertMessage{
		subject:   "PANIC alert: your contact may need help",
		body:      body,
		smsText:   smsText,
		safetyURL: s.siteURL + "/safety",
	}
}

// fanOut attempts delivery to every reachable channel of every contact.
// Attempts are independent: one failure is logged and excluded from the
// counts without affecting any other contact or channel.
func (s *PanicService) fanOut(ctx context.Context, contacts []models.TrustedContact, msg alertMessage) (emails, sms int) {
	var emailCount, smsCount atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fanOutConcurrency)

	for _, contact := range contacts {
		contact := contact
		g.Go(func() error {
			if contact.NotifyEmail && contact.Email != "" {
				if err := s.sendEmail(gctx, contact, msg); err != nil {
					slog.Error("panic fan-out: email failed", "error", err, "contact_id", contact.ID)
				} else {
					emailCount.Add(1)
				}
			}
			if contact.NotifySMS && contact.Phone != "" {
				if err := s.sendSMS(gctx, contact, msg); err != nil {
					slog.Error("panic fan-out: sms failed", "error", err, "contact_id", contact.ID)
				} else {
					smsCount.Add(1)
				}
			}
			return nil
		})
	}

	// Goroutines never return errors; Wait only serializes completion.
	_ = g.Wait()

	return int(emailCount.Load()), int(smsCount.Load())
}

func (s *PanicService) sendEmail(ctx context.Context, contact models.TrustedContact, msg alertMessage) error {
	ctx, cancel := context.WithTimeout(ctx, s.notifyTimeout)
	defer cancel()
	return s.notifier.SendEmail(ctx, notify.Email{
		To:      contact.Email,
		Subject: msg.subject,
		Text:    fmt.Sprintf("Hi %s,\n\n%s\n\nYou can also check in-app: %s", contact.Name, msg.body, msg.safetyURL),
	})
}

func (s *PanicService) sendSMS(ctx context.Context, contact models.TrustedContact, msg alertMessage) error {
	ctx, cancel := context.WithTimeout(ctx, s.notifyTimeout)
	defer cancel()
	return s.notifier.SendSMS(ctx, notify.SMS{
		To:   contact.Phone,
		Text: msg.smsText,
	})
}
