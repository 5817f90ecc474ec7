package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/naijamingles/safety-backend/internal/dto"
	"github.com/naijamingles/safety-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrSelfPartner      = errors.New("cannot plan a meeting with yourself")
	ErrInvalidStartTime = errors.New("invalid date format")
	ErrPlanNotFound     = errors.New("plan not found")
	ErrNotParticipant   = errors.New("not a participant")
)

// startTimeLayouts accepted for plan creation. The web client submits
// datetime-local values without a zone; those are taken as UTC.
var startTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

type PlanService struct {
	db *gorm.DB
}

func NewPlanService(db *gorm.DB) *PlanService {
	return &PlanService{db: db}
}

// Create records a meeting plan owned by the caller. The partner is not
// asked for consent and its existence is not checked; only the self-partner
// case is rejected.
func (s *PlanService) Create(ownerID uuid.UUID, req *dto.CreatePlanRequest) (*models.MeetingPlan, error) {
	if req.PartnerUserID == ownerID {
		return nil, ErrSelfPartner
	}

	start, err := parseStartTime(req.StartTime)
	if err != nil {
		return nil, err
	}

	plan := models.MeetingPlan{
		ID:            uuid.New(),
		OwnerUserID:   ownerID,
		PartnerUserID: req.PartnerUserID,
		StartTime:     start,
		LocationText:  req.LocationText,
		Notes:         req.Notes,
		Status:        models.PlanStatusPlanned,
	}

	if err := s.db.Create(&plan).Error; err != nil {
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}
	return &plan, nil
}

// List returns the caller's plans (owner or partner side), newest first.
func (s *PlanService) List(userID uuid.UUID) ([]models.MeetingPlan, error) {
	var plans []models.MeetingPlan
	err := s.db.
		Where("owner_user_id = ? OR partner_user_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&plans).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return plans, nil
}

// Participants returns the two user IDs with access to the plan.
func (s *PlanService) Participants(planID uuid.UUID) (owner, partner uuid.UUID, err error) {
	var plan models.MeetingPlan
	if err := s.db.Select("owner_user_id", "partner_user_id").First(&plan, "id = ?", planID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, uuid.Nil, ErrPlanNotFound
		}
		return uuid.Nil, uuid.Nil, fmt.Errorf("failed to load plan: %w", err)
	}
	return plan.OwnerUserID, plan.PartnerUserID, nil
}

// Get loads a full plan row.
func (s *PlanService) Get(planID uuid.UUID) (*models.MeetingPlan, error) {
	var plan models.MeetingPlan
	if err := s.db.First(&plan, "id = ?", planID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}
	return &plan, nil
}

func parseStartTime(s string) (time.Time, error) {
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidStartTime
}
