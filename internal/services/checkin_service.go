package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/naijamingles/safety-backend/internal/dto"
	"github.com/naijamingles/safety-backend/internal/models"
	"gorm.io/gorm"
)

var ErrInvalidCheckInKind = errors.New("invalid check-in kind")

type CheckInService struct {
	db    *gorm.DB
	plans *PlanService
}

func NewCheckInService(db *gorm.DB, plans *PlanService) *CheckInService {
	return &CheckInService{db: db, plans: plans}
}

// Record appends a check-in after verifying the caller participates in the
// plan. The stream is a log, not a state machine: repeated or out-of-order
// kinds are accepted and consumers interpret latest-wins.
func (s *CheckInService) Record(userID uuid.UUID, req *dto.CheckInRequest) (*models.CheckIn, error) {
	if !models.ValidCheckInKind(req.Kind) {
		return nil, ErrInvalidCheckInKind
	}

	owner, partner, err := s.plans.Participants(req.PlanID)
	if err != nil {
		return nil, err
	}
	if userID != owner && userID != partner {
		return nil, ErrNotParticipant
	}

	checkIn := models.CheckIn{
		ID:     uuid.New(),
		PlanID: req.PlanID,
		UserID: userID,
		Kind:   req.Kind,
		Note:   req.Note,
		Lat:    req.Lat,
		Lng:    req.Lng,
	}

	if err := s.db.Create(&checkIn).Error; err != nil {
		return nil, fmt.Errorf("failed to record check-in: %w", err)
	}
	return &checkIn, nil
}

// List returns check-ins newest first, optionally filtered by plan and kind.
// Admin triage is the only consumer.
func (s *CheckInService) List(planID *uuid.UUID, kind models.CheckInKind, page, size int) ([]models.CheckIn, error) {
	query := s.db.Model(&models.CheckIn{})
	if planID != nil {
		query = query.Where("plan_id = ?", *planID)
	}
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}

	var checkIns []models.CheckIn
	err := query.
		Order("created_at DESC").
		Limit(size).
		Offset((page - 1) * size).
		Find(&checkIns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}
	return checkIns, nil
}
