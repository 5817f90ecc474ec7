package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/naijamingles/safety-backend/internal/dto"
	"github.com/naijamingles/safety-backend/internal/models"
	"gorm.io/gorm"
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

type ReviewService struct {
	db    *gorm.DB
	plans *PlanService
}

func NewReviewService(db *gorm.DB, plans *PlanService) *ReviewService {
	return &ReviewService{db: db, plans: plans}
}

// Create records a post-meeting review. The reviewee is the other
// participant of the plan, derived server-side.
func (s *ReviewService) Create(reviewerID uuid.UUID, req *dto.ReviewRequest) (*models.MeetingReview, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	owner, partner, err := s.plans.Participants(req.PlanID)
	if err != nil {
		return nil, err
	}

	var reviewee uuid.UUID
	switch reviewerID {
	case owner:
		reviewee = partner
	case partner:
		reviewee = owner
	default:
		return nil, ErrNotParticipant
	}

	review := models.MeetingReview{
		ID:             uuid.New(),
		PlanID:         req.PlanID,
		ReviewerUserID: reviewerID,
		RevieweeUserID: reviewee,
		Rating:         req.Rating,
		Comment:        req.Comment,
	}

	if err := s.db.Create(&review).Error; err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return &review, nil
}
