package models

import (
	"time"

	"github.com/google/uuid"
)

// MeetingReview is a post-meeting rating of the other participant. The
// reviewee is always derived from the plan, never supplied by the client.
type MeetingReview struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PlanID         uuid.UUID `gorm:"type:uuid;not null;index" json:"plan_id"`
	ReviewerUserID uuid.UUID `gorm:"type:uuid;not null;index" json:"reviewer_user_id"`
	RevieweeUserID uuid.UUID `gorm:"type:uuid;not null;index" json:"reviewee_user_id"`
	Rating         int       `gorm:"not null" json:"rating"`
	Comment        string    `gorm:"type:text" json:"comment,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func (MeetingReview) TableName() string {
	return "meeting_reviews"
}
