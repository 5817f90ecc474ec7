package models

import (
	"time"

	"github.com/google/uuid"
)

type PlanStatus string

const (
	PlanStatusPlanned   PlanStatus = "planned"
	PlanStatusCanceled  PlanStatus = "canceled"
	PlanStatusCompleted PlanStatus = "completed"
)

// MeetingPlan is a scheduled in-person meeting between two users. The owner
// created it; the partner is the only other party with access.
type MeetingPlan struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerUserID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"owner_user_id"`
	PartnerUserID uuid.UUID  `gorm:"type:uuid;not null;index" json:"partner_user_id"`
	StartTime     time.Time  `gorm:"not null" json:"start_time"`
	LocationText  string     `gorm:"type:text" json:"location_text,omitempty"`
	Notes         string     `gorm:"type:text" json:"notes,omitempty"`
	Status        PlanStatus `gorm:"size:20;not null;default:'planned'" json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
}

func (MeetingPlan) TableName() string {
	return "meeting_plans"
}
