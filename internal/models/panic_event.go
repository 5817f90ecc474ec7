package models

import (
	"time"

	"github.com/google/uuid"
)

type PanicStatus string

const (
	PanicStatusOpen     PanicStatus = "open"
	PanicStatusResolved PanicStatus = "resolved"
)

// PanicEvent is a user-triggered emergency alert. Status moves open->resolved
// exactly once conceptually; there is no un-resolve.
type PanicEvent struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID   `gorm:"type:uuid;not null;index" json:"user_id"`
	PlanID     *uuid.UUID  `gorm:"type:uuid;index" json:"plan_id,omitempty"`
	Note       string      `gorm:"type:text" json:"note,omitempty"`
	Lat        *float64    `json:"lat,omitempty"`
	Lng        *float64    `json:"lng,omitempty"`
	Status     PanicStatus `gorm:"size:20;not null;default:'open';index" json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	ResolvedAt *time.Time  `json:"resolved_at,omitempty"`
	ResolvedBy *uuid.UUID  `gorm:"type:uuid" json:"resolved_by,omitempty"`
}

func (PanicEvent) TableName() string {
	return "panic_events"
}
