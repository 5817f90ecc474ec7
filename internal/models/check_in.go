package models

import (
	"time"

	"github.com/google/uuid"
)

type CheckInKind string

const (
	CheckInOnTheWay CheckInKind = "on_the_way"
	CheckInArrived  CheckInKind = "arrived"
	CheckInSafe     CheckInKind = "safe"
	CheckInCancel   CheckInKind = "cancel"
)

func ValidCheckInKind(k CheckInKind) bool {
	switch k {
	case CheckInOnTheWay, CheckInArrived, CheckInSafe, CheckInCancel:
		return true
	}
	return false
}

// CheckIn is an append-only status ping tied to a plan. Rows are never
// mutated or deleted; any kind is accepted in any order and consumers
// interpret latest-wins.
type CheckIn struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	PlanID    uuid.UUID   `gorm:"type:uuid;not null;index" json:"plan_id"`
	UserID    uuid.UUID   `gorm:"type:uuid;not null;index" json:"user_id"`
	Kind      CheckInKind `gorm:"size:20;not null;index" json:"kind"`
	Note      string      `gorm:"type:text" json:"note,omitempty"`
	Lat       *float64    `json:"lat,omitempty"`
	Lng       *float64    `json:"lng,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

func (CheckIn) TableName() string {
	return "meeting_checkins"
}
