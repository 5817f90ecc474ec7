package models

import (
	"time"

	"github.com/google/uuid"
)

type ReportStatus string

const (
	ReportStatusOpen      ReportStatus = "open"
	ReportStatusReviewing ReportStatus = "reviewing"
	ReportStatusResolved  ReportStatus = "resolved"
)

func ValidReportStatus(s ReportStatus) bool {
	switch s {
	case ReportStatusOpen, ReportStatusReviewing, ReportStatusResolved:
		return true
	}
	return false
}

// UserReport is a user-to-user abuse report. Unlike panics, admins may move
// the status in either direction.
type UserReport struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	ReporterUserID uuid.UUID    `gorm:"type:uuid;not null;index" json:"reporter_user_id"`
	ReportedUserID uuid.UUID    `gorm:"type:uuid;not null;index" json:"reported_user_id"`
	Reason         string       `gorm:"not null;size:500" json:"reason"`
	Details        string       `gorm:"type:text" json:"details,omitempty"`
	Status         ReportStatus `gorm:"size:20;not null;default:'open';index" json:"status"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

func (UserReport) TableName() string {
	return "user_reports"
}
