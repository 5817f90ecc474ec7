package models

import (
	"time"

	"github.com/google/uuid"
)

// TrustedContact is a third party registered by a user to receive panic
// notifications. A contact with neither email nor phone is allowed but
// unreachable.
type TrustedContact struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string    `gorm:"not null;size:255" json:"name"`
	Email       string    `gorm:"size:255" json:"email,omitempty"`
	Phone       string    `gorm:"size:50" json:"phone,omitempty"`
	NotifyEmail bool      `gorm:"default:false" json:"notify_email"`
	NotifySMS   bool      `gorm:"default:false" json:"notify_sms"`
	CreatedAt   time.Time `json:"created_at"`
}

func (TrustedContact) TableName() string {
	return "trusted_contacts"
}
