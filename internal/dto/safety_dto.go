package dto

import (
	"github.com/google/uuid"
	"github.com/naijamingles/safety-backend/internal/models"
)

type CreatePlanRequest struct {
	PartnerUserID uuid.UUID `json:"partner_user_id"`
	StartTime     string    `json:"start_time"` // RFC3339 or datetime-local
	LocationText  string    `json:"location_text,omitempty"`
	Notes         string    `json:"notes,omitempty"`
}

type CreatePlanResponse struct {
	ID uuid.UUID `json:"id"`
}

type CheckInRequest struct {
	PlanID uuid.UUID          `json:"plan_id"`
	Kind   models.CheckInKind `json:"kind"`
	Note   string             `json:"note,omitempty"`
	Lat    *float64           `json:"lat,omitempty"`
	Lng    *float64           `json:"lng,omitempty"`
}

type AddContactRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	NotifyEmail bool   `json:"notify_email"`
	NotifySMS   bool   `json:"notify_sms"`
}

type AddContactResponse struct {
	ID uuid.UUID `json:"id"`
}

type PanicRequest struct {
	PlanID *uuid.UUID `json:"plan_id,omitempty"`
	Note   string     `json:"note,omitempty"`
	Lat    *float64   `json:"lat,omitempty"`
	Lng    *float64   `json:"lng,omitempty"`
}

type NotifiedCounts struct {
	Emails int `json:"emails"`
	SMS    int `json:"sms"`
}

type PanicResponse struct {
	ID       uuid.UUID      `json:"id"`
	Notified NotifiedCounts `json:"notified"`
}

type ReviewRequest struct {
	PlanID  uuid.UUID `json:"plan_id"`
	Rating  int       `json:"rating"`
	Comment string    `json:"comment,omitempty"`
}
