package dto

import (
	"github.com/google/uuid"
	"github.com/naijamingles/safety-backend/internal/models"
)

type CreateReportRequest struct {
	UserID  uuid.UUID `json:"user_id"`
	Reason  string    `json:"reason"`
	Details string    `json:"details,omitempty"`
}

type CreateReportResponse struct {
	ID uuid.UUID `json:"id"`
}

type BlockUserRequest struct {
	BlockedUserID uuid.UUID `json:"blocked_user_id"`
}

type BlockStatusResponse struct {
	Blocked bool `json:"blocked"`
}

type SetReportStatusRequest struct {
	Status models.ReportStatus `json:"status"`
}
