package dto

import "github.com/naijamingles/safety-backend/internal/models"

// Page wraps an admin listing. HasNext is inferred from a full page: at an
// exact boundary it can report a next page that turns out empty.
type PanicListResponse struct {
	Panics  []models.PanicEvent `json:"panics"`
	Page    int                 `json:"page"`
	Size    int                 `json:"size"`
	HasNext bool                `json:"has_next"`
}

type ReportListResponse struct {
	Reports []models.UserReport `json:"reports"`
	Page    int                 `json:"page"`
	Size    int                 `json:"size"`
	HasNext bool                `json:"has_next"`
}

type CheckInListResponse struct {
	CheckIns []models.CheckIn `json:"checkins"`
	Page     int              `json:"page"`
	Size     int              `json:"size"`
	HasNext  bool             `json:"has_next"`
}
