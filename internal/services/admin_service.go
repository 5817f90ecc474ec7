package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/naijamingles/safety-backend/internal/models"
	"gorm.io/gorm"
)

// AdminService is the privileged read/mutation surface over the accumulated
// safety streams. Authorization happens in the admin middleware; methods
// here assume the caller has already been admitted.
type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

// ResolvePanic transitions a panic event to resolved and stamps who did it
// and when. Re-resolving just restamps the audit fields; the status can
// never move back to open.
func (s *AdminService) ResolvePanic(adminID, panicID uuid.UUID) error {
	now := time.Now().UTC()
	result := s.db.Model(&models.PanicEvent{}).
		Where("id = ?", panicID).
		Updates(map[string]interface{}{
			"status":      models.PanicStatusResolved,
			"resolved_at": now,
			"resolved_by": adminID,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to resolve panic: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPanicNotFound
	}
	return nil
}

// ListPanics returns panic events newest first, optionally filtered by status.
func (s *AdminService) ListPanics(status models.PanicStatus, page, size int) ([]models.PanicEvent, error) {
	query := s.db.Model(&models.PanicEvent{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var panics []models.PanicEvent
	err := query.
		Order("created_at DESC").
		Limit(size).
		Offset((page - 1) * size).
		Find(&panics).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list panics: %w", err)
	}
	return panics, nil
}

// GetPanic loads a single panic event.
func (s *AdminService) GetPanic(panicID uuid.UUID) (*models.PanicEvent, error) {
	var event models.PanicEvent
	if err := s.db.First(&event, "id = ?", panicID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPanicNotFound
		}
		return nil, fmt.Errorf("failed to load panic: %w", err)
	}
	return &event, nil
}
