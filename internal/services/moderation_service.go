package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/naijamingles/safety-backend/internal/dto"
	"github.com/naijamingles/safety-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrSelfReport          = errors.New("cannot report yourself")
	ErrSelfBlock           = errors.New("cannot block yourself")
	ErrReasonRequired      = errors.New("reason is required")
	ErrReportNotFound      = errors.New("report not found")
	ErrInvalidReportStatus = errors.New("invalid status: must be open, reviewing, or resolved")
)

type ModerationService struct {
	db *gorm.DB
}

func NewModerationService(db *gorm.DB) *ModerationService {
	return &ModerationService{db: db}
}

// FileReport records a user-to-user abuse report with status open. There is
// no rate limiting and no duplicate detection.
func (s *ModerationService) FileReport(reporterID uuid.UUID, req *dto.CreateReportRequest) (*models.UserReport, error) {
	if req.UserID == reporterID {
		return nil, ErrSelfReport
	}
	if len(strings.TrimSpace(req.Reason)) < 2 {
		return nil, ErrReasonRequired
	}

	report := models.UserReport{
		ID:             uuid.New(),
		ReporterUserID: reporterID,
		ReportedUserID: req.UserID,
		Reason:         req.Reason,
		Details:        req.Details,
		Status:         models.ReportStatusOpen,
	}

	if err := s.db.Create(&report).Error; err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	return &report, nil
}

// ListReports returns reports newest first, optionally filtered by status.
func (s *ModerationService) ListReports(status models.ReportStatus, page, size int) ([]models.UserReport, error) {
	query := s.db.Model(&models.UserReport{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var reports []models.UserReport
	err := query.
		Order("created_at DESC").
		Limit(size).
		Offset((page - 1) * size).
		Find(&reports).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}

// SetReportStatus overwrites a report's status unconditionally; any of the
// three values may follow any other, including resolved back to open.
func (s *ModerationService) SetReportStatus(reportID uuid.UUID, status models.ReportStatus) error {
	if !models.ValidReportStatus(status) {
		return ErrInvalidReportStatus
	}

	result := s.db.Model(&models.UserReport{}).
		Where("id = ?", reportID).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update report: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrReportNotFound
	}
	return nil
}

// Block makes the pair active. Re-blocking an already blocked user is a
// no-op rather than an error.
func (s *ModerationService) Block(blockerID, blockedID uuid.UUID) error {
	if blockerID == blockedID {
		return ErrSelfBlock
	}

	var existing models.UserBlock
	err := s.db.Where("blocker_user_id = ? AND blocked_user_id = ?", blockerID, blockedID).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check block: %w", err)
	}

	block := models.UserBlock{
		ID:            uuid.New(),
		BlockerUserID: blockerID,
		BlockedUserID: blockedID,
	}
	if err := s.db.Create(&block).Error; err != nil {
		return fmt.Errorf("failed to create block: %w", err)
	}
	return nil
}

// Unblock deletes the pair; unblocking a user who was never blocked succeeds.
func (s *ModerationService) Unblock(blockerID, blockedID uuid.UUID) error {
	return s.db.
		Where("blocker_user_id = ? AND blocked_user_id = ?", blockerID, blockedID).
		Delete(&models.UserBlock{}).Error
}

// IsBlocked reports whether blocker currently blocks blocked.
func (s *ModerationService) IsBlocked(blockerID, blockedID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.Model(&models.UserBlock{}).
		Where("blocker_user_id = ? AND blocked_user_id = ?", blockerID, blockedID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check block: %w", err)
	}
	return count > 0, nil
}
