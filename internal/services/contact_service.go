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

var ErrContactNameRequired = errors.New("contact name is required")

type ContactService struct {
	db *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{db: db}
}

// Add registers a trusted contact. Name is the only required field; a
// contact with neither email nor phone is accepted and simply never
// notified.
func (s *ContactService) Add(userID uuid.UUID, req *dto.AddContactRequest) (*models.TrustedContact, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrContactNameRequired
	}

	contact := models.TrustedContact{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		NotifyEmail: req.NotifyEmail,
		NotifySMS:   req.NotifySMS,
	}

	if err := s.db.Create(&contact).Error; err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	return &contact, nil
}

// List returns up to limit of the user's contacts. The cap bounds the
// worst-case panic fan-out; order is not significant since every listed
// contact is notified.
func (s *ContactService) List(userID uuid.UUID, limit int) ([]models.TrustedContact, error) {
	var contacts []models.TrustedContact
	err := s.db.
		Where("user_id = ?", userID).
		Limit(limit).
		Find(&contacts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}
