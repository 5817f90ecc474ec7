package models

import (
	"time"

	"github.com/google/uuid"
)

// UserBlock existence means the block is active; unblock deletes the row.
// This is the only entity that is ever physically deleted.
type UserBlock struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BlockerUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_block_pair" json:"blocker_user_id"`
	BlockedUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_block_pair" json:"blocked_user_id"`
	CreatedAt     time.Time `json:"created_at"`
}

func (UserBlock) TableName() string {
	return "user_blocks"
}
