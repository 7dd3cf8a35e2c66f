// Package adapters provides repository implementations for the saves feature.
package adapters

import (
	"time"

	authentity "game_backend/internal/feature/auth/domain/entity"
	"game_backend/internal/feature/saves/domain/entity"
)

// GameSaveModel is the GORM model for the game_saves table.
// (user_id, save_name) is the logical key; it is enforced by lookup-before-
// write in the usecase, not by a unique constraint. Deleting a user cascades
// to their saves.
type GameSaveModel struct {
	ID        uint            `gorm:"primaryKey"`
	UserID    uint            `gorm:"index;not null"`
	User      authentity.User `gorm:"constraint:OnDelete:CASCADE"`
	SaveName  string          `gorm:"size:64;not null"`
	Data      string          `gorm:"type:text;not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM.
func (GameSaveModel) TableName() string {
	return "game_saves"
}

// ToEntity converts the GORM model to a domain entity.
func (m *GameSaveModel) ToEntity() *entity.GameSave {
	return &entity.GameSave{
		ID:        m.ID,
		UserID:    m.UserID,
		SaveName:  m.SaveName,
		Data:      m.Data,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// GameSaveModelFromEntity converts a domain entity to a GORM model.
func GameSaveModelFromEntity(s *entity.GameSave) *GameSaveModel {
	return &GameSaveModel{
		ID:        s.ID,
		UserID:    s.UserID,
		SaveName:  s.SaveName,
		Data:      s.Data,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
