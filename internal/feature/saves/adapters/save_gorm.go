package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"game_backend/internal/feature/saves/domain/entity"
	"game_backend/internal/feature/saves/usecase"
)

// saveGorm is a GORM implementation of the SaveRepository interface.
type saveGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure saveGorm implements SaveRepository.
var _ usecase.SaveRepository = (*saveGorm)(nil)

// NewSaveGorm creates a new saveGorm backed by the given gorm.DB connection.
func NewSaveGorm(db *gorm.DB) *saveGorm {
	return &saveGorm{db: db}
}

// FindByUserAndName retrieves the save slot for (userID, saveName).
// It returns usecase.ErrSaveNotFound if no such slot exists for this user.
func (r *saveGorm) FindByUserAndName(ctx context.Context, userID uint, saveName string) (*entity.GameSave, error) {
	var model GameSaveModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND save_name = ?", userID, saveName).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrSaveNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

// Create persists a new save slot. CreatedAt and UpdatedAt are set by GORM.
func (r *saveGorm) Create(ctx context.Context, save *entity.GameSave) error {
	model := GameSaveModelFromEntity(save)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	save.ID = model.ID
	save.CreatedAt = model.CreatedAt
	save.UpdatedAt = model.UpdatedAt
	return nil
}

// UpdateData overwrites the slot's payload; GORM refreshes UpdatedAt on the
// update while CreatedAt keeps its first-write value.
func (r *saveGorm) UpdateData(ctx context.Context, id uint, data string) error {
	result := r.db.WithContext(ctx).
		Model(&GameSaveModel{}).
		Where("id = ?", id).
		Update("data", data)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrSaveNotFound
	}
	return nil
}

// ListByUser returns all save slots owned by userID, ordered by creation time.
func (r *saveGorm) ListByUser(ctx context.Context, userID uint) ([]*entity.GameSave, error) {
	var models []GameSaveModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	saves := make([]*entity.GameSave, len(models))
	for i := range models {
		saves[i] = models[i].ToEntity()
	}
	return saves, nil
}
