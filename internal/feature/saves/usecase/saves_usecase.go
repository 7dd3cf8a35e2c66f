package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"game_backend/internal/feature/saves/domain/entity"
)

// SaveRepository abstracts the persistence layer for save slots.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SaveRepository interface {
	// FindByUserAndName retrieves the save slot for (userID, saveName).
	// It returns ErrSaveNotFound if no such slot exists for this user.
	FindByUserAndName(ctx context.Context, userID uint, saveName string) (*entity.GameSave, error)

	// Create persists a new save slot.
	Create(ctx context.Context, save *entity.GameSave) error

	// UpdateData overwrites the slot's payload and refreshes UpdatedAt.
	// CreatedAt is left untouched.
	UpdateData(ctx context.Context, id uint, data string) error

	// ListByUser returns all save slots owned by userID in creation order.
	ListByUser(ctx context.Context, userID uint) ([]*entity.GameSave, error)
}

// SavesUsecase implements the save/load/list operations.
// Uniqueness of (userID, saveName) is enforced by lookup-before-write, so two
// concurrent writes to the same fresh slot can race; single-player save slots
// make that window acceptable.
type SavesUsecase struct {
	saves SaveRepository
}

// NewSavesUsecase creates a new SavesUsecase.
func NewSavesUsecase(saves SaveRepository) *SavesUsecase {
	return &SavesUsecase{saves: saves}
}

// Save upserts the game state into the named slot of the user.
// An existing slot is overwritten in place (no history, no merge); a new slot
// is created on first write. The payload is re-encoded through json.Compact so
// every stored value went through the same encode path.
func (u *SavesUsecase) Save(ctx context.Context, userID uint, saveName string, state json.RawMessage) error {
	data, err := encodeState(state)
	if err != nil {
		return err
	}

	existing, err := u.saves.FindByUserAndName(ctx, userID, saveName)
	if err == nil {
		return u.saves.UpdateData(ctx, existing.ID, data)
	}
	if !errors.Is(err, ErrSaveNotFound) {
		return err
	}

	save := &entity.GameSave{
		UserID:   userID,
		SaveName: saveName,
		Data:     data,
	}
	return u.saves.Create(ctx, save)
}

// Load returns the game state stored in the named slot of the user.
// The lookup is always scoped by userID; another user's slot with the same
// name is invisible here.
func (u *SavesUsecase) Load(ctx context.Context, userID uint, saveName string) (json.RawMessage, error) {
	save, err := u.saves.FindByUserAndName(ctx, userID, saveName)
	if err != nil {
		return nil, err
	}

	if !json.Valid([]byte(save.Data)) {
		return nil, ErrCorruptData
	}
	return json.RawMessage(save.Data), nil
}

// List returns all save slots of the user, ordered by creation time.
func (u *SavesUsecase) List(ctx context.Context, userID uint) ([]*entity.GameSave, error) {
	return u.saves.ListByUser(ctx, userID)
}

// encodeState validates and compacts the submitted game state.
func encodeState(state json.RawMessage) (string, error) {
	if len(state) == 0 || !json.Valid(state) {
		return "", ErrInvalidGameState
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, state); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidGameState, err)
	}
	return buf.String(), nil
}
