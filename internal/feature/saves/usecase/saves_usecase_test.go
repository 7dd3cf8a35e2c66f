package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"game_backend/internal/feature/saves/domain/entity"
)

type saveKey struct {
	userID uint
	name   string
}

// mockSaveRepo is an in-memory implementation of SaveRepository.
type mockSaveRepo struct {
	saves  map[saveKey]*entity.GameSave
	nextID uint
}

func newMockSaveRepo() *mockSaveRepo {
	return &mockSaveRepo{saves: map[saveKey]*entity.GameSave{}, nextID: 1}
}

func (m *mockSaveRepo) FindByUserAndName(ctx context.Context, userID uint, saveName string) (*entity.GameSave, error) {
	if s, ok := m.saves[saveKey{userID, saveName}]; ok {
		return s, nil
	}
	return nil, ErrSaveNotFound
}

func (m *mockSaveRepo) Create(ctx context.Context, save *entity.GameSave) error {
	now := time.Now()
	save.ID = m.nextID
	save.CreatedAt = now
	save.UpdatedAt = now
	m.nextID++
	m.saves[saveKey{save.UserID, save.SaveName}] = save
	return nil
}

func (m *mockSaveRepo) UpdateData(ctx context.Context, id uint, data string) error {
	for _, s := range m.saves {
		if s.ID == id {
			s.Data = data
			s.UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrSaveNotFound
}

func (m *mockSaveRepo) ListByUser(ctx context.Context, userID uint) ([]*entity.GameSave, error) {
	var out []*entity.GameSave
	for _, s := range m.saves {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func TestSavesUsecase_Save(t *testing.T) {
	t.Run("first write creates the slot", func(t *testing.T) {
		repo := newMockSaveRepo()
		uc := NewSavesUsecase(repo)

		err := uc.Save(context.Background(), 1, "slot1", json.RawMessage(`{"hp": 10}`))

		require.NoError(t, err)
		saved, err := repo.FindByUserAndName(context.Background(), 1, "slot1")
		require.NoError(t, err)
		assert.JSONEq(t, `{"hp":10}`, saved.Data)
	})

	t.Run("second write overwrites, never merges", func(t *testing.T) {
		repo := newMockSaveRepo()
		uc := NewSavesUsecase(repo)

		require.NoError(t, uc.Save(context.Background(), 1, "slot1", json.RawMessage(`{"hp":10,"mp":5}`)))
		require.NoError(t, uc.Save(context.Background(), 1, "slot1", json.RawMessage(`{"hp":3}`)))

		saved, err := repo.FindByUserAndName(context.Background(), 1, "slot1")
		require.NoError(t, err)
		assert.JSONEq(t, `{"hp":3}`, saved.Data, "old fields must not survive an overwrite")
		assert.Len(t, repo.saves, 1, "overwrite must not create a second record")
	})

	t.Run("payload is compacted through one encode path", func(t *testing.T) {
		repo := newMockSaveRepo()
		uc := NewSavesUsecase(repo)

		err := uc.Save(context.Background(), 1, "slot1", json.RawMessage("{\n  \"hp\": 10\n}"))

		require.NoError(t, err)
		saved, err := repo.FindByUserAndName(context.Background(), 1, "slot1")
		require.NoError(t, err)
		assert.Equal(t, `{"hp":10}`, saved.Data)
	})

	tests := []struct {
		name  string
		state json.RawMessage
	}{
		{name: "failure: empty payload", state: nil},
		{name: "failure: truncated JSON", state: json.RawMessage(`{"hp":`)},
		{name: "failure: not JSON at all", state: json.RawMessage(`hp=10`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockSaveRepo()
			uc := NewSavesUsecase(repo)

			err := uc.Save(context.Background(), 1, "slot1", tt.state)

			assert.ErrorIs(t, err, ErrInvalidGameState)
			assert.Empty(t, repo.saves, "nothing should be stored")
		})
	}
}

func TestSavesUsecase_Load(t *testing.T) {
	t.Run("round trip returns an equal value", func(t *testing.T) {
		repo := newMockSaveRepo()
		uc := NewSavesUsecase(repo)

		require.NoError(t, uc.Save(context.Background(), 1, "slot1", json.RawMessage(`{"hp":10,"items":["sword"]}`)))

		state, err := uc.Load(context.Background(), 1, "slot1")

		require.NoError(t, err)
		assert.JSONEq(t, `{"hp":10,"items":["sword"]}`, string(state))
	})

	t.Run("failure: unknown slot", func(t *testing.T) {
		repo := newMockSaveRepo()
		uc := NewSavesUsecase(repo)

		_, err := uc.Load(context.Background(), 1, "never-written")

		assert.ErrorIs(t, err, ErrSaveNotFound)
	})

	t.Run("failure: another user's slot with the same name is invisible", func(t *testing.T) {
		repo := newMockSaveRepo()
		uc := NewSavesUsecase(repo)

		require.NoError(t, uc.Save(context.Background(), 2, "slot1", json.RawMessage(`{"hp":1}`)))

		_, err := uc.Load(context.Background(), 1, "slot1")

		assert.ErrorIs(t, err, ErrSaveNotFound)
	})

	t.Run("failure: corrupt stored payload", func(t *testing.T) {
		repo := newMockSaveRepo()
		uc := NewSavesUsecase(repo)

		repo.saves[saveKey{1, "slot1"}] = &entity.GameSave{ID: 1, UserID: 1, SaveName: "slot1", Data: `{"hp":`}

		_, err := uc.Load(context.Background(), 1, "slot1")

		assert.ErrorIs(t, err, ErrCorruptData)
	})
}

func TestSavesUsecase_List(t *testing.T) {
	repo := newMockSaveRepo()
	uc := NewSavesUsecase(repo)

	require.NoError(t, uc.Save(context.Background(), 1, "a", json.RawMessage(`{}`)))
	require.NoError(t, uc.Save(context.Background(), 1, "b", json.RawMessage(`{}`)))
	require.NoError(t, uc.Save(context.Background(), 2, "c", json.RawMessage(`{}`)))

	saves, err := uc.List(context.Background(), 1)

	require.NoError(t, err)
	names := make([]string, 0, len(saves))
	for _, s := range saves {
		names = append(names, s.SaveName)
	}
	assert.ElementsMatch(t, []string{"a", "b"}, names, "list must contain exactly the caller's saves")
}
