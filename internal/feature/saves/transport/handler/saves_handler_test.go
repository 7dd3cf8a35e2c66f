package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"game_backend/internal/feature/auth/transport/middleware"
	"game_backend/internal/feature/saves/domain/entity"
	"game_backend/internal/feature/saves/usecase"
)

// mockSavesUsecase is a mock implementation of the SavesUsecase interface.
type mockSavesUsecase struct {
	SaveFunc func(ctx context.Context, userID uint, saveName string, state json.RawMessage) error
	LoadFunc func(ctx context.Context, userID uint, saveName string) (json.RawMessage, error)
	ListFunc func(ctx context.Context, userID uint) ([]*entity.GameSave, error)
}

func (m *mockSavesUsecase) Save(ctx context.Context, userID uint, saveName string, state json.RawMessage) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, userID, saveName, state)
	}
	return nil
}

func (m *mockSavesUsecase) Load(ctx context.Context, userID uint, saveName string) (json.RawMessage, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx, userID, saveName)
	}
	return nil, usecase.ErrSaveNotFound
}

func (m *mockSavesUsecase) List(ctx context.Context, userID uint) ([]*entity.GameSave, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID)
	}
	return nil, nil
}

// asUser simulates the session middleware by placing the identity in the
// request context.
func asUser(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Next()
	}
}

func TestSavesHandler_SaveGame(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           string
		mockSave       func(ctx context.Context, userID uint, saveName string, state json.RawMessage) error
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: save game",
			body: `{"save_name": "slot1", "game_state": {"hp": 10}}`,
			mockSave: func(ctx context.Context, userID uint, saveName string, state json.RawMessage) error {
				assert.Equal(t, uint(7), userID)
				assert.Equal(t, "slot1", saveName)
				assert.JSONEq(t, `{"hp":10}`, string(state))
				return nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message": "Game saved successfully"}`,
		},
		{
			name:           "failure: missing save_name",
			body:           `{"game_state": {"hp": 10}}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error": "Missing required fields"}`,
		},
		{
			name:           "failure: missing game_state",
			body:           `{"save_name": "slot1"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error": "Missing required fields"}`,
		},
		{
			name: "failure: unserializable game state",
			body: `{"save_name": "slot1", "game_state": {}}`,
			mockSave: func(ctx context.Context, userID uint, saveName string, state json.RawMessage) error {
				return usecase.ErrInvalidGameState
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error": "Invalid game state"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewSavesHandler(&mockSavesUsecase{SaveFunc: tt.mockSave})

			router := gin.New()
			router.POST("/api/save", asUser(7), handler.SaveGame)

			req, _ := http.NewRequest(http.MethodPost, "/api/save", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestSavesHandler_LoadGame(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success: returns the stored game state verbatim", func(t *testing.T) {
		mockUC := &mockSavesUsecase{
			LoadFunc: func(ctx context.Context, userID uint, saveName string) (json.RawMessage, error) {
				assert.Equal(t, uint(7), userID)
				assert.Equal(t, "slot1", saveName)
				return json.RawMessage(`{"hp":10}`), nil
			},
		}
		handler := NewSavesHandler(mockUC)

		router := gin.New()
		router.GET("/api/load/:save_name", asUser(7), handler.LoadGame)

		req, _ := http.NewRequest(http.MethodGet, "/api/load/slot1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"hp":10}`, w.Body.String())
		assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	})

	t.Run("failure: unknown save is 404", func(t *testing.T) {
		handler := NewSavesHandler(&mockSavesUsecase{})

		router := gin.New()
		router.GET("/api/load/:save_name", asUser(7), handler.LoadGame)

		req, _ := http.NewRequest(http.MethodGet, "/api/load/missing", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error": "Save not found"}`, w.Body.String())
	})

	t.Run("failure: corrupt stored payload is 500 without detail", func(t *testing.T) {
		mockUC := &mockSavesUsecase{
			LoadFunc: func(ctx context.Context, userID uint, saveName string) (json.RawMessage, error) {
				return nil, usecase.ErrCorruptData
			},
		}
		handler := NewSavesHandler(mockUC)

		router := gin.New()
		router.GET("/api/load/:save_name", asUser(7), handler.LoadGame)

		req, _ := http.NewRequest(http.MethodGet, "/api/load/slot1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error": "Internal server error"}`, w.Body.String())
	})
}

func TestSavesHandler_ListSaves(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success: lists the caller's saves", func(t *testing.T) {
		mockUC := &mockSavesUsecase{
			ListFunc: func(ctx context.Context, userID uint) ([]*entity.GameSave, error) {
				assert.Equal(t, uint(7), userID)
				return []*entity.GameSave{
					{SaveName: "a"},
					{SaveName: "b"},
				}, nil
			},
		}
		handler := NewSavesHandler(mockUC)

		router := gin.New()
		router.GET("/api/saves", asUser(7), handler.ListSaves)

		req, _ := http.NewRequest(http.MethodGet, "/api/saves", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var body []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body, 2)
		assert.Equal(t, "a", body[0]["save_name"])
		assert.Equal(t, "b", body[1]["save_name"])
	})

	t.Run("success: no saves yields an empty array", func(t *testing.T) {
		handler := NewSavesHandler(&mockSavesUsecase{})

		router := gin.New()
		router.GET("/api/saves", asUser(7), handler.ListSaves)

		req, _ := http.NewRequest(http.MethodGet, "/api/saves", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}
