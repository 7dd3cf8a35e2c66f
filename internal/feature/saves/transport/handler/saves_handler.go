// Package handler provides the HTTP handlers for the saves feature.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"game_backend/internal/api"
	"game_backend/internal/feature/auth/transport/middleware"
	"game_backend/internal/feature/saves/domain/entity"
	"game_backend/internal/feature/saves/transport/http/dto"
	"game_backend/internal/feature/saves/usecase"
)

// SavesUsecase defines the save-slot operations used by the HTTP layer.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type SavesUsecase interface {
	// Save upserts the game state into the named slot of the user.
	Save(ctx context.Context, userID uint, saveName string, state json.RawMessage) error
	// Load returns the game state stored in the named slot of the user.
	Load(ctx context.Context, userID uint, saveName string) (json.RawMessage, error)
	// List returns all save slots of the user in creation order.
	List(ctx context.Context, userID uint) ([]*entity.GameSave, error)
}

// SavesHandler handles HTTP requests for saving, loading and listing save
// slots. All routes sit behind the session middleware, so the user ID is
// always taken from the request context, never from the request body.
type SavesHandler struct {
	saves SavesUsecase
}

// NewSavesHandler creates a new SavesHandler.
func NewSavesHandler(saves SavesUsecase) *SavesHandler {
	return &SavesHandler{saves: saves}
}

// SaveGame handles POST /api/save.
func (h *SavesHandler) SaveGame(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	var req dto.SaveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("save validation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Missing required fields"})
		return
	}

	if err := h.saves.Save(c.Request.Context(), userID, req.SaveName, req.GameState); err != nil {
		if errors.Is(err, usecase.ErrInvalidGameState) {
			slog.Warn("save rejected", "error", err, "user_id", userID, "save_name", req.SaveName)
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid game state"})
			return
		}
		slog.Error("save failed", "error", err, "user_id", userID, "save_name", req.SaveName)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Game saved successfully"})
}

// LoadGame handles GET /api/load/:save_name.
// On success the stored game state is returned verbatim as the response body.
func (h *SavesHandler) LoadGame(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)
	saveName := c.Param("save_name")

	state, err := h.saves.Load(c.Request.Context(), userID, saveName)
	if err != nil {
		if errors.Is(err, usecase.ErrSaveNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Save not found"})
			return
		}
		slog.Error("load failed", "error", err, "user_id", userID, "save_name", saveName)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", state)
}

// ListSaves handles GET /api/saves.
func (h *SavesHandler) ListSaves(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	saves, err := h.saves.List(c.Request.Context(), userID)
	if err != nil {
		slog.Error("list saves failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		return
	}

	summaries := make([]api.SaveSummary, 0, len(saves))
	for _, s := range saves {
		summaries = append(summaries, api.SaveSummary{
			SaveName:  s.SaveName,
			CreatedAt: s.CreatedAt,
			UpdatedAt: s.UpdatedAt,
		})
	}
	c.JSON(http.StatusOK, summaries)
}
