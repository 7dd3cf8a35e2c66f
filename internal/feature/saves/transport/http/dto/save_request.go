// Package dto defines data transfer objects for the saves feature's HTTP transport layer.
package dto

import "encoding/json"

// SaveReq represents the request body for the /api/save endpoint.
// GameState is kept raw; the usecase validates and stores it as opaque JSON.
type SaveReq struct {
	SaveName  string          `json:"save_name" binding:"required"`
	GameState json.RawMessage `json:"game_state" binding:"required"`
}
