// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// RegisterReq represents the request body for the /api/register endpoint.
// The fields are pointers so that "required" rejects only absent keys; a key
// that is present but empty flows through to the usecase, where the length
// rules (username >= 3, password >= 6) map each violation to its own message.
type RegisterReq struct {
	Username *string `json:"username" binding:"required"`
	Password *string `json:"password" binding:"required"`
}

// LoginReq represents the request body for the /api/login endpoint.
// Pointers for the same reason as RegisterReq: empty credentials reach the
// usecase and fail there with the generic credentials error.
type LoginReq struct {
	Username *string `json:"username" binding:"required"`
	Password *string `json:"password" binding:"required"`
}
