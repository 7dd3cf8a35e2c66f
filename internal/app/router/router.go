// Package router assembles the HTTP route table.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"game_backend/internal/api"
	authhandler "game_backend/internal/feature/auth/transport/handler"
	"game_backend/internal/feature/auth/transport/middleware"
	saveshandler "game_backend/internal/feature/saves/transport/handler"
	platformhandler "game_backend/internal/platform/http/handler"
)

// NewRouter builds the Gin engine with all application routes.
// Routes under the authenticated group require a valid session cookie.
func NewRouter(authH *authhandler.AuthHandler, savesH *saveshandler.SavesHandler,
	resolver middleware.SessionResolver) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		// GORM wraps each write in its own transaction, which rolls back on
		// error; here we only shape the response.
		c.AbortWithStatusJSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
	}))
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Not found"})
	})

	// No authentication required
	r.GET("/healthz", platformhandler.Health)
	// Identity state of the caller (anonymous callers get loggedIn=false)
	r.GET("/api/user", authH.CurrentUser)
	// New user registration (auto-login)
	r.POST("/api/register", authH.Register)
	// Login (session cookie issued)
	r.POST("/api/login", authH.Login)

	// Session-protected routes
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired(resolver))
	{
		auth.POST("/logout", authH.Logout)
		auth.POST("/save", savesH.SaveGame)
		auth.GET("/load/:save_name", savesH.LoadGame)
		auth.GET("/saves", savesH.ListSaves)
	}

	return r
}
