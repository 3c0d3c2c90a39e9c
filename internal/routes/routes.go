package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"internhub_backend/internal/handlers"
	"internhub_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes attaches every API route group and the static frontend.
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers, staticDir string) {
	authRequired := middleware.AuthMiddleware()

	api := router.Group("/api")
	{
		h.AccountHandler.RegisterRoutes(api)
		h.InternshipHandler.RegisterRoutes(api, authRequired)
		h.ApplicationHandler.RegisterRoutes(api, authRequired)
		h.ProfileHandler.RegisterRoutes(api, authRequired)
	}

	registerStatic(router, staticDir)
}

// registerStatic serves the frontend from staticDir. Unknown non-API paths
// fall back to index.html so the page guards run client-side.
func registerStatic(router *gin.Engine, staticDir string) {
	if staticDir == "" {
		return
	}
	if _, err := os.Stat(staticDir); err != nil {
		// Frontend not shipped with this deployment, API only.
		return
	}

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
			return
		}

		reqPath := filepath.Clean(c.Request.URL.Path)
		if reqPath == "/" || reqPath == "." {
			reqPath = "/index.html"
		}

		full := filepath.Join(staticDir, reqPath)
		if info, err := os.Stat(full); err == nil && !info.IsDir() {
			c.File(full)
			return
		}

		c.File(filepath.Join(staticDir, "index.html"))
	})
}
