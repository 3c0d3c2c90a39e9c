// InternHub backend: companies post internships, students apply, both
// manage the pipeline over a JSON API that also serves the static
// frontend.
//
// @title InternHub API
// @version 1.0
// @description Internship marketplace backend.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"os"

	"internhub_backend/internal/app"
	"internhub_backend/internal/logger"
)

func main() {
	if err := app.Run(); err != nil {
		logger.GetLogger().Error("Server terminated", "error", err)
		os.Exit(1)
	}
}
