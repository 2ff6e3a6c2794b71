package middleware

import (
	"log/slog"
	"slices"

	"seller-catalog/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware always exposes Location so browser clients can follow
// the 201 responses of the create endpoints.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if !slices.Contains(corsCfg.ExposeHeaders, "Location") {
		corsCfg.ExposeHeaders = append(slices.Clone(corsCfg.ExposeHeaders), "Location")
	}
	if slices.Contains(cfg.AllowOrigins, "*") {
		// Credentials cannot be combined with a wildcard origin.
		corsCfg.AllowOrigins = nil
		corsCfg.AllowAllOrigins = true
		if corsCfg.AllowCredentials {
			slog.Warn("CORS wildcard origin disables credentials")
			corsCfg.AllowCredentials = false
		}
	}
	slog.Info("CORS middleware initialized", "AllowOrigins", cfg.AllowOrigins, "AllowAllOrigins", corsCfg.AllowAllOrigins)
	return cors.New(corsCfg)
}
