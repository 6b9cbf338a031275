package config

import (
	"fmt"
	"os"

	"github.com/regulaai/regula/pkg/formatting"
	"github.com/regulaai/regula/pkg/middleware"
	"github.com/regulaai/regula/pkg/openapi"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "REGULA_CORS_ENABLED",
	Origins:          "REGULA_CORS_ORIGINS",
	AllowedMethods:   "REGULA_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "REGULA_CORS_ALLOWED_HEADERS",
	AllowCredentials: "REGULA_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "REGULA_CORS_MAX_AGE",
}

var openapiEnv = &openapi.ConfigEnv{
	Title:       "REGULA_OPENAPI_TITLE",
	Description: "REGULA_OPENAPI_DESCRIPTION",
}

// APIConfig holds API routing, upload limit, CORS, and OpenAPI settings.
type APIConfig struct {
	BasePath      string                `toml:"base_path"`
	MaxUploadSize string                `toml:"max_upload_size"`
	CORS          middleware.CORSConfig `toml:"cors"`
	OpenAPI       openapi.Config        `toml:"openapi"`
}

func (c *APIConfig) MaxUploadSizeBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxUploadSize)
	if err != nil {
		return 20 * 1024 * 1024 // 20MB fallback
	}
	return size
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested CORS and OpenAPI configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.OpenAPI.Finalize(openapiEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxUploadSize != "" {
		c.MaxUploadSize = overlay.MaxUploadSize
	}

	c.CORS.Merge(&overlay.CORS)
	c.OpenAPI.Merge(&overlay.OpenAPI)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxUploadSize == "" {
		c.MaxUploadSize = "20MB"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("REGULA_API_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv("REGULA_API_MAX_UPLOAD_SIZE"); v != "" {
		c.MaxUploadSize = v
	}
}
