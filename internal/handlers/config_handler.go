package handlers

import (
	"net/http"

	"hiregate/internal/config"
	"hiregate/internal/engine"
)

// ConfigHandler handles configuration requests
type ConfigHandler struct {
	config *config.Config
}

// NewConfigHandler creates a new config handler
func NewConfigHandler(cfg *config.Config) *ConfigHandler {
	return &ConfigHandler{
		config: cfg,
	}
}

// GetAppConfig returns public application configuration for the frontend
// @Summary Get application configuration
// @Description Get public configuration: registration availability and selectable organizational roles
// @Tags Configuration
// @Produce json
// @Success 200 {object} map[string]interface{} "Application configuration"
// @Router /config [get]
func (h *ConfigHandler) GetAppConfig(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"name":                 h.config.App.Name,
		"version":              h.config.App.Version,
		"registration_enabled": h.config.App.EnableRegistration,
		"roles":                engine.Roles(),
	})
}
