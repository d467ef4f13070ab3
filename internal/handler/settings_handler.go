package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/mentor-hub-api/internal/models"
	appErrors "github.com/noah-isme/mentor-hub-api/pkg/errors"
	"github.com/noah-isme/mentor-hub-api/pkg/response"
)

type settingsService interface {
	All(ctx context.Context) models.UserSettings
	Get(ctx context.Context, section string) (interface{}, error)
	Save(ctx context.Context, section string, payload []byte) (interface{}, error)
	ToggleTheme(ctx context.Context) models.AppearanceSettings
}

// SettingsHandler serves the settings sections.
type SettingsHandler struct {
	service settingsService
}

// NewSettingsHandler constructs a SettingsHandler.
func NewSettingsHandler(service settingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// All godoc
// @Summary Get every settings section
// @Tags Settings
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /settings [get]
func (h *SettingsHandler) All(c *gin.Context) {
	response.OK(c, h.service.All(c.Request.Context()))
}

// Get godoc
// @Summary Get a settings section
// @Tags Settings
// @Produce json
// @Param section path string true "profile, notifications, security or appearance"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /settings/{section} [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	section, err := h.service.Get(c.Request.Context(), c.Param("section"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, section)
}

// Update godoc
// @Summary Save a settings section
// @Description Validates and stores the section, then posts a confirmation notification.
// @Tags Settings
// @Accept json
// @Produce json
// @Param section path string true "profile, notifications, security or appearance"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /settings/{section} [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unable to read request body"))
		return
	}
	saved, err := h.service.Save(c.Request.Context(), c.Param("section"), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, saved)
}

// ToggleTheme godoc
// @Summary Toggle between light and dark themes
// @Tags Settings
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /settings/appearance/toggle [post]
func (h *SettingsHandler) ToggleTheme(c *gin.Context) {
	response.OK(c, h.service.ToggleTheme(c.Request.Context()))
}
