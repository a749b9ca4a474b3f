package handler

import (
	"github.com/vital110/doctor-portal-backend/internal/service"
	"github.com/vital110/doctor-portal-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type SettingsHandler struct {
	settingsService *service.SettingsService
}

func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

type WorkingHoursRequest struct {
	WorkingHours datatypes.JSON `json:"workingHours"`
}

type SettingValueRequest struct {
	Value *string `json:"value" binding:"required"`
}

// GetSettings returns every clinic setting
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.All(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error fetching settings")
		return
	}
	utils.SuccessResponse(c, gin.H{"settings": settings})
}

// UpdateWorkingHours stores the working hours document
func (h *SettingsHandler) UpdateWorkingHours(c *gin.Context) {
	var req WorkingHoursRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.settingsService.SetWorkingHours(c.Request.Context(), req.WorkingHours); err != nil {
		respondError(c, err, "Error updating settings")
		return
	}
	utils.MessageResponse(c, "Settings updated successfully")
}

// UpdateSetting upserts a single setting by key
func (h *SettingsHandler) UpdateSetting(c *gin.Context) {
	var req SettingValueRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.settingsService.Set(c.Request.Context(), c.Param("key"), *req.Value); err != nil {
		respondError(c, err, "Error updating settings")
		return
	}
	utils.MessageResponse(c, "Settings updated successfully")
}
