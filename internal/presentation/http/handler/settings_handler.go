package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/pveldman/studioadmin/internal/application/service"
	"github.com/pveldman/studioadmin/internal/presentation/http/dto/response"
)

// SettingsHandler handles business settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get handles reading the business settings
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// Update handles a partial settings update
func (h *SettingsHandler) Update(c *gin.Context) {
	var req struct {
		CompanyName  *string  `json:"company_name"`
		AdminName    *string  `json:"admin_name"`
		BaseLanguage *string  `json:"base_lang"`
		VATRate      *float64 `json:"vat_rate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.Update(c.Request.Context(), &service.UpdateSettingsInput{
		CompanyName:  req.CompanyName,
		AdminName:    req.AdminName,
		BaseLanguage: req.BaseLanguage,
		VATRate:      req.VATRate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated successfully", settings)
}
