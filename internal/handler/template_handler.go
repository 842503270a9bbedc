package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"folio/internal/service"
)

// TemplateHandler handles the frontend template configuration endpoints.
type TemplateHandler struct {
	templateService service.TemplateConfigService
}

// NewTemplateHandler creates a new TemplateHandler.
func NewTemplateHandler(templateService service.TemplateConfigService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

// ListConfigs handles GET /api/v1/templates/config
// @Summary List template configurations
// @Description Return all frontend template configuration blobs
// @Tags templates
// @Produce json
// @Success 200 {object} Response{data=[]domain.TemplateConfig} "Template configurations"
// @Router /templates/config [get]
func (h *TemplateHandler) ListConfigs(c *gin.Context) {
	configs, err := h.templateService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, configs)
}

type setConfigRequest struct {
	Value json.RawMessage `json:"value" binding:"required"`
}

// SetConfig handles PUT /api/v1/admin/templates/config/:key
// @Summary Set a template configuration
// @Description Create or replace the configuration blob for one template key (admin only)
// @Tags templates
// @Accept json
// @Produce json
// @Param key path string true "Template key"
// @Param request body SetTemplateConfigRequest true "Configuration value"
// @Success 200 {object} Response{data=domain.TemplateConfig} "Stored configuration"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Forbidden - admin only"
// @Security BearerAuth
// @Router /admin/templates/config/{key} [put]
func (h *TemplateHandler) SetConfig(c *gin.Context) {
	key := c.Param("key")

	var req setConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	tc, err := h.templateService.Set(c.Request.Context(), key, req.Value)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, tc)
}
