package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"folio/internal/service"
)

// NoticeHandler handles the public and admin notice endpoints.
type NoticeHandler struct {
	noticeService service.NoticeService
}

// NewNoticeHandler creates a new NoticeHandler.
func NewNoticeHandler(noticeService service.NoticeService) *NoticeHandler {
	return &NoticeHandler{noticeService: noticeService}
}

// ListActive handles GET /api/v1/notices/active
// @Summary List active notices
// @Description Return the currently active announcements, newest first
// @Tags notices
// @Produce json
// @Success 200 {object} Response{data=[]domain.Notice} "Active notices"
// @Router /notices/active [get]
func (h *NoticeHandler) ListActive(c *gin.Context) {
	notices, err := h.noticeService.ListActive(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, notices)
}

// List handles GET /api/v1/admin/notices
// @Summary List notices
// @Description List all notices with pagination (admin only)
// @Tags notices
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Notice,meta=PagMeta} "Notices"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Forbidden - admin only"
// @Security BearerAuth
// @Router /admin/notices [get]
func (h *NoticeHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	notices, total, err := h.noticeService.List(c.Request.Context(), page, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, notices, PagMeta{Total: total, Page: page, Limit: limit})
}

// Create handles POST /api/v1/admin/notices
// @Summary Create a notice
// @Description Create an announcement (admin only)
// @Tags notices
// @Accept json
// @Produce json
// @Param request body NoticeRequest true "Notice details"
// @Success 201 {object} Response{data=domain.Notice} "Notice created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Forbidden - admin only"
// @Security BearerAuth
// @Router /admin/notices [post]
func (h *NoticeHandler) Create(c *gin.Context) {
	var input service.NoticeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	n, err := h.noticeService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, n)
}

// Update handles PUT /api/v1/admin/notices/:id
// @Summary Update a notice
// @Description Update an announcement (admin only)
// @Tags notices
// @Accept json
// @Produce json
// @Param id path string true "Notice ID (UUID)"
// @Param request body NoticeRequest true "Notice details"
// @Success 200 {object} Response{data=domain.Notice} "Updated notice"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 404 {object} ErrorResponseBody "Notice not found"
// @Security BearerAuth
// @Router /admin/notices/{id} [put]
func (h *NoticeHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid notice id")
		return
	}

	var input service.NoticeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	n, err := h.noticeService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, n)
}

// Delete handles DELETE /api/v1/admin/notices/:id
// @Summary Delete a notice
// @Description Delete an announcement (admin only)
// @Tags notices
// @Produce json
// @Param id path string true "Notice ID (UUID)"
// @Success 200 {object} Response{data=DeletedResponse} "Notice deleted"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Notice not found"
// @Security BearerAuth
// @Router /admin/notices/{id} [delete]
func (h *NoticeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid notice id")
		return
	}

	if err := h.noticeService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
