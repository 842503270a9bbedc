package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"folio/internal/service"
	"folio/internal/statsexport"
)

// AdminHandler handles the admin user and statistics endpoints.
type AdminHandler struct {
	userService  service.UserService
	statsService service.StatsService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(userService service.UserService, statsService service.StatsService) *AdminHandler {
	return &AdminHandler{userService: userService, statsService: statsService}
}

// ListUsers handles GET /api/v1/admin/users
// @Summary List users
// @Description List registered users with pagination and optional search (admin only)
// @Tags admin
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size (max 100)" default(20)
// @Param search query string false "Match against email or full name"
// @Success 200 {object} Response{data=[]domain.User,meta=PagMeta} "Users"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Forbidden - admin only"
// @Security BearerAuth
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	search := c.Query("search")

	users, total, err := h.userService.List(c.Request.Context(), search, page, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, users, PagMeta{Total: total, Page: page, Limit: limit})
}

// DeleteUser handles DELETE /api/v1/admin/users/:id
// @Summary Delete a user
// @Description Delete a user account and its portfolio (admin only)
// @Tags admin
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} Response{data=DeletedResponse} "User deleted"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "User not found"
// @Security BearerAuth
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid user id")
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}

// Stats handles GET /api/v1/admin/stats
// @Summary Service overview statistics
// @Description Return total user and portfolio counts (admin only)
// @Tags admin
// @Produce json
// @Success 200 {object} Response{data=OverviewResponse} "Overview counts"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Forbidden - admin only"
// @Security BearerAuth
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	overview, err := h.statsService.Overview(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, overview)
}

// AIStats handles GET /api/v1/admin/stats/ai?days=30
// @Summary AI usage statistics
// @Description Return daily model invocation counts per prompt type (admin only)
// @Tags admin
// @Produce json
// @Param days query int false "Window size in days" default(30)
// @Success 200 {object} Response{data=[]domain.UsageStat} "Daily usage rows"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Forbidden - admin only"
// @Security BearerAuth
// @Router /admin/stats/ai [get]
func (h *AdminHandler) AIStats(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	rows, err := h.statsService.DailyUsage(c.Request.Context(), days)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rows)
}

// ExportStats handles GET /api/v1/admin/stats/export?days=30
// @Summary Export AI usage statistics
// @Description Download the usage statistics for the window as an XLSX workbook (admin only)
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param days query int false "Window size in days" default(30)
// @Success 200 {file} file "XLSX workbook"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Forbidden - admin only"
// @Security BearerAuth
// @Router /admin/stats/export [get]
func (h *AdminHandler) ExportStats(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	data, err := h.statsService.ExportUsageXLSX(c.Request.Context(), days)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+statsexport.BuildFilename())
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
