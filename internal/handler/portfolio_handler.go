package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"folio/internal/middleware"
	"folio/internal/service"
)

// PortfolioHandler handles portfolio generation and persistence.
type PortfolioHandler struct {
	portfolioService service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolioService service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

type submitRequest struct {
	Answers map[string]any `json:"answers"`
}

// Submit handles POST /api/submit. Part of the always-200 surface: the status
// field inside the body carries success or failure.
func (h *PortfolioHandler) Submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, service.GenerateResult{
			Status:  "error",
			Message: "Invalid request body.",
		})
		return
	}

	result := h.portfolioService.Generate(c.Request.Context(), req.Answers)
	c.JSON(http.StatusOK, result)
}

type savePortfolioRequest struct {
	Data json.RawMessage `json:"data" binding:"required"`
}

// Save handles PUT /api/v1/portfolio
// @Summary Save the portfolio
// @Description Store the caller's portfolio document as an opaque JSON blob
// @Tags portfolio
// @Accept json
// @Produce json
// @Param request body SavePortfolioRequest true "Portfolio document"
// @Success 200 {object} Response{data=SavedResponse} "Portfolio saved"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /portfolio [put]
func (h *PortfolioHandler) Save(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	var req savePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.portfolioService.Save(c.Request.Context(), userID, req.Data); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"saved": true})
}

// Get handles GET /api/v1/portfolio
// @Summary Get the portfolio
// @Description Return the caller's saved portfolio document
// @Tags portfolio
// @Produce json
// @Success 200 {object} Response{data=domain.Portfolio} "Saved portfolio"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "No portfolio saved yet"
// @Security BearerAuth
// @Router /portfolio [get]
func (h *PortfolioHandler) Get(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	p, err := h.portfolioService.Get(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, p)
}
