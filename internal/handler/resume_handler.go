package handler

import (
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"folio/internal/service"
)

// ResumeHandler handles the resume pipeline endpoints. These endpoints keep
// the frontend contract of always answering 200 with either the result or an
// embedded "error" field, so the client never branches on status codes.
type ResumeHandler struct {
	analysisService service.AnalysisService
}

// NewResumeHandler creates a new ResumeHandler.
func NewResumeHandler(analysisService service.AnalysisService) *ResumeHandler {
	return &ResumeHandler{analysisService: analysisService}
}

// ParseResume handles POST /api/parse-resume
func (h *ResumeHandler) ParseResume(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"error": "No file was uploaded."})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		log.Printf("ResumeHandler.ParseResume: opening upload: %v", err)
		c.JSON(http.StatusOK, gin.H{"error": "Could not read the uploaded file."})
		return
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		log.Printf("ResumeHandler.ParseResume: reading upload: %v", err)
		c.JSON(http.StatusOK, gin.H{"error": "Could not read the uploaded file."})
		return
	}

	result := h.analysisService.ParseResume(c.Request.Context(), service.ParseResumeInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	})
	c.JSON(http.StatusOK, result)
}

type analyzeResumeRequest struct {
	ResumeText string   `json:"resumeText"`
	Images     []string `json:"images"`
}

// AnalyzeResume handles POST /api/analyze-resume
func (h *ResumeHandler) AnalyzeResume(c *gin.Context) {
	var req analyzeResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"error": "Invalid request body."})
		return
	}

	result := h.analysisService.AnalyzeResume(c.Request.Context(), req.ResumeText, req.Images)
	c.JSON(http.StatusOK, result)
}
