package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"idscan/internal/middleware"
	"idscan/internal/service"
)

const missingFileMessage = "you must send an image in the 'file' field"

// AnalyzeHandler handles identity document analysis.
type AnalyzeHandler struct {
	analysisService service.AnalysisService
	exposeErrors    bool
}

// NewAnalyzeHandler creates a new AnalyzeHandler.
func NewAnalyzeHandler(analysisService service.AnalysisService, exposeErrors bool) *AnalyzeHandler {
	return &AnalyzeHandler{analysisService: analysisService, exposeErrors: exposeErrors}
}

// AnalyzeID handles POST /analyze-id
// @Summary Analyze an identity document
// @Description Upload an identity document image or PDF and extract its fields with the prebuilt ID model
// @Tags analysis
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Identity document image or PDF"
// @Success 200 {object} AnalyzeIDResponse "Extracted fields"
// @Failure 400 {object} ClientErrorResponse "Missing file"
// @Failure 500 {object} FailureResponse "Analysis failed"
// @Failure 504 {object} FailureResponse "Analysis timed out"
// @Router /analyze-id [post]
func (h *AnalyzeHandler) AnalyzeID(c *gin.Context) {
	requestID, _ := c.Get(middleware.ContextKeyRequestID)
	log.Printf("[%s] analyzeHandler.AnalyzeID: request received", requestID)

	header, err := c.FormFile("file")
	if err != nil {
		log.Printf("[%s] analyzeHandler.AnalyzeID: no file received", requestID)
		RespondClientError(c, http.StatusBadRequest, missingFileMessage)
		return
	}

	file, err := header.Open()
	if err != nil {
		HandleError(c, err, h.exposeErrors)
		return
	}
	defer func() { _ = file.Close() }()

	result, err := h.analysisService.AnalyzeID(c.Request.Context(), service.AnalyzeIDInput{
		OriginalName: header.Filename,
		ContentType:  header.Header.Get("Content-Type"),
		Size:         header.Size,
		File:         file,
	})
	if err != nil {
		HandleError(c, err, h.exposeErrors)
		return
	}

	c.JSON(http.StatusOK, AnalyzeIDResponse{Success: true, NormalizedResult: *result})
}
