package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"idscan/internal/analyzer"
	"idscan/internal/domain"
	"idscan/internal/middleware"
)

// AnalyzeIDResponse is the success body of POST /analyze-id.
type AnalyzeIDResponse struct {
	Success bool `json:"success"`
	domain.NormalizedResult
}

// ClientErrorResponse is the body of a rejected request.
type ClientErrorResponse struct {
	Error string `json:"error"`
}

// FailureResponse is the body of a request that failed while processing.
type FailureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

const genericFailureMessage = "an internal error occurred"

// RespondClientError sends a 4xx response with an error message.
func RespondClientError(c *gin.Context, status int, msg string) {
	c.JSON(status, ClientErrorResponse{Error: msg})
}

// RespondFailure sends an error response with success=false.
func RespondFailure(c *gin.Context, status int, msg string) {
	c.JSON(status, FailureResponse{Success: false, Error: msg})
}

// MapAnalyzeError translates an analysis error to an HTTP status code. The
// returned message is the error text itself.
func MapAnalyzeError(err error) (status int, msg string) {
	var svcErr *analyzer.ServiceError
	switch {
	case errors.Is(err, domain.ErrAnalysisTimeout):
		return http.StatusGatewayTimeout, err.Error()
	case errors.Is(err, domain.ErrNoDocumentExtracted):
		return http.StatusInternalServerError, domain.ErrNoDocumentExtracted.Error()
	case errors.As(err, &svcErr):
		return http.StatusInternalServerError, svcErr.Error()
	default:
		return http.StatusInternalServerError, err.Error()
	}
}

// HandleError logs err and sends the mapped failure response. When expose is
// false, server errors are replaced by a generic message.
func HandleError(c *gin.Context, err error, expose bool) {
	status, msg := MapAnalyzeError(err)
	requestID, _ := c.Get(middleware.ContextKeyRequestID)

	var svcErr *analyzer.ServiceError
	if errors.As(err, &svcErr) {
		log.Printf("[%s] analysis error: %s", requestID, svcErr.Detail())
	} else {
		log.Printf("[%s] analysis error: %v", requestID, err)
	}

	if !expose && status >= 500 {
		msg = genericFailureMessage
	}
	RespondFailure(c, status, msg)
}
