package analyzer

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ServiceError is an error reported by the document-analysis service, either
// as an unexpected HTTP response or as a failed analysis operation.
type ServiceError struct {
	Provider   string
	StatusCode int
	Code       string
	Message    string
	// InnerCode carries the innererror code when the service sends one.
	InnerCode string
}

// Error returns the service-reported message so it can be relayed as-is.
func (e *ServiceError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Code != "" {
		return fmt.Sprintf("%s error %s (status %d)", e.Provider, e.Code, e.StatusCode)
	}
	return fmt.Sprintf("%s error (status %d)", e.Provider, e.StatusCode)
}

// Detail returns a log-friendly description including codes.
func (e *ServiceError) Detail() string {
	parts := []string{e.Provider}
	if e.StatusCode != 0 {
		parts = append(parts, "status="+strconv.Itoa(e.StatusCode))
	}
	if e.Code != "" {
		parts = append(parts, "code="+e.Code)
	}
	if e.InnerCode != "" {
		parts = append(parts, "inner="+e.InnerCode)
	}
	return strings.Join(parts, " ") + ": " + e.Error()
}

// ParseRetryAfterHeader parses a Retry-After header value given in seconds.
// Returns 0 if the value is empty, negative or not a valid integer.
func ParseRetryAfterHeader(val string) time.Duration {
	if val == "" {
		return 0
	}
	secs, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
