package azure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
	"unicode/utf8"

	"idscan/internal/analyzer"
	"idscan/internal/config"
	"idscan/internal/domain"
	"idscan/internal/port"
)

// ModelID is the prebuilt identity document model every analysis runs against.
const ModelID = "prebuilt-idDocument"

const (
	providerName       = "azure document intelligence"
	subscriptionHeader = "Ocp-Apim-Subscription-Key"
	defaultAPIVersion  = "2024-11-30"
	defaultPoll        = time.Second
	maxErrorBodyLen    = 500
)

// Client implements port.DocumentAnalyzer against the Azure Document
// Intelligence REST API.
type Client struct {
	endpoint     string
	key          string
	apiVersion   string
	pollInterval time.Duration
	client       *http.Client
}

var _ port.DocumentAnalyzer = (*Client)(nil)

// NewClient creates an Azure Document Intelligence client. The HTTP client
// has no overall timeout; bounding a request is left to the caller's context.
func NewClient(cfg *config.AnalyzerConfig) *Client {
	return NewClientWithHTTPClient(cfg, &http.Client{})
}

// NewClientWithHTTPClient creates a client using the given HTTP client (for testing).
func NewClientWithHTTPClient(cfg *config.AnalyzerConfig, hc *http.Client) *Client {
	apiVersion := cfg.APIVersion
	if apiVersion == "" {
		apiVersion = defaultAPIVersion
	}
	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = defaultPoll
	}
	return &Client{
		endpoint:     cfg.Endpoint,
		key:          cfg.Key,
		apiVersion:   apiVersion,
		pollInterval: pollInterval,
		client:       hc,
	}
}

// AnalyzeURL returns the submission URL for the configured model.
func (c *Client) AnalyzeURL() string {
	return fmt.Sprintf("%s/documentintelligence/documentModels/%s:analyze?api-version=%s",
		c.endpoint, url.PathEscape(ModelID), url.QueryEscape(c.apiVersion))
}

func (c *Client) Submit(ctx context.Context, input port.AnalyzeInput) (*domain.AnalysisJob, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.AnalyzeURL(), bytes.NewReader(input.FileBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set(subscriptionHeader, c.key)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling analyze API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusAccepted {
		return nil, newServiceError(resp.StatusCode, respBody)
	}

	location := resp.Header.Get("Operation-Location")
	if location == "" {
		return nil, domain.ErrEmptyOperation
	}

	return &domain.AnalysisJob{
		OperationLocation: location,
		RetryAfter:        analyzer.ParseRetryAfterHeader(resp.Header.Get("Retry-After")),
	}, nil
}

func (c *Client) Poll(ctx context.Context, job *domain.AnalysisJob) (*domain.AnalyzeResult, error) {
	if job == nil || job.OperationLocation == "" {
		return nil, domain.ErrEmptyOperation
	}

	delay := job.RetryAfter
	for {
		if err := sleepContext(ctx, delay); err != nil {
			return nil, err
		}

		op, retryAfter, err := c.getOperation(ctx, job.OperationLocation)
		if err != nil {
			return nil, err
		}

		switch {
		case op.Status == domain.JobStatusNotStarted, op.Status == domain.JobStatusRunning:
		case !op.Status.IsTerminal():
			return nil, &analyzer.ServiceError{
				Provider: providerName,
				Message:  fmt.Sprintf("unexpected analysis status %q", op.Status),
			}
		case op.Status != domain.JobStatusSucceeded:
			return nil, op.serviceError()
		case op.AnalyzeResult == nil:
			return nil, fmt.Errorf("operation succeeded without analyzeResult")
		default:
			return op.AnalyzeResult, nil
		}

		delay = retryAfter
		if delay <= 0 {
			delay = c.pollInterval
		}
	}
}

// operationResponse models the body of GET Operation-Location.
type operationResponse struct {
	Status        domain.JobStatus      `json:"status"`
	Error         *errorBody            `json:"error,omitempty"`
	AnalyzeResult *domain.AnalyzeResult `json:"analyzeResult,omitempty"`
}

func (o *operationResponse) serviceError() *analyzer.ServiceError {
	se := &analyzer.ServiceError{Provider: providerName}
	if o.Error != nil {
		o.Error.fill(se)
	}
	if se.Message == "" {
		se.Message = fmt.Sprintf("document analysis %s", o.Status)
	}
	return se
}

func (c *Client) getOperation(ctx context.Context, location string) (*operationResponse, time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("creating poll request: %w", err)
	}
	req.Header.Set(subscriptionHeader, c.key)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("polling analyze operation: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("reading poll response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, 0, newServiceError(resp.StatusCode, respBody)
	}

	var op operationResponse
	if err := json.Unmarshal(respBody, &op); err != nil {
		return nil, 0, fmt.Errorf("unmarshaling poll response: %w", err)
	}
	return &op, analyzer.ParseRetryAfterHeader(resp.Header.Get("Retry-After")), nil
}

// errorBody models the service error object.
type errorBody struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	InnerError *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"innererror,omitempty"`
}

func (b *errorBody) fill(se *analyzer.ServiceError) {
	se.Code = b.Code
	se.Message = b.Message
	if b.InnerError != nil {
		se.InnerCode = b.InnerError.Code
	}
}

func newServiceError(status int, body []byte) *analyzer.ServiceError {
	se := &analyzer.ServiceError{Provider: providerName, StatusCode: status}
	var envelope struct {
		Error *errorBody `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil {
		envelope.Error.fill(se)
	}
	if se.Message == "" && len(body) > 0 {
		se.Message = truncate(string(body), maxErrorBodyLen)
	}
	return se
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// truncate cuts s to at most maxLen bytes without splitting a rune.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
