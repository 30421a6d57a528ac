package port

import (
	"context"

	"idscan/internal/domain"
)

// AnalyzeInput carries the document bytes submitted for analysis.
type AnalyzeInput struct {
	FileBytes   []byte
	ContentType string
}

// DocumentAnalyzer abstracts the external document-analysis service.
// Submit starts a long-running analysis; Poll blocks until it reaches a
// terminal state and returns the final result.
type DocumentAnalyzer interface {
	Submit(ctx context.Context, input AnalyzeInput) (*domain.AnalysisJob, error)
	Poll(ctx context.Context, job *domain.AnalysisJob) (*domain.AnalyzeResult, error)
}
