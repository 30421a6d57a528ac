package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"idscan/internal/domain"
	"idscan/internal/port"
)

// AnalyzeIDInput is the DTO for identity document analysis requests.
type AnalyzeIDInput struct {
	OriginalName string
	ContentType  string
	Size         int64
	File         io.Reader
}

// AnalysisConfig holds settings for the analysis service.
type AnalysisConfig struct {
	// PollTimeout bounds submit and poll. Zero means no deadline.
	PollTimeout time.Duration
	// CleanupOnError removes the spooled upload on every outcome; when false
	// it is only removed after a successful extraction.
	CleanupOnError bool
}

// AnalysisService defines the identity document analysis contract.
type AnalysisService interface {
	AnalyzeID(ctx context.Context, input AnalyzeIDInput) (*domain.NormalizedResult, error)
}

type analysisService struct {
	store    port.UploadStore
	analyzer port.DocumentAnalyzer
	cfg      AnalysisConfig
}

// NewAnalysisService creates a new AnalysisService implementation.
func NewAnalysisService(store port.UploadStore, analyzer port.DocumentAnalyzer, cfg AnalysisConfig) AnalysisService {
	return &analysisService{
		store:    store,
		analyzer: analyzer,
		cfg:      cfg,
	}
}

func (s *analysisService) AnalyzeID(ctx context.Context, input AnalyzeIDInput) (result *domain.NormalizedResult, err error) {
	// A client disconnect must not abort the in-flight analysis.
	ctx = context.WithoutCancel(ctx)
	if s.cfg.PollTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.PollTimeout)
		defer cancel()
	}

	log.Printf("analysisService.AnalyzeID: received file %s (%d bytes)", input.OriginalName, input.Size)

	upload, err := s.store.Save(ctx, port.SaveInput{
		OriginalName: input.OriginalName,
		ContentType:  input.ContentType,
		Body:         input.File,
	})
	if err != nil {
		return nil, fmt.Errorf("saving upload: %w", err)
	}

	defer func() {
		if err != nil && !s.cfg.CleanupOnError {
			log.Printf("analysisService.AnalyzeID: leaving upload %s on disk after error", upload.Path)
			return
		}
		s.release(upload)
	}()

	data, err := s.store.Read(ctx, upload)
	if err != nil {
		return nil, err
	}

	log.Printf("analysisService.AnalyzeID: submitting %s for analysis", upload.OriginalName)
	job, err := s.analyzer.Submit(ctx, port.AnalyzeInput{FileBytes: data, ContentType: upload.ContentType})
	if err != nil {
		return nil, s.wrapDeadline(err)
	}

	log.Printf("analysisService.AnalyzeID: waiting for operation %s", job.OperationLocation)
	analyzeResult, err := s.analyzer.Poll(ctx, job)
	if err != nil {
		return nil, s.wrapDeadline(err)
	}

	result, err = NormalizeIDDocument(analyzeResult)
	if err != nil {
		log.Printf("analysisService.AnalyzeID: no document extracted from %s", upload.OriginalName)
		return nil, err
	}

	log.Printf("analysisService.AnalyzeID: extracted %s with %d fields", result.DocType, len(result.AllFields))
	return result, nil
}

// release removes the spooled upload. Failures are logged, never returned.
func (s *analysisService) release(upload *domain.Upload) {
	if err := s.store.Remove(context.Background(), upload); err != nil {
		log.Printf("analysisService.AnalyzeID: failed to remove upload %s: %v", upload.Path, err)
	}
}

func (s *analysisService) wrapDeadline(err error) error {
	if s.cfg.PollTimeout > 0 && errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w after %s", domain.ErrAnalysisTimeout, s.cfg.PollTimeout)
	}
	return err
}
