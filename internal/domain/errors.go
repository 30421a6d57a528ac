package domain

import "errors"

var (
	ErrNoDocumentExtracted = errors.New("no document extracted")
	ErrAnalysisTimeout     = errors.New("document analysis did not complete in time")
	ErrUploadFailed        = errors.New("storing upload failed")
	ErrEmptyOperation      = errors.New("analysis operation location is empty")
)
