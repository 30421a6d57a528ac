package domain

import (
	"encoding/json"
	"time"
)

// Upload is a file received on a request and spooled to local disk.
type Upload struct {
	OriginalName string `json:"original_name"`
	Size         int64  `json:"size"`
	Path         string `json:"-"`
	ContentType  string `json:"content_type"`
}

// AnalysisJob is the handle returned when the analyzer accepts a document.
type AnalysisJob struct {
	OperationLocation string
	RetryAfter        time.Duration
}

// AnalyzeResult is the final payload of a succeeded analysis operation.
type AnalyzeResult struct {
	APIVersion string              `json:"apiVersion"`
	ModelID    string              `json:"modelId"`
	Content    string              `json:"content,omitempty"`
	Documents  []ExtractedDocument `json:"documents"`
}

// ExtractedDocument is one recognized document within an analysis result.
type ExtractedDocument struct {
	DocType    string                `json:"docType"`
	Confidence float64               `json:"confidence"`
	Fields     map[string]FieldValue `json:"fields"`
}

// FieldValue is a recognized field. At most one of the value slots is
// expected to be populated; a nil slot means the vendor did not send it.
type FieldValue struct {
	Type               string          `json:"type,omitempty"`
	Content            string          `json:"content,omitempty"`
	Confidence         float64         `json:"confidence,omitempty"`
	ValueString        *string         `json:"valueString,omitempty"`
	ValueDate          *string         `json:"valueDate,omitempty"`
	ValueNumber        *float64        `json:"valueNumber,omitempty"`
	ValueCountryRegion *string         `json:"valueCountryRegion,omitempty"`
	Value              json.RawMessage `json:"value,omitempty"`
}

// NormalizedResult is the flattened view of an extracted identity document.
// Nil values are omitted from the JSON encoding.
type NormalizedResult struct {
	DocType          string         `json:"docType"`
	FullName         any            `json:"fullName,omitempty"`
	FirstName        any            `json:"firstName,omitempty"`
	LastName         any            `json:"lastName,omitempty"`
	DocumentNumber   any            `json:"documentNumber,omitempty"`
	DateOfBirth      any            `json:"dateOfBirth,omitempty"`
	Nationality      any            `json:"nationality,omitempty"`
	DateOfExpiration any            `json:"dateOfExpiration,omitempty"`
	AllFields        map[string]any `json:"allFields"`
}
