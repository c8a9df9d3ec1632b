package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ValidationStatus is the outcome of validating an uploaded CSV.
type ValidationStatus string

const (
	ValidationPass ValidationStatus = "pass"
	ValidationWarn ValidationStatus = "warn"
	ValidationFail ValidationStatus = "fail"
)

// IssueSeverity distinguishes blocking errors from warnings.
type IssueSeverity string

const (
	SeverityError   IssueSeverity = "error"
	SeverityWarning IssueSeverity = "warning"
)

// DataUpload records an uploaded ad-performance file. Uploads are never
// updated after creation.
type DataUpload struct {
	ID          uuid.UUID        `json:"id"`
	WorkspaceID uuid.UUID        `json:"workspace_id"`
	ClientID    *uuid.UUID       `json:"client_id,omitempty"`
	UploadedBy  uuid.UUID        `json:"uploaded_by"`
	FileName    string           `json:"file_name"`
	SizeBytes   int64            `json:"size_bytes"`
	RowCount    int              `json:"row_count"`
	Status      ValidationStatus `json:"status"`
	Preview     json.RawMessage  `json:"preview"`
	Errors      json.RawMessage  `json:"errors"`
	ObjectKey   string           `json:"object_key,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`

	Logs []IngestionLogEntry `json:"logs,omitempty"`
}

// IngestionLogEntry captures a row level issue found while validating an
// upload. Row 0 refers to the header.
type IngestionLogEntry struct {
	ID        uuid.UUID     `json:"id"`
	UploadID  uuid.UUID     `json:"upload_id"`
	RowNumber int           `json:"row_number"`
	Column    string        `json:"column,omitempty"`
	Severity  IssueSeverity `json:"severity"`
	Message   string        `json:"message"`
	CreatedAt time.Time     `json:"created_at"`
}
