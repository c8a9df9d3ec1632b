package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"adops/internal/adapter/objectstore"
	"adops/internal/config/configs"
	"adops/internal/core/domain"
	"adops/internal/core/ingest"
	"adops/internal/core/port"
	"adops/internal/core/rbac"
)

// UploadUseCase validates CSV exports and records them as uploads.
type UploadUseCase struct {
	repo     port.UploadRepository
	files    port.FileStore
	audit    port.AuditRecorder
	opts     ingest.Options
	maxBytes int64
	logger   *zap.Logger
	now      func() time.Time
}

// NewUploadUseCase builds the usecase. files may be nil, in which case raw
// files are not archived.
func NewUploadUseCase(repo port.UploadRepository, files port.FileStore, audit port.AuditRecorder, cfg configs.Ingest, logger *zap.Logger) *UploadUseCase {
	return &UploadUseCase{
		repo:  repo,
		files: files,
		audit: audit,
		opts: ingest.Options{
			MaxRows:     cfg.MaxRows,
			PreviewRows: cfg.PreviewRows,
			MaxIssues:   cfg.MaxIssues,
		},
		maxBytes: cfg.MaxBytes,
		logger:   logger,
		now:      time.Now,
	}
}

// Validate runs the CSV checks only.
func (u *UploadUseCase) Validate(_ context.Context, actor domain.Actor, body io.Reader) (ingest.Report, error) {
	if err := rbac.Require(actor, rbac.PermUploadsWrite); err != nil {
		return ingest.Report{}, err
	}
	data, err := u.read(body)
	if err != nil {
		return ingest.Report{}, err
	}
	return ingest.ValidateCSV(bytes.NewReader(data), u.opts)
}

// Create validates the file, archives it when a file store is configured
// and stores the upload with one ingestion log entry per issue. Files that
// fail validation are recorded too so the dashboard can show why.
func (u *UploadUseCase) Create(ctx context.Context, actor domain.Actor, file port.UploadFile) (*domain.DataUpload, error) {
	if err := rbac.Require(actor, rbac.PermUploadsWrite); err != nil {
		return nil, err
	}
	if !actor.HasWorkspace() {
		return nil, domain.ErrForbidden.WithDetail("reason", "no workspace")
	}
	name := strings.TrimSpace(file.Name)
	if name == "" {
		return nil, domain.Validation("file name is required")
	}
	if err := checkClient(ctx, u.repo, actor, file.ClientID); err != nil {
		return nil, err
	}

	data, err := u.read(file.Body)
	if err != nil {
		return nil, err
	}
	report, err := ingest.ValidateCSV(bytes.NewReader(data), u.opts)
	if err != nil {
		return nil, err
	}

	now := u.now().UTC()
	upload := &domain.DataUpload{
		ID:          uuid.New(),
		WorkspaceID: actor.WorkspaceID,
		ClientID:    file.ClientID,
		UploadedBy:  actor.UserID,
		FileName:    name,
		SizeBytes:   int64(len(data)),
		RowCount:    report.RowCount,
		Status:      report.Status,
		CreatedAt:   now,
	}
	if upload.Preview, err = json.Marshal(report.Preview); err != nil {
		return nil, fmt.Errorf("marshal preview: %w", err)
	}
	if upload.Errors, err = json.Marshal(report.Issues); err != nil {
		return nil, fmt.Errorf("marshal issues: %w", err)
	}

	if u.files != nil {
		key := objectstore.UploadKey(actor.WorkspaceID, upload.ID, name)
		upload.ObjectKey, err = u.files.Put(ctx, key, bytes.NewReader(data), int64(len(data)), file.ContentType)
		if err != nil {
			return nil, fmt.Errorf("archive upload: %w", err)
		}
	}

	logs := make([]domain.IngestionLogEntry, 0, len(report.Issues))
	for _, issue := range report.Issues {
		logs = append(logs, domain.IngestionLogEntry{
			ID:        uuid.New(),
			UploadID:  upload.ID,
			RowNumber: issue.Row,
			Column:    issue.Column,
			Severity:  issue.Severity,
			Message:   issue.Message,
			CreatedAt: now,
		})
	}
	if err := u.repo.CreateUpload(ctx, upload, logs); err != nil {
		return nil, err
	}
	upload.Logs = logs

	record(ctx, u.audit, u.logger, actor, domain.AuditInput{
		Action:     domain.ActionUploadCreated,
		EntityType: "data_upload",
		EntityID:   upload.ID.String(),
		Metadata: map[string]any{
			"file_name": upload.FileName,
			"status":    upload.Status,
			"row_count": upload.RowCount,
		},
	})
	return upload, nil
}

// List returns the newest uploads visible to actor.
func (u *UploadUseCase) List(ctx context.Context, actor domain.Actor, limit int) ([]domain.DataUpload, error) {
	if err := rbac.Require(actor, rbac.PermUploadsRead); err != nil {
		return nil, err
	}
	filter, ok := scopeFilter(actor, domain.ListFilter{Limit: limit})
	if !ok {
		return []domain.DataUpload{}, nil
	}
	return u.repo.ListUploads(ctx, filter)
}

// Get returns an upload with its ingestion log.
func (u *UploadUseCase) Get(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.DataUpload, error) {
	if err := rbac.Require(actor, rbac.PermUploadsRead); err != nil {
		return nil, err
	}
	if !actor.HasWorkspace() {
		return nil, domain.ErrUploadNotFound
	}
	upload, err := u.repo.GetUpload(ctx, actor.WorkspaceID, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanSeeClient(upload.ClientID) {
		return nil, domain.ErrUploadNotFound
	}
	if upload.Logs, err = u.repo.ListIngestionLogs(ctx, upload.ID); err != nil {
		return nil, err
	}
	return upload, nil
}

// read loads the whole body, rejecting files over the size limit.
func (u *UploadUseCase) read(body io.Reader) ([]byte, error) {
	if body == nil {
		return nil, domain.Validation("file is required")
	}
	limit := u.maxBytes
	if limit <= 0 {
		limit = 10 << 20
	}
	data, err := io.ReadAll(io.LimitReader(body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, domain.Validation("file exceeds the %d byte limit", limit)
	}
	return data, nil
}
