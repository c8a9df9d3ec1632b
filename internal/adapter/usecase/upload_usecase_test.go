package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"adops/internal/config/configs"
	"adops/internal/core/domain"
	"adops/internal/core/port"
	"adops/internal/core/port/mocks"
)

const goodCSV = "date,platform,campaign,spend,impressions,clicks\n" +
	"2025-03-01,meta,Spring,12.50,1000,40\n" +
	"2025-03-02,google,Spring,8,500,12\n"

const badCSV = "date,platform,campaign,spend,impressions,clicks\n" +
	"03/01/2025,myspace,Spring,-1,1000,40\n"

var ingestCfg = configs.Ingest{MaxBytes: 1 << 20, MaxRows: 100, PreviewRows: 1, MaxIssues: 50}

func newUploads(t *testing.T, files port.FileStore) (*UploadUseCase, *mocks.MockUploadRepository, *mocks.MockAuditRepository) {
	repo := mocks.NewMockUploadRepository(t)
	audit := mocks.NewMockAuditRepository(t)
	svc := NewUploadUseCase(repo, files, newAudit(audit), ingestCfg, zap.NewNop())
	svc.now = func() time.Time { return fixedNow }
	return svc, repo, audit
}

func TestCreateUploadStoresReportAndLogs(t *testing.T) {
	svc, repo, audit := newUploads(t, nil)
	actor := actorWith(domain.RoleOperator)

	repo.EXPECT().
		CreateUpload(mock.Anything, mock.AnythingOfType("*domain.DataUpload"), mock.Anything).
		Run(func(_ context.Context, upload *domain.DataUpload, logs []domain.IngestionLogEntry) {
			assert.Equal(t, testWorkspace, upload.WorkspaceID)
			assert.Equal(t, actor.UserID, upload.UploadedBy)
			assert.Equal(t, "march.csv", upload.FileName)
			assert.Equal(t, 2, upload.RowCount)
			assert.Equal(t, domain.ValidationPass, upload.Status)
			assert.Equal(t, int64(len(goodCSV)), upload.SizeBytes)
			assert.Empty(t, upload.ObjectKey)
			assert.Empty(t, logs)

			var preview []map[string]string
			require.NoError(t, json.Unmarshal(upload.Preview, &preview))
			require.Len(t, preview, 1)
			assert.Equal(t, "meta", preview[0]["platform"])
			assert.JSONEq(t, `[]`, string(upload.Errors))
		}).
		Return(nil)
	audit.EXPECT().
		Append(mock.Anything, mock.MatchedBy(func(e *domain.AuditEntry) bool {
			return e.Action == domain.ActionUploadCreated && e.Scope == domain.ScopeWorkspace && e.EntityType == "data_upload"
		})).
		Return(nil)

	upload, err := svc.Create(context.Background(), actor, port.UploadFile{Name: " march.csv ", Body: strings.NewReader(goodCSV)})
	require.NoError(t, err)
	assert.Equal(t, domain.ValidationPass, upload.Status)
	assert.Equal(t, fixedNow, upload.CreatedAt)
}

func TestCreateUploadRecordsFailedFile(t *testing.T) {
	svc, repo, audit := newUploads(t, nil)

	repo.EXPECT().
		CreateUpload(mock.Anything, mock.Anything, mock.MatchedBy(func(logs []domain.IngestionLogEntry) bool {
			if len(logs) == 0 {
				return false
			}
			for _, l := range logs {
				if l.RowNumber != 1 || l.Severity != domain.SeverityError {
					return false
				}
			}
			return true
		})).
		Return(nil)
	audit.EXPECT().Append(mock.Anything, mock.Anything).Return(nil)

	upload, err := svc.Create(context.Background(), actorWith(domain.RoleAdmin), port.UploadFile{Name: "bad.csv", Body: strings.NewReader(badCSV)})
	require.NoError(t, err)
	assert.Equal(t, domain.ValidationFail, upload.Status)
	assert.NotEmpty(t, upload.Logs)
	for _, l := range upload.Logs {
		assert.Equal(t, upload.ID, l.UploadID)
	}
}

func TestCreateUploadArchivesRawFile(t *testing.T) {
	files := mocks.NewMockFileStore(t)
	svc, repo, audit := newUploads(t, files)

	files.EXPECT().
		Put(mock.Anything, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "uploads/"+testWorkspace.String()+"/") && strings.HasSuffix(key, "/march.csv")
		}), mock.Anything, int64(len(goodCSV)), "text/csv").
		RunAndReturn(func(_ context.Context, key string, body io.Reader, _ int64, _ string) (string, error) {
			data, err := io.ReadAll(body)
			require.NoError(t, err)
			assert.Equal(t, goodCSV, string(data))
			return key, nil
		})
	repo.EXPECT().
		CreateUpload(mock.Anything, mock.MatchedBy(func(u *domain.DataUpload) bool {
			return strings.HasSuffix(u.ObjectKey, "/march.csv")
		}), mock.Anything).
		Return(nil)
	audit.EXPECT().Append(mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Create(context.Background(), actorWith(domain.RoleOwner), port.UploadFile{
		Name: "march.csv", ContentType: "text/csv", Body: strings.NewReader(goodCSV),
	})
	require.NoError(t, err)
}

func TestCreateUploadArchiveFailureStoresNothing(t *testing.T) {
	files := mocks.NewMockFileStore(t)
	svc, _, _ := newUploads(t, files)

	files.EXPECT().Put(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("bucket gone"))

	_, err := svc.Create(context.Background(), actorWith(domain.RoleOwner), port.UploadFile{Name: "a.csv", Body: strings.NewReader(goodCSV)})
	require.Error(t, err)
	assert.Equal(t, domain.KindInternal, domain.KindOf(err))
}

func TestCreateUploadRejects(t *testing.T) {
	svc, _, _ := newUploads(t, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, actorWith(domain.RoleViewer), port.UploadFile{Name: "a.csv", Body: strings.NewReader(goodCSV)})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svc.Create(ctx, actorWith(domain.RoleOperator), port.UploadFile{Name: "a.csv"})
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	_, err = svc.Create(ctx, actorWith(domain.RoleOperator), port.UploadFile{Name: "", Body: strings.NewReader(goodCSV)})
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	other := clientB
	_, err = svc.Create(ctx, actorWith(domain.RoleOperator, clientA), port.UploadFile{Name: "a.csv", ClientID: &other, Body: strings.NewReader(goodCSV)})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	svc.maxBytes = 10
	_, err = svc.Create(ctx, actorWith(domain.RoleOperator), port.UploadFile{Name: "a.csv", Body: strings.NewReader(goodCSV)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "10 byte limit")
}

func TestCreateUploadUnknownClient(t *testing.T) {
	svc, repo, _ := newUploads(t, nil)
	stranger := uuid.New()
	repo.EXPECT().ClientExists(mock.Anything, testWorkspace, stranger).Return(false, nil)

	_, err := svc.Create(context.Background(), actorWith(domain.RoleOwner), port.UploadFile{
		Name: "a.csv", ClientID: &stranger, Body: strings.NewReader(goodCSV),
	})
	require.ErrorIs(t, err, domain.ErrUnknownClient)
	repo.AssertNotCalled(t, "CreateUpload", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateUploadRepositoryErrorSkipsAudit(t *testing.T) {
	svc, repo, _ := newUploads(t, nil)
	repo.EXPECT().CreateUpload(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("tx aborted"))

	_, err := svc.Create(context.Background(), actorWith(domain.RoleOwner), port.UploadFile{Name: "a.csv", Body: strings.NewReader(goodCSV)})
	assert.EqualError(t, err, "tx aborted")
}

func TestCreateUploadAuditFailureIsNotFatal(t *testing.T) {
	svc, repo, audit := newUploads(t, nil)
	repo.EXPECT().CreateUpload(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	audit.EXPECT().Append(mock.Anything, mock.Anything).Return(errors.New("audit table locked"))

	upload, err := svc.Create(context.Background(), actorWith(domain.RoleOwner), port.UploadFile{Name: "a.csv", Body: strings.NewReader(goodCSV)})
	require.NoError(t, err)
	assert.NotNil(t, upload)
}

func TestValidateUploadPersistsNothing(t *testing.T) {
	svc, _, _ := newUploads(t, nil)

	report, err := svc.Validate(context.Background(), actorWith(domain.RoleOperator), strings.NewReader(badCSV))
	require.NoError(t, err)
	assert.Equal(t, domain.ValidationFail, report.Status)
	assert.Positive(t, report.ErrorCount)

	_, err = svc.Validate(context.Background(), actorWith(domain.RoleViewer), strings.NewReader(goodCSV))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestListAndGetUploads(t *testing.T) {
	svc, repo, _ := newUploads(t, nil)
	ctx := context.Background()
	id := uuid.New()

	noWorkspace := actorWith(domain.RoleViewer)
	noWorkspace.WorkspaceID = uuid.Nil
	list, err := svc.List(ctx, noWorkspace, 10)
	require.NoError(t, err)
	assert.Empty(t, list)

	repo.EXPECT().
		ListUploads(mock.Anything, mock.MatchedBy(func(f domain.ListFilter) bool { return f.Limit == 10 && f.WorkspaceID == testWorkspace })).
		Return([]domain.DataUpload{{ID: id}}, nil)
	list, err = svc.List(ctx, actorWith(domain.RoleViewer), 10)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	repo.EXPECT().GetUpload(mock.Anything, testWorkspace, id).Return(&domain.DataUpload{ID: id}, nil)
	repo.EXPECT().ListIngestionLogs(mock.Anything, id).Return([]domain.IngestionLogEntry{{UploadID: id, Message: "x"}}, nil)
	upload, err := svc.Get(ctx, actorWith(domain.RoleViewer), id)
	require.NoError(t, err)
	assert.Len(t, upload.Logs, 1)
}
