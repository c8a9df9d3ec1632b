package httpadapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"adops/internal/adapter/redisstore"
	"adops/internal/adapter/token"
	"adops/internal/adapter/usecase"
	"adops/internal/config/configs"
	"adops/internal/core/domain"
	"adops/internal/core/port/mocks"
	"adops/internal/core/rbac"
)

var (
	workspace = uuid.MustParse("3c0b1a9e-5d2f-4f7a-8e61-0a1b2c3d4e5f")
	clientOne = uuid.MustParse("8d4e2f10-1b3c-4d5e-9f60-7a8b9c0d1e2f")
)

type testEnv struct {
	handler   http.Handler
	tokens    *token.JWT
	mr        *miniredis.Miniredis
	logs      *observer.ObservedLogs
	campaigns *mocks.MockCampaignRepository
	uploads   *mocks.MockUploadRepository
	posts     *mocks.MockPostRepository
	audit     *mocks.MockAuditRepository
	trust     *mocks.MockTrustStore
}

func newTestEnv(t *testing.T, tweak ...func(*Options)) *testEnv {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)
	env := &testEnv{
		tokens:    token.NewJWT(configs.Auth{Secret: "handler-secret", Issuer: "adops-test"}),
		mr:        mr,
		logs:      logs,
		campaigns: mocks.NewMockCampaignRepository(t),
		uploads:   mocks.NewMockUploadRepository(t),
		posts:     mocks.NewMockPostRepository(t),
		audit:     mocks.NewMockAuditRepository(t),
		trust:     mocks.NewMockTrustStore(t),
	}
	env.audit.EXPECT().Append(mock.Anything, mock.Anything).Return(nil).Maybe()

	audit := usecase.NewAuditUseCase(env.audit, logger)
	svc := Services{
		Auth:      usecase.NewAuthUseCase(env.tokens, redisstore.NewSessionStore(rdb), audit, logger),
		Audit:     audit,
		Campaigns: usecase.NewCampaignUseCase(env.campaigns),
		Uploads:   usecase.NewUploadUseCase(env.uploads, nil, audit, configs.Ingest{MaxBytes: 1024, MaxRows: 100, PreviewRows: 2, MaxIssues: 20}, logger),
		Posts:     usecase.NewPostUseCase(env.posts, audit, logger),
		Studio:    usecase.NewStudioUseCase(redisstore.NewPreferenceStore(rdb)),
		Trust:     usecase.NewTrustUseCase(env.trust, audit, logger),
	}
	opts := Options{
		AllowedOrigins: []string{"http://localhost:3000"},
		MaxUploadBytes: 1024,
		Redis:          rdb,
	}
	for _, fn := range tweak {
		fn(&opts)
	}
	env.handler = NewHandler(svc, opts, logger).Router()
	return env
}

func (e *testEnv) token(t *testing.T, role domain.Role, clients ...uuid.UUID) string {
	t.Helper()
	raw, _, err := e.tokens.Issue(domain.Actor{
		UserID:      uuid.New(),
		Email:       string(role) + "@agency.test",
		Role:        role,
		WorkspaceID: workspace,
		ClientIDs:   clients,
	}, time.Hour)
	require.NoError(t, err)
	return raw
}

func (e *testEnv) do(t *testing.T, method, path, bearer string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	e.handler.ServeHTTP(w, req)
	return w
}

func (e *testEnv) doJSON(t *testing.T, method, path, bearer, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	return e.do(t, method, path, bearer, r, "application/json")
}

type testResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *errorBody      `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) testResponse {
	t.Helper()
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	var resp testResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func TestAuthRequired(t *testing.T) {
	env := newTestEnv(t)

	for _, bearer := range []string{"", "garbage"} {
		w := env.doJSON(t, http.MethodGet, "/api/campaigns", bearer, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		resp := decode(t, w)
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "unauthorized", resp.Error.Code)
	}
}

func TestMeAndLogout(t *testing.T) {
	env := newTestEnv(t)
	bearer := env.token(t, domain.RoleOperator, clientOne)

	w := env.doJSON(t, http.MethodGet, "/api/auth/me", bearer, "")
	require.Equal(t, http.StatusOK, w.Code)
	var me meResponse
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &me))
	assert.Equal(t, domain.RoleOperator, me.Role)
	assert.Equal(t, []uuid.UUID{clientOne}, me.ClientIDs)
	assert.False(t, me.AllClients)
	assert.Contains(t, me.Permissions, rbac.PermPostsWrite)

	w = env.doJSON(t, http.MethodPost, "/api/auth/logout", bearer, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = env.doJSON(t, http.MethodGet, "/api/auth/me", bearer, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionStoreDownIsServerError(t *testing.T) {
	env := newTestEnv(t)
	bearer := env.token(t, domain.RoleViewer)
	env.mr.Close()

	w := env.doJSON(t, http.MethodGet, "/api/auth/me", bearer, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", decode(t, w).Error.Message)
}

func TestPermissionCheck(t *testing.T) {
	env := newTestEnv(t)
	bearer := env.token(t, domain.RoleAdmin)

	w := env.doJSON(t, http.MethodGet, "/api/permissions/check?permission=trust:activate", bearer, "")
	require.Equal(t, http.StatusOK, w.Code)
	var check permissionCheck
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &check))
	assert.False(t, check.Allowed)
	assert.Equal(t, domain.RoleAdmin, check.Role)

	w = env.doJSON(t, http.MethodGet, "/api/permissions/check?permission=root", bearer, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListCampaigns(t *testing.T) {
	env := newTestEnv(t)
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	env.campaigns.EXPECT().
		ListCampaigns(mock.Anything, mock.MatchedBy(func(f domain.ListFilter) bool {
			return f.WorkspaceID == workspace && f.Platform == domain.PlatformMeta && f.Limit == 200
		})).
		Return([]domain.Campaign{{
			ID:          uuid.New(),
			WorkspaceID: workspace,
			Name:        "Spring launch",
			Platform:    domain.PlatformMeta,
			Status:      domain.StatusPaused,
			BudgetCents: 125000,
			Currency:    "USD",
			StartDate:   &start,
		}}, nil)

	w := env.doJSON(t, http.MethodGet, "/api/campaigns?platform=meta&limit=500", env.token(t, domain.RoleOwner), "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var rows []campaignRow
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Paused", rows[0].StatusBadge.Label)
	assert.Equal(t, "Meta", rows[0].PlatformBadge.Label)
	assert.Contains(t, rows[0].BudgetDisplay, "1,250")
	assert.Equal(t, "Mar 1, 2025", rows[0].StartDisplay)
	assert.Empty(t, rows[0].EndDisplay)
}

func TestListCampaignsBadQuery(t *testing.T) {
	env := newTestEnv(t)
	bearer := env.token(t, domain.RoleViewer)

	w := env.doJSON(t, http.MethodGet, "/api/campaigns?platform=myspace", bearer, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	assert.Contains(t, resp.Error.Details, "platform")

	w = env.doJSON(t, http.MethodGet, "/api/campaigns?client_id=nope", bearer, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.doJSON(t, http.MethodGet, "/api/campaigns?limit=ten", bearer, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCampaignNotFound(t *testing.T) {
	env := newTestEnv(t)
	id := uuid.New()
	env.campaigns.EXPECT().GetCampaign(mock.Anything, workspace, id).Return(nil, domain.ErrCampaignNotFound)

	w := env.doJSON(t, http.MethodGet, "/api/campaigns/"+id.String(), env.token(t, domain.RoleViewer), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "campaign not found", decode(t, w).Error.Message)
}

func TestBackendErrorDoesNotLeak(t *testing.T) {
	env := newTestEnv(t)
	env.campaigns.EXPECT().ListAdSets(mock.Anything, mock.Anything).Return(nil, errors.New("pq: relation ad_sets does not exist"))

	w := env.doJSON(t, http.MethodGet, "/api/adsets", env.token(t, domain.RoleOwner), "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "ad_sets")
}

func multipartBody(t *testing.T, name, content string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if name != "" {
		part, err := mw.CreateFormFile("file", name)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

const sampleCSV = "date,platform,campaign,spend,impressions,clicks\n2025-03-01,meta,Spring,10,100,5\n"

func TestCreateUpload(t *testing.T) {
	env := newTestEnv(t)
	env.uploads.EXPECT().ClientExists(mock.Anything, workspace, clientOne).Return(true, nil)
	env.uploads.EXPECT().CreateUpload(mock.Anything, mock.Anything, mock.Anything).Return(nil)

	body, ct := multipartBody(t, "march.csv", sampleCSV, map[string]string{"client_id": clientOne.String()})
	w := env.do(t, http.MethodPost, "/api/uploads", env.token(t, domain.RoleOwner), body, ct)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var upload domain.DataUpload
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &upload))
	assert.Equal(t, domain.ValidationPass, upload.Status)
	assert.Equal(t, "march.csv", upload.FileName)
	require.NotNil(t, upload.ClientID)
	assert.Equal(t, clientOne, *upload.ClientID)
}

func TestUploadRejects(t *testing.T) {
	env := newTestEnv(t)
	bearer := env.token(t, domain.RoleOperator)

	body, ct := multipartBody(t, "", "", map[string]string{"note": "x"})
	w := env.do(t, http.MethodPost, "/api/uploads", bearer, body, ct)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body, ct = multipartBody(t, "big.csv", strings.Repeat("a", 2048), nil)
	w = env.do(t, http.MethodPost, "/api/uploads/validate", bearer, body, ct)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w).Error.Message, "byte limit")

	body, ct = multipartBody(t, "a.csv", sampleCSV, nil)
	w = env.do(t, http.MethodPost, "/api/uploads", env.token(t, domain.RoleViewer), body, ct)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestValidateUpload(t *testing.T) {
	env := newTestEnv(t)
	body, ct := multipartBody(t, "a.csv", "date,platform\n", nil)

	w := env.do(t, http.MethodPost, "/api/uploads/validate", env.token(t, domain.RoleOperator), body, ct)
	require.Equal(t, http.StatusOK, w.Code)
	var report struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &report))
	assert.Equal(t, "fail", report.Status)
}

func TestCreatePost(t *testing.T) {
	env := newTestEnv(t)
	bearer := env.token(t, domain.RoleOperator)

	w := env.doJSON(t, http.MethodPost, "/api/posts", bearer, `{"platform":"meta"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w).Error.Details, "content")

	w = env.doJSON(t, http.MethodPost, "/api/posts", bearer, `{"platform":"meta","content":"hi","extra":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	env.posts.EXPECT().CreatePost(mock.Anything, mock.Anything).Return(nil)
	w = env.doJSON(t, http.MethodPost, "/api/posts", bearer, `{"platform":"meta","content":"Spring sale","tone":"bold"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var post domain.Post
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &post))
	assert.Equal(t, domain.PostDraft, post.Status)

	w = env.doJSON(t, http.MethodPost, "/api/posts", env.token(t, domain.RoleViewer), `{"platform":"meta","content":"x"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreatePostUnknownClient(t *testing.T) {
	env := newTestEnv(t)
	stranger := uuid.New()
	env.posts.EXPECT().ClientExists(mock.Anything, workspace, stranger).Return(false, nil)

	w := env.doJSON(t, http.MethodPost, "/api/posts", env.token(t, domain.RoleOwner),
		`{"platform":"meta","content":"hi","client_id":"`+stranger.String()+`"}`)
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	resp := decode(t, w)
	assert.Equal(t, "unknown client_id", resp.Error.Message)
	assert.Equal(t, stranger.String(), resp.Error.Details["client_id"])
}

func TestBulkPosts(t *testing.T) {
	env := newTestEnv(t)
	bearer := env.token(t, domain.RoleAdmin)

	w := env.doJSON(t, http.MethodPost, "/api/posts/bulk", bearer, `{"action":"approve","ids":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	ids := make([]string, 101)
	for i := range ids {
		ids[i] = `"` + uuid.NewString() + `"`
	}
	w = env.doJSON(t, http.MethodPost, "/api/posts/bulk", bearer, `{"action":"approve","ids":[`+strings.Join(ids, ",")+`]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	env.posts.EXPECT().BulkSetStatus(mock.Anything, workspace, mock.Anything, mock.Anything, domain.PostArchived).Return(int64(2), nil)
	w = env.doJSON(t, http.MethodPost, "/api/posts/bulk", bearer, `{"action":"archive","ids":[`+ids[0]+`,`+ids[1]+`]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp bulkResponse
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &resp))
	assert.Equal(t, int64(2), resp.Affected)
}

func TestDeleteMissingPost(t *testing.T) {
	env := newTestEnv(t)
	id := uuid.New()
	env.posts.EXPECT().GetPost(mock.Anything, workspace, id).Return(nil, domain.ErrPostNotFound)

	w := env.doJSON(t, http.MethodDelete, "/api/posts/"+id.String(), env.token(t, domain.RoleOperator), "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.doJSON(t, http.MethodDelete, "/api/posts/not-a-uuid", env.token(t, domain.RoleOperator), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStudioPreferences(t *testing.T) {
	env := newTestEnv(t)
	bearer := env.token(t, domain.RoleViewer)

	w := env.doJSON(t, http.MethodDelete, "/api/studio/preferences/approved", bearer, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.doJSON(t, http.MethodPost, "/api/studio/preferences/approved", bearer, `{"message":"Ship it"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.doJSON(t, http.MethodPost, "/api/studio/preferences/onboarding/studio_intro", bearer, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = env.doJSON(t, http.MethodGet, "/api/studio/preferences", bearer, "")
	require.Equal(t, http.StatusOK, w.Code)
	var prefs struct {
		MessageState    string          `json:"message_state"`
		ApprovedMessage string          `json:"approved_message"`
		Onboarding      map[string]bool `json:"onboarding"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &prefs))
	assert.Equal(t, "approved", prefs.MessageState)
	assert.Equal(t, "Ship it", prefs.ApprovedMessage)
	assert.True(t, prefs.Onboarding["studio_intro"])
	assert.False(t, prefs.Onboarding["tone_picker"])
}

func TestStudioRewrite(t *testing.T) {
	env := newTestEnv(t)
	bearer := env.token(t, domain.RoleViewer)

	w := env.doJSON(t, http.MethodPost, "/api/studio/rewrite", bearer, `{"content":"we are   live","tone":"casual","template_id":"tip","platform":"google"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp rewriteResponse
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &resp))
	assert.Equal(t, "💡 Tip: we're live", resp.Content)
	assert.Equal(t, 1500, resp.Limit)

	w = env.doJSON(t, http.MethodPost, "/api/studio/rewrite", bearer, `{"content":"x","tone":"grumpy"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.doJSON(t, http.MethodGet, "/api/studio/tones", bearer, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"professional"`)
}

func TestTrustEndpoints(t *testing.T) {
	env := newTestEnv(t)

	env.trust.EXPECT().Active(mock.Anything).Return(domain.TrustVersion{}, domain.ErrNoActiveVersion).Once()
	w := env.doJSON(t, http.MethodGet, "/api/trust", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	env.trust.EXPECT().Get(mock.Anything, 2).Return(domain.TrustVersion{Number: 2, Active: true}, nil)
	w = env.doJSON(t, http.MethodPost, "/api/trust/versions/2/activate", env.token(t, domain.RoleOwner), "")
	assert.Equal(t, http.StatusPreconditionFailed, w.Code)
	assert.Equal(t, "precondition_failed", decode(t, w).Error.Code)

	w = env.doJSON(t, http.MethodPost, "/api/trust/versions/2/activate", env.token(t, domain.RoleAdmin), "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.doJSON(t, http.MethodPost, "/api/trust/rollback", env.token(t, domain.RoleOwner), `{"to":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.doJSON(t, http.MethodGet, "/api/trust/versions/abc", env.token(t, domain.RoleViewer), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPublishTrust(t *testing.T) {
	env := newTestEnv(t)
	bearer := env.token(t, domain.RoleAdmin)

	env.trust.EXPECT().Active(mock.Anything).Return(domain.TrustVersion{Number: 1, Active: true}, nil)
	env.trust.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(c domain.TrustContent) bool {
			return c.Title == "Trust" && len(c.Sections) == 1 && c.Sections[0].Key == "security"
		}), "Second", "tightened wording", "admin@agency.test").
		Return(domain.TrustVersion{Number: 2, Name: "Second"}, nil)

	w := env.doJSON(t, http.MethodPost, "/api/trust/versions", bearer,
		`{"name":"Second","changelog":"tightened wording","content":{"title":"Trust","sections":[{"key":"security","title":"Security","body":"TLS"}]}}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = env.doJSON(t, http.MethodPost, "/api/trust/versions", bearer,
		`{"name":"Third","content":{"title":"Trust","sections":[{"title":"No key"}]}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRateLimit(t *testing.T) {
	env := newTestEnv(t, func(o *Options) {
		o.RateLimit = configs.RateLimit{Requests: 2, Window: time.Minute}
	})
	env.trust.EXPECT().Active(mock.Anything).Return(domain.TrustVersion{Number: 1, Active: true}, nil)

	for i := 0; i < 2; i++ {
		w := env.doJSON(t, http.MethodGet, "/api/trust", "", "")
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := env.doJSON(t, http.MethodGet, "/api/trust", "", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	keys := env.mr.Keys()
	require.Len(t, keys, 1)
	assert.True(t, strings.HasPrefix(keys[0], "rl:"))
	assert.Equal(t, time.Minute, env.mr.TTL(keys[0]))

	// health probes are not limited
	w = env.doJSON(t, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimitFailsOpen(t *testing.T) {
	env := newTestEnv(t, func(o *Options) {
		o.RateLimit = configs.RateLimit{Requests: 1, Window: time.Minute}
	})
	env.trust.EXPECT().Active(mock.Anything).Return(domain.TrustVersion{Number: 1, Active: true}, nil)
	env.mr.Close()

	for i := 0; i < 3; i++ {
		w := env.doJSON(t, http.MethodGet, "/api/trust", "", "")
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRequestLogCarriesUser(t *testing.T) {
	env := newTestEnv(t)
	bearer := env.token(t, domain.RoleOperator)

	w := env.doJSON(t, http.MethodGet, "/api/studio/tones", bearer, "")
	require.Equal(t, http.StatusOK, w.Code)
	w = env.doJSON(t, http.MethodGet, "/healthz", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	entries := env.logs.FilterMessage("http request").AllUntimed()
	require.Len(t, entries, 2)

	authed := entries[0].ContextMap()
	assert.Equal(t, "/api/studio/tones", authed["path"])
	userID, ok := authed["user_id"].(string)
	require.True(t, ok, "authenticated request logs user_id")
	_, err := uuid.Parse(userID)
	assert.NoError(t, err)

	_, ok = entries[1].ContextMap()["user_id"]
	assert.False(t, ok)
}

func TestUnknownRoute(t *testing.T) {
	env := newTestEnv(t)
	w := env.doJSON(t, http.MethodGet, "/nope", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, decode(t, w).Success)
}
