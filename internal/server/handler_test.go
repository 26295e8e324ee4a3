package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qbox/qadocgen/internal/assemble"
	"github.com/qbox/qadocgen/internal/coverage"
	"github.com/qbox/qadocgen/internal/delivery"
	"github.com/qbox/qadocgen/internal/generator"
	"github.com/qbox/qadocgen/internal/staging"
	"github.com/qbox/qadocgen/internal/trace"
	"github.com/qbox/qadocgen/pkg/models"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	stagingMgr, err := staging.NewManager(t.TempDir(), 0)
	require.NoError(t, err)
	assembler := assemble.New(coverage.Catalog(), coverage.CharterCatalog())
	publisher := delivery.NewLocalPublisher("http://localhost:8080")
	service := generator.NewService(assembler, stagingMgr, publisher)
	return NewHandler(service, stagingMgr)
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	newTestHandler(t).Register(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var health models.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "QA Documentation Generator", health.Service)
}

func TestHandleGenerate(t *testing.T) {
	srv := newTestServer(t)

	body, err := json.Marshal(models.GenerateRequest{
		Requirement: "Feature: User login\nUsers authenticate with email and password.",
		SessionID:   "sess-42",
	})
	require.NoError(t, err)

	resp, err := http.Post(srv.URL+"/api/generate", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result models.GenerateResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Contains(t, result.Summary, "User login")
	assert.Greater(t, result.TotalTestCases, 0)
	assert.Greater(t, result.ExploratoryCharters, 0)
	assert.Contains(t, result.TestPlan.DownloadURL, "/files/sess-42/")
	assert.True(t, strings.HasSuffix(result.TestCases.Filename, ".csv"))
}

func TestHandleGenerate_EmptyRequirement(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/generate", "application/json",
		strings.NewReader(`{"requirement": ""}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	// 空需求也要产出完整文档
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result models.GenerateResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Contains(t, result.Summary, assemble.DefaultFeatureName)
}

func TestHandleGenerate_InvalidJSON(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/generate", "application/json",
		strings.NewReader("{not json"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp models.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.NotEmpty(t, errResp.Error)
}

func TestHandleGenerate_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/generate")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHandleGenerate_CORSPreflight(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/generate", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), "POST")
}

func TestHandleDownload(t *testing.T) {
	srv := newTestServer(t)

	// 先生成一份文档，再按返回的链接下载
	body := `{"requirement": "Feature: Export report", "session_id": "dl-1"}`
	resp, err := http.Post(srv.URL+"/api/generate", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result models.GenerateResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	dl, err := http.Get(srv.URL + "/files/dl-1/" + result.TestPlan.Filename)
	require.NoError(t, err)
	defer dl.Body.Close()

	assert.Equal(t, http.StatusOK, dl.StatusCode)
	assert.Contains(t, dl.Header.Get("Content-Disposition"), result.TestPlan.Filename)
}

func TestHandleDownload_Rejected(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{
		"/files/none/test_plan_20260101000000.md", // 会话不存在
		"/files/s1/../../etc/passwd",              // 路径穿越
		"/files/s1/notes.txt",                     // 不是产物文件名
		"/files/s1",                               // 缺少文件名
	} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err, path)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
	}
}

func TestRequestContext_UsesRequestID(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/api/generate", nil)
	r.Header.Set("X-Request-ID", "abcdef1234567890")

	ctx := requestContext(r, trace.GeneratePrefix)
	// 截短到前8位
	assert.Equal(t, trace.TraceID("generate_abcdef12"), trace.GetTraceID(ctx))
}

func TestRequestContext_GeneratesID(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/api/generate", nil)

	ctx := requestContext(r, trace.GeneratePrefix)
	assert.True(t, strings.HasPrefix(string(trace.GetTraceID(ctx)), "generate_"))
}
