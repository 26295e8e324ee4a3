package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/qbox/qadocgen/internal/generator"
	"github.com/qbox/qadocgen/internal/staging"
	"github.com/qbox/qadocgen/internal/trace"
	"github.com/qbox/qadocgen/pkg/models"
)

// ServiceName 对外暴露的服务名
const ServiceName = "QA Documentation Generator"

type Handler struct {
	service *generator.Service
	staging *staging.Manager
}

func NewHandler(service *generator.Service, stagingMgr *staging.Manager) *Handler {
	return &Handler{service: service, staging: stagingMgr}
}

// Register 注册全部路由
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/generate", h.HandleGenerate)
	mux.HandleFunc("/api/health", h.HandleHealth)
	mux.HandleFunc("/files/", h.HandleDownload)
}

// HandleGenerate 处理文档生成请求
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	allowCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	// 1. 读取请求体
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	// 2. 创建追踪 ID 和上下文
	// 优先使用调用方的 X-Request-ID，截短到前8位
	ctx := requestContext(r, trace.GeneratePrefix)
	trace.Info(ctx, "Received generate request: body_size=%d", len(body))

	// 3. 解析请求体；空需求不视为错误，由装配器兜底
	var req models.GenerateRequest
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			trace.Warn(ctx, "Failed to unmarshal generate request: %v", err)
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	// 4. 执行生成流水线
	result, err := h.service.Generate(ctx, req)
	if err != nil {
		// 内部错误不暴露给调用方
		trace.Error(ctx, "Generation failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to generate documentation")
		return
	}

	trace.Info(ctx, "Generate request completed: test_cases=%d, charters=%d",
		result.TotalTestCases, result.ExploratoryCharters)
	writeJSON(w, http.StatusOK, result)
}

// HandleHealth 健康检查
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	allowCORS(w)
	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:  "healthy",
		Service: ServiceName,
	})
}

// HandleDownload 提供暂存产物下载，路径形如 /files/{session}/{filename}
func (h *Handler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	allowCORS(w)
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	ctx := requestContext(r, trace.DownloadPrefix)

	rest := strings.TrimPrefix(r.URL.Path, "/files/")
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		writeError(w, http.StatusNotFound, "file not found")
		return
	}

	path, err := h.staging.Resolve(parts[0], parts[1])
	if err != nil {
		trace.Warn(ctx, "Download rejected: session=%s, file=%s: %v", parts[0], parts[1], err)
		writeError(w, http.StatusNotFound, "file not found")
		return
	}

	trace.Info(ctx, "Serving artifact: session=%s, file=%s", parts[0], parts[1])
	w.Header().Set("Content-Disposition", "attachment; filename="+parts[1])
	http.ServeFile(w, r, path)
}

// requestContext 创建带追踪日志器的上下文
func requestContext(r *http.Request, operation string) context.Context {
	requestID := r.Header.Get("X-Request-ID")
	var traceID trace.TraceID
	if len(requestID) > 8 {
		traceID = trace.TraceID(operation + "_" + requestID[:8])
	} else if requestID != "" {
		traceID = trace.TraceID(operation + "_" + requestID)
	} else {
		traceID = trace.NewTraceID(operation)
	}
	return trace.NewContext(r.Context(), traceID)
}

// allowCORS 前端运行在独立域名下，需要放开跨域
func allowCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ErrorResponse{Error: message})
}
