package trace

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/qiniu/x/xlog"
)

// TraceID 表示追踪 ID
type TraceID string

// 为不同的操作定义追踪前缀
const (
	TracePrefix    = "qadocgen"
	GeneratePrefix = "generate"
	HealthPrefix   = "health"
	DownloadPrefix = "download"
	CleanupPrefix  = "cleanup"
)

// generateTraceID 生成唯一的追踪 ID
func generateTraceID() TraceID {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		// 随机数生成失败时回退到时间戳
		return TraceID(fmt.Sprintf("%s_%d", TracePrefix, time.Now().UnixNano()))
	}
	return TraceID(fmt.Sprintf("%s_%x", TracePrefix, bytes))
}

// NewTraceID 为一次操作创建新的追踪 ID
func NewTraceID(operation string) TraceID {
	return TraceID(fmt.Sprintf("%s_%s", operation, generateTraceID()))
}

// 使用 context key 来存储追踪日志器
type contextKey string

const traceLoggerKey contextKey = "trace_logger"

// NewContext 创建带有追踪 ID 的上下文
func NewContext(ctx context.Context, traceID TraceID) context.Context {
	logger := xlog.New(string(traceID))
	return context.WithValue(ctx, traceLoggerKey, logger)
}

// FromContext 从上下文中获取追踪日志器
func FromContext(ctx context.Context) *xlog.Logger {
	if logger, ok := ctx.Value(traceLoggerKey).(*xlog.Logger); ok {
		return logger
	}
	return nil
}

// GetTraceID 从上下文中获取追踪 ID
func GetTraceID(ctx context.Context) TraceID {
	logger := FromContext(ctx)
	if logger == nil {
		return ""
	}
	return TraceID(logger.ReqId)
}

// Info 记录信息级别的追踪日志
func Info(ctx context.Context, format string, args ...interface{}) {
	if logger := FromContext(ctx); logger != nil {
		logger.Infof(format, args...)
	}
}

// Error 记录错误级别的追踪日志
func Error(ctx context.Context, format string, args ...interface{}) {
	if logger := FromContext(ctx); logger != nil {
		logger.Errorf(format, args...)
	}
}

// Warn 记录警告级别的追踪日志
func Warn(ctx context.Context, format string, args ...interface{}) {
	if logger := FromContext(ctx); logger != nil {
		logger.Warnf(format, args...)
	}
}

// Debug 记录调试级别的追踪日志
func Debug(ctx context.Context, format string, args ...interface{}) {
	if logger := FromContext(ctx); logger != nil {
		logger.Debugf(format, args...)
	}
}
