package logger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInit(t *testing.T) {
	originalLog := log
	defer func() { log = originalLog }()

	t.Run("Production", func(t *testing.T) {
		Init("production")
		assert.NotNil(t, log)
	})

	t.Run("Development", func(t *testing.T) {
		Init("development")
		assert.NotNil(t, log)
	})
}

func TestInit_LogLevel(t *testing.T) {
	originalLog := log
	defer func() { log = originalLog }()

	t.Setenv("LOG_LEVEL", "warn")
	Init("production")

	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
}

func TestParseLevel(t *testing.T) {
	lvl, ok := parseLevel("DEBUG")
	assert.True(t, ok)
	assert.Equal(t, zapcore.DebugLevel, lvl)

	_, ok = parseLevel("loud")
	assert.False(t, ok)

	_, ok = parseLevel("")
	assert.False(t, ok)
}

func TestL(t *testing.T) {
	originalLog := log
	defer func() { log = originalLog }()

	// Force nil to test lazy initialization
	log = nil
	t.Setenv("APP_ENV", "test")

	assert.NotNil(t, L())
	assert.NotNil(t, log)
}

func TestReplace(t *testing.T) {
	originalLog := log
	defer func() { log = originalLog }()

	replacement := zap.NewNop()
	restore := Replace(replacement)
	assert.Same(t, replacement, L())

	restore()
	assert.Same(t, originalLog, log)
}

func TestContextFunctions(t *testing.T) {
	ctx := context.Background()
	reqID := "req-7f3a"

	t.Run("RequestIDFrom", func(t *testing.T) {
		assert.Equal(t, reqID, RequestIDFrom(WithRequestID(ctx, reqID)))
		assert.Equal(t, "", RequestIDFrom(ctx))
	})
}

func TestFromCtx(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	defer Replace(zap.New(core))()

	t.Run("WithRequestAndUser", func(t *testing.T) {
		ctx := WithUserID(WithRequestID(context.Background(), "req-abc-123"), 7)

		FromCtx(ctx).Info("order submitted")

		logs := observed.TakeAll()
		assert.Len(t, logs, 1)
		fields := logs[0].ContextMap()
		assert.Equal(t, "req-abc-123", fields["request_id"])
		assert.Equal(t, int64(7), fields["user_id"])
	})

	t.Run("Bare", func(t *testing.T) {
		FromCtx(context.Background()).Info("no ids")

		logs := observed.TakeAll()
		assert.Len(t, logs, 1)
		fields := logs[0].ContextMap()
		_, hasReq := fields["request_id"]
		_, hasUser := fields["user_id"]
		assert.False(t, hasReq)
		assert.False(t, hasUser)
	})
}

func TestSync(t *testing.T) {
	assert.NotPanics(t, func() {
		Sync()
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, RequestIDFrom(r.Context()))
	})

	handler := RequestIDMiddleware(nextHandler)

	t.Run("Generates ID when missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api?action=products", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	})

	t.Run("Preserves existing ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api?action=products", nil)
		req.Header.Set(RequestIDHeader, "test-id-123")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, "test-id-123", w.Header().Get(RequestIDHeader))
	})

	t.Run("Replaces oversized ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api?action=products", nil)
		req.Header.Set(RequestIDHeader, strings.Repeat("x", maxRequestIDLen+1))
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		got := w.Header().Get(RequestIDHeader)
		assert.NotEmpty(t, got)
		assert.LessOrEqual(t, len(got), maxRequestIDLen)
	})
}

func TestLevelForStatus(t *testing.T) {
	assert.Equal(t, zapcore.InfoLevel, levelForStatus(http.StatusOK))
	assert.Equal(t, zapcore.WarnLevel, levelForStatus(http.StatusTooManyRequests))
	assert.Equal(t, zapcore.ErrorLevel, levelForStatus(http.StatusInternalServerError))
}

func TestLoggingMiddleware(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	defer Replace(zap.New(core))()

	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/api?action=nope", nil)
	w := httptest.NewRecorder()

	LoggingMiddleware(nextHandler).ServeHTTP(w, req)

	logs := observed.TakeAll()
	assert.Len(t, logs, 1)
	assert.Equal(t, "request handled", logs[0].Message)
	assert.Equal(t, zapcore.WarnLevel, logs[0].Level)
	fields := logs[0].ContextMap()
	assert.Equal(t, "/api", fields["path"])
	assert.Equal(t, "nope", fields["action"])
	assert.Equal(t, int64(http.StatusNotFound), fields["status"])
}

func TestBuildOptions_CallerIsLogSite(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	l := zap.New(core, buildOptions()...)

	l.Info("where am I")

	logs := observed.TakeAll()
	assert.Len(t, logs, 1)
	assert.True(t, logs[0].Caller.Defined)
	assert.True(t, strings.HasSuffix(logs[0].Caller.File, "logger/logger_test.go"), logs[0].Caller.File)
}
