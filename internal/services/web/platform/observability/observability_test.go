package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	return zap.New(core), logs
}

func TestRequestLoggerLogsMethodAndPath(t *testing.T) {
	t.Parallel()

	logger, logs := newObservedLogger()
	h := RequestLogger(logger, nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard/notes", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
	entries := logs.FilterMessage("http request").All()
	if len(entries) != 1 {
		t.Fatalf("log entries = %d, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if got := fields["method"]; got != "GET" {
		t.Fatalf("method = %v, want GET", got)
	}
	if got := fields["path"]; got != "/dashboard/notes" {
		t.Fatalf("path = %v, want /dashboard/notes", got)
	}
	if got := fields["status"]; got != int64(http.StatusNoContent) {
		t.Fatalf("status = %v, want 204", got)
	}
	if got := fields["request_id"]; got != "req-123" {
		t.Fatalf("request_id = %v, want req-123", got)
	}
}

func TestRequestLoggerCapturesImplicitStatusOKAndBytes(t *testing.T) {
	t.Parallel()

	logger, logs := newObservedLogger()
	h := RequestLogger(logger, nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/up", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("log entries = %d, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if got := fields["status"]; got != int64(http.StatusOK) {
		t.Fatalf("status = %v, want 200", got)
	}
	if got := fields["bytes"]; got != int64(2) {
		t.Fatalf("bytes = %v, want 2", got)
	}
	if _, ok := fields["latency"]; !ok {
		t.Fatalf("fields = %v, want latency", fields)
	}
}

func TestRequestLoggerLogsServerErrorsAtErrorLevel(t *testing.T) {
	t.Parallel()

	logger, logs := newObservedLogger()
	h := RequestLogger(logger, nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if got := logs.FilterLevelExact(zapcore.ErrorLevel).Len(); got != 1 {
		t.Fatalf("error entries = %d, want 1", got)
	}
}

func TestRequestLoggerRecordsServerSpan(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	h := RequestLogger(zap.NewNop(), provider)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/auth/signin", nil))

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("ended spans = %d, want 1", len(spans))
	}
	span := spans[0]
	if got := span.Name(); got != "POST /auth/signin" {
		t.Fatalf("span name = %q, want %q", got, "POST /auth/signin")
	}
	if got := span.Status().Code; got != codes.Error {
		t.Fatalf("span status = %v, want %v", got, codes.Error)
	}
	var status int64
	for _, attr := range span.Attributes() {
		if attr.Key == "http.response.status_code" {
			status = attr.Value.AsInt64()
		}
	}
	if status != http.StatusBadGateway {
		t.Fatalf("status attribute = %d, want %d", status, http.StatusBadGateway)
	}
}
