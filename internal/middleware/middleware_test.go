package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())

	var seen string
	e.GET("/ping", func(c echo.Context) error {
		seen, _ = c.Get(RequestIDKey).(string)
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if seen == "" {
		t.Fatal("expected a generated request id in context")
	}
	if _, err := uuid.Parse(seen); err != nil {
		t.Fatalf("expected a uuid request id, got %q", seen)
	}
	if got := rec.Header().Get(echo.HeaderXRequestID); got != seen {
		t.Fatalf("expected response header %q, got %q", seen, got)
	}
}

func TestRequestID_HonorsInboundHeader(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())

	var seen string
	e.GET("/ping", func(c echo.Context) error {
		seen, _ = c.Get(RequestIDKey).(string)
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(echo.HeaderXRequestID, "trace-me-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if seen != "trace-me-123" {
		t.Fatalf("expected inbound id to survive, got %q", seen)
	}
	if got := rec.Header().Get(echo.HeaderXRequestID); got != "trace-me-123" {
		t.Fatalf("expected inbound id echoed back, got %q", got)
	}
}

func TestLogger_EmitsRequestLine(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	e := echo.New()
	e.Use(RequestID(), Logger(logger))
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected one JSON log line, got %q: %v", buf.String(), err)
	}
	if line["method"] != "GET" || line["path"] != "/ping" {
		t.Fatalf("unexpected request fields: %v", line)
	}
	if status, _ := line["status"].(float64); int(status) != http.StatusOK {
		t.Fatalf("expected status 200, got %v", line["status"])
	}
	if rid, _ := line["request_id"].(string); rid == "" {
		t.Fatalf("expected request_id field, got %v", line)
	}
}

func TestLogger_ErrorsLogAtErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	e := echo.New()
	e.Use(Logger(logger))
	e.GET("/fail", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadRequest, "nope")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected one JSON log line, got %q: %v", buf.String(), err)
	}
	if line["level"] != "error" {
		t.Fatalf("expected error level, got %v", line["level"])
	}
}

func TestRecovery_ConvertsPanicTo500(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	e := echo.New()
	e.Use(Recovery(logger))
	e.GET("/boom", func(echo.Context) error {
		panic("kaboom")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 after panic, got %d", rec.Code)
	}
	if !strings.Contains(buf.String(), "panic recovered") {
		t.Fatalf("expected panic log, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "kaboom") {
		t.Fatalf("expected panic value in log, got %q", buf.String())
	}
}
