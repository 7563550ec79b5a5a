package procedures

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goliatone/go-intake/pkg/catalog"
)

type handlerResponse struct {
	Data []Option `json:"data"`
}

func testCatalog() catalog.Set {
	return catalog.New(
		catalog.Option{Value: "A876", Label: "Advanced Imaging (MRI)"},
		catalog.Option{Value: "B901", Label: "Outpatient Surgical Procedure"},
		catalog.Option{Value: "C102", Label: "Physical Therapy Course"},
	)
}

func TestNewHandler_EmptyQueryReturnsFullCatalog(t *testing.T) {
	h := NewHandler(WithCatalog(testCatalog()))

	req := httptest.NewRequest(http.MethodGet, "/api/procedure-codes", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	res := rec.Result()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.StatusCode)
	}
	if ct := strings.TrimSpace(res.Header.Get("Content-Type")); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected JSON content-type, got %q", ct)
	}

	var payload handlerResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(payload.Data) != 3 {
		t.Fatalf("expected full catalog, got %#v", payload.Data)
	}
	if payload.Data[0].Value != "A876" || payload.Data[0].Label != "Advanced Imaging (MRI)" {
		t.Fatalf("unexpected first option: %#v", payload.Data[0])
	}
}

func TestNewHandler_EmptySearchNoneReturnsEmptyDataArray(t *testing.T) {
	h := NewHandler(
		WithCatalog(testCatalog()),
		WithEmptySearchMode(EmptySearchNone),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/procedure-codes", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var payload handlerResponse
	if err := json.NewDecoder(rec.Result().Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Data == nil || len(payload.Data) != 0 {
		t.Fatalf("expected empty data array, got %#v", payload.Data)
	}
}

func TestNewHandler_SearchMatchesCodeAndLabel(t *testing.T) {
	h := NewHandler(WithCatalog(testCatalog()))

	req := httptest.NewRequest(http.MethodGet, "/api/procedure-codes?q=imaging", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var payload handlerResponse
	if err := json.NewDecoder(rec.Result().Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(payload.Data) != 1 || payload.Data[0].Value != "A876" {
		t.Fatalf("expected label match for A876, got %#v", payload.Data)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/procedure-codes?q=b9", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	payload = handlerResponse{}
	if err := json.NewDecoder(rec.Result().Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(payload.Data) != 1 || payload.Data[0].Value != "B901" {
		t.Fatalf("expected code match for B901, got %#v", payload.Data)
	}
}

func TestNewHandler_LimitClamped(t *testing.T) {
	h := NewHandler(
		WithCatalog(testCatalog()),
		WithMaxLimit(2),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/procedure-codes?limit=10", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var payload handlerResponse
	if err := json.NewDecoder(rec.Result().Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(payload.Data) != 2 {
		t.Fatalf("expected clamped results, got %d: %#v", len(payload.Data), payload.Data)
	}
}

func TestNewHandler_CustomQueryParams(t *testing.T) {
	h := NewHandler(
		WithCatalog(testCatalog()),
		WithSearchParam("search"),
		WithLimitParam("l"),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/procedure-codes?search=therapy&l=5", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var payload handlerResponse
	if err := json.NewDecoder(rec.Result().Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(payload.Data) != 1 || payload.Data[0].Value != "C102" {
		t.Fatalf("unexpected payload: %#v", payload)
	}
}

func TestNewHandler_DefaultCatalogServed(t *testing.T) {
	h := NewHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/procedure-codes?q=A876", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var payload handlerResponse
	if err := json.NewDecoder(rec.Result().Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(payload.Data) != 1 || payload.Data[0].Label != "Advanced Imaging (MRI)" {
		t.Fatalf("expected embedded catalog entry, got %#v", payload.Data)
	}
}

func TestNewHandler_GuardRejects(t *testing.T) {
	h := NewHandler(
		WithCatalog(testCatalog()),
		WithGuard(func(r *http.Request) error {
			return StatusError{Code: http.StatusUnauthorized}
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/procedure-codes?q=mri", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestNewHandler_MethodNotAllowed(t *testing.T) {
	h := NewHandler(WithCatalog(testCatalog()))

	req := httptest.NewRequest(http.MethodPost, "/api/procedure-codes", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); !strings.Contains(allow, http.MethodGet) {
		t.Fatalf("expected Allow header, got %q", allow)
	}
}

func TestNewHandler_HeadOmitsBody(t *testing.T) {
	h := NewHandler(WithCatalog(testCatalog()))

	req := httptest.NewRequest(http.MethodHead, "/api/procedure-codes?q=mri", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body for HEAD, got %q", rec.Body.String())
	}
}
