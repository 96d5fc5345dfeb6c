package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/Kaper156/pygedcom/pkg/cache"
)

const sampleText = `0 HEAD
1 SOUR test
0 @I1@ INDI
1 NAME John /Doe/
1 SEX M
0 @F1@ FAM
1 HUSB @I1@
0 TRLR
`

func newTestServer() *Server {
	return NewServer(log.New(io.Discard), cache.NewNullCache())
}

func post(t *testing.T, s *Server, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Body.String(); got != `{"status":"ok"}` {
		t.Errorf("body = %q", got)
	}
}

func TestRequestIDAssigned(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-Id") == "" {
		t.Error("missing X-Request-Id header")
	}
}

func TestRequestIDPreserved(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-Id", "client-id-1")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-Id"); got != "client-id-1" {
		t.Errorf("X-Request-Id = %q", got)
	}
}

func TestVerify(t *testing.T) {
	s := newTestServer()
	rec := post(t, s, "/v1/verify", sampleText)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	var result struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Status != "ok" {
		t.Errorf("status = %q, message = %q", result.Status, result.Message)
	}
}

func TestVerifyInvalid(t *testing.T) {
	s := newTestServer()
	rec := post(t, s, "/v1/verify", "0 HEAD\n2 SOUR test\n0 TRLR\n")

	var result struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Status != "error" {
		t.Errorf("status = %q", result.Status)
	}
	if !strings.Contains(result.Message, "line 2") {
		t.Errorf("message = %q", result.Message)
	}
}

func TestParseStats(t *testing.T) {
	s := newTestServer()
	rec := post(t, s, "/v1/parse", sampleText)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	var stats struct {
		Head        bool `json:"head"`
		Individuals int  `json:"individuals"`
		Families    int  `json:"families"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !stats.Head || stats.Individuals != 1 || stats.Families != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestParseEmptyBody(t *testing.T) {
	s := newTestServer()
	rec := post(t, s, "/v1/parse", "")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestExportJSON(t *testing.T) {
	s := newTestServer()
	rec := post(t, s, "/v1/export?format=json", sampleText)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	var doc map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := doc["individuals"]; !ok {
		t.Error("export missing individuals")
	}
}

func TestExportGedcomRoundTrip(t *testing.T) {
	s := newTestServer()
	rec := post(t, s, "/v1/export?format=gedcom", sampleText)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	if got := rec.Body.String(); got != sampleText {
		t.Errorf("round trip mismatch:\ngot:\n%s\nwant:\n%s", got, sampleText)
	}
}

func TestExportUnsupportedFormat(t *testing.T) {
	s := newTestServer()
	rec := post(t, s, "/v1/export?format=xml", sampleText)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d: %s", rec.Code, rec.Body)
	}
}

func TestExportCached(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	s := NewServer(log.New(io.Discard), c)

	first := post(t, s, "/v1/export?format=json", sampleText)
	second := post(t, s, "/v1/export?format=json", sampleText)
	if first.Body.String() != second.Body.String() {
		t.Error("cached response differs from fresh response")
	}
}
