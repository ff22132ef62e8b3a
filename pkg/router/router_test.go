package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echo(body string) HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}
}

func doRequest(t *testing.T, r *Router, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)
	return rec
}

func TestRouter_ExactMatch(t *testing.T) {
	r := New()
	r.GET("/api/v1/dataset/summary", echo("summary"))

	rec := doRequest(t, r, http.MethodGet, "/api/v1/dataset/summary")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "summary", rec.Body.String())
}

func TestRouter_NotFound(t *testing.T) {
	r := New()
	r.GET("/api/v1/dataset/summary", echo("summary"))

	rec := doRequest(t, r, http.MethodGet, "/api/v1/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	r := New()
	r.GET("/api/v1/reports", echo("list"))
	r.POST("/api/v1/reports", echo("create"))

	rec := doRequest(t, r, http.MethodDelete, "/api/v1/reports")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = doRequest(t, r, http.MethodPost, "/api/v1/reports")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "create", rec.Body.String())
}

func TestRouter_Wildcard(t *testing.T) {
	r := New()
	r.GET("/api/v1/reports/*/files", echo("files"))
	r.GET("/api/v1/reports/*", echo("report"))

	tests := []struct {
		path     string
		wantCode int
		wantBody string
	}{
		{"/api/v1/reports/abc-123/files", http.StatusOK, "files"},
		{"/api/v1/reports/abc-123", http.StatusOK, "report"},
		{"/api/v1/reports", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := doRequest(t, r, http.MethodGet, tt.path)
			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestRouter_WildcardRegistrationOrder(t *testing.T) {
	// More specific patterns registered first win
	r := New()
	r.GET("/api/v1/reports/*/files", echo("files"))
	r.GET("/api/v1/reports/*", echo("report"))

	rec := doRequest(t, r, http.MethodGet, "/api/v1/reports/id-1/files")
	assert.Equal(t, "files", rec.Body.String())
}

func TestRouter_TrailingWildcardSpansSegments(t *testing.T) {
	r := New()
	r.GET("/swagger/*", echo("swagger"))

	rec := doRequest(t, r, http.MethodGet, "/swagger/index.html")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, r, http.MethodGet, "/swagger/doc/swagger.json")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ExactBeatsWildcard(t *testing.T) {
	r := New()
	r.GET("/api/v1/correlation/*", echo("wild"))
	r.GET("/api/v1/correlation/matrix", echo("matrix"))

	rec := doRequest(t, r, http.MethodGet, "/api/v1/correlation/matrix")
	assert.Equal(t, "matrix", rec.Body.String())
}
