package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		path    string
		pattern string
		want    bool
	}{
		{"/api/v1/cleanings/abc", "/api/v1/cleanings/*", true},
		{"/api/v1/cleanings/abc/logs", "/api/v1/cleanings/*/logs", true},
		{"/api/v1/cleanings/abc/logs", "/api/v1/cleanings/*", true}, // trailing * matches the rest
		{"/api/v1/cleanings/abc/metrics", "/api/v1/cleanings/*/logs", false},
		{"/api/v1/other/abc", "/api/v1/cleanings/*", false},
		{"/api/v1/download/job/file.csv", "/api/v1/download/*/*", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, matchPattern(tt.path, tt.pattern), "%s vs %s", tt.path, tt.pattern)
	}
}

func TestRouterDispatch(t *testing.T) {
	r := New()
	r.GET("/api/v1/cleanings", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("list"))
	})
	r.GET("/api/v1/cleanings/*/logs", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("logs"))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/cleanings", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "list", rec.Body.String())

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/cleanings/abc/logs", nil))
	assert.Equal(t, "logs", rec.Body.String())

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/cleanings", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWildcardRegistrationOrder(t *testing.T) {
	r := New()
	r.GET("/api/v1/cleanings/*/logs", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("logs"))
	})
	r.GET("/api/v1/cleanings/*", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("job"))
	})

	// the specific route was registered first, so it wins even though
	// the generic trailing wildcard also matches
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/cleanings/abc/logs", nil))
	assert.Equal(t, "logs", rec.Body.String())

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/cleanings/abc", nil))
	assert.Equal(t, "job", rec.Body.String())
}
