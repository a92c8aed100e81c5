package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"community-pulse/internal/config"
	"community-pulse/internal/store"
)

func TestRouteDispatch(t *testing.T) {
	require.NoError(t, store.InitDB(":memory:"))
	r := NewRouter(config.Config{OutputDir: t.TempDir()})

	// known path, wrong method
	req := httptest.NewRequest(http.MethodPut, "/api/v1/cleanings", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	// unknown path
	req = httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// wildcard subresource routes before the generic job route
	req = httptest.NewRequest(http.MethodGet, "/api/v1/cleanings/some-id/logs", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"job_id"`)

	// generic job route hits the store and misses
	req = httptest.NewRequest(http.MethodGet, "/api/v1/cleanings/some-id", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
