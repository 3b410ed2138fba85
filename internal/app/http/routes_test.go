package routes

import (
	"net/http"
	"strings"
	"testing"

	"portfolio-api/internal/domain/films"
	"portfolio-api/internal/infra/objectstore"
	"portfolio-api/internal/testsupport"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const token = "test-token"

var bearer = map[string]string{"Authorization": "Bearer " + token}

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, *objectstore.Memory) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testsupport.NewDB(t)
	store := objectstore.NewMemory()
	r := NewRouter(Deps{
		DB:             db,
		Store:          store,
		AdminToken:     token,
		MediaPublicURL: "https://cdn.example.com",
		MaxUploadBytes: 1 << 20,
	})
	return r, db, store
}

func TestHealth(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := testsupport.Do(r, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestUnauthorizedWritesHaveNoEffect(t *testing.T) {
	r, db, store := newTestRouter(t)

	requests := []struct {
		method, target string
		body           any
	}{
		{http.MethodPost, "/films", map[string]string{"slug": "x", "title": "X"}},
		{http.MethodPut, "/galleries/x", map[string]string{"title": "X"}},
		{http.MethodDelete, "/music-videos/x", nil},
		{http.MethodPost, "/blog", map[string]string{"slug": "x"}},
		{http.MethodPost, "/upload", "not multipart"},
		{http.MethodDelete, "/media", map[string]string{"url": "https://cdn.example.com/a/b"}},
		{http.MethodPost, "/does-not-exist", nil},
	}
	for _, rq := range requests {
		w := testsupport.Do(r, rq.method, rq.target, rq.body, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, rq.method+" "+rq.target)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
	}

	var n int64
	require.NoError(t, db.Model(&films.Film{}).Count(&n).Error)
	assert.Zero(t, n)
	assert.Empty(t, store.Keys())
	assert.Empty(t, store.Deleted())
}

func TestOptionsShortCircuits(t *testing.T) {
	r, _, _ := newTestRouter(t)

	for _, target := range []string{"/films", "/films/hunch", "/upload", "/whatever"} {
		w := testsupport.Do(r, http.MethodOptions, target, nil, nil)
		assert.Equal(t, http.StatusNoContent, w.Code, target)
		assert.Empty(t, w.Body.String())
		assert.Equal(t, "GET,POST,PUT,DELETE,OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	}
}

func TestNotFound(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := testsupport.Do(r, http.MethodGet, "/nope", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())

	w = testsupport.Do(r, http.MethodPatch, "/films/x", "{}", bearer)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())
}

func TestFilmLifecycle(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := testsupport.Do(r, http.MethodPost, "/films", map[string]any{
		"title":   "The Hunch",
		"credits": []map[string]string{{"role": "Director", "name": "Luka"}},
	}, bearer)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = testsupport.Do(r, http.MethodGet, "/films/the-hunch", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"Director"`)

	w = testsupport.Do(r, http.MethodDelete, "/films/the-hunch", nil, bearer)
	require.Equal(t, http.StatusOK, w.Code)

	w = testsupport.Do(r, http.MethodGet, "/films/the-hunch", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEmptySlugPassesThrough(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := testsupport.Do(r, http.MethodGet, "/films/", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())

	w = testsupport.Do(r, http.MethodPost, "/blog", map[string]any{"published": true}, bearer)
	require.Equal(t, http.StatusOK, w.Code)

	w = testsupport.Do(r, http.MethodGet, "/blog/", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"slug":""`)
}

func TestMetricsEndpoint(t *testing.T) {
	r, _, _ := newTestRouter(t)

	testsupport.Do(r, http.MethodGet, "/health", nil, nil)
	w := testsupport.Do(r, http.MethodGet, "/metrics", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "portfolio_http_requests_total"))
}
