package apiutil

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"/films/hunch":        "hunch",
		"/films/":             "",
		"/films":              "",
		"/films/a/b":          "a",
		"/blog/hello%20world": "hello%20world",
		"/music-videos/x?y=1": "x",
	}
	for target, want := range cases {
		c, _ := newContext(http.MethodGet, target, "")
		assert.Equal(t, want, Slug(c), target)
	}
}

func TestBindJSON(t *testing.T) {
	var req struct {
		Title string `json:"title"`
	}

	c, _ := newContext(http.MethodPost, "/films", `{"title":"Hunch"}`)
	assert.True(t, BindJSON(c, &req))
	assert.Equal(t, "Hunch", req.Title)

	c, w := newContext(http.MethodPost, "/films", `{"title":`)
	assert.False(t, BindJSON(c, &req))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid JSON body"}`, w.Body.String())
}

func TestWriteFailed(t *testing.T) {
	c, w := newContext(http.MethodPost, "/films", "")
	WriteFailed(c, gorm.ErrDuplicatedKey, "create film")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"Slug already exists"}`, w.Body.String())

	c, w = newContext(http.MethodPost, "/films", "")
	WriteFailed(c, errors.New("pq: relation \"films\" does not exist"), "create film")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal error"}`, w.Body.String())
}

func TestUnauthorizedAborts(t *testing.T) {
	c, w := newContext(http.MethodDelete, "/films/x", "")
	Unauthorized(c)
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
