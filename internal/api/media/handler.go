package mediaapi

import (
	"errors"
	"net/http"
	"strings"

	"portfolio-api/internal/api/apiutil"
	"portfolio-api/internal/infra/objectstore"
	"portfolio-api/internal/logging"
	"portfolio-api/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgMissingFile    = "Missing file"
	msgMissingSection = "Missing section"
	msgFileTooLarge   = "File too large"
	msgMissingURL     = "Missing url"
	msgInvalidURL     = "Invalid url"

	// Parts above this spill to temp files instead of memory.
	multipartMemory = 8 << 20
)

type Handler struct {
	Store          objectstore.Store
	PublicBaseURL  string
	MaxUploadBytes int64

	// NewID names uploaded objects; uuid.NewString when nil.
	NewID func() string
}

func NewHandler(store objectstore.Store, publicBaseURL string, maxUploadBytes int64) *Handler {
	return &Handler{
		Store:          store,
		PublicBaseURL:  publicBaseURL,
		MaxUploadBytes: maxUploadBytes,
		NewID:          uuid.NewString,
	}
}

func (h *Handler) Register(r gin.IRoutes) {
	r.POST("/upload", h.Upload)
	r.POST("/media/upload", h.LegacyUpload)
	r.DELETE("/media", h.Delete)
}

// Upload stores one file under section/slug/<id>.<ext>.
func (h *Handler) Upload(c *gin.Context) {
	if !h.parseForm(c) {
		return
	}

	section := strings.TrimSpace(c.PostForm("section"))
	if section == "" {
		apiutil.BadRequest(c, msgMissingSection)
		return
	}
	h.store(c, section, formOr(c, "slug", "misc"))
}

// LegacyUpload keeps the older form fields working: type instead of section.
func (h *Handler) LegacyUpload(c *gin.Context) {
	if !h.parseForm(c) {
		return
	}
	h.store(c, formOr(c, "type", "misc"), formOr(c, "slug", "unknown"))
}

// Delete removes the object behind a public media URL. Existence is not
// checked; S3 deletes of absent keys succeed.
func (h *Handler) Delete(c *gin.Context) {
	var req DeleteRequest
	if !apiutil.BindJSON(c, &req) {
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		apiutil.BadRequest(c, msgMissingURL)
		return
	}

	key, err := objectstore.KeyFromURL(req.URL)
	if err != nil {
		apiutil.BadRequest(c, msgInvalidURL)
		return
	}

	err = h.Store.Delete(c.Request.Context(), key)
	metrics.RecordMedia("delete", err)
	if err != nil {
		apiutil.Internal(c, err, "delete media")
		return
	}

	logging.Info().Str("key", key).Msg("media deleted")
	c.JSON(http.StatusOK, DeleteResponse{OK: true, Key: key})
}

func (h *Handler) parseForm(c *gin.Context) bool {
	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		apiutil.BadRequest(c, apiutil.MsgExpectedUpload)
		return false
	}

	if h.MaxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)
	}
	if err := c.Request.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			apiutil.BadRequest(c, msgFileTooLarge)
			return false
		}
		apiutil.BadRequest(c, apiutil.MsgExpectedUpload)
		return false
	}
	return true
}

func (h *Handler) store(c *gin.Context, category, slug string) {
	fh, err := c.FormFile("file")
	if err != nil {
		apiutil.BadRequest(c, msgMissingFile)
		return
	}

	f, err := fh.Open()
	if err != nil {
		apiutil.Internal(c, err, "open upload")
		return
	}
	defer f.Close()

	newID := h.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	key := objectstore.BuildKey(category, slug, newID(), fh.Filename)
	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	err = h.Store.Put(c.Request.Context(), key, f, fh.Size, contentType)
	metrics.RecordMedia("upload", err)
	if err != nil {
		apiutil.Internal(c, err, "upload media")
		return
	}
	metrics.MediaUploadBytes.Add(float64(fh.Size))

	logging.Info().Str("key", key).Int64("size", fh.Size).Msg("media uploaded")
	c.JSON(http.StatusOK, UploadResponse{
		OK:   true,
		Key:  key,
		URL:  objectstore.PublicURL(h.PublicBaseURL, key),
		Name: fh.Filename,
	})
}

func formOr(c *gin.Context, field, fallback string) string {
	if v := strings.TrimSpace(c.PostForm(field)); v != "" {
		return v
	}
	return fallback
}
