package filmsapi

import (
	"errors"
	"net/http"
	"time"

	"portfolio-api/internal/api/apiutil"
	"portfolio-api/internal/domain/films"
	"portfolio-api/internal/logging"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

// Register mounts the film routes. Item routes use a catch-all so an empty
// slug ("/films/") still reaches the handler.
func (h *Handler) Register(r gin.IRoutes) {
	r.GET("/films", h.List)
	r.GET("/films/*rest", h.Get)
	r.POST("/films", h.Create)
	r.PUT("/films/*rest", h.Update)
	r.DELETE("/films/*rest", h.Delete)
}

// ------------------------------
// GET /films
// ------------------------------
func (h *Handler) List(c *gin.Context) {
	var rows []films.Film
	if err := filmsQuery(c.Request.Context(), h.DB).Order("created_at DESC").Find(&rows).Error; err != nil {
		apiutil.Internal(c, err, "list films")
		return
	}

	out := make([]FilmDTO, 0, len(rows))
	for _, f := range rows {
		out = append(out, toFilmDTO(f))
	}
	c.JSON(http.StatusOK, out)
}

// ------------------------------
// GET /films/:slug
// ------------------------------
func (h *Handler) Get(c *gin.Context) {
	var f films.Film
	err := filmBySlugQuery(c.Request.Context(), h.DB, apiutil.Slug(c)).First(&f).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apiutil.NotFound(c)
			return
		}
		apiutil.Internal(c, err, "get film")
		return
	}
	c.JSON(http.StatusOK, toFilmDTO(f))
}

// ------------------------------
// POST /films
// ------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req FilmRequest
	if !apiutil.BindJSON(c, &req) {
		return
	}

	f := req.toModel()
	if err := h.DB.WithContext(c.Request.Context()).Create(&f).Error; err != nil {
		apiutil.WriteFailed(c, err, "create film")
		return
	}

	logging.Info().Str("slug", f.Slug).Msg("film created")
	apiutil.OK(c)
}

// ------------------------------
// PUT /films/:slug  (full replace; unknown slug is a no-op)
// ------------------------------
func (h *Handler) Update(c *gin.Context) {
	var req FilmRequest
	if !apiutil.BindJSON(c, &req) {
		return
	}

	s := apiutil.Slug(c)
	res := filmBySlugQuery(c.Request.Context(), h.DB, s).Updates(req.columns(time.Now()))
	if res.Error != nil {
		apiutil.WriteFailed(c, res.Error, "update film")
		return
	}

	logging.Debug().Str("slug", s).Int64("rows", res.RowsAffected).Msg("film updated")
	apiutil.OK(c)
}

// ------------------------------
// DELETE /films/:slug  (idempotent)
// ------------------------------
func (h *Handler) Delete(c *gin.Context) {
	s := apiutil.Slug(c)
	if err := h.DB.WithContext(c.Request.Context()).Delete(&films.Film{}, "slug = ?", s).Error; err != nil {
		apiutil.Internal(c, err, "delete film")
		return
	}
	apiutil.OK(c)
}
