package galleriesapi

import (
	"errors"
	"net/http"
	"time"

	"portfolio-api/internal/api/apiutil"
	"portfolio-api/internal/domain/galleries"
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

func (h *Handler) Register(r gin.IRoutes) {
	r.GET("/galleries", h.List)
	r.GET("/galleries/*rest", h.Get)
	r.POST("/galleries", h.Create)
	r.PUT("/galleries/*rest", h.Update)
	r.DELETE("/galleries/*rest", h.Delete)
}

// GET /galleries
func (h *Handler) List(c *gin.Context) {
	var rows []galleries.Gallery
	if err := galleriesQuery(c.Request.Context(), h.DB).Order("created_at DESC").Find(&rows).Error; err != nil {
		apiutil.Internal(c, err, "list galleries")
		return
	}

	out := make([]GalleryDTO, 0, len(rows))
	for _, g := range rows {
		out = append(out, toGalleryDTO(g))
	}
	c.JSON(http.StatusOK, out)
}

// GET /galleries/:slug
func (h *Handler) Get(c *gin.Context) {
	var g galleries.Gallery
	if err := galleryBySlugQuery(c.Request.Context(), h.DB, apiutil.Slug(c)).First(&g).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apiutil.NotFound(c)
			return
		}
		apiutil.Internal(c, err, "get gallery")
		return
	}
	c.JSON(http.StatusOK, toGalleryDTO(g))
}

// POST /galleries
func (h *Handler) Create(c *gin.Context) {
	var req GalleryRequest
	if !apiutil.BindJSON(c, &req) {
		return
	}

	g := req.toModel()
	if err := h.DB.WithContext(c.Request.Context()).Create(&g).Error; err != nil {
		apiutil.WriteFailed(c, err, "create gallery")
		return
	}

	logging.Info().Str("slug", g.Slug).Msg("gallery created")
	apiutil.OK(c)
}

// PUT /galleries/:slug
func (h *Handler) Update(c *gin.Context) {
	var req GalleryRequest
	if !apiutil.BindJSON(c, &req) {
		return
	}

	res := galleryBySlugQuery(c.Request.Context(), h.DB, apiutil.Slug(c)).Updates(req.columns(time.Now()))
	if res.Error != nil {
		apiutil.WriteFailed(c, res.Error, "update gallery")
		return
	}
	apiutil.OK(c)
}

// DELETE /galleries/:slug
func (h *Handler) Delete(c *gin.Context) {
	if err := h.DB.WithContext(c.Request.Context()).Delete(&galleries.Gallery{}, "slug = ?", apiutil.Slug(c)).Error; err != nil {
		apiutil.Internal(c, err, "delete gallery")
		return
	}
	apiutil.OK(c)
}
