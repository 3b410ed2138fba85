package blogapi

import (
	"errors"
	"net/http"
	"time"

	"portfolio-api/internal/api/apiutil"
	"portfolio-api/internal/domain/blog"
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
	r.GET("/blog", h.List)
	r.GET("/blog/*rest", h.Get)
	r.POST("/blog", h.Create)
	r.PUT("/blog/*rest", h.Update)
	r.DELETE("/blog/*rest", h.Delete)
}

// List returns published posts only, newest first, without content.
func (h *Handler) List(c *gin.Context) {
	out := make([]PostSummaryDTO, 0)
	err := publishedQuery(c.Request.Context(), h.DB).
		Select("slug", "title", "excerpt", "cover_image", "created_at").
		Order("created_at DESC").
		Scan(&out).Error
	if err != nil {
		apiutil.Internal(c, err, "list blog posts")
		return
	}
	c.JSON(http.StatusOK, out)
}

// Get hides drafts: an unpublished post answers 404 like a missing one.
func (h *Handler) Get(c *gin.Context) {
	var p blog.Post
	err := publishedQuery(c.Request.Context(), h.DB).
		Where("slug = ?", apiutil.Slug(c)).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apiutil.NotFound(c)
			return
		}
		apiutil.Internal(c, err, "get blog post")
		return
	}
	c.JSON(http.StatusOK, toPostDTO(p))
}

func (h *Handler) Create(c *gin.Context) {
	var req PostRequest
	if !apiutil.BindJSON(c, &req) {
		return
	}

	p := req.toModel()
	if err := h.DB.WithContext(c.Request.Context()).Create(&p).Error; err != nil {
		apiutil.WriteFailed(c, err, "create blog post")
		return
	}

	logging.Info().Str("slug", p.Slug).Bool("published", p.Published).Msg("blog post created")
	apiutil.OK(c)
}

func (h *Handler) Update(c *gin.Context) {
	var req PostRequest
	if !apiutil.BindJSON(c, &req) {
		return
	}

	res := postBySlugQuery(c.Request.Context(), h.DB, apiutil.Slug(c)).Updates(req.columns(time.Now()))
	if res.Error != nil {
		apiutil.WriteFailed(c, res.Error, "update blog post")
		return
	}
	apiutil.OK(c)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.DB.WithContext(c.Request.Context()).Delete(&blog.Post{}, "slug = ?", apiutil.Slug(c)).Error; err != nil {
		apiutil.Internal(c, err, "delete blog post")
		return
	}
	apiutil.OK(c)
}
