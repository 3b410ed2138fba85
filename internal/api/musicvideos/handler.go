package musicvideosapi

import (
	"errors"
	"net/http"
	"time"

	"portfolio-api/internal/api/apiutil"
	"portfolio-api/internal/domain/musicvideos"
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
	r.GET("/music-videos", h.List)
	r.GET("/music-videos/*rest", h.Get)
	r.POST("/music-videos", h.Create)
	r.PUT("/music-videos/*rest", h.Update)
	r.DELETE("/music-videos/*rest", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	var rows []musicvideos.MusicVideo
	if err := musicVideosQuery(c.Request.Context(), h.DB).Order("created_at DESC").Find(&rows).Error; err != nil {
		apiutil.Internal(c, err, "list music videos")
		return
	}

	out := make([]MusicVideoDTO, 0, len(rows))
	for _, v := range rows {
		out = append(out, toMusicVideoDTO(v))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) Get(c *gin.Context) {
	var v musicvideos.MusicVideo
	if err := musicVideoBySlugQuery(c.Request.Context(), h.DB, apiutil.Slug(c)).First(&v).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apiutil.NotFound(c)
			return
		}
		apiutil.Internal(c, err, "get music video")
		return
	}
	c.JSON(http.StatusOK, toMusicVideoDTO(v))
}

func (h *Handler) Create(c *gin.Context) {
	var req MusicVideoRequest
	if !apiutil.BindJSON(c, &req) {
		return
	}

	v := req.toModel()
	if err := h.DB.WithContext(c.Request.Context()).Create(&v).Error; err != nil {
		apiutil.WriteFailed(c, err, "create music video")
		return
	}

	logging.Info().Str("slug", v.Slug).Msg("music video created")
	apiutil.OK(c)
}

func (h *Handler) Update(c *gin.Context) {
	var req MusicVideoRequest
	if !apiutil.BindJSON(c, &req) {
		return
	}

	res := musicVideoBySlugQuery(c.Request.Context(), h.DB, apiutil.Slug(c)).Updates(req.columns(time.Now()))
	if res.Error != nil {
		apiutil.WriteFailed(c, res.Error, "update music video")
		return
	}
	apiutil.OK(c)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.DB.WithContext(c.Request.Context()).Delete(&musicvideos.MusicVideo{}, "slug = ?", apiutil.Slug(c)).Error; err != nil {
		apiutil.Internal(c, err, "delete music video")
		return
	}
	apiutil.OK(c)
}
