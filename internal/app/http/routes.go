package routes

import (
	"net/http"

	"portfolio-api/internal/api/apiutil"
	blogapi "portfolio-api/internal/api/blog"
	filmsapi "portfolio-api/internal/api/films"
	galleriesapi "portfolio-api/internal/api/galleries"
	mediaapi "portfolio-api/internal/api/media"
	musicvideosapi "portfolio-api/internal/api/musicvideos"
	"portfolio-api/internal/app/http/middleware"
	"portfolio-api/internal/infra/objectstore"
	"portfolio-api/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// Deps is everything the router needs from main.
type Deps struct {
	DB    *gorm.DB
	Store objectstore.Store

	AdminToken     string
	MediaPublicURL string
	MaxUploadBytes int64
	CORSOrigins    []string
	SanitizeInput  bool
}

// NewRouter builds the engine with the global middleware chain and all
// routes. CORS answers preflights before the auth gate, and the gate runs
// before routing, unmatched paths included.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false

	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logging.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("handler panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": apiutil.MsgInternalError})
	}))
	r.Use(middleware.RequestLogger(), middleware.Metrics())
	r.Use(middleware.CORS(d.CORSOrigins))
	r.Use(middleware.AdminAuth(d.AdminToken))
	if d.SanitizeInput {
		r.Use(middleware.SanitizeInput())
	}

	RegisterRoutes(r, d)
	return r
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/health", func(c *gin.Context) {
		apiutil.OK(c)
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	filmsapi.NewHandler(d.DB).Register(r)
	galleriesapi.NewHandler(d.DB).Register(r)
	musicvideosapi.NewHandler(d.DB).Register(r)
	blogapi.NewHandler(d.DB).Register(r)

	mediaapi.NewHandler(d.Store, d.MediaPublicURL, d.MaxUploadBytes).Register(r)

	r.NoRoute(apiutil.NotFound)
}
