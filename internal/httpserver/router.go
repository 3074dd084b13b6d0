package httpserver

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"vertexit-site/internal/contentcache"
	"vertexit-site/internal/domain"
	"vertexit-site/internal/identity"
	"vertexit-site/internal/repository/activities"
	"vertexit-site/internal/repository/applications"
	"vertexit-site/internal/repository/faqs"
	"vertexit-site/internal/repository/jobs"
	"vertexit-site/internal/repository/partners"
	"vertexit-site/internal/repository/portfolio"
	"vertexit-site/internal/repository/pricing"
	"vertexit-site/internal/repository/services"
	"vertexit-site/internal/repository/settings"
	"vertexit-site/internal/repository/team"
	"vertexit-site/internal/repository/testimonials"
	"vertexit-site/internal/sitegen"
	"vertexit-site/internal/storage"
)

// Deps carries everything the router needs. Content repositories and the
// identity pair are required; sitemap, uploader and cache are optional so
// tests can wire only what they exercise.
type Deps struct {
	Services     services.Repository
	Jobs         jobs.Repository
	Applications applications.Repository
	Portfolio    portfolio.Repository
	Pricing      pricing.Repository
	Testimonials testimonials.Repository
	Partners     partners.Repository
	Team         team.Repository
	Activities   activities.Repository
	FAQs         faqs.Repository
	Settings     settings.Repository

	Provider identity.Provider
	Sessions *identity.SessionStore

	Sitemap  *sitegen.Builder
	Uploader storage.Uploader
	Cache    *contentcache.Cache

	SiteName       string
	SiteURL        string
	CORSOrigin     string
	SessionTTL     time.Duration
	LoginAttempts  int
	LoginWindow    time.Duration
	AdminLoginPath string
}

// contentRepository is the method set shared by every listable content
// collection. The per-collection repository interfaces all satisfy it.
type contentRepository[T any] interface {
	Fetch(ctx context.Context) ([]T, error)
	FetchPublished(ctx context.Context) ([]T, error)
	Save(ctx context.Context, item T) (string, error)
	Delete(ctx context.Context, id string) error
}

func buildRouter(logger *log.Logger, deps Deps) (*gin.Engine, error) {
	if deps.Provider == nil || deps.Sessions == nil {
		return nil, errors.New("httpserver: identity provider and session store are required")
	}
	if deps.Settings == nil {
		return nil, errors.New("httpserver: settings repository is required")
	}
	if deps.Cache == nil {
		deps.Cache = contentcache.New(time.Minute)
	}
	if deps.LoginAttempts <= 0 {
		deps.LoginAttempts = 5
	}
	if deps.LoginWindow <= 0 {
		deps.LoginWindow = time.Minute
	}
	if deps.AdminLoginPath == "" {
		deps.AdminLoginPath = "/admin/login"
	}

	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	if deps.CORSOrigin != "" {
		cfg := cors.DefaultConfig()
		cfg.AllowOrigins = []string{deps.CORSOrigin}
		cfg.AllowCredentials = true
		cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
		router.Use(cors.New(cfg))
	}

	h := &handlers{
		logger:  logger,
		deps:    deps,
		limiter: newLoginLimiter(deps.LoginAttempts, deps.LoginWindow),
		settings: contentcache.Cached(deps.Cache, "settings", func(ctx context.Context) (*domain.Settings, error) {
			return deps.Settings.Get(ctx)
		}),
	}

	router.GET("/healthz", healthHandler)
	router.GET("/sitemap.xml", h.sitemapXML)
	router.GET("/robots.txt", h.robotsTXT)

	api := router.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/login", h.login)
	auth.POST("/logout", h.logout)
	auth.GET("/session", h.session)

	admin := api.Group("/admin")
	admin.Use(h.adminGate())

	registerContent(api, admin, deps.Cache, "services", deps.Services, func(v *domain.Service, id string) { v.ID = id })
	registerContent(api, admin, deps.Cache, "jobs", deps.Jobs, func(v *domain.Job, id string) { v.ID = id })
	registerContent(api, admin, deps.Cache, "portfolio", deps.Portfolio, func(v *domain.PortfolioItem, id string) { v.ID = id })
	registerContent(api, admin, deps.Cache, "pricing", deps.Pricing, func(v *domain.Plan, id string) { v.ID = id })
	registerContent(api, admin, deps.Cache, "testimonials", deps.Testimonials, func(v *domain.Testimonial, id string) { v.ID = id })
	registerContent(api, admin, deps.Cache, "partners", deps.Partners, func(v *domain.Partner, id string) { v.ID = id })
	registerContent(api, admin, deps.Cache, "team", deps.Team, func(v *domain.TeamMember, id string) { v.ID = id })
	registerContent(api, admin, deps.Cache, "activities", deps.Activities, func(v *domain.Activity, id string) { v.ID = id })
	registerContent(api, admin, deps.Cache, "faqs", deps.FAQs, func(v *domain.FAQ, id string) { v.ID = id })

	api.GET("/jobs/:slug", h.jobBySlug)
	api.GET("/settings", h.publicSettings)
	api.GET("/meta", h.pageMeta)
	api.POST("/applications", h.submitApplication)

	admin.GET("/settings", h.adminSettings)
	admin.PUT("/settings", h.saveSettings)
	admin.GET("/applications", h.listApplications)
	admin.DELETE("/applications/:id", h.deleteApplication)
	admin.POST("/uploads", h.upload)
	admin.DELETE("/uploads", h.deleteUpload)

	return router, nil
}

type handlers struct {
	logger   *log.Logger
	deps     Deps
	limiter  *loginLimiter
	settings func(ctx context.Context) (*domain.Settings, error)
}

// registerContent wires the public list route and the admin CRUD routes
// for one collection. The public route serves published documents through
// the cache and degrades to an empty list when the store is unreachable;
// the marketing pages must keep rendering through a database outage.
func registerContent[T any](public, admin *gin.RouterGroup, cache *contentcache.Cache, name string, repo contentRepository[T], setID func(*T, string)) {
	published := contentcache.Cached(cache, name, repo.FetchPublished)

	public.GET("/"+name, func(c *gin.Context) {
		items, err := published(c.Request.Context())
		if err != nil {
			items = []T{}
		}
		if items == nil {
			items = []T{}
		}
		c.JSON(http.StatusOK, items)
	})

	admin.GET("/"+name, func(c *gin.Context) {
		items, err := repo.Fetch(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		if items == nil {
			items = []T{}
		}
		c.JSON(http.StatusOK, items)
	})

	admin.POST("/"+name, func(c *gin.Context) {
		var item T
		if err := c.ShouldBindJSON(&item); err != nil {
			writeError(c, domain.Invalid("body", "malformed json"))
			return
		}
		id, err := repo.Save(c.Request.Context(), item)
		if err != nil {
			writeError(c, err)
			return
		}
		cache.Invalidate(name)
		c.JSON(http.StatusCreated, gin.H{"id": id})
	})

	admin.PUT("/"+name+"/:id", func(c *gin.Context) {
		var item T
		if err := c.ShouldBindJSON(&item); err != nil {
			writeError(c, domain.Invalid("body", "malformed json"))
			return
		}
		setID(&item, c.Param("id"))
		id, err := repo.Save(c.Request.Context(), item)
		if err != nil {
			writeError(c, err)
			return
		}
		cache.Invalidate(name)
		c.JSON(http.StatusOK, gin.H{"id": id})
	})

	admin.DELETE("/"+name+"/:id", func(c *gin.Context) {
		if err := repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		cache.Invalidate(name)
		c.Status(http.StatusNoContent)
	})
}
