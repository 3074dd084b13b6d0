package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"vertexit-site/internal/config"
	"vertexit-site/internal/contentcache"
	"vertexit-site/internal/db"
	"vertexit-site/internal/docstore"
	"vertexit-site/internal/httpserver"
	"vertexit-site/internal/identity"
	activitiesrepo "vertexit-site/internal/repository/activities"
	applicationsrepo "vertexit-site/internal/repository/applications"
	faqsrepo "vertexit-site/internal/repository/faqs"
	jobsrepo "vertexit-site/internal/repository/jobs"
	partnersrepo "vertexit-site/internal/repository/partners"
	portfoliorepo "vertexit-site/internal/repository/portfolio"
	pricingrepo "vertexit-site/internal/repository/pricing"
	servicesrepo "vertexit-site/internal/repository/services"
	settingsrepo "vertexit-site/internal/repository/settings"
	teamrepo "vertexit-site/internal/repository/team"
	testimonialsrepo "vertexit-site/internal/repository/testimonials"
	usersrepo "vertexit-site/internal/repository/users"
	"vertexit-site/internal/sitegen"
	"vertexit-site/internal/storage"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	store := docstore.NewPostgres(dbpool)

	servicesRepo := servicesrepo.New(store)
	jobsRepo := jobsrepo.New(store)
	applicationsRepo := applicationsrepo.New(store)
	portfolioRepo := portfoliorepo.New(store)
	pricingRepo := pricingrepo.New(store)
	testimonialsRepo := testimonialsrepo.New(store)
	partnersRepo := partnersrepo.New(store)
	teamRepo := teamrepo.New(store)
	activitiesRepo := activitiesrepo.New(store)
	faqsRepo := faqsrepo.New(store)
	settingsRepo := settingsrepo.New(store)
	usersRepo := usersrepo.New(store)

	tokens, err := identity.NewRedisTokenStore(cfg.RedisURL, cfg.SessionTTL)
	if err != nil {
		logger.Fatalf("connect to redis: %v", err)
	}
	defer tokens.Close()

	provider := identity.NewPasswordProvider(usersRepo, tokens)
	sessions := identity.NewSessionStore(provider)
	defer sessions.Close()

	sitemap := sitegen.New(cfg.SiteURL, logger, sitegen.ContentFetchers{
		Services:  servicesRepo.FetchPublished,
		Jobs:      jobsRepo.FetchPublished,
		Portfolio: portfolioRepo.FetchPublished,
	})

	var uploader storage.Uploader
	if cfg.MinioEndpoint != "" {
		uploader, err = storage.NewMinio(ctx, storage.Config{
			Endpoint:      cfg.MinioEndpoint,
			AccessKey:     cfg.MinioAccessKey,
			SecretKey:     cfg.MinioSecretKey,
			Bucket:        cfg.MinioBucket,
			UseSSL:        cfg.MinioUseSSL,
			PublicBaseURL: cfg.MinioPublicURL,
		})
		if err != nil {
			logger.Fatalf("connect to object storage: %v", err)
		}
	} else {
		logger.Println("MINIO_ENDPOINT not set, uploads disabled")
	}

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Services:      servicesRepo,
		Jobs:          jobsRepo,
		Applications:  applicationsRepo,
		Portfolio:     portfolioRepo,
		Pricing:       pricingRepo,
		Testimonials:  testimonialsRepo,
		Partners:      partnersRepo,
		Team:          teamRepo,
		Activities:    activitiesRepo,
		FAQs:          faqsRepo,
		Settings:      settingsRepo,
		Provider:      provider,
		Sessions:      sessions,
		Sitemap:       sitemap,
		Uploader:      uploader,
		Cache:         contentcache.New(cfg.ContentCacheTTL),
		SiteName:      cfg.SiteName,
		SiteURL:       cfg.SiteURL,
		CORSOrigin:    cfg.CORSOrigin,
		SessionTTL:    cfg.SessionTTL,
		LoginAttempts: cfg.LoginAttempts,
		LoginWindow:   cfg.LoginWindow,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
