package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dbk/assets-ms-go/internal/cache"
	"github.com/dbk/assets-ms-go/internal/config"
	"github.com/dbk/assets-ms-go/internal/db"
	"github.com/dbk/assets-ms-go/internal/handler/api"
	"github.com/dbk/assets-ms-go/internal/logger"
	cMiddleware "github.com/dbk/assets-ms-go/internal/middleware"
	"github.com/dbk/assets-ms-go/internal/port"
	"github.com/dbk/assets-ms-go/internal/renderer"
	"github.com/dbk/assets-ms-go/internal/repository/mariadb"
	"github.com/dbk/assets-ms-go/internal/storage"
	assetSvc "github.com/dbk/assets-ms-go/internal/usecase/asset"
	reviewSvc "github.com/dbk/assets-ms-go/internal/usecase/review"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database := initDb(ctx, cfg)

	r := initRouter(cfg.JWTPublicKey)

	strg := initStorage(ctx, cfg)

	assetRepo := mariadb.NewAssetRepository(database.DB)
	reviewRepo := mariadb.NewReviewRepository(database.DB)
	links := mariadb.NewLinkStore(database.DB)

	var ca port.Cache
	if cfg.RedisAddr != "" {
		ca = cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
		logger.Info(ctx, "✅  Redis cache enabled")
	} else {
		ca = cache.NewNoop()
		logger.Warn(ctx, "⚠️  Redis not configured, caching is disabled")
	}

	replacerSvc := assetSvc.NewAssetReplacer(assetRepo, links, strg, db.NewUUID)
	r.With(cMiddleware.WithProductID(), cMiddleware.RequireRole("moderator")).
		Post("/admin/products/{productID}/video", api.UploadProductVideoHandler(replacerSvc))
	r.With(cMiddleware.WithProductID(), cMiddleware.RequireRole("moderator")).
		Delete("/admin/products/{productID}/video", api.DeleteProductVideoHandler(replacerSvc))

	r.With(cMiddleware.RequireRole("moderator")).
		Post("/admin/home/hero", api.UploadHomeHeroHandler(replacerSvc))
	r.With(cMiddleware.RequireRole("moderator")).
		Delete("/admin/home/hero", api.DeleteHomeHeroHandler(replacerSvc))

	bannerCreatorSvc := assetSvc.NewBannerCreator(assetRepo, strg, db.NewUUID)
	r.With(cMiddleware.RequireRole("moderator")).
		Post("/admin/banners", api.CreateBannerHandler(bannerCreatorSvc))

	bannerUpdaterSvc := assetSvc.NewBannerUpdater(assetRepo)
	r.With(cMiddleware.WithAssetID(), cMiddleware.RequireRole("moderator")).
		Patch("/admin/banners/{id}", api.UpdateBannerHandler(bannerUpdaterSvc))

	bannerDeleterSvc := assetSvc.NewBannerDeleter(assetRepo, strg)
	r.With(cMiddleware.WithAssetID(), cMiddleware.RequireRole("moderator")).
		Delete("/admin/banners/{id}", api.DeleteBannerHandler(bannerDeleterSvc))

	bannerListerSvc := assetSvc.NewBannerLister(assetRepo)
	r.Get("/banners", api.ListBannersHandler(bannerListerSvc))

	reviewCreatorSvc := reviewSvc.NewReviewCreator(reviewRepo, ca, db.NewUUID)
	r.Post("/reviews", api.CreateReviewHandler(reviewCreatorSvc))

	reviewListerSvc := reviewSvc.NewReviewLister(reviewRepo)
	r.With(cMiddleware.WithProductID()).
		Get("/products/{productID}/reviews", api.ListProductReviewsHandler(reviewListerSvc))

	bulkUpdaterSvc := reviewSvc.NewReviewBulkUpdater(reviewRepo, ca)
	r.With(cMiddleware.RequireRole("moderator")).
		Post("/admin/reviews/status", api.UpdateReviewsStatusHandler(bulkUpdaterSvc))

	ratingGetterSvc := reviewSvc.NewRatingGetter(reviewRepo)
	rendererSvc := renderer.NewHTTPRenderer(ca)
	r.With(cMiddleware.WithProductID()).
		Get("/products/{productID}/rating", api.GetProductRatingHandler(rendererSvc, ratingGetterSvc))

	listenRouter(ctx, r, cfg, database)
}

func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
	logger.Info(ctx, "initialising database...")

	database, err := db.New(cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}

	return database
}

func initRouter(jwtKey string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(cMiddleware.WithDSTAuth(jwtKey))

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func initStorage(ctx context.Context, cfg *config.Settings) port.BlobStore {
	client, err := storage.NewMinioClient(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
	)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}

	strg, err := client.WithBucket(cfg.Bucket)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize bucket %q: %v", cfg.Bucket, err)
		os.Exit(1)
	}

	return strg
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, database *db.Database) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	if err := database.Close(); err != nil {
		logger.Errorf(ctx, "DB close error: %v", err)
		os.Exit(1)
	}
}
