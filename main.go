package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-api/config"
	"portfolio-api/database"
	routes "portfolio-api/internal/app/http"
	"portfolio-api/internal/infra/objectstore"
	"portfolio-api/internal/logging"
)

func main() {
	config.LoadEnv()
	logging.Init(logging.Config{Level: config.LOG_LEVEL, Format: config.LOG_FORMAT})
	database.InitDB()

	store, err := objectstore.New(objectstore.Config{
		Driver:    config.STORAGE_DRIVER,
		Endpoint:  config.S3_ENDPOINT,
		Bucket:    config.S3_BUCKET,
		AccessKey: config.S3_ACCESS_KEY,
		SecretKey: config.S3_SECRET_KEY,
		Region:    config.S3_REGION,
		UseSSL:    config.S3_USE_SSL,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("object store init failed")
	}

	r := routes.NewRouter(routes.Deps{
		DB:             database.DB,
		Store:          store,
		AdminToken:     config.ADMIN_TOKEN,
		MediaPublicURL: config.MEDIA_PUBLIC_URL,
		MaxUploadBytes: config.MAX_UPLOAD_BYTES,
		CORSOrigins:    config.CORS_ORIGINS,
		SanitizeInput:  config.SANITIZE_INPUT,
	})

	srv := &http.Server{
		Addr:              ":" + config.PORT,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logging.Info().Str("addr", srv.Addr).Str("storage", config.STORAGE_DRIVER).Msg("portfolio api listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logging.Error().Err(err).Msg("graceful shutdown failed")
	}
	logging.Info().Msg("server exited")
}
