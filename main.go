package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/curiokids/backend/config"
	"github.com/curiokids/backend/handlers"
	"github.com/curiokids/backend/log"
	"github.com/curiokids/backend/service"
	"github.com/curiokids/backend/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Init(true)
		log.Logger.Fatal("config", zap.Error(err))
	}
	log.Init(cfg.Dev)
	defer log.Logger.Sync()

	ctx := context.Background()
	db, err := store.NewMongoDB(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Logger.Fatal("mongodb", zap.Error(err))
	}
	defer func() {
		if err := db.Disconnect(context.Background()); err != nil {
			log.Logger.Warn("mongodb disconnect", zap.Error(err))
		}
	}()

	var s3Service *service.S3Service
	if cfg.S3Bucket != "" {
		s3Service, err = service.NewS3Service(ctx, cfg.S3Bucket, cfg.S3Region, cfg.S3AccessKeyID, cfg.S3SecretKey)
		if err != nil {
			log.Logger.Fatal("s3", zap.Error(err))
		}
	} else {
		log.Logger.Warn("AWS_S3_BUCKET not set; media uploads disabled")
	}

	// Left as the interface's nil when SMTP is missing so the status
	// handler's nil check holds.
	var mailer handlers.ReviewNotifier
	if cfg.SMTPHost != "" {
		mailer = service.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	} else {
		log.Logger.Warn("SMTP_HOST not set; review notifications disabled")
	}

	r := handlers.NewRouter(handlers.Deps{
		Users:          db,
		Courses:        db,
		Teachers:       db,
		Mailer:         mailer,
		S3:             s3Service,
		JWTSecret:      cfg.JWTSecret,
		TokenTTL:       time.Duration(cfg.TokenTTLDays) * 24 * time.Hour,
		AllowedOrigins: cfg.AllowedOrigins,
		MaxUploadBytes: cfg.MaxUploadMB * 1024 * 1024,
	})

	server := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		log.Logger.Info("Curio Kids is running", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Logger.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Logger.Warn("shutdown", zap.Error(err))
	}
}
