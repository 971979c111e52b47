package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/bookhive/bookhive-service/config"
	"github.com/bookhive/bookhive-service/internal/handler"
	"github.com/bookhive/bookhive-service/internal/repository"
	"github.com/bookhive/bookhive-service/internal/server"
	authsvc "github.com/bookhive/bookhive-service/internal/service/auth"
	"github.com/bookhive/bookhive-service/internal/service/books"
	"github.com/bookhive/bookhive-service/internal/service/catalog"
	"github.com/bookhive/bookhive-service/internal/service/library"
	"github.com/bookhive/bookhive-service/internal/service/sms"
	"github.com/bookhive/bookhive-service/internal/service/summary"
	"github.com/bookhive/bookhive-service/migrations"
	"github.com/bookhive/bookhive-service/pkg/cache"
	"github.com/bookhive/bookhive-service/pkg/logger"
	"github.com/bookhive/bookhive-service/pkg/postgres"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "bookhive")

	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	store, err := cache.NewRedisCache(context.Background(), cfg.Cache)
	if err != nil {
		log.Fatal("cache init", zap.Error(err))
	}

	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	catalogClient := catalog.NewClient(cfg.Catalog, log)
	booksSvc := books.NewService(repo, catalogClient, store, log)
	summarySvc := summary.NewService(repo, store, summary.NewGeminiGenerator(cfg.Gemini), log)
	librarySvc := library.NewService(repo, log)
	authSvc := authsvc.NewService(repo, store, sms.NewTwilioSender(cfg.Twilio), cfg.JWT, log)

	h := handler.New(booksSvc, summarySvc, librarySvc, authSvc, cfg.JWT, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	db.Close()
	if err := store.Close(); err != nil {
		log.Error("cache close", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
}
