package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/asadc0de/husnainatelier/internal/config"
	"github.com/asadc0de/husnainatelier/internal/editor"
	"github.com/asadc0de/husnainatelier/internal/http/router"
	"github.com/asadc0de/husnainatelier/internal/media"
	"github.com/asadc0de/husnainatelier/internal/modules/cart"
	"github.com/asadc0de/husnainatelier/internal/modules/catalog"
)

func main() {
	_ = godotenv.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(log)

	if err := run(log); err != nil {
		log.Error("fatal", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return err
	}

	ctx := context.Background()
	mediaRes, err := media.FromEnv(ctx)
	if err != nil {
		return err
	}
	log.Info("media_driver", slog.String("driver", mediaRes.Driver))

	catalogSvc := catalog.NewService(catalog.NewRepo(db), log)
	cartSvc := cart.NewService(cart.NewRepo(db), catalogSvc)

	session := editor.NewSession(
		media.DataURLPreviewer{},
		media.NewResolver(mediaRes.Storage),
		catalogSvc,
		log,
	)

	engine := router.New(router.Deps{
		Cfg:     cfg,
		Log:     log,
		Catalog: catalogSvc,
		Cart:    cartSvc,
		Session: session,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server_listening", slog.String("addr", cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case sig := <-quit:
		log.Info("shutting_down", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
