package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/markme/markme-api/internal/config"
	"github.com/markme/markme-api/internal/database"
	"github.com/markme/markme-api/internal/middleware"
	"github.com/markme/markme-api/internal/repository"
	"github.com/markme/markme-api/internal/routes"
	"github.com/markme/markme-api/internal/service"
	"github.com/markme/markme-api/internal/websocket"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
	log.Println("Server stopped")
}

func run(cfg config.Config) error {
	debugf := func(format string, args ...any) {
		if cfg.Debug() {
			log.Printf("[DEBUG] "+format, args...)
		}
	}
	debugf("config loaded: store=%s db=%s port=%s origins=%v rate=%d/%s timeout=%s",
		cfg.StoreDriver, cfg.DBName, cfg.Port, cfg.AllowedOrigins,
		cfg.RateLimitMax, cfg.RateLimitWindow, cfg.RequestTimeout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		students   repository.StudentRepository
		attendance repository.AttendanceRepository
	)
	switch cfg.StoreDriver {
	case config.DriverMemory:
		store := repository.NewMemoryStore()
		students, attendance = store, store
		log.Println("Using in-memory store, data is lost on exit")
	default:
		client, err := database.ConnectDB(ctx, cfg.MongoURI)
		if err != nil {
			return fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		defer database.Disconnect(client)

		db := client.Database(cfg.DBName)
		if err := database.EnsureIndexes(ctx, db); err != nil {
			return fmt.Errorf("failed to create indexes: %w", err)
		}
		debugf("indexes ensured on %s", cfg.DBName)

		students = repository.NewMongoStudentRepository(db)
		attendance = repository.NewMongoAttendanceRepository(db)
	}

	hub := websocket.NewHub(middleware.OriginAllowed(cfg.AllowedOrigins))
	router := routes.NewRouter(routes.Deps{
		Directory:       service.NewStudentDirectory(students),
		Ledger:          service.NewAttendanceLedger(attendance, hub),
		Hub:             hub,
		AllowedOrigins:  cfg.AllowedOrigins,
		RateLimitMax:    cfg.RateLimitMax,
		RateLimitWindow: cfg.RateLimitWindow,
		RequestTimeout:  cfg.RequestTimeout,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Server running on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		hub.Close()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
