package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"notevault/cache"
	"notevault/config"
	"notevault/library"
	"notevault/logger"
	"notevault/storage"
	"notevault/store"

	"github.com/redis/go-redis/v9"
)

// Start loads the library document and serves the API until SIGINT or
// SIGTERM. The document lives in memory; only /api/saveLibrary writes it
// back, plus one final save during shutdown.
func Start() error {
	cfg := config.Load()

	logger.Init(logger.Config{
		Level:      logger.LogLevel(cfg.LogLevel),
		OutputPath: cfg.LogPath,
		MaxSize:    100,
		MaxBackups: 5,
		MaxAge:     30,
		Compress:   true,
	})

	st := store.New(cfg.LibraryFile)
	lib, err := st.Load()
	if err != nil {
		return fmt.Errorf("load library %s: %w", cfg.LibraryFile, err)
	}
	logger.Info("library loaded",
		logger.String("path", cfg.LibraryFile),
		logger.Int("albums", len(lib.Albums)),
		logger.Int("musics", len(lib.Musics)),
		logger.Int("files", len(lib.Files)))

	objects, err := newObjectStore(cfg)
	if err != nil {
		return fmt.Errorf("init object storage: %w", err)
	}

	var redisClient *redis.Client
	if cfg.RedisHost != "" {
		redisClient, err = cache.Connect(cfg)
		if err != nil {
			logger.Warn("redis unavailable, using in-memory session tracking", logger.ErrorField(err))
			redisClient = nil
		}
	}
	sessions := cache.NewSessionCache(redisClient)

	mgr := library.NewManager(lib)
	musics := library.NewMusicManager(mgr)
	files := library.NewFileManager(mgr, objects)

	handler := NewAPIHandler(mgr, musics, files, st, sessions)
	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      NewRouter(handler),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", logger.String("addr", cfg.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case sig := <-quit:
		logger.Info("shutting down", logger.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", logger.ErrorField(err))
	}

	if err := st.Save(mgr.Library()); err != nil {
		return fmt.Errorf("final save: %w", err)
	}
	logger.Info("library saved", logger.String("path", st.Path()))
	return nil
}

func newObjectStore(cfg *config.Config) (storage.ObjectStore, error) {
	switch cfg.StorageBackend {
	case "minio":
		return storage.NewMinioStore(cfg)
	case "disk", "":
		return storage.NewDiskStore(cfg.CacheDir)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
