// cmd/store.go
package cmd

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lord-charite/blogApp/internal/config"
	"github.com/lord-charite/blogApp/internal/database"
	"github.com/lord-charite/blogApp/internal/store"
)

var forceMemory bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&forceMemory, "memory", false, "Use the in-memory store regardless of configuration")
}

// newLogger writes to stderr so log lines never mix with rendered
// output on stdout.
func newLogger() *zap.Logger {
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// openStore selects the configured backend. A database backend that
// cannot be reached is a warning, not a failure: the interpreter falls
// back to the in-memory store and keeps going.
func openStore(ctx context.Context, cfg *config.Config, log *zap.Logger) store.Store {
	if forceMemory {
		log.Info("using in-memory store")
		return store.NewMemory()
	}

	switch cfg.Storage.Backend {
	case "mongo":
		timeout := time.Duration(cfg.Storage.TimeoutSeconds) * time.Second
		st, err := store.NewMongo(ctx, cfg.Storage.MongoURI,
			cfg.Storage.MongoDatabase, cfg.Storage.MongoCollection, timeout)
		if err != nil {
			log.Warn("mongo unavailable, falling back to in-memory store", zap.Error(err))
			return store.NewMemory()
		}
		log.Info("connected to mongo", zap.String("uri", cfg.Storage.MongoURI))
		return st

	case "sqlite":
		db, err := database.New(config.DBPath())
		if err != nil {
			log.Warn("sqlite unavailable, falling back to in-memory store", zap.Error(err))
			return store.NewMemory()
		}
		log.Info("opened sqlite store", zap.String("path", config.DBPath()))
		return store.NewSQLite(db)

	case "memory":
		log.Info("using in-memory store")
		return store.NewMemory()

	default:
		log.Warn("unknown storage backend, using in-memory store",
			zap.String("backend", cfg.Storage.Backend))
		return store.NewMemory()
	}
}

func closeStore(ctx context.Context, st store.Store, log *zap.Logger) {
	if err := st.Close(ctx); err != nil {
		log.Warn(fmt.Sprintf("failed to close store: %v", err))
	}
}
