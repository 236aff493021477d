package main

import (
	"context"
	"flag"

	"coffee-storefront/internal/config"
	"coffee-storefront/internal/db"
	"coffee-storefront/internal/logger"
	"coffee-storefront/internal/migrate"
	"go.uber.org/zap"
)

func main() {
	var down int
	flag.IntVar(&down, "down", 0, "Roll back N migrations instead of applying all pending ones")
	flag.Parse()

	cfg := config.FromEnv()
	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	}).Named("migrate")
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString, db.Options{MaxConnIdleTime: cfg.DBMaxConnIdle, MaxConnLifetime: cfg.DBMaxConnLife})
	if err != nil {
		log.Fatal("connect db", zap.Error(err))
	}
	defer pool.Close()

	if down > 0 {
		if err := migrate.Rollback(ctx, pool, down); err != nil {
			log.Fatal("roll back migrations", zap.Int("steps", down), zap.Error(err))
		}
	} else if err := migrate.Apply(ctx, pool); err != nil {
		log.Fatal("apply migrations", zap.Error(err))
	}

	version, dirty, ok, err := migrate.Version(ctx, pool)
	if err != nil {
		log.Fatal("read migration version", zap.Error(err))
	}
	if !ok {
		log.Info("no migrations applied")
		return
	}
	log.Info("migrations done", zap.Uint("version", version), zap.Bool("dirty", dirty))
}
