package main

import (
	"context"
	"flag"
	"os"
	"time"

	"coffee-storefront/internal/config"
	"coffee-storefront/internal/exporter"
	"coffee-storefront/internal/logger"
	"coffee-storefront/internal/shopify"
	"go.uber.org/zap"
)

func main() {
	var (
		outPath string
		first   int
	)
	flag.StringVar(&outPath, "out", "", "Path of the CSV file to write")
	flag.IntVar(&first, "first", 250, "Maximum number of products to export")
	flag.Parse()

	if outPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	}).Named("export")
	defer func() { _ = log.Sync() }()

	shop, err := shopify.New(shopify.Config{
		StoreDomain: cfg.Shopify.StoreDomain,
		AccessToken: cfg.Shopify.AccessToken,
		APIVersion:  cfg.Shopify.APIVersion,
		Timeout:     cfg.Shopify.Timeout,
	})
	if err != nil {
		log.Fatal("init shopify client", zap.Error(err))
	}

	f, err := os.Create(outPath)
	if err != nil {
		log.Fatal("create output file", zap.Error(err))
	}

	start := time.Now()
	count, err := exporter.NewCSVExporter(f, shop).Run(context.Background(), first)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		log.Fatal("export failed", zap.Error(err))
	}

	log.Info("catalog exported",
		zap.Int("products", count),
		zap.String("file", outPath),
		zap.Duration("took", time.Since(start).Truncate(time.Millisecond)),
	)
}
