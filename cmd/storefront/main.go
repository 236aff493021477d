package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coffee-storefront/internal/config"
	"coffee-storefront/internal/contentful"
	"coffee-storefront/internal/db"
	"coffee-storefront/internal/httpserver"
	"coffee-storefront/internal/logger"
	"coffee-storefront/internal/migrate"
	inquiryrepo "coffee-storefront/internal/repository/inquiry"
	"coffee-storefront/internal/repository/session"
	cartsvc "coffee-storefront/internal/service/cart"
	catalogsvc "coffee-storefront/internal/service/catalog"
	contentsvc "coffee-storefront/internal/service/content"
	inquirysvc "coffee-storefront/internal/service/inquiry"
	visitorsvc "coffee-storefront/internal/service/visitor"
	"coffee-storefront/internal/shopify"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	}).Named("api")
	defer func() { _ = log.Sync() }()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	dbpool, err := db.Connect(ctx, cfg.DBConnString, db.Options{
		MaxConns:        int32(cfg.DBMaxConns),
		MaxConnIdleTime: cfg.DBMaxConnIdle,
		MaxConnLifetime: cfg.DBMaxConnLife,
	})
	if err != nil {
		log.Fatal("connect to db", zap.Error(err))
	}
	defer dbpool.Close()

	if err := migrate.Apply(ctx, dbpool); err != nil {
		log.Fatal("apply migrations", zap.Error(err))
	}

	store, closeStore, err := openSessionStore(ctx, cfg.Session, dbpool, log)
	if err != nil {
		log.Fatal("open session store", zap.Error(err))
	}
	defer closeStore()

	shop, err := shopify.New(shopify.Config{
		StoreDomain: cfg.Shopify.StoreDomain,
		AccessToken: cfg.Shopify.AccessToken,
		APIVersion:  cfg.Shopify.APIVersion,
		Timeout:     cfg.Shopify.Timeout,
	})
	if err != nil {
		log.Fatal("init shopify client", zap.Error(err))
	}
	cms, err := contentful.New(contentful.Config{
		SpaceID:      cfg.Contentful.SpaceID,
		AccessToken:  cfg.Contentful.AccessToken,
		PreviewToken: cfg.Contentful.PreviewToken,
		Environment:  cfg.Contentful.Environment,
		Timeout:      cfg.Contentful.Timeout,
	})
	if err != nil {
		log.Fatal("init contentful client", zap.Error(err))
	}

	unit, err := currency.ParseISO(cfg.DefaultCurrency)
	if err != nil {
		log.Fatal("parse default currency", zap.String("currency", cfg.DefaultCurrency), zap.Error(err))
	}

	carts := cartsvc.NewRegistry(store, shop, log.Named("cart"), cartsvc.WithCurrency(unit))
	go carts.RunSweeper(ctx, time.Minute, cfg.Session.IdleTimeout)
	go expireSessions(ctx, store, cfg.Session.TTL, log)

	srv, err := httpserver.New(cfg.HTTPAddr, log, httpserver.Deps{
		Catalog:   catalogsvc.New(shop),
		Content:   contentsvc.New(cms),
		Carts:     carts,
		Inquiries: inquirysvc.New(inquiryrepo.NewPostgres(dbpool, log), log.Named("inquiry")),
		Visitors:  visitorsvc.New(cfg.Session.TTL),
		Sessions:  store,
	}, httpserver.Options{
		CORSOrigins:  cfg.CORSOrigins,
		CookieName:   cfg.Session.CookieName,
		CookieSecure: cfg.Session.CookieSecure,
	})
	if err != nil {
		log.Fatal("init server", zap.Error(err))
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("starting http server", zap.String("addr", cfg.HTTPAddr), zap.String("session_store", cfg.Session.Store))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		log.Info("received signal, shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server error", zap.Error(err))
	}
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	} else {
		log.Info("server stopped")
	}
}

func openSessionStore(ctx context.Context, cfg config.SessionConfig, pool *pgxpool.Pool, log *zap.Logger) (session.Store, func(), error) {
	switch cfg.Store {
	case config.SessionStorePostgres:
		return session.NewPostgres(pool, log.Named("session")), func() {}, nil
	case config.SessionStoreRedis:
		store, err := session.NewRedis(ctx, session.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.TTL,
		})
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	case config.SessionStoreMemory:
		log.Warn("using in-memory session store; carts are lost on restart")
		return session.NewMemory(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown session store %q", cfg.Store)
	}
}

// expireSessions drops session entries untouched for longer than ttl.
func expireSessions(ctx context.Context, store session.Store, ttl time.Duration, log *zap.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := store.Expire(ctx, ttl)
			if err != nil {
				log.Warn("expire sessions failed", zap.Error(err))
				continue
			}
			if n > 0 {
				log.Info("expired session entries", zap.Int64("entries", n))
			}
		}
	}
}
