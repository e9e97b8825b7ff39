package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"diamond-stats/internal/analytics"
	"diamond-stats/internal/cache"
	"diamond-stats/internal/config"
	"diamond-stats/internal/fetch"
	"diamond-stats/internal/logging"
	"diamond-stats/internal/scraper"
	"diamond-stats/internal/store"
)

func main() {
	cfg, err := config.LoadApp()
	if err != nil {
		panic(err)
	}
	logging.Init(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var jobCache cache.Cache
	redisCache, err := cache.Dial(ctx, cfg.Server.RedisURL)
	if err != nil {
		log.Warn().Err(err).Str("url", cfg.Server.RedisURL).Msg("redis unavailable, using in-process cache")
		jobCache = cache.NewMemory()
	} else {
		defer redisCache.Close()
		jobCache = redisCache
	}

	st, err := store.New(cfg.Server.SnapshotPath)
	if err != nil {
		log.Fatal().Err(err).Msg("store init failed")
	}
	info := st.Info()
	log.Info().Int("games", info.Games).Int("players", info.Players).Msg("store loaded")

	fetcher := fetch.NewClient(cfg.Server.StatsAPIBaseURL, cfg.Scraper.FetchTimeout)
	orch := scraper.NewOrchestrator(ctx, st, fetcher, jobCache, cfg.Scraper)
	engine := analytics.New(st)

	r := newRouter(st, engine, orch)
	server := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Server.HTTPAddr).Msg("http listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
