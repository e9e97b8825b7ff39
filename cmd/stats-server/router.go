package main

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"diamond-stats/internal/analytics"
	"diamond-stats/internal/scraper"
	"diamond-stats/internal/store"
)

func newRouter(st *store.Store, eng *analytics.Engine, orch *scraper.Orchestrator) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.With(apiLogMiddleware()).Get("/healthz", healthHandler(st))

	r.Route("/api", func(r chi.Router) {
		r.Use(apiLogMiddleware())

		r.Post("/scrape", scrapeHandler(orch))
		r.Post("/scrape/today", scrapeTodayHandler(orch))
		r.Post("/scrape/backfill", scrapeBackfillHandler(orch))
		r.Post("/scrape/season", scrapeSeasonHandler(orch))
		r.Get("/jobs/active", activeJobsHandler(orch))
		r.Get("/jobs/history", jobHistoryHandler(orch))
		r.Get("/jobs/{job_id}", jobStatusHandler(orch))

		r.Get("/players/{player_id}/gamelog", playerGameLogHandler(st))
		r.Get("/players/{player_id}/trends", playerTrendsHandler(eng))
		r.Get("/players/{player_id}/rolling", playerRollingHandler(eng))
		r.Get("/players/{player_id}/vs/{team}", playerVsOpponentHandler(eng))
		r.Get("/matchups/{batter_id}/{pitcher_id}", matchupHandler(eng))
		r.Get("/teams/{team}/games", teamGamesHandler(st))
		r.Get("/teams/{team_a}/vs/{team_b}", teamVsTeamHandler(eng))
		r.Get("/games", gamesByDateRangeHandler(st))
		r.Get("/data/info", dataInfoHandler(st))
	})

	return r
}
