package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"diamond-stats/internal/analytics"
	"diamond-stats/internal/models"
	"diamond-stats/internal/store"
)

func healthHandler(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"status": "ok", "games": st.Info().Games})
	}
}

func playerGameLogHandler(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "player_id")
		timeframe := models.Timeframe(r.URL.Query().Get("timeframe"))
		records := st.PlayerGameLog(playerID, timeframe)
		if len(records) == 0 {
			writeHTTPError(w, http.StatusNotFound, "player_not_found")
			return
		}
		writeJSON(w, map[string]any{"items": records})
	}
}

func playerTrendsHandler(eng *analytics.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "player_id")
		timeframe := models.Timeframe(r.URL.Query().Get("timeframe"))
		if timeframe == "" {
			timeframe = models.TimeframeLast30
		}
		trends := eng.PlayerTrends(playerID, timeframe)
		if trends.Batting == nil && trends.Pitching == nil {
			writeHTTPError(w, http.StatusNotFound, "player_not_found")
			return
		}
		writeJSON(w, trends)
	}
}

func playerRollingHandler(eng *analytics.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "player_id")
		window := queryInt(r, "window", analytics.DefaultRollingWindow)
		points := eng.RollingAverages(playerID, window)
		// Fewer games than the window is an empty series, not an error.
		writeJSON(w, map[string]any{"window": window, "items": points})
	}
}

func playerVsOpponentHandler(eng *analytics.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vs := eng.PlayerVsOpponent(chi.URLParam(r, "player_id"), chi.URLParam(r, "team"))
		writeJSON(w, vs)
	}
}

func matchupHandler(eng *analytics.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m := eng.BatterVsPitcher(chi.URLParam(r, "batter_id"), chi.URLParam(r, "pitcher_id"))
		writeJSON(w, m)
	}
}

func teamGamesHandler(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		team := chi.URLParam(r, "team")
		timeframe := models.Timeframe(r.URL.Query().Get("timeframe"))
		writeJSON(w, map[string]any{"items": st.TeamGames(team, timeframe)})
	}
}

func teamVsTeamHandler(eng *analytics.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h2h := eng.TeamVsTeam(chi.URLParam(r, "team_a"), chi.URLParam(r, "team_b"))
		writeJSON(w, h2h)
	}
}

func gamesByDateRangeHandler(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start, okStart := queryDate(r, "start")
		end, okEnd := queryDate(r, "end")
		if !okStart || !okEnd || start.After(end) {
			writeHTTPError(w, http.StatusBadRequest, "invalid_date_range")
			return
		}
		writeJSON(w, map[string]any{"items": st.GamesByDateRange(start, end)})
	}
}

func dataInfoHandler(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, st.Info())
	}
}
