package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"diamond-stats/internal/scraper"
)

type scrapeRequest struct {
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	ForceRefresh bool   `json:"force_refresh"`
}

func scrapeHandler(orch *scraper.Orchestrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req scrapeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		start, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			writeHTTPError(w, http.StatusBadRequest, "invalid_start_date")
			return
		}
		end, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			writeHTTPError(w, http.StatusBadRequest, "invalid_end_date")
			return
		}

		jobID, err := orch.BulkScrapeGames(r.Context(), start, end, req.ForceRefresh)
		if err != nil {
			writeScrapeError(w, err)
			return
		}
		w.WriteHeader(http.StatusAccepted)
		writeJSON(w, map[string]any{"job_id": jobID})
	}
}

func scrapeTodayHandler(orch *scraper.Orchestrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobID, err := orch.DiscoverAndScrapeToday(r.Context())
		if err != nil {
			writeScrapeError(w, err)
			return
		}
		w.WriteHeader(http.StatusAccepted)
		writeJSON(w, map[string]any{"job_id": jobID})
	}
}

func scrapeBackfillHandler(orch *scraper.Orchestrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobID, err := orch.BackfillMissingGames(r.Context())
		if err != nil {
			writeScrapeError(w, err)
			return
		}
		w.WriteHeader(http.StatusAccepted)
		writeJSON(w, map[string]any{"job_id": jobID})
	}
}

func scrapeSeasonHandler(orch *scraper.Orchestrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year := queryInt(r, "year", time.Now().Year())
		jobID, err := orch.ScrapeSeason(r.Context(), year)
		if err != nil {
			writeScrapeError(w, err)
			return
		}
		w.WriteHeader(http.StatusAccepted)
		writeJSON(w, map[string]any{"job_id": jobID})
	}
}

func jobStatusHandler(orch *scraper.Orchestrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		job, ok := orch.JobStatus(chi.URLParam(r, "job_id"))
		if !ok {
			writeHTTPError(w, http.StatusNotFound, "job_not_found")
			return
		}
		writeJSON(w, job)
	}
}

func activeJobsHandler(orch *scraper.Orchestrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"items": orch.ActiveJobs()})
	}
}

func jobHistoryHandler(orch *scraper.Orchestrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := queryInt(r, "limit", 0)
		writeJSON(w, map[string]any{"items": orch.JobHistory(limit)})
	}
}

func writeScrapeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, scraper.ErrInvalidRange):
		writeHTTPError(w, http.StatusBadRequest, "invalid_date_range")
	case errors.Is(err, scraper.ErrPaused):
		writeHTTPError(w, http.StatusConflict, "scraper_paused")
	default:
		writeHTTPError(w, http.StatusInternalServerError, "internal_error")
	}
}
