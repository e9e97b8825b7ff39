package scraper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"diamond-stats/internal/cache"
	"diamond-stats/internal/config"
	"diamond-stats/internal/fetch"
	"diamond-stats/internal/models"
	"diamond-stats/internal/store"
)

var (
	ErrInvalidRange = errors.New("invalid_date_range")
	ErrPaused       = errors.New("scraper_paused")
)

// Orchestrator discovers games over date ranges and drives batched,
// rate-limited fetch+store cycles. Submission is synchronous, execution is a
// supervised background task: whatever goes wrong inside a job lands in the
// job record, never in the submitting caller.
type Orchestrator struct {
	store    *store.Store
	fetcher  fetch.Fetcher
	cache    cache.Cache
	cfg      config.ScraperConfig
	registry *Registry
	paused   atomic.Bool
}

func NewOrchestrator(ctx context.Context, st *store.Store, f fetch.Fetcher, c cache.Cache, cfg config.ScraperConfig) *Orchestrator {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 5
	}
	return &Orchestrator{
		store:    st,
		fetcher:  f,
		cache:    c,
		cfg:      cfg,
		registry: NewRegistry(ctx, c),
	}
}

// BulkScrapeGames validates the range, registers a queued job, and returns
// its id immediately. The work itself runs in the background.
func (o *Orchestrator) BulkScrapeGames(ctx context.Context, start, end time.Time, forceRefresh bool) (string, error) {
	if start.After(end) {
		return "", ErrInvalidRange
	}
	if o.paused.Load() {
		return "", ErrPaused
	}

	job := o.registry.Create(ctx, start, end)
	log.Info().Str("job_id", job.ID).
		Str("start", start.Format("2006-01-02")).
		Str("end", end.Format("2006-01-02")).
		Bool("force_refresh", forceRefresh).
		Msg("scrape job queued")

	// Detach from the caller: an HTTP request ending must not cancel the job.
	go o.runJob(context.WithoutCancel(ctx), job.ID, start, end, forceRefresh)
	return job.ID, nil
}

// DiscoverAndScrapeToday scrapes just the current day.
func (o *Orchestrator) DiscoverAndScrapeToday(ctx context.Context) (string, error) {
	today := time.Now().Truncate(24 * time.Hour)
	return o.BulkScrapeGames(ctx, today, today, false)
}

// BackfillMissingGames re-walks the recent lookback window; anything already
// cached is skipped, so this only fills holes.
func (o *Orchestrator) BackfillMissingGames(ctx context.Context) (string, error) {
	end := time.Now().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -o.cfg.BackfillDays)
	return o.BulkScrapeGames(ctx, start, end, false)
}

// ScrapeSeason covers the regular season window for one year.
func (o *Orchestrator) ScrapeSeason(ctx context.Context, year int) (string, error) {
	start := time.Date(year, time.March, 20, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.September, 30, 0, 0, 0, 0, time.UTC)
	return o.BulkScrapeGames(ctx, start, end, false)
}

func (o *Orchestrator) JobStatus(id string) (models.ScrapeJob, bool) {
	return o.registry.Get(id)
}

func (o *Orchestrator) ActiveJobs() []models.ScrapeJob {
	return o.registry.Active()
}

func (o *Orchestrator) JobHistory(limit int) []models.ScrapeJob {
	if limit <= 0 || limit > o.cfg.JobHistoryLimit {
		limit = o.cfg.JobHistoryLimit
	}
	return o.registry.History(limit)
}

// Pause stops new jobs from being accepted. In-flight jobs run to
// completion; there is no mid-job cancel.
func (o *Orchestrator) Pause()  { o.paused.Store(true) }
func (o *Orchestrator) Resume() { o.paused.Store(false) }
func (o *Orchestrator) Paused() bool {
	return o.paused.Load()
}

// runJob executes the three phases. Individual game failures only move
// counters; the job itself fails only on an error or panic escaping the
// phase loop.
func (o *Orchestrator) runJob(ctx context.Context, jobID string, start, end time.Time, forceRefresh bool) {
	defer func() {
		if rec := recover(); rec != nil {
			o.failJob(ctx, jobID, fmt.Sprintf("panic: %v", rec))
		}
	}()

	o.registry.Update(ctx, jobID, func(j *models.ScrapeJob) {
		j.Status = models.JobRunning
		j.StartedAt = time.Now()
	})

	discovered := o.discoverRange(ctx, start, end)
	pending := o.filterCached(ctx, discovered, forceRefresh)

	o.registry.Update(ctx, jobID, func(j *models.ScrapeJob) {
		j.Progress.Total = len(pending)
	})
	log.Info().Str("job_id", jobID).
		Int("discovered", len(discovered)).
		Int("pending", len(pending)).
		Msg("scrape job starting batches")

	o.scrapeBatches(ctx, jobID, pending)

	o.registry.Update(ctx, jobID, func(j *models.ScrapeJob) {
		j.Status = models.JobCompleted
		j.CompletedAt = time.Now()
	})
	if job, ok := o.registry.Get(jobID); ok {
		log.Info().Str("job_id", jobID).
			Int("completed", job.Progress.Completed).
			Int("failed", job.Progress.Failed).
			Msg("scrape job finished")
	}
}

// discoverRange lists candidate game ids for every day in the inclusive
// range. A failed day is logged and skipped, never fatal.
func (o *Orchestrator) discoverRange(ctx context.Context, start, end time.Time) []string {
	var ids []string
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		dayCtx, cancel := context.WithTimeout(ctx, o.cfg.FetchTimeout)
		games, err := o.fetcher.DiscoverGames(dayCtx, day)
		cancel()
		if err != nil {
			log.Warn().Err(err).Str("date", day.Format("2006-01-02")).Msg("discovery failed for day")
			continue
		}

		dayIDs := make([]string, 0, len(games))
		for _, g := range games {
			ids = append(ids, g.GameID)
			dayIDs = append(dayIDs, g.GameID)
		}
		if data, err := json.Marshal(dayIDs); err == nil {
			o.cache.Set(ctx, cache.GameListKey(day), data, cache.GameListTTL)
		}
	}
	return ids
}

// filterCached drops ids whose box score is already cached. A cached id is
// trusted as scraped without freshness re-validation.
func (o *Orchestrator) filterCached(ctx context.Context, ids []string, forceRefresh bool) []string {
	if forceRefresh {
		return ids
	}
	pending := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := o.cache.Get(ctx, cache.BoxScoreKey(id)); ok {
			continue
		}
		pending = append(pending, id)
	}
	return pending
}

// scrapeBatches walks the pending ids in fixed-size batches. Tasks within a
// batch run concurrently and the batch joins before the next one starts;
// the inter-batch delay is the sole rate limit against the source.
func (o *Orchestrator) scrapeBatches(ctx context.Context, jobID string, ids []string) {
	for i := 0; i < len(ids); i += o.cfg.BatchSize {
		batch := ids[i:min(i+o.cfg.BatchSize, len(ids))]

		var wg sync.WaitGroup
		for _, id := range batch {
			wg.Add(1)
			go func(gameID string) {
				defer wg.Done()
				o.scrapeOne(ctx, jobID, gameID)
			}(id)
		}
		wg.Wait()

		if i+o.cfg.BatchSize < len(ids) && o.cfg.BatchDelay > 0 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(o.cfg.BatchDelay):
			}
		}
	}
}

// scrapeOne fetches and stores a single game. Every failure mode, including
// a panic inside the fetcher, ends as a failed counter increment.
func (o *Orchestrator) scrapeOne(ctx context.Context, jobID, gameID string) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Str("game_id", gameID).Interface("panic", rec).Msg("scrape task panicked")
			o.bumpFailed(ctx, jobID)
		}
	}()

	fetchCtx, cancel := context.WithTimeout(ctx, o.cfg.FetchTimeout)
	box, err := o.fetcher.FetchBoxScore(fetchCtx, gameID)
	cancel()
	if err != nil {
		log.Warn().Err(err).Str("game_id", gameID).Msg("box score fetch failed")
		o.bumpFailed(ctx, jobID)
		return
	}
	if box == nil {
		log.Warn().Str("game_id", gameID).Msg("box score not available")
		o.bumpFailed(ctx, jobID)
		return
	}

	if err := o.store.StoreBoxScore(*box); err != nil {
		log.Warn().Err(err).Str("game_id", gameID).Msg("box score store failed")
		o.bumpFailed(ctx, jobID)
		return
	}
	o.cacheBoxScore(ctx, *box)

	o.registry.Update(ctx, jobID, func(j *models.ScrapeJob) {
		j.Progress.Completed++
	})
}

func (o *Orchestrator) cacheBoxScore(ctx context.Context, box models.BoxScore) {
	data, err := json.Marshal(box)
	if err != nil {
		return
	}
	ttl := cache.LiveGameTTL
	if box.GameInfo.Status == models.StatusFinal {
		ttl = cache.FinalGameTTL
	}
	o.cache.Set(ctx, cache.BoxScoreKey(box.GameInfo.GameID), data, ttl)
}

func (o *Orchestrator) bumpFailed(ctx context.Context, jobID string) {
	o.registry.Update(ctx, jobID, func(j *models.ScrapeJob) {
		j.Progress.Failed++
	})
}

func (o *Orchestrator) failJob(ctx context.Context, jobID, msg string) {
	log.Error().Str("job_id", jobID).Str("error", msg).Msg("scrape job failed")
	o.registry.Update(ctx, jobID, func(j *models.ScrapeJob) {
		j.Status = models.JobFailed
		j.Error = msg
		j.CompletedAt = time.Now()
	})
}
