package scraper

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"diamond-stats/internal/cache"
	"diamond-stats/internal/models"
)

// Registry owns the scrape job records. It is constructed and injected, not
// ambient state, and it mirrors every mutation into the cache so job history
// survives a restart.
type Registry struct {
	mu    sync.Mutex
	jobs  map[string]*models.ScrapeJob
	cache cache.Cache
}

// NewRegistry restores any persisted jobs from the cache. Jobs that were
// queued or running when the process died are marked failed: their goroutines
// are gone and nothing will ever finish them.
func NewRegistry(ctx context.Context, c cache.Cache) *Registry {
	r := &Registry{
		jobs:  make(map[string]*models.ScrapeJob),
		cache: c,
	}

	data, ok := c.Get(ctx, cache.JobsKey())
	if !ok {
		return r
	}
	var restored []models.ScrapeJob
	if err := json.Unmarshal(data, &restored); err != nil {
		log.Warn().Err(err).Msg("discarding unreadable job snapshot")
		return r
	}
	for i := range restored {
		job := restored[i]
		if job.Status == models.JobQueued || job.Status == models.JobRunning {
			job.Status = models.JobFailed
			job.Error = "interrupted by restart"
			job.CompletedAt = time.Now()
		}
		r.jobs[job.ID] = &job
	}
	return r
}

// Create registers a new queued job and returns a copy of it.
func (r *Registry) Create(ctx context.Context, start, end time.Time) models.ScrapeJob {
	job := &models.ScrapeJob{
		ID:        newJobID(),
		StartDate: start,
		EndDate:   end,
		Status:    models.JobQueued,
		CreatedAt: time.Now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[job.ID] = job
	r.persistLocked(ctx)
	return *job
}

// Update applies fn to the job under the registry lock and persists the
// result. Unknown ids are ignored.
func (r *Registry) Update(ctx context.Context, id string, fn func(*models.ScrapeJob)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return
	}
	fn(job)
	r.persistLocked(ctx)
}

// Get returns a copy of one job.
func (r *Registry) Get(id string) (models.ScrapeJob, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return models.ScrapeJob{}, false
	}
	return *job, true
}

// Active returns jobs that are queued or running, newest first.
func (r *Registry) Active() []models.ScrapeJob {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.ScrapeJob
	for _, job := range r.jobs {
		if job.Status == models.JobQueued || job.Status == models.JobRunning {
			out = append(out, *job)
		}
	}
	sortJobsNewestFirst(out)
	return out
}

// History returns up to limit jobs, newest first.
func (r *Registry) History(limit int) []models.ScrapeJob {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.ScrapeJob, 0, len(r.jobs))
	for _, job := range r.jobs {
		out = append(out, *job)
	}
	sortJobsNewestFirst(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (r *Registry) persistLocked(ctx context.Context) {
	jobs := make([]models.ScrapeJob, 0, len(r.jobs))
	for _, job := range r.jobs {
		jobs = append(jobs, *job)
	}
	data, err := json.Marshal(jobs)
	if err != nil {
		log.Warn().Err(err).Msg("encoding job snapshot failed")
		return
	}
	r.cache.Set(ctx, cache.JobsKey(), data, 0)
}

func sortJobsNewestFirst(jobs []models.ScrapeJob) {
	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
	})
}
