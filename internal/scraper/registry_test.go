package scraper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"diamond-stats/internal/cache"
	"diamond-stats/internal/models"
)

func TestRegistryPersistsToCache(t *testing.T) {
	mem := cache.NewMemory()
	ctx := context.Background()

	r := NewRegistry(ctx, mem)
	job := r.Create(ctx, day(1), day(2))

	data, ok := mem.Get(ctx, cache.JobsKey())
	if !ok {
		t.Fatal("registry did not persist to cache")
	}
	var restored []models.ScrapeJob
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("snapshot not valid JSON: %v", err)
	}
	if len(restored) != 1 || restored[0].ID != job.ID {
		t.Fatalf("snapshot = %+v, want the created job", restored)
	}
}

func TestRegistryRestoreMarksInterrupted(t *testing.T) {
	mem := cache.NewMemory()
	ctx := context.Background()

	seed := []models.ScrapeJob{
		{ID: "done", Status: models.JobCompleted, CreatedAt: time.Now().Add(-time.Hour)},
		{ID: "inflight", Status: models.JobRunning, CreatedAt: time.Now()},
	}
	data, _ := json.Marshal(seed)
	mem.Set(ctx, cache.JobsKey(), data, 0)

	r := NewRegistry(ctx, mem)

	done, ok := r.Get("done")
	if !ok || done.Status != models.JobCompleted {
		t.Fatalf("completed job mangled on restore: %+v", done)
	}
	inflight, ok := r.Get("inflight")
	if !ok {
		t.Fatal("running job lost on restore")
	}
	if inflight.Status != models.JobFailed || inflight.Error != "interrupted by restart" {
		t.Fatalf("running job = %+v, want failed/interrupted", inflight)
	}
}

func TestRegistryRestoreDiscardsBadSnapshot(t *testing.T) {
	mem := cache.NewMemory()
	ctx := context.Background()
	mem.Set(ctx, cache.JobsKey(), []byte("{not json"), 0)

	r := NewRegistry(ctx, mem)
	if hist := r.History(0); len(hist) != 0 {
		t.Fatalf("history = %d entries from bad snapshot, want 0", len(hist))
	}
}

func TestRegistryUpdateUnknownID(t *testing.T) {
	r := NewRegistry(context.Background(), cache.NewMemory())
	// Must not panic or create a phantom job.
	r.Update(context.Background(), "nope", func(j *models.ScrapeJob) {
		j.Status = models.JobFailed
	})
	if _, ok := r.Get("nope"); ok {
		t.Fatal("phantom job created by Update")
	}
}
