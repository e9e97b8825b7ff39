package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"diamond-stats/internal/analytics"
	"diamond-stats/internal/cache"
	"diamond-stats/internal/config"
	"diamond-stats/internal/models"
	"diamond-stats/internal/scraper"
	"diamond-stats/internal/store"
)

// stubFetcher serves a fixed schedule from memory.
type stubFetcher struct {
	gamesByDay map[string][]models.GameInfo
	boxes      map[string]*models.BoxScore
}

func newStubFetcher() *stubFetcher {
	return &stubFetcher{
		gamesByDay: make(map[string][]models.GameInfo),
		boxes:      make(map[string]*models.BoxScore),
	}
}

func (f *stubFetcher) DiscoverGames(_ context.Context, date time.Time) ([]models.GameInfo, error) {
	return f.gamesByDay[date.Format("2006-01-02")], nil
}

func (f *stubFetcher) FetchBoxScore(_ context.Context, gameID string) (*models.BoxScore, error) {
	return f.boxes[gameID], nil
}

func testRouter(t *testing.T) (*chi.Mux, *store.Store, *scraper.Orchestrator) {
	t.Helper()
	st, err := store.New(filepath.Join(t.TempDir(), "store.json"))
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	orch := scraper.NewOrchestrator(context.Background(), st, newStubFetcher(), cache.NewMemory(), config.ScraperConfig{
		BatchSize:       5,
		FetchTimeout:    time.Second,
		BackfillDays:    7,
		JobHistoryLimit: 50,
	})
	return newRouter(st, analytics.New(st), orch), st, orch
}

func seedGame(t *testing.T, st *store.Store, gameID string, date time.Time) {
	t.Helper()
	box := models.BoxScore{
		GameInfo: models.GameInfo{
			GameID:    gameID,
			Date:      date,
			HomeTeam:  "NYY",
			AwayTeam:  "BOS",
			HomeScore: 4,
			AwayScore: 2,
			Status:    models.StatusFinal,
		},
		HomeTeamStats: []models.PlayerGameStats{
			{PlayerID: "b1", PlayerName: "Batter One", Batting: &models.BattingStats{AtBats: 4, Hits: 2, HomeRuns: 1}},
		},
		AwayTeamStats: []models.PlayerGameStats{
			{PlayerID: "p1", PlayerName: "Pitcher One", Pitching: &models.PitchingStats{InningsPitched: 7, HitsAllowed: 6, EarnedRuns: 2, Strikeouts: 8}},
		},
	}
	if err := st.StoreBoxScore(box); err != nil {
		t.Fatalf("StoreBoxScore error = %v", err)
	}
}
