package analytics

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"diamond-stats/internal/models"
	"diamond-stats/internal/store"
)

func newTestEngine(t *testing.T) (*Engine, *store.Store) {
	t.Helper()
	st, err := store.New(filepath.Join(t.TempDir(), "store.json"))
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	return New(st), st
}

// battingGame builds a final game where the home batter "b1" posts the given
// line against away pitcher "p1".
func battingGame(gameID string, date time.Time, batting models.BattingStats, pitching models.PitchingStats) models.BoxScore {
	return models.BoxScore{
		GameInfo: models.GameInfo{
			GameID:   gameID,
			Date:     date,
			HomeTeam: "NYY",
			AwayTeam: "BOS",
			Status:   models.StatusFinal,
		},
		HomeTeamStats: []models.PlayerGameStats{
			{PlayerID: "b1", PlayerName: "Batter One", Batting: &batting},
		},
		AwayTeamStats: []models.PlayerGameStats{
			{PlayerID: "p1", PlayerName: "Pitcher One", Pitching: &pitching},
		},
	}
}

func seedBattingGames(t *testing.T, st *store.Store, n int) {
	t.Helper()
	base := time.Now().AddDate(0, 0, -n)
	for i := 0; i < n; i++ {
		box := battingGame(
			fmt.Sprintf("g%d", i),
			base.AddDate(0, 0, i),
			models.BattingStats{AtBats: 4, Hits: 1 + i%3, Strikeouts: 1, Walks: 1},
			models.PitchingStats{InningsPitched: 6, HitsAllowed: 5, WalksAllowed: 2, EarnedRuns: 3, Strikeouts: 6},
		)
		if err := st.StoreBoxScore(box); err != nil {
			t.Fatalf("StoreBoxScore error = %v", err)
		}
	}
}
