package analytics

import (
	"fmt"
	"testing"
	"time"

	"diamond-stats/internal/models"
)

func TestTrendDirection(t *testing.T) {
	tests := []struct {
		name     string
		recent   float64
		baseline float64
		want     Trend
	}{
		{name: "identical is stable", recent: 0.3, baseline: 0.3, want: TrendStable},
		{name: "five percent up", recent: 105, baseline: 100, want: TrendUp},
		{name: "six percent down", recent: 94, baseline: 100, want: TrendDown},
		{name: "inside band up", recent: 104, baseline: 100, want: TrendStable},
		{name: "inside band down", recent: 96, baseline: 100, want: TrendStable},
		{name: "zero baseline", recent: 5, baseline: 0, want: TrendStable},
		{name: "negative change", recent: 50, baseline: 100, want: TrendDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrendDirection(tt.recent, tt.baseline); got != tt.want {
				t.Fatalf("TrendDirection(%v, %v) = %q, want %q", tt.recent, tt.baseline, got, tt.want)
			}
		})
	}
}

func TestPlayerTrendsBattingAverage(t *testing.T) {
	eng, st := newTestEngine(t)

	// Three games with lines (4,1), (4,2), (4,3): 6 hits over 12 at-bats.
	lines := []models.BattingStats{
		{AtBats: 4, Hits: 1},
		{AtBats: 4, Hits: 2},
		{AtBats: 4, Hits: 3},
	}
	for i, line := range lines {
		box := battingGame(
			fmt.Sprintf("g%d", i),
			time.Now().AddDate(0, 0, -3+i),
			line,
			models.PitchingStats{InningsPitched: 6},
		)
		if err := st.StoreBoxScore(box); err != nil {
			t.Fatalf("StoreBoxScore error = %v", err)
		}
	}

	trends := eng.PlayerTrends("b1", models.TimeframeLast30)
	if trends.Batting == nil {
		t.Fatal("expected batting summary")
	}
	if trends.Batting.Games != 3 {
		t.Fatalf("Games = %d, want 3", trends.Batting.Games)
	}
	if trends.Batting.Avg != 0.5 {
		t.Fatalf("Avg = %v, want 0.5", trends.Batting.Avg)
	}
}

func TestPlayerTrendsDirections(t *testing.T) {
	eng, st := newTestEngine(t)

	// Prior week: 2-for-8. Recent week: 6-for-8. Average trends up.
	games := []struct {
		daysAgo int
		hits    int
	}{
		{daysAgo: 12, hits: 1},
		{daysAgo: 10, hits: 1},
		{daysAgo: 4, hits: 3},
		{daysAgo: 2, hits: 3},
	}
	for i, g := range games {
		box := battingGame(
			fmt.Sprintf("g%d", i),
			time.Now().AddDate(0, 0, -g.daysAgo),
			models.BattingStats{AtBats: 4, Hits: g.hits, Strikeouts: 1},
			models.PitchingStats{InningsPitched: 6},
		)
		if err := st.StoreBoxScore(box); err != nil {
			t.Fatalf("StoreBoxScore error = %v", err)
		}
	}

	trends := eng.PlayerTrends("b1", models.TimeframeLast7)
	if got := trends.Direction["avg"]; got != TrendUp {
		t.Fatalf("avg direction = %q, want up", got)
	}
}

func TestPlayerTrendsUnknownPlayer(t *testing.T) {
	eng, _ := newTestEngine(t)

	trends := eng.PlayerTrends("nobody", models.TimeframeLast30)
	if trends.Batting != nil || trends.Pitching != nil {
		t.Fatalf("expected empty trends, got %+v", trends)
	}
}
