package analytics

import (
	"testing"
)

func TestRollingWindowSizing(t *testing.T) {
	tests := []struct {
		name   string
		games  int
		window int
		want   int
	}{
		{name: "exact window", games: 10, window: 10, want: 1},
		{name: "more games than window", games: 15, window: 10, want: 6},
		{name: "fewer games than window", games: 7, window: 10, want: 0},
		{name: "window of one", games: 4, window: 1, want: 4},
		{name: "no games", games: 0, window: 5, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng, st := newTestEngine(t)
			seedBattingGames(t, st, tt.games)

			points := eng.RollingAverages("b1", tt.window)
			if len(points) != tt.want {
				t.Fatalf("len(points) = %d, want %d", len(points), tt.want)
			}
		})
	}
}

func TestRollingAveragesValues(t *testing.T) {
	eng, st := newTestEngine(t)
	seedBattingGames(t, st, 5)

	// Seed pattern cycles hits 1,2,3,1,2 over at-bats of 4.
	points := eng.RollingAverages("b1", 3)
	if len(points) != 3 {
		t.Fatalf("len(points) = %d, want 3", len(points))
	}

	first := points[0]
	if first.AtBats != 12 || first.Hits != 6 {
		t.Fatalf("first window = %d/%d, want 6/12", first.Hits, first.AtBats)
	}
	if first.Avg != 0.5 {
		t.Fatalf("first Avg = %v, want 0.5", first.Avg)
	}
	if first.Games != 3 {
		t.Fatalf("Games = %d, want 3", first.Games)
	}

	// Windows slide one game at a time and end on successive dates.
	for i := 1; i < len(points); i++ {
		if !points[i].EndDate.After(points[i-1].EndDate) {
			t.Fatal("window end dates not increasing")
		}
	}
}

func TestRollingAveragesSkipsPitchingOnlyGames(t *testing.T) {
	eng, st := newTestEngine(t)
	seedBattingGames(t, st, 3)

	// Pitcher p1 has 3 pitching-only games: no batting subsequence.
	if points := eng.RollingAverages("p1", 2); points != nil {
		t.Fatalf("expected nil for pitching-only player, got %d points", len(points))
	}
}

func TestRollingAveragesDefaultWindow(t *testing.T) {
	eng, st := newTestEngine(t)
	seedBattingGames(t, st, DefaultRollingWindow)

	if points := eng.RollingAverages("b1", 0); len(points) != 1 {
		t.Fatalf("len(points) = %d with default window, want 1", len(points))
	}
}
