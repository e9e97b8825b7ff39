package analytics

import (
	"fmt"
	"testing"
	"time"

	"diamond-stats/internal/models"
)

func TestTeamVsTeam(t *testing.T) {
	eng, st := newTestEngine(t)

	games := []struct {
		home, away           string
		homeScore, awayScore int
		status               models.GameStatus
	}{
		{home: "NYY", away: "BOS", homeScore: 5, awayScore: 3, status: models.StatusFinal},
		{home: "BOS", away: "NYY", homeScore: 2, awayScore: 7, status: models.StatusFinal},
		{home: "NYY", away: "BOS", homeScore: 1, awayScore: 4, status: models.StatusFinal},
		{home: "NYY", away: "BOS", homeScore: 0, awayScore: 0, status: models.StatusLive},
		{home: "NYY", away: "TOR", homeScore: 6, awayScore: 2, status: models.StatusFinal},
	}
	for i, g := range games {
		box := models.BoxScore{GameInfo: models.GameInfo{
			GameID:    fmt.Sprintf("g%d", i),
			Date:      time.Now().AddDate(0, 0, -len(games)+i),
			HomeTeam:  g.home,
			AwayTeam:  g.away,
			HomeScore: g.homeScore,
			AwayScore: g.awayScore,
			Status:    g.status,
		}}
		if err := st.StoreBoxScore(box); err != nil {
			t.Fatalf("StoreBoxScore error = %v", err)
		}
	}

	h2h := eng.TeamVsTeam("NYY", "BOS")
	if h2h.Games != 3 {
		t.Fatalf("Games = %d, want 3 (live game and TOR game excluded)", h2h.Games)
	}
	if h2h.TeamAWins != 2 || h2h.TeamBWins != 1 {
		t.Fatalf("record = %d-%d, want 2-1", h2h.TeamAWins, h2h.TeamBWins)
	}
	wantRPG := float64(5+7+1) / 3
	if h2h.TeamARunsPG != wantRPG {
		t.Fatalf("TeamARunsPG = %v, want %v", h2h.TeamARunsPG, wantRPG)
	}
	if h2h.LastMeeting.IsZero() {
		t.Fatal("LastMeeting not set")
	}
}

func TestPlayerVsOpponentSuccessScore(t *testing.T) {
	tests := []struct {
		name string
		line models.BattingStats
		want float64
	}{
		// (avg - .250) * 100
		{name: "hot batter", line: models.BattingStats{AtBats: 4, Hits: 3}, want: 50},
		{name: "league average", line: models.BattingStats{AtBats: 4, Hits: 1}, want: 0},
		{name: "hitless", line: models.BattingStats{AtBats: 4, Hits: 0}, want: -25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng, st := newTestEngine(t)
			box := battingGame("g1", time.Now().AddDate(0, 0, -1), tt.line, models.PitchingStats{InningsPitched: 6})
			if err := st.StoreBoxScore(box); err != nil {
				t.Fatalf("StoreBoxScore error = %v", err)
			}

			vs := eng.PlayerVsOpponent("b1", "BOS")
			if vs.SuccessScore != tt.want {
				t.Fatalf("SuccessScore = %v, want %v", vs.SuccessScore, tt.want)
			}
		})
	}
}

func TestPlayerVsOpponentClamped(t *testing.T) {
	eng, st := newTestEngine(t)

	// A shelled pitcher: 1 inning, 10 earned runs is an ERA of 90, which
	// drives the raw score far past the lower bound.
	box := battingGame("g1", time.Now().AddDate(0, 0, -1),
		models.BattingStats{AtBats: 4, Hits: 1},
		models.PitchingStats{InningsPitched: 1, EarnedRuns: 10, HitsAllowed: 8})
	if err := st.StoreBoxScore(box); err != nil {
		t.Fatalf("StoreBoxScore error = %v", err)
	}

	vs := eng.PlayerVsOpponent("p1", "NYY")
	if vs.SuccessScore != -100 {
		t.Fatalf("SuccessScore = %v, want clamp at -100", vs.SuccessScore)
	}
}

func TestPlayerVsOpponentNoHistory(t *testing.T) {
	eng, _ := newTestEngine(t)

	vs := eng.PlayerVsOpponent("b1", "BOS")
	if vs.Batting != nil || vs.Pitching != nil || vs.SuccessScore != 0 {
		t.Fatalf("expected empty rollup, got %+v", vs)
	}
}
