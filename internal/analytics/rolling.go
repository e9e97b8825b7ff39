package analytics

import (
	"time"

	"diamond-stats/internal/models"
)

// DefaultRollingWindow is the trailing game count used when a caller does
// not pick one.
const DefaultRollingWindow = 10

// RollingPoint is one trailing-window aggregate ending at EndDate.
type RollingPoint struct {
	EndDate    time.Time `json:"end_date"`
	Games      int       `json:"games"`
	AtBats     int       `json:"at_bats"`
	Hits       int       `json:"hits"`
	HomeRuns   int       `json:"home_runs"`
	RBI        int       `json:"rbi"`
	Runs       int       `json:"runs"`
	Walks      int       `json:"walks"`
	Strikeouts int       `json:"strikeouts"`

	Avg         float64 `json:"avg"`
	HRRate      float64 `json:"hr_rate"`
	KRate       float64 `json:"k_rate"`
	BBRate      float64 `json:"bb_rate"`
	RBIPerGame  float64 `json:"rbi_per_game"`
	RunsPerGame float64 `json:"runs_per_game"`
}

// RollingAverages computes trailing-window batting aggregates over the
// player's batting games in chronological order. A player with fewer than
// window games yields an empty slice; that is a sizing rule, not an error.
func (e *Engine) RollingAverages(playerID string, window int) []RollingPoint {
	if window <= 0 {
		window = DefaultRollingWindow
	}

	log := e.store.PlayerGameLog(playerID, "")
	games := make([]models.PlayerGameStats, 0, len(log))
	for i := len(log) - 1; i >= 0; i-- { // log is descending, fold ascending
		if log[i].Batting != nil {
			games = append(games, log[i])
		}
	}
	if len(games) < window {
		return nil
	}

	points := make([]RollingPoint, 0, len(games)-window+1)
	for end := window - 1; end < len(games); end++ {
		var pt RollingPoint
		for _, g := range games[end-window+1 : end+1] {
			b := g.Batting
			pt.AtBats += b.AtBats
			pt.Hits += b.Hits
			pt.HomeRuns += b.HomeRuns
			pt.RBI += b.RBI
			pt.Runs += b.Runs
			pt.Walks += b.Walks
			pt.Strikeouts += b.Strikeouts
		}
		pt.Games = window
		pt.EndDate = games[end].Date
		if pt.AtBats > 0 {
			pt.Avg = float64(pt.Hits) / float64(pt.AtBats)
			pt.HRRate = float64(pt.HomeRuns) / float64(pt.AtBats)
			pt.KRate = float64(pt.Strikeouts) / float64(pt.AtBats)
			pt.BBRate = float64(pt.Walks) / float64(pt.AtBats)
		}
		pt.RBIPerGame = float64(pt.RBI) / float64(window)
		pt.RunsPerGame = float64(pt.Runs) / float64(window)
		points = append(points, pt)
	}
	return points
}
