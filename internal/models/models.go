package models

import "time"

// GameStatus represents the current state of a game.
type GameStatus string

const (
	StatusScheduled GameStatus = "scheduled"
	StatusLive      GameStatus = "live"
	StatusFinal     GameStatus = "final"
	StatusPostponed GameStatus = "postponed"
)

// GameInfo is per-game metadata. Mutable until the status reaches final.
type GameInfo struct {
	GameID    string     `json:"game_id"`
	Date      time.Time  `json:"date"`
	HomeTeam  string     `json:"home_team"`
	AwayTeam  string     `json:"away_team"`
	HomeScore int        `json:"home_score"`
	AwayScore int        `json:"away_score"`
	Status    GameStatus `json:"status"`
	Inning    int        `json:"inning,omitempty"`
}

// BattingStats holds per-game counting stats for a batter.
type BattingStats struct {
	AtBats      int `json:"at_bats"`
	Runs        int `json:"runs"`
	Hits        int `json:"hits"`
	Doubles     int `json:"doubles"`
	Triples     int `json:"triples"`
	HomeRuns    int `json:"home_runs"`
	RBI         int `json:"rbi"`
	Walks       int `json:"walks"`
	Strikeouts  int `json:"strikeouts"`
	StolenBases int `json:"stolen_bases"`
}

// PitchingStats holds per-game counting stats for a pitcher.
// InningsPitched uses the conventional fractional notation where a third
// of an inning is 0.1 (e.g. 6.2 = six and two thirds).
type PitchingStats struct {
	InningsPitched  float64 `json:"innings_pitched"`
	HitsAllowed     int     `json:"hits_allowed"`
	RunsAllowed     int     `json:"runs_allowed"`
	EarnedRuns      int     `json:"earned_runs"`
	WalksAllowed    int     `json:"walks_allowed"`
	Strikeouts      int     `json:"strikeouts"`
	HomeRunsAllowed int     `json:"home_runs_allowed"`
	PitchCount      int     `json:"pitch_count,omitempty"`
}

// FieldingStats holds per-game fielding stats.
type FieldingStats struct {
	Putouts int `json:"putouts"`
	Assists int `json:"assists"`
	Errors  int `json:"errors"`
}

// PlayerGameStats is one player's line in one game. A player carries any
// combination of the three stat categories; at most one record exists per
// (player, game) pair and later ingestion merges missing categories into it.
type PlayerGameStats struct {
	PlayerID   string         `json:"player_id"`
	PlayerName string         `json:"player_name"`
	GameID     string         `json:"game_id"`
	Team       string         `json:"team"`
	Opponent   string         `json:"opponent"`
	IsHome     bool           `json:"is_home"`
	Date       time.Time      `json:"date"`
	Batting    *BattingStats  `json:"batting,omitempty"`
	Pitching   *PitchingStats `json:"pitching,omitempty"`
	Fielding   *FieldingStats `json:"fielding,omitempty"`
}

// GameEvent is a notable in-game event (home run, pitching change, ...).
type GameEvent struct {
	Inning      int    `json:"inning"`
	Team        string `json:"team"`
	Description string `json:"description"`
}

// BoxScore is the full stat sheet for one game.
type BoxScore struct {
	GameInfo      GameInfo          `json:"game_info"`
	HomeTeamStats []PlayerGameStats `json:"home_team_stats"`
	AwayTeamStats []PlayerGameStats `json:"away_team_stats"`
	GameEvents    []GameEvent       `json:"game_events,omitempty"`
}

// MatchupData is the running estimate of one batter's history against one
// pitcher. Counts are fractional because they are prorated estimates, and
// they only ever grow as more games are folded in.
type MatchupData struct {
	BatterID   string    `json:"batter_id"`
	PitcherID  string    `json:"pitcher_id"`
	AtBats     float64   `json:"at_bats"`
	Hits       float64   `json:"hits"`
	HomeRuns   float64   `json:"home_runs"`
	Strikeouts float64   `json:"strikeouts"`
	Walks      float64   `json:"walks"`
	Avg        float64   `json:"avg"`
	OPS        float64   `json:"ops"`
	LastFaced  time.Time `json:"last_faced"`
}

// JobStatus represents the lifecycle state of a scrape job.
type JobStatus string

const (
	JobQueued    JobStatus = "queued"
	JobRunning   JobStatus = "running"
	JobCompleted JobStatus = "completed"
	JobFailed    JobStatus = "failed"
)

// JobProgress tracks per-game outcomes within one job.
type JobProgress struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Failed    int `json:"failed"`
}

// ScrapeJob is one bulk scrape over an inclusive date range. Terminal at
// completed or failed; there is no transition out of a terminal state.
type ScrapeJob struct {
	ID          string      `json:"id"`
	StartDate   time.Time   `json:"start_date"`
	EndDate     time.Time   `json:"end_date"`
	Status      JobStatus   `json:"status"`
	Progress    JobProgress `json:"progress"`
	CreatedAt   time.Time   `json:"created_at"`
	StartedAt   time.Time   `json:"started_at,omitempty"`
	CompletedAt time.Time   `json:"completed_at,omitempty"`
	Error       string      `json:"error,omitempty"`
}

// Timeframe is a named lookback window for store queries.
type Timeframe string

const (
	TimeframeLast7  Timeframe = "last7"
	TimeframeLast14 Timeframe = "last14"
	TimeframeLast30 Timeframe = "last30"
	TimeframeSeason Timeframe = "season"
)

// CutoffFrom resolves the timeframe to an inclusive lower bound relative to
// now. The season starts March 1 of the current year. An empty or unknown
// timeframe means no bound.
func (tf Timeframe) CutoffFrom(now time.Time) (time.Time, bool) {
	switch tf {
	case TimeframeLast7:
		return now.AddDate(0, 0, -7), true
	case TimeframeLast14:
		return now.AddDate(0, 0, -14), true
	case TimeframeLast30:
		return now.AddDate(0, 0, -30), true
	case TimeframeSeason:
		return time.Date(now.Year(), time.March, 1, 0, 0, 0, 0, time.UTC), true
	default:
		return time.Time{}, false
	}
}
