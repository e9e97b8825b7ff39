package analytics

import (
	"math"
	"time"

	"diamond-stats/internal/models"
)

// Trend is the classified direction of a metric.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// stableBand is the relative change below which a metric reads as stable.
const stableBand = 0.05

// TrendDirection classifies recent against baseline. A zero baseline reads
// as stable. For metrics where smaller is better (ERA, WHIP, a batter's
// strikeout rate) callers pass the arguments pre-swapped so this single
// primitive applies uniformly.
func TrendDirection(recent, baseline float64) Trend {
	if baseline == 0 {
		return TrendStable
	}
	change := (recent - baseline) / baseline
	if math.Abs(change) < stableBand {
		return TrendStable
	}
	if change > 0 {
		return TrendUp
	}
	return TrendDown
}

// BattingSummary aggregates a set of batting games into counting totals and
// derived rates.
type BattingSummary struct {
	Games      int     `json:"games"`
	AtBats     int     `json:"at_bats"`
	Hits       int     `json:"hits"`
	HomeRuns   int     `json:"home_runs"`
	RBI        int     `json:"rbi"`
	Runs       int     `json:"runs"`
	Walks      int     `json:"walks"`
	Strikeouts int     `json:"strikeouts"`
	Avg        float64 `json:"avg"`
	HRRate     float64 `json:"hr_rate"`
	KRate      float64 `json:"k_rate"`
	BBRate     float64 `json:"bb_rate"`
}

// PitchingSummary aggregates a set of pitching games.
type PitchingSummary struct {
	Games          int     `json:"games"`
	InningsPitched float64 `json:"innings_pitched"`
	HitsAllowed    int     `json:"hits_allowed"`
	EarnedRuns     int     `json:"earned_runs"`
	WalksAllowed   int     `json:"walks_allowed"`
	Strikeouts     int     `json:"strikeouts"`
	ERA            float64 `json:"era"`
	WHIP           float64 `json:"whip"`
	KPer9          float64 `json:"k_per_9"`
}

// PlayerTrends carries the timeframe aggregates alongside trend directions
// computed against the preceding period of equal length.
type PlayerTrends struct {
	PlayerID  string           `json:"player_id"`
	Timeframe models.Timeframe `json:"timeframe"`
	Batting   *BattingSummary  `json:"batting_trends,omitempty"`
	Pitching  *PitchingSummary `json:"pitching_trends,omitempty"`
	Direction map[string]Trend `json:"direction,omitempty"`
}

// PlayerTrends aggregates a player's games in the timeframe and classifies
// each headline metric against the prior equal-length window. The season
// timeframe has no comparable prior window, so it carries no directions.
func (e *Engine) PlayerTrends(playerID string, timeframe models.Timeframe) PlayerTrends {
	out := PlayerTrends{PlayerID: playerID, Timeframe: timeframe}

	log := e.store.PlayerGameLog(playerID, timeframe)
	out.Batting = summarizeBatting(log)
	out.Pitching = summarizePitching(log)

	now := time.Now()
	cutoff, bounded := timeframe.CutoffFrom(now)
	if !bounded || timeframe == models.TimeframeSeason {
		return out
	}

	span := now.Sub(cutoff)
	var prior []models.PlayerGameStats
	for _, rec := range e.store.PlayerGameLog(playerID, "") {
		if rec.Date.Before(cutoff) && !rec.Date.Before(cutoff.Add(-span)) {
			prior = append(prior, rec)
		}
	}
	priorBat := summarizeBatting(prior)
	priorPit := summarizePitching(prior)

	out.Direction = make(map[string]Trend)
	if out.Batting != nil && priorBat != nil {
		out.Direction["avg"] = TrendDirection(out.Batting.Avg, priorBat.Avg)
		out.Direction["hr_rate"] = TrendDirection(out.Batting.HRRate, priorBat.HRRate)
		// Fewer strikeouts is improvement, so the arguments swap.
		out.Direction["k_rate"] = TrendDirection(priorBat.KRate, out.Batting.KRate)
	}
	if out.Pitching != nil && priorPit != nil {
		out.Direction["era"] = TrendDirection(priorPit.ERA, out.Pitching.ERA)
		out.Direction["whip"] = TrendDirection(priorPit.WHIP, out.Pitching.WHIP)
		out.Direction["k_per_9"] = TrendDirection(out.Pitching.KPer9, priorPit.KPer9)
	}
	return out
}

func summarizeBatting(records []models.PlayerGameStats) *BattingSummary {
	var sum BattingSummary
	for _, rec := range records {
		if rec.Batting == nil {
			continue
		}
		b := rec.Batting
		sum.Games++
		sum.AtBats += b.AtBats
		sum.Hits += b.Hits
		sum.HomeRuns += b.HomeRuns
		sum.RBI += b.RBI
		sum.Runs += b.Runs
		sum.Walks += b.Walks
		sum.Strikeouts += b.Strikeouts
	}
	if sum.Games == 0 {
		return nil
	}
	if sum.AtBats > 0 {
		sum.Avg = float64(sum.Hits) / float64(sum.AtBats)
		sum.HRRate = float64(sum.HomeRuns) / float64(sum.AtBats)
		sum.KRate = float64(sum.Strikeouts) / float64(sum.AtBats)
		sum.BBRate = float64(sum.Walks) / float64(sum.AtBats)
	}
	return &sum
}

func summarizePitching(records []models.PlayerGameStats) *PitchingSummary {
	var sum PitchingSummary
	outs := 0
	for _, rec := range records {
		if rec.Pitching == nil {
			continue
		}
		p := rec.Pitching
		sum.Games++
		outs += outsFromInnings(p.InningsPitched)
		sum.HitsAllowed += p.HitsAllowed
		sum.EarnedRuns += p.EarnedRuns
		sum.WalksAllowed += p.WalksAllowed
		sum.Strikeouts += p.Strikeouts
	}
	if sum.Games == 0 {
		return nil
	}
	if outs > 0 {
		innings := float64(outs) / 3
		sum.InningsPitched = innings
		sum.ERA = float64(sum.EarnedRuns) * 9 / innings
		sum.WHIP = float64(sum.WalksAllowed+sum.HitsAllowed) / innings
		sum.KPer9 = float64(sum.Strikeouts) * 9 / innings
	}
	return &sum
}
