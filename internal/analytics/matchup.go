package analytics

import (
	"math"

	"diamond-stats/internal/models"
)

// BatterVsPitcher estimates a batter's career line against a pitcher from
// game-level data. No play-by-play exists, so this is a documented
// approximation: a pitcher's batters faced in a game is outs recorded plus
// hits plus walks, the batter's at-bats against that pitcher are his game
// at-bats prorated by the pitcher's share of the opposing lineup's at-bats,
// and outcomes apply the batter's per-at-bat rates to the prorated count.
// Every fold adds non-negative increments, so all counts are monotone and
// hits never exceed at-bats.
func (e *Engine) BatterVsPitcher(batterID, pitcherID string) models.MatchupData {
	m := models.MatchupData{BatterID: batterID, PitcherID: pitcherID}

	for _, game := range e.store.BatterVsPitcherHistory(batterID, pitcherID) {
		bat := game.Batter.Batting
		pit := game.Pitcher.Pitching
		if bat.AtBats <= 0 {
			continue
		}

		battersFaced := outsFromInnings(pit.InningsPitched) + pit.HitsAllowed + pit.WalksAllowed
		lineupAtBats := e.store.TeamAtBats(game.Game.GameID, game.Batter.Team)
		if battersFaced <= 0 || lineupAtBats <= 0 {
			continue
		}

		share := float64(battersFaced) / float64(lineupAtBats)
		estAB := float64(bat.AtBats) * share
		perAB := 1 / float64(bat.AtBats)

		m.AtBats += estAB
		m.Hits += float64(bat.Hits) * perAB * estAB
		m.HomeRuns += float64(bat.HomeRuns) * perAB * estAB
		m.Strikeouts += float64(bat.Strikeouts) * perAB * estAB
		m.Walks += float64(bat.Walks) * perAB * estAB
		if game.Game.Date.After(m.LastFaced) {
			m.LastFaced = game.Game.Date
		}

		// Rates come from the running totals, not from re-walking history.
		m.Avg = ratio(m.Hits, m.AtBats)
		m.OPS = estimateOPS(m)
	}
	return m
}

// estimateOPS derives OBP and slugging from the running totals. Hits other
// than home runs count as singles since hit types are not tracked per
// matchup.
func estimateOPS(m models.MatchupData) float64 {
	obp := ratio(m.Hits+m.Walks, m.AtBats+m.Walks)
	slg := ratio(m.Hits+3*m.HomeRuns, m.AtBats)
	return obp + slg
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// outsFromInnings converts an innings-pitched figure to outs. Values in the
// conventional .1/.2 notation (6.2 = six and two thirds) convert exactly;
// anything else falls back to a plain innings*3 rounding.
func outsFromInnings(ip float64) int {
	if ip <= 0 {
		return 0
	}
	whole := math.Floor(ip)
	tenths := int(math.Round((ip - whole) * 10))
	if tenths <= 2 {
		return int(whole)*3 + tenths
	}
	return int(math.Round(ip * 3))
}
