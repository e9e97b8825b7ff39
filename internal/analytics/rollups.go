package analytics

import (
	"time"

	"diamond-stats/internal/models"
)

const (
	avgBaseline = 0.250
	eraBaseline = 4.00
)

// TeamVsTeam is a head-to-head record computed from stored history.
type TeamVsTeam struct {
	TeamA       string    `json:"team_a"`
	TeamB       string    `json:"team_b"`
	Games       int       `json:"games"`
	TeamAWins   int       `json:"team_a_wins"`
	TeamBWins   int       `json:"team_b_wins"`
	TeamARunsPG float64   `json:"team_a_runs_per_game"`
	TeamBRunsPG float64   `json:"team_b_runs_per_game"`
	LastMeeting time.Time `json:"last_meeting"`
}

// TeamVsTeam tallies final games between two teams on demand.
func (e *Engine) TeamVsTeam(teamA, teamB string) TeamVsTeam {
	out := TeamVsTeam{TeamA: teamA, TeamB: teamB}

	var runsA, runsB int
	for _, game := range e.store.TeamGames(teamA, "") {
		if game.HomeTeam != teamB && game.AwayTeam != teamB {
			continue
		}
		if game.Status != models.StatusFinal {
			continue
		}
		out.Games++
		if game.Date.After(out.LastMeeting) {
			out.LastMeeting = game.Date
		}

		scoreA, scoreB := game.AwayScore, game.HomeScore
		if game.HomeTeam == teamA {
			scoreA, scoreB = game.HomeScore, game.AwayScore
		}
		runsA += scoreA
		runsB += scoreB
		if scoreA > scoreB {
			out.TeamAWins++
		} else if scoreB > scoreA {
			out.TeamBWins++
		}
	}
	if out.Games > 0 {
		out.TeamARunsPG = float64(runsA) / float64(out.Games)
		out.TeamBRunsPG = float64(runsB) / float64(out.Games)
	}
	return out
}

// PlayerVsOpponent aggregates one player's history against a team, with a
// bounded success score: batting-average deviation from .250 scaled by 100
// plus ERA deviation from 4.00 scaled by 25, clamped to [-100, 100].
type PlayerVsOpponent struct {
	PlayerID     string           `json:"player_id"`
	Opponent     string           `json:"opponent"`
	Batting      *BattingSummary  `json:"batting,omitempty"`
	Pitching     *PitchingSummary `json:"pitching,omitempty"`
	SuccessScore float64          `json:"success_score"`
	LastFaced    time.Time        `json:"last_faced"`
}

func (e *Engine) PlayerVsOpponent(playerID, opponent string) PlayerVsOpponent {
	out := PlayerVsOpponent{PlayerID: playerID, Opponent: opponent}

	var vs []models.PlayerGameStats
	for _, rec := range e.store.PlayerGameLog(playerID, "") {
		if rec.Opponent != opponent {
			continue
		}
		vs = append(vs, rec)
		if rec.Date.After(out.LastFaced) {
			out.LastFaced = rec.Date
		}
	}
	out.Batting = summarizeBatting(vs)
	out.Pitching = summarizePitching(vs)

	score := 0.0
	if out.Batting != nil && out.Batting.AtBats > 0 {
		score += (out.Batting.Avg - avgBaseline) * 100
	}
	if out.Pitching != nil && out.Pitching.InningsPitched > 0 {
		score += (eraBaseline - out.Pitching.ERA) * 25
	}
	out.SuccessScore = clamp(score, -100, 100)
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
