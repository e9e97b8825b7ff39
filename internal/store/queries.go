package store

import (
	"sort"
	"time"

	"diamond-stats/internal/models"
)

// DataInfo summarizes store contents for status reporting.
type DataInfo struct {
	Games        int       `json:"games"`
	Players      int       `json:"players"`
	Teams        int       `json:"teams"`
	LastGameDate time.Time `json:"last_game_date"`
}

// MatchupGame pairs one batter line and one pitcher line from the same game.
type MatchupGame struct {
	Game    models.GameInfo
	Batter  models.PlayerGameStats
	Pitcher models.PlayerGameStats
}

// PlayerGameLog returns a player's records sorted descending by date,
// optionally filtered to a timeframe. Unknown players yield an empty slice.
func (s *Store) PlayerGameLog(playerID string, timeframe models.Timeframe) []models.PlayerGameStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.playerGames[playerID]
	cutoff, bounded := timeframe.CutoffFrom(time.Now())

	out := make([]models.PlayerGameStats, 0, len(records))
	for _, rec := range records {
		if bounded && rec.Date.Before(cutoff) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// TeamGames returns a team's games sorted descending by date.
func (s *Store) TeamGames(team string, timeframe models.Timeframe) []models.GameInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff, bounded := timeframe.CutoffFrom(time.Now())

	out := make([]models.GameInfo, 0, len(s.gamesByTeam[team]))
	for _, id := range s.gamesByTeam[team] {
		game := s.games[id].GameInfo
		if bounded && game.Date.Before(cutoff) {
			continue
		}
		out = append(out, game)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// GamesByDateRange returns games with dates in [start, end], ascending.
func (s *Store) GamesByDateRange(start, end time.Time) []models.GameInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.GameInfo
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		for _, id := range s.gamesByDate[dayKey(day)] {
			out = append(out, s.games[id].GameInfo)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// BatterVsPitcherHistory returns every stored game where the batter has a
// batting line and the pitcher a pitching line, ascending by date.
func (s *Store) BatterVsPitcherHistory(batterID, pitcherID string) []MatchupGame {
	s.mu.Lock()
	defer s.mu.Unlock()

	pitcherByGame := make(map[string]models.PlayerGameStats)
	for _, rec := range s.playerGames[pitcherID] {
		if rec.Pitching != nil {
			pitcherByGame[rec.GameID] = rec
		}
	}

	var out []MatchupGame
	for _, rec := range s.playerGames[batterID] {
		if rec.Batting == nil {
			continue
		}
		pitcher, ok := pitcherByGame[rec.GameID]
		if !ok {
			continue
		}
		out = append(out, MatchupGame{
			Game:    s.games[rec.GameID].GameInfo,
			Batter:  rec,
			Pitcher: pitcher,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Game.Date.Before(out[j].Game.Date)
	})
	return out
}

// TeamAtBats sums a team's at-bats in one game. Used by matchup estimation
// to prorate a pitcher's batters faced across the opposing lineup.
func (s *Store) TeamAtBats(gameID, team string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	box, ok := s.games[gameID]
	if !ok {
		return 0
	}
	total := 0
	for _, side := range [][]models.PlayerGameStats{box.HomeTeamStats, box.AwayTeamStats} {
		for _, rec := range side {
			if rec.Team == team && rec.Batting != nil {
				total += rec.Batting.AtBats
			}
		}
	}
	return total
}

// Info reports store-wide counts and the most recent game date.
func (s *Store) Info() DataInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	info := DataInfo{
		Games:   len(s.games),
		Players: len(s.playerGames),
		Teams:   len(s.gamesByTeam),
	}
	for _, box := range s.games {
		if box.GameInfo.Date.After(info.LastGameDate) {
			info.LastGameDate = box.GameInfo.Date
		}
	}
	return info
}
