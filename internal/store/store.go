package store

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"diamond-stats/internal/models"
)

var ErrMissingGameID = errors.New("missing_game_id")

// Store keeps every ingested box score in four indices that move together:
// by game id, by calendar day, by team, and by player (each player's list
// sorted descending by date). A single mutex serializes upserts so that
// concurrent scrape tasks, including overlapping jobs hitting the same game,
// resolve to last-write-wins through the merge rule.
type Store struct {
	mu           sync.Mutex
	snapshotPath string

	games       map[string]models.BoxScore
	gamesByDate map[string][]string
	gamesByTeam map[string][]string
	playerGames map[string][]models.PlayerGameStats
}

// New builds a store rooted at snapshotPath. An existing snapshot is loaded;
// a missing one just means a cold start.
func New(snapshotPath string) (*Store, error) {
	s := &Store{
		snapshotPath: snapshotPath,
		games:        make(map[string]models.BoxScore),
		gamesByDate:  make(map[string][]string),
		gamesByTeam:  make(map[string][]string),
		playerGames:  make(map[string][]models.PlayerGameStats),
	}
	if err := s.loadSnapshot(); err != nil {
		return nil, err
	}
	return s, nil
}

// StoreBoxScore upserts one game into all indices as a single logical
// operation and persists a snapshot afterward. The snapshot write is
// best-effort: partial durability beats a failed ingest.
func (s *Store) StoreBoxScore(box models.BoxScore) error {
	if box.GameInfo.GameID == "" {
		return ErrMissingGameID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	gameID := box.GameInfo.GameID
	_, existed := s.games[gameID]

	for i := range box.HomeTeamStats {
		s.upsertPlayerLocked(&box.HomeTeamStats[i], box.GameInfo, true)
	}
	for i := range box.AwayTeamStats {
		s.upsertPlayerLocked(&box.AwayTeamStats[i], box.GameInfo, false)
	}
	s.games[gameID] = box

	if !existed {
		day := dayKey(box.GameInfo.Date)
		s.gamesByDate[day] = append(s.gamesByDate[day], gameID)
		s.gamesByTeam[box.GameInfo.HomeTeam] = append(s.gamesByTeam[box.GameInfo.HomeTeam], gameID)
		s.gamesByTeam[box.GameInfo.AwayTeam] = append(s.gamesByTeam[box.GameInfo.AwayTeam], gameID)
	}

	if err := s.writeSnapshotLocked(); err != nil {
		log.Warn().Err(err).Str("game_id", gameID).Msg("snapshot write failed")
	}
	return nil
}

// upsertPlayerLocked merges one incoming player line into the player index.
// An incoming record updates the existing (player, game) entry in place:
// present stat categories replace, absent ones keep whatever was already
// stored. The incoming record is also backfilled so the box score stored in
// the game index carries the merged view.
func (s *Store) upsertPlayerLocked(incoming *models.PlayerGameStats, game models.GameInfo, isHome bool) {
	if incoming.PlayerID == "" {
		return
	}
	incoming.GameID = game.GameID
	incoming.Date = game.Date
	incoming.IsHome = isHome
	if isHome {
		incoming.Team = game.HomeTeam
		incoming.Opponent = game.AwayTeam
	} else {
		incoming.Team = game.AwayTeam
		incoming.Opponent = game.HomeTeam
	}

	records := s.playerGames[incoming.PlayerID]
	for i := range records {
		if records[i].GameID != game.GameID {
			continue
		}
		if incoming.Batting == nil {
			incoming.Batting = records[i].Batting
		}
		if incoming.Pitching == nil {
			incoming.Pitching = records[i].Pitching
		}
		if incoming.Fielding == nil {
			incoming.Fielding = records[i].Fielding
		}
		records[i] = *incoming
		return
	}

	records = append(records, *incoming)
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})
	s.playerGames[incoming.PlayerID] = records
}

// GetBoxScore returns the stored box score for a game.
func (s *Store) GetBoxScore(gameID string) (models.BoxScore, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	box, ok := s.games[gameID]
	return box, ok
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
