package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"diamond-stats/internal/models"
)

// snapshotFile is the on-disk shape. Only the box scores are persisted;
// the secondary indices are rebuilt on load.
type snapshotFile struct {
	SavedAt time.Time         `json:"saved_at"`
	Games   []models.BoxScore `json:"games"`
}

func (s *Store) loadSnapshot() error {
	if s.snapshotPath == "" {
		return nil
	}
	f, err := os.Open(s.snapshotPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()

	var snap snapshotFile
	if err := json.NewDecoder(f).Decode(&snap); err != nil {
		return fmt.Errorf("decoding snapshot %s: %w", s.snapshotPath, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, box := range snap.Games {
		if box.GameInfo.GameID == "" {
			continue
		}
		for i := range box.HomeTeamStats {
			s.upsertPlayerLocked(&box.HomeTeamStats[i], box.GameInfo, true)
		}
		for i := range box.AwayTeamStats {
			s.upsertPlayerLocked(&box.AwayTeamStats[i], box.GameInfo, false)
		}
		gameID := box.GameInfo.GameID
		s.games[gameID] = box
		day := dayKey(box.GameInfo.Date)
		s.gamesByDate[day] = append(s.gamesByDate[day], gameID)
		s.gamesByTeam[box.GameInfo.HomeTeam] = append(s.gamesByTeam[box.GameInfo.HomeTeam], gameID)
		s.gamesByTeam[box.GameInfo.AwayTeam] = append(s.gamesByTeam[box.GameInfo.AwayTeam], gameID)
	}
	return nil
}

// writeSnapshotLocked flushes the full store to disk via a temp file and
// rename, so a crash mid-write never leaves a truncated snapshot.
func (s *Store) writeSnapshotLocked() error {
	if s.snapshotPath == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.snapshotPath), 0o755); err != nil {
		return fmt.Errorf("creating snapshot dir: %w", err)
	}

	snap := snapshotFile{SavedAt: time.Now(), Games: make([]models.BoxScore, 0, len(s.games))}
	for _, box := range s.games {
		snap.Games = append(snap.Games, box)
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	tmp := s.snapshotPath + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return os.Rename(tmp, s.snapshotPath)
}
