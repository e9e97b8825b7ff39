package fetch

import (
	"context"
	"errors"
	"time"

	"diamond-stats/internal/models"
)

var (
	// ErrParse marks a response that arrived but could not be decoded.
	ErrParse = errors.New("parse_error")
)

// Fetcher is the external data source boundary. DiscoverGames returns an
// empty slice (not an error) when a day has no games. FetchBoxScore returns
// (nil, nil) when the game exists upstream but has no usable box score,
// which is distinct from a transport failure.
type Fetcher interface {
	DiscoverGames(ctx context.Context, date time.Time) ([]models.GameInfo, error)
	FetchBoxScore(ctx context.Context, gameID string) (*models.BoxScore, error)
}
