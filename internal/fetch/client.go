package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"diamond-stats/internal/models"
)

// Client fetches schedules and box scores from an ESPN-style stats API.
// It returns already-typed records; everything about the provider's payload
// shape stays inside this package.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  "Mozilla/5.0 (compatible; DiamondStatsBot/1.0)",
	}
}

type scoreboardResponse struct {
	Events []struct {
		ID           string `json:"id"`
		Date         string `json:"date"`
		Status       string `json:"status"`
		Inning       int    `json:"inning"`
		HomeTeam     string `json:"home_team"`
		AwayTeam     string `json:"away_team"`
		HomeScore    int    `json:"home_score"`
		AwayScore    int    `json:"away_score"`
	} `json:"events"`
}

func (c *Client) DiscoverGames(ctx context.Context, date time.Time) ([]models.GameInfo, error) {
	url := fmt.Sprintf("%s/scoreboard?dates=%s", c.baseURL, date.Format("20060102"))

	var payload scoreboardResponse
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}

	games := make([]models.GameInfo, 0, len(payload.Events))
	for _, ev := range payload.Events {
		if ev.ID == "" {
			continue
		}
		day, err := time.Parse(time.RFC3339, ev.Date)
		if err != nil {
			day = date
		}
		games = append(games, models.GameInfo{
			GameID:    ev.ID,
			Date:      day,
			HomeTeam:  ev.HomeTeam,
			AwayTeam:  ev.AwayTeam,
			HomeScore: ev.HomeScore,
			AwayScore: ev.AwayScore,
			Status:    parseStatus(ev.Status),
			Inning:    ev.Inning,
		})
	}
	return games, nil
}

func (c *Client) FetchBoxScore(ctx context.Context, gameID string) (*models.BoxScore, error) {
	url := fmt.Sprintf("%s/summary?event=%s", c.baseURL, gameID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching box score %s: %w", gameID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("box score %s: status=%d body=%s", gameID, resp.StatusCode, body)
	}

	var box models.BoxScore
	if err := json.NewDecoder(resp.Body).Decode(&box); err != nil {
		return nil, fmt.Errorf("%w: box score %s: %v", ErrParse, gameID, err)
	}
	if box.GameInfo.GameID == "" {
		box.GameInfo.GameID = gameID
	}
	return &box, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("stats API error: status=%d body=%s", resp.StatusCode, body)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}
	return nil
}

func parseStatus(raw string) models.GameStatus {
	switch raw {
	case "live", "in":
		return models.StatusLive
	case "final", "post":
		return models.StatusFinal
	case "postponed":
		return models.StatusPostponed
	default:
		return models.StatusScheduled
	}
}
