// Package steamapi calls the Steam Web API endpoints that need an API
// key. Credentials come from configuration and are sent only as query
// parameters, never logged.
package steamapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mtlaird/steam-db/internal/models"
)

const ownedGamesURL = "https://api.steampowered.com/IPlayerService/GetOwnedGames/v0001/"

// Client wraps an http.Client for Web API calls.
type Client struct {
	http *http.Client
}

func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{http: httpClient}
}

// OwnedGames fetches the game-ownership list for a Steam ID.
func (c *Client) OwnedGames(ctx context.Context, apiKey, steamID string) ([]models.OwnedGame, error) {
	if apiKey == "" || steamID == "" {
		return nil, fmt.Errorf("owned games lookup requires STEAM_API_KEY and STEAM_ID")
	}

	params := url.Values{}
	params.Set("key", apiKey)
	params.Set("steamid", steamID)
	params.Set("format", "json")
	params.Set("include_appinfo", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ownedGamesURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("owned games request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("owned games request failed: %s", resp.Status)
	}

	var payload struct {
		Response struct {
			GameCount int                `json:"game_count"`
			Games     []models.OwnedGame `json:"games"`
		} `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode owned games response: %w", err)
	}

	return payload.Response.Games, nil
}
