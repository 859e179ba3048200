package steam

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const (
	// DefaultWebAPIBase is the Steam Web API host.
	DefaultWebAPIBase = "https://api.steampowered.com"

	// DefaultStoreAPIBase is the storefront host serving app details.
	DefaultStoreAPIBase = "https://store.steampowered.com"
)

var (
	ErrVanityNotFound = errors.New("steam: vanity name did not resolve")
	ErrAppNotFound    = errors.New("steam: no app details")

	steamID64Pattern = regexp.MustCompile(`^\d{17}$`)
)

// Client wraps the Steam Web API and storefront endpoints. All base URLs are
// swappable for tests.
type Client struct {
	APIKey       string
	WebAPIBase   string
	StoreAPIBase string
	HTTPClient   *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:       apiKey,
		WebAPIBase:   DefaultWebAPIBase,
		StoreAPIBase: DefaultStoreAPIBase,
		HTTPClient:   &http.Client{Timeout: 10 * time.Second},
	}
}

// OwnedGame is one library entry from GetOwnedGames.
type OwnedGame struct {
	AppID           int64  `json:"appid"`
	Name            string `json:"name"`
	PlaytimeForever int64  `json:"playtime_forever"`
	ImgIconURL      string `json:"img_icon_url"`
}

// PlayerSummary is the public profile slice the app shows for friends.
type PlayerSummary struct {
	SteamID     string `json:"steamid"`
	PersonaName string `json:"personaname"`
	AvatarFull  string `json:"avatarfull"`
}

// AppDetails is the storefront metadata used for tagging pool games.
type AppDetails struct {
	Name       string
	Categories []string
	Genres     []string
}

// ResolveID turns a 17-digit SteamID64 or a vanity name into a SteamID64.
// Already-numeric ids pass through without a network call.
func (c *Client) ResolveID(ctx context.Context, idOrVanity string) (string, error) {
	if steamID64Pattern.MatchString(idOrVanity) {
		return idOrVanity, nil
	}

	var out struct {
		Response struct {
			Success int    `json:"success"`
			SteamID string `json:"steamid"`
		} `json:"response"`
	}
	err := c.getJSON(ctx, c.WebAPIBase+"/ISteamUser/ResolveVanityURL/v0001/", url.Values{
		"key":       {c.APIKey},
		"vanityurl": {idOrVanity},
	}, &out)
	if err != nil {
		return "", err
	}
	if out.Response.Success != 1 || out.Response.SteamID == "" {
		return "", ErrVanityNotFound
	}
	return out.Response.SteamID, nil
}

// OwnedGames lists the user's library with app info included.
func (c *Client) OwnedGames(ctx context.Context, steamID string) ([]OwnedGame, error) {
	var out struct {
		Response struct {
			Games []OwnedGame `json:"games"`
		} `json:"response"`
	}
	err := c.getJSON(ctx, c.WebAPIBase+"/IPlayerService/GetOwnedGames/v0001/", url.Values{
		"key":                       {c.APIKey},
		"steamid":                   {steamID},
		"include_appinfo":           {"1"},
		"include_played_free_games": {"1"},
	}, &out)
	if err != nil {
		return nil, err
	}
	return out.Response.Games, nil
}

// FriendList returns the SteamIDs on the user's friend list.
func (c *Client) FriendList(ctx context.Context, steamID string) ([]string, error) {
	var out struct {
		FriendsList struct {
			Friends []struct {
				SteamID string `json:"steamid"`
			} `json:"friends"`
		} `json:"friendslist"`
	}
	err := c.getJSON(ctx, c.WebAPIBase+"/ISteamUser/GetFriendList/v0001/", url.Values{
		"key":          {c.APIKey},
		"steamid":      {steamID},
		"relationship": {"friend"},
	}, &out)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(out.FriendsList.Friends))
	for _, f := range out.FriendsList.Friends {
		ids = append(ids, f.SteamID)
	}
	return ids, nil
}

// PlayerSummaries returns public profiles for up to 100 SteamIDs.
func (c *Client) PlayerSummaries(ctx context.Context, steamIDs []string) ([]PlayerSummary, error) {
	if len(steamIDs) == 0 {
		return nil, nil
	}

	var out struct {
		Response struct {
			Players []PlayerSummary `json:"players"`
		} `json:"response"`
	}
	err := c.getJSON(ctx, c.WebAPIBase+"/ISteamUser/GetPlayerSummaries/v0002/", url.Values{
		"key":      {c.APIKey},
		"steamids": {strings.Join(steamIDs, ",")},
	}, &out)
	if err != nil {
		return nil, err
	}
	return out.Response.Players, nil
}

// RecentlyPlayed returns the user's recently played games, newest first.
func (c *Client) RecentlyPlayed(ctx context.Context, steamID string) ([]OwnedGame, error) {
	var out struct {
		Response struct {
			Games []OwnedGame `json:"games"`
		} `json:"response"`
	}
	err := c.getJSON(ctx, c.WebAPIBase+"/IPlayerService/GetRecentlyPlayedGames/v1/", url.Values{
		"key":     {c.APIKey},
		"steamid": {steamID},
	}, &out)
	if err != nil {
		return nil, err
	}
	return out.Response.Games, nil
}

// AppDetails fetches storefront metadata for one app. The storefront keys its
// response by app id and flags partial failures per entry.
func (c *Client) AppDetails(ctx context.Context, appID int64) (AppDetails, error) {
	key := fmt.Sprintf("%d", appID)

	var out map[string]struct {
		Success bool `json:"success"`
		Data    struct {
			Name       string `json:"name"`
			Categories []struct {
				Description string `json:"description"`
			} `json:"categories"`
			Genres []struct {
				Description string `json:"description"`
			} `json:"genres"`
		} `json:"data"`
	}
	err := c.getJSON(ctx, c.StoreAPIBase+"/api/appdetails", url.Values{
		"appids": {key},
		"l":      {"en"},
	}, &out)
	if err != nil {
		return AppDetails{}, err
	}

	entry, ok := out[key]
	if !ok || !entry.Success {
		return AppDetails{}, ErrAppNotFound
	}

	d := AppDetails{Name: entry.Data.Name}
	for _, cat := range entry.Data.Categories {
		if cat.Description != "" {
			d.Categories = append(d.Categories, cat.Description)
		}
	}
	for _, g := range entry.Data.Genres {
		if g.Description != "" {
			d.Genres = append(d.Genres, g.Description)
		}
	}
	return d, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("steam: %s returned %d: %s", req.URL.Path, resp.StatusCode, body)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
