package strava

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

const (
	DefaultAuthURL       = "https://www.strava.com/oauth/token"
	DefaultActivitiesURL = "https://www.strava.com/api/v3/athlete/activities"

	// Strava caps per_page at 200; 100 keeps responses comfortably small.
	activitiesPerPage = 100
)

type ClientConfig struct {
	AuthURL       string
	ActivitiesURL string
	ClientID      string
	ClientSecret  string
	RefreshToken  string
}

// Client fetches athlete activities from the Strava API. Access tokens are
// short-lived, so each run obtains a fresh one through the refresh token
// grant before hitting the activities endpoint.
type Client struct {
	activitiesURL string
	refreshToken  string
	oauthConfig   *oauth2.Config
	httpClient    *http.Client
}

func NewClient(cfg ClientConfig, httpClient *http.Client) *Client {
	authURL := cfg.AuthURL
	if authURL == "" {
		authURL = DefaultAuthURL
	}
	activitiesURL := cfg.ActivitiesURL
	if activitiesURL == "" {
		activitiesURL = DefaultActivitiesURL
	}
	return &Client{
		activitiesURL: activitiesURL,
		refreshToken:  cfg.RefreshToken,
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL: authURL,
				// strava wants client id/secret in the POST body
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		httpClient: httpClient,
	}
}

// Activities returns all athlete activities that started after the given
// time, walking the paginated endpoint until an empty page. An empty page
// is the normal end-of-data signal, not an error.
func (c *Client) Activities(ctx context.Context, after time.Time) ([]Activity, error) {
	accessToken, err := c.refreshAccessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("refresh access token: %w", err)
	}

	log.Debugf("fetching activities after %s", after.Format("2006-01-02"))

	var activities []Activity
	for page := 1; ; page++ {
		batch, err := c.activitiesPage(ctx, accessToken, after, page)
		if err != nil {
			return nil, fmt.Errorf("get activities page %d: %w", page, err)
		}
		if len(batch) == 0 {
			log.Debugf("no more activities on page %d", page)
			break
		}
		log.Debugf("fetched %d activities from page %d", len(batch), page)
		activities = append(activities, batch...)
	}

	log.Infof("total activities fetched: %d", len(activities))
	return activities, nil
}

func (c *Client) refreshAccessToken(ctx context.Context) (string, error) {
	if c.refreshToken == "" {
		return "", fmt.Errorf("refresh token not set")
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	token, err := c.oauthConfig.TokenSource(ctx, &oauth2.Token{
		RefreshToken: c.refreshToken,
	}).Token()
	if err != nil {
		return "", err
	}

	log.Debugln("access token refreshed")
	return token.AccessToken, nil
}

func (c *Client) activitiesPage(
	ctx context.Context,
	accessToken string,
	after time.Time,
	page int,
) ([]Activity, error) {
	params := url.Values{}
	params.Set("after", strconv.FormatInt(after.Unix(), 10))
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(activitiesPerPage))

	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet,
		fmt.Sprintf("%s?%s", c.activitiesURL, params.Encode()),
		nil,
	)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, truncate(respBytes, 200))
	}

	var activities []Activity
	if err := json.Unmarshal(respBytes, &activities); err != nil {
		return nil, fmt.Errorf("unmarshal activities: %w", err)
	}
	return activities, nil
}

func truncate(b []byte, max int) string {
	if len(b) <= max {
		return string(b)
	}
	return string(b[:max]) + "..."
}
