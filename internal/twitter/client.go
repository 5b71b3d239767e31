// Package twitter calls the two Twitter v1.1 endpoints the deleter needs,
// signing every request with OAuth 1.0a user credentials.
package twitter

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dghubble/oauth1"
)

const (
	DefaultBaseURL = "https://api.twitter.com/1.1"

	destroyPath   = "/statuses/destroy/%s.json"
	unretweetPath = "/statuses/unretweet/%s.json"
)

// Client deletes and un-retweets tweets on behalf of the authenticated user.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Config holds configuration for the client.
type Config struct {
	APIKey       string
	APISecret    string
	AccessToken  string
	AccessSecret string

	// BaseURL defaults to DefaultBaseURL.
	BaseURL string

	// HTTPClient is the unsigned transport the OAuth client wraps.
	// Defaults to http.DefaultClient.
	HTTPClient *http.Client
}

// NewClient creates a client signing requests with HMAC-SHA1.
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	ctx := context.Background()
	if cfg.HTTPClient != nil {
		ctx = context.WithValue(ctx, oauth1.HTTPClient, cfg.HTTPClient)
	}

	oauthCfg := oauth1.NewConfig(cfg.APIKey, cfg.APISecret)
	token := oauth1.NewToken(cfg.AccessToken, cfg.AccessSecret)

	return &Client{
		httpClient: oauthCfg.Client(ctx, token),
		baseURL:    baseURL,
	}
}

// DeleteTweet deletes one of the user's own tweets.
func (c *Client) DeleteTweet(ctx context.Context, id string) error {
	return c.post(ctx, fmt.Sprintf(destroyPath, url.PathEscape(id)))
}

// Unretweet undoes one of the user's retweets.
func (c *Client) Unretweet(ctx context.Context, id string) error {
	return c.post(ctx, fmt.Sprintf(unretweetPath, url.PathEscape(id)))
}

func (c *Client) post(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Data: string(body)}
	}
	return nil
}
