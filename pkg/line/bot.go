package line

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const defaultAPIURL = "https://api.line.me"

// Config configures the Messaging API client. A static AccessToken is used
// when set; otherwise tokens are issued from ChannelID and ChannelSecret and
// reused until they expire.
type Config struct {
	ChannelID     string
	ChannelSecret string
	AccessToken   string
	APIURL        string
	Timeout       time.Duration
}

// Bot is the LINE Messaging API client.
type Bot struct {
	apiURL     string
	httpClient *http.Client
}

// APIError is a non-2xx answer from the Messaging API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("line api error %d: %s", e.StatusCode, e.Body)
}

// NewBot creates a client whose requests carry a channel access token.
func NewBot(ctx context.Context, cfg Config) *Bot {
	apiURL := cfg.APIURL
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	var ts oauth2.TokenSource
	if cfg.AccessToken != "" {
		ts = oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.AccessToken, TokenType: "Bearer"})
	} else {
		cc := clientcredentials.Config{
			ClientID:     cfg.ChannelID,
			ClientSecret: cfg.ChannelSecret,
			TokenURL:     apiURL + "/v2/oauth/accessToken",
			AuthStyle:    oauth2.AuthStyleInParams,
		}
		ts = cc.TokenSource(ctx)
	}

	httpClient := oauth2.NewClient(ctx, ts)
	httpClient.Timeout = cfg.Timeout
	return &Bot{apiURL: apiURL, httpClient: httpClient}
}

// Reply answers an event through its reply token.
func (b *Bot) Reply(ctx context.Context, replyToken string, messages ...Message) error {
	if replyToken == "" || len(messages) == 0 {
		return nil
	}
	return b.post(ctx, "/v2/bot/message/reply", replyRequest{ReplyToken: replyToken, Messages: capMessages(messages)})
}

// Push sends messages to a user outside a reply. An empty recipient is a
// no-op.
func (b *Bot) Push(ctx context.Context, to string, messages ...Message) error {
	if to == "" || len(messages) == 0 {
		return nil
	}
	return b.post(ctx, "/v2/bot/message/push", pushRequest{To: to, Messages: capMessages(messages)})
}

// Profile fetches a user's display name and picture.
func (b *Bot) Profile(ctx context.Context, userID string) (Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.apiURL+"/v2/bot/profile/"+url.PathEscape(userID), nil)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return Profile{}, &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var p Profile
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return Profile{}, fmt.Errorf("failed to decode profile: %w", err)
	}
	return p, nil
}

func (b *Bot) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.apiURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	return nil
}

func capMessages(m []Message) []Message {
	if len(m) > MaxMessages {
		return m[:MaxMessages]
	}
	return m
}
