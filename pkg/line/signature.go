package line

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

// SignatureHeader carries the body signature on webhook requests.
const SignatureHeader = "X-Line-Signature"

// WebhookContextKey is the gin context key a verified WebhookRequest is
// stored under.
const WebhookContextKey = "line.webhook"

var ErrInvalidSignature = errors.New("invalid line signature")

// Sign returns the base64 HMAC-SHA256 of body under the channel secret.
func Sign(channelSecret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(channelSecret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// ValidateSignature reports whether signature matches body.
func ValidateSignature(channelSecret string, body []byte, signature string) bool {
	got, err := base64.StdEncoding.DecodeString(signature)
	if err != nil || len(got) == 0 {
		return false
	}
	mac := hmac.New(sha256.New, []byte(channelSecret))
	mac.Write(body)
	return hmac.Equal(got, mac.Sum(nil))
}

// ParseWebhook verifies and decodes a webhook body.
func ParseWebhook(channelSecret string, body []byte, signature string) (WebhookRequest, error) {
	if !ValidateSignature(channelSecret, body, signature) {
		return WebhookRequest{}, ErrInvalidSignature
	}
	var req WebhookRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return WebhookRequest{}, fmt.Errorf("failed to decode webhook body: %w", err)
	}
	return req, nil
}
