package services

import (
	"bytes"
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var ErrSecretNotConfigured = errors.New("passkey secret not configured")

// PasskeyVerifier decides whether a submitted passkey opens the gate.
type PasskeyVerifier interface {
	Verify(ctx context.Context, passkey string) (bool, error)
}

// NormalizePasskey upper-cases and trims, so comparisons ignore case and
// surrounding whitespace.
func NormalizePasskey(s string) string {
	return strings.TrimSpace(strings.ToUpper(s))
}

// HashPasskey returns the bcrypt hash to put in SECRET_PASSKEY_HASH.
func HashPasskey(passkey string) (string, error) {
	normalized := NormalizePasskey(passkey)
	if normalized == "" {
		return "", errors.New("passkey is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(normalized), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// PasskeySecret is the configured gate secret, plaintext or bcrypt hash.
// A hash wins when both are set.
type PasskeySecret struct {
	plain string
	hash  []byte
}

func NewPasskeySecret(plain, hash string) PasskeySecret {
	s := PasskeySecret{plain: NormalizePasskey(plain)}
	if hash = strings.TrimSpace(hash); hash != "" {
		s.hash = []byte(hash)
	}
	return s
}

func PasskeySecretFromEnv() PasskeySecret {
	return NewPasskeySecret(os.Getenv("SECRET_PASSKEY"), os.Getenv("SECRET_PASSKEY_HASH"))
}

func (s PasskeySecret) Configured() bool {
	return s.plain != "" || len(s.hash) > 0
}

func (s PasskeySecret) Matches(input string) bool {
	normalized := NormalizePasskey(input)
	if len(s.hash) > 0 {
		return bcrypt.CompareHashAndPassword(s.hash, []byte(normalized)) == nil
	}
	if s.plain == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(normalized), []byte(s.plain)) == 1
}

// LocalVerifier checks passkeys in process.
type LocalVerifier struct {
	Secret PasskeySecret
}

func (v *LocalVerifier) Verify(_ context.Context, passkey string) (bool, error) {
	if !v.Secret.Configured() {
		return false, ErrSecretNotConfigured
	}
	return v.Secret.Matches(passkey), nil
}

// VerifyResponse is the body of the verification endpoint.
type VerifyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type verifyRequest struct {
	Passkey string `json:"passkey"`
}

// RemoteVerifier calls a verification endpoint over HTTP.
type RemoteVerifier struct {
	URL    string
	Token  string
	Client *http.Client
}

const defaultVerifyTimeout = 10 * time.Second

func NewRemoteVerifier(url, token string, timeout time.Duration) *RemoteVerifier {
	if timeout <= 0 {
		timeout = defaultVerifyTimeout
	}
	return &RemoteVerifier{
		URL:    url,
		Token:  token,
		Client: &http.Client{Timeout: timeout},
	}
}

func (v *RemoteVerifier) Verify(ctx context.Context, passkey string) (bool, error) {
	body, err := json.Marshal(verifyRequest{Passkey: strings.TrimSpace(passkey)})
	if err != nil {
		return false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.URL, bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("build verify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if v.Token != "" {
		req.Header.Set("Authorization", "Bearer "+v.Token)
	}

	resp, err := v.Client.Do(req)
	if err != nil {
		return false, fmt.Errorf("verify request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return false, fmt.Errorf("read verify response: %w", err)
	}

	var out VerifyResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return false, fmt.Errorf("decode verify response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, fmt.Errorf("verify endpoint returned %d: %s", resp.StatusCode, out.Error)
	}
	return out.Success, nil
}

// NewPasskeyVerifierFromEnv uses the remote endpoint when PASSKEY_VERIFY_URL
// is set and the local secret otherwise.
func NewPasskeyVerifierFromEnv() PasskeyVerifier {
	url := os.Getenv("PASSKEY_VERIFY_URL")
	if url == "" {
		return &LocalVerifier{Secret: PasskeySecretFromEnv()}
	}

	timeout := defaultVerifyTimeout
	if raw := os.Getenv("PASSKEY_VERIFY_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			timeout = d
		}
	}
	return NewRemoteVerifier(url, os.Getenv("PASSKEY_VERIFY_TOKEN"), timeout)
}
