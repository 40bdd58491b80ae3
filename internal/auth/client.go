// Package auth is the client for the external authentication collaborator.
// The collaborator owns accounts and tokens; this package only submits
// credentials and keeps the issued bearer token in durable storage.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/agrolink/agrolink/internal/session"
	"github.com/agrolink/agrolink/pkg/logger"
	"github.com/agrolink/agrolink/pkg/storage"
)

// TokenNamespace is the durable storage key for the bearer token.
const TokenNamespace = "agrolink-token"

// ErrNoToken is returned when an authenticated call is made with no stored token.
var ErrNoToken = errors.New("no token stored")

// Client talks to the authentication collaborator over HTTP
type Client struct {
	baseURL string
	http    *http.Client
	tokens  storage.Store
}

// NewClient creates an auth client with request timeouts and traced transport
func NewClient(baseURL string, tokens storage.Store) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout:   10 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		tokens: tokens,
	}
}

// RegisterRequest carries the registration form fields
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// AuthResponse is the collaborator's payload for register and login
type AuthResponse struct {
	Token string        `json:"token"`
	User  *session.User `json:"user"`
}

// Register creates a new account. Required fields are validated before any
// network call is made.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if req.Email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if req.Phone == "" {
		return nil, fmt.Errorf("phone is required")
	}
	if req.Password == "" {
		return nil, fmt.Errorf("password is required")
	}
	if len(req.Password) < 6 {
		return nil, fmt.Errorf("password must be at least 6 characters")
	}

	var resp AuthResponse
	if err := c.post(ctx, "/register", req, &resp); err != nil {
		return nil, err
	}

	logger.Info(ctx).Str("email", req.Email).Msg("Account registered")
	return &resp, nil
}

// Login exchanges credentials for a token. The token is persisted so Me can
// be called across restarts.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if password == "" {
		return nil, fmt.Errorf("password is required")
	}

	body := map[string]string{"email": email, "password": password}

	var resp AuthResponse
	if err := c.post(ctx, "/login", body, &resp); err != nil {
		return nil, err
	}

	if resp.Token != "" {
		if err := c.tokens.Save(ctx, TokenNamespace, []byte(resp.Token)); err != nil {
			return nil, fmt.Errorf("failed to persist token: %w", err)
		}
	}

	logger.Info(ctx).Str("email", email).Msg("Logged in")
	return &resp, nil
}

// Me fetches the current user with the stored bearer token
func (c *Client) Me(ctx context.Context) (*session.User, error) {
	token, err := c.Token(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/me", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	httpResp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth request failed: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, collaboratorError(httpResp)
	}

	var user session.User
	if err := json.NewDecoder(httpResp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &user, nil
}

// Token returns the stored bearer token
func (c *Client) Token(ctx context.Context) (string, error) {
	blob, err := c.tokens.Load(ctx, TokenNamespace)
	if errors.Is(err, storage.ErrNotFound) {
		return "", ErrNoToken
	}
	if err != nil {
		return "", fmt.Errorf("failed to load token: %w", err)
	}
	return string(blob), nil
}

// ClearToken removes the stored token, e.g. on logout
func (c *Client) ClearToken(ctx context.Context) error {
	return c.tokens.Delete(ctx, TokenNamespace)
}

// TokenExpired reports whether the stored token's exp claim has passed.
// Claims are decoded without signature verification; the collaborator owns
// the signing key and verifies on its side.
func (c *Client) TokenExpired(ctx context.Context) (bool, error) {
	token, err := c.Token(ctx)
	if err != nil {
		return false, err
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false, fmt.Errorf("failed to parse token: %w", err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return false, fmt.Errorf("failed to read token expiry: %w", err)
	}
	if exp == nil {
		return false, nil
	}
	return exp.Before(time.Now()), nil
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("auth request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return collaboratorError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// collaboratorError surfaces the collaborator's error message verbatim
func collaboratorError(resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		if body.Message != "" {
			return fmt.Errorf("%s", body.Message)
		}
		if body.Error != "" {
			return fmt.Errorf("%s", body.Error)
		}
	}
	return fmt.Errorf("auth service returned status %d", resp.StatusCode)
}
