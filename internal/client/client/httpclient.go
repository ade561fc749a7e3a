package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// HTTPClient talks to the AuthGate HTTP API. A cookie jar holds the session
// cookie between calls, so a successful Signin or Signup leaves the client
// authenticated for subsequent requests.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewAuthGateClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar, Timeout: timeout},
	}
	return c, nil
}

// apiResponse is the common body shape of all API replies.
type apiResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

func (c *HTTPClient) do(ctx context.Context, method string, path string, payload any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var apiResp apiResponse
	_ = json.NewDecoder(resp.Body).Decode(&apiResp)

	return c.mapError(resp.StatusCode, &apiResp)
}

// mapError converts an API error reply into a sentinel the CLI can branch on,
// keeping the server's message for display.
func (c *HTTPClient) mapError(status int, resp *apiResponse) error {
	detail := resp.Message
	if len(resp.Errors) > 0 {
		detail = detail + ": " + strings.Join(resp.Errors, "; ")
	}

	switch status {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrValidation, detail)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, detail)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, detail)
	default:
		return fmt.Errorf("request failed (%d): %s", status, detail)
	}
}

func (c *HTTPClient) Signup(ctx context.Context, email string, password string, name string) error {
	return c.do(ctx, http.MethodPost, "/auth/signup", map[string]string{
		"email":    email,
		"password": password,
		"name":     name,
	})
}

func (c *HTTPClient) Signin(ctx context.Context, email string, password string) error {
	return c.do(ctx, http.MethodPost, "/auth/signin", map[string]string{
		"email":    email,
		"password": password,
	})
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil)
}

func (c *HTTPClient) ValidateToken(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/auth/validate-token", nil)
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil)
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}
