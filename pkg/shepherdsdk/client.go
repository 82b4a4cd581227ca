package shepherdsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// SDKClient talks to a Shepherd server. Unauthenticated calls live here;
// everything else goes through a Session.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *SDKClient) Livez(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/livez")
}

// Readyz returns the readiness report. A 503 is returned as the report, not
// as an error.
func (c *SDKClient) Readyz(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/readyz")
}

func (c *SDKClient) health(ctx context.Context, path string) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var health HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &health, nil
}

func (c *SDKClient) JWKS(ctx context.Context) (*JWKSResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/.well-known/jwks.json", nil, nil)
	if err != nil {
		return nil, err
	}
	var jwks JWKSResponse
	if err := decodeJSON(resp, &jwks, http.StatusOK); err != nil {
		return nil, err
	}
	return &jwks, nil
}

// Bootstrap creates the first Senior Pastor account.
func (c *SDKClient) Bootstrap(ctx context.Context, token string, req BootstrapRequest) (*UserResponse, error) {
	body, err := encodeBody(req)
	if err != nil {
		return nil, err
	}
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/bootstrap", body, map[string]string{
		"Content-Type":      "application/json",
		"X-Bootstrap-Token": token,
	})
	if err != nil {
		return nil, err
	}
	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusCreated); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *SDKClient) Signup(ctx context.Context, req SignupRequest) (*UserResponse, error) {
	body, err := encodeBody(req)
	if err != nil {
		return nil, err
	}
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/auth/signup", body, jsonHeaders)
	if err != nil {
		return nil, err
	}
	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusCreated); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *SDKClient) Signin(ctx context.Context, email, password string) (*TokenResponse, error) {
	body, err := encodeBody(SigninRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/auth/signin", body, jsonHeaders)
	if err != nil {
		return nil, err
	}
	var tok TokenResponse
	if err := decodeJSON(resp, &tok, http.StatusOK); err != nil {
		return nil, err
	}
	return &tok, nil
}

// Authenticate signs in and returns a Session carrying the access token.
func (c *SDKClient) Authenticate(ctx context.Context, email, password string) (*Session, error) {
	tok, err := c.Signin(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return c.NewSession(tok.AccessToken), nil
}

// NewSession wraps an existing access token.
func (c *SDKClient) NewSession(accessToken string) *Session {
	return &Session{client: c, accessToken: accessToken}
}

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

func (c *SDKClient) url(path string) string {
	return c.BaseURL + path
}

func (c *SDKClient) doRequest(
	ctx context.Context,
	method, path string,
	body io.Reader,
	headers map[string]string,
) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

func encodeBody(v any) (io.Reader, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	return bytes.NewReader(data), nil
}

// decodeJSON reads resp into target when it has expectedStatus, otherwise
// returns an *APIError.
func decodeJSON(resp *http.Response, target any, expectedStatus int) error {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != expectedStatus {
		if err := parseErrorResponse(resp, bodyBytes); err != nil {
			return err
		}
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func checkStatusNoContent(resp *http.Response) error {
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		bodyBytes, _ := io.ReadAll(resp.Body)
		if err := parseErrorResponse(resp, bodyBytes); err != nil {
			return err
		}
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
