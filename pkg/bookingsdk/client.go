package bookingsdk

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

// SDKClient talks to the public endpoints and opens Sessions.
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

func (c *SDKClient) url(path string) string {
	return c.BaseURL + path
}

// do sends a request. A non-nil body is JSON encoded.
func (c *SDKClient) do(ctx context.Context, method, path string, body any, headers map[string]string) (*http.Response, error) {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), rdr)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

// decodeJSON reads the response into target, or into an *APIError when
// the status is not expectedStatus.
func decodeJSON(resp *http.Response, target any, expectedStatus int) error {
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, b)
	}
	if target == nil {
		return nil
	}
	if err := json.Unmarshal(b, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Register creates a patient account and returns its id.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (string, error) {
	resp, err := c.do(ctx, http.MethodPost, "/register", req, nil)
	if err != nil {
		return "", err
	}

	var out CreatedResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return "", err
	}
	return out.ID, nil
}

// Login exchanges credentials for a Session.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*Session, error) {
	resp, err := c.do(ctx, http.MethodPost, "/login", LoginRequest{Email: email, Password: password}, nil)
	if err != nil {
		return nil, err
	}

	var out LoginResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return newSession(c, out), nil
}

func (c *SDKClient) ListDoctors(ctx context.Context) ([]Doctor, error) {
	resp, err := c.do(ctx, http.MethodGet, "/doctors", nil, nil)
	if err != nil {
		return nil, err
	}

	var out DoctorsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Doctors, nil
}

// Bootstrap seeds the initial doctors. It only succeeds once per system.
func (c *SDKClient) Bootstrap(ctx context.Context, token string, req BootstrapRequest) (*BootstrapResponse, error) {
	resp, err := c.do(ctx, http.MethodPost, "/bootstrap", req, map[string]string{
		"X-Bootstrap-Token": token,
	})
	if err != nil {
		return nil, err
	}

	var out BootstrapResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/livez")
}

func (c *SDKClient) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/readyz")
}

func (c *SDKClient) health(ctx context.Context, path string) (*HealthResponse, error) {
	resp, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}
