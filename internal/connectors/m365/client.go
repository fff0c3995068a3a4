package m365

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2/clientcredentials"
)

// Microsoft Graph API base URL.
const graphBaseURL = "https://graph.microsoft.com/v1.0"

// graphScope is the client-credentials scope covering all granted
// application permissions.
const graphScope = "https://graph.microsoft.com/.default"

// tokenURLFormat is the tenant-scoped OAuth2 token endpoint.
//
//nolint:gosec // G101: Not credentials, OAuth endpoint URL
const tokenURLFormat = "https://login.microsoftonline.com/%s/oauth2/v2.0/token"

const requestTimeout = 60 * time.Second

// Client issues authenticated REST calls against Microsoft Graph.
// The underlying transport acquires and refreshes client-credentials tokens
// on its own; one Client is created per provider and reused for its lifetime.
// Safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a Graph client authenticating via the client-credentials
// grant for the configured tenant. No token is fetched until the first call.
func NewClient(cfg *Config) *Client {
	cc := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     fmt.Sprintf(tokenURLFormat, cfg.TenantID),
		Scopes:       []string{graphScope},
	}

	httpClient := cc.Client(context.Background())
	httpClient.Timeout = requestTimeout

	return &Client{
		baseURL: graphBaseURL,
		http:    httpClient,
	}
}

// getJSON performs a GET and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	resp, err := c.do(ctx, http.MethodGet, reqURL, nil, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError("graph request", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode graph response: %w", err)
	}
	return nil
}

// getBytes performs a GET and returns the raw response body.
// An empty body yields an empty slice, not an error.
func (c *Client) getBytes(ctx context.Context, path string) ([]byte, error) {
	resp, err := c.do(ctx, http.MethodGet, c.baseURL+path, nil, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError("graph download", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read graph response: %w", err)
	}
	if data == nil {
		data = []byte{}
	}
	return data, nil
}

// putBytes performs a PUT with a raw byte body and decodes the JSON response
// into out. Graph answers 200 for replaced items and 201 for created ones.
func (c *Client) putBytes(ctx context.Context, path string, body []byte, out any) error {
	resp, err := c.do(ctx, http.MethodPut, c.baseURL+path, bytes.NewReader(body), "application/octet-stream")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return statusError("graph upload", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode graph response: %w", err)
		}
	}
	return nil
}

// postJSON performs a POST with a JSON body. Any 2xx status counts as success;
// Graph answers 202 Accepted for fire-and-forget actions like sendMail.
func (c *Client) postJSON(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode graph request: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body), "application/json")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError("graph request", resp.StatusCode)
	}
	return nil
}

// do performs an HTTP request with Graph headers attached.
func (c *Client) do(ctx context.Context, method, reqURL string, body io.Reader, contentType string) (*http.Response, error) {
	if body == nil {
		body = http.NoBody
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("client-request-id", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("graph request: %w", err)
	}
	return resp, nil
}

// statusError builds the error for a non-success Graph status.
func statusError(op string, statusCode int) error {
	if err := WrapError(statusCode); err != nil {
		return fmt.Errorf("%s failed: status %d: %w", op, statusCode, err)
	}
	return fmt.Errorf("%s failed: status %d", op, statusCode)
}
