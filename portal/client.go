package portal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// AuthScheme is the non-standard Authorization scheme the backend expects.
const AuthScheme = "JWT"

const refreshPath = "/api/auth/token/refresh/"

// Result is the single outcome contract for every API call: ordinary HTTP
// errors do not become Go errors, they come back as OK=false with the
// server's detail message. Only transport failures return an error.
type Result struct {
	OK     bool
	Status int
	Data   json.RawMessage
	Detail string
}

type refreshCall struct {
	done chan struct{}
	err  error
}

// Client issues authenticated requests against the portal API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      SessionStore

	mu         sync.Mutex
	session    *Session
	refreshing *refreshCall
}

func NewClient(baseURL string, store SessionStore) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		store: store,
	}
}

// RestoreSession loads the persisted session, if any.
func (c *Client) RestoreSession() error {
	session, err := c.store.Load()
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.session = session
	c.mu.Unlock()
	return nil
}

func (c *Client) Session() *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return nil
	}
	copied := *c.session
	return &copied
}

func (c *Client) SetSession(session *Session) error {
	c.mu.Lock()
	c.session = session
	c.mu.Unlock()
	return c.store.Save(session)
}

func (c *Client) ClearSession() error {
	c.mu.Lock()
	c.session = nil
	c.refreshing = nil
	c.mu.Unlock()
	return c.store.Clear()
}

// DoJSON marshals body (when non-nil) and issues an authenticated request.
// On a 401 the refresh token is exchanged once and the request retried once.
func (c *Client) DoJSON(ctx context.Context, method, path string, body any) (*Result, error) {
	var payload []byte
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		payload = raw
	}

	return c.doWithRetry(ctx, method, path, payload, "application/json")
}

// DoMultipart sends a prepared multipart body. The caller supplies the
// content type so the boundary stays with the body writer.
func (c *Client) DoMultipart(ctx context.Context, method, path string, body io.Reader, contentType string) (*Result, error) {
	payload, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read multipart body: %w", err)
	}
	return c.doWithRetry(ctx, method, path, payload, contentType)
}

// doWithRetry issues the request; on a 401 the refresh token is exchanged
// once and the request retried once.
func (c *Client) doWithRetry(ctx context.Context, method, path string, payload []byte, contentType string) (*Result, error) {
	staleToken := ""
	if session := c.Session(); session != nil {
		staleToken = session.Access
	}

	result, err := c.do(ctx, method, path, payload, contentType)
	if err != nil {
		return nil, err
	}

	if result.Status == http.StatusUnauthorized && c.Session() != nil {
		if err := c.refreshAccess(ctx, staleToken); err != nil {
			return result, nil
		}
		return c.do(ctx, method, path, payload, contentType)
	}
	return result, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte, contentType string) (*Result, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", contentType)
	}
	if session := c.Session(); session != nil {
		req.Header.Set("Authorization", AuthScheme+" "+session.Access)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	result := &Result{Status: resp.StatusCode}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		result.OK = true
		if resp.StatusCode != http.StatusNoContent {
			result.Data = raw
		}
		return result, nil
	}

	result.Detail = extractDetail(raw, resp.Status)
	return result, nil
}

// extractDetail prefers the server's detail field, then the raw JSON body,
// then the HTTP status line.
func extractDetail(raw []byte, statusLine string) string {
	if len(raw) == 0 {
		return statusLine
	}
	var envelope struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Detail != "" {
		return envelope.Detail
	}
	if json.Valid(raw) {
		return string(raw)
	}
	return statusLine
}

// refreshAccess exchanges the refresh token for a new access token. When
// several requests hit a 401 at once, only one exchange is issued and the
// rest wait for its outcome. staleToken is the access token that earned the
// 401; if it has already been rotated there is nothing left to do.
func (c *Client) refreshAccess(ctx context.Context, staleToken string) error {
	c.mu.Lock()
	if c.session == nil || c.session.Refresh == "" {
		c.mu.Unlock()
		return ErrNoSession
	}
	if staleToken != "" && c.session.Access != staleToken {
		c.mu.Unlock()
		return nil
	}
	if call := c.refreshing; call != nil {
		c.mu.Unlock()
		select {
		case <-call.done:
			return call.err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	call := &refreshCall{done: make(chan struct{})}
	c.refreshing = call
	refreshToken := c.session.Refresh
	c.mu.Unlock()

	call.err = c.exchangeRefresh(ctx, refreshToken)
	close(call.done)

	c.mu.Lock()
	c.refreshing = nil
	c.mu.Unlock()

	return call.err
}

func (c *Client) exchangeRefresh(ctx context.Context, refreshToken string) error {
	payload, err := json.Marshal(map[string]string{"refresh": refreshToken})
	if err != nil {
		return fmt.Errorf("marshal refresh body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+refreshPath, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("refresh rejected %d: %s", resp.StatusCode, extractDetail(raw, resp.Status))
	}

	var body struct {
		Access string `json:"access"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Access == "" {
		return ErrMalformedResponse
	}

	c.mu.Lock()
	if c.session != nil {
		c.session.Access = body.Access
	}
	session := c.session
	c.mu.Unlock()

	if session != nil {
		return c.store.Save(session)
	}
	return nil
}
