// Package client is a Go client for the journal HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/mindset-api/internal/api"
	"github.com/phrazzld/mindset-api/internal/api/shared"
	"github.com/phrazzld/mindset-api/internal/domain"
	"github.com/phrazzld/mindset-api/internal/query"
	"github.com/phrazzld/mindset-api/internal/resources"
	"github.com/phrazzld/mindset-api/internal/store"
)

// DefaultTimeout bounds each request when no http.Client is supplied.
const DefaultTimeout = 10 * time.Second

// ErrNoSession is returned by journal calls made before a session is set.
var ErrNoSession = errors.New("no session: run 'session new' or pass --session")

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
	TraceID    string
}

func (e *APIError) Error() string {
	if e.TraceID != "" {
		return fmt.Sprintf("server returned %d: %s (trace %s)", e.StatusCode, e.Message, e.TraceID)
	}
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// Client calls the journal API on behalf of one session.
type Client struct {
	baseURL    string
	httpClient *http.Client
	sessionID  uuid.UUID
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithSession sets the session used by journal calls.
func WithSession(id uuid.UUID) Option {
	return func(c *Client) { c.sessionID = id }
}

// New creates a Client for the server at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SessionID returns the session used by journal calls.
func (c *Client) SessionID() uuid.UUID {
	return c.sessionID
}

// StartSession opens a session and makes it the client's session.
func (c *Client) StartSession(ctx context.Context) (uuid.UUID, error) {
	var resp api.SessionResponse
	if err := c.do(ctx, http.MethodPost, "/api/session", false, nil, &resp); err != nil {
		return uuid.Nil, err
	}
	c.sessionID = resp.SessionID
	return resp.SessionID, nil
}

// EndSession closes the client's session.
func (c *Client) EndSession(ctx context.Context) error {
	if err := c.do(ctx, http.MethodDelete, "/api/session", true, nil, nil); err != nil {
		return err
	}
	c.sessionID = uuid.Nil
	return nil
}

// AddReflection records a reflection. A nil score lets the server apply its default.
func (c *Client) AddReflection(ctx context.Context, req api.CreateReflectionRequest) (*domain.Reflection, error) {
	var r domain.Reflection
	if err := c.do(ctx, http.MethodPost, "/api/reflections", true, req, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// ListReflections returns the session's reflections in insertion order.
func (c *Client) ListReflections(ctx context.Context) ([]domain.Reflection, error) {
	var resp api.ListResponse[domain.Reflection]
	if err := c.do(ctx, http.MethodGet, "/api/reflections", true, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// AddGoal creates a goal and returns its index.
func (c *Client) AddGoal(ctx context.Context, req api.CreateGoalRequest) (int, *domain.Goal, error) {
	var resp api.CreateGoalResponse
	if err := c.do(ctx, http.MethodPost, "/api/goals", true, req, &resp); err != nil {
		return -1, nil, err
	}
	return resp.Index, &resp.Goal, nil
}

// ListGoals returns the session's goals in insertion order.
func (c *Client) ListGoals(ctx context.Context) ([]domain.Goal, error) {
	var resp api.ListResponse[domain.Goal]
	if err := c.do(ctx, http.MethodGet, "/api/goals", true, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// UpdateGoalProgress sets the progress of the goal at index.
func (c *Client) UpdateGoalProgress(ctx context.Context, index, progress int) (*domain.Goal, error) {
	var g domain.Goal
	path := fmt.Sprintf("/api/goals/%d/progress", index)
	if err := c.do(ctx, http.MethodPut, path, true, api.UpdateProgressRequest{Progress: &progress}, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// MindsetSeries returns the chart series.
func (c *Client) MindsetSeries(ctx context.Context) ([]query.SeriesPoint, error) {
	var resp api.ListResponse[query.SeriesPoint]
	if err := c.do(ctx, http.MethodGet, "/api/series/mindset", true, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// Dashboard returns the dashboard projection.
func (c *Client) Dashboard(ctx context.Context) (query.Dashboard, error) {
	var d query.Dashboard
	err := c.do(ctx, http.MethodGet, "/api/dashboard", true, nil, &d)
	return d, err
}

// Export returns the whole journal.
func (c *Client) Export(ctx context.Context) (store.Snapshot, error) {
	var s store.Snapshot
	err := c.do(ctx, http.MethodGet, "/api/export", true, nil, &s)
	return s, err
}

// Resources returns the growth-mindset resource library.
func (c *Client) Resources(ctx context.Context) (*resources.Library, error) {
	var lib resources.Library
	if err := c.do(ctx, http.MethodGet, "/api/resources", false, nil, &lib); err != nil {
		return nil, err
	}
	return &lib, nil
}

// Health checks the server.
func (c *Client) Health(ctx context.Context) (api.HealthResponse, error) {
	var h api.HealthResponse
	err := c.do(ctx, http.MethodGet, "/health", false, nil, &h)
	return h, err
}

func (c *Client) do(ctx context.Context, method, path string, needsSession bool, body, out interface{}) error {
	if needsSession && c.sessionID == uuid.Nil {
		return ErrNoSession
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if needsSession {
		req.Header.Set(shared.SessionIDHeader, c.sessionID.String())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var errResp shared.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
			apiErr.Message = errResp.Error
			apiErr.TraceID = errResp.TraceID
		}
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// GoalSummaries returns the dashboard view of each goal.
func (c *Client) GoalSummaries(ctx context.Context) ([]query.GoalSummary, error) {
	var resp api.ListResponse[query.GoalSummary]
	if err := c.do(ctx, http.MethodGet, "/api/goals/summaries", true, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// ListAchievements returns the session's achievements.
func (c *Client) ListAchievements(ctx context.Context) ([]domain.Achievement, error) {
	var resp api.ListResponse[domain.Achievement]
	if err := c.do(ctx, http.MethodGet, "/api/achievements", true, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}
