// Package workflow implements the HTTP client for the remote
// workflow-automation server that owns post generation and publishing.
package workflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/krawin/postdeck/pkg/domain"
)

// Status selects which slice of posts to fetch
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusHistory  Status = "history" // all non-pending terminal states
)

// Client talks to the automation server. Calls are not retried; failures
// surface to the caller and the user re-triggers the action.
type Client struct {
	baseURL string
	client  *http.Client
}

// Config holds client settings
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// NewClient creates a workflow API client
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// GetPosts fetches posts for the given status, bounded by limit
func (c *Client) GetPosts(ctx context.Context, status Status, limit int) ([]domain.Post, error) {
	q := url.Values{}
	q.Set("status", string(status))
	q.Set("limit", strconv.Itoa(limit))

	var posts []domain.Post
	if err := c.getJSON(ctx, "/posts?"+q.Encode(), &posts); err != nil {
		return nil, fmt.Errorf("get %s posts: %w", status, err)
	}
	return posts, nil
}

// GetStats fetches the aggregate counters snapshot
func (c *Client) GetStats(ctx context.Context) (domain.Stats, error) {
	var stats domain.Stats
	if err := c.getJSON(ctx, "/stats", &stats); err != nil {
		return domain.Stats{}, fmt.Errorf("get stats: %w", err)
	}
	return stats, nil
}

// GetPillarStats fetches per-pillar performance counters
func (c *Client) GetPillarStats(ctx context.Context) ([]domain.PillarStat, error) {
	var stats []domain.PillarStat
	if err := c.getJSON(ctx, "/pillar-stats", &stats); err != nil {
		return nil, fmt.Errorf("get pillar stats: %w", err)
	}
	return stats, nil
}

// decisionRequest is the wire form of a review decision
type decisionRequest struct {
	PostID        string `json:"post_id"`
	Decision      string `json:"decision"`
	EditedContent string `json:"edited_content,omitempty"`
}

// SubmitDecision sends an approve/reject verdict. Non-empty editedContent
// replaces the post body before submission (approve-with-edit path).
func (c *Client) SubmitDecision(ctx context.Context, postID string, decision domain.Decision, editedContent string) error {
	req := decisionRequest{PostID: postID, Decision: string(decision), EditedContent: editedContent}
	if err := c.postJSON(ctx, "/decision", req); err != nil {
		return fmt.Errorf("submit decision for %s: %w", postID, err)
	}
	return nil
}

// scheduleRequest is the wire form of a scheduling call
type scheduleRequest struct {
	PostID      string `json:"post_id"`
	ScheduledAt string `json:"scheduled_at"`
}

// SchedulePost schedules a post for publishing at the given instant.
// Publish-now passes the current time.
func (c *Client) SchedulePost(ctx context.Context, postID string, at time.Time) error {
	req := scheduleRequest{PostID: postID, ScheduledAt: at.UTC().Format(time.RFC3339)}
	if err := c.postJSON(ctx, "/schedule", req); err != nil {
		return fmt.Errorf("schedule post %s: %w", postID, err)
	}
	return nil
}

// GenerateNow triggers asynchronous content generation out-of-band. The
// server acknowledges the trigger; results appear in the pending queue later.
func (c *Client) GenerateNow(ctx context.Context) error {
	if err := c.postJSON(ctx, "/generate", nil); err != nil {
		return fmt.Errorf("trigger generation: %w", err)
	}
	return nil
}

// TestConnection probes server reachability
func (c *Client) TestConnection(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("connection test: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // nothing to do with close error
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("connection test: unexpected status %d", resp.StatusCode)
	}
	return nil
}

// getJSON performs a GET and decodes the JSON response into out
func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck // nothing to do with close error

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// postJSON performs a POST with a JSON body, discarding the response body
func (c *Client) postJSON(ctx context.Context, path string, body interface{}) error {
	var reader io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck // nothing to do with close error

	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		return fmt.Errorf("drain response: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
