package agentd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/Kirizan/kitt-sub000/pkg/config"
	"github.com/Kirizan/kitt-sub000/pkg/models"
	"github.com/Kirizan/kitt-sub000/pkg/version"
)

// maxRetryBackoff caps one retry sleep. The agent never gives up on
// server calls; it keeps retrying until its context is cancelled.
const maxRetryBackoff = 30 * time.Second

// Client talks to the orchestration server with the agent's bearer
// token.
type Client struct {
	baseURL string
	name    string
	token   string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient creates a server client from the agent config.
func NewClient(cfg *config.AgentConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.ServerURL, "/"),
		name:    cfg.Name,
		token:   cfg.Token,
		http:    &http.Client{Timeout: cfg.RequestTimeout},
		logger:  logger,
	}
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("User-Agent", version.Full())

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("server returned %d for %s: %s", resp.StatusCode, path, strings.TrimSpace(string(msg)))
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// Heartbeat sends one heartbeat. Single attempt: the heartbeat loop is
// its own retry mechanism.
func (c *Client) Heartbeat(ctx context.Context, req models.HeartbeatRequest) (*models.HeartbeatResponse, error) {
	var resp models.HeartbeatResponse
	if err := c.post(ctx, "/api/v1/agents/"+c.name+"/heartbeat", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ReportResult posts the terminal report for a command, retrying until
// it lands or the context is cancelled. Losing a terminal report would
// strand the run until the server watchdog fires.
func (c *Client) ReportResult(ctx context.Context, req models.ResultRequest) error {
	return c.retry(ctx, "report result", func() error {
		return c.post(ctx, "/api/v1/agents/"+c.name+"/results", req, nil)
	})
}

// PostStatus reports an intermediate command status (running), retrying.
func (c *Client) PostStatus(ctx context.Context, commandID, status string) error {
	return c.retry(ctx, "post status", func() error {
		return c.post(ctx, "/api/v1/commands/"+commandID+"/status",
			map[string]string{"status": status}, nil)
	})
}

// PostLog streams one log line. Best effort, single attempt: the tail
// rides with the result report anyway.
func (c *Client) PostLog(ctx context.Context, commandID, line string) error {
	return c.post(ctx, "/api/v1/commands/"+commandID+"/log",
		models.LogLineRequest{Line: line}, nil)
}

func (c *Client) retry(ctx context.Context, what string, op func() error) error {
	for attempt := 0; ; attempt++ {
		err := op()
		if err == nil {
			return nil
		}
		d := retryBackoff(attempt)
		c.logger.Warn("server call failed, retrying",
			slog.String("op", what),
			slog.Duration("backoff", d),
			slog.Any("error", err))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(d):
		}
	}
}

// retryBackoff is exponential with full jitter, capped at 30s.
func retryBackoff(attempt int) time.Duration {
	if attempt > 5 {
		attempt = 5
	}
	max := time.Second << attempt
	if max > maxRetryBackoff {
		max = maxRetryBackoff
	}
	return max/2 + time.Duration(rand.Int63n(int64(max/2)+1))
}
