package users

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jrammler/userdesk/internal/entity"
	"github.com/jrammler/userdesk/internal/observability"
)

const (
	collectionPath  = "/api/users"
	RequestIdHeader = "X-Request-ID"
	maxErrorBody    = 4096
)

// HttpClient is satisfied by *http.Client.
type HttpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("users api responded with status %d", e.StatusCode)
	}
	return fmt.Sprintf("users api responded with status %d: %s", e.StatusCode, e.Body)
}

// Client maps user operations onto the /api/users resource. Failures are
// logged and returned unchanged; nothing is retried.
type Client struct {
	baseURL string
	http    HttpClient
	metrics *observability.Metrics
}

func NewClient(baseURL string, httpClient HttpClient, metrics *observability.Metrics) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		metrics: metrics,
	}
}

func (c *Client) Create(ctx context.Context, payload entity.UserPayload) error {
	err := c.do(ctx, "create", http.MethodPost, collectionPath, payload, nil)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to create user", "error", err)
		return err
	}
	return nil
}

func (c *Client) Update(ctx context.Context, id int, payload entity.UserPayload) error {
	err := c.do(ctx, "update", http.MethodPut, userPath(id), payload, nil)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to update user", "user_id", id, "error", err)
		return err
	}
	return nil
}

func (c *Client) Delete(ctx context.Context, id int) error {
	err := c.do(ctx, "delete", http.MethodDelete, userPath(id), nil, nil)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to delete user", "user_id", id, "error", err)
		return err
	}
	return nil
}

func (c *Client) GetOne(ctx context.Context, id int) (entity.User, error) {
	var user entity.User
	err := c.do(ctx, "get_one", http.MethodGet, userPath(id), nil, &user)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to fetch user", "user_id", id, "error", err)
		return entity.User{}, err
	}
	return user, nil
}

func (c *Client) GetAll(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	err := c.do(ctx, "get_all", http.MethodGet, collectionPath, nil, &users)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to fetch users", "error", err)
		return nil, err
	}
	return users, nil
}

func userPath(id int) string {
	return fmt.Sprintf("%s/%d", collectionPath, id)
}

func (c *Client) do(ctx context.Context, op, method, path string, body any, out any) (err error) {
	if c.metrics != nil {
		start := time.Now()
		defer func() {
			outcome := "ok"
			if err != nil {
				outcome = "error"
			}
			c.metrics.ApiRequestsTotal.WithLabelValues(op, outcome).Inc()
			c.metrics.ApiRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
		}()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestId := uuid.NewString()
	req.Header.Set(RequestIdHeader, requestId)

	slog.DebugContext(ctx, "Sending users api request", "op", op, "method", method, "path", path, "request_id", requestId)
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(data)),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
