// Package api implements the interview service port over its REST interface.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"intervo/internal/domain"
	"intervo/internal/ports"
)

// Client calls the remote interview service. It implements
// ports.InterviewService. The client performs no retries: a failed call is
// reported to the caller, who may simply repeat the user action.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	token      string
}

// NewClient creates a client for the service at baseURL. The token, when
// non-empty, is sent as a bearer credential. A nil httpClient falls back to
// http.DefaultClient.
func NewClient(baseURL, token string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
		token:      token,
	}
}

type sessionBody struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type sessionSummaryBody struct {
	CreatedAt time.Time `json:"createdAt"`
	ID        string    `json:"id"`
	Role      string    `json:"role,omitempty"`
	Status    string    `json:"status"`
	Title     string    `json:"title"`
}

type startBody struct {
	Question string `json:"question"`
}

type resultBody struct {
	CreatedAt time.Time `json:"createdAt"`
	Feedback  string    `json:"feedback"`
	ID        string    `json:"id"`
	Score     int       `json:"score"`
	SessionID string    `json:"sessionId"`
}

// chatBody is the wire shape of the answer-submission response. The done
// field discriminates continuation from completion; decoding maps it onto
// the port's two-case variant so nothing downstream probes the boolean.
type chatBody struct {
	Done     bool        `json:"done"`
	Question string      `json:"question,omitempty"`
	Result   *resultBody `json:"result,omitempty"`
}

func (r resultBody) toDomain() domain.Result {
	return domain.Result{
		CreatedAt: r.CreatedAt,
		Feedback:  r.Feedback,
		ID:        r.ID,
		Score:     r.Score,
		SessionID: r.SessionID,
	}
}

// CreateSession creates a new interview session on the service
func (c *Client) CreateSession(ctx context.Context, title string) (ports.CreatedSession, error) {
	var body sessionBody
	err := c.do(ctx, http.MethodPost, "/v1/interviews", map[string]string{"title": title}, &body)
	if err != nil {
		return ports.CreatedSession{}, err
	}
	return ports.CreatedSession{ID: body.ID, Title: body.Title}, nil
}

// StartInterview binds the role to the session and returns the first AI
// question
func (c *Client) StartInterview(ctx context.Context, sessionID, role string) (string, error) {
	var body startBody
	path := fmt.Sprintf("/v1/ai/%s/start", sessionID)
	if err := c.do(ctx, http.MethodPost, path, map[string]string{"role": role}, &body); err != nil {
		return "", err
	}
	return body.Question, nil
}

// SubmitAnswer sends an answer and returns either the next question or the
// terminal result
func (c *Client) SubmitAnswer(ctx context.Context, sessionID, answer string) (ports.AnswerOutcome, error) {
	var body chatBody
	path := fmt.Sprintf("/v1/ai/%s/chat", sessionID)
	if err := c.do(ctx, http.MethodPost, path, map[string]string{"answer": answer}, &body); err != nil {
		return nil, err
	}
	if !body.Done {
		return ports.Continuation{Question: body.Question}, nil
	}
	if body.Result == nil {
		return nil, fmt.Errorf("submit answer: done response without result")
	}
	return ports.Completion{Result: body.Result.toDomain()}, nil
}

// FinishInterview ends the session early and returns its result
func (c *Client) FinishInterview(ctx context.Context, sessionID string) (domain.Result, error) {
	var body chatBody
	path := fmt.Sprintf("/v1/ai/%s/finish", sessionID)
	if err := c.do(ctx, http.MethodPost, path, nil, &body); err != nil {
		return domain.Result{}, err
	}
	if body.Result == nil {
		return domain.Result{}, fmt.Errorf("finish interview: response without result")
	}
	return body.Result.toDomain(), nil
}

// DeleteSession removes the session from the service
func (c *Client) DeleteSession(ctx context.Context, sessionID string) error {
	path := fmt.Sprintf("/v1/interviews/%s", sessionID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// ListSessions returns all sessions held by the service for the current user
func (c *Client) ListSessions(ctx context.Context) ([]domain.SessionSummary, error) {
	var body []sessionSummaryBody
	if err := c.do(ctx, http.MethodGet, "/v1/interviews", nil, &body); err != nil {
		return nil, err
	}
	summaries := make([]domain.SessionSummary, 0, len(body))
	for _, s := range body {
		summaries = append(summaries, domain.SessionSummary{
			CreatedAt: s.CreatedAt,
			ID:        s.ID,
			Role:      s.Role,
			Status:    s.Status,
			Title:     s.Title,
		})
	}
	return summaries, nil
}

// do performs one request against the service. A non-2xx status is an error;
// the core does not distinguish failure classes beyond that.
func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Interview service request failed",
			"method", method, "path", path, "error", err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Error("Interview service returned error status",
			"method", method, "path", path, "status", resp.StatusCode)
		return fmt.Errorf("%s %s: service returned status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
