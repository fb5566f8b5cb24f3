package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/RitishHUB/polling-frountend/internal/client/models"
	"github.com/RitishHUB/polling-frountend/internal/logging"
)

// HTTPClient talks JSON to the polling API rooted at baseURL
// (e.g. "http://localhost:5000/api").
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// NewHTTPClient builds a client whose every request carries the token
// yielded by tokens. The underlying http.Client has no timeout.
func NewHTTPClient(baseURL string, tokens TokenSource, log logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("api url %q: scheme must be http or https", baseURL)
	}
	if log == nil {
		log = logging.Nop{}
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(u.String(), "/"),
		http:    &http.Client{Transport: &bearerTransport{base: http.DefaultTransport, tokens: tokens}},
		log:     log,
	}, nil
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (*models.Session, error) {
	var s models.Session
	if err := c.do(ctx, http.MethodPost, "/auth/login", creds, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*models.Session, error) {
	var s models.Session
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *HTTPClient) ListPolls(ctx context.Context) ([]models.Poll, error) {
	var polls []models.Poll
	if err := c.do(ctx, http.MethodGet, "/polls", nil, &polls); err != nil {
		return nil, err
	}
	return polls, nil
}

func (c *HTTPClient) CreatePoll(ctx context.Context, draft *models.PollDraft) (*models.Poll, error) {
	var p models.Poll
	if err := c.do(ctx, http.MethodPost, "/polls", draft, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) DeletePoll(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/polls/"+url.PathEscape(id), nil, nil)
}

func (c *HTTPClient) Vote(ctx context.Context, pollID string, optionIndex int) (*models.VoteResponse, error) {
	var resp models.VoteResponse
	path := "/polls/" + url.PathEscape(pollID) + "/vote"
	if err := c.do(ctx, http.MethodPost, path, models.VoteRequest{OptionIndex: optionIndex}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) PollResults(ctx context.Context, pollID string) (*models.PollResults, error) {
	var res models.PollResults
	if err := c.do(ctx, http.MethodGet, "/polls/"+url.PathEscape(pollID)+"/results", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(id), nil, nil)
}

func (c *HTTPClient) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	var st models.AdminStats
	if err := c.do(ctx, http.MethodGet, "/users/admin/stats", nil, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (c *HTTPClient) StudentDashboard(ctx context.Context) (*models.StudentDashboard, error) {
	var d models.StudentDashboard
	if err := c.do(ctx, http.MethodGet, "/users/student/dashboard", nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPut, "/users/profile", update, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// do sends one request and decodes a 2xx JSON answer into out (skipped when
// out is nil or the body is empty).
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "api request failed", "method", method, "path", path, "err", err)
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "api request", "method", method, "path", path,
		"status", resp.StatusCode, "elapsed", time.Since(start))

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func decodeAPIError(status int, data []byte) error {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	ae := &APIError{StatusCode: status}
	if json.Unmarshal(data, &body) == nil {
		ae.Message = body.Message
		if ae.Message == "" {
			ae.Message = body.Error
		}
	}
	return ae
}
