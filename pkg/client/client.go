// Package client is a small Go consumer of the hirewizard REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/abhishek622/hirewizard/internal/pagination"
	"github.com/abhishek622/hirewizard/pkg/model"
)

// FallbackMessage is shown when an error carries no usable text.
const FallbackMessage = "Something went wrong"

// APIError is a non-2xx response. Message is the body's "message" field.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// ErrorMessage picks the text to show for err: the server's message, then
// the error text, then FallbackMessage.
func ErrorMessage(err error) string {
	if err == nil {
		return FallbackMessage
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && strings.TrimSpace(apiErr.Message) != "" {
		return apiErr.Message
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return FallbackMessage
}

type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// ListQuery carries the common list parameters.
type ListQuery struct {
	Limit  int
	Offset int
	Search string
}

func (q ListQuery) values() url.Values {
	v := url.Values{}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		v.Set("offset", strconv.Itoa(q.Offset))
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	return v
}

// Do sends body as JSON and decodes the response into out when out is
// non-nil.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rdr)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var envelope struct {
			Message string `json:"message"`
		}
		if json.NewDecoder(resp.Body).Decode(&envelope) == nil {
			apiErr.Message = envelope.Message
		}
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func list[T any](ctx context.Context, c *Client, path string, q ListQuery) (pagination.List[T], error) {
	var out pagination.List[T]
	err := c.Do(ctx, http.MethodGet, path, q.values(), nil, &out)
	return out, err
}

func (c *Client) ListJobs(ctx context.Context, q ListQuery) (pagination.List[model.JobListItem], error) {
	return list[model.JobListItem](ctx, c, "/api/v1/jobs", q)
}

func (c *Client) ListInterviewers(ctx context.Context, q ListQuery) (pagination.List[model.UserRes], error) {
	return list[model.UserRes](ctx, c, "/api/v1/interviewers", q)
}

func (c *Client) ListInterviews(ctx context.Context, q ListQuery) (pagination.List[model.InterviewListItem], error) {
	return list[model.InterviewListItem](ctx, c, "/api/v1/interviews", q)
}

func (c *Client) ListApplicants(ctx context.Context, q ListQuery) (pagination.List[model.Applicant], error) {
	return list[model.Applicant](ctx, c, "/api/v1/applicants", q)
}

func (c *Client) InviteUser(ctx context.Context, req model.InviteUserReq) (*model.UserRes, error) {
	var out struct {
		Data model.UserRes `json:"data"`
	}
	if err := c.Do(ctx, http.MethodPost, "/api/v1/users/invite", nil, req, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// Settings is the server's tuning for list screens.
type Settings struct {
	SearchDebounceMs int64 `json:"searchDebounceMs"`
	PageLimit        int   `json:"pageLimit"`
}

// SearchDebounce returns the advertised debounce as a duration.
func (s Settings) SearchDebounce() time.Duration {
	return time.Duration(s.SearchDebounceMs) * time.Millisecond
}

func (c *Client) Settings(ctx context.Context) (*Settings, error) {
	var out struct {
		Data Settings `json:"data"`
	}
	if err := c.Do(ctx, http.MethodGet, "/api/v1/settings", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}
