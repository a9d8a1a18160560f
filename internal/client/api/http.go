package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/udesk/userdesk/internal/client/models"
	"github.com/udesk/userdesk/internal/common"
	"github.com/udesk/userdesk/internal/logging"
)

// maxErrorBody caps how much of an error response we read while decoding.
const maxErrorBody = 1 << 20

// HTTPClient talks JSON over HTTP to the user-management backend.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	logger  logging.Logger
}

func NewHTTPClient(baseURL string, timeout time.Duration, logger logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *HTTPClient) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.doJSON(ctx, http.MethodGet, "/users", nil, &users, http.StatusOK); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) Get(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	path := fmt.Sprintf("/users/%d", id)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &user, http.StatusOK); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) Create(ctx context.Context, draft models.Draft) (*models.User, error) {
	var user models.User
	if err := c.doJSON(ctx, http.MethodPost, "/users", draft, &user, http.StatusCreated); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) Update(ctx context.Context, id int64, draft models.Draft) (*models.User, error) {
	var user models.User
	path := fmt.Sprintf("/users/%d", id)
	if err := c.doJSON(ctx, http.MethodPut, path, draft, &user, http.StatusOK); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) Delete(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/users/%d", id)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, http.StatusNoContent)
}

// doJSON performs one round-trip: optional JSON request body, expected
// success status, optional JSON response decode. Any other status is turned
// into a typed error by decodeError.
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body, out any, wantStatus int) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		apiErr := c.decodeError(resp)
		c.logger.Debug(ctx, "api error response",
			"method", method, "path", path, "status", resp.StatusCode)
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// errorPayload matches the backend's two error body shapes: a field-keyed
// "errors" object for validation failures and a "message" for everything the
// server can explain in one line.
type errorPayload struct {
	Timestamp string            `json:"timestamp"`
	Status    int               `json:"status"`
	Error     string            `json:"error"`
	Errors    map[string]string `json:"errors"`
	Message   string            `json:"message"`
}

func (c *HTTPClient) decodeError(resp *http.Response) error {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err == nil && len(raw) > 0 {
		var payload errorPayload
		if json.Unmarshal(raw, &payload) == nil {
			if len(payload.Errors) > 0 {
				return &ValidationError{Fields: payload.Errors}
			}
			if payload.Message != "" {
				return &APIError{Status: resp.StatusCode, Message: payload.Message}
			}
		}
	}

	if resp.StatusCode == http.StatusNotFound {
		return common.ErrorNotFound
	}
	return fmt.Errorf("unexpected status %d", resp.StatusCode)
}
