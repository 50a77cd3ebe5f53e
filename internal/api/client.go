// Package api implements the client for the remote budget service.
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

	"github.com/Veraticus/paisa/internal/common"
	"github.com/Veraticus/paisa/internal/model"
)

// Scope values accepted by the category listing endpoint.
const ScopeRecurring = "recurring"

// Client talks to the budget API. All methods map non-2xx responses to
// common.RemoteError (carrying the server message when one was provided),
// 401 to common.ErrSessionExpired, and connection failures to
// common.TransportError.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// CategoryPayload is one category as it travels in request bodies. The
// amount is sent exactly as entered by the user.
type CategoryPayload struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// UpdatePayload wraps an update submission with its scope.
type UpdatePayload struct {
	Scope      model.UpdateScope `json:"scope"`
	Categories []CategoryPayload `json:"categories"`
}

type categoriesResponse struct {
	Categories []model.Category `json:"categories"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// NewClient creates a budget API client with the service's fixed
// connect/read timeout.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetCategories fetches the current categories. A non-empty scope narrows
// the listing (only ScopeRecurring is meaningful today).
func (c *Client) GetCategories(ctx context.Context, scope string) ([]model.Category, error) {
	url := c.baseURL + "/categories"
	if scope != "" {
		url += "?scope=" + scope
	}

	var out categoriesResponse
	if _, err := c.do(ctx, http.MethodGet, url, nil, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

// InitiateCategories performs the first-time category setup.
func (c *Client) InitiateCategories(ctx context.Context, categories []CategoryPayload) (string, error) {
	return c.do(ctx, http.MethodPost, c.baseURL+"/categories/initiate", categories, nil)
}

// CreateCategories adds new categories alongside the existing ones.
func (c *Client) CreateCategories(ctx context.Context, categories []CategoryPayload) (string, error) {
	return c.do(ctx, http.MethodPost, c.baseURL+"/categories", categories, nil)
}

// UpdateCategories replaces category amounts under the given scope.
func (c *Client) UpdateCategories(ctx context.Context, payload UpdatePayload) (string, error) {
	return c.do(ctx, http.MethodPut, c.baseURL+"/categories", payload, nil)
}

// AdjustBalance applies a single balance mutation to one category.
func (c *Client) AdjustBalance(ctx context.Context, name string, amount json.Number, direction model.BalanceDirection) (string, error) {
	body := struct {
		Name      string                 `json:"name"`
		Amount    json.Number            `json:"amount"`
		Direction model.BalanceDirection `json:"direction"`
	}{Name: name, Amount: amount, Direction: direction}

	return c.do(ctx, http.MethodPatch, c.baseURL+"/categories", body, nil)
}

// PayLoan records a loan payment, which grows the loan balance.
func (c *Client) PayLoan(ctx context.Context, name string, amount json.Number) (string, error) {
	body := struct {
		Name   string      `json:"name"`
		Amount json.Number `json:"amount"`
	}{Name: name, Amount: amount}

	return c.do(ctx, http.MethodPost, c.baseURL+"/loan/payment", body, nil)
}

// do issues one request and decodes the response. It returns the server's
// success message (when the body carried one) and optionally decodes the
// body into out.
func (c *Client) do(ctx context.Context, method, url string, body, out any) (string, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return "", fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	slog.Debug("budget API request", "method", method, "url", url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &common.TransportError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &common.TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var msg messageResponse
		_ = json.Unmarshal(raw, &msg)

		if resp.StatusCode == http.StatusUnauthorized {
			return "", fmt.Errorf("%s %s: %w", method, url, common.ErrSessionExpired)
		}
		return "", &common.RemoteError{Status: resp.StatusCode, Message: msg.Message}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return "", &common.RemoteError{Status: resp.StatusCode, Message: ""}
		}
	}

	var msg messageResponse
	_ = json.Unmarshal(raw, &msg)
	return msg.Message, nil
}
