// Package guestapi provides a client for the external guest-messaging API.
//
// It performs single delivery attempts and classifies the outcome; retry
// policy lives with the caller.
package guestapi

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
)

// ErrGuestNotFound means the recipient is unknown to the messaging API.
// Terminal: retrying cannot succeed.
var ErrGuestNotFound = errors.New("guest not found")

// RateLimitError means the API asked us to slow down. Wait is derived from
// the Retry-After hint and must elapse before the next attempt.
type RateLimitError struct {
	Wait time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited, retry after %s", e.Wait)
}

// ServerError is a 5xx response. Transient: the caller may retry.
type ServerError struct {
	Status int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("guest API server error %d", e.Status)
}

// APIError is any other 4xx response. Terminal: the request itself is bad.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	body := e.Body
	if body == "" {
		body = "unknown error"
	}
	return fmt.Sprintf("guest API error %d: %s", e.Status, body)
}

// Client represents a guest-messaging API client.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a new guest API client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// sendMessageRequest represents the payload for the messages endpoint.
type sendMessageRequest struct {
	Message string `json:"message"`
}

// Send delivers one message to one guest and classifies the response:
// nil on 2xx, ErrGuestNotFound on 404, *RateLimitError on 429,
// *ServerError on 5xx and *APIError (with the response body) otherwise.
func (c *Client) Send(ctx context.Context, guestID, message string) error {
	endpoint := fmt.Sprintf("%s/guests/%s/messages", c.baseURL, url.PathEscape(guestID))

	body, err := json.Marshal(sendMessageRequest{Message: message})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return ErrGuestNotFound
	case resp.StatusCode == http.StatusTooManyRequests:
		return &RateLimitError{Wait: parseRetryAfter(resp.Header.Get("Retry-After"))}
	case resp.StatusCode >= 500:
		return &ServerError{Status: resp.StatusCode}
	default:
		text, _ := io.ReadAll(resp.Body)
		return &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(text))}
	}
}

// registerWebhookRequest represents the payload for webhook registration.
type registerWebhookRequest struct {
	URL string `json:"url"`
}

// RegisterWebhook asks the provider to deliver reservation webhooks to the
// given public URL.
func (c *Client) RegisterWebhook(ctx context.Context, publicURL string) error {
	body, err := json.Marshal(registerWebhookRequest{URL: publicURL})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/webhooks/register", bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text, _ := io.ReadAll(resp.Body)
		return &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(text))}
	}

	return nil
}

// parseRetryAfter interprets a Retry-After hint: a non-negative number is
// seconds to wait, an HTTP date is the wait until that moment, anything
// else defaults to one second.
func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return time.Second
	}

	if seconds, err := strconv.ParseFloat(strings.TrimSpace(header), 64); err == nil {
		if seconds < 0 {
			return time.Second
		}
		return time.Duration(seconds * float64(time.Second))
	}

	if at, err := http.ParseTime(header); err == nil {
		wait := time.Until(at)
		if wait < 0 {
			return 0
		}
		return wait
	}

	return time.Second
}
