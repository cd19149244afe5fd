package webhook

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Event is the activity payload forwarded to the configured webhook.
type Event struct {
	User         string    `json:"user"`
	Organization string    `json:"organization"`
	Action       string    `json:"action"`
	At           time.Time `json:"at"`
}

// Client exposes the outbound notification operation used by the application.
type Client interface {
	Notify(ctx context.Context, event Event) error
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
}

// NewClient builds a webhook client targeting the provided URL.
func NewClient(url string) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(url, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(10 * time.Second)

	return &APIClient{httpClient: restyClient}
}

// apiError represents an error payload returned by the webhook endpoint.
type apiError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Notify POSTs the event to the webhook endpoint.
func (c *APIClient) Notify(ctx context.Context, event Event) error {
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(event).
		SetError(apiErr).
		Post("")
	if err != nil {
		return fmt.Errorf("send activity event: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		message := apiErr.Message
		if message == "" {
			message = resp.Status()
		}
		return fmt.Errorf("webhook error: code=%d, message=%s", resp.StatusCode(), message)
	}

	return nil
}
