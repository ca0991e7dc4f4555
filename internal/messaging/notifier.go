package messaging

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"
)

//go:generate mockgen -source=notifier.go -destination=../mocks/messaging/mock_notifier.go -package=mock_messaging

// Notifier delivers a message to an external channel.
type Notifier interface {
	Notify(ctx context.Context, message Message) error
}

// NopNotifier discards messages. Used when no webhook is configured.
type NopNotifier struct{}

// Notify does nothing.
func (NopNotifier) Notify(ctx context.Context, message Message) error {
	return nil
}

// WebhookNotifier posts messages to a webhook URL as JSON.
type WebhookNotifier struct {
	httpClient       *resty.Client
	maxRetryAttempts uint
}

// NewWebhookNotifier creates a notifier for the given webhook URL.
func NewWebhookNotifier(webhookURL string, retryAttempts uint) *WebhookNotifier {
	client := resty.New()
	client.SetBaseURL(webhookURL)
	client.SetHeader("Content-Type", "application/json")

	return &WebhookNotifier{
		httpClient:       client,
		maxRetryAttempts: retryAttempts,
	}
}

type webhookPayload struct {
	StudentID int64  `json:"student_id"`
	Kind      string `json:"kind"`
	Body      string `json:"body"`
	SentAt    string `json:"sent_at"`
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}

	// Retry on 5xx errors (server errors)
	if strings.Contains(errStr, "response error 5") {
		return true
	}

	// Retry on rate limiting (429)
	if strings.Contains(errStr, "response error 429") {
		return true
	}

	return false
}

// Notify posts the message, retrying transient failures with backoff.
func (notifier *WebhookNotifier) Notify(ctx context.Context, message Message) error {
	payload := webhookPayload{
		StudentID: message.StudentID,
		Kind:      message.Kind,
		Body:      message.Body,
		SentAt:    time.Now().Format(time.RFC3339),
	}
	if err := retry.Do(
		func() error {
			if err := notifier.post(ctx, payload); err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(notifier.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return fmt.Errorf("retry.Do(webhook) > %w", err)
	}
	return nil
}

func (notifier *WebhookNotifier) post(ctx context.Context, payload webhookPayload) error {
	response, err := notifier.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		Post("")
	if err != nil {
		return fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}
	return nil
}
