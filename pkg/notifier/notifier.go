package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Behyna/university-finance/pkg/httpclient"
)

const ReminderEndpoint = "/notifications/reminders"

type Notifier interface {
	SendReminder(ctx context.Context, notification ReminderNotification) (Response, error)
}

type notifier struct {
	client httpclient.HTTPClient
	config Config
}

func NewNotifier(cfg Config, client httpclient.HTTPClient) Notifier {
	return &notifier{config: cfg, client: client}
}

func (n *notifier) SendReminder(ctx context.Context, notification ReminderNotification) (Response, error) {
	resp, err := n.client.PostJSON(ctx, n.config.BaseURL+ReminderEndpoint, notification, n.headers(notification.EventID))
	if err != nil {
		if errors.Is(err, httpclient.ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
			return Response{}, ErrTimeout
		}

		return Response{}, err
	}

	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		var response Response
		if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
			return Response{}, fmt.Errorf("decoding error: %w", err)
		}

		return response, nil
	}

	return Response{}, MapStatusToError(resp.StatusCode)
}

func (n *notifier) headers(eventID string) map[string]string {
	headers := map[string]string{"Idempotency-Key": eventID}

	if n.config.APIKey != "" {
		headers["X-API-Key"] = n.config.APIKey
	}

	return headers
}
