package notifier_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Behyna/university-finance/pkg/httpclient"
	"github.com/Behyna/university-finance/pkg/notifier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotifier(t *testing.T, apiKey string, handler http.HandlerFunc) notifier.Notifier {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := notifier.Config{BaseURL: server.URL, Timeout: 100 * time.Millisecond, APIKey: apiKey}
	return notifier.NewNotifier(cfg, httpclient.NewHTTPClient(cfg.Timeout))
}

func TestNotifier_SendReminder(t *testing.T) {
	ctx := context.Background()
	notification := notifier.ReminderNotification{EventID: "evt-1", ReminderID: 7, ReminderType: "overdue", DaysOverdue: 3}

	t.Run("accepted", func(t *testing.T) {
		n := newNotifier(t, "secret", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, notifier.ReminderEndpoint, r.URL.Path)
			assert.Equal(t, "evt-1", r.Header.Get("Idempotency-Key"))
			assert.Equal(t, "secret", r.Header.Get("X-API-Key"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var got notifier.ReminderNotification
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			assert.Equal(t, notification, got)

			w.WriteHeader(http.StatusAccepted)
			_, _ = w.Write([]byte(`{"code":"accepted","result":{"notification_id":"n-9"}}`))
		})

		got, err := n.SendReminder(ctx, notification)

		require.NoError(t, err)
		assert.Equal(t, "accepted", got.Code)
		assert.Equal(t, "n-9", got.Result.NotificationID)
	})

	t.Run("api key is omitted when not configured", func(t *testing.T) {
		n := newNotifier(t, "", func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("X-API-Key"))
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"code":"created"}`))
		})

		got, err := n.SendReminder(ctx, notification)
		require.NoError(t, err)
		assert.Equal(t, "created", got.Code)
	})

	t.Run("timeout", func(t *testing.T) {
		n := newNotifier(t, "", func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(300 * time.Millisecond)
		})

		_, err := n.SendReminder(ctx, notification)
		assert.Equal(t, notifier.ErrTimeout, err)
		assert.False(t, notifier.IsPermanent(err))
	})

	t.Run("network error", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		server.Close()

		n := notifier.NewNotifier(notifier.Config{BaseURL: server.URL}, httpclient.NewHTTPClient(time.Second))

		_, err := n.SendReminder(ctx, notification)
		require.Error(t, err)
		assert.False(t, notifier.IsPermanent(err))
	})

	t.Run("invalid JSON response", func(t *testing.T) {
		n := newNotifier(t, "", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{`))
		})

		_, err := n.SendReminder(ctx, notification)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decoding error")
	})

	t.Run("recipient not found is permanent", func(t *testing.T) {
		n := newNotifier(t, "", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := n.SendReminder(ctx, notification)
		assert.Equal(t, notifier.ErrRecipientNotFound, err)
		assert.True(t, notifier.IsPermanent(err))
	})

	t.Run("server error is retryable", func(t *testing.T) {
		n := newNotifier(t, "", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		_, err := n.SendReminder(ctx, notification)
		assert.Equal(t, notifier.ErrServerError, err)
		assert.False(t, notifier.IsPermanent(err))
	})
}

func TestMapStatusToError(t *testing.T) {
	testCases := []struct {
		name          string
		statusCode    int
		expectedError error
	}{
		{name: "NotFound", statusCode: 404, expectedError: notifier.ErrRecipientNotFound},
		{name: "BadRequest", statusCode: 400, expectedError: notifier.ErrValidationFailed},
		{name: "UnprocessableEntity", statusCode: 422, expectedError: notifier.ErrValidationFailed},
		{name: "TooManyRequests", statusCode: 429, expectedError: notifier.ErrServerError},
		{name: "BadGateway", statusCode: 502, expectedError: notifier.ErrServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedError, notifier.MapStatusToError(tc.statusCode))
		})
	}
}
