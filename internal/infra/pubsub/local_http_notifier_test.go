package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"renteasy/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPNotifier_Publish(t *testing.T) {
	var received PubSubPushMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier := NewLocalHTTPNotifier(server.URL, slog.Default())

	event := &service.StorefrontEvent{
		Kind:      service.EventProductAdded,
		Message:   "Product added successfully!",
		ProductID: "doc-1",
	}
	require.NoError(t, notifier.Publish(context.Background(), event))

	assert.Equal(t, service.EventProductAdded, received.Message.Attributes["kind"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.StorefrontEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "doc-1", decoded.ProductID)
}

func TestLocalHTTPNotifier_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	notifier := NewLocalHTTPNotifier(server.URL, slog.Default())

	err := notifier.Publish(context.Background(), &service.StorefrontEvent{Kind: service.EventOrderPlaced})
	require.Error(t, err)
}
