package sms

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"sprout/config"
	"sprout/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGatewayForStatus(t *testing.T, status int) (service.ChallengeSender, *map[string]string) {
	captured := make(map[string]string)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/messages", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(status)
	}))
	t.Cleanup(server.Close)

	gateway := NewRestyGateway(&config.SmsConfig{
		Endpoint: server.URL,
		APIKey:   "test-key",
		SenderID: "SPROUT",
	})

	return gateway, &captured
}

func TestRestyGateway_SendCode_Success(t *testing.T) {
	gateway, captured := newGatewayForStatus(t, http.StatusOK)

	err := gateway.SendCode(context.Background(), "9876543210", "482913")
	require.NoError(t, err)

	assert.Equal(t, "+919876543210", (*captured)["to"])
	assert.Equal(t, "SPROUT", (*captured)["sender_id"])
	assert.Contains(t, (*captured)["message"], "482913")
}

func TestRestyGateway_SendCode_Accepted(t *testing.T) {
	gateway, _ := newGatewayForStatus(t, http.StatusAccepted)

	assert.NoError(t, gateway.SendCode(context.Background(), "9876543210", "482913"))
}

func TestRestyGateway_SendCode_RateLimited(t *testing.T) {
	gateway, _ := newGatewayForStatus(t, http.StatusTooManyRequests)

	err := gateway.SendCode(context.Background(), "9876543210", "482913")
	assert.ErrorIs(t, err, service.ErrDispatchRateLimited)
}

func TestRestyGateway_SendCode_MalformedNumber(t *testing.T) {
	gateway, _ := newGatewayForStatus(t, http.StatusBadRequest)

	err := gateway.SendCode(context.Background(), "9876543210", "482913")
	assert.ErrorIs(t, err, service.ErrDispatchMalformedNumber)
}

func TestRestyGateway_SendCode_ServerError(t *testing.T) {
	gateway, _ := newGatewayForStatus(t, http.StatusInternalServerError)

	err := gateway.SendCode(context.Background(), "9876543210", "482913")
	assert.ErrorIs(t, err, service.ErrDispatchUnavailable)
}

func TestRestyGateway_SendCode_Unreachable(t *testing.T) {
	gateway := NewRestyGateway(&config.SmsConfig{
		Endpoint: "http://127.0.0.1:1",
		APIKey:   "test-key",
	})

	err := gateway.SendCode(context.Background(), "9876543210", "482913")
	assert.ErrorIs(t, err, service.ErrDispatchUnavailable)
}

func TestLogSender_SendCode(t *testing.T) {
	sender := NewLogSender(slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.NoError(t, sender.SendCode(context.Background(), "9876543210", "482913"))
}
