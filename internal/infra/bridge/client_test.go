package bridge

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"automarket/internal/domain/constants"
	"automarket/internal/domain/entity"
	domainerrors "automarket/internal/domain/errors"
	"automarket/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRelay(t *testing.T, handler func(t *testing.T, msg entity.AgentMessage) (int, map[string]any)) *relayClient {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, messagesPath, r.URL.Path)

		var msg entity.AgentMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))

		status, body := handler(t, msg)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)

	return newRelay(srv.URL, time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRelay_FetchOrders(t *testing.T) {
	relay := newTestRelay(t, func(t *testing.T, msg entity.AgentMessage) (int, map[string]any) {
		assert.Equal(t, constants.MessageFetchOrders, msg.Type)

		return http.StatusOK, map[string]any{
			"success": true,
			"code":    200,
			"data":    map[string]any{"orders": []map[string]any{{"id": 1, "status": "paid"}}},
		}
	})

	orders, err := relay.FetchOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, int64(1), orders[0].ID)
}

func TestRelay_DeliverOrder(t *testing.T) {
	relay := newTestRelay(t, func(t *testing.T, msg entity.AgentMessage) (int, map[string]any) {
		assert.Equal(t, constants.MessageDeliverOrder, msg.Type)
		require.NotNil(t, msg.OrderID)
		if *msg.OrderID == 42 {
			return http.StatusOK, map[string]any{"success": true, "data": map[string]any{"delivered": true}}
		}

		return http.StatusBadGateway, map[string]any{
			"success": false,
			"message": "Delivery request was not accepted",
			"error":   map[string]any{"code": "DELIVERY_FAILED"},
		}
	})

	ok, err := relay.DeliverOrder(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = relay.DeliverOrder(context.Background(), 7)
	require.Error(t, err)
	assert.False(t, ok)
	assert.True(t, errors.Is(err, domainerrors.ErrDeliveryFailed))
}

func TestRelay_ProcessMarketplaceOrder(t *testing.T) {
	relay := newTestRelay(t, func(t *testing.T, msg entity.AgentMessage) (int, map[string]any) {
		assert.Equal(t, constants.MessageProcessShopeeOrder, msg.Type)
		require.NotNil(t, msg.OrderInfo)
		assert.Equal(t, "SP-1", msg.OrderInfo.ShopeeOrderID)
		assert.Equal(t, entity.OrderStatus("PAID"), msg.OrderInfo.Status)

		return http.StatusOK, map[string]any{"success": true, "data": map[string]any{"delivered": true}}
	})

	ok, err := relay.ProcessMarketplaceOrder(context.Background(), &entity.MarketplaceOrder{
		ShopeeOrderID: "SP-1",
		Status:        "PAID",
		ProductName:   "Logo pack",
	})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRelay_AgentNotRunning(t *testing.T) {
	relay := newRelay("http://127.0.0.1:1", time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := relay.FetchOrders(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAgentUnreachable))
}
