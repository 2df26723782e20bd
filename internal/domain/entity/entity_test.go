package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentials_Ready(t *testing.T) {
	tests := []struct {
		name  string
		creds Credentials
		want  bool
	}{
		{name: "complete", creds: Credentials{APIURL: "http://localhost:8000", APIKey: "key", IsLoggedIn: true}, want: true},
		{name: "logged out", creds: Credentials{APIURL: "http://localhost:8000", APIKey: "key"}, want: false},
		{name: "missing url", creds: Credentials{APIKey: "key", IsLoggedIn: true}, want: false},
		{name: "missing key", creds: Credentials{APIURL: "http://localhost:8000", IsLoggedIn: true}, want: false},
		{name: "blank key", creds: Credentials{APIURL: "http://localhost:8000", APIKey: "  ", IsLoggedIn: true}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.creds.Ready())
		})
	}
}

func TestCredentials_AgentSessionTrimsTrailingSlash(t *testing.T) {
	creds := Credentials{APIURL: "http://localhost:8000/", APIKey: "key", Token: "jwt"}

	assert.Equal(t, Session{BaseURL: "http://localhost:8000", Token: "key"}, creds.AgentSession())
	assert.Equal(t, Session{BaseURL: "http://localhost:8000", Token: "jwt"}, creds.DashboardSession())
}

func TestFilterAwaitingDelivery(t *testing.T) {
	orders := []*Order{
		{ID: 1, Status: "PAID", IsDelivered: false},
		{ID: 2, Status: "DELIVERED", IsDelivered: true},
		{ID: 3, Status: OrderStatusPaid, IsDelivered: false},
		{ID: 4, Status: OrderStatusPaid, IsDelivered: true},
		{ID: 5, Status: OrderStatusPending},
		nil,
	}

	pending := FilterAwaitingDelivery(orders)

	if assert.Len(t, pending, 2) {
		assert.Equal(t, int64(1), pending[0].ID)
		assert.Equal(t, int64(3), pending[1].ID)
	}
}

func TestNormalizeMarketplaceStatus(t *testing.T) {
	tests := []struct {
		label string
		want  OrderStatus
	}{
		{label: "Paid", want: "PAID"},
		{label: "paid", want: "paid"},
		{label: "PAID", want: "PAID"},
		{label: "Shipped", want: "Shipped"},
		{label: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeMarketplaceStatus(tt.label))
		})
	}
}

func TestOrderStatus_IsValid(t *testing.T) {
	assert.True(t, OrderStatus("PAID").IsValid())
	assert.True(t, OrderStatusCancelled.IsValid())
	assert.False(t, OrderStatus("refunded").IsValid())
}
