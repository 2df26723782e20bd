package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"automarket/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	root := newRootCommand()

	for _, path := range [][]string{
		{"login"}, {"logout"}, {"status"}, {"agent"}, {"orders"}, {"deliver"},
		{"page", "inspect"}, {"page", "deliver"}, {"page", "watch"},
		{"dashboard"}, {"dashboard", "login"}, {"dashboard", "register"}, {"dashboard", "logout"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, strings.Join(path, " "))
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestDeliverCommand_RejectsInvalidID(t *testing.T) {
	root := newRootCommand()
	root.SetArgs([]string{"deliver", "abc"})
	root.SetOut(&bytes.Buffer{})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid order id "abc"`)
}

func TestMaskKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{key: "", want: "-"},
		{key: "abc", want: "***"},
		{key: "sk-12345678", want: "*******5678"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, maskKey(tt.key))
		})
	}
}

func TestPrintOrders(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var out bytes.Buffer
		printOrders(&out, nil)
		assert.Equal(t, "No orders.\n", out.String())
	})

	t.Run("table", func(t *testing.T) {
		shopeeID := "SHP123456"
		var out bytes.Buffer
		printOrders(&out, []*entity.Order{
			{ID: 1, ProductID: 7, Quantity: 1, TotalPrice: 1250, Status: entity.OrderStatusPaid, ShopeeOrderID: &shopeeID, CreatedAt: time.Date(2024, 3, 5, 12, 0, 0, 0, time.Local)},
			{ID: 2, ProductID: 8, Quantity: 2, TotalPrice: 9.9, Status: entity.OrderStatusDelivered, IsDelivered: true},
		})

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 3)
		assert.Contains(t, lines[0], "SHOPEE ID")
		assert.Contains(t, lines[1], "SHP123456")
		assert.Contains(t, lines[1], "$1,250.00")
		assert.Contains(t, lines[1], "Mar 5, 2024")
		assert.Contains(t, lines[2], "delivered")
		assert.Contains(t, lines[2], "yes")
	})
}

func TestPrompt(t *testing.T) {
	var out bytes.Buffer
	value, err := prompt(strings.NewReader("  secret-key  \n"), &out, "API Key: ")
	require.NoError(t, err)
	assert.Equal(t, "secret-key", value)
	assert.Equal(t, "API Key: ", out.String())
}
