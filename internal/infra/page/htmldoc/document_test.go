package htmldoc

import (
	"bytes"
	"strings"
	"testing"

	"automarket/internal/domain/service"
	"automarket/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<!DOCTYPE html><html><body>
<div class="order-id">  SP-1001 </div>
<div class="order-actions"></div>
</body></html>`

func TestDocument_TextAndExists(t *testing.T) {
	doc, err := Parse("https://shopee.tw/order/1", strings.NewReader(page))
	require.NoError(t, err)

	text, ok := doc.Text(".order-id")
	assert.True(t, ok)
	assert.Equal(t, "SP-1001", text)

	_, ok = doc.Text(".order-status")
	assert.False(t, ok)

	assert.True(t, doc.Exists(".order-actions"))
	assert.False(t, doc.Exists("#auto-deliver-button"))
	assert.Equal(t, "https://shopee.tw/order/1", doc.URL())
}

func TestDocument_ButtonLifecycle(t *testing.T) {
	doc, err := Parse("https://shopee.tw/order/1", strings.NewReader(page))
	require.NoError(t, err)

	require.NoError(t, doc.AppendButton(".order-actions", "btn", service.ButtonState{Label: "Go", Background: "#111111"}))
	assert.True(t, doc.Exists(".order-actions > #btn"))

	label, _ := doc.Text("#btn")
	assert.Equal(t, "Go", label)

	require.NoError(t, doc.SetButtonState("btn", service.ButtonState{Label: "Done", Background: "#222222", Disabled: true}))

	var buf bytes.Buffer
	require.NoError(t, doc.Render(&buf))
	out := buf.String()
	assert.Contains(t, out, `id="btn"`)
	assert.Contains(t, out, "Done")
	assert.Contains(t, out, "background-color: #222222")
	assert.Contains(t, out, `disabled="disabled"`)
}

func TestDocument_AppendButtonWithoutContainer(t *testing.T) {
	doc, err := Parse("https://shopee.tw/order/1", strings.NewReader(`<html><body></body></html>`))
	require.NoError(t, err)

	err = doc.AppendButton(".order-actions", "btn", service.ButtonState{Label: "Go"})
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, doc.Exists("#btn"))
}

func TestDocument_Alerts(t *testing.T) {
	var shown []string
	doc, err := Parse("", strings.NewReader(page), WithAlertHandler(func(m string) { shown = append(shown, m) }))
	require.NoError(t, err)

	doc.Alert("first")
	doc.Alert("second")

	assert.Equal(t, []string{"first", "second"}, doc.Alerts())
	assert.Equal(t, []string{"first", "second"}, shown)
}
