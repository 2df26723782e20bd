package browser

import (
	"testing"

	"automarket/internal/domain/service"

	"github.com/stretchr/testify/assert"
)

func TestJSString(t *testing.T) {
	assert.Equal(t, `".order-id"`, jsString(".order-id"))
	assert.Equal(t, `"a\"b"`, jsString(`a"b`))
	assert.Equal(t, `"Delivered ✓"`, jsString("Delivered ✓"))
}

func TestAppendButtonScript(t *testing.T) {
	script := appendButtonScript(".order-actions", "auto-deliver-button", service.ButtonState{
		Label:      "Deliver with AUTO",
		Background: "#4f46e5",
	})

	assert.Contains(t, script, `document.querySelector(".order-actions")`)
	assert.Contains(t, script, `button.id = "auto-deliver-button"`)
	assert.Contains(t, script, `window["__autoMarketClick"](button.id)`)
	assert.Contains(t, script, `button.textContent = "Deliver with AUTO"`)
	assert.Contains(t, script, `button.disabled = false`)
}

func TestButtonStateScript(t *testing.T) {
	script := buttonStateScript("auto-deliver-button", service.ButtonState{
		Label:      "Delivered ✓",
		Background: "#22c55e",
		Disabled:   true,
	})

	assert.Contains(t, script, `document.getElementById("auto-deliver-button")`)
	assert.Contains(t, script, `button.style.backgroundColor = "#22c55e"`)
	assert.Contains(t, script, `button.disabled = true`)
}

func TestAlertScriptDoesNotBlock(t *testing.T) {
	assert.Equal(t, `setTimeout(() => window.alert("Order processed successfully!"), 0)`, alertScript("Order processed successfully!"))
}

func TestTextScriptQuotesSelector(t *testing.T) {
	script := textScript(`[data-x="1"]`)
	assert.Contains(t, script, `document.querySelector("[data-x=\"1\"]")`)
}
