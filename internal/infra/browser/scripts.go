package browser

import (
	"automarket/internal/domain/service"
)

func textScript(selector string) string {
	return `(() => {
	const el = document.querySelector(` + jsString(selector) + `);
	return el ? { found: true, text: (el.textContent || "").trim() } : { found: false, text: "" };
})()`
}

func existsScript(selector string) string {
	return `document.querySelector(` + jsString(selector) + `) !== null`
}

func appendButtonScript(container, id string, state service.ButtonState) string {
	return `(() => {
	const target = document.querySelector(` + jsString(container) + `);
	if (!target) return false;
	const button = document.createElement("button");
	button.id = ` + jsString(id) + `;
	button.type = "button";
	button.style.color = "white";
	button.style.padding = "8px 16px";
	button.style.borderRadius = "4px";
	button.style.border = "none";
	button.style.cursor = "pointer";
	button.style.margin = "10px 0";
	button.addEventListener("click", () => window[` + jsString(bindingName) + `](button.id));
	target.appendChild(button);
	` + applyStateJS(state) + `
	return true;
})()`
}

func buttonStateScript(id string, state service.ButtonState) string {
	return `(() => {
	const button = document.getElementById(` + jsString(id) + `);
	if (!button) return false;
	` + applyStateJS(state) + `
	return true;
})()`
}

func applyStateJS(state service.ButtonState) string {
	disabled := "false"
	if state.Disabled {
		disabled = "true"
	}

	return `button.textContent = ` + jsString(state.Label) + `;
	button.style.backgroundColor = ` + jsString(state.Background) + `;
	button.disabled = ` + disabled + `;`
}

func alertScript(message string) string {
	return `setTimeout(() => window.alert(` + jsString(message) + `), 0)`
}
