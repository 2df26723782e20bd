package service

import (
	"automarket/internal/domain/entity"
)

// ButtonState is the visual state applied to an injected button.
type ButtonState struct {
	Label      string
	Background string
	Disabled   bool
}

// PageDOM is a read/write view over one marketplace page.
// Offline documents and live browser tabs both implement it.
type PageDOM interface {
	// URL returns the current page address.
	URL() string

	// Text returns the trimmed text of the first element matching selector.
	Text(selector string) (string, bool)

	// Exists reports whether any element matches selector.
	Exists(selector string) bool

	// AppendButton appends a button with the given id to the first container match.
	AppendButton(container, id string, state ButtonState) error

	// SetButtonState updates the button with the given id.
	SetButtonState(id string, state ButtonState) error

	// Alert shows a blocking message to the seller.
	Alert(message string)
}

// PageAdapter isolates the marketplace specific selectors and labels.
type PageAdapter interface {
	// Matches reports whether url is an order page this adapter handles.
	Matches(url string) bool

	// ExtractOrder reads the order details; ok is false when any field is missing.
	ExtractOrder(dom PageDOM) (order *entity.MarketplaceOrder, ok bool)

	// CanInject reports whether the page has a container and no button yet.
	CanInject(dom PageDOM) bool

	// InjectButton adds the deliver button.
	InjectButton(dom PageDOM) error

	// MarkDelivered switches the button to its final delivered state.
	MarkDelivered(dom PageDOM) error

	// ButtonID identifies the injected button so clicks can be routed back.
	ButtonID() string
}

// PageEventKind tells navigation and button clicks apart.
type PageEventKind int

const (
	// PageNavigated fires after a full or in-document navigation.
	PageNavigated PageEventKind = iota + 1
	// PageButtonClicked fires when an injected button is clicked.
	PageButtonClicked
)

// PageEvent is emitted by live pages.
type PageEvent struct {
	Kind     PageEventKind
	URL      string
	ButtonID string
}

// LivePage is a PageDOM that reports navigation and clicks as they happen.
type LivePage interface {
	PageDOM

	// Events is closed when the page goes away.
	Events() <-chan PageEvent
}
