package browser

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"automarket/internal/domain/service"
	"automarket/internal/errors"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
)

// bindingName is the window function injected buttons call on click
const bindingName = "__autoMarketClick"

// ErrNotFound is returned when a selector matches nothing in the live page
var ErrNotFound = errors.New("element not found")

// Tab is a live chromedp page implementing service.LivePage
type Tab struct {
	ctx      context.Context
	cancel   context.CancelFunc
	headless bool
	logger   *slog.Logger

	// mu guards sends on events against closing it
	mu     sync.Mutex
	events chan service.PageEvent
	closed bool
}

var _ service.LivePage = (*Tab)(nil)

func newTab(ctx context.Context, cancel context.CancelFunc, headless bool, logger *slog.Logger) *Tab {
	return &Tab{
		ctx:      ctx,
		cancel:   cancel,
		headless: headless,
		logger:   logger,
		events:   make(chan service.PageEvent, 16),
	}
}

// Close ends the tab
func (t *Tab) Close() {
	t.cancel()
}

// Events reports navigation and clicks; closed when the tab ends
func (t *Tab) Events() <-chan service.PageEvent {
	return t.events
}

func (t *Tab) listen() {
	chromedp.ListenTarget(t.ctx, func(ev any) {
		switch e := ev.(type) {
		case *page.EventFrameNavigated:
			// only the top frame changes the page URL
			if e.Frame.ParentID == "" {
				t.emit(service.PageEvent{Kind: service.PageNavigated, URL: e.Frame.URL})
			}
		case *page.EventNavigatedWithinDocument:
			t.emit(service.PageEvent{Kind: service.PageNavigated, URL: e.URL})
		case *runtime.EventBindingCalled:
			if e.Name == bindingName {
				t.emit(service.PageEvent{Kind: service.PageButtonClicked, ButtonID: e.Payload})
			}
		case *page.EventJavascriptDialogOpening:
			if t.headless {
				// nobody can press OK in a headless browser
				go t.acceptDialog()
			}
		}
	})

	go func() {
		<-t.ctx.Done()
		t.closeEvents()
	}()
}

func (t *Tab) closeEvents() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.closed {
		t.closed = true
		close(t.events)
	}
}

// emit never blocks; listener callbacks may still fire while the tab shuts down
func (t *Tab) emit(event service.PageEvent) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return
	}

	select {
	case t.events <- event:
	default:
		t.logger.Warn("[Browser] Dropping page event, consumer is behind", slog.Int("kind", int(event.Kind)))
	}
}

func (t *Tab) acceptDialog() {
	c := chromedp.FromContext(t.ctx)
	if c == nil || c.Target == nil {
		return
	}

	if err := page.HandleJavaScriptDialog(true).Do(cdp.WithExecutor(t.ctx, c.Target)); err != nil {
		t.logger.Warn("[Browser] Failed to accept dialog", slog.Any("error", err))
	}
}

func (t *Tab) installBinding() chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		return runtime.AddBinding(bindingName).Do(ctx)
	})
}

// URL returns the current location of the tab
func (t *Tab) URL() string {
	var url string
	if err := chromedp.Run(t.ctx, chromedp.Location(&url)); err != nil {
		t.logger.Warn("[Browser] Failed to read location", slog.Any("error", err))

		return ""
	}

	return url
}

type textResult struct {
	Found bool   `json:"found"`
	Text  string `json:"text"`
}

// Text returns the trimmed text content of the first match
func (t *Tab) Text(selector string) (string, bool) {
	var res textResult
	if err := chromedp.Run(t.ctx, chromedp.Evaluate(textScript(selector), &res)); err != nil {
		t.logger.Warn("[Browser] Failed to read text", slog.String("selector", selector), slog.Any("error", err))

		return "", false
	}

	return res.Text, res.Found
}

// Exists reports whether selector matches
func (t *Tab) Exists(selector string) bool {
	var found bool
	if err := chromedp.Run(t.ctx, chromedp.Evaluate(existsScript(selector), &found)); err != nil {
		t.logger.Warn("[Browser] Failed to query selector", slog.String("selector", selector), slog.Any("error", err))

		return false
	}

	return found
}

// AppendButton injects a button whose click calls the binding with its id
func (t *Tab) AppendButton(container, id string, state service.ButtonState) error {
	var appended bool
	if err := chromedp.Run(t.ctx, chromedp.Evaluate(appendButtonScript(container, id, state), &appended)); err != nil {
		return errors.Wrap(err, "failed to inject button")
	}
	if !appended {
		return errors.Wrap(ErrNotFound, container)
	}

	return nil
}

// SetButtonState updates an injected button
func (t *Tab) SetButtonState(id string, state service.ButtonState) error {
	var updated bool
	if err := chromedp.Run(t.ctx, chromedp.Evaluate(buttonStateScript(id, state), &updated)); err != nil {
		return errors.Wrap(err, "failed to update button")
	}
	if !updated {
		return errors.Wrap(ErrNotFound, "#"+id)
	}

	return nil
}

// Alert shows a browser alert without waiting for it to be dismissed
func (t *Tab) Alert(message string) {
	t.logger.Info("[Browser] Alert", slog.String("message", message))

	if err := chromedp.Run(t.ctx, chromedp.Evaluate(alertScript(message), nil)); err != nil {
		t.logger.Warn("[Browser] Failed to show alert", slog.Any("error", err))
	}
}

// jsString quotes s as a JavaScript string literal
func jsString(s string) string {
	b, _ := json.Marshal(s)

	return string(b)
}
