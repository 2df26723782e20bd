// Package htmldoc implements the page view over a saved HTML document.
package htmldoc

import (
	"html"
	"io"
	"strings"

	"automarket/internal/domain/service"
	"automarket/internal/errors"

	"github.com/PuerkitoBio/goquery"
)

// ErrNotFound is returned when a selector matches nothing
var ErrNotFound = errors.New("element not found")

// Document is a goquery backed PageDOM. Alerts are collected instead of shown.
type Document struct {
	url     string
	doc     *goquery.Document
	alerts  []string
	onAlert func(message string)
}

var _ service.PageDOM = (*Document)(nil)

// Option configures a Document
type Option func(*Document)

// WithAlertHandler is called for every alert in addition to recording it
func WithAlertHandler(fn func(message string)) Option {
	return func(d *Document) {
		d.onAlert = fn
	}
}

// Parse reads an HTML page that was loaded from url
func Parse(url string, r io.Reader, opts ...Option) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse HTML document")
	}

	d := &Document{url: url, doc: doc}
	for _, opt := range opts {
		opt(d)
	}

	return d, nil
}

// URL returns the address the document was loaded from
func (d *Document) URL() string {
	return d.url
}

// Text returns the trimmed text of the first match
func (d *Document) Text(selector string) (string, bool) {
	sel := d.doc.Find(selector).First()
	if sel.Length() == 0 {
		return "", false
	}

	return strings.TrimSpace(sel.Text()), true
}

// Exists reports whether selector matches
func (d *Document) Exists(selector string) bool {
	return d.doc.Find(selector).Length() > 0
}

// AppendButton appends a button to the first container match
func (d *Document) AppendButton(container, id string, state service.ButtonState) error {
	target := d.doc.Find(container).First()
	if target.Length() == 0 {
		return errors.Wrap(ErrNotFound, container)
	}

	target.AppendHtml(`<button type="button" id="` + html.EscapeString(id) + `"></button>`)

	return d.SetButtonState(id, state)
}

// SetButtonState rewrites label, colours and disabled flag of the button
func (d *Document) SetButtonState(id string, state service.ButtonState) error {
	button := d.doc.Find("#" + id).First()
	if button.Length() == 0 {
		return errors.Wrap(ErrNotFound, "#"+id)
	}

	button.SetText(state.Label)
	button.SetAttr("style", buttonStyle(state.Background))
	if state.Disabled {
		button.SetAttr("disabled", "disabled")
	} else {
		button.RemoveAttr("disabled")
	}

	return nil
}

// Alert records message
func (d *Document) Alert(message string) {
	d.alerts = append(d.alerts, message)
	if d.onAlert != nil {
		d.onAlert(message)
	}
}

// Alerts returns the messages shown so far
func (d *Document) Alerts() []string {
	return append([]string(nil), d.alerts...)
}

// Render writes the current document
func (d *Document) Render(w io.Writer) error {
	out, err := goquery.OuterHtml(d.doc.Selection)
	if err != nil {
		return errors.Wrap(err, "failed to render HTML document")
	}

	_, err = io.WriteString(w, out)

	return errors.WithStack(err)
}

func buttonStyle(background string) string {
	return "background-color: " + background + "; color: white; padding: 8px 16px; border-radius: 4px; border: none; cursor: pointer; margin: 10px 0"
}
