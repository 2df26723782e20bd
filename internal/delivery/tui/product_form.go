package tui

import (
	"fmt"
	"strconv"
	"strings"

	"automarket/internal/delivery/http/validator"
	"automarket/internal/domain/entity"
	domainerrors "automarket/internal/domain/errors"
	"automarket/internal/errors"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formField int

const (
	fieldName formField = iota
	fieldDescription
	fieldPrice
	fieldType
	fieldContent
	fieldActive
	fieldAI
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldName:        "Name",
	fieldDescription: "Description",
	fieldPrice:       "Price",
	fieldType:        "Type (template, account, link, voucher)",
	fieldContent:     "Content",
	fieldActive:      "Active (y/n)",
	fieldAI:          "AI enabled (y/n)",
}

// productDraft is the parsed form
type productDraft struct {
	name        string
	description string
	price       float64
	productType entity.ProductType
	content     string
	active      bool
	ai          bool
}

// productForm creates a product, or edits original when it is set.
type productForm struct {
	original *entity.Product
	inputs   []textinput.Model
	focus    int
	problem  string
	saving   bool
}

func newProductForm(original *entity.Product) *productForm {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		in := textinput.New()
		in.Prompt = "> "
		in.CharLimit = 500
		in.Width = 48
		in.Cursor.SetMode(cursor.CursorStatic)
		inputs[i] = in
	}

	// backend defaults for a new product
	inputs[fieldType].SetValue(entity.ProductTypeTemplate.String())
	inputs[fieldActive].SetValue("y")
	inputs[fieldAI].SetValue("n")

	if original != nil {
		inputs[fieldName].SetValue(original.Name)
		inputs[fieldDescription].SetValue(original.Description)
		inputs[fieldPrice].SetValue(strconv.FormatFloat(original.Price, 'f', -1, 64))
		inputs[fieldType].SetValue(original.ProductType.String())
		inputs[fieldContent].SetValue(original.Content)
		inputs[fieldActive].SetValue(yesNo(original.IsActive))
		inputs[fieldAI].SetValue(yesNo(original.AIEnabled))
	}

	f := &productForm{original: original, inputs: inputs}
	f.inputs[0].Focus()

	return f
}

func (f *productForm) creating() bool { return f.original == nil }

func (f *productForm) move(delta int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *productForm) lastField() bool { return f.focus == len(f.inputs)-1 }

func (f *productForm) updateInput(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)

	return cmd
}

func (f *productForm) value(field formField) string {
	return strings.TrimSpace(f.inputs[field].Value())
}

func (f *productForm) parse() (productDraft, error) {
	draft := productDraft{
		name:        f.value(fieldName),
		description: f.value(fieldDescription),
		productType: entity.ProductType(strings.ToLower(f.value(fieldType))),
		content:     f.value(fieldContent),
	}

	price, err := strconv.ParseFloat(f.value(fieldPrice), 64)
	if err != nil || price < 0 {
		return draft, errors.New("price must be a number of zero or more")
	}
	draft.price = price

	if !draft.productType.IsValid() {
		return draft, errors.Errorf("unknown product type %q", f.value(fieldType))
	}
	if draft.active, err = parseYesNo(f.value(fieldActive)); err != nil {
		return draft, err
	}
	if draft.ai, err = parseYesNo(f.value(fieldAI)); err != nil {
		return draft, err
	}

	return draft, nil
}

// createInput validates the draft as a new product
func (d productDraft) createInput() (*entity.CreateProductInput, error) {
	input := &entity.CreateProductInput{
		Name:        d.name,
		Description: d.description,
		Price:       d.price,
		ProductType: d.productType,
		Content:     d.content,
		IsActive:    &d.active,
		AIEnabled:   &d.ai,
	}
	if err := validator.New().Validate(input); err != nil {
		if appErr, ok := errors.Find[domainerrors.AppError](err); ok {
			return nil, errors.New(appErr.Details())
		}

		return nil, err
	}

	return input, nil
}

// updateInput carries only the fields that differ from original; nil means nothing changed.
func (d productDraft) updateInput(original *entity.Product) (*entity.UpdateProductInput, error) {
	if d.name == "" || d.content == "" {
		return nil, errors.New("name and content are required")
	}

	input := &entity.UpdateProductInput{}
	changed := false
	if d.name != original.Name {
		input.Name, changed = &d.name, true
	}
	if d.description != original.Description {
		input.Description, changed = &d.description, true
	}
	if d.price != original.Price {
		input.Price, changed = &d.price, true
	}
	if d.productType != original.ProductType {
		input.ProductType, changed = &d.productType, true
	}
	if d.content != original.Content {
		input.Content, changed = &d.content, true
	}
	if d.active != original.IsActive {
		input.IsActive, changed = &d.active, true
	}
	if d.ai != original.AIEnabled {
		input.AIEnabled, changed = &d.ai, true
	}
	if !changed {
		return nil, nil
	}

	return input, nil
}

func (f *productForm) help() string {
	if f.saving {
		return "saving..."
	}

	return "tab/↑/↓ move • enter next or save • ctrl+s save • esc cancel"
}

func (f *productForm) view(st *styles, spin string) string {
	heading := "New product"
	if !f.creating() {
		heading = fmt.Sprintf("Edit product #%d", f.original.ID)
	}

	var b strings.Builder
	b.WriteString(st.title.Render(heading) + "\n")
	for i, in := range f.inputs {
		b.WriteString(st.cardLabel.Render(fieldLabels[i]) + "\n")
		b.WriteString(in.View() + "\n")
	}
	if f.saving {
		b.WriteString("\n" + spin + " Saving product...")
	} else if f.problem != "" {
		b.WriteString("\n" + st.confirm.Render(f.problem))
	}

	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "y"
	}

	return "n"
}

func parseYesNo(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "y", "yes", "true":
		return true, nil
	case "n", "no", "false":
		return false, nil
	default:
		return false, errors.Errorf("expected y or n, got %q", s)
	}
}
