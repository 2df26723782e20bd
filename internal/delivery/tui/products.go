package tui

import (
	"context"
	"log/slog"

	"automarket/internal/domain/entity"
	"automarket/internal/usecase"
	"automarket/internal/util"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

type productsLoadedMsg struct {
	products []*entity.Product
	err      error
}

type productFetchedMsg struct {
	product *entity.Product
	err     error
}

type productSavedMsg struct {
	created bool
	err     error
}

type productDeletedMsg struct {
	productID int64
	err       error
}

type productsScreen struct {
	ctx    context.Context
	uc     usecase.DashboardUsecase
	logger *slog.Logger
	styles *styles

	table    table.Model
	products []*entity.Product
	loading  bool
	// pending is the product awaiting delete confirmation
	pending *entity.Product
	// form is open while creating or editing a product
	form     *productForm
	fetching bool
}

func newProductsScreen(ctx context.Context, uc usecase.DashboardUsecase, logger *slog.Logger, st *styles) *productsScreen {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Name", Width: 28},
			{Title: "Type", Width: 10},
			{Title: "Price", Width: 12},
			{Title: "Status", Width: 10},
			{Title: "AI", Width: 4},
		}),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	return &productsScreen{ctx: ctx, uc: uc, logger: logger, styles: st, table: t}
}

func (s *productsScreen) title() string { return "Products" }

func (s *productsScreen) help() string {
	if s.form != nil {
		return s.form.help()
	}
	if s.pending != nil {
		return "y confirm • n cancel"
	}

	return "↑/↓ select • n new • e edit • d delete • r refresh"
}

func (s *productsScreen) capturing() bool { return s.pending != nil || s.form != nil }

func (s *productsScreen) init() tea.Cmd {
	return s.load()
}

func (s *productsScreen) load() tea.Cmd {
	s.loading = true

	return func() tea.Msg {
		products, err := s.uc.ListProducts(s.ctx)

		return productsLoadedMsg{products: products, err: err}
	}
}

func (s *productsScreen) remove(productID int64) tea.Cmd {
	return func() tea.Msg {
		return productDeletedMsg{productID: productID, err: s.uc.DeleteProduct(s.ctx, productID)}
	}
}

func (s *productsScreen) fetch(productID int64) tea.Cmd {
	s.fetching = true

	return func() tea.Msg {
		product, err := s.uc.GetProduct(s.ctx, productID)

		return productFetchedMsg{product: product, err: err}
	}
}

func (s *productsScreen) save() tea.Cmd {
	form := s.form
	draft, err := form.parse()
	if err != nil {
		form.problem = err.Error()

		return nil
	}

	if form.creating() {
		input, err := draft.createInput()
		if err != nil {
			form.problem = err.Error()

			return nil
		}
		form.saving = true

		return func() tea.Msg {
			_, err := s.uc.CreateProduct(s.ctx, input)

			return productSavedMsg{created: true, err: err}
		}
	}

	input, err := draft.updateInput(form.original)
	if err != nil {
		form.problem = err.Error()

		return nil
	}
	if input == nil {
		s.form = nil

		return nil
	}
	form.saving = true
	productID := form.original.ID

	return func() tea.Msg {
		_, err := s.uc.UpdateProduct(s.ctx, productID, input)

		return productSavedMsg{err: err}
	}
}

func (s *productsScreen) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case productsLoadedMsg:
		s.loading = false
		if msg.err != nil {
			s.logger.Error("[Dashboard] Error fetching products", slog.Any("error", msg.err))

			return notify(toastError, "Failed to fetch products")
		}
		s.setProducts(msg.products)
	case productFetchedMsg:
		s.fetching = false
		if msg.err != nil {
			s.logger.Error("[Dashboard] Error fetching product", slog.Any("error", msg.err))

			return notify(toastError, "Failed to fetch product")
		}
		s.form = newProductForm(msg.product)
	case productSavedMsg:
		return s.saved(msg)
	case productDeletedMsg:
		if msg.err != nil {
			s.logger.Error("[Dashboard] Error deleting product",
				slog.Int64("productID", msg.productID),
				slog.Any("error", msg.err))

			return notify(toastError, "Failed to delete product")
		}

		return tea.Batch(notify(toastSuccess, "Product deleted successfully"), s.load())
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return nil
}

func (s *productsScreen) saved(msg productSavedMsg) tea.Cmd {
	action := "update"
	if msg.created {
		action = "create"
	}
	if msg.err != nil {
		s.logger.Error("[Dashboard] Error saving product", slog.String("action", action), slog.Any("error", msg.err))
		if s.form != nil {
			s.form.saving = false
		}

		return notify(toastError, "Failed to "+action+" product")
	}
	s.form = nil

	return tea.Batch(notify(toastSuccess, "Product "+action+"d successfully"), s.load())
}

func (s *productsScreen) formKey(msg tea.KeyMsg) tea.Cmd {
	form := s.form
	if form.saving {
		return nil
	}

	switch msg.String() {
	case "esc":
		s.form = nil
	case "tab", "down":
		form.move(1)
	case "shift+tab", "up":
		form.move(-1)
	case "enter":
		if !form.lastField() {
			form.move(1)

			return nil
		}

		return s.save()
	case "ctrl+s":
		return s.save()
	default:
		form.problem = ""

		return form.updateInput(msg)
	}

	return nil
}

func (s *productsScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	if s.form != nil {
		return s.formKey(msg)
	}
	if s.pending != nil {
		switch msg.String() {
		case "y", "Y":
			productID := s.pending.ID
			s.pending = nil

			return s.remove(productID)
		case "n", "N", "esc":
			s.pending = nil
		}

		return nil
	}

	switch msg.String() {
	case "r":
		if !s.loading {
			return s.load()
		}
	case "n":
		if !s.loading {
			s.form = newProductForm(nil)
		}
	case "e":
		if product := s.selected(); product != nil && !s.loading && !s.fetching {
			return s.fetch(product.ID)
		}
	case "d", "delete":
		if product := s.selected(); product != nil && !s.loading {
			s.pending = product
		}
	default:
		var cmd tea.Cmd
		s.table, cmd = s.table.Update(msg)

		return cmd
	}

	return nil
}

func (s *productsScreen) selected() *entity.Product {
	if len(s.products) == 0 {
		return nil
	}
	cursor := s.table.Cursor()
	if cursor < 0 || cursor >= len(s.products) {
		return nil
	}

	return s.products[cursor]
}

func (s *productsScreen) setProducts(products []*entity.Product) {
	s.products = products
	rows := make([]table.Row, 0, len(products))
	for _, p := range products {
		status := "Inactive"
		if p.IsActive {
			status = "Active"
		}
		ai := "off"
		if p.AIEnabled {
			ai = "on"
		}
		rows = append(rows, table.Row{
			util.Truncate(p.Name, 28),
			p.ProductType.Label(),
			util.FormatPrice(p.Price),
			status,
			ai,
		})
	}
	s.table.SetRows(rows)
	if s.table.Cursor() >= len(rows) {
		s.table.SetCursor(max(len(rows)-1, 0))
	}
}

func (s *productsScreen) view(spin string) string {
	if s.form != nil {
		return s.form.view(s.styles, spin)
	}
	if s.loading {
		return spin + " Loading products..."
	}
	if s.fetching {
		return spin + " Loading product..."
	}

	out := s.styles.title.Render("Products") + "\n"
	if len(s.products) == 0 {
		out += s.styles.muted.Render("No products yet.")
	} else {
		out += s.table.View()
	}
	if s.pending != nil {
		out += "\n\n" + s.styles.confirm.Render("Are you sure you want to delete this product? (y/n)") +
			"\n" + s.styles.muted.Render(s.pending.Name)
	}

	return out
}
