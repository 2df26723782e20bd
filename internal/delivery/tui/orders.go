package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"automarket/internal/domain/entity"
	"automarket/internal/usecase"
	"automarket/internal/util"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

type ordersLoadedMsg struct {
	orders []*entity.Order
	err    error
}

type orderDeliveredMsg struct {
	orderID int64
	err     error
}

type ordersScreen struct {
	ctx    context.Context
	uc     usecase.DashboardUsecase
	logger *slog.Logger
	styles *styles

	table      table.Model
	orders     []*entity.Order
	loading    bool
	delivering bool
}

func newOrdersScreen(ctx context.Context, uc usecase.DashboardUsecase, logger *slog.Logger, st *styles) *ordersScreen {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 6},
			{Title: "Shopee Order", Width: 16},
			{Title: "Qty", Width: 4},
			{Title: "Total", Width: 12},
			{Title: "Status", Width: 10},
			{Title: "Delivered", Width: 9},
			{Title: "Created", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	return &ordersScreen{ctx: ctx, uc: uc, logger: logger, styles: st, table: t}
}

func (s *ordersScreen) title() string { return "Orders" }

func (s *ordersScreen) help() string { return "↑/↓ select • enter deliver • r refresh" }

func (s *ordersScreen) capturing() bool { return false }

func (s *ordersScreen) init() tea.Cmd {
	return s.load()
}

func (s *ordersScreen) load() tea.Cmd {
	s.loading = true

	return func() tea.Msg {
		orders, err := s.uc.ListOrders(s.ctx)

		return ordersLoadedMsg{orders: orders, err: err}
	}
}

func (s *ordersScreen) deliver(orderID int64) tea.Cmd {
	s.delivering = true

	return func() tea.Msg {
		return orderDeliveredMsg{orderID: orderID, err: s.uc.DeliverOrder(s.ctx, orderID)}
	}
}

func (s *ordersScreen) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ordersLoadedMsg:
		s.loading = false
		if msg.err != nil {
			s.logger.Error("[Dashboard] Error fetching orders", slog.Any("error", msg.err))

			return notify(toastError, "Failed to fetch orders")
		}
		s.setOrders(msg.orders)
	case orderDeliveredMsg:
		s.delivering = false
		if msg.err != nil {
			s.logger.Error("[Dashboard] Error delivering order",
				slog.Int64("orderID", msg.orderID),
				slog.Any("error", msg.err))

			return notify(toastError, fmt.Sprintf("Failed to deliver order #%d", msg.orderID))
		}

		return notify(toastSuccess, fmt.Sprintf("Order #%d delivered successfully", msg.orderID))
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			if !s.loading {
				return s.load()
			}
		case "enter", "d":
			if order := s.selected(); order != nil && !s.loading && !s.delivering {
				return s.deliver(order.ID)
			}
		default:
			var cmd tea.Cmd
			s.table, cmd = s.table.Update(msg)

			return cmd
		}
	}

	return nil
}

func (s *ordersScreen) selected() *entity.Order {
	cursor := s.table.Cursor()
	if cursor < 0 || cursor >= len(s.orders) {
		return nil
	}

	return s.orders[cursor]
}

func (s *ordersScreen) setOrders(orders []*entity.Order) {
	s.orders = orders
	rows := make([]table.Row, 0, len(orders))
	for _, o := range orders {
		delivered := "no"
		if o.IsDelivered {
			delivered = "yes"
		}
		marketplaceID := o.MarketplaceID()
		if marketplaceID == "" {
			marketplaceID = "-"
		}
		rows = append(rows, table.Row{
			strconv.FormatInt(o.ID, 10),
			util.Truncate(marketplaceID, 16),
			strconv.Itoa(o.Quantity),
			util.FormatPrice(o.TotalPrice),
			o.Status.String(),
			delivered,
			util.FormatDate(o.CreatedAt),
		})
	}
	s.table.SetRows(rows)
	if s.table.Cursor() >= len(rows) {
		s.table.SetCursor(max(len(rows)-1, 0))
	}
}

func (s *ordersScreen) view(spin string) string {
	if s.loading {
		return spin + " Loading orders..."
	}

	out := s.styles.title.Render("Orders") + "\n"
	if len(s.orders) == 0 {
		return out + s.styles.muted.Render("No orders yet.")
	}
	out += s.table.View()
	if s.delivering {
		out += "\n" + spin + " Delivering..."
	}

	return out
}
