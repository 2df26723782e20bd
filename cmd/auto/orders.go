package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"automarket/internal/domain/entity"
	"automarket/internal/domain/service"
	"automarket/internal/errors"
	"automarket/internal/usecase"
	"automarket/internal/util"

	"github.com/spf13/cobra"
)

func newOrdersCommand() *cobra.Command {
	var direct, awaiting bool

	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List orders through the running agent",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				relay   service.AgentRelay
				orderUC usecase.OrderUsecase
			)

			return runApp(cmd.Context(), appOptions(cmd.Context()), func(ctx context.Context) error {
				var (
					orders []*entity.Order
					err    error
				)
				if direct {
					orders = orderUC.FetchOrders(ctx)
				} else {
					orders, err = relay.FetchOrders(ctx)
				}
				if err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), "Failed to fetch orders")

					return err
				}
				if awaiting {
					orders = entity.FilterAwaitingDelivery(orders)
				}

				printOrders(cmd.OutOrStdout(), orders)
				fmt.Fprintln(cmd.ErrOrStderr(), "Orders fetched")

				return nil
			}, &relay, &orderUC)
		},
	}

	cmd.Flags().BoolVar(&direct, "direct", false, "call the backend directly instead of the running agent")
	cmd.Flags().BoolVar(&awaiting, "awaiting", false, "only show paid orders that are not delivered yet")

	return cmd
}

func newDeliverCommand() *cobra.Command {
	var direct bool

	cmd := &cobra.Command{
		Use:   "deliver ORDER_ID",
		Short: "Deliver the digital product of an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orderID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || orderID <= 0 {
				return errors.Errorf("invalid order id %q", args[0])
			}

			var (
				relay   service.AgentRelay
				orderUC usecase.OrderUsecase
			)

			return runApp(cmd.Context(), appOptions(cmd.Context()), func(ctx context.Context) error {
				var delivered bool
				if direct {
					delivered = orderUC.DeliverOrder(ctx, orderID)
				} else {
					delivered, err = relay.DeliverOrder(ctx, orderID)
				}
				if err != nil || !delivered {
					fmt.Fprintf(cmd.OutOrStdout(), "Failed to deliver order %d\n", orderID)

					return errors.Join(err, errors.Errorf("order %d was not delivered", orderID))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Order %d delivered successfully\n", orderID)

				return nil
			}, &relay, &orderUC)
		},
	}

	cmd.Flags().BoolVar(&direct, "direct", false, "call the backend directly instead of the running agent")

	return cmd
}

func printOrders(out io.Writer, orders []*entity.Order) {
	if len(orders) == 0 {
		fmt.Fprintln(out, "No orders.")

		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSHOPEE ID\tPRODUCT\tQTY\tTOTAL\tSTATUS\tDELIVERED\tCREATED")
	for _, o := range orders {
		delivered := "no"
		if o.IsDelivered {
			delivered = "yes"
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%s\t%s\t%s\t%s\n",
			o.ID,
			valueOrDash(o.MarketplaceID()),
			o.ProductID,
			o.Quantity,
			util.FormatPrice(o.TotalPrice),
			o.Status,
			delivered,
			util.FormatDate(o.CreatedAt),
		)
	}
	_ = w.Flush()
}
