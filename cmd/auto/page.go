package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"automarket/internal/delivery/page"
	"automarket/internal/domain/service"
	"automarket/internal/errors"
	"automarket/internal/infra/browser"
	"automarket/internal/infra/page/htmldoc"
	"automarket/internal/usecase"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newPageCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "page",
		Short: "Marketplace order page integration",
	}

	cmd.AddCommand(
		newPageInspectCommand(),
		newPageDeliverCommand(),
		newPageWatchCommand(),
	)

	return cmd
}

func newPageInspectCommand() *cobra.Command {
	var pageURL string

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Extract the order from a saved order page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pageUC usecase.PageUsecase

			return runApp(cmd.Context(), appOptions(cmd.Context()), func(context.Context) error {
				doc, err := openDocument(args[0], pageURL, nil)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if !pageUC.Supports(doc.URL()) {
					fmt.Fprintf(out, "Not a marketplace order page: %s\n", doc.URL())

					return nil
				}

				order, ok := pageUC.Inspect(doc)
				if !ok {
					fmt.Fprintln(out, "Could not extract order information")

					return nil
				}
				fmt.Fprintf(out, "Order ID: %s\n", order.ShopeeOrderID)
				fmt.Fprintf(out, "Status:   %s\n", order.Status)
				fmt.Fprintf(out, "Product:  %s\n", order.ProductName)

				return nil
			}, &pageUC)
		},
	}

	cmd.Flags().StringVar(&pageURL, "url", "", "URL the page was saved from")
	_ = cmd.MarkFlagRequired("url")

	return cmd
}

func newPageDeliverCommand() *cobra.Command {
	var pageURL, output string

	cmd := &cobra.Command{
		Use:   "deliver FILE",
		Short: "Inject the deliver button into a saved order page and click it",
		Long:  "Runs the injection and click flow against a saved page, relaying the order to the running agent, and writes the resulting HTML.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				pageUC  usecase.PageUsecase
				adapter service.PageAdapter
			)

			return runApp(cmd.Context(), appOptions(cmd.Context()), func(ctx context.Context) error {
				doc, err := openDocument(args[0], pageURL, func(message string) {
					fmt.Fprintf(cmd.ErrOrStderr(), "alert: %s\n", message)
				})
				if err != nil {
					return err
				}

				injected, err := pageUC.Inject(ctx, doc)
				if err != nil {
					return err
				}
				// a page saved after injection already carries the button
				if !injected && !doc.Exists("#"+adapter.ButtonID()) {
					fmt.Fprintln(cmd.ErrOrStderr(), "Deliver button not injected; check `auto status` and the page URL")

					return nil
				}

				pageUC.HandleDeliverClick(ctx, doc)

				return writeDocument(doc, output, cmd.OutOrStdout())
			}, &pageUC, &adapter)
		},
	}

	cmd.Flags().StringVar(&pageURL, "url", "", "URL the page was saved from")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the mutated page here instead of stdout")
	_ = cmd.MarkFlagRequired("url")

	return cmd
}

func newPageWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch URL",
		Short: "Open the marketplace in Chrome and add the deliver button to order pages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				b       *browser.Browser
				watcher *page.Watcher
			)

			return runApp(cmd.Context(), fx.Options(appOptions(cmd.Context()), injectUI()), func(ctx context.Context) error {
				tab, err := b.Open(ctx, args[0])
				if err != nil {
					return err
				}
				defer tab.Close()

				fmt.Fprintln(cmd.ErrOrStderr(), "Watching the browser tab; press Ctrl+C to stop")

				return watcher.Watch(ctx, tab)
			}, &b, &watcher)
		},
	}
}

func openDocument(path, pageURL string, onAlert func(string)) (*htmldoc.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	var opts []htmldoc.Option
	if onAlert != nil {
		opts = append(opts, htmldoc.WithAlertHandler(onAlert))
	}

	return htmldoc.Parse(pageURL, f, opts...)
}

func writeDocument(doc *htmldoc.Document, path string, stdout io.Writer) error {
	if path == "" {
		return doc.Render(stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer f.Close()

	return doc.Render(f)
}
