package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"automarket/internal/usecase"

	"github.com/spf13/cobra"
)

func newLoginCommand() *cobra.Command {
	var apiURL, apiKey string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Connect the agent with an API key",
		Long:  "Stores the API URL and key locally and marks the seller as connected. An empty URL uses the configured default.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var sessionUC usecase.SessionUsecase

			if apiKey == "" {
				key, err := prompt(cmd.InOrStdin(), cmd.OutOrStdout(), "API Key: ")
				if err != nil {
					return err
				}
				apiKey = key
			}

			return runApp(cmd.Context(), appOptions(cmd.Context()), func(ctx context.Context) error {
				if err := sessionUC.Login(ctx, apiURL, apiKey); err != nil {
					fmt.Fprintln(cmd.OutOrStdout(), "Connection failed")

					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Connected")

				return nil
			}, &sessionUC)
		},
	}

	cmd.Flags().StringVar(&apiURL, "api-url", "", "platform backend URL")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "seller API key (prompted when empty)")

	return cmd
}

func newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Disconnect the agent; the API URL and key stay stored",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var sessionUC usecase.SessionUsecase

			return runApp(cmd.Context(), appOptions(cmd.Context()), func(ctx context.Context) error {
				if err := sessionUC.Logout(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Not connected")

				return nil
			}, &sessionUC)
		},
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the stored connection",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var sessionUC usecase.SessionUsecase

			return runApp(cmd.Context(), appOptions(cmd.Context()), func(ctx context.Context) error {
				creds, err := sessionUC.Credentials(ctx)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				status := "Not connected"
				if creds.Ready() {
					status = "Connected"
				}
				fmt.Fprintf(out, "Status:    %s\n", status)
				fmt.Fprintf(out, "API URL:   %s\n", valueOrDash(creds.APIURL))
				fmt.Fprintf(out, "API Key:   %s\n", maskKey(creds.APIKey))

				dashboard := "logged out"
				if _, err := sessionUC.DashboardSession(ctx); err == nil {
					dashboard = "logged in"
				}
				fmt.Fprintf(out, "Dashboard: %s\n", dashboard)

				return nil
			}, &sessionUC)
		},
	}
}

func prompt(in io.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}

// maskKey keeps the last four characters of a key
func maskKey(key string) string {
	if key == "" {
		return "-"
	}
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}

	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
