package main

import (
	"context"
	"fmt"
	"strings"

	"automarket/internal/delivery/http/validator"
	"automarket/internal/delivery/tui"
	"automarket/internal/domain/entity"
	domainerrors "automarket/internal/domain/errors"
	"automarket/internal/errors"
	"automarket/internal/usecase"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newDashboardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the seller dashboard",
		Long:  "Summary, products, orders and the AI chat in the terminal. Requires `auto dashboard login` first.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var dashboard *tui.Dashboard

			options := fx.Options(
				appOptions(cmd.Context()),
				injectUI(),
				fx.Provide(fileLogOutput),
			)

			err := runApp(cmd.Context(), options, func(ctx context.Context) error {
				return dashboard.Serve(ctx)
			}, &dashboard)
			if errors.IsAny(err, domainerrors.ErrNotLoggedIn, domainerrors.ErrSessionExpired) {
				fmt.Fprintln(cmd.ErrOrStderr(), "Please log in first: auto dashboard login")
			}
			if err == nil && dashboard.LoggedOut() {
				fmt.Fprintln(cmd.OutOrStdout(), "Logged out successfully")
			}

			return err
		},
	}

	cmd.AddCommand(
		newDashboardLoginCommand(),
		newDashboardRegisterCommand(),
		newDashboardLogoutCommand(),
	)

	return cmd
}

func newDashboardLoginCommand() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the dashboard with email and password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				var err error
				if password, err = prompt(cmd.InOrStdin(), cmd.OutOrStdout(), "Password: "); err != nil {
					return err
				}
			}

			input := &entity.LoginCredentials{Email: strings.TrimSpace(email), Password: password}
			if err := validator.New().Validate(input); err != nil {
				return err
			}

			var sessionUC usecase.SessionUsecase

			return runApp(cmd.Context(), appOptions(cmd.Context()), func(ctx context.Context) error {
				user, err := sessionUC.DashboardLogin(ctx, input)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", displayName(user))

				return nil
			}, &sessionUC)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when empty)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newDashboardRegisterCommand() *cobra.Command {
	var email, password, fullName string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a seller account and sign in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				var err error
				if password, err = prompt(cmd.InOrStdin(), cmd.OutOrStdout(), "Password: "); err != nil {
					return err
				}
			}

			input := &entity.RegisterInput{
				Email:    strings.TrimSpace(email),
				Password: password,
				FullName: strings.TrimSpace(fullName),
			}
			if err := validator.New().Validate(input); err != nil {
				return err
			}

			var sessionUC usecase.SessionUsecase

			return runApp(cmd.Context(), appOptions(cmd.Context()), func(ctx context.Context) error {
				user, err := sessionUC.DashboardRegister(ctx, input)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Registered and logged in as %s\n", displayName(user))

				return nil
			}, &sessionUC)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when empty)")
	cmd.Flags().StringVar(&fullName, "name", "", "full name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newDashboardLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the dashboard token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var sessionUC usecase.SessionUsecase

			return runApp(cmd.Context(), appOptions(cmd.Context()), func(ctx context.Context) error {
				if err := sessionUC.DashboardLogout(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Logged out successfully")

				return nil
			}, &sessionUC)
		},
	}
}

func displayName(user *entity.User) string {
	if user == nil {
		return "-"
	}
	if user.FullName != "" {
		return fmt.Sprintf("%s <%s>", user.FullName, user.Email)
	}

	return user.Email
}
