package main

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/casedesk/internal/access"
	"github.com/heartmarshall/casedesk/internal/app"
)

const passwordEnv = "CASEDESK_PASSWORD"

type whoamiOutput struct {
	ActorID     uuid.UUID `json:"actor_id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	IsAdmin     bool      `json:"is_admin"`
	Scope       string    `json:"scope"`
}

func describe(p *access.Principal) whoamiOutput {
	return whoamiOutput{
		ActorID:     p.ActorID(),
		Email:       p.Actor.Email,
		DisplayName: p.Actor.DisplayName,
		Role:        p.RoleName,
		IsAdmin:     p.IsAdmin,
		Scope:       p.Scope().String(),
	}
}

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and cache the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = os.Getenv(passwordEnv)
			}
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				p, err := a.Sessions.Login(ctx, email, password)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), describe(p))
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Actor email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Password (defaults to $"+passwordEnv+")")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the cached session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				return a.Sessions.Logout(ctx)
			})
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Revalidate the session and print the current actor",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				p, err := a.Sessions.Validate(ctx)
				if err != nil {
					a.Sessions.Invalidate()
					return err
				}
				return writeJSON(cmd.OutOrStdout(), describe(p))
			})
		},
	}
}
