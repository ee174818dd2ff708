package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"wardrobe-planner/internal/session"
	"wardrobe-planner/internal/wardrobeapi"
)

func newLoginCmd(a *app) *cobra.Command {
	var creds wardrobeapi.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and remember the session on this machine",
		Example: `  wardrobe login --username ada --password s3cret`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.session.Login(cmd.Context(), creds); err != nil {
				return fmt.Errorf("login failed: %w", err)
			}
			a.printf("Logged in as %s\n", a.session.Snapshot().User.Username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&creds.Username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&creds.Password, "password", "p", "", "Password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCmd(a *app) *cobra.Command {
	var reg wardrobeapi.Registration

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.session.Register(cmd.Context(), reg)
			if err != nil {
				return fmt.Errorf("registration failed: %w", err)
			}
			snap := a.session.Snapshot()
			switch {
			case snap.State == session.StateAuthenticated:
				a.printf("Registered and logged in as %s\n", snap.User.Username)
			case user != nil:
				a.printf("Registered %s, now run `wardrobe login`\n", user.Username)
			default:
				a.printf("Registered, now run `wardrobe login`\n")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&reg.Username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&reg.Email, "email", "e", "", "Email address")
	cmd.Flags().StringVarP(&reg.Password, "password", "p", "", "Password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the session on this machine",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.session.Logout(cmd.Context())
			a.printf("Logged out\n")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(cmd.Context()); err != nil {
				return err
			}
			user := a.session.Snapshot().User
			return a.render(user, func(w *tabwriter.Writer) {
				fmt.Fprintf(w, "ID\tUSERNAME\tEMAIL\n")
				fmt.Fprintf(w, "%s\t%s\t%s\n", user.ID, user.Username, user.Email)
			})
		},
	}
}
