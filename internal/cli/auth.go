package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"inventory-console/internal/model"
)

func newLoginCmd(a *app) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.auth.Login(cmd.Context(), model.Credential{
				Username: username,
				Password: password,
			})
			if err != nil {
				return err
			}

			if err := a.session.Commit(token); err != nil {
				return err
			}

			identity := a.session.Peek()
			fmt.Fprintf(cmd.OutOrStdout(), "signed in as %s (roles: %s)\n",
				identity.Username, strings.Join(identity.Roles.Values(), ", "))

			// Land where a prior redirect wanted us, otherwise on home.
			if r := a.nav.lastRedirect(); r != nil && r.ReturnURL != "" {
				a.nav.visit(r.ReturnURL)
			} else {
				a.nav.visit(homeRoute)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "account name")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newRegisterCmd(a *app) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := a.auth.Register(cmd.Context(), model.Credential{
				Username: username,
				Password: password,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "registered, you can now sign in")
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "account name")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.session.Clear()
			fmt.Fprintln(cmd.OutOrStdout(), "signed out")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			identity := a.session.Peek()
			if identity == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "not signed in")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (id %s, roles: %s)\n",
				identity.Username, identity.ID, strings.Join(identity.Roles.Values(), ", "))
			return nil
		},
	}
}
