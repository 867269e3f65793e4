package cli

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"inventory-console/internal/model"
)

func newUsersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Administer user accounts",
	}

	cmd.AddCommand(
		newUsersListCmd(a),
		newUsersSetRolesCmd(a),
		newUsersRolesCmd(a),
	)

	return cmd
}

func newUsersListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.enter(adminRoute); err != nil {
				return err
			}

			users, err := a.users.List(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tUSERNAME\tROLES\tACTIVE")
			for _, u := range users {
				fmt.Fprintf(w, "%d\t%s\t%s\t%t\n",
					u.ID, u.Username, strings.Join(u.Roles, ","), u.IsActive)
			}
			return w.Flush()
		},
	}
}

func newUsersSetRolesCmd(a *app) *cobra.Command {
	var roles []string

	cmd := &cobra.Command{
		Use:   "set-roles <id>",
		Short: "Replace an account's roles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.enter(adminRoute); err != nil {
				return err
			}

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user id %q", args[0])
			}

			updated, err := a.users.Update(cmd.Context(), id, model.UpdateUserRequest{Roles: roles})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s now has roles: %s\n",
				updated.Username, strings.Join(updated.Roles, ", "))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&roles, "roles", nil, "role names")
	_ = cmd.MarkFlagRequired("roles")

	return cmd
}

func newUsersRolesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "roles",
		Short: "List assignable roles",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.enter(adminRoute); err != nil {
				return err
			}

			roles, err := a.users.AvailableRoles(cmd.Context())
			if err != nil {
				return err
			}

			for _, role := range roles {
				fmt.Fprintln(cmd.OutOrStdout(), role)
			}
			return nil
		},
	}
}
