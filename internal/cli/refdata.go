package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newRefdataCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refdata",
		Short: "Browse reference data (departments, statuses, reasons)",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "departments",
			Short: "List departments",
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.enter(refdataRoute); err != nil {
					return err
				}

				departments, err := a.departments.List(cmd.Context())
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tCODE\tNAME\tACTIVE")
				for _, d := range departments {
					fmt.Fprintf(w, "%s\t%d\t%s\t%t\n", d.ID, d.Code, d.Name, d.IsActive)
				}
				return w.Flush()
			},
		},
		&cobra.Command{
			Use:   "statuses",
			Short: "List device statuses",
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.enter(refdataRoute); err != nil {
					return err
				}

				statuses, err := a.statuses.List(cmd.Context())
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tCODE\tNAME\tACTIVE")
				for _, s := range statuses {
					fmt.Fprintf(w, "%d\t%s\t%s\t%t\n", s.ID, s.Code, s.Name, s.IsActive)
				}
				return w.Flush()
			},
		},
		&cobra.Command{
			Use:   "reasons",
			Short: "List movement reasons",
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.enter(refdataRoute); err != nil {
					return err
				}

				reasons, err := a.reasons.List(cmd.Context())
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tCODE\tNAME\tACTIVE")
				for _, r := range reasons {
					fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", r.ID, r.Code, r.Name, r.IsActive)
				}
				return w.Flush()
			},
		},
	)

	return cmd
}

func newReportsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reports",
		Short: "Show per-department device counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.enter(reportsRoute); err != nil {
				return err
			}

			stats, err := a.reports.DepartmentStats(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DEPARTMENT\tDEVICES\tACTIVE\tIN REPAIR")
			for _, s := range stats {
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\n",
					s.DepartmentName, s.DeviceCount, s.ActiveCount, s.RepairCount)
			}
			return w.Flush()
		},
	}
}
