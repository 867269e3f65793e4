package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"inventory-console/internal/model"
)

func newDevicesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "devices",
		Short: "Browse and manage tracked devices",
	}

	cmd.AddCommand(
		newDevicesListCmd(a),
		newDevicesGetCmd(a),
		newDevicesCreateCmd(a),
		newDevicesMoveCmd(a),
		newDevicesHistoryCmd(a),
	)

	return cmd
}

func newDevicesListCmd(a *app) *cobra.Command {
	var query model.DeviceQuery

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List devices",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.enter(inventoryRoute); err != nil {
				return err
			}

			list, err := a.devices.List(cmd.Context(), query)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tINV#\tDEPARTMENT\tSTATUS")
			for _, d := range list.Items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					d.ID, d.Name, d.InventoryNumber, d.CurrentDepartmentName, d.CurrentStatusName)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "page %d of %d (%d devices)\n",
				list.PageNumber, list.TotalPages, list.TotalCount)
			return nil
		},
	}

	cmd.Flags().StringVar(&query.DepartmentID, "department", "", "filter by department id")
	cmd.Flags().IntVar(&query.StatusID, "status", 0, "filter by status id")
	cmd.Flags().StringVar(&query.SearchText, "search", "", "search text")
	cmd.Flags().StringVar(&query.SortBy, "sort", "", "sort field")
	cmd.Flags().BoolVar(&query.SortDescending, "desc", false, "sort descending")
	cmd.Flags().IntVar(&query.Page, "page", 0, "page number")
	cmd.Flags().IntVar(&query.PageSize, "page-size", 0, "page size")

	return cmd
}

func newDevicesGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.enter(inventoryRoute); err != nil {
				return err
			}

			device, err := a.devices.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "name:       %s\n", device.Name)
			fmt.Fprintf(out, "inventory:  %s\n", device.InventoryNumber)
			fmt.Fprintf(out, "department: %s\n", device.CurrentDepartmentName)
			fmt.Fprintf(out, "status:     %s\n", device.CurrentStatusName)
			if device.Description != "" {
				fmt.Fprintf(out, "note:       %s\n", device.Description)
			}
			return nil
		},
	}
}

func newDevicesCreateCmd(a *app) *cobra.Command {
	var req model.CreateDeviceRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new device",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.enter(inventoryRoute); err != nil {
				return err
			}

			id, err := a.devices.Create(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created device %s\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "device name")
	cmd.Flags().StringVar(&req.InventoryNumber, "inv", "", "inventory number")
	cmd.Flags().StringVar(&req.Description, "note", "", "description")
	cmd.Flags().StringVar(&req.CurrentDepartmentID, "department", "", "department id")
	cmd.Flags().IntVar(&req.CurrentStatusID, "status", 0, "status id")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("inv")
	_ = cmd.MarkFlagRequired("status")

	return cmd
}

func newDevicesMoveCmd(a *app) *cobra.Command {
	var req model.MoveRequest

	cmd := &cobra.Command{
		Use:   "move <id>",
		Short: "Transfer a device to another department",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.enter(inventoryRoute); err != nil {
				return err
			}

			req.DeviceID = args[0]
			if err := a.devices.Move(cmd.Context(), req); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "device moved")
			return nil
		},
	}

	cmd.Flags().StringVar(&req.ToDepartmentID, "to", "", "target department id")
	cmd.Flags().StringVar(&req.ReasonID, "reason", "", "movement reason id")
	cmd.Flags().StringVar(&req.Note, "note", "", "optional note")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("reason")

	return cmd
}

func newDevicesHistoryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "history <id>",
		Short: "Show a device's transfer history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.enter(inventoryRoute); err != nil {
				return err
			}

			movements, err := a.devices.History(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "MOVED AT\tFROM\tTO\tREASON\tBY")
			for _, m := range movements {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					m.MovedAt.Format("2006-01-02 15:04"),
					m.FromDepartmentName, m.ToDepartmentName, m.ReasonName, m.MovedBy)
			}
			return w.Flush()
		},
	}
}
