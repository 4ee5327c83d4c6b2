package cli

import (
	"github.com/spf13/cobra"
)

func newMaintenanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "maintenance",
		Short: "Maintenance mode commands",
	}

	cmd.AddCommand(newMaintenanceSetCmd("on", true))
	cmd.AddCommand(newMaintenanceSetCmd("off", false))

	return cmd
}

func newMaintenanceSetCmd(use string, enabled bool) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: "Turn maintenance mode " + use,
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]bool{"enabled": enabled}
			if err := client.Put("/api/v1/admin/maintenance", body, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Maintenance mode " + use)
			return nil
		},
	}
}
