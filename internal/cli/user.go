package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "User management commands",
	}

	cmd.AddCommand(newUserListCmd())
	cmd.AddCommand(newUserGetCmd())
	cmd.AddCommand(newUserBanCmd())
	cmd.AddCommand(newUserUnbanCmd())

	return cmd
}

func newUserListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List user profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ProfileList

			if err := client.Get("/api/v1/admin/users", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newUserGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <username>",
		Short: "Show a user profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Profile

			path := fmt.Sprintf("/api/v1/admin/users/%s", url.PathEscape(args[0]))
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newUserBanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ban <username>",
		Short: "Ban a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setBan(args[0], true)
		},
	}
}

func newUserUnbanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unban <username>",
		Short: "Unban a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setBan(args[0], false)
		},
	}
}

func setBan(username string, banned bool) error {
	var result Profile

	path := fmt.Sprintf("/api/v1/admin/users/%s/ban", url.PathEscape(username))
	if err := client.Put(path, map[string]bool{"banned": banned}, &result); err != nil {
		return err
	}

	out := NewOutput(cfg.Output)
	out.Print(result)
	return nil
}
