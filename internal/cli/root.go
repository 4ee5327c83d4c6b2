package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "wordpartyctl",
		Short: "Admin CLI for the word party server",
		Long: `wordpartyctl is an admin CLI for operating a word party server.

It supports listing and deleting rooms, banning and unbanning users,
toggling maintenance mode and inspecting server status.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load admin key from file if not provided via flag/env
			if err := cfg.LoadAdminKey(); err != nil {
				return err
			}

			// Create HTTP client
			client = NewClient(cfg.ServerURL, cfg.AdminKey)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: WORDPARTY_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.AdminKey, "admin-key", cfg.AdminKey, "Admin key (env: WORDPARTY_ADMIN_KEY)")
	rootCmd.PersistentFlags().StringVar(&cfg.AdminKeyFile, "admin-key-file", cfg.AdminKeyFile, "Admin key file path (env: WORDPARTY_ADMIN_KEY_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newRoomCmd())
	rootCmd.AddCommand(newUserCmd())
	rootCmd.AddCommand(newMaintenanceCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
