package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/daticahealth/snapdash/config"
	"github.com/daticahealth/snapdash/logs"
)

var rootCmd = &cobra.Command{
	Use:   "snapdash",
	Short: "TwitSnap back-office CLI and dashboard.",
	Long: "TwitSnap back-office CLI and dashboard. Manage your profile, look up users and " +
		"browse the admin sections against the profile microservice.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logs.ConfigureVerbosity(verboseLoggingEnabled)
		c, err := config.Load(v, configPath)
		if err != nil {
			return err
		}
		if noColor {
			c.Output.Colors = false
		}
		cfg = c
		logs.ConfigureVerbosity(cfg.Verbose)
		logs.ConfigureColors(cfg.Output.Colors)
		logs.Debugv("configuration loaded",
			"api_host", cfg.API.Host,
			"api_timeout", cfg.API.Timeout,
			"session_file", cfg.Session.File,
		)
		return nil
	},
}

func bindSubcommands() {
	rootCmd.AddCommand(login)
	rootCmd.AddCommand(logout)
	rootCmd.AddCommand(refresh)
	rootCmd.AddCommand(whoami)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(usernameCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(homeCmd)
}

// Execute invokes the command and exits in the event of an error.
func Execute() {
	bindFlags()
	bindSubcommands()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logs.Error(err.Error())
		stop()
		os.Exit(1)
	}
}
