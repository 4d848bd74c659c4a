package cmd

import (
	"github.com/spf13/cobra"

	"github.com/daticahealth/snapdash/home"
	"github.com/daticahealth/snapdash/logs"
)

var homeCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "home",
		Short: "Open the interactive dashboard",
		Long: "Open the interactive dashboard. Use tab or 1-4 to switch between services, " +
			"users, twitsnaps and profile, p to jump to your profile and q to quit.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := cmd.Flags().GetString("section")
			if err != nil {
				return err
			}
			start, err := home.ParseSection(name)
			if err != nil {
				return err
			}
			client, store, err := signedInClient()
			if err != nil {
				return err
			}
			final, err := home.Run(cmd.Context(), home.Options{
				API:      client,
				Email:    store.Email(),
				Services: []home.Service{{Name: "profiles", URL: client.Host()}},
				Start:    start,
				Logout:   store.Clear,
			})
			if err != nil {
				return err
			}
			if final.SignedOut() {
				logs.Success("Signed out.")
			}
			return nil
		},
	}

	cmd.Flags().String("section", "services", "section to open: services, users, twitsnaps or profile")

	return cmd
}()
