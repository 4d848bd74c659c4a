package cmd

import (
	"github.com/spf13/cobra"

	"github.com/daticahealth/snapdash/logs"
	"github.com/daticahealth/snapdash/session"
)

var whoami = &cobra.Command{
	Use:   "whoami",
	Short: "Print out information about the currently-authenticated user",
	Long: "Print out information about the currently-authenticated user. " +
		"The stored email is printed along with the profile fetched from the profile service.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, store, err := signedInClient()
		if err != nil {
			return err
		}
		if _, err := store.Load(); err != nil {
			return err
		}
		logs.Print("Email: %s", store.Lookup(session.KeyEmail))
		res := client.GetProfile(cmd.Context())
		if err := res.Err(); err != nil {
			return err
		}
		logs.Print("Username: %s", res.Profile.Username())
		return nil
	},
}
