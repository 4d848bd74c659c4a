package cmd

import (
	"github.com/spf13/cobra"

	"github.com/daticahealth/snapdash/logs"
	"github.com/daticahealth/snapdash/session"
)

var login = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store a session token for subsequent commands",
		Long: "Store a session token for subsequent commands. Tokens are issued by the TwitSnap " +
			"auth service; this command prompts for your email and the token and saves them " +
			"to the local session file. Any existing session is replaced.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := sessionStore()
			if err != nil {
				return err
			}
			email, err := cmd.Flags().GetString("email")
			if err != nil {
				return err
			}
			if email == "" {
				if email, err = requireValue("Email", true); err != nil {
					return err
				}
			}
			token, err := requireValue("Token", false)
			if err != nil {
				return err
			}

			verify, err := cmd.Flags().GetBool("verify")
			if err != nil {
				return err
			}
			if verify {
				if err := verifyToken(cmd.Context(), token); err != nil {
					return err
				}
			}

			if err := store.Save(session.Session{Token: token, Email: email}); err != nil {
				return err
			}
			logs.Success("Signed in as %s.", email)
			return nil
		},
	}

	cmd.Flags().String("email", "", "email of the account, prompted for if empty")
	cmd.Flags().Bool("verify", true, "check the token against the profile service before saving it")

	return cmd
}()

var logout = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := sessionStore()
		if err != nil {
			return err
		}
		if err := store.Clear(); err != nil {
			return err
		}
		logs.Success("Signed out.")
		return nil
	},
}
