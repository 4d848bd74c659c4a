package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/daticahealth/snapdash/logs"
	"github.com/daticahealth/snapdash/session"
)

var refresh = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Replace the stored session token",
		Long: "Replace the stored session token. By default the stored token is not checked " +
			"and you are prompted for a new one; the stored email is kept. With " +
			"--reuse-session the stored token is verified first and only replaced if the " +
			"profile service rejects it.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := sessionStore()
			if err != nil {
				return err
			}
			sess, err := store.Load()
			if err != nil && !errors.Is(err, session.ErrNoSession) {
				return err
			}
			if sess == nil {
				sess = &session.Session{}
			}
			reuseSession, err := cmd.Flags().GetBool("reuse-session")
			if err != nil {
				return err
			}
			verify, err := cmd.Flags().GetBool("verify")
			if err != nil {
				return err
			}
			if reuseSession && sess.Token != "" {
				err := verifyToken(cmd.Context(), sess.Token)
				if err == nil {
					logs.Printv("Session verified successfully.")
					logs.Success("Session for %s is still valid.", sess.Email)
					return nil
				}
				if !isTokenRejected(err) {
					return err
				}
				logs.Print("Your session has expired. You will need to enter a new token to proceed.")
			} else {
				logs.Printv("Forcing token replacement, as requested.")
			}

			if sess.Email == "" {
				if sess.Email, err = requireValue("Email", true); err != nil {
					return err
				}
			}
			token, err := requireValue("Token", false)
			if err != nil {
				return err
			}
			if verify {
				if err := verifyToken(cmd.Context(), token); err != nil {
					return err
				}
			}
			if err := store.Save(session.Session{Token: token, Email: sess.Email}); err != nil {
				return err
			}
			logs.Success("Session refreshed for %s.", sess.Email)
			return nil
		},
	}

	cmd.Flags().Bool("reuse-session", false, "Do not overwrite token if it is still valid")
	cmd.Flags().Bool("verify", true, "check the new token against the profile service before saving it")

	return cmd
}()
