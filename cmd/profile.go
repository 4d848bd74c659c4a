package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daticahealth/snapdash/logs"
	"github.com/daticahealth/snapdash/profile"
)

var profileCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Read and edit profiles",
	}
	cmd.AddCommand(profileGet, profileCreate, profileUpdate)
	return cmd
}()

var profileGet = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [username]",
		Short: "Show your profile, or another user's profile",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cmd.Flags().GetString("output")
			if err != nil {
				return err
			}
			if err := validateFormat(format); err != nil {
				return err
			}
			client, _, err := signedInClient()
			if err != nil {
				return err
			}
			var res profile.Result
			if len(args) == 1 {
				res = client.GetUserProfile(cmd.Context(), args[0])
			} else {
				res = client.GetProfile(cmd.Context())
			}
			if err := res.Err(); err != nil {
				return err
			}
			return printProfile(cmd.OutOrStdout(), res.Profile, format)
		},
	}

	cmd.Flags().StringP("output", "o", formatTable, "output format: table or json")

	return cmd
}()

func bindPayloadFlags(cmd *cobra.Command) {
	cmd.Flags().StringArray("set", nil, "profile field as key=value, may be repeated")
	cmd.Flags().StringP("file", "f", "", "read profile fields from a JSON or YAML file")
}

func payloadFromFlags(cmd *cobra.Command) (profile.Profile, error) {
	file, err := cmd.Flags().GetString("file")
	if err != nil {
		return nil, err
	}
	sets, err := cmd.Flags().GetStringArray("set")
	if err != nil {
		return nil, err
	}
	return profilePayload(file, sets)
}

var profileCreate = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create your profile",
		Long: "Create your profile. Fields come from --file and --set, with --set taking " +
			"precedence. Unless --skip-check is given, the username is checked for " +
			"availability first and the command fails if it is taken or cannot be checked." + `

For example:

	snapdash profile create --set username=carol --set bio="hello there"
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := payloadFromFlags(cmd)
			if err != nil {
				return err
			}
			skipCheck, err := cmd.Flags().GetBool("skip-check")
			if err != nil {
				return err
			}
			client, _, err := signedInClient()
			if err != nil {
				return err
			}
			if name := payload.Username(); name != "" && !skipCheck {
				if !client.CheckUsernameAvailability(cmd.Context(), name) {
					return fmt.Errorf("username %q is not available", name)
				}
			}
			if err := client.CreateProfile(cmd.Context(), payload).Err(); err != nil {
				return err
			}
			logs.Success("Profile created.")
			return nil
		},
	}

	bindPayloadFlags(cmd)
	cmd.Flags().Bool("skip-check", false, "do not check username availability before creating")

	return cmd
}()

var profileUpdate = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update fields of your profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := payloadFromFlags(cmd)
			if err != nil {
				return err
			}
			client, _, err := signedInClient()
			if err != nil {
				return err
			}
			if err := client.UpdateProfile(cmd.Context(), payload).Err(); err != nil {
				return err
			}
			logs.Success("Profile updated.")
			return nil
		},
	}

	bindPayloadFlags(cmd)

	return cmd
}()
