package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daticahealth/snapdash/logs"
)

var usernameCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "username",
		Short: "Username utilities",
	}
	cmd.AddCommand(usernameCheck)
	return cmd
}()

var usernameCheck = &cobra.Command{
	Use:   "check <username>",
	Short: "Check whether a username is available",
	Long: "Check whether a username is available. A name is only reported as available " +
		"when the profile service confirms no user has it; errors count as unavailable.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := signedInClient()
		if err != nil {
			return err
		}
		if client.CheckUsernameAvailability(cmd.Context(), args[0]) {
			logs.Success("%s is available", args[0])
			return nil
		}
		return fmt.Errorf("%s is not available", args[0])
	},
}

var usersCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Browse registered users",
	}
	cmd.AddCommand(usersList)
	return cmd
}()

var usersList = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all registered usernames",
		Args:    cobra.NoArgs,
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
			res := client.GetAllUsers(cmd.Context())
			if err := res.Err(); err != nil {
				return err
			}
			return printUsers(cmd.OutOrStdout(), res.Users, format)
		},
	}

	cmd.Flags().StringP("output", "o", formatTable, "output format: table or json")

	return cmd
}()
