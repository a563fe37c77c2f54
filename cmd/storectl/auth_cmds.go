package main

import (
	"fmt"

	"github.com/RoyceAzure/lab/storefront/pkg/session"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login [username] [password]",
	Short: "Log in and persist the session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := storeClient.Login(cmd.Context(), args[0], args[1])
		if err != nil {
			// the session file stays untouched on a failed login
			return fmt.Errorf("login failed: %w", err)
		}

		err = sessionStore.SetIdentity(session.Identity{
			ID:       user.Username,
			Username: user.Username,
			Role:     user.Role,
		})
		if err != nil {
			return err
		}

		notify("Logged in as %s (%s)", user.Username, user.Role)
		notify("-> %s", sessionStore.RouteFor())
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the persisted session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := sessionStore.Clear(); err != nil {
			return err
		}
		notify("Logged out; requests now use the guest identity")
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register [username] [password]",
	Short: "Create an account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		role, _ := cmd.Flags().GetString("role")
		user, err := storeClient.Register(cmd.Context(), args[0], args[1], role)
		if err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}
		notify("User %s created (%s)", user.Username, user.Role)
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current identity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if id := sessionStore.Current(); id != nil {
			notify("%s (%s)", id.Username, id.Role)
		} else {
			notify("not logged in (guest)")
		}
		return nil
	},
}

func init() {
	registerCmd.Flags().String("role", "", "account role (admin accounts only make sense on trusted setups)")
	rootCmd.AddCommand(loginCmd, logoutCmd, registerCmd, whoamiCmd)
}
