package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var showToken bool

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Exchange the configured credentials for an auth token",
	Long: `Perform the ClientLogin exchange with the configured username and password.

The obtained token can be stored as server.auth_token in the config file
(or the READERCTL_SERVER_AUTH_TOKEN environment variable) to avoid sending
the password on subsequent runs.`,
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().BoolVar(&showToken, "show-token", false, "print the obtained auth token")
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	token, err := client.Login(ctx, cfg.Server.Username, cfg.Server.Password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	logger.Info().Str("username", cfg.Server.Username).Msg("Login successful")

	if showToken {
		fmt.Println(token)
	} else {
		fmt.Println("✓ Login successful. Re-run with --show-token to print the token.")
	}

	return nil
}
