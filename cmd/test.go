package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connection to the GReader server",
	Long:  `Test the connection to the configured server and display basic account information.`,
	RunE:  runTest,
}

func init() {
	rootCmd.AddCommand(testCmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Printf("Testing connection to %s...\n", cfg.Server.URL)

	ctx := context.Background()
	if err := ensureAuth(ctx); err != nil {
		return err
	}

	info, err := client.UserInfo(ctx)
	if err != nil {
		return fmt.Errorf("failed to get user info: %w", err)
	}

	fmt.Println("✓ Connection successful!")
	fmt.Printf("\nAccount:\n")
	fmt.Printf("- User: %s (ID %s)\n", info.UserName, info.UserID)
	if info.UserEmail != "" {
		fmt.Printf("- Email: %s\n", info.UserEmail)
	}

	overview, err := client.Overview(ctx)
	if err != nil {
		return fmt.Errorf("failed to get overview: %w", err)
	}

	fmt.Printf("\nServer statistics:\n")
	fmt.Printf("- Subscriptions: %d\n", len(overview.Subscriptions))
	fmt.Printf("- Tags: %d\n", len(overview.Tags))
	fmt.Printf("- Unread items: %d\n", overview.TotalUnread())

	return nil
}
