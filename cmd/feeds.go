package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	feedTitle   string
	feedLabel   string
	removeLabel string
)

// feedsCmd represents the feeds command
var feedsCmd = &cobra.Command{
	Use:   "feeds",
	Short: "Manage feed subscriptions",
}

var feedsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all subscribed feeds with unread counts",
	RunE:  runFeedsList,
}

var feedsAddCmd = &cobra.Command{
	Use:   "add <url>",
	Short: "Subscribe to a feed",
	Args:  cobra.ExactArgs(1),
	RunE:  runFeedsAdd,
}

var feedsRemoveCmd = &cobra.Command{
	Use:   "remove <url>",
	Short: "Unsubscribe from a feed",
	Args:  cobra.ExactArgs(1),
	RunE:  runFeedsRemove,
}

var feedsEditCmd = &cobra.Command{
	Use:   "edit <url>",
	Short: "Change a subscription's title or labels",
	Args:  cobra.ExactArgs(1),
	RunE:  runFeedsEdit,
}

func init() {
	rootCmd.AddCommand(feedsCmd)
	feedsCmd.AddCommand(feedsListCmd)
	feedsCmd.AddCommand(feedsAddCmd)
	feedsCmd.AddCommand(feedsRemoveCmd)
	feedsCmd.AddCommand(feedsEditCmd)

	feedsAddCmd.Flags().StringVarP(&feedTitle, "title", "t", "", "subscription title")
	feedsAddCmd.Flags().StringVarP(&feedLabel, "label", "l", "", "label to file the feed under")

	feedsEditCmd.Flags().StringVarP(&feedTitle, "title", "t", "", "new subscription title")
	feedsEditCmd.Flags().StringVarP(&feedLabel, "add-label", "a", "", "label to add")
	feedsEditCmd.Flags().StringVarP(&removeLabel, "remove-label", "r", "", "label to remove")
}

func runFeedsList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	if err := ensureAuth(ctx); err != nil {
		return err
	}

	overview, err := client.Overview(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch overview: %w", err)
	}

	if len(overview.Subscriptions) == 0 {
		fmt.Println("No subscriptions.")
		return nil
	}

	fmt.Printf("\n%d subscriptions, %d unread:\n", len(overview.Subscriptions), overview.TotalUnread())
	fmt.Println(strings.Repeat("-", 80))

	for _, sub := range overview.Subscriptions {
		fmt.Printf("• %s", sub.Title)
		if n := overview.UnreadFor(sub.ID); n > 0 {
			fmt.Printf(" (%d unread)", n)
		}
		fmt.Println()
		if labels := sub.Labels(); len(labels) > 0 {
			fmt.Printf("  Labels: %s\n", strings.Join(labels, ", "))
		}
		fmt.Printf("  URL: %s\n", sub.URL)
	}

	return nil
}

func runFeedsAdd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	if err := ensureAuth(ctx); err != nil {
		return err
	}

	feedURL := args[0]
	if err := client.Subscribe(ctx, feedURL, feedTitle, feedLabel); err != nil {
		return fmt.Errorf("failed to subscribe: %w", err)
	}

	logger.Info().Str("feed", feedURL).Msg("Subscribed")
	fmt.Printf("✓ Subscribed to %s\n", feedURL)
	return nil
}

func runFeedsRemove(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	if err := ensureAuth(ctx); err != nil {
		return err
	}

	feedURL := args[0]
	if err := client.Unsubscribe(ctx, feedURL); err != nil {
		return fmt.Errorf("failed to unsubscribe: %w", err)
	}

	logger.Info().Str("feed", feedURL).Msg("Unsubscribed")
	fmt.Printf("✓ Unsubscribed from %s\n", feedURL)
	return nil
}

func runFeedsEdit(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	if err := ensureAuth(ctx); err != nil {
		return err
	}

	feedURL := args[0]
	if feedTitle == "" && feedLabel == "" && removeLabel == "" {
		return fmt.Errorf("nothing to change; pass --title, --add-label or --remove-label")
	}

	if err := client.EditSubscription(ctx, feedURL, feedTitle, feedLabel, removeLabel); err != nil {
		return fmt.Errorf("failed to edit subscription: %w", err)
	}

	logger.Info().Str("feed", feedURL).Msg("Subscription updated")
	fmt.Printf("✓ Updated %s\n", feedURL)
	return nil
}
