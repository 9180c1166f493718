package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// tagsCmd represents the tags command
var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Manage labels",
}

var tagsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all labels",
	RunE:  runTagsList,
}

var tagsRenameCmd = &cobra.Command{
	Use:   "rename <old> <new>",
	Short: "Rename a label",
	Args:  cobra.ExactArgs(2),
	RunE:  runTagsRename,
}

var tagsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a label",
	Args:  cobra.ExactArgs(1),
	RunE:  runTagsDelete,
}

func init() {
	rootCmd.AddCommand(tagsCmd)
	tagsCmd.AddCommand(tagsListCmd)
	tagsCmd.AddCommand(tagsRenameCmd)
	tagsCmd.AddCommand(tagsDeleteCmd)
}

func runTagsList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	if err := ensureAuth(ctx); err != nil {
		return err
	}

	tags, err := client.Tags(ctx)
	if err != nil {
		return fmt.Errorf("failed to list tags: %w", err)
	}

	var labels int
	for _, tag := range tags {
		if !tag.IsLabel() {
			continue
		}
		labels++
		fmt.Printf("• %s\n", tag.Name())
	}

	if labels == 0 {
		fmt.Println("No labels.")
	}
	return nil
}

func runTagsRename(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	if err := ensureAuth(ctx); err != nil {
		return err
	}

	if err := client.RenameTag(ctx, args[0], args[1]); err != nil {
		return fmt.Errorf("failed to rename tag: %w", err)
	}

	logger.Info().Str("from", args[0]).Str("to", args[1]).Msg("Tag renamed")
	fmt.Printf("✓ Renamed %s to %s\n", args[0], args[1])
	return nil
}

func runTagsDelete(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	if err := ensureAuth(ctx); err != nil {
		return err
	}

	if err := client.DeleteTag(ctx, args[0]); err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}

	logger.Info().Str("tag", args[0]).Msg("Tag deleted")
	fmt.Printf("✓ Deleted %s\n", args[0])
	return nil
}
