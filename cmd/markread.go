package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/st3rn/readerctl/greader"
)

var (
	markStream    string
	olderThan     time.Duration
	noConfirmMark bool
)

// markReadCmd represents the mark-read command
var markReadCmd = &cobra.Command{
	Use:   "mark-read",
	Short: "Mark a stream fully read",
	Long: `Mark every item of a stream read, optionally only items older than a
given age:

	readerctl mark-read -s "https://example.org/feed.xml"
	readerctl mark-read --older-than 72h`,
	RunE: runMarkRead,
}

func init() {
	rootCmd.AddCommand(markReadCmd)

	markReadCmd.Flags().StringVarP(&markStream, "stream", "s", greader.StreamReadingList, "stream to mark read (feed URL, label, or state)")
	markReadCmd.Flags().DurationVar(&olderThan, "older-than", 0, "only mark items older than this duration")
	markReadCmd.Flags().BoolVar(&noConfirmMark, "no-confirm", false, "skip confirmation prompt")
}

func runMarkRead(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	if err := ensureAuth(ctx); err != nil {
		return err
	}

	if !noConfirmMark {
		fmt.Printf("Mark %s fully read? [y/N]: ", markStream)
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			logger.Info().Msg("Mark-read cancelled")
			return nil
		}
	}

	var cutoff time.Time
	if olderThan > 0 {
		cutoff = time.Now().Add(-olderThan)
	}

	if err := client.MarkAllRead(ctx, markStream, cutoff); err != nil {
		return fmt.Errorf("failed to mark stream read: %w", err)
	}

	logger.Info().Str("stream", markStream).Msg("Stream marked read")
	fmt.Println("✓ Marked read.")
	return nil
}
