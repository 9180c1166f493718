package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/st3rn/readerctl/filter"
	"github.com/st3rn/readerctl/greader"
)

var (
	itemStream   string
	itemNumber   int
	itemUnread   bool
	itemStarred  bool
	filterExpr   string
	preset       string
	showBody     bool
	followPaging bool
)

// itemsCmd represents the items command
var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "List items from a stream",
	Long: `List items from a stream: a feed URL, a label, or the whole reading list.

Items can be narrowed with an expr filter expression, e.g.:

	readerctl items --unread --filter 'daysSince(Published) < 7'
	readerctl items -s "https://example.org/feed.xml" --filter 'contains(Title, "release")'`,
	RunE: runItems,
}

func init() {
	rootCmd.AddCommand(itemsCmd)

	itemsCmd.Flags().StringVarP(&itemStream, "stream", "s", greader.StreamReadingList, "stream to list (feed URL, label, or state)")
	itemsCmd.Flags().IntVarP(&itemNumber, "number", "n", 20, "maximum number of items per page")
	itemsCmd.Flags().BoolVarP(&itemUnread, "unread", "u", false, "only unread items")
	itemsCmd.Flags().BoolVar(&itemStarred, "starred", false, "only starred items")
	itemsCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	itemsCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	itemsCmd.Flags().BoolVar(&showBody, "body", false, "print item bodies")
	itemsCmd.Flags().BoolVar(&followPaging, "all", false, "follow continuations until the stream is exhausted")
}

func runItems(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	if err := ensureAuth(ctx); err != nil {
		return err
	}

	// Compile the filter, if any
	var itemFilter *filter.ItemFilter
	if expr, err := getFilterExpression(); err != nil {
		return err
	} else if expr != "" {
		itemFilter, err = filter.Compile(expr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		logger.Debug().Str("filter", expr).Msg("Filter compiled")
	}

	stream := itemStream
	if itemStarred {
		stream = greader.StreamStarred
	}

	opts := greader.ListOptions{Number: itemNumber}
	if itemUnread {
		opts.ExcludeTarget = "read"
	}

	var items []greader.Item
	for {
		contents, err := client.StreamItems(ctx, stream, opts)
		if err != nil {
			return fmt.Errorf("failed to list items: %w", err)
		}

		page := contents.Items
		if itemFilter != nil {
			page, err = itemFilter.Apply(page)
			if err != nil {
				return err
			}
		}
		items = append(items, page...)

		if !followPaging || contents.Continuation == "" {
			break
		}
		opts.Continuation = contents.Continuation
	}

	if len(items) == 0 {
		fmt.Println("No items found.")
		return nil
	}

	fmt.Printf("\nFound %d items:\n", len(items))
	fmt.Println(strings.Repeat("-", 80))

	for _, item := range items {
		marker := " "
		if !item.Read() {
			marker = "●"
		}
		star := ""
		if item.Starred() {
			star = " ★"
		}
		fmt.Printf("%s %s%s\n", marker, item.Title, star)
		fmt.Printf("  %s — %s\n", item.Origin.Title, item.PublishedTime().Format(time.RFC822))
		if url := item.URL(); url != "" {
			fmt.Printf("  %s\n", url)
		}
		if showBody {
			fmt.Printf("\n%s\n\n", item.Body())
		}
	}

	return nil
}

// getFilterExpression determines the filter expression to use
func getFilterExpression() (string, error) {
	// Priority: command line filter > preset > default
	if filterExpr != "" {
		return filterExpr, nil
	}

	if preset != "" {
		if presetFilter, ok := cfg.Filter.Presets[preset]; ok {
			return presetFilter.Expression, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	return cfg.Filter.DefaultExpression, nil
}
