package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/st3rn/readerctl/config"
	"github.com/st3rn/readerctl/greader"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *greader.Client

	version   = "dev"
	buildTime = "unknown"
)

// SetVersion sets the build information shown by --version.
func SetVersion(v, t string) {
	version = v
	buildTime = t
	rootCmd.Version = fmt.Sprintf("%s (built %s)", v, t)
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "readerctl",
	Short: "A CLI for GReader-compatible RSS aggregators",
	Long: `readerctl talks to any GReader-compatible (Google Reader API) aggregator
such as FreshRSS, Miniflux or The Old Reader. It can list and filter items,
manage feed subscriptions and labels, and mark streams read.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

// initializeApp initializes the configuration and the GReader client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create GReader client
	opts := []greader.Option{
		greader.WithClientID(cfg.Server.ClientID),
	}
	if cfg.Server.AuthToken != "" {
		opts = append(opts, greader.WithAuthToken(cfg.Server.AuthToken))
	}
	if cfg.Server.RequestsPerMinute > 0 {
		opts = append(opts, greader.WithRateLimit(cfg.Server.RequestsPerMinute, 0))
	}

	client, err = greader.NewClient(cfg.Server.URL, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create GReader client: %w", err)
	}

	return nil
}

// ensureAuth logs in with the configured credentials unless an auth token
// is already held.
func ensureAuth(ctx context.Context) error {
	if client.AuthToken() != "" {
		return nil
	}

	logger.Debug().Str("username", cfg.Server.Username).Msg("No auth token, logging in")
	if _, err := client.Login(ctx, cfg.Server.Username, cfg.Server.Password); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; no color when stderr is not a terminal
	color := cfg.Color && isatty.IsTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !color,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
