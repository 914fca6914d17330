// Package main is the entry point for catanpg, the Catan board generator.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/samdwyer/catanpg/internal/game"
	"github.com/samdwyer/catanpg/internal/telemetry"
)

var (
	boardID     string
	ordered     bool
	seed        int64
	logLevel    string
	configFile  string
	outputFile  string
	noTUI       bool
	maxAttempts uint
)

var rootCmd = &cobra.Command{
	Use:   "catanpg",
	Short: "Generate balanced Catan boards",
	Long: `Generate a Catan board whose 6 and 8 tokens never touch.

Examples:
  catanpg
  catanpg --board fishermen --seed 42
  catanpg --ordered --output board.png --no-tui`,
	SilenceUsage: true,
	RunE:         runRoot,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&boardID, "board", "b", "base", "Board to generate: base or fishermen")
	flags.BoolVar(&ordered, "ordered", false, "Keep number tokens in rulebook order before repair")
	flags.Int64VarP(&seed, "seed", "s", 0, "Random seed; 0 picks one from the clock, so 0 is not a usable seed")
	flags.StringVar(&logLevel, "log", "info", "Log level: debug, info, warn, error")
	flags.StringVarP(&configFile, "config", "c", "", "YAML config file")
	flags.StringVarP(&outputFile, "output", "o", "", "Write the board as a PNG image")
	flags.BoolVar(&noTUI, "no-tui", false, "Print the board as text instead of opening the terminal view")
	flags.UintVar(&maxAttempts, "max-attempts", 0, "Give up after this many attempts (0 retries forever)")
}

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_CATANPG_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the config file, then applies the flags given on the
// command line on top of it.
func loadConfig(cmd *cobra.Command) (game.Config, error) {
	cfg := game.DefaultConfig()
	if configFile != "" {
		var err error
		if cfg, err = game.LoadConfig(configFile); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if configFile == "" || flags.Changed("board") {
		cfg.Board = boardID
	}
	if flags.Changed("ordered") {
		cfg.OrderedNumbers = ordered
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if configFile == "" || flags.Changed("log") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("output") {
		cfg.Output = outputFile
	}
	if flags.Changed("no-tui") {
		cfg.Interactive = !noTUI
	}
	if flags.Changed("max-attempts") {
		cfg.MaxAttempts = maxAttempts
	}
	return cfg, cfg.Validate()
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	setupOTelEnv()
	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx, otelVerbosity(level))
		if err != nil {
			logger.Warn("telemetry setup failed, running without observability", "error", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Error("telemetry shutdown failed", "error", err)
				}
			}()
		}
	}

	g, err := game.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer g.Close()

	if err := g.Run(ctx); err != nil {
		return err
	}

	b := g.Board()
	logger.Info(game.Summary(b),
		"seed", b.Seed,
		"boards", humanize.Comma(int64(b.Index)),
		"fingerprint", fmt.Sprintf("%016x", b.Fingerprint()),
	)
	return nil
}

// otelVerbosity maps the log level to stdr verbosity for OpenTelemetry's own
// diagnostics.
func otelVerbosity(level slog.Level) int {
	if level <= slog.LevelDebug {
		return 8
	}
	return 0
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
// Nothing is set without an API key, so telemetry stays disabled.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_CATANPG_API_KEY")
	if apiKey == "" {
		return
	}
	dataset := os.Getenv("HONEYCOMB_CATANPG_DATASET")
	if dataset == "" {
		dataset = "catanpg"
	}

	if os.Getenv(telemetry.EndpointEnv) == "" {
		os.Setenv(telemetry.EndpointEnv, "https://api.honeycomb.io")
	}
	// The .env file may hold an unexpanded variable reference, so the header
	// is built here.
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
