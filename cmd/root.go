package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/kernel/kit/internal/config"
	"github.com/kernel/kit/internal/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version is stamped at build time with -ldflags "-X github.com/kernel/kit/cmd.Version=...".
var Version = "dev"

type contextKey string

const defaultHTTPTimeout = 10 * time.Second

const (
	configKey contextKey = "config"
	loggerKey contextKey = "logger"
)

var rootCmd = &cobra.Command{
	Use:   "kit",
	Short: "Avatars, formatting and conversion helpers from the command line",
	Long: `kit resolves avatars, formats dates and sizes, decodes JWTs, extracts
accent colors from images and posts JSON to the kit backend.

Configuration is read from KIT_* environment variables and an optional .env
file in the working directory.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

func init() {
	rootCmd.PersistentFlags().String("api", "", "API base URL (overrides KIT_API_BASE_URL)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides KIT_LOG_LEVEL)")
}

// loadSettings resolves configuration and the logger once per invocation and
// stores them on the command context.
func loadSettings(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if api, _ := cmd.Flags().GetString("api"); strings.TrimSpace(api) != "" {
		cfg.APIBaseURL = strings.TrimSpace(api)
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := logging.NewConsole(os.Stderr, level)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, configKey, cfg)
	ctx = context.WithValue(ctx, loggerKey, logger)
	cmd.SetContext(ctx)
	return nil
}

func getConfig(cmd *cobra.Command) *config.Config {
	if ctx := cmd.Context(); ctx != nil {
		if cfg, ok := ctx.Value(configKey).(*config.Config); ok {
			return cfg
		}
	}
	cfg, err := config.LoadFiles()
	if err != nil {
		return &config.Config{HTTPTimeout: defaultHTTPTimeout, LogLevel: "warn"}
	}
	return cfg
}

func getLogger(cmd *cobra.Command) zerolog.Logger {
	if ctx := cmd.Context(); ctx != nil {
		if l, ok := ctx.Value(loggerKey).(zerolog.Logger); ok {
			return l
		}
	}
	return zerolog.Nop()
}

func getHTTPClient(cmd *cobra.Command) *http.Client {
	return &http.Client{Timeout: getConfig(cmd).HTTPTimeout}
}

// addOutputFlag registers the -o/--output switch shared by commands that can
// print JSON.
func addOutputFlag(fs *pflag.FlagSet) {
	fs.StringP("output", "o", "", "Output format (json)")
}

func validateOutput(output string) error {
	if output != "" && output != "json" {
		return fmt.Errorf("unsupported --output value: use 'json'")
	}
	return nil
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return fang.Execute(ctx, rootCmd,
		fang.WithVersion(Version),
		fang.WithoutCompletions(),
	)
}
