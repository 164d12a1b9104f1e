package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/pipeline"
	"github.com/jonathan/resume-matcher/internal/server"
	"github.com/jonathan/resume-matcher/internal/server/ratelimit"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Run the matching API server",
	Long: `Starts the HTTP API server exposing the compare, keyword, and full
analysis endpoints.

Configuration can be loaded from a JSON file using --config. Environment
variables and command-line flags override config file values.`,
	RunE: serveCmd,
}

var (
	serveConfigPath string
	servePort       int
	serveAPIKey     string
	serveLogJSON    bool
	serveVerbose    bool
)

func init() {
	serveCommand.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCommand.Flags().IntVarP(&servePort, "port", "p", 0, "HTTP listen port")
	serveCommand.Flags().StringVar(&serveAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	serveCommand.Flags().BoolVar(&serveLogJSON, "log-json", false, "Emit JSON logs instead of console output")
	serveCommand.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Enable debug-level logging")

	rootCmd.AddCommand(serveCommand)
}

func serveCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadMergedConfig(cmd, serveConfigPath)
	if err != nil {
		return err
	}

	logger, err := observability.NewLogger(cfg.LogJSON, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	// The oracle is optional for serving: without an API key the compare
	// and keyword endpoints still work, only /analyze requires it.
	var oracle llm.Client
	if cfg.APIKey != "" {
		oracle, err = llm.NewClient(context.Background(), oracleConfig(cfg), cfg.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create oracle client: %w", err)
		}
		defer oracle.Close() //nolint:errcheck
	} else {
		logger.Warn("no API key configured, /analyze endpoint will be unavailable")
	}

	engine := pipeline.New(oracle, logger)

	srv := server.New(&server.Config{
		Port: cfg.Port,
		RateLimit: &ratelimit.Config{
			Enabled:         cfg.RateLimitPerMinute > 0,
			PerMinute:       cfg.RateLimitPerMinute,
			Burst:           cfg.RateLimitBurst,
			CleanupInterval: 5 * time.Minute,
		},
	}, engine, logger)

	return srv.Start()
}

// loadMergedConfig builds the effective configuration: file values, then
// environment overrides, then explicitly set flags, then defaults.
func loadMergedConfig(cmd *cobra.Command, path string) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	cfg.ApplyEnv()

	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = serveAPIKey
	}
	if cmd.Flags().Changed("log-json") {
		cfg.LogJSON = serveLogJSON
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = serveVerbose
	}

	cfg = cfg.MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// oracleConfig translates service configuration into oracle model tiers.
func oracleConfig(cfg config.Config) *llm.Config {
	oc := llm.DefaultConfig()
	if cfg.LiteModel != "" {
		oc = oc.WithModel(llm.TierLite, cfg.LiteModel)
	}
	if cfg.StandardModel != "" {
		oc = oc.WithModel(llm.TierStandard, cfg.StandardModel)
	}
	return oc
}

func resolveAPIKey(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("GEMINI_API_KEY")
}
