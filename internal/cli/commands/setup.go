package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapcheck/internal/cli/config"
	"github.com/leapstack-labs/leapcheck/internal/cli/output"
)

// Context keys set by the root command's PersistentPreRunE.
type (
	// ConfigKey stores the loaded *config.Config.
	ConfigKey struct{}
	// RendererKey stores the *output.Renderer.
	RendererKey struct{}
	// LoggerKey stores the *slog.Logger.
	LoggerKey struct{}
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext extracts the shared dependencies from the command
// context, falling back to defaults when the root pre-run did not run
// (e.g. a command constructed directly in tests).
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, ok := ctx.Value(ConfigKey{}).(*config.Config)
	if !ok {
		cfg = &config.Config{
			Output:     config.DefaultOutput,
			DateFormat: config.DefaultDateFormat,
			MaxSamples: config.DefaultMaxSamples,
		}
	}

	r, ok := ctx.Value(RendererKey{}).(*output.Renderer)
	if !ok {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.Output))
	}

	logger, ok := ctx.Value(LoggerKey{}).(*slog.Logger)
	if !ok {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}

	return &CommandContext{Cfg: cfg, Logger: logger, Renderer: r}
}
