// Package cli implements the kvmap command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/karnaugh/config"
	"github.com/katalvlaran/karnaugh/logging"
	"github.com/katalvlaran/karnaugh/script"
	"github.com/katalvlaran/karnaugh/session"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// defaultConfigFile is read when --config is not given and the file exists.
const defaultConfigFile = "kvmap.yaml"

type cliContextKey struct{}

// RootOptions holds the global flags.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	LogFormat  string
}

// CLIContext carries the loaded configuration and logger to subcommands.
type CLIContext struct {
	Config     *config.Config
	ConfigPath string
	Logger     *zap.Logger
}

// ErrNoContext indicates a subcommand ran without the root pre-run.
var ErrNoContext = errors.New("cli: command context not initialised")

// NewRootCommand builds the root command with every subcommand attached.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "kvmap",
		Short: "kvmap draws and exports Karnaugh maps",
		Long: "kvmap replays session files describing Karnaugh-map markings and exports\n" +
			"them as LaTeX (kvmacros) or PNG. It can also print the cell layout and the\n" +
			"block boundaries of a group.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return persistentPreRun(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file path (default: ./"+defaultConfigFile+" when present)")
	pf.StringVar(&opts.LogLevel, "log-level", "", "log level (debug, info, warn, error); overrides the config")
	pf.StringVar(&opts.LogFormat, "log-format", "", "log format (console, json); overrides the config")

	cmd.AddCommand(
		newLatexCmd(),
		newRenderCmd(),
		newGridCmd(),
		newBlocksCmd(),
	)
	return cmd
}

func persistentPreRun(cmd *cobra.Command, opts *RootOptions) error {
	cfg, path, err := initConfig(opts)
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.LogFormat != "" {
		cfg.Log.Format = opts.LogFormat
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("logger initialization failed: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, cliContextKey{}, &CLIContext{
		Config:     cfg,
		ConfigPath: path,
		Logger:     logger,
	}))
	return nil
}

// initConfig loads --config, else ./kvmap.yaml when present, else the
// environment and defaults alone.
func initConfig(opts *RootOptions) (*config.Config, string, error) {
	if opts.ConfigPath != "" {
		cfg, err := config.Load(opts.ConfigPath)
		return cfg, opts.ConfigPath, err
	}
	if _, err := os.Stat(defaultConfigFile); err == nil {
		cfg, err := config.Load(defaultConfigFile)
		return cfg, defaultConfigFile, err
	}
	cfg, err := config.LoadFromEnv()
	return cfg, "", err
}

// GetCLIContext extracts the CLIContext stored by the root pre-run.
func GetCLIContext(cmd *cobra.Command) (*CLIContext, error) {
	ctx := cmd.Context()
	if ctx == nil {
		return nil, ErrNoContext
	}
	cliCtx, ok := ctx.Value(cliContextKey{}).(*CLIContext)
	if !ok || cliCtx == nil {
		return nil, ErrNoContext
	}
	return cliCtx, nil
}

// newSession builds a session seeded from cfg and replays the script at path.
func newSession(cfg *config.Config, log *zap.Logger, path string) (*session.Session, error) {
	s, err := session.New(
		session.WithLogger(log),
		session.WithPalette(cfg.PaletteNames()...),
		session.WithVars(cfg.Defaults.Vars...),
		session.WithValues(cfg.Defaults.Values),
		session.WithTitle(cfg.Defaults.Title),
	)
	if err != nil {
		return nil, err
	}
	sc, err := script.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := sc.Apply(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Execute runs the command tree until it finishes or SIGINT/SIGTERM arrives.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := NewRootCommand()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		PrintError(rootCmd, err)
		return err
	}
	return nil
}

// PrintError writes a formatted error message to stderr.
func PrintError(cmd *cobra.Command, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err.Error())
}
