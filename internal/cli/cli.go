// Package cli implements the fhscan command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raysh454/fhscan/internal/app"
	"github.com/raysh454/fhscan/internal/config"
	"github.com/raysh454/fhscan/internal/logging"
)

const (
	Version = "0.1.0"
	appName = "fhscan"
)

// ErrViolationsFound is returned by `scan --fail` when the text is not compliant.
var ErrViolationsFound = errors.New("violations found")

// Options customize where the command tree looks for config. Tests set them.
type Options struct {
	HomeDir string
	WorkDir string
}

// env is the state shared by every subcommand of one invocation.
type env struct {
	opts       Options
	configPath string
	logLevel   string

	cfg    *config.Config
	logger logging.Logger
}

// NewRootCommand returns the fhscan command tree.
func NewRootCommand(opts Options) *cobra.Command {
	e := &env{opts: opts}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Fair housing compliance scanner for listing text",
		Long: `fhscan checks real estate listing text for language that may violate
the Fair Housing Act and state fair housing laws.

It reports each problem phrase with its severity and legal citation,
scores the listing, and can rewrite known problem phrases.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&e.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&e.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newScanCommand(e),
		newBatchCommand(e),
		newFixCommand(e),
		newProtectionsCommand(e),
		newAlternativesCommand(e),
		newHistoryCommand(e),
		newServeCommand(e),
		newConfigCommand(e),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
			},
		},
	)
	return cmd
}

// Execute runs the command tree against os.Args and returns the process exit code.
func Execute(ctx context.Context) int {
	cmd := NewRootCommand(Options{})
	if err := cmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, ErrViolationsFound) {
			return 2
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func (e *env) loader() *config.Loader {
	l := config.NewLoader(nil)
	l.HomeDir = e.opts.HomeDir
	l.WorkDir = e.opts.WorkDir
	return l
}

// setup loads config and builds the logger. One-shot commands log at warn
// or above unless --log-level says otherwise; serve uses the configured level.
func (e *env) setup(cmd *cobra.Command) error {
	cfg, err := e.loader().Load(e.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if e.logLevel != "" {
		cfg.Log.Level = e.logLevel
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("log-level") && cmd.Name() != "serve" && level < logging.LevelWarn {
		level = logging.LevelWarn
	}

	e.cfg = cfg
	e.logger = logging.NewStdoutLogger(appName).WithLevel(level).WithWriter(cmd.ErrOrStderr())
	return nil
}

// withApp builds the application, runs fn and shuts the application down.
// Commands that need no components (version, config) never open the
// history database.
func (e *env) withApp(cmd *cobra.Command, fn func(a *app.Application) error) error {
	a, err := app.NewApplication(e.cfg, e.logger)
	if err != nil {
		return err
	}
	runErr := fn(a)
	if err := a.Shutdown(context.WithoutCancel(cmd.Context())); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}
// inputText joins args, or reads stdin when there are none.
func inputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
