package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// CLI encapsulates the command-line interface with its dependencies.
type CLI struct {
	version     string
	verbose     bool
	silent      bool
	initialized bool
	rootCmd     *cobra.Command
}

// New creates a new CLI instance with the given version string.
func New(version string) *CLI {
	c := &CLI{version: version}
	c.setupCommands()

	return c
}

// setupCommands initializes all CLI commands and their configurations.
func (c *CLI) setupCommands() {
	c.rootCmd = &cobra.Command{
		Use:           "dmtk",
		Short:         "Discrete hidden Markov model toolkit",
		Version:       c.version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.initApp(cmd.ErrOrStderr())
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	c.rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable verbose/debug output")
	c.rootCmd.PersistentFlags().BoolVarP(&c.silent, "silent", "s", false, "Suppress all logging")

	c.rootCmd.AddCommand(c.newLikelihoodCommand())
	c.rootCmd.AddCommand(c.newDecodeCommand())
	c.rootCmd.AddCommand(c.newTrainCommand())
}

// Run executes the CLI and returns any error.
func (c *CLI) Run() error {
	err := c.rootCmd.Execute()
	if err != nil {
		slog.Error("command failed", "error", err)
	}

	return err
}

// SetArgs overrides os.Args[1:].
func (c *CLI) SetArgs(args []string) { c.rootCmd.SetArgs(args) }

// SetOutput redirects command results and diagnostics.
func (c *CLI) SetOutput(out, errOut io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(errOut)
}

// initApp initializes logging.
func (c *CLI) initApp(w io.Writer) {
	if c.initialized {
		return
	}
	c.initialized = true

	if w == nil {
		w = os.Stderr
	}
	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}
	if c.silent {
		level = slog.Level(100)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})))
}
