// Package commands implements the CLI commands for libsync.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/libsync/internal/app"
	"go.trai.ch/libsync/internal/build"
	"go.trai.ch/libsync/internal/core/domain"
)

// CLI represents the command line interface for libsync.
type CLI struct {
	app     Application
	logs    LogSettings
	rootCmd *cobra.Command
	dir     string
}

// Application represents the application logic interface.
type Application interface {
	Watch(ctx context.Context, dir string, opts app.WatchOptions) error
	Check(ctx context.Context, dir string) error
	NotifyChanged(ctx context.Context, dir string, paths []string) error
	Resync(ctx context.Context, dir string) error
	Status(ctx context.Context, dir string) (domain.SyncStatus, error)
	Context(ctx context.Context, dir string) domain.PackageContext
	Options(ctx context.Context, dir string) (domain.Options, error)
	Prerequisites(ctx context.Context, dir string) domain.Prerequisites
	Bootstrap(ctx context.Context, dir string) error
	Install(ctx context.Context, dir string) error
}

// LogSettings is the part of the logger the global flags control.
type LogSettings interface {
	SetJSON(enable bool)
	SetVerbose(enable bool)
}

// New creates a new CLI instance with the given app.
// logs may be nil when the logger is not configurable.
func New(a Application, logs LogSettings) *CLI {
	rootCmd := &cobra.Command{
		Use:           "libsync",
		Short:         "Keep a project's package library and lockfile in sync",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	c := &CLI{
		app:     a,
		logs:    logs,
		rootCmd: rootCmd,
	}

	// Persistent flags go first so the version flag does not claim -v.
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.dir, "dir", "C", ".", "Project directory to operate on")
	flags.BoolP("verbose", "v", false, "Log debug output, including snapshot output")
	flags.Bool("json-log", false, "Log in JSON format")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if c.logs == nil {
			return
		}
		verbose, _ := cmd.Flags().GetBool("verbose")
		jsonLog, _ := cmd.Flags().GetBool("json-log")
		c.logs.SetVerbose(verbose)
		c.logs.SetJSON(jsonLog)
	}

	rootCmd.AddCommand(
		c.newWatchCmd(),
		c.newStatusCmd(),
		c.newCheckCmd(),
		c.newResyncCmd(),
		c.newNotifyCmd(),
		c.newContextCmd(),
		c.newOptionsCmd(),
		c.newPrerequisitesCmd(),
		c.newBootstrapCmd(),
		c.newInstallCmd(),
		c.newVersionCmd(),
	)

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
