package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/libsync/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the project and snapshot the lockfile when the library changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var opts app.WatchOptions
			if events, _ := cmd.Flags().GetBool("events"); events {
				opts.Events = cmd.OutOrStdout()
			}
			return c.app.Watch(cmd.Context(), c.dir, opts)
		},
	}
	cmd.Flags().Bool("events", false, "Print emitted events as JSON lines on stdout")
	return cmd
}

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Compare library and lockfile with their recorded state and reconcile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.app.Check(cmd.Context(), c.dir); err != nil {
				return err
			}
			status, err := c.app.Status(cmd.Context(), c.dir)
			if err != nil {
				return err
			}
			return renderStatus(cmd.OutOrStdout(), status)
		},
	}
}

func (c *CLI) newResyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resync",
		Short: "Record the current library and lockfile as consistent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Resync(cmd.Context(), c.dir)
		},
	}
}

func (c *CLI) newNotifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "notify [paths...]",
		Short: "Report changed files, or a library change when no paths are given",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.NotifyChanged(cmd.Context(), c.dir, args)
		},
	}
}
