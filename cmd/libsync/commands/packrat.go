package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newContextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "context",
		Short: "Report whether packrat is available and manages the project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeJSON(cmd.OutOrStdout(), c.app.Context(cmd.Context(), c.dir))
		},
	}
}

func (c *CLI) newOptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "Print the packrat options of the project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := c.app.Options(cmd.Context(), c.dir)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), opts)
		},
	}
}

func (c *CLI) newPrerequisitesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prerequisites",
		Short: "Report whether build tools and packrat are installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeJSON(cmd.OutOrStdout(), c.app.Prerequisites(cmd.Context(), c.dir))
		},
	}
}

func (c *CLI) newBootstrapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bootstrap [dir]",
		Short: "Initialize packrat for a project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := c.dir
			if len(args) == 1 {
				dir = args[0]
			}
			return c.app.Bootstrap(cmd.Context(), dir)
		},
	}
}

func (c *CLI) newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Install packrat",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Install(cmd.Context(), c.dir)
		},
	}
}
