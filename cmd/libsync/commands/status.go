package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.trai.ch/libsync/internal/core/domain"
	"go.trai.ch/libsync/internal/ui/output"
	"go.trai.ch/libsync/internal/ui/style"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show stored and current digests of the library and lockfile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := c.app.Status(cmd.Context(), c.dir)
			if err != nil {
				return err
			}
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return writeJSON(cmd.OutOrStdout(), status)
			}
			return renderStatus(cmd.OutOrStdout(), status)
		},
	}
	cmd.Flags().Bool("json", false, "Print the status as JSON")
	return cmd
}

func renderStatus(w io.Writer, s domain.SyncStatus) error {
	r := lipgloss.NewRenderer(w, termenv.WithProfile(output.ColorProfile(w)))
	muted := r.NewStyle().Foreground(style.Slate)

	icon := func(ok bool) string {
		return r.NewStyle().Foreground(style.SyncColor(ok)).Render(style.SyncIcon(ok))
	}

	if _, err := fmt.Fprintln(w, r.NewStyle().Bold(true).Render(s.Project)); err != nil {
		return err
	}
	for _, rec := range []domain.HashRecord{s.Lockfile, s.Library} {
		if _, err := fmt.Fprintf(w, "  %s %-8s %s %-16s %s %s\n",
			icon(!rec.Diverged()),
			rec.Kind,
			muted.Render("stored"),
			digest(rec.Stored),
			muted.Render("current"),
			digest(rec.Computed),
		); err != nil {
			return err
		}
	}

	snapshot := "idle"
	if s.Snapshotting {
		snapshot = "running " + style.Arrow + " " + s.TargetHash
		if s.Pending {
			snapshot += " (follow-up queued)"
		}
	}
	_, err := fmt.Fprintf(w, "  %s snapshot %s\n", muted.Render(style.Dot), snapshot)
	return err
}

func digest(d string) string {
	if d == "" {
		return "<none>"
	}
	return d
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
