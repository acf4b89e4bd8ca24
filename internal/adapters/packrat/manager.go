// Package packrat drives a packrat-style package manager through configured commands.
package packrat

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"

	"go.trai.ch/libsync/internal/core/domain"
	"go.trai.ch/libsync/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PackageManager = (*Manager)(nil)

// Manager implements ports.PackageManager by running the command templates
// of a project configuration.
type Manager struct {
	runner      ports.CommandRunner
	logger      ports.Logger
	commands    domain.Commands
	optionsFile string
}

// NewManager creates a Manager for cfg. The options file location is kept
// relative to the project root so that any project directory can be queried.
func NewManager(runner ports.CommandRunner, logger ports.Logger, cfg *domain.Config) *Manager {
	optionsFile := domain.DefaultOptionsFile
	if rel, err := filepath.Rel(cfg.Layout.Root, cfg.Layout.OptionsFile); err == nil {
		optionsFile = rel
	}

	return &Manager{
		runner:      runner,
		logger:      logger,
		commands:    cfg.Commands,
		optionsFile: optionsFile,
	}
}

// SnapshotCommand returns the command that records the library into the lockfile.
func (m *Manager) SnapshotCommand(_ context.Context, projectDir string) (domain.Command, error) {
	if len(m.commands.Snapshot) == 0 {
		return domain.Command{}, zerr.With(domain.ErrEmptyCommand, "command", "snapshot")
	}
	return domain.NewCommand(m.commands.Snapshot, projectDir), nil
}

// PendingRestoreActions runs the restore-actions query and decodes its JSON
// array output.
func (m *Manager) PendingRestoreActions(ctx context.Context, projectDir string) ([]domain.RestoreAction, error) {
	if len(m.commands.RestoreActions) == 0 {
		return nil, zerr.With(domain.ErrEmptyCommand, "command", "restoreActions")
	}

	cmd := domain.NewCommand(m.commands.RestoreActions, projectDir)
	out, status, err := m.runner.Output(ctx, cmd)
	if err != nil {
		return nil, err
	}
	if status != 0 {
		return nil, zerr.With(zerr.With(domain.ErrCommandFailed, "command", cmd.String()), "exit_code", status)
	}

	return parseRestoreActions(out)
}

// parseRestoreActions decodes a JSON array of actions. Empty output and an
// empty object both mean no actions are pending.
func parseRestoreActions(out []byte) ([]domain.RestoreAction, error) {
	out = bytes.TrimSpace(out)
	if len(out) == 0 || bytes.Equal(out, []byte("{}")) {
		return nil, nil
	}

	var actions []domain.RestoreAction
	if err := json.Unmarshal(out, &actions); err != nil {
		return nil, zerr.Wrap(err, domain.ErrRestoreActionsParseFailed.Error())
	}
	return actions, nil
}

// Context reports whether packrat is installed and manages projectDir.
func (m *Manager) Context(ctx context.Context, projectDir string) domain.PackageContext {
	var pc domain.PackageContext

	pc.Available = m.succeeds(ctx, m.commands.Available, projectDir)
	pc.Applicable = pc.Available && projectDir != ""
	if !pc.Applicable {
		return pc
	}

	pc.Packified = m.succeeds(ctx, m.commands.Packified, projectDir)
	if pc.Packified {
		pc.ModeOn = m.succeeds(ctx, m.commands.ModeOn, projectDir)
	}
	return pc
}

// Options reads the options file of a packified project. Projects that are
// not packified get the defaults.
func (m *Manager) Options(ctx context.Context, projectDir string) domain.Options {
	pc := m.Context(ctx, projectDir)
	if !pc.Packified {
		return domain.DefaultOptions()
	}

	opts := ReadOptions(filepath.Join(projectDir, m.optionsFile), m.logger)
	opts.ModeOn = pc.ModeOn
	return opts
}

// Prerequisites reports whether build tools and packrat are installed.
func (m *Manager) Prerequisites(ctx context.Context) domain.Prerequisites {
	return domain.Prerequisites{
		BuildToolsAvailable: m.succeeds(ctx, m.commands.BuildTools, ""),
		PackageAvailable:    m.succeeds(ctx, m.commands.Available, ""),
	}
}

// Bootstrap packifies the project at dir.
func (m *Manager) Bootstrap(ctx context.Context, dir string) error {
	if !m.succeeds(ctx, m.commands.Available, dir) {
		return domain.ErrPackageUnavailable
	}
	if err := m.run(ctx, m.commands.Bootstrap, dir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrBootstrapFailed.Error()), "dir", dir)
	}
	return nil
}

// Install installs packrat itself.
func (m *Manager) Install(ctx context.Context) error {
	if err := m.run(ctx, m.commands.Install, ""); err != nil {
		return zerr.Wrap(err, domain.ErrInstallFailed.Error())
	}
	return nil
}

// succeeds runs a predicate command. Missing commands and start failures
// count as false; start failures are logged.
func (m *Manager) succeeds(ctx context.Context, template []string, dir string) bool {
	if len(template) == 0 {
		return false
	}

	_, status, err := m.runner.Output(ctx, domain.NewCommand(template, dir))
	if err != nil {
		m.logger.Error(err)
		return false
	}
	return status == 0
}

// run executes a command to completion, streaming its output to the logger.
func (m *Manager) run(ctx context.Context, template []string, dir string) error {
	if len(template) == 0 {
		return domain.ErrEmptyCommand
	}

	cmd := domain.NewCommand(template, dir)
	proc, err := m.runner.Start(ctx, cmd, nil)
	if err != nil {
		return err
	}
	if status := proc.Wait(); status != 0 {
		return zerr.With(zerr.With(domain.ErrCommandFailed, "command", cmd.String()), "exit_code", status)
	}
	return nil
}
