package ports

import (
	"context"

	"go.trai.ch/libsync/internal/core/domain"
)

// PackageManager wraps the package-manager specific protocol.
//
//go:generate mockgen -source=package_manager.go -destination=mocks/mock_package_manager.go -package=mocks
type PackageManager interface {
	// SnapshotCommand returns the command that writes the library state into the lockfile.
	SnapshotCommand(ctx context.Context, projectDir string) (domain.Command, error)

	// PendingRestoreActions lists the actions a restore from the lockfile would perform.
	// An empty list means the library already satisfies the lockfile.
	PendingRestoreActions(ctx context.Context, projectDir string) ([]domain.RestoreAction, error)

	// Context reports whether the package manager applies to projectDir.
	Context(ctx context.Context, projectDir string) domain.PackageContext

	// Options reads the project options, falling back to defaults.
	Options(ctx context.Context, projectDir string) domain.Options

	// Prerequisites reports what is required to packify a project.
	Prerequisites(ctx context.Context) domain.Prerequisites

	// Bootstrap initializes package management for the project at dir.
	Bootstrap(ctx context.Context, dir string) error

	// Install installs the package manager itself.
	Install(ctx context.Context) error
}
