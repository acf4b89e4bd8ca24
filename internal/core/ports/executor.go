package ports

import (
	"context"
	"io"

	"go.trai.ch/libsync/internal/core/domain"
)

// Process is a started external command.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Process interface {
	// Wait blocks until the command exits and returns its exit status.
	// A status of -1 means the command did not exit normally.
	Wait() int
}

// CommandRunner starts external commands.
type CommandRunner interface {
	// Start launches cmd asynchronously, streaming its combined output to output.
	Start(ctx context.Context, cmd domain.Command, output io.Writer) (Process, error)

	// Output runs cmd to completion and returns its standard output and exit status.
	// The error is non-nil only when the command could not be started.
	Output(ctx context.Context, cmd domain.Command) ([]byte, int, error)
}
