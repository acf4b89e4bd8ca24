// Package shell runs package manager commands.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/creack/pty"
	"go.trai.ch/libsync/internal/core/domain"
	"go.trai.ch/libsync/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CommandRunner = (*Runner)(nil)

type ptyProcess struct {
	cmd    *exec.Cmd
	ioDone <-chan struct{}
}

// Wait blocks until the command exits and its output is drained.
func (p *ptyProcess) Wait() int {
	err := p.cmd.Wait()
	<-p.ioDone
	return exitStatus(err)
}

// Runner implements ports.CommandRunner using os/exec and a pty.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a Runner that streams command output into logger.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Start launches cmd in a pty. Every output line is logged at Debug level
// and copied to output.
func (r *Runner) Start(ctx context.Context, cmd domain.Command, output io.Writer) (ports.Process, error) {
	c, err := command(ctx, cmd)
	if err != nil {
		return nil, err
	}

	ptmx, err := pty.Start(c)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCommandStartFailed.Error()), "command", cmd.String())
	}

	lw := &logWriter{logger: r.logger}
	sink := io.Writer(lw)
	if output != nil {
		sink = io.MultiWriter(lw, output)
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		defer func() { _ = ptmx.Close() }()
		defer func() { _ = lw.Close() }()

		// Reading the pty master fails with EIO once the child exits.
		_, _ = io.Copy(sink, ptmx)
	}()

	return &ptyProcess{cmd: c, ioDone: ioDone}, nil
}

// Output runs cmd to completion and returns its stdout and exit status.
// Stderr is logged at Debug level.
func (r *Runner) Output(ctx context.Context, cmd domain.Command) ([]byte, int, error) {
	c, err := command(ctx, cmd)
	if err != nil {
		return nil, -1, err
	}

	var stdout bytes.Buffer
	stderr := &logWriter{logger: r.logger}
	c.Stdout = &stdout
	c.Stderr = stderr

	err = c.Run()
	_ = stderr.Close()

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return nil, -1, zerr.With(zerr.Wrap(err, domain.ErrCommandStartFailed.Error()), "command", cmd.String())
	}

	return stdout.Bytes(), exitStatus(err), nil
}

func command(ctx context.Context, cmd domain.Command) (*exec.Cmd, error) {
	if len(cmd.Args) == 0 {
		return nil, domain.ErrEmptyCommand
	}

	c := exec.CommandContext(ctx, cmd.Args[0], cmd.Args[1:]...) //nolint:gosec // Commands come from project configuration
	c.Dir = cmd.Dir
	c.Env = os.Environ()
	return c, nil
}

// exitStatus maps the result of Wait to an exit status. -1 means the
// command did not exit normally.
func exitStatus(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// logWriter forwards complete lines to the logger.
type logWriter struct {
	logger ports.Logger
	buf    []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

// Close logs a trailing partial line.
func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	// PTYs terminate lines with \r\n.
	msg := strings.TrimSuffix(string(line), "\r")
	if msg == "" {
		return
	}
	w.logger.Debug(msg)
}
