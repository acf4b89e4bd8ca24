// Package scheduler runs the snapshot command that brings the lockfile in line with the library.
//
// A Scheduler is a small state machine driven from the event loop:
//
//	Idle -> Running -> Completing -> Idle
//
// At most one snapshot runs at a time. Requests arriving while a run targets a
// different digest collapse into a single follow-up run.
package scheduler

import (
	"context"

	"go.trai.ch/libsync/internal/core/domain"
	"go.trai.ch/libsync/internal/core/ports"
	"go.trai.ch/libsync/internal/engine/hashstore"
	"go.trai.ch/zerr"
)

// Poster enqueues work on the event loop.
type Poster interface {
	Post(fn func())
}

// Deps are the collaborators of a Scheduler.
type Deps struct {
	Project  string
	Loop     Poster
	Packages ports.PackageManager
	Runner   ports.CommandRunner
	Hasher   ports.ArtifactHasher
	Store    *hashstore.Store
	Notifier ports.Notifier
	Tracer   ports.Tracer
	Logger   ports.Logger
}

type run struct {
	target string
	span   ports.Span
}

// Scheduler coordinates snapshot runs for a single project.
// All methods must be called on the event loop.
type Scheduler struct {
	deps Deps

	current *run
	pending bool
	settled chan struct{}
}

// NewScheduler creates an idle Scheduler.
func NewScheduler(deps Deps) *Scheduler {
	return &Scheduler{deps: deps}
}

// Request asks for the lockfile to be snapshotted so that it matches target.
func (s *Scheduler) Request(ctx context.Context, target string) {
	if s.current != nil {
		if s.current.target == target {
			s.deps.Logger.Debug("snapshot already running for " + target)
			return
		}
		s.deps.Logger.Debug("snapshot queued for " + target)
		s.pending = true
		return
	}

	cmd, err := s.deps.Packages.SnapshotCommand(ctx, s.deps.Project)
	if err != nil {
		s.deps.Logger.Error(err)
		s.idle()
		return
	}

	spanCtx, span := s.deps.Tracer.Start(ctx, "snapshot",
		ports.WithAttribute("project", s.deps.Project),
		ports.WithAttribute("target", target),
	)

	proc, err := s.deps.Runner.Start(spanCtx, cmd, span)
	if err != nil {
		span.RecordError(err)
		span.End()
		s.deps.Logger.Error(err)
		s.idle()
		return
	}

	r := &run{target: target, span: span}
	s.current = r
	if s.settled == nil {
		s.settled = make(chan struct{})
	}
	s.deps.Logger.Info("snapshot started")

	go func() {
		status := proc.Wait()
		s.deps.Loop.Post(func() { s.complete(ctx, r, cmd, status) })
	}()
}

func (s *Scheduler) complete(ctx context.Context, r *run, cmd domain.Command, status int) {
	if s.current != r {
		return
	}
	s.current = nil
	r.span.SetAttribute("exit_code", status)

	if status != 0 {
		err := zerr.With(zerr.With(domain.ErrCommandFailed, "command", cmd.String()), "exit_code", status)
		r.span.RecordError(err)
		r.span.End()
		s.deps.Logger.Error(err)
		s.idle()
		return
	}
	r.span.End()

	if s.pending {
		s.pending = false
		s.Request(ctx, s.deps.Hasher.LibraryHash())
		return
	}

	s.deps.Store.Set(domain.HashLibrary, s.deps.Hasher.LibraryHash())
	s.deps.Store.Set(domain.HashLockfile, s.deps.Hasher.LockfileHash())
	s.deps.Logger.Info("snapshot completed")
	s.deps.Notifier.Notify(ctx, domain.NewEvent(domain.EventInstalledPackagesChanged, s.deps.Project))
	s.idle()
}

// idle clears any queued request and wakes Settled waiters.
func (s *Scheduler) idle() {
	s.pending = false
	if s.settled != nil {
		close(s.settled)
		s.settled = nil
	}
}

// Snapshotting reports whether a run is in flight.
func (s *Scheduler) Snapshotting() bool {
	return s.current != nil
}

// TargetHash returns the library digest the current run converges to, or "".
func (s *Scheduler) TargetHash() string {
	if s.current == nil {
		return ""
	}
	return s.current.target
}

// Pending reports whether a follow-up run is queued.
func (s *Scheduler) Pending() bool {
	return s.pending
}

// Settled returns a channel that is closed once the scheduler is idle again.
// The channel is already closed if nothing is running.
func (s *Scheduler) Settled() <-chan struct{} {
	if s.settled == nil {
		ch := make(chan struct{})
		close(ch)
		return ch
	}
	return s.settled
}
