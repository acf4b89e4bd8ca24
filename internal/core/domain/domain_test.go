package domain_test

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"go.trai.ch/libsync/internal/core/domain"
)

func TestNewCommand_ExpandsProjectToken(t *testing.T) {
	cmd := domain.NewCommand([]string{"Rscript", "-e", "f('{project}', '{project}')"}, "/work/app")

	if cmd.Dir != "/work/app" {
		t.Errorf("expected dir /work/app, got %q", cmd.Dir)
	}
	if got := cmd.Args[2]; got != "f('/work/app', '/work/app')" {
		t.Errorf("unexpected expansion: %q", got)
	}
	if got := cmd.String(); got != "Rscript -e f('/work/app', '/work/app')" {
		t.Errorf("unexpected string form: %q", got)
	}
}

func TestNewCommand_DoesNotAliasTemplate(t *testing.T) {
	tmpl := []string{"echo", "{project}"}
	_ = domain.NewCommand(tmpl, "/p")

	if tmpl[1] != "{project}" {
		t.Errorf("template was modified: %v", tmpl)
	}
}

func TestHashKind(t *testing.T) {
	tests := []struct {
		kind  domain.HashKind
		key   string
		name  string
		other domain.HashKind
	}{
		{domain.HashLockfile, "lockfileHash", "lockfile", domain.HashLibrary},
		{domain.HashLibrary, "libraryHash", "library", domain.HashLockfile},
	}

	for _, tt := range tests {
		if got := tt.kind.Key(); got != tt.key {
			t.Errorf("%v.Key() = %q, want %q", tt.kind, got, tt.key)
		}
		if got := tt.kind.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
		if got := tt.kind.Other(); got != tt.other {
			t.Errorf("%v.Other() = %v, want %v", tt.kind, got, tt.other)
		}
	}

	if got := domain.HashKind(7).String(); got != "HashKind(7)" {
		t.Errorf("unexpected string for unknown kind: %q", got)
	}
}

func TestHashRecord_Diverged(t *testing.T) {
	if (domain.HashRecord{Stored: "a", Computed: "a"}).Diverged() {
		t.Error("equal digests should not diverge")
	}
	if (domain.HashRecord{}).Diverged() {
		t.Error("two empty digests should not diverge")
	}
	if !(domain.HashRecord{Stored: "", Computed: "a"}).Diverged() {
		t.Error("missing stored digest should diverge")
	}
}

func TestSyncStatus_InSync(t *testing.T) {
	s := domain.SyncStatus{
		Lockfile: domain.HashRecord{Stored: "l", Computed: "l"},
		Library:  domain.HashRecord{Stored: "b", Computed: "b"},
	}
	if !s.InSync() {
		t.Error("expected in sync")
	}

	s.Library.Computed = "c"
	if s.InSync() {
		t.Error("expected library divergence to break sync")
	}
}

func TestSyncStatus_JSON(t *testing.T) {
	s := domain.SyncStatus{
		Project:  "/p",
		Lockfile: domain.HashRecord{Kind: domain.HashLockfile, Stored: "1", Computed: "2"},
	}

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := string(data)
	for _, want := range []string{`"project":"/p"`, `"lockfile":{"stored":"1","computed":"2"}`, `"pending":false`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in %s", want, out)
		}
	}
	if strings.Contains(out, "target_hash") {
		t.Errorf("empty target hash should be omitted: %s", out)
	}
}

func TestNewLayout_Defaults(t *testing.T) {
	root := filepath.Join("/", "work", "app")
	l := domain.NewLayout(root)

	if l.LibraryDir != filepath.Join(root, "packrat", "lib") {
		t.Errorf("unexpected library dir: %s", l.LibraryDir)
	}
	if l.Lockfile != filepath.Join(root, "packrat", "packrat.lock") {
		t.Errorf("unexpected lockfile: %s", l.Lockfile)
	}
	if l.Marker != domain.MarkerFileName {
		t.Errorf("unexpected marker: %s", l.Marker)
	}
	if len(l.Ignored) != 2 || l.Ignored[0] != "manipulate" || l.Ignored[1] != "rstudio" {
		t.Errorf("unexpected ignored dirs: %v", l.Ignored)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig("/p")

	if cfg.Backend != domain.StoreBolt {
		t.Errorf("expected bolt backend, got %s", cfg.Backend)
	}
	if cfg.StatePath != filepath.Join(".libsync", "state.db") {
		t.Errorf("unexpected state path: %s", cfg.StatePath)
	}
	if !cfg.AutoSnapshot {
		t.Error("auto-snapshot should default to on")
	}
	if len(cfg.Commands.Snapshot) == 0 || !strings.Contains(strings.Join(cfg.Commands.Snapshot, " "), domain.ProjectToken) {
		t.Errorf("snapshot command should reference the project: %v", cfg.Commands.Snapshot)
	}
}

func TestDefaultOptions(t *testing.T) {
	o := domain.DefaultOptions()
	if o.ModeOn || !o.AutoSnapshot || !o.VCSIgnoreLib || o.VCSIgnoreSrc {
		t.Errorf("unexpected defaults: %+v", o)
	}
}

func TestNewEvent(t *testing.T) {
	ev := domain.NewEvent(domain.EventRestoreNeeded, "/p")
	if ev.Kind != domain.EventRestoreNeeded || ev.Project != "/p" {
		t.Errorf("unexpected event: %+v", ev)
	}
	if ev.Time.IsZero() {
		t.Error("event should be timestamped")
	}
}
