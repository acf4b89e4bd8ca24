package domain

import "time"

// StoreBackend selects the persistence implementation for project state.
type StoreBackend string

const (
	// StoreBolt keeps project state in a bolt database.
	StoreBolt StoreBackend = "bolt"
	// StoreFile keeps project state in one JSON document per project.
	StoreFile StoreBackend = "file"
)

// Commands are the argv templates used to drive the package manager.
// The token {project} is replaced with the absolute project directory.
type Commands struct {
	Snapshot       []string
	RestoreActions []string
	Available      []string
	Packified      []string
	ModeOn         []string
	Bootstrap      []string
	Install        []string
	BuildTools     []string
}

// Config is the resolved project configuration.
type Config struct {
	Layout       Layout
	Backend      StoreBackend
	StatePath    string
	Debounce     time.Duration
	AutoSnapshot bool
	Commands     Commands
}

// ProjectToken is substituted with the project directory in command templates.
const ProjectToken = "{project}"

// DefaultCommands returns the R based packrat command set.
func DefaultCommands() Commands {
	return Commands{
		Snapshot: []string{
			"Rscript", "--vanilla", "-e",
			"packrat::snapshot(project = '{project}', prompt = FALSE, snapshot.sources = FALSE, infer.dependencies = FALSE)",
		},
		RestoreActions: []string{
			"Rscript", "--vanilla", "-e",
			"a <- packrat:::getPendingActions(project = '{project}'); cat(jsonlite::toJSON(a, dataframe = 'rows'))",
		},
		Available: []string{
			"Rscript", "--vanilla", "-e",
			"if (!requireNamespace('packrat', quietly = TRUE) || packageVersion('packrat') < '0.2.0.100') quit(status = 1)",
		},
		Packified: []string{
			"Rscript", "--vanilla", "-e",
			"if (!packrat:::checkPackified(project = '{project}', quiet = TRUE)) quit(status = 1)",
		},
		ModeOn: []string{
			"Rscript", "--vanilla", "-e",
			"if (!packrat:::isPackratModeOn(project = '{project}')) quit(status = 1)",
		},
		Bootstrap: []string{
			"Rscript", "--vanilla", "-e",
			"packrat:::bootstrap(project = '{project}')",
		},
		Install: []string{
			"Rscript", "--vanilla", "-e",
			"install.packages('packrat', repos = 'https://cloud.r-project.org')",
		},
		BuildTools: []string{
			"Rscript", "--vanilla", "-e",
			"if (!pkgbuild::has_build_tools()) quit(status = 1)",
		},
	}
}

// DefaultConfig returns the configuration used for a project without a libsync.yaml.
func DefaultConfig(root string) *Config {
	return &Config{
		Layout:       NewLayout(root),
		Backend:      StoreBolt,
		StatePath:    DefaultStatePath(),
		Debounce:     DefaultDebounce,
		AutoSnapshot: true,
		Commands:     DefaultCommands(),
	}
}
