package domain

// PackageContext describes whether the package manager applies to the current project.
type PackageContext struct {
	// Available is true when the required package manager version is installed.
	Available bool `json:"available"`
	// Applicable is true when the package manager is available and a project is open.
	Applicable bool `json:"applicable"`
	// Packified is true when the project is managed by the package manager.
	Packified bool `json:"packified"`
	// ModeOn is true when the project's private library is active.
	ModeOn bool `json:"mode_on"`
}

// Options are the per-project package manager settings relevant to syncing.
type Options struct {
	ModeOn       bool `json:"mode_on"`
	AutoSnapshot bool `json:"auto_snapshot"`
	VCSIgnoreLib bool `json:"vcs_ignore_lib"`
	VCSIgnoreSrc bool `json:"vcs_ignore_src"`
}

// DefaultOptions returns the options assumed when a project has none recorded.
func DefaultOptions() Options {
	return Options{
		ModeOn:       false,
		AutoSnapshot: true,
		VCSIgnoreLib: true,
		VCSIgnoreSrc: false,
	}
}

// Prerequisites reports what is needed before a project can be packified.
type Prerequisites struct {
	BuildToolsAvailable bool `json:"build_tools_available"`
	PackageAvailable    bool `json:"package_available"`
}

// RestoreAction is a corrective action that restoring the lockfile would perform.
type RestoreAction struct {
	Package        string `json:"package"`
	Action         string `json:"action"`
	PackratVersion string `json:"packrat.version,omitempty"`
	LibraryVersion string `json:"library.version,omitempty"`
	Message        string `json:"message,omitempty"`
}
