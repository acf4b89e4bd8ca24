package config

// Projectfile is the structure of libsync.yaml.
type Projectfile struct {
	Library      string       `yaml:"library"`
	Lockfile     string       `yaml:"lockfile"`
	Options      string       `yaml:"options"`
	Marker       string       `yaml:"marker"`
	Ignore       []string     `yaml:"ignore"`
	State        StateDTO     `yaml:"state"`
	Debounce     string       `yaml:"debounce"`
	AutoSnapshot *bool        `yaml:"autoSnapshot"`
	Commands     *CommandsDTO `yaml:"commands"`
}

// StateDTO selects the state store.
type StateDTO struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

// CommandsDTO overrides individual package manager commands.
type CommandsDTO struct {
	Snapshot       []string `yaml:"snapshot"`
	RestoreActions []string `yaml:"restoreActions"`
	Available      []string `yaml:"available"`
	Packified      []string `yaml:"packified"`
	ModeOn         []string `yaml:"modeOn"`
	Bootstrap      []string `yaml:"bootstrap"`
	Install        []string `yaml:"install"`
	BuildTools     []string `yaml:"buildTools"`
}
