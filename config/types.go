package config

// Entry is one registered directory as persisted on disk.
type Entry struct {
	// Path is the registered directory, stored in its expanded form.
	Path string `yaml:"path" json:"path"`

	// Editor is an optional editor-command override for this entry.
	// Empty means "use the default editor".
	Editor string `yaml:"editor,omitempty" json:"editor,omitempty"`
}

// Config is the durable gmux configuration.
type Config struct {
	Entries []Entry `yaml:"entries" json:"entries"`

	// DefaultEditor is the session-wide editor command, updated whenever a
	// non-empty editor command is accepted in an add or edit.
	DefaultEditor string `yaml:"default_editor,omitempty" json:"default_editor,omitempty"`
}

// HasEditor reports whether the entry carries its own editor override.
func (e Entry) HasEditor() bool {
	return e.Editor != ""
}
