package core

// Mode is one of the editor's input modes. Modes are comparable values, so
// the package-level entries can be used directly in switches.
type Mode struct {
	Name string
	// Tag is drawn at the left of the status bar.
	Tag string
	// Hint is the status message shown when the mode is entered.
	Hint string
}

func entryForMode(name string, tag string, hint string) Mode {
	return Mode{
		Name: name,
		Tag:  tag,
		Hint: hint,
	}
}

const DefaultHint = "HELP: (Ctrl-Q | :q) = quit | (Ctrl-S | :w) = save | " +
	"(i) = insert mode | (Ctrl-F | /) = find"

var (
	ModeNormal  = entryForMode("normal", "[NORMAL]", DefaultHint)
	ModeInsert  = entryForMode("insert", "[INSERT]", "Press ESC to enter normal mode")
	ModeCommand = entryForMode("command", "[COMMAND]", "")

	entries = []Mode{
		ModeNormal,
		ModeInsert,
		ModeCommand,
	}
)

// ModeFromName returns the mode registered under name, or nil.
func ModeFromName(name string) *Mode {
	for _, entry := range entries {
		if entry.Name == name {
			return &entry
		}
	}
	return nil
}

func (m Mode) String() string {
	return m.Name
}
