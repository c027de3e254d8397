package mode

import "fmt"

// IntentKind identifies the host-level action requested by key handling.
type IntentKind uint8

const (
	IntentNone IntentKind = iota
	IntentQuit
	IntentQuitAll
	IntentSave
	IntentSaveAndQuit
	IntentOpen
	IntentEnterCommandMode
	IntentEnterEditMode
	IntentEnterEditModeInNewLine
	IntentEnterSelectMode
	IntentEnterNavigateMode
	IntentDebugDumpLines
	IntentDebugDumpCursor
)

var intentNames = [...]string{
	IntentNone:                   "None",
	IntentQuit:                   "Quit",
	IntentQuitAll:                "QuitAll",
	IntentSave:                   "Save",
	IntentSaveAndQuit:            "SaveAndQuit",
	IntentOpen:                   "Open",
	IntentEnterCommandMode:       "EnterCommandMode",
	IntentEnterEditMode:          "EnterEditMode",
	IntentEnterEditModeInNewLine: "EnterEditModeInNewLine",
	IntentEnterSelectMode:        "EnterSelectMode",
	IntentEnterNavigateMode:      "EnterNavigateMode",
	IntentDebugDumpLines:         "DebugDumpLines",
	IntentDebugDumpCursor:        "DebugDumpCursor",
}

// String returns the intent kind name.
func (k IntentKind) String() string {
	if int(k) < len(intentNames) {
		return intentNames[k]
	}
	return fmt.Sprintf("IntentKind(%d)", k)
}

// Intent is a typed action emitted from key processing for the host.
type Intent struct {
	Kind IntentKind

	// Target is the file name argument of Save, SaveAndQuit and Open.
	// Empty means none was given.
	Target string

	// Force is set for the "!" variants of quit commands.
	Force bool
}

// None is the intent for keys that need nothing from the host.
var None = Intent{Kind: IntentNone}

func intentOf(kind IntentKind) Intent {
	return Intent{Kind: kind}
}

// String returns a compact representation such as "Save(out.txt)".
func (i Intent) String() string {
	s := i.Kind.String()
	if i.Target != "" {
		s += "(" + i.Target + ")"
	}
	if i.Force {
		s += "!"
	}
	return s
}

// IsQuit reports whether the intent ends a buffer or the session.
func (i Intent) IsQuit() bool {
	switch i.Kind {
	case IntentQuit, IntentQuitAll, IntentSaveAndQuit:
		return true
	}
	return false
}
