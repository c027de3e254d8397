package key

import "testing"

func TestKeyFromName(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"Esc", KeyEscape},
		{"escape", KeyEscape},
		{" Enter ", KeyEnter},
		{"BS", KeyBackspace},
		{"CapsLock", KeyCapsLock},
		{"nope", KeyNone},
	}
	for _, tt := range tests {
		if got := KeyFromName(tt.name); got != tt.want {
			t.Errorf("KeyFromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestKeyString(t *testing.T) {
	if KeyEscape.String() != "Esc" {
		t.Errorf("KeyEscape.String() = %q", KeyEscape.String())
	}
	if got := Key(999).String(); got != "Key(999)" {
		t.Errorf("unknown key String() = %q", got)
	}
	if !KeyLeft.IsArrowKey() || KeyEnter.IsArrowKey() {
		t.Error("IsArrowKey misclassified keys")
	}
}

func TestEventClassification(t *testing.T) {
	tests := []struct {
		name     string
		event    Event
		isRune   bool
		isChar   bool
		modified bool
	}{
		{"letter", NewRuneEvent('a', ModNone), true, true, false},
		{"shifted letter", NewRuneEvent('A', ModShift), true, true, false},
		{"ctrl letter", NewRuneEvent('s', ModCtrl), true, false, true},
		{"escape", NewSpecialEvent(KeyEscape, ModNone), false, false, false},
		{"zero rune", Event{Key: KeyRune}, false, false, false},
		{"control char", NewRuneEvent('\x01', ModNone), true, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.IsRune(); got != tt.isRune {
				t.Errorf("IsRune() = %v, want %v", got, tt.isRune)
			}
			if got := tt.event.IsChar(); got != tt.isChar {
				t.Errorf("IsChar() = %v, want %v", got, tt.isChar)
			}
			if got := tt.event.IsModified(); got != tt.modified {
				t.Errorf("IsModified() = %v, want %v", got, tt.modified)
			}
		})
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{NewRuneEvent('a', ModNone), "a"},
		{NewRuneEvent(' ', ModNone), "<Space>"},
		{NewRuneEvent('s', ModCtrl), "<C-s>"},
		{NewSpecialEvent(KeyEscape, ModNone), "<Esc>"},
		{NewSpecialEvent(KeyUp, ModShift), "<S-Up>"},
	}
	for _, tt := range tests {
		if got := tt.event.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestEventIs(t *testing.T) {
	if !NewRuneEvent('g', ModNone).Is('g') {
		t.Error("Is('g') should match")
	}
	if NewRuneEvent('g', ModCtrl).Is('g') {
		t.Error("modified rune should not match Is")
	}
	if NewSpecialEvent(KeyEnter, ModNone).Is('\r') {
		t.Error("special key should not match Is")
	}
}

func TestSequence(t *testing.T) {
	seq := NewSequence()
	if !seq.IsEmpty() {
		t.Error("NewSequence should be empty")
	}

	seq.Add(NewRuneEvent('g', ModNone))
	seq.Add(NewRuneEvent('g', ModNone))
	if seq.Len() != 2 {
		t.Errorf("Len() = %d, want 2", seq.Len())
	}
	if s, ok := seq.AsString(); !ok || s != "gg" {
		t.Errorf("AsString() = %q, %v", s, ok)
	}

	seq.Add(NewSpecialEvent(KeyEscape, ModNone))
	if _, ok := seq.AsString(); ok {
		t.Error("AsString should fail with a special key")
	}
	if seq.String() != "gg<Esc>" {
		t.Errorf("String() = %q", seq.String())
	}

	seq.Clear()
	if !seq.IsEmpty() {
		t.Error("Clear should empty the sequence")
	}
}

func TestParseSequence(t *testing.T) {
	tests := []struct {
		in   string
		want []Event
	}{
		{"gg", []Event{NewRuneEvent('g', ModNone), NewRuneEvent('g', ModNone)}},
		{"<Esc>:", []Event{NewSpecialEvent(KeyEscape, ModNone), NewRuneEvent(':', ModNone)}},
		{"i<Space><Enter>", []Event{
			NewRuneEvent('i', ModNone),
			NewRuneEvent(' ', ModNone),
			NewSpecialEvent(KeyEnter, ModNone),
		}},
		{"a<b", []Event{NewRuneEvent('a', ModNone), NewRuneEvent('<', ModNone), NewRuneEvent('b', ModNone)}},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			seq, err := ParseSequence(tt.in)
			if err != nil {
				t.Fatalf("ParseSequence error: %v", err)
			}
			if !seq.Equals(&Sequence{Events: tt.want}) {
				t.Errorf("got %q, want %d events", seq.String(), len(tt.want))
			}
		})
	}

	if _, err := ParseSequence("<Bogus>"); err == nil {
		t.Error("unknown key name should fail")
	}
}
