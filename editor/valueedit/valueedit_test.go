package valueedit

import "testing"

func typeString(e *Editor, s string) {
	for _, ch := range s {
		e.InputChar(ch)
	}
}

func TestCommitParsing(t *testing.T) {
	tests := []struct {
		name  string
		seed  int
		typed string
		want  int
	}{
		{"Digits", 10, "42", 42},
		{"Negative", 10, "-5", -5},
		{"Empty buffer commits zero", 10, "", 0},
		{"Lone minus commits zero", 10, "-", 0},
		{"Large value", 0, "99999", 99999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e Editor
			e.Begin(3, tt.seed)
			// seed text is selected-away by typing fresh input
			for e.Buffer() != "" {
				e.Backspace()
			}
			typeString(&e, tt.typed)

			idx, val, ok := e.Commit()
			if !ok {
				t.Fatal("Commit() not ok")
			}
			if idx != 3 {
				t.Errorf("Commit() index = %d, want 3", idx)
			}
			if val != tt.want {
				t.Errorf("Commit() value = %d, want %d", val, tt.want)
			}
			if e.Active() {
				t.Error("still active after commit")
			}
		})
	}
}

func TestBeginSeedsBuffer(t *testing.T) {
	var e Editor
	e.Begin(0, -37)
	if e.Buffer() != "-37" {
		t.Errorf("Buffer() = %q, want \"-37\"", e.Buffer())
	}
	if e.Index() != 0 {
		t.Errorf("Index() = %d, want 0", e.Index())
	}
}

func TestInputRules(t *testing.T) {
	tests := []struct {
		name  string
		typed string
		want  string
	}{
		{"Digits append", "123", "123"},
		{"Minus only leading", "1-2", "12"},
		{"Leading minus accepted", "-12", "-12"},
		{"Second minus ignored", "--5", "-5"},
		{"Length capped at five", "1234567", "12345"},
		{"Non-numeric ignored", "a1b2 c", "12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e Editor
			e.Begin(0, 0)
			for e.Buffer() != "" {
				e.Backspace()
			}
			typeString(&e, tt.typed)
			if e.Buffer() != tt.want {
				t.Errorf("Buffer() = %q, want %q", e.Buffer(), tt.want)
			}
		})
	}
}

func TestBackspace(t *testing.T) {
	var e Editor
	e.Begin(0, 42)
	e.Backspace()
	if e.Buffer() != "4" {
		t.Errorf("Buffer() = %q, want \"4\"", e.Buffer())
	}
	e.Backspace()
	e.Backspace() // no-op on empty
	if e.Buffer() != "" {
		t.Errorf("Buffer() = %q, want empty", e.Buffer())
	}
	if !e.Active() {
		t.Error("backspacing to empty ended the session")
	}
}

func TestCancelLeavesNoCommit(t *testing.T) {
	var e Editor
	e.Begin(2, 10)
	typeString(&e, "77")
	e.Cancel()

	if e.Active() {
		t.Error("still active after cancel")
	}
	if _, _, ok := e.Commit(); ok {
		t.Error("Commit() succeeded after cancel")
	}
}

func TestInactiveEditorIgnoresInput(t *testing.T) {
	var e Editor
	e.InputChar('5')
	e.Backspace()
	if e.Active() || e.Buffer() != "" {
		t.Errorf("inactive editor mutated: active=%v buffer=%q", e.Active(), e.Buffer())
	}
	if e.Index() != -1 {
		t.Errorf("Index() = %d, want -1 while inactive", e.Index())
	}
}

func TestAdjustAfterRemove(t *testing.T) {
	tests := []struct {
		name       string
		editing    int
		removed    int
		wantActive bool
		wantIndex  int
	}{
		{"Removal before target decrements", 3, 1, true, 2},
		{"Removal after target untouched", 1, 3, true, 1},
		{"Removing target ends session", 2, 2, false, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e Editor
			e.Begin(tt.editing, 10)
			e.AdjustAfterRemove(tt.removed)

			if e.Active() != tt.wantActive {
				t.Fatalf("Active() = %v, want %v", e.Active(), tt.wantActive)
			}
			if e.Index() != tt.wantIndex {
				t.Errorf("Index() = %d, want %d", e.Index(), tt.wantIndex)
			}
		})
	}
}
