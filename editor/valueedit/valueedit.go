// Package valueedit is the numeric edit session bound to one block's
// parameter: a small buffer accepting digits and a single leading minus.
package valueedit

import (
	"strconv"

	"github.com/hubastard/blockpad/editor/workspace"
)

// MaxLen caps the edit buffer; further digits are ignored.
const MaxLen = 5

// Editor is the edit state machine. At most one session is active; the
// zero value is inactive.
type Editor struct {
	active bool
	index  int
	buffer string
}

func (e *Editor) Active() bool { return e.active }

// Index is the workspace index being edited, or -1 when inactive.
func (e *Editor) Index() int {
	if !e.active {
		return -1
	}
	return e.index
}

func (e *Editor) Buffer() string { return e.buffer }

// Begin opens a session on the block at index, seeding the buffer with
// the parameter's decimal text. Callers must resolve any previous
// session first (the session router force-commits it).
func (e *Editor) Begin(index, param int) {
	e.active = true
	e.index = index
	e.buffer = strconv.Itoa(param)
}

// InputChar appends a digit (while under MaxLen) or a minus sign into an
// empty buffer. Anything else is ignored.
func (e *Editor) InputChar(ch rune) {
	if !e.active {
		return
	}
	switch {
	case ch >= '0' && ch <= '9':
		if len(e.buffer) < MaxLen {
			e.buffer += string(ch)
		}
	case ch == '-' && e.buffer == "":
		e.buffer += string(ch)
	}
}

// Backspace removes the last buffer character; no-op when empty.
func (e *Editor) Backspace() {
	if e.active && e.buffer != "" {
		e.buffer = e.buffer[:len(e.buffer)-1]
	}
}

// Commit closes the session and returns the target index and parsed
// value. An empty buffer or a lone "-" commits zero rather than failing.
func (e *Editor) Commit() (index, value int, ok bool) {
	if !e.active {
		return -1, 0, false
	}
	index = e.index
	if e.buffer != "" && e.buffer != "-" {
		// The buffer only ever holds [-]digits, so Atoi cannot fail.
		value, _ = strconv.Atoi(e.buffer)
	}
	e.clear()
	return index, value, true
}

// Cancel discards the buffer; the block's parameter is untouched.
func (e *Editor) Cancel() {
	e.clear()
}

// AdjustAfterRemove keeps the session's target index valid across a
// workspace removal. Removing the edited block itself ends the session
// without committing into a now-invalid index.
func (e *Editor) AdjustAfterRemove(removed int) {
	if !e.active {
		return
	}
	adjusted, ok := workspace.AdjustAfterRemove(e.index, removed)
	if !ok {
		e.clear()
		return
	}
	e.index = adjusted
}

func (e *Editor) clear() {
	e.active = false
	e.index = 0
	e.buffer = ""
}
