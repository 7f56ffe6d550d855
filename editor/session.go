// Package editor wires the palette, workspace, drag controller, value
// editor and script engine into one application state struct and routes
// input events through them in a fixed per-tick order.
package editor

import (
	"github.com/hubastard/blockpad/editor/block"
	"github.com/hubastard/blockpad/editor/drag"
	"github.com/hubastard/blockpad/editor/script"
	"github.com/hubastard/blockpad/editor/valueedit"
	"github.com/hubastard/blockpad/editor/workspace"
)

// Window layout in pixels. Palette, workspace and stage are three fixed
// vertical panes; the info bar sits under the stage.
const (
	WindowW = 1100
	WindowH = 650

	PaletteW   = 200
	WorkspaceX = PaletteW
	WorkspaceW = 500
	StageX     = PaletteW + WorkspaceW
	StageW     = WindowW - StageX
	InfoBarH   = 30
	StageH     = WindowH - InfoBarH
)

// Key is the subset of symbolic keys the editor reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyEnter
	KeyEscape
	KeyBackspace
	KeySpace
)

// Session owns all editor state. No ambient globals: everything reaches
// the components through this struct.
type Session struct {
	palette []block.Block
	ws      *workspace.Workspace
	drag    drag.Controller
	edit    valueedit.Editor
	engine  *script.Engine

	paletteRect   block.Rect
	workspaceRect block.Rect
	stageRect     block.Rect
	infoRect      block.Rect
	flagRect      block.Rect
}

// New builds an empty session. now may be nil for wall-clock pacing.
func New(now script.Clock) *Session {
	s := &Session{
		palette: block.Palette(),
		ws:      workspace.New(block.Point{X: WorkspaceX + 24, Y: 16}),
		engine:  script.New(now, StageW, StageH),

		paletteRect:   block.Rect{X: 0, Y: 0, W: PaletteW, H: WindowH},
		workspaceRect: block.Rect{X: WorkspaceX, Y: 0, W: WorkspaceW, H: WindowH},
		stageRect:     block.Rect{X: StageX, Y: 0, W: StageW, H: StageH},
		infoRect:      block.Rect{X: StageX, Y: WindowH - InfoBarH, W: StageW, H: InfoBarH},
		flagRect:      block.Rect{X: StageX + 10, Y: 10, W: 60, H: 30},
	}
	return s
}

// --- render surface ---

func (s *Session) Palette() []block.Block          { return s.palette }
func (s *Session) Workspace() *workspace.Workspace { return s.ws }
func (s *Session) Actor() script.Actor             { return s.engine.Actor() }
func (s *Session) Running() bool                   { return s.engine.Running() }
func (s *Session) ExecutingIndex() int             { return s.engine.Executing() }
func (s *Session) EditingIndex() int               { return s.edit.Index() }
func (s *Session) EditBuffer() string              { return s.edit.Buffer() }

func (s *Session) DragBlock() (block.Block, bool) { return s.drag.Carried() }

func (s *Session) PaletteRect() block.Rect   { return s.paletteRect }
func (s *Session) WorkspaceRect() block.Rect { return s.workspaceRect }
func (s *Session) StageRect() block.Rect     { return s.stageRect }
func (s *Session) InfoRect() block.Rect      { return s.infoRect }
func (s *Session) FlagRect() block.Rect      { return s.flagRect }

// --- input routing ---

// PointerDown resolves, in order: the active edit (click-away commits),
// the flag button, badge presses, palette drags, workspace drags. The
// ordering keeps the value editor and the drag controller from ever
// referencing the same block in one tick.
func (s *Session) PointerDown(p block.Point) {
	if s.edit.Active() {
		s.commitEdit()
	}

	if s.flagRect.Contains(p) {
		s.engine.Start(s.ws)
		return
	}

	if i := s.ws.BadgeHit(p); i >= 0 {
		s.edit.Begin(i, s.ws.At(i).Param)
		return
	}

	for _, proto := range s.palette {
		if proto.Rect.Contains(p) {
			s.drag.StartFromPalette(proto, p)
			return
		}
	}

	if i := s.ws.HitTest(p); i >= 0 {
		// Structural mutation under a running script would leave the
		// execution cursor pointing at the wrong block.
		s.engine.Stop()
		b, _ := s.ws.RemoveAt(i)
		s.edit.AdjustAfterRemove(i)
		s.ws.Layout()
		s.drag.StartFromWorkspace(b, p)
	}
}

func (s *Session) PointerMove(p block.Point) {
	s.drag.Move(p)
}

func (s *Session) PointerUp(p block.Point) {
	if !s.drag.Active() {
		return
	}
	if s.workspaceRect.Contains(p) {
		s.engine.Stop()
	}
	s.drag.Drop(p, s.ws, s.workspaceRect.Contains(p))
}

// Char feeds a decoded text character to the active edit session.
func (s *Session) Char(ch rune) {
	s.edit.InputChar(ch)
}

// KeyDown routes symbolic keys: Enter/Escape/Backspace drive the edit
// session, Space starts the script when no edit is active.
func (s *Session) KeyDown(k Key) {
	if s.edit.Active() {
		switch k {
		case KeyEnter:
			s.commitEdit()
		case KeyEscape:
			s.edit.Cancel()
		case KeyBackspace:
			s.edit.Backspace()
		}
		return
	}
	if k == KeySpace {
		s.engine.Start(s.ws)
	}
}

// Scroll nudges the parameter of the Motion block under the pointer by
// ±5 per notch. Disabled while an edit session is active.
func (s *Session) Scroll(p block.Point, dy float64) {
	if s.edit.Active() || dy == 0 {
		return
	}
	i := s.ws.HitTest(p)
	if i < 0 {
		return
	}
	b := s.ws.At(i)
	if !b.Kind.HasParam() {
		return
	}
	if dy > 0 {
		b.Param += 5
	} else {
		b.Param -= 5
	}
}

// Tick advances the script engine by at most one time-gated step. Call
// once per frame, after input routing.
func (s *Session) Tick() {
	s.engine.Update(s.ws)
}

// StartScript starts execution (the GO button / Space path).
func (s *Session) StartScript() bool { return s.engine.Start(s.ws) }

// StopScript halts execution immediately.
func (s *Session) StopScript() { s.engine.Stop() }

func (s *Session) commitEdit() {
	idx, val, ok := s.edit.Commit()
	if !ok {
		return
	}
	if b := s.ws.At(idx); b != nil {
		b.Param = val
	}
}
