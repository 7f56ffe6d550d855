package editor

import (
	"testing"
	"time"

	"github.com/hubastard/blockpad/editor/block"
	"github.com/hubastard/blockpad/editor/script"
)

type fakeClock struct{ t time.Time }

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

// dragFromPalette drags palette prototype pi to point drop and releases.
func dragFromPalette(s *Session, pi int, drop block.Point) {
	proto := s.Palette()[pi]
	grab := block.Point{X: proto.Rect.X + 5, Y: proto.Rect.Y + 5}
	s.PointerDown(grab)
	s.PointerMove(drop)
	s.PointerUp(drop)
}

func buildScript(s *Session, protos ...int) {
	for _, pi := range protos {
		dragFromPalette(s, pi, block.Point{X: 400, Y: 600})
	}
}

func TestPaletteDragGrowsScript(t *testing.T) {
	s := New(nil)

	dragFromPalette(s, 0, block.Point{X: 400, Y: 100}) // Start
	if s.Workspace().Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Workspace().Len())
	}

	// drop a second block above the first: midpoint rule puts it first
	first := s.Workspace().Blocks()[0]
	dragFromPalette(s, 6, block.Point{X: 400, Y: first.Rect.MidY() - 2}) // Hide
	if s.Workspace().Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Workspace().Len())
	}
	if s.Workspace().Blocks()[0].Kind != block.KindHide {
		t.Errorf("midpoint-scan insert put %v first, want KindHide", s.Workspace().Blocks()[0].Kind)
	}
}

func TestDragOutDeletes(t *testing.T) {
	s := New(nil)
	buildScript(s, 0, 1) // Start, Change X

	target := s.Workspace().Blocks()[1]
	grab := block.Point{X: target.Rect.X + 10, Y: target.Rect.Y + 10}
	s.PointerDown(grab)

	// lifted immediately: the sequence is transiently shorter
	if s.Workspace().Len() != 1 {
		t.Fatalf("Len() during drag = %d, want 1", s.Workspace().Len())
	}
	if _, ok := s.DragBlock(); !ok {
		t.Fatal("no carried block during drag")
	}

	// release over the palette: delete gesture
	s.PointerMove(block.Point{X: 50, Y: 300})
	s.PointerUp(block.Point{X: 50, Y: 300})
	if s.Workspace().Len() != 1 {
		t.Errorf("Len() after drag-out = %d, want 1", s.Workspace().Len())
	}
	if _, ok := s.DragBlock(); ok {
		t.Error("carried block survived the drop")
	}
}

func TestBadgeEditCommitViaEnter(t *testing.T) {
	s := New(nil)
	buildScript(s, 0, 1)

	badge := s.Workspace().Blocks()[1].BadgeRect()
	s.PointerDown(block.Point{X: badge.X + 2, Y: badge.Y + 2})
	if s.EditingIndex() != 1 {
		t.Fatalf("EditingIndex() = %d, want 1", s.EditingIndex())
	}
	if s.EditBuffer() != "10" {
		t.Fatalf("buffer seed = %q, want \"10\"", s.EditBuffer())
	}

	s.KeyDown(KeyBackspace)
	s.KeyDown(KeyBackspace)
	s.Char('4')
	s.Char('2')
	s.KeyDown(KeyEnter)

	if s.EditingIndex() != -1 {
		t.Error("edit session still open after Enter")
	}
	if got := s.Workspace().Blocks()[1].Param; got != 42 {
		t.Errorf("param = %d, want 42", got)
	}
}

func TestEditNegativeValue(t *testing.T) {
	s := New(nil)
	buildScript(s, 0, 2) // Start, Change Y

	badge := s.Workspace().Blocks()[1].BadgeRect()
	s.PointerDown(block.Point{X: badge.X + 2, Y: badge.Y + 2})
	s.KeyDown(KeyBackspace)
	s.KeyDown(KeyBackspace)
	s.Char('-')
	s.Char('5')
	s.KeyDown(KeyEnter)

	if got := s.Workspace().Blocks()[1].Param; got != -5 {
		t.Errorf("param = %d, want -5", got)
	}
}

func TestEditEmptyBufferCommitsZero(t *testing.T) {
	s := New(nil)
	buildScript(s, 0, 1)

	badge := s.Workspace().Blocks()[1].BadgeRect()
	s.PointerDown(block.Point{X: badge.X + 2, Y: badge.Y + 2})
	s.KeyDown(KeyBackspace)
	s.KeyDown(KeyBackspace)
	s.KeyDown(KeyEnter)

	if got := s.Workspace().Blocks()[1].Param; got != 0 {
		t.Errorf("param = %d, want 0", got)
	}
}

func TestEscapeCancelsEdit(t *testing.T) {
	s := New(nil)
	buildScript(s, 0, 1)

	badge := s.Workspace().Blocks()[1].BadgeRect()
	s.PointerDown(block.Point{X: badge.X + 2, Y: badge.Y + 2})
	s.Char('7')
	s.Char('7')
	s.KeyDown(KeyEscape)

	if s.EditingIndex() != -1 {
		t.Error("edit session still open after Escape")
	}
	if got := s.Workspace().Blocks()[1].Param; got != 10 {
		t.Errorf("param = %d after cancel, want original 10", got)
	}
}

func TestClickAwayCommits(t *testing.T) {
	s := New(nil)
	buildScript(s, 0, 1)

	badge := s.Workspace().Blocks()[1].BadgeRect()
	s.PointerDown(block.Point{X: badge.X + 2, Y: badge.Y + 2})
	s.KeyDown(KeyBackspace)
	s.KeyDown(KeyBackspace)
	s.Char('9')

	// click on empty workspace area: commit, not cancel
	s.PointerDown(block.Point{X: 650, Y: 600})
	s.PointerUp(block.Point{X: 650, Y: 600})

	if s.EditingIndex() != -1 {
		t.Error("edit session still open after click-away")
	}
	if got := s.Workspace().Blocks()[1].Param; got != 9 {
		t.Errorf("param = %d, want committed 9", got)
	}
}

func TestNewEditForceCommitsPrevious(t *testing.T) {
	s := New(nil)
	buildScript(s, 0, 1, 2) // Start, Change X, Change Y

	first := s.Workspace().Blocks()[1].BadgeRect()
	s.PointerDown(block.Point{X: first.X + 2, Y: first.Y + 2})
	s.KeyDown(KeyBackspace)
	s.KeyDown(KeyBackspace)
	s.Char('8')

	second := s.Workspace().Blocks()[2].BadgeRect()
	s.PointerDown(block.Point{X: second.X + 2, Y: second.Y + 2})

	if got := s.Workspace().Blocks()[1].Param; got != 8 {
		t.Errorf("previous edit not committed: param = %d, want 8", got)
	}
	if s.EditingIndex() != 2 {
		t.Errorf("EditingIndex() = %d, want 2", s.EditingIndex())
	}
}

func TestScrollAdjustsMotionParam(t *testing.T) {
	s := New(nil)
	buildScript(s, 0, 1)

	b := s.Workspace().Blocks()[1]
	p := block.Point{X: b.Rect.X + 10, Y: b.Rect.Y + 10}

	s.Scroll(p, 1)
	if got := s.Workspace().Blocks()[1].Param; got != 15 {
		t.Fatalf("param after notch up = %d, want 15", got)
	}

	// equal opposite notches net to zero
	for i := 0; i < 3; i++ {
		s.Scroll(p, 1)
	}
	for i := 0; i < 4; i++ {
		s.Scroll(p, -1)
	}
	if got := s.Workspace().Blocks()[1].Param; got != 10 {
		t.Errorf("param after balanced notches = %d, want 10", got)
	}
}

func TestScrollIgnoredDuringEditAndOffMotion(t *testing.T) {
	s := New(nil)
	buildScript(s, 0, 1)

	start := s.Workspace().Blocks()[0]
	s.Scroll(block.Point{X: start.Rect.X + 5, Y: start.Rect.Y + 5}, 1)
	if got := s.Workspace().Blocks()[0].Param; got != 0 {
		t.Errorf("start marker param changed by scroll: %d", got)
	}

	motion := s.Workspace().Blocks()[1]
	badge := motion.BadgeRect()
	s.PointerDown(block.Point{X: badge.X + 2, Y: badge.Y + 2})
	s.Scroll(block.Point{X: motion.Rect.X + 5, Y: motion.Rect.Y + 5}, 1)
	if got := s.Workspace().Blocks()[1].Param; got != 10 {
		t.Errorf("scroll applied during edit: param = %d, want 10", got)
	}
}

func TestFlagButtonAndSpaceStartScript(t *testing.T) {
	clk := newFakeClock()
	s := New(clk.now)
	buildScript(s, 0, 1)

	flag := s.FlagRect()
	s.PointerDown(block.Point{X: flag.X + 5, Y: flag.Y + 5})
	if !s.Running() {
		t.Fatal("GO button did not start the script")
	}
	s.StopScript()

	s.KeyDown(KeySpace)
	if !s.Running() {
		t.Fatal("Space did not start the script")
	}
}

func TestSpaceWithoutMarkerDoesNotRun(t *testing.T) {
	s := New(nil)
	buildScript(s, 1) // only a Change X, no marker

	s.KeyDown(KeySpace)
	if s.Running() {
		t.Error("script ran without a start marker")
	}
}

func TestScriptExecutionThroughSession(t *testing.T) {
	clk := newFakeClock()
	s := New(clk.now)
	buildScript(s, 0, 1, 6) // Start, Change X(10), Hide

	startX := s.Actor().X
	s.StartScript()

	s.Tick()
	if s.Actor().X != startX {
		t.Fatal("stepped before the gate elapsed")
	}

	clk.advance(script.StepInterval)
	s.Tick()
	if got := s.Actor().X; got != startX+10 {
		t.Fatalf("X = %v, want %v", got, startX+10)
	}
	if s.ExecutingIndex() != 1 {
		t.Errorf("ExecutingIndex() = %d, want 1", s.ExecutingIndex())
	}

	clk.advance(script.StepInterval)
	s.Tick()
	if s.Actor().Visible {
		t.Fatal("actor visible after Hide")
	}

	s.Tick()
	if s.Running() {
		t.Error("script still running past the end")
	}
}

func TestStructuralMutationStopsScript(t *testing.T) {
	clk := newFakeClock()
	s := New(clk.now)
	buildScript(s, 0, 1, 1)

	s.StartScript()
	if !s.Running() {
		t.Fatal("script did not start")
	}

	// lifting a block out must stop execution before the shape changes
	target := s.Workspace().Blocks()[2]
	s.PointerDown(block.Point{X: target.Rect.X + 10, Y: target.Rect.Y + 10})
	if s.Running() {
		t.Error("script still running after structural mutation")
	}
	s.PointerUp(block.Point{X: 50, Y: 300})
}

func TestDropIndexMatchesMidpointRule(t *testing.T) {
	s := New(nil)
	buildScript(s, 0, 6) // Start, Hide

	blocks := s.Workspace().Blocks()
	dropY := blocks[1].Rect.MidY() - 2
	dragFromPalette(s, 1, block.Point{X: 400, Y: dropY}) // Change X between them

	got := make([]block.Kind, 0, 3)
	for _, b := range s.Workspace().Blocks() {
		got = append(got, b.Kind)
	}
	want := []block.Kind{block.KindStart, block.KindChangeX, block.KindHide}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}
