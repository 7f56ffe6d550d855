// Package workspace holds the ordered block sequence that forms the
// user's script. Logical order is execution order; drawn rectangles are
// derived from it by Layout and may diverge transiently during a drag.
package workspace

import "github.com/hubastard/blockpad/editor/block"

// Workspace is the mutable script. The zero value is not usable; use New.
type Workspace struct {
	blocks []block.Block
	origin block.Point // top-left of the first slot
}

func New(origin block.Point) *Workspace {
	return &Workspace{origin: origin}
}

func (w *Workspace) Len() int { return len(w.blocks) }

// Blocks exposes the sequence for rendering. Callers must not reorder it.
func (w *Workspace) Blocks() []block.Block { return w.blocks }

// At returns the block at i for in-place mutation, or nil if out of range.
func (w *Workspace) At(i int) *block.Block {
	if i < 0 || i >= len(w.blocks) {
		return nil
	}
	return &w.blocks[i]
}

// InsertAt inserts b so it occupies logical position i. An index past the
// end is clamped to the end; a negative index clamps to the front.
func (w *Workspace) InsertAt(i int, b block.Block) {
	if i < 0 {
		i = 0
	}
	if i > len(w.blocks) {
		i = len(w.blocks)
	}
	w.blocks = append(w.blocks, block.Block{})
	copy(w.blocks[i+1:], w.blocks[i:])
	w.blocks[i] = b
}

// RemoveAt removes and returns the block at i. Out-of-range indices are a
// no-op. Callers holding indices into the sequence must adjust them with
// AdjustAfterRemove.
func (w *Workspace) RemoveAt(i int) (block.Block, bool) {
	if i < 0 || i >= len(w.blocks) {
		return block.Block{}, false
	}
	b := w.blocks[i]
	w.blocks = append(w.blocks[:i], w.blocks[i+1:]...)
	return b, true
}

// HitTest returns the topmost (last-inserted draws on top) block whose
// rectangle contains p, or -1.
func (w *Workspace) HitTest(p block.Point) int {
	for i := len(w.blocks) - 1; i >= 0; i-- {
		if w.blocks[i].Rect.Contains(p) {
			return i
		}
	}
	return -1
}

// BadgeHit returns the index whose value badge contains p, or -1. Only
// kinds with a parameter expose a badge.
func (w *Workspace) BadgeHit(p block.Point) int {
	for i := len(w.blocks) - 1; i >= 0; i-- {
		if !w.blocks[i].Kind.HasParam() {
			continue
		}
		if w.blocks[i].BadgeRect().Contains(p) {
			return i
		}
	}
	return -1
}

// InsertionIndex resolves a drop at vertical position y: the first block
// whose midpoint lies below y takes the new block's place; past every
// midpoint means append.
func (w *Workspace) InsertionIndex(y float32) int {
	for i, b := range w.blocks {
		if y < b.Rect.MidY() {
			return i
		}
	}
	return len(w.blocks)
}

// Layout recomputes every block's rectangle from its logical order:
// a single column at the workspace origin, top to bottom with a fixed
// gap, start markers pushed down by the notch allowance. Idempotent.
func (w *Workspace) Layout() {
	y := w.origin.Y
	for i := range w.blocks {
		if w.blocks[i].Kind.IsStart() {
			y += block.NotchH
		}
		w.blocks[i].Rect = block.Rect{X: w.origin.X, Y: y, W: block.Width, H: block.Height}
		y += block.Height + block.Gap
	}
}

// AdjustAfterRemove maps an index held across a RemoveAt(removed) call.
// ok is false when the held index was the removed block itself.
func AdjustAfterRemove(held, removed int) (adjusted int, ok bool) {
	switch {
	case held == removed:
		return -1, false
	case held > removed:
		return held - 1, true
	default:
		return held, true
	}
}
