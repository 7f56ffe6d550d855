// Package drag tracks an in-flight block drag: palette prototypes are
// cloned, workspace blocks are lifted out of the sequence for the
// duration of the drag.
package drag

import (
	"github.com/hubastard/blockpad/editor/block"
	"github.com/hubastard/blockpad/editor/workspace"
)

// Origin records where the carried block came from.
type Origin int

const (
	OriginNone Origin = iota
	OriginPalette
	OriginWorkspace
)

// DropResult describes how a release resolved.
type DropResult int

const (
	DropNone      DropResult = iota // no drag was active
	DropInserted                    // carried block joined the workspace
	DropDiscarded                   // carried block was thrown away
)

// Controller is the drag state machine. Zero value is idle.
type Controller struct {
	origin  Origin
	carried block.Block
	offset  block.Point // pointer minus carried top-left, fixed at grab
}

func (c *Controller) Active() bool   { return c.origin != OriginNone }
func (c *Controller) Origin() Origin { return c.origin }

// Carried returns the block under the pointer while a drag is active.
func (c *Controller) Carried() (block.Block, bool) {
	return c.carried, c.origin != OriginNone
}

// StartFromPalette begins a drag with a clone of the prototype, centered
// under the pointer. The prototype itself is untouched.
func (c *Controller) StartFromPalette(proto block.Block, p block.Point) {
	b := proto
	b.Rect.X = p.X - block.Width/2
	b.Rect.Y = p.Y - block.Height/2
	c.origin = OriginPalette
	c.carried = b
	c.offset = block.Point{X: p.X - b.Rect.X, Y: p.Y - b.Rect.Y}
}

// StartFromWorkspace begins a drag with a block already lifted out of the
// workspace; the grab offset keeps the block from snapping to the pointer.
func (c *Controller) StartFromWorkspace(b block.Block, p block.Point) {
	c.origin = OriginWorkspace
	c.carried = b
	c.offset = block.Point{X: p.X - b.Rect.X, Y: p.Y - b.Rect.Y}
}

// Move recomputes the carried rect from the pointer and the fixed grab
// offset, so there is no cumulative drift.
func (c *Controller) Move(p block.Point) {
	if c.origin == OriginNone {
		return
	}
	c.carried.Rect.X = p.X - c.offset.X
	c.carried.Rect.Y = p.Y - c.offset.Y
}

// Drop resolves a release. Inside the workspace region the carried block
// is inserted at the midpoint-scan index and the workspace is re-laid
// out; anywhere else it is discarded (a delete gesture for workspace
// origins, a cancel for palette origins).
func (c *Controller) Drop(p block.Point, ws *workspace.Workspace, inWorkspace bool) (DropResult, int) {
	if c.origin == OriginNone {
		return DropNone, -1
	}
	defer c.reset()

	if !inWorkspace {
		return DropDiscarded, -1
	}
	idx := ws.InsertionIndex(p.Y)
	ws.InsertAt(idx, c.carried)
	ws.Layout()
	return DropInserted, idx
}

func (c *Controller) reset() {
	c.origin = OriginNone
	c.carried = block.Block{}
	c.offset = block.Point{}
}
