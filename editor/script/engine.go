// Package script is the timed interpreter: it walks the workspace one
// block per step on a fixed cadence and applies each command's effect to
// the actor.
package script

import (
	"time"

	"github.com/hubastard/blockpad/editor/block"
	"github.com/hubastard/blockpad/editor/workspace"
)

// Clock supplies the current time; injected so pacing is testable.
type Clock func() time.Time

// StepInterval is the pause between executed blocks. Execution is meant
// to be watchable, not instantaneous.
const StepInterval = 400 * time.Millisecond

// SpriteRadius is the actor's visual radius; movement clamps so the
// sprite stays fully inside the stage.
const SpriteRadius = 25

// Actor is the sole mutable target of execution. Coordinates are
// stage-local pixels, top-left origin, positive Y down.
type Actor struct {
	X, Y    float64
	Visible bool
}

// Engine advances execution one block at a time. Poll Update every frame;
// it only acts once StepInterval has elapsed since the previous step.
type Engine struct {
	now      Clock
	interval time.Duration

	stageW, stageH float64

	running   bool
	cursor    int // next block to execute
	executing int // last executed block, for highlight; -1 when stopped
	lastStep  time.Time

	actor Actor
}

func New(now Clock, stageW, stageH float64) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{
		now:       now,
		interval:  StepInterval,
		stageW:    stageW,
		stageH:    stageH,
		executing: -1,
		actor:     Actor{X: 200, Y: 200, Visible: true},
	}
}

func (e *Engine) Running() bool { return e.running }

// Executing is the index of the block currently highlighted as running,
// or -1.
func (e *Engine) Executing() int { return e.executing }

func (e *Engine) Actor() Actor { return e.actor }

// Start scans for the first start marker and begins execution at the
// block after it. Without a marker the script does not run.
func (e *Engine) Start(ws *workspace.Workspace) bool {
	for i, b := range ws.Blocks() {
		if b.Kind.IsStart() {
			e.running = true
			e.cursor = i + 1
			e.executing = i
			e.lastStep = e.now()
			return true
		}
	}
	return false
}

// Stop forces an immediate halt regardless of cursor position.
func (e *Engine) Stop() {
	e.running = false
	e.executing = -1
}

// Update performs at most one step. Call once per frame.
func (e *Engine) Update(ws *workspace.Workspace) {
	if !e.running {
		return
	}
	if e.cursor >= ws.Len() {
		e.Stop()
		return
	}
	if e.now().Sub(e.lastStep) < e.interval {
		return
	}
	e.lastStep = e.now()

	cur := ws.At(e.cursor)
	e.executing = e.cursor
	e.apply(*cur)
	e.cursor++
}

// apply is the single dispatch point for block effects.
func (e *Engine) apply(b block.Block) {
	switch b.Kind {
	case block.KindChangeX:
		e.actor.X += float64(b.Param)
	case block.KindChangeY:
		e.actor.Y += float64(b.Param) // positive Y moves down the stage
	case block.KindSetX:
		e.actor.X = float64(b.Param)
	case block.KindSetY:
		e.actor.Y = float64(b.Param)
	case block.KindShow:
		e.actor.Visible = true
	case block.KindHide:
		e.actor.Visible = false
	}
	e.actor.X = clamp(e.actor.X, SpriteRadius, e.stageW-SpriteRadius)
	e.actor.Y = clamp(e.actor.Y, SpriteRadius, e.stageH-SpriteRadius)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
