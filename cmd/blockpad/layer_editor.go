package main

import (
	"fmt"
	"strconv"

	"github.com/hubastard/blockpad/editor"
	"github.com/hubastard/blockpad/editor/block"
	"github.com/hubastard/blockpad/editor/script"
	"github.com/hubastard/blockpad/engine/colors"
	"github.com/hubastard/blockpad/engine/core"
	"github.com/hubastard/blockpad/engine/gfx/renderer2d"
	"github.com/hubastard/blockpad/engine/scene"
	"github.com/hubastard/blockpad/engine/text"
)

var (
	paletteBg   = colors.RGB(45, 45, 60)
	workspaceBg = colors.RGB(55, 55, 70)
	stageBg     = colors.RGB(220, 230, 245)
	infoBg      = colors.RGB(40, 40, 55)
	flagGreen   = colors.RGB(50, 200, 80)
	badgeBg     = colors.White
	badgeEditBg = colors.RGB(255, 230, 100)
	darkText    = colors.RGB(30, 30, 30)
	infoText    = colors.RGB(200, 220, 255)
	hintText    = colors.RGB(255, 220, 100)
)

// EditorLayer feeds input to the session and draws its state. All
// authoritative state lives in the session; this layer only reads it.
type EditorLayer struct {
	cam     *scene.ScreenCamera2D
	r2d     *renderer2d.Renderer2D
	font    *text.Font
	session *editor.Session

	sprite    renderer2d.SubTexture2D
	hasSprite bool
}

func (l *EditorLayer) OnAttach(e *core.Engine) {
	// Camera space is window coordinates, same as pointer events. The
	// framebuffer may be larger on HiDPI displays; glViewport covers that.
	l.cam = scene.NewScreen2D(editor.WindowW, editor.WindowH)
}

func (l *EditorLayer) OnDetach(e *core.Engine) {}

func (l *EditorLayer) OnUpdate(e *core.Engine, dt float64) {
	l.session.Tick()
}

func (l *EditorLayer) OnEvent(e *core.Engine, ev core.Event) bool {
	switch v := ev.(type) {
	case core.EventMouseButton:
		if v.Button != core.MouseButtonLeft {
			return false
		}
		p := block.Point{X: float32(v.X), Y: float32(v.Y)}
		if v.Down {
			l.session.PointerDown(p)
		} else {
			l.session.PointerUp(p)
		}
		return true
	case core.EventMouseMove:
		l.session.PointerMove(block.Point{X: float32(v.X), Y: float32(v.Y)})
		return true
	case core.EventChar:
		l.session.Char(v.Char)
		return true
	case core.EventKey:
		if !v.Down {
			return false
		}
		if k := translateEditorKey(v.Key); k != editor.KeyNone {
			l.session.KeyDown(k)
			return true
		}
	case core.EventScroll:
		mx, my := e.Input.Mouse()
		l.session.Scroll(block.Point{X: float32(mx), Y: float32(my)}, v.Yoff)
		return true
	}
	return false
}

func translateEditorKey(k core.Key) editor.Key {
	switch k {
	case core.KeyEnter:
		return editor.KeyEnter
	case core.KeyEscape:
		return editor.KeyEscape
	case core.KeyBackspace:
		return editor.KeyBackspace
	case core.KeySpace:
		return editor.KeySpace
	default:
		return editor.KeyNone
	}
}

func (l *EditorLayer) OnRender(e *core.Engine, alpha float64) {
	s := l.session

	l.r2d.BeginScene(l.cam.VP())

	// panes
	l.fillRect(s.PaletteRect(), paletteBg)
	l.fillRect(s.WorkspaceRect(), workspaceBg)
	l.fillRect(s.StageRect(), stageBg)

	// palette prototypes
	for _, b := range s.Palette() {
		l.drawBlock(b, false, false, "")
	}

	// workspace script
	editIdx := s.EditingIndex()
	execIdx := s.ExecutingIndex()
	for i, b := range s.Workspace().Blocks() {
		l.drawBlock(b, i == execIdx, i == editIdx, s.EditBuffer())
	}

	// carried block draws on top of everything in the left panes
	if b, ok := s.DragBlock(); ok {
		l.drawBlock(b, false, false, "")
	}

	l.drawStage()
	l.drawChrome()

	l.r2d.EndScene()
}

func (l *EditorLayer) drawBlock(b block.Block, highlight, editing bool, buf string) {
	c := b.Color()
	if highlight {
		c = colors.Lighten(c, 0.24)
	}

	if b.Kind.IsStart() {
		// hat notch above the start marker
		l.fillRect(block.Rect{X: b.Rect.X + 10, Y: b.Rect.Y - block.NotchH, W: 46, H: block.NotchH}, c)
	}
	l.fillRect(b.Rect, c)
	text.DrawText(l.r2d, l.font, b.Rect.X+8, b.Rect.Y+11, b.Kind.Label(), colors.White)

	if !b.Kind.HasParam() {
		return
	}
	badge := b.BadgeRect()
	bg := badgeBg
	if editing {
		bg = badgeEditBg
	}
	l.fillRect(badge, bg)

	shown := strconv.Itoa(b.Param)
	if editing {
		shown = buf + "_"
	}
	text.DrawText(l.r2d, l.font, badge.X+4, badge.Y+3, shown, darkText)
}

func (l *EditorLayer) drawStage() {
	s := l.session
	actor := s.Actor()
	if !actor.Visible {
		return
	}
	stage := s.StageRect()
	cx := stage.X + float32(actor.X)
	cy := stage.Y + float32(actor.Y)
	d := float32(2 * script.SpriteRadius)
	if l.hasSprite {
		l.r2d.DrawSubTexQuad(cx, cy, d, d, l.sprite, colors.White, 0)
	}
}

func (l *EditorLayer) drawChrome() {
	s := l.session

	// info bar: actor coordinates
	actor := s.Actor()
	l.fillRect(s.InfoRect(), infoBg)
	info := fmt.Sprintf("X:%d Y:%d", int(actor.X), int(actor.Y))
	text.DrawText(l.r2d, l.font, s.InfoRect().X+8, s.InfoRect().Y+8, info, infoText)

	// edit hint
	if s.EditingIndex() >= 0 {
		text.DrawText(l.r2d, l.font, s.WorkspaceRect().X+10, editor.WindowH-22,
			"Type number + Enter (ESC to cancel)", hintText)
	}

	// GO flag button
	flag := s.FlagRect()
	c := flagGreen
	if s.Running() {
		c = colors.Lighten(c, 0.2)
	}
	l.fillRect(flag, c)
	text.DrawText(l.r2d, l.font, flag.X+8, flag.Y+7, "> GO", colors.White)
}

// fillRect adapts top-left rects to the renderer's center-based quads.
func (l *EditorLayer) fillRect(r block.Rect, c colors.Color) {
	l.r2d.DrawQuad(r.CenterX(), r.CenterY(), r.W, r.H, c, 0)
}
