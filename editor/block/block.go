package block

import "github.com/hubastard/blockpad/engine/colors"

// Category groups command kinds for palette layout and display color.
type Category int

const (
	CategoryEvent Category = iota
	CategoryMotion
	CategoryLooks
)

func (c Category) Color() colors.Color {
	switch c {
	case CategoryEvent:
		return colors.RGB(255, 165, 0)
	case CategoryMotion:
		return colors.RGB(70, 130, 180)
	default:
		return colors.RGB(180, 80, 200)
	}
}

// Kind is the closed set of block commands.
type Kind int

const (
	KindStart Kind = iota // script start marker
	KindChangeX
	KindChangeY
	KindSetX
	KindSetY
	KindShow
	KindHide
)

func (k Kind) Category() Category {
	switch k {
	case KindStart:
		return CategoryEvent
	case KindChangeX, KindChangeY, KindSetX, KindSetY:
		return CategoryMotion
	default:
		return CategoryLooks
	}
}

func (k Kind) Label() string {
	switch k {
	case KindStart:
		return "When Flag Clicked"
	case KindChangeX:
		return "Change X by:"
	case KindChangeY:
		return "Change Y by:"
	case KindSetX:
		return "Set X to:"
	case KindSetY:
		return "Set Y to:"
	case KindShow:
		return "Show"
	case KindHide:
		return "Hide"
	default:
		return "?"
	}
}

// HasParam reports whether the kind carries an editable integer parameter.
func (k Kind) HasParam() bool {
	switch k {
	case KindChangeX, KindChangeY, KindSetX, KindSetY:
		return true
	}
	return false
}

// IsStart reports whether the kind marks where execution begins.
func (k Kind) IsStart() bool { return k == KindStart }

func (k Kind) DefaultParam() int {
	switch k {
	case KindChangeX, KindChangeY:
		return 10
	case KindSetX, KindSetY:
		return 100
	}
	return 0
}

// Block dimensions in pixels.
const (
	Width  = 170
	Height = 38
	Gap    = 10
	// NotchH is the extra vertical room reserved above a start-marker
	// block so its hat notch has somewhere to draw.
	NotchH = 6

	BadgeW = 52
	BadgeH = 20
)

// Block is one placed or palette-resident command instance.
type Block struct {
	Rect  Rect
	Kind  Kind
	Param int
}

// New builds a block of kind k with its default parameter and a zero rect
// (the workspace layout pass assigns the rect).
func New(k Kind) Block {
	return Block{Kind: k, Param: k.DefaultParam()}
}

func (b Block) Color() colors.Color { return b.Kind.Category().Color() }

// BadgeRect is the value badge hit region, anchored to the block's right
// edge and vertically centered. Only meaningful for kinds with a parameter.
func (b Block) BadgeRect() Rect {
	return Rect{
		X: b.Rect.X + b.Rect.W - BadgeW - 6,
		Y: b.Rect.Y + (b.Rect.H-BadgeH)/2,
		W: BadgeW,
		H: BadgeH,
	}
}
