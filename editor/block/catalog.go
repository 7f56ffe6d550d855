package block

// Palette layout metrics.
const (
	paletteX       = 15
	paletteY       = 10
	categorySpacer = 8
)

// paletteOrder is the fixed catalog, top to bottom.
var paletteOrder = []Kind{
	KindStart,
	KindChangeX,
	KindChangeY,
	KindSetX,
	KindSetY,
	KindShow,
	KindHide,
}

// Palette builds the fixed prototype list, laid out top-to-bottom with a
// spacer between categories. Prototypes are cloned into the workspace on
// drag; the returned slice is never mutated at runtime.
func Palette() []Block {
	out := make([]Block, 0, len(paletteOrder))
	y := float32(paletteY)
	var prev Category
	for i, k := range paletteOrder {
		if i > 0 && k.Category() != prev {
			y += categorySpacer
		}
		b := New(k)
		b.Rect = Rect{X: paletteX, Y: y, W: Width, H: Height}
		out = append(out, b)
		y += Height + Gap
		prev = k.Category()
	}
	return out
}
