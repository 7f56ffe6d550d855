package block

// Point is a position in window pixels.
type Point struct {
	X, Y float32
}

// Rect is an axis-aligned rectangle in window pixels, top-left origin.
type Rect struct {
	X, Y, W, H float32
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// MidY returns the vertical midpoint, used by the drop insertion scan.
func (r Rect) MidY() float32 { return r.Y + r.H*0.5 }

func (r Rect) CenterX() float32 { return r.X + r.W*0.5 }
func (r Rect) CenterY() float32 { return r.Y + r.H*0.5 }
