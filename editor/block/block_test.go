package block

import "testing"

func TestKindMetadata(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		category Category
		hasParam bool
		isStart  bool
		def      int
	}{
		{"Start marker", KindStart, CategoryEvent, false, true, 0},
		{"Change X", KindChangeX, CategoryMotion, true, false, 10},
		{"Change Y", KindChangeY, CategoryMotion, true, false, 10},
		{"Set X", KindSetX, CategoryMotion, true, false, 100},
		{"Set Y", KindSetY, CategoryMotion, true, false, 100},
		{"Show", KindShow, CategoryLooks, false, false, 0},
		{"Hide", KindHide, CategoryLooks, false, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.Category(); got != tt.category {
				t.Errorf("Category() = %v, want %v", got, tt.category)
			}
			if got := tt.kind.HasParam(); got != tt.hasParam {
				t.Errorf("HasParam() = %v, want %v", got, tt.hasParam)
			}
			if got := tt.kind.IsStart(); got != tt.isStart {
				t.Errorf("IsStart() = %v, want %v", got, tt.isStart)
			}
			if got := tt.kind.DefaultParam(); got != tt.def {
				t.Errorf("DefaultParam() = %d, want %d", got, tt.def)
			}
			if tt.kind.Label() == "" || tt.kind.Label() == "?" {
				t.Errorf("Label() missing for kind %v", tt.kind)
			}
		})
	}
}

func TestPaletteLayout(t *testing.T) {
	pal := Palette()
	if len(pal) != 7 {
		t.Fatalf("palette size = %d, want 7", len(pal))
	}

	// one prototype per kind, catalog order
	want := []Kind{KindStart, KindChangeX, KindChangeY, KindSetX, KindSetY, KindShow, KindHide}
	for i, b := range pal {
		if b.Kind != want[i] {
			t.Errorf("palette[%d].Kind = %v, want %v", i, b.Kind, want[i])
		}
		if b.Param != b.Kind.DefaultParam() {
			t.Errorf("palette[%d].Param = %d, want default %d", i, b.Param, b.Kind.DefaultParam())
		}
	}

	// stacked top to bottom without vertical overlap
	for i := 1; i < len(pal); i++ {
		prevBottom := pal[i-1].Rect.Y + pal[i-1].Rect.H
		if pal[i].Rect.Y < prevBottom {
			t.Errorf("palette[%d] overlaps previous: y=%v, prev bottom=%v", i, pal[i].Rect.Y, prevBottom)
		}
	}

	// category transitions get extra spacing
	gapEventMotion := pal[1].Rect.Y - (pal[0].Rect.Y + pal[0].Rect.H)
	gapMotionMotion := pal[2].Rect.Y - (pal[1].Rect.Y + pal[1].Rect.H)
	if gapEventMotion <= gapMotionMotion {
		t.Errorf("category spacer missing: event->motion gap %v, motion->motion gap %v",
			gapEventMotion, gapMotionMotion)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 40}
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"Center", Point{60, 40}, true},
		{"Top-left corner", Point{10, 20}, true},
		{"Right edge exclusive", Point{110, 40}, false},
		{"Bottom edge exclusive", Point{60, 60}, false},
		{"Outside left", Point{9, 40}, false},
		{"Outside above", Point{60, 19}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestBadgeRect(t *testing.T) {
	b := New(KindChangeX)
	b.Rect = Rect{X: 300, Y: 100, W: Width, H: Height}
	badge := b.BadgeRect()

	if badge.W != BadgeW || badge.H != BadgeH {
		t.Errorf("badge size = %vx%v, want %vx%v", badge.W, badge.H, float32(BadgeW), float32(BadgeH))
	}
	// anchored inside the block's right half, vertically centered
	if badge.X+badge.W > b.Rect.X+b.Rect.W {
		t.Errorf("badge sticks out right: %v > %v", badge.X+badge.W, b.Rect.X+b.Rect.W)
	}
	if badge.CenterY() != b.Rect.CenterY() {
		t.Errorf("badge not vertically centered: %v vs %v", badge.CenterY(), b.Rect.CenterY())
	}
}
