package core

import (
	"testing"
	"time"
)

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 5, Y: 5, W: 10, H: 10},
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 15, Y: 0, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 0, Y: 15, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "touching edges",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 10, Y: 0, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "ball inside paddle",
			a:        RectF{X: 960, Y: 1060, W: 50, H: 5},
			b:        RectF{X: 970, Y: 1061, W: 10, H: 3},
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 9.5, Y: 9.5, W: 10, H: 10},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectFEdges(t *testing.T) {
	r := NewRectF(Vec2{X: 5, Y: 10}, 20, 15)

	if r.Left() != 5 || r.Top() != 10 {
		t.Errorf("Left/Top = (%v, %v), expected (5, 10)", r.Left(), r.Top())
	}
	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}
}

func TestVec2(t *testing.T) {
	v := Vec2{X: 1, Y: -2}.Add(Vec2{X: 3, Y: 4}).Scale(2)
	if v != (Vec2{X: 8, Y: 4}) {
		t.Errorf("Add/Scale = %+v, expected {8 4}", v)
	}
}

func TestRectIntersects(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	if !a.Intersects(NewRect(9, 9, 10, 10)) {
		t.Error("single cell overlap should intersect")
	}
	if a.Intersects(NewRect(10, 0, 10, 10)) {
		t.Error("adjacent rects should not intersect")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClockRestart(t *testing.T) {
	base := time.Unix(1000, 0)
	now := base
	c := NewClockWithSource(func() time.Time { return now })

	now = base.Add(16 * time.Millisecond)
	if got := c.Restart(); got != 16*time.Millisecond {
		t.Errorf("Restart() = %v, expected 16ms", got)
	}

	now = now.Add(4 * time.Millisecond)
	if got := c.Restart(); got != 4*time.Millisecond {
		t.Errorf("Restart() = %v, expected 4ms", got)
	}

	// Clock going backwards never produces a negative frame
	now = now.Add(-time.Second)
	if got := c.Restart(); got != 0 {
		t.Errorf("Restart() after going backwards = %v, expected 0", got)
	}
}

func TestEventHas(t *testing.T) {
	e := EventLifeLost | EventGameOver
	if !e.Has(EventLifeLost) || !e.Has(EventGameOver) {
		t.Errorf("Has() should report both set flags for %b", e)
	}
	if e.Has(EventSideRebound) {
		t.Error("Has(EventSideRebound) should be false")
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	if !f.Has(ActionLeft) || f.Has(ActionRight) {
		t.Errorf("unexpected frame contents: %v", f.Actions)
	}
	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear() should drop all actions")
	}

	var zero InputFrame
	if zero.Has(ActionLeft) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionQuit)
	if !zero.Has(ActionQuit) {
		t.Error("Set() on zero frame should allocate")
	}
}

func TestSnapshotTextures(t *testing.T) {
	s := Snapshot{Bodies: []Body{
		{Kind: BodySprite, Texture: "a.png"},
		{Kind: BodyBall},
		{Kind: BodySprite, Texture: "a.png"},
		{Kind: BodySprite, Texture: "b.png"},
	}}
	got := s.Textures()
	if len(got) != 2 || got[0] != "a.png" || got[1] != "b.png" {
		t.Errorf("Textures() = %v, expected [a.png b.png]", got)
	}
}
