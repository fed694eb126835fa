package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(3, 2, 5, 4)
	if r.Right() != 8 || r.Bottom() != 6 {
		t.Errorf("Right(), Bottom() = %d, %d, expected 8, 6", r.Right(), r.Bottom())
	}
}

func TestMinMax(t *testing.T) {
	tests := []struct {
		a, b     int
		min, max int
	}{
		{1, 2, 1, 2},
		{2, 1, 1, 2},
		{-4, 0, -4, 0},
		{7, 7, 7, 7},
	}

	for _, tt := range tests {
		if got := Min(tt.a, tt.b); got != tt.min {
			t.Errorf("Min(%d, %d) = %d, expected %d", tt.a, tt.b, got, tt.min)
		}
		if got := Max(tt.a, tt.b); got != tt.max {
			t.Errorf("Max(%d, %d) = %d, expected %d", tt.a, tt.b, got, tt.max)
		}
	}
}

func TestRectFEdges(t *testing.T) {
	r := NewRectF(10, 20, 40, 80)
	tests := []struct {
		name          string
		got, expected float64
	}{
		{"Right", r.Right(), 50},
		{"Bottom", r.Bottom(), 100},
		{"CenterX", r.CenterX(), 30},
		{"CenterY", r.CenterY(), 60},
	}

	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("%s() = %v, expected %v", tt.name, tt.got, tt.expected)
		}
	}
}

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{"overlapping", NewRectF(0, 0, 10, 10), NewRectF(9.5, 9.5, 10, 10), true},
		{"touching right edge", NewRectF(0, 0, 10, 10), NewRectF(10, 0, 10, 10), false},
		{"touching bottom edge", NewRectF(0, 0, 10, 10), NewRectF(0, 10, 10, 10), false},
		{"one pixel probe below", NewRectF(0, 1, 10, 10), NewRectF(0, 10, 10, 10), true},
		{"apart", NewRectF(0, 0, 10, 10), NewRectF(30, 30, 1, 1), false},
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

func TestRectFSetters(t *testing.T) {
	r := NewRectF(0, 0, 40, 80)

	r.SetBottom(520)
	if r.Y != 440 {
		t.Errorf("SetBottom(520) gave Y = %v, expected 440", r.Y)
	}

	r.SetRight(100)
	if r.X != 60 {
		t.Errorf("SetRight(100) gave X = %v, expected 60", r.X)
	}

	r.SetCenterX(200)
	if r.CenterX() != 200 {
		t.Errorf("CenterX() = %v, expected 200", r.CenterX())
	}

	r.SetCenterY(300)
	if r.Y != 260 {
		t.Errorf("SetCenterY(300) gave Y = %v, expected 260", r.Y)
	}

	moved := r.Offset(0, 1)
	if moved.Y != r.Y+1 || moved.X != r.X {
		t.Errorf("Offset(0, 1) = %+v, expected one pixel lower than %+v", moved, r)
	}
}

func TestRectFCells(t *testing.T) {
	tests := []struct {
		name     string
		r        RectF
		expected Rect
	}{
		{"aligned block", NewRectF(40, 40, 40, 40), NewRect(4, 2, 4, 2)},
		{"partial cells round outward", NewRectF(45, 30, 10, 15), NewRect(4, 1, 2, 2)},
		{"tiny rect covers one cell", NewRectF(12, 12, 1, 1), NewRect(1, 0, 1, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.r.Cells(10, 20)
			if got != tc.expected {
				t.Errorf("Cells(10, 20) = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}
