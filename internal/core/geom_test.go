package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "single pixel overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestRectIntersectsAny(t *testing.T) {
	r := NewRect(10, 10, 5, 5)
	others := []Rect{
		NewRect(0, 0, 5, 5),
		NewRect(12, 12, 2, 2),
		NewRect(14, 14, 5, 5),
	}

	if got := r.IntersectsAny(others); got != 1 {
		t.Errorf("IntersectsAny() = %d, expected first overlap at 1", got)
	}
	if got := r.IntersectsAny(others[:1]); got != -1 {
		t.Errorf("IntersectsAny() = %d, expected -1", got)
	}
	if got := r.IntersectsAny(nil); got != -1 {
		t.Errorf("IntersectsAny(nil) = %d, expected -1", got)
	}
}

func TestRectInflate(t *testing.T) {
	tests := []struct {
		name   string
		r      Rect
		dw, dh int
		expect Rect
	}{
		{"shrink", NewRect(0, 0, 20, 20), -4, -4, NewRect(2, 2, 16, 16)},
		{"grow", NewRect(10, 10, 10, 10), 4, 2, NewRect(8, 9, 14, 12)},
		{"never negative", NewRect(0, 0, 2, 2), -10, -10, NewRect(1, 1, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Inflate(tc.dw, tc.dh); got != tc.expect {
				t.Errorf("Inflate(%d, %d) = %+v, expected %+v", tc.dw, tc.dh, got, tc.expect)
			}
		})
	}
}

func TestRectCenteredAt(t *testing.T) {
	r := NewRect(0, 0, 10, 6).CenteredAt(50, 50)
	if cx, cy := r.Center(); cx != 50 || cy != 50 {
		t.Errorf("Center() = (%d, %d), expected (50, 50)", cx, cy)
	}
	if r.W != 10 || r.H != 6 {
		t.Errorf("CenteredAt changed the size: %+v", r)
	}
}

func TestVec(t *testing.T) {
	a := V(3, 4)
	b := V(1, -2)

	if got := a.Add(b); got != V(4, 2) {
		t.Errorf("Add = %+v", got)
	}
	if got := a.Sub(b); got != V(2, 6) {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.Scale(0.5); got != V(1.5, 2) {
		t.Errorf("Scale = %+v", got)
	}
	if a.Len() != 5 {
		t.Errorf("Len = %f, expected 5", a.Len())
	}
}

func TestClampHelpers(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
		if got := ClampF(float64(tc.val), float64(tc.min), float64(tc.max)); got != float64(tc.expected) {
			t.Errorf("ClampF(%d, %d, %d) = %f, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}

	if Min(5, 10) != 5 || Max(5, 10) != 10 || Abs(-5) != 5 {
		t.Error("Min/Max/Abs returned wrong values")
	}
}
