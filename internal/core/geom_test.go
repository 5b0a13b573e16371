package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(5, 5, 10, 10)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 10, 10, true},
		{"top-left corner", 5, 5, true},
		{"bottom-right inside", 14, 14, true},
		{"right edge (exclusive)", 15, 10, false},
		{"bottom edge (exclusive)", 10, 15, false},
		{"left of rect", 4, 10, false},
		{"above rect", 10, 4, false},
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
	r := NewRect(2, 3, 4, 5)

	if r.Right() != 6 {
		t.Errorf("Right() = %d, expected 6", r.Right())
	}
	if r.Bottom() != 8 {
		t.Errorf("Bottom() = %d, expected 8", r.Bottom())
	}

	moved := r.Offset(10, -1)
	if moved.X != 12 || moved.Y != 2 || moved.W != 4 || moved.H != 5 {
		t.Errorf("Offset(10, -1) = %+v, expected {12 2 4 5}", moved)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 0, 0},
		{2, 0, 2, 2},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}
