package core

import "testing"

func TestBoundsContains(t *testing.T) {
	b := NewBounds(800, 600)

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"interior", 400, 300, true},
		{"origin corner", 0, 0, true},
		{"far corner (inclusive)", 800, 600, true},
		{"left of box", -0.1, 300, false},
		{"right of box", 800.1, 300, false},
		{"below box", 400, -0.1, false},
		{"above box", 400, 600.1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := b.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, expected %v", tc.x, tc.y, result, tc.expected)
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
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Errorf("Min(5, 10) = %d, expected 5", Min(5, 10))
	}
	if Max(5, 10) != 10 {
		t.Errorf("Max(5, 10) = %d, expected 10", Max(5, 10))
	}
	if Abs(-7) != 7 {
		t.Errorf("Abs(-7) = %d, expected 7", Abs(-7))
	}
	if Abs(7) != 7 {
		t.Errorf("Abs(7) = %d, expected 7", Abs(7))
	}
}

func TestDt(t *testing.T) {
	cfg := RuntimeConfig{TickRate: 50}
	if got := cfg.Dt(); got != 0.02 {
		t.Errorf("Dt() = %v, expected 0.02", got)
	}

	// Zero or negative tick rate falls back to 60 fps
	cfg.TickRate = 0
	if got := cfg.Dt(); got != 1.0/60.0 {
		t.Errorf("Dt() with zero tick rate = %v, expected %v", got, 1.0/60.0)
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionMainEngine) {
		t.Error("Empty frame should have no actions")
	}

	f.Set(ActionMainEngine)
	f.Set(ActionRotateCCW)

	if !f.Has(ActionMainEngine) || !f.Has(ActionRotateCCW) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRotateCW) {
		t.Error("Unset action should not be reported")
	}

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionMainEngine) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionMainEngine) {
		t.Error("Clone should be independent of the original")
	}
}
