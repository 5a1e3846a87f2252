package gmath

import "testing"

func TestRangeInclude(t *testing.T) {
	var r Range
	r.Include(5)
	r.Include(-3)

	if r.Lo() != -3 {
		t.Errorf("Lo() = %v, expected -3", r.Lo())
	}
	if r.Hi() != 5 {
		t.Errorf("Hi() = %v, expected 5", r.Hi())
	}
	if r.Span() != 8 {
		t.Errorf("Span() = %v, expected 8", r.Span())
	}
	if r.Mid() != 1.0 {
		t.Errorf("Mid() = %v, expected 1.0", r.Mid())
	}
}

func TestRangeFirstIncludeCollapses(t *testing.T) {
	var r Range
	r.Include(7)
	if r.Lo() != 7 || r.Hi() != 7 {
		t.Errorf("after first Include: lo=%v hi=%v, expected both 7", r.Lo(), r.Hi())
	}
	if r.Span() != 0 {
		t.Errorf("Span() = %v, expected 0", r.Span())
	}
}

func TestRangeUninitializedPanics(t *testing.T) {
	reads := map[string]func(r Range){
		"Lo":       func(r Range) { r.Lo() },
		"Hi":       func(r Range) { r.Hi() },
		"Span":     func(r Range) { r.Span() },
		"Mid":      func(r Range) { r.Mid() },
		"Contains": func(r Range) { r.Contains(0) },
		"Clamp":    func(r Range) { r.Clamp(0) },
		"ClampHi":  func(r Range) { r.ClampHi(0) },
		"ClampLo":  func(r Range) { r.ClampLo(0) },
	}

	for name, read := range reads {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s on uninitialized Range did not panic", name)
				}
			}()
			read(Range{})
		})
	}
}

func TestRangeContainsAndClamp(t *testing.T) {
	r := NewRange(-15, 27)

	tests := []struct {
		val      float64
		contains bool
	}{
		{-20, false},
		{30, false},
		{0, true},
		{27, true},
		{-15, true},
	}
	for _, tc := range tests {
		if got := r.Contains(tc.val); got != tc.contains {
			t.Errorf("Contains(%v) = %v, expected %v", tc.val, got, tc.contains)
		}
	}

	if got := r.Clamp(99); got != 27 {
		t.Errorf("Clamp(99) = %v, expected 27", got)
	}
	if got := r.Clamp(-99); got != -15 {
		t.Errorf("Clamp(-99) = %v, expected -15", got)
	}
	if got := r.ClampHi(-30); got != -30 {
		t.Errorf("ClampHi(-30) = %v, expected -30", got)
	}
	if got := r.ClampHi(99); got != 27 {
		t.Errorf("ClampHi(99) = %v, expected 27", got)
	}
	if got := r.ClampLo(99); got != 99 {
		t.Errorf("ClampLo(99) = %v, expected 99", got)
	}
	if got := r.ClampLo(-30); got != -15 {
		t.Errorf("ClampLo(-30) = %v, expected -15", got)
	}
}

func TestRangeIncludeRange(t *testing.T) {
	a := NewRange(0, 10)
	b := NewRange(-5, 3)
	a.IncludeRange(b)

	if a.Lo() != -5 || a.Hi() != 10 {
		t.Errorf("IncludeRange: lo=%v hi=%v, expected -5 and 10", a.Lo(), a.Hi())
	}
}

func TestRangeUnorderedConstructor(t *testing.T) {
	r := NewRange(9, -2)
	if r.Lo() != -2 || r.Hi() != 9 {
		t.Errorf("NewRange(9, -2): lo=%v hi=%v, expected -2 and 9", r.Lo(), r.Hi())
	}
}
