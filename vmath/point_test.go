package vmath

import "testing"

func TestAddWrapsBothEdges(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		v    Vector
		want Point
	}{
		{"negative x", Point{0, 3}, Vector{-1, 0}, Point{9, 3}},
		{"overflow x", Point{9, 3}, Vector{1, 0}, Point{0, 3}},
		{"negative y", Point{4, 0}, Vector{0, -1}, Point{4, 4}},
		{"overflow y", Point{4, 4}, Vector{0, 1}, Point{4, 0}},
		{"interior", Point{5, 2}, Vector{1, 0}, Point{6, 2}},
		{"zero", Point{5, 2}, Vector{0, 0}, Point{5, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Add(tt.p, tt.v, 10, 5)
			if got != tt.want {
				t.Errorf("Add(%v, %v) = %v, want %v", tt.p, tt.v, got, tt.want)
			}
		})
	}
}

func TestWrapStaysInRange(t *testing.T) {
	for max := 1; max <= 12; max++ {
		for x := 0; x < max; x++ {
			for delta := -1; delta <= 1; delta++ {
				got := wrap(x, delta, max)
				if got < 0 || got >= max {
					t.Fatalf("wrap(%d, %d, %d) = %d, out of [0,%d)", x, delta, max, got, max)
				}
			}
		}
	}
}

func TestWrapRoundTrip(t *testing.T) {
	for max := 1; max <= 12; max++ {
		for x := 0; x < max; x++ {
			if got := wrap(wrap(x, 1, max), -1, max); got != x {
				t.Errorf("round trip for x=%d max=%d gave %d", x, max, got)
			}
			if got := wrap(wrap(x, -1, max), 1, max); got != x {
				t.Errorf("reverse round trip for x=%d max=%d gave %d", x, max, got)
			}
		}
	}
}

func TestAddDoesNotMutate(t *testing.T) {
	p := Point{0, 0}
	_ = Add(p, Vector{-1, -1}, 3, 3)
	if p != (Point{0, 0}) {
		t.Errorf("input point mutated to %v", p)
	}
}

func TestWrapPanicsOnInvalidBound(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for zero bound")
		}
	}()
	wrap(0, 1, 0)
}

func TestWrapPanicsOnLargeDelta(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for delta larger than bound")
		}
	}()
	wrap(0, -7, 3)
}

func TestDirectionInverse(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		if d.Inverse().Inverse() != d {
			t.Errorf("%v: double inverse gave %v", d, d.Inverse().Inverse())
		}
		dv, iv := d.Delta(), d.Inverse().Delta()
		if dv.DX+iv.DX != 0 || dv.DY+iv.DY != 0 {
			t.Errorf("%v: delta %v and inverse delta %v do not cancel", d, dv, iv)
		}
	}
	if DirRight.Delta() != (Vector{1, 0}) {
		t.Errorf("Right delta = %v", DirRight.Delta())
	}
	if DirUp.Delta() != (Vector{0, -1}) {
		t.Errorf("Up delta = %v", DirUp.Delta())
	}
}
