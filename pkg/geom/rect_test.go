package geom

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlap", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"touching edge", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"disjoint", NewRect(0, 0, 10, 10), NewRect(20, 20, 5, 5), false},
		{"nested", NewRect(0, 0, 10, 10), NewRect(2, 2, 2, 2), true},
		{"empty width", NewRect(0, 0, 0, 10), NewRect(0, 0, 10, 10), false},
		{"negative height", NewRect(0, 0, 10, 10), NewRect(0, 5, 10, -3), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("Intersects() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	outer := NewRect(0, 0, 100, 50)
	tests := []struct {
		name  string
		inner Rect
		want  bool
	}{
		{"inside", NewRect(10, 10, 20, 20), true},
		{"same", outer, true},
		{"on edge", NewRect(90, 40, 10, 10), true},
		{"straddles", NewRect(90, 40, 20, 10), false},
		{"zero size inside", NewRect(50, 25, 0, 0), true},
		{"outside", NewRect(200, 0, 1, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outer.Contains(tt.inner); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.inner, got, tt.want)
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	a := NewRect(10, 10, 10, 10)
	b := NewRect(40, 0, 0, 0)
	want := NewRect(10, 0, 30, 20)
	if got := a.Union(b); got != want {
		t.Errorf("Union() = %v, want %v", got, want)
	}
}

func TestBounds(t *testing.T) {
	if _, ok := Bounds(nil); ok {
		t.Error("Bounds(nil) should report !ok")
	}
	got, ok := Bounds([]Rect{NewRect(5, 5, 5, 5), NewRect(0, 20, 2, 2), NewRect(30, 1, 1, 1)})
	if !ok {
		t.Fatal("Bounds() reported !ok")
	}
	if want := NewRect(0, 1, 31, 21); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func TestRectAreaAndOutset(t *testing.T) {
	r := NewRect(10, 10, 4, 3)
	if r.Area() != 12 {
		t.Errorf("Area() = %d, want 12", r.Area())
	}
	if got, want := r.Outset(1), NewRect(9, 9, 6, 5); got != want {
		t.Errorf("Outset(1) = %v, want %v", got, want)
	}
	if NewRect(0, 0, -1, 5).Area() != 0 {
		t.Error("negative rect should have zero area")
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range []Direction{North, South, East, West} {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v.Opposite().Opposite() = %v", d, d.Opposite().Opposite())
		}
		if d.Opposite() == d {
			t.Errorf("%v.Opposite() returned itself", d)
		}
	}
}
