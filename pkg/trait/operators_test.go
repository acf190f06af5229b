package trait

import (
	"fmt"
	"testing"
)

func TestPlusPoints(t *testing.T) {
	a := Point[float32]{X: 1, Y: 1}
	b := Point[float32]{X: 2, Y: 2}

	sum := Plus(a, b)
	if want := (Point[float32]{X: 3, Y: 3}); sum != want {
		t.Fatalf("Plus(a, b) = %v, want %v", sum, want)
	}
	if got, want := fmt.Sprintf("%v %v", sum.X, sum.Y), "3 3"; got != want {
		t.Errorf("printed line = %q, want %q", got, want)
	}
}

func TestPlusAsSpecialized(t *testing.T) {
	p := Point[float32]{X: 1, Y: 1}
	got := PlusAs[float32, float32](XShift{P: p}, 1.2)
	if want := float32(2.2); got != want {
		t.Errorf("PlusAs = %v, want %v", got, want)
	}
}

func TestSum(t *testing.T) {
	if got := Sum(2, 3); got != 5 {
		t.Errorf("Sum(2, 3) = %v, want 5", got)
	}
	if got := Sum(int8(120), int8(7)); got != 127 {
		t.Errorf("Sum(int8) = %v, want 127", got)
	}
	if got := Sum(float32(1.2), float32(1.2)); got != 2.4 {
		t.Errorf("Sum(1.2, 1.2) = %v, want 2.4", got)
	}
	if got := Sum(1.5, 2.25); got != 3.75 {
		t.Errorf("Sum(1.5, 2.25) = %v, want 3.75", got)
	}
	// Native overflow semantics, untouched.
	if got := Sum(int8(127), int8(1)); got != -128 {
		t.Errorf("Sum(127, 1) = %v, want -128", got)
	}
}

func TestPlusDynForwards(t *testing.T) {
	lhs := []Dyn[float32, float32]{
		Wrap[float32, float32](Of(float32(1.2))),
		Wrap[float32, float32](XShift{P: Point[float32]{X: 1, Y: 1}}),
	}
	want := []float32{2.4, 2.2}

	for i, d := range lhs {
		if got := PlusDyn(d, 1.2); got != want[i] {
			t.Errorf("element %d: PlusDyn = %v, want %v", i, got, want[i])
		}
		if got, direct := PlusDyn(d, 1.2), d.Add(1.2); got != direct {
			t.Errorf("element %d: PlusDyn = %v, Add = %v", i, got, direct)
		}
	}
}
