package trait

import "fmt"

// Point is an immutable pair of same-typed coordinates. For any
// coordinate type T with an Add<T, T, T> instance (the Number
// constraint), Point[T] carries the component-wise instance
// Add<Point[T], Point[T], Point[T]>.
type Point[T Number] struct {
	X, Y T
}

func (p Point[T]) Add(rhs Point[T]) Point[T] {
	return Point[T]{
		X: p.X + rhs.X,
		Y: p.Y + rhs.Y,
	}
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// XShift is the specialized Add<Point[float32], float32, float32>
// instance: only the x coordinate participates in the sum. The y
// coordinate is ignored; the contract is exactly p.X + rhs.
//
// Go methods cannot be specialized per instantiation, so the
// specialized instance is a separate adapter type instead of a second
// Add method on Point.
type XShift struct {
	P Point[float32]
}

func (s XShift) Add(rhs float32) float32 {
	return s.P.X + rhs
}

func (s XShift) String() string {
	return s.P.String()
}
