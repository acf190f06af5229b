package trait

import "fmt"

// Scalar adapts a built-in numeric to the Add capability. It is the
// instance every Number gets for free: Add<T, T, T> via native +.
type Scalar[T Number] struct {
	V T
}

// Of wraps a numeric value as its Scalar instance.
func Of[T Number](v T) Scalar[T] {
	return Scalar[T]{V: v}
}

func (s Scalar[T]) Add(rhs T) T {
	return s.V + rhs
}

func (s Scalar[T]) String() string {
	return fmt.Sprintf("%v", s.V)
}
