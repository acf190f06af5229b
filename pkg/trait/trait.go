// Package trait implements the Add capability: a small trait-style
// contract with both compile-time dispatch (generics, resolved
// structurally) and run-time dispatch (type-erased wrappers holding a
// captured closure).
package trait

// Number is the set of built-in numeric types. Addition on a Number
// is the platform's native arithmetic, overflow and rounding included.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Adder is the Add capability for a fixed (Rhs, Out) pair. Self is
// the receiver: a type S satisfies Add<S, Rhs, Out> iff S implements
// Adder[Rhs, Out]. Resolution on this path is structural and happens
// at compile time; a type with no matching instance does not build.
type Adder[Rhs, Out any] interface {
	Add(rhs Rhs) Out
}

// Static instance checks. Each line is the Go spelling of the concept
// check "does this (Self, Rhs, Out) triple resolve".
var _ Adder[int, int] = Scalar[int]{}
var _ Adder[float32, float32] = Scalar[float32]{}
var _ Adder[Point[int], Point[int]] = Point[int]{}
var _ Adder[Point[float32], Point[float32]] = Point[float32]{}
var _ Adder[float32, float32] = XShift{}
var _ Adder[float32, float32] = Dyn[float32, float32]{}
var _ Adder[Point[int], Point[int]] = Dyn[Point[int], Point[int]]{}
