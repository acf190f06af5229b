package trait

// Operator sugar. Go has no operator overloading, so + maps to named
// free functions with the same two entry points the capability
// defines: statically typed operands and a type-erased wrapper.

// Plus is operator+ for the defaulted triple Add<Self, Self, Self>:
// both operands and the result share one type, as with Point[T].
func Plus[Self Adder[Self, Self]](lhs, rhs Self) Self {
	return lhs.Add(rhs)
}

// PlusAs is operator+ for an arbitrary (Self, Rhs, Out) triple. Rhs
// and Out are given explicitly; Self is inferred:
//
//	PlusAs[float32, float32](XShift{P: p}, 1.2)
func PlusAs[Rhs, Out any, Self Adder[Rhs, Out]](lhs Self, rhs Rhs) Out {
	return lhs.Add(rhs)
}

// Sum is operator+ for raw built-in numerics: it constructs the
// Scalar instance for lhs and invokes its Add.
func Sum[T Number](lhs, rhs T) T {
	return Of(lhs).Add(rhs)
}

// PlusDyn is operator+ for a type-erased wrapper; it forwards to the
// wrapper's stored closure.
func PlusDyn[Rhs, Out any](lhs Dyn[Rhs, Out], rhs Rhs) Out {
	return lhs.Add(rhs)
}
