package registry

import (
	"fmt"

	"github.com/funvibe/traitkit/internal/config"
	"github.com/funvibe/traitkit/pkg/trait"
)

// Instance adapts a typed implementation into a registry Fn.
func Instance[Self, Rhs, Out any](fn func(Self, Rhs) Out) Fn {
	return func(self, rhs any) (any, error) {
		s, ok := self.(Self)
		if !ok {
			return nil, fmt.Errorf("type mismatch in %s: self is %s", config.AddMethodName, TypeName(self))
		}
		r, ok := rhs.(Rhs)
		if !ok {
			return nil, fmt.Errorf("type mismatch in %s: rhs is %s", config.AddMethodName, TypeName(rhs))
		}
		return fn(s, r), nil
	}
}

// RegisterBuiltinInstances registers the Add instances every run
// starts with: one scalar instance per built-in numeric type, one
// component-wise Point instance per coordinate type, and the
// specialized Point[float32]+float32 instance.
func RegisterBuiltinInstances(t *Table) {
	registerScalarInstances(t)
	registerPointInstances(t)
	registerShiftInstances(t)
}

func registerScalarInstances(t *Table) {
	registerScalar[int](t)
	registerScalar[int8](t)
	registerScalar[int16](t)
	registerScalar[int32](t)
	registerScalar[int64](t)
	registerScalar[uint](t)
	registerScalar[uint8](t)
	registerScalar[uint16](t)
	registerScalar[uint32](t)
	registerScalar[uint64](t)
	registerScalar[float32](t)
	registerScalar[float64](t)
}

func registerScalar[T trait.Number](t *Table) {
	var zero T
	t.Register(config.AddTraitName, TypeName(zero), map[string]Fn{
		config.AddMethodName: Instance(func(a, b T) T { return trait.Sum(a, b) }),
	})
}

func registerPointInstances(t *Table) {
	registerPoint[int](t)
	registerPoint[int32](t)
	registerPoint[int64](t)
	registerPoint[float32](t)
	registerPoint[float64](t)
}

func registerPoint[T trait.Number](t *Table) {
	t.Register(config.AddTraitName, TypeName(trait.Point[T]{}), map[string]Fn{
		config.AddMethodName: Instance(func(a, b trait.Point[T]) trait.Point[T] {
			return trait.Plus(a, b)
		}),
	})
}

func registerShiftInstances(t *Table) {
	// The specialized triple. Its exact key outranks the bare
	// Point[float32] key on lookup.
	var f float32
	key := TripleKey(TypeName(trait.Point[float32]{}), TypeName(f), TypeName(f))
	t.Register(config.AddTraitName, key, map[string]Fn{
		config.AddMethodName: Instance(func(p trait.Point[float32], rhs float32) float32 {
			return trait.PlusAs[float32, float32](trait.XShift{P: p}, rhs)
		}),
	})
}
