package registry

import (
	"fmt"

	"github.com/funvibe/traitkit/internal/config"
	"github.com/funvibe/traitkit/pkg/trait"
)

// WrapDynamic builds a type-erased trait.Dyn for v from the instance
// table, resolving the (Self, Rhs, Out) triple from v's dynamic type
// and the explicit Rhs/Out type arguments. The returned wrapper closes
// over v exactly as the static trait.Wrap does, so both paths produce
// the same results.
func WrapDynamic[Rhs, Out any](t *Table, v any) (trait.Dyn[Rhs, Out], error) {
	var rhsZero Rhs
	var outZero Out
	fn, err := t.Method(config.AddTraitName, TypeName(v), TypeName(rhsZero), TypeName(outZero), config.AddMethodName)
	if err != nil {
		return trait.Dyn[Rhs, Out]{}, err
	}
	call := func(rhs Rhs) Out {
		res, err := fn(v, rhs)
		if err != nil {
			// The instance was resolved against v's type at wrap
			// time; a mismatch on call is a registration bug.
			panic(err)
		}
		return res.(Out)
	}
	return trait.WrapFunc(fmt.Sprintf("%v", v), call), nil
}
