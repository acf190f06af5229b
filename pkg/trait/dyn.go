package trait

import "fmt"

// Dyn erases the concrete Self behind an Add instance, keeping only
// the (Rhs, Out) call shape. It stores a description of the wrapped
// snapshot and a closure over an owned copy of the value; the closure
// is the only dispatch path, one indirection per call.
//
// Dyn itself satisfies Adder[Rhs, Out], so heterogeneous collections
// of wrappers dispatch per element.
type Dyn[Rhs, Out any] struct {
	desc string
	call func(Rhs) Out
}

// Wrap erases v. Rhs and Out are given explicitly, like the type
// arguments of dyn Add<Rhs, Out>; Self is inferred from the argument.
// The method value v.Add captures a copy of v, so the wrapper owns
// its snapshot: mutating the original afterwards cannot be observed
// through the wrapper.
func Wrap[Rhs, Out any, Self Adder[Rhs, Out]](v Self) Dyn[Rhs, Out] {
	return Dyn[Rhs, Out]{
		desc: fmt.Sprintf("%v", v),
		call: v.Add,
	}
}

// WrapFunc erases a bare implementation function. Used by the runtime
// instance registry, which resolves the implementation itself and only
// needs the captured-call shape.
func WrapFunc[Rhs, Out any](desc string, fn func(Rhs) Out) Dyn[Rhs, Out] {
	return Dyn[Rhs, Out]{desc: desc, call: fn}
}

// Add invokes the stored closure.
func (d Dyn[Rhs, Out]) Add(rhs Rhs) Out {
	return d.call(rhs)
}

func (d Dyn[Rhs, Out]) String() string {
	return "dyn " + d.desc
}
