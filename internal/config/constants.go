package config

// Built-in trait and method names
const (
	AddTraitName  = "Add"
	AddMethodName = "(+)"
)

// Scenario element kinds
const (
	KindFloat = "float"
	KindPoint = "point"
)

// DemoRhs is the scalar added to every element in the default
// dynamic-dispatch demo.
const DemoRhs float32 = 1.2
