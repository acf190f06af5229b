// Package scenario loads the values one demo run works over. A
// scenario names the two statically-added points, the scalar added on
// the dynamic path, and the heterogeneous list of values to erase and
// dispatch per element.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/traitkit/internal/config"
	"github.com/funvibe/traitkit/pkg/trait"
)

// PointSpec is one point literal in a scenario file.
type PointSpec struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

func (p PointSpec) Point() trait.Point[float32] {
	return trait.Point[float32]{X: p.X, Y: p.Y}
}

// Element is one entry of the dynamic-dispatch list. Kind selects the
// wrapped value: "float" uses Value, "point" uses Point.
type Element struct {
	Kind  string    `yaml:"kind"`
	Value float32   `yaml:"value"`
	Point PointSpec `yaml:"point"`
}

// Self returns the value the element wraps.
func (e Element) Self() (any, error) {
	switch e.Kind {
	case config.KindFloat:
		return e.Value, nil
	case config.KindPoint:
		return e.Point.Point(), nil
	default:
		return nil, fmt.Errorf("unknown element kind: %q", e.Kind)
	}
}

// Static is the compile-time-dispatch half of a scenario.
type Static struct {
	A PointSpec `yaml:"a"`
	B PointSpec `yaml:"b"`
}

// Dynamic is the run-time-dispatch half of a scenario.
type Dynamic struct {
	Rhs      float32   `yaml:"rhs"`
	Elements []Element `yaml:"elements"`
}

// Scenario drives one run of the demo.
type Scenario struct {
	Static  Static  `yaml:"static"`
	Dynamic Dynamic `yaml:"dynamic"`
}

// Default returns the built-in scenario: (1,1)+(2,2) statically, then
// a wrapped float 1.2 and a wrapped point (1,1), each + 1.2
// dynamically.
func Default() *Scenario {
	return &Scenario{
		Static: Static{
			A: PointSpec{X: 1, Y: 1},
			B: PointSpec{X: 2, Y: 2},
		},
		Dynamic: Dynamic{
			Rhs: config.DemoRhs,
			Elements: []Element{
				{Kind: config.KindFloat, Value: 1.2},
				{Kind: config.KindPoint, Point: PointSpec{X: 1, Y: 1}},
			},
		},
	}
}

// Load reads and decodes a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return Decode(data)
}

// Decode parses scenario YAML and validates element kinds.
func Decode(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("YAML parse error: %v", err)
	}
	for i, el := range s.Dynamic.Elements {
		if _, err := el.Self(); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
	}
	return &s, nil
}
