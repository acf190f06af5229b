// Package cli is the entry logic of the traitkit binary: it wires the
// instance table, picks a scenario, and runs the two-phase dispatch
// demo.
package cli

import (
	"flag"
	"fmt"
	"io"

	"github.com/funvibe/traitkit/internal/config"
	"github.com/funvibe/traitkit/internal/registry"
	"github.com/funvibe/traitkit/internal/scenario"
	"github.com/funvibe/traitkit/internal/term"
	"github.com/funvibe/traitkit/pkg/trait"
)

// Run executes the CLI with the given arguments (excluding argv[0])
// and returns a process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("traitkit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	scenarioPath := fs.String("scenario", "", "run the demo over a YAML scenario file")
	listInstances := fs.Bool("instances", false, "list registered capability instances and exit")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	cfg, err := config.ParseEnv()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}
	if *scenarioPath == "" && cfg.Scenario != "" {
		*scenarioPath = cfg.Scenario
	}

	table := registry.NewTable()
	registry.RegisterBuiltinInstances(table)

	if *listInstances {
		printInstances(stdout, table)
		return 0
	}

	sc := scenario.Default()
	if *scenarioPath != "" {
		sc, err = scenario.Load(*scenarioPath)
		if err != nil {
			fmt.Fprintf(stderr, "Error loading scenario: %s\n", err)
			return 1
		}
	}

	return runDemo(sc, table, stdout, stderr, cfg.NoColor)
}

func runDemo(sc *scenario.Scenario, table *registry.Table, stdout, stderr io.Writer, noColor bool) int {
	header := func(text string) {
		if noColor {
			return
		}
		term.Header(stderr, text)
	}

	// Static dispatch: the Point instance resolves at compile time.
	header("static dispatch")
	sum := trait.Plus(sc.Static.A.Point(), sc.Static.B.Point())
	fmt.Fprintf(stdout, "%v %v\n", sum.X, sum.Y)

	// Dynamic dispatch: each element is erased behind its captured
	// closure, then added to the same scalar.
	header("dynamic dispatch")
	elems, err := wrapElements(sc, table)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}
	for _, lhs := range elems {
		s := trait.PlusDyn(lhs, sc.Dynamic.Rhs)
		fmt.Fprintf(stdout, "sum = %v\n", s)
	}
	return 0
}

func wrapElements(sc *scenario.Scenario, table *registry.Table) ([]trait.Dyn[float32, float32], error) {
	elems := make([]trait.Dyn[float32, float32], 0, len(sc.Dynamic.Elements))
	for i, el := range sc.Dynamic.Elements {
		self, err := el.Self()
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		d, err := registry.WrapDynamic[float32, float32](table, self)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		elems = append(elems, d)
	}
	return elems, nil
}

func printInstances(w io.Writer, table *registry.Table) {
	fmt.Fprintln(w, "Registered instances:")
	fmt.Fprintln(w)
	for _, row := range table.Instances() {
		fmt.Fprintf(w, "  %-6s %-35s %s\n", row.Trait, row.Key, row.ID)
	}
}
