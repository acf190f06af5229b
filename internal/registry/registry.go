// Package registry is the run-time half of the Add capability: an
// instance table keyed by type names, used when concrete types are
// only known at run time (scenario files, introspection). The static
// generics path in pkg/trait never consults it; tests pin that both
// paths agree.
package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Fn is a type-erased trait method: self and rhs arrive as any and
// the implementation asserts them back to its concrete types.
type Fn func(self, rhs any) (any, error)

// MethodTable holds the methods of one registered instance.
type MethodTable struct {
	// ID identifies the registration, for the -instances listing.
	ID      string
	Methods map[string]Fn
}

// Table maps trait name -> instance key -> method table. An instance
// key is either the full (Self, Rhs, Out) triple joined with "_", or
// the bare Self name standing for the defaulted triple Rhs = Out =
// Self.
type Table struct {
	Implementations map[string]map[string]*MethodTable
}

func NewTable() *Table {
	return &Table{
		Implementations: make(map[string]map[string]*MethodTable),
	}
}

// TripleKey forms the exact instance key for a (Self, Rhs, Out) triple.
func TripleKey(self, rhs, out string) string {
	return strings.Join([]string{self, rhs, out}, "_")
}

// TypeName is the instance-key spelling of a value's dynamic type:
// %T with the package qualifier stripped, e.g. "Point[float32]" or
// "float32".
func TypeName(v any) string {
	name := fmt.Sprintf("%T", v)
	base := name
	if i := strings.IndexByte(name, '['); i >= 0 {
		base = name[:i]
	}
	if j := strings.LastIndexByte(base, '.'); j >= 0 {
		name = name[j+1:]
	}
	return name
}

// Register adds an instance under the given key. Registering the same
// key again overrides the previous instance.
func (t *Table) Register(trait, key string, methods map[string]Fn) {
	if _, ok := t.Implementations[trait]; !ok {
		t.Implementations[trait] = make(map[string]*MethodTable)
	}
	t.Implementations[trait][key] = &MethodTable{
		ID:      uuid.NewString(),
		Methods: methods,
	}
}

// Lookup resolves the instance for a (Self, Rhs, Out) triple. The
// most specific registration wins: the exact triple key is tried
// first, then the bare Self key, which only matches the defaulted
// triple Rhs = Out = Self.
func (t *Table) Lookup(trait, self, rhs, out string) (*MethodTable, error) {
	typesMap, ok := t.Implementations[trait]
	if !ok {
		return nil, fmt.Errorf("unknown trait: %s", trait)
	}
	if table, ok := typesMap[TripleKey(self, rhs, out)]; ok {
		return table, nil
	}
	if rhs == self && out == self {
		if table, ok := typesMap[self]; ok {
			return table, nil
		}
	}
	return nil, fmt.Errorf("no instance of %s for %s", trait, TripleKey(self, rhs, out))
}

// Method resolves one method of an instance.
func (t *Table) Method(trait, self, rhs, out, name string) (Fn, error) {
	table, err := t.Lookup(trait, self, rhs, out)
	if err != nil {
		return nil, err
	}
	fn, ok := table.Methods[name]
	if !ok {
		return nil, fmt.Errorf("instance %s for %s has no method %s", trait, self, name)
	}
	return fn, nil
}

// InstanceRow is one line of the introspection listing.
type InstanceRow struct {
	Trait string
	Key   string
	ID    string
}

// Instances returns every registration, sorted by trait then key.
func (t *Table) Instances() []InstanceRow {
	var rows []InstanceRow
	for trait, typesMap := range t.Implementations {
		for key, table := range typesMap {
			rows = append(rows, InstanceRow{Trait: trait, Key: key, ID: table.ID})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Trait != rows[j].Trait {
			return rows[i].Trait < rows[j].Trait
		}
		return rows[i].Key < rows[j].Key
	})
	return rows
}
