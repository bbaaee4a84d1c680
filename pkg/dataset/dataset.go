// Package dataset materializes an in-memory labeled dataset from a parsed
// dataset definition. It is the consumer of the schema package's variable
// records: each definition becomes one labeled-array entry, split into
// coordinates and data variables the way downstream array libraries expect.
package dataset

import (
	"github.com/maxwellevin/tsdat/pkg/schema"
)

// Dataset is the initialized form of a dataset definition. Variables that
// carry predefined or injected data have their payloads attached; everything
// else starts with an empty data slice.
type Dataset struct {
	Attrs map[string]any

	// Dims maps dimension names to their declared lengths,
	// schema.LengthUnlimited for axes with no fixed size.
	Dims map[string]int

	Coords   map[string]schema.Variable
	DataVars map[string]schema.Variable
}

// New builds a dataset from a definition. The definition is not modified and
// stays usable for later data injection followed by another New call.
func New(definition *schema.DatasetDefinition) *Dataset {
	ds := &Dataset{
		Attrs:    make(map[string]any, len(definition.Attrs)),
		Dims:     make(map[string]int, len(definition.Dimensions)),
		Coords:   map[string]schema.Variable{},
		DataVars: map[string]schema.Variable{},
	}

	for name, attr := range definition.Attrs {
		ds.Attrs[name] = attr.Value
	}
	for name, dim := range definition.Dimensions {
		ds.Dims[name] = dim.Length
	}
	for _, variable := range definition.CoordinateVariables() {
		ds.Coords[variable.Name] = variable.ToVariable()
	}
	for _, variable := range definition.DataVariables() {
		ds.DataVars[variable.Name] = variable.ToVariable()
	}

	return ds
}
