package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LengthUnlimited is the Length of a dimension whose size is not fixed by the
// dataset definition, for example a time axis that grows with each ingest.
const LengthUnlimited = -1

// DimensionDefinition is one named axis of the dataset. The dataset definition
// owns the dimension; variables dimensioned by it hold shared references so
// every variable observes the same definition.
type DimensionDefinition struct {
	Name   string
	Length int
}

// IsUnlimited reports whether the dimension has a fixed length.
func (d *DimensionDefinition) IsUnlimited() bool {
	return d.Length == LengthUnlimited
}

// dimensionConfig is the document form of a dimension entry. Length accepts
// either a non-negative integer or the literal string "unlimited".
type dimensionConfig struct {
	Length dimensionLength `yaml:"length"`
}

type dimensionLength int

func (l *dimensionLength) UnmarshalYAML(value *yaml.Node) error {
	if value.Value == "unlimited" {
		*l = LengthUnlimited
		return nil
	}

	var length int
	if err := value.Decode(&length); err != nil {
		return fmt.Errorf("dimension length must be a non-negative integer or %q: %w", "unlimited", err)
	}
	if length < 0 {
		return fmt.Errorf("dimension length must be a non-negative integer or %q, got %d", "unlimited", length)
	}

	*l = dimensionLength(length)
	return nil
}
