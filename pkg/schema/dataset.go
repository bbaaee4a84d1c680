package schema

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// SupportedSchemaMajorVersion is the major version of the dataset definition
// document format this package reads. Documents may pin their format with a
// schema_version field; a different major version is rejected at parse time.
const SupportedSchemaMajorVersion = 1

// DatasetDefinition is the full schema for one dataset: document-level
// attributes, the dimension table, and the variable definitions built against
// it. Dimensions are owned here and shared by reference with every variable
// dimensioned by them.
type DatasetDefinition struct {
	SchemaVersion string
	Attrs         map[string]AttributeDefinition
	Dimensions    map[string]*DimensionDefinition

	// Variables holds the variable definitions in document order.
	Variables []*VariableDefinition

	dimensionNames  []string
	variablesByName map[string]*VariableDefinition
}

// definitionDocument is the YAML form of a dataset definition. Dimensions and
// variables stay yaml.Node so that document order is preserved and variable
// configurations keep their unconsumed keys.
type definitionDocument struct {
	SchemaVersion string         `yaml:"schema_version"`
	Attrs         map[string]any `yaml:"attrs"`
	Dimensions    yaml.Node      `yaml:"dimensions"`
	Variables     yaml.Node      `yaml:"variables"`
}

// ParseDefinition parses a dataset definition document. The dimension table is
// built before any variable, so variables may reference any dimension declared
// anywhere in the document. Parsing is atomic: on error no partial definition
// is returned.
func ParseDefinition(contents []byte) (*DatasetDefinition, error) {
	var document definitionDocument
	if err := yaml.Unmarshal(contents, &document); err != nil {
		return nil, err
	}

	if err := checkSchemaVersion(document.SchemaVersion); err != nil {
		return nil, err
	}

	definition := &DatasetDefinition{
		SchemaVersion:   document.SchemaVersion,
		Attrs:           map[string]AttributeDefinition{},
		Dimensions:      map[string]*DimensionDefinition{},
		variablesByName: map[string]*VariableDefinition{},
	}

	for attrName, attrValue := range document.Attrs {
		definition.Attrs[attrName] = AttributeDefinition{Name: attrName, Value: attrValue}
	}

	err := eachMappingEntry(&document.Dimensions, func(name string, value *yaml.Node) error {
		var config dimensionConfig
		if err := value.Decode(&config); err != nil {
			return fmt.Errorf("invalid dimension %q: %w", name, err)
		}
		definition.Dimensions[name] = &DimensionDefinition{Name: name, Length: int(config.Length)}
		definition.dimensionNames = append(definition.dimensionNames, name)
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = eachMappingEntry(&document.Variables, func(name string, value *yaml.Node) error {
		var config map[string]any
		if err := value.Decode(&config); err != nil {
			return fmt.Errorf("invalid variable %q: %w", name, err)
		}
		variable, err := NewVariableDefinition(name, config, definition.Dimensions)
		if err != nil {
			return fmt.Errorf("invalid variable %q: %w", name, err)
		}
		definition.Variables = append(definition.Variables, variable)
		definition.variablesByName[name] = variable
		return nil
	})
	if err != nil {
		return nil, err
	}

	return definition, nil
}

func checkSchemaVersion(schemaVersion string) error {
	if schemaVersion == "" {
		return nil
	}
	version, err := semver.NewVersion(schemaVersion)
	if err != nil {
		return fmt.Errorf("invalid schema_version %q: %w", schemaVersion, err)
	}
	if version.Major() != SupportedSchemaMajorVersion {
		return fmt.Errorf("schema_version %s in dataset definition does not match the supported major version %d", schemaVersion, SupportedSchemaMajorVersion)
	}
	return nil
}

// eachMappingEntry walks the key/value pairs of a YAML mapping node in
// document order. A zero node (the field was absent) walks nothing.
func eachMappingEntry(node *yaml.Node, fn func(name string, value *yaml.Node) error) error {
	if node.Kind == 0 || node.Tag == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("expected a mapping, got %s", node.Tag)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if err := fn(node.Content[i].Value, node.Content[i+1]); err != nil {
			return err
		}
	}
	return nil
}

// Variable returns the variable definition with the given name.
func (d *DatasetDefinition) Variable(name string) (*VariableDefinition, error) {
	variable, ok := d.variablesByName[name]
	if !ok {
		return nil, errorVariableNotFound(name)
	}
	return variable, nil
}

// CoordinateVariables returns the variables that name their own axis, in
// document order.
func (d *DatasetDefinition) CoordinateVariables() []*VariableDefinition {
	var coordinates []*VariableDefinition
	for _, variable := range d.Variables {
		if variable.IsCoordinate() {
			coordinates = append(coordinates, variable)
		}
	}
	return coordinates
}

// DataVariables returns the variables that are not coordinate variables, in
// document order.
func (d *DatasetDefinition) DataVariables() []*VariableDefinition {
	var dataVariables []*VariableDefinition
	for _, variable := range d.Variables {
		if !variable.IsCoordinate() {
			dataVariables = append(dataVariables, variable)
		}
	}
	return dataVariables
}

// InputVariables returns the variables that declare an input source, in
// document order. These are the variables a retriever must populate.
func (d *DatasetDefinition) InputVariables() []*VariableDefinition {
	var inputVariables []*VariableDefinition
	for _, variable := range d.Variables {
		if variable.HasInput() {
			inputVariables = append(inputVariables, variable)
		}
	}
	return inputVariables
}

// DimensionNames returns the dimension names in document order.
func (d *DatasetDefinition) DimensionNames() []string {
	names := make([]string, len(d.dimensionNames))
	copy(names, d.dimensionNames)
	return names
}

// MarshalYAML renders the definition back into document form. Map-valued
// sections marshal with sorted keys, so a round trip is stable but does not
// preserve the original key order of attrs mappings.
func (d *DatasetDefinition) MarshalYAML() (any, error) {
	document := map[string]any{}

	if d.SchemaVersion != "" {
		document["schema_version"] = d.SchemaVersion
	}

	if len(d.Attrs) > 0 {
		attrs := make(map[string]any, len(d.Attrs))
		for attrName, attr := range d.Attrs {
			attrs[attrName] = attr.Value
		}
		document["attrs"] = attrs
	}

	if len(d.Dimensions) > 0 {
		dimensions := make(map[string]any, len(d.Dimensions))
		for name, dim := range d.Dimensions {
			length := any(dim.Length)
			if dim.IsUnlimited() {
				length = "unlimited"
			}
			dimensions[name] = map[string]any{"length": length}
		}
		document["dimensions"] = dimensions
	}

	if len(d.Variables) > 0 {
		variables := make(map[string]any, len(d.Variables))
		for _, variable := range d.Variables {
			variables[variable.Name] = variable.configMapping()
		}
		document["variables"] = variables
	}

	return document, nil
}

// configMapping reassembles the configuration mapping the variable was built
// from.
func (v *VariableDefinition) configMapping() map[string]any {
	config := map[string]any{}
	for key, value := range v.Extensions {
		config[key] = value
	}

	if v.Input != nil {
		input := map[string]any{variableKeyName: v.Input.Name}
		if v.Input.TimeFormat != "" {
			input["time_format"] = v.Input.TimeFormat
		}
		if v.Input.Units != "" {
			input[attrNameUnits] = v.Input.Units
		}
		config[variableKeyInput] = input
	}

	if len(v.Attrs) > 0 {
		attrs := make(map[string]any, len(v.Attrs))
		for attrName, attr := range v.Attrs {
			attrs[attrName] = attr.Value
		}
		config[variableKeyAttrs] = attrs
	}

	if len(v.Dims) > 0 {
		config[variableKeyDims] = v.CoordinateNames()
	}

	config[variableKeyType] = v.typeName

	if v.predefined {
		config[variableKeyData] = v.data
	}

	return config
}
