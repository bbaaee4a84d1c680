package schema

import (
	"fmt"
	"sort"
	"strings"
)

// Keys with fixed meaning in a variable's configuration mapping. Every other
// key is passed through to VariableDefinition.Extensions.
const (
	variableKeyName  = "name"
	variableKeyInput = "input"
	variableKeyAttrs = "attrs"
	variableKeyDims  = "dims"
	variableKeyType  = "type"
	variableKeyData  = "data"
)

const (
	attrNameUnits     = "units"
	attrNameFillValue = "_FillValue"

	// unitlessValue is reported for variables that do not declare units.
	unitlessValue = "unitless"

	// defaultFillValue is reported when a variable does not declare a
	// _FillValue attribute.
	defaultFillValue = -9999
)

// VarInput names the field in the upstream source record that a variable is
// copied from. TimeFormat, when set, is the format spec for converting the
// upstream values to timestamps. Units, when set, overrides the variable's
// output units as the units the upstream values arrive in.
type VarInput struct {
	Name       string
	TimeFormat string
	Units      string
}

func newVarInput(config map[string]any) (*VarInput, error) {
	rawName, ok := config[variableKeyName]
	if !ok {
		return nil, fmt.Errorf("variable input is missing required key %q", variableKeyName)
	}
	return &VarInput{
		Name:       stringValue(rawName),
		TimeFormat: stringValue(config["time_format"]),
		Units:      stringValue(config[attrNameUnits]),
	}, nil
}

// VariableDefinition describes one variable of the dataset: its axes, type,
// metadata attributes, and where its values come from. It is built once from
// the variable's configuration mapping when the dataset definition is loaded
// and is read-only afterwards, except for SetData.
type VariableDefinition struct {
	Name  string
	Input *VarInput
	Attrs map[string]AttributeDefinition

	// Dims holds shared references into the dataset definition's dimension
	// table, in declared order. The order is the array axis order.
	Dims []*DimensionDefinition

	Type DataType

	// Extensions holds the configuration keys this type does not consume,
	// with their raw decoded values.
	Extensions map[string]any

	// typeName is the type as spelled in the document, kept for round-trip
	// marshalling.
	typeName string

	data       any
	hasData    bool
	predefined bool
}

// NewVariableDefinition builds a variable definition from its configuration
// mapping. Every name in the configuration's dims list must exist in
// availableDimensions, so dimensions must be declared before the variables
// that reference them. Construction is atomic: on error no partial definition
// is returned.
func NewVariableDefinition(name string, config map[string]any, availableDimensions map[string]*DimensionDefinition) (*VariableDefinition, error) {
	definition := &VariableDefinition{Name: name}

	input, err := parseInput(config)
	if err != nil {
		return nil, err
	}
	definition.Input = input

	definition.Attrs = parseAttributes(config)

	dims, err := parseDimensions(config, availableDimensions)
	if err != nil {
		return nil, err
	}
	definition.Dims = dims

	typeName := stringValue(config[variableKeyType])
	dataType, err := ParseDataType(typeName)
	if err != nil {
		return nil, err
	}
	definition.Type = dataType
	definition.typeName = typeName

	definition.Extensions = map[string]any{}
	for key, value := range config {
		switch key {
		case variableKeyName, variableKeyInput, variableKeyAttrs, variableKeyDims, variableKeyType:
			continue
		case variableKeyData:
			definition.data = value
			definition.hasData = true
		default:
			definition.Extensions[key] = value
		}
	}

	definition.predefined = definition.hasData

	return definition, nil
}

func parseInput(config map[string]any) (*VarInput, error) {
	rawInput := config[variableKeyInput]
	if rawInput == nil || rawInput == "" {
		return nil, nil
	}
	inputConfig, ok := rawInput.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("variable input must be a mapping, got %T", rawInput)
	}
	if len(inputConfig) == 0 {
		return nil, nil
	}
	return newVarInput(inputConfig)
}

func parseAttributes(config map[string]any) map[string]AttributeDefinition {
	attributes := map[string]AttributeDefinition{}
	attrsConfig, _ := config[variableKeyAttrs].(map[string]any)
	for attrName, attrValue := range attrsConfig {
		attributes[attrName] = AttributeDefinition{Name: attrName, Value: attrValue}
	}
	return attributes
}

func parseDimensions(config map[string]any, availableDimensions map[string]*DimensionDefinition) ([]*DimensionDefinition, error) {
	requested, err := stringSliceValue(config[variableKeyDims])
	if err != nil {
		return nil, fmt.Errorf("variable dims must be a list of dimension names: %w", err)
	}

	var dims []*DimensionDefinition
	seen := map[string]bool{}
	for _, dimName := range requested {
		if seen[dimName] {
			continue
		}
		dim, ok := availableDimensions[dimName]
		if !ok {
			return nil, errorUnknownDimension(dimName, availableDimensions)
		}
		seen[dimName] = true
		dims = append(dims, dim)
	}
	return dims, nil
}

// IsConstant reports whether the variable is a constant, that is, it has no
// dimensions.
func (v *VariableDefinition) IsConstant() bool {
	return len(v.Dims) == 0
}

// IsPredefined reports whether the variable's data was supplied directly in
// the configuration document. The flag is fixed at construction; data injected
// later through SetData does not make a variable predefined.
func (v *VariableDefinition) IsPredefined() bool {
	return v.predefined
}

// IsCoordinate reports whether the variable is a coordinate variable, that is,
// its sole dimension is itself.
func (v *VariableDefinition) IsCoordinate() bool {
	return len(v.Dims) == 1 && v.Dims[0].Name == v.Name
}

// IsDerived reports whether the variable's values are computed outside this
// component. A variable is derived if it has no input and is not predefined.
func (v *VariableDefinition) IsDerived() bool {
	return v.Input == nil && !v.predefined
}

// HasInput reports whether the variable is copied from an input dataset,
// regardless of whether unit or naming conversions apply.
func (v *VariableDefinition) HasInput() bool {
	return v.Input != nil
}

// InputName returns the name of the variable in the input source, or the empty
// string when the variable has no input.
func (v *VariableDefinition) InputName() string {
	if !v.HasInput() {
		return ""
	}
	return v.Input.Name
}

// InputUnits returns the units the variable's input values arrive in, or the
// empty string when the variable has no input. Inputs that do not declare a
// units override are assumed to already be in the output units.
func (v *VariableDefinition) InputUnits() string {
	if !v.HasInput() {
		return ""
	}
	if v.Input.Units != "" {
		return v.Input.Units
	}
	return v.OutputUnits()
}

// OutputUnits returns the variable's units attribute, or "unitless" when no
// units attribute is configured.
func (v *VariableDefinition) OutputUnits() string {
	units, ok := v.Attrs[attrNameUnits]
	if !ok {
		return unitlessValue
	}
	return stringValue(units.Value)
}

// CoordinateNames returns the names of the coordinate variables this variable
// is dimensioned by, in declared order.
func (v *VariableDefinition) CoordinateNames() []string {
	names := make([]string, 0, len(v.Dims))
	for _, dim := range v.Dims {
		names = append(names, dim.Name)
	}
	return names
}

// Shape errors when no data has been set for the variable.
//
// TODO: compute the shape of the data payload on the success path. The
// upstream implementation validates that data exists and then returns nothing;
// kept as-is until the intended behavior is confirmed.
func (v *VariableDefinition) Shape() ([]int, error) {
	if !v.hasData {
		return nil, fmt.Errorf("no data has been set for variable %q", v.Name)
	}
	return nil, nil
}

// DataType returns the variable's resolved primitive type tag.
func (v *VariableDefinition) DataType() DataType {
	return v.Type
}

// FillValue returns the variable's _FillValue attribute, or -9999 when none is
// configured.
func (v *VariableDefinition) FillValue() any {
	fillValue, ok := v.Attrs[attrNameFillValue]
	if !ok {
		return defaultFillValue
	}
	return fillValue.Value
}

// Data returns the variable's data payload, or nil when none has been set.
func (v *VariableDefinition) Data() any {
	return v.data
}

// HasData reports whether a data payload has been supplied in configuration or
// injected through SetData.
func (v *VariableDefinition) HasData() bool {
	return v.hasData
}

// SetData injects the variable's data payload. It is called by the downstream
// builder once values have been retrieved or computed; callers must serialize
// concurrent injection themselves.
func (v *VariableDefinition) SetData(data any) {
	v.data = data
	v.hasData = true
}

// Variable is the materialized form of a VariableDefinition, shaped for a
// dataset builder to initialize one labeled array.
type Variable struct {
	Dims  []string       `yaml:"dims"`
	Data  any            `yaml:"data"`
	Attrs map[string]any `yaml:"attrs"`
}

// ToVariable returns the variable definition with attribute wrappers unwrapped
// to their raw values. Variables with no data payload get an empty data slice.
func (v *VariableDefinition) ToVariable() Variable {
	data := v.data
	if !v.hasData {
		data = []any{}
	}

	attrs := make(map[string]any, len(v.Attrs))
	for attrName, attr := range v.Attrs {
		attrs[attrName] = attr.Value
	}

	return Variable{
		Dims:  v.CoordinateNames(),
		Data:  data,
		Attrs: attrs,
	}
}

func errorUnknownDimension(name string, availableDimensions map[string]*DimensionDefinition) error {
	available := make([]string, 0, len(availableDimensions))
	for dimName := range availableDimensions {
		available = append(available, dimName)
	}
	sort.Strings(available)
	return fmt.Errorf("%q is not a recognized dimension, available dimensions include: %s", name, strings.Join(available, ", "))
}

func stringValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func stringSliceValue(value any) ([]string, error) {
	if value == nil {
		return nil, nil
	}
	list, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a list, got %T", value)
	}
	names := make([]string, 0, len(list))
	for _, element := range list {
		names = append(names, stringValue(element))
	}
	return names, nil
}
