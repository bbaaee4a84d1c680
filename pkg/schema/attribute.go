package schema

// AttributeDefinition wraps one name/value metadata attribute from a dataset
// definition document. Values are stored as decoded, so strings, numbers, and
// lists all pass through untouched.
type AttributeDefinition struct {
	Name  string
	Value any
}
