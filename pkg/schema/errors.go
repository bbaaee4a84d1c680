package schema

import (
	"fmt"
)

func errorVariableNotFound(name string) error {
	return fmt.Errorf("failed to find variable with name %q", name)
}

// ConfigFileError wraps errors from reading or parsing a dataset definition
// document with the name of the document they came from.
type ConfigFileError struct {
	HumanReadableConfigFileName string
	err                         error
}

func (err ConfigFileError) Unwrap() error {
	return err.err
}

func (err ConfigFileError) Error() string {
	return fmt.Sprintf("encountered a configuration file error with %s: %s", err.HumanReadableConfigFileName, err.err.Error())
}
