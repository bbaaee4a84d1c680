package schema

import (
	"fmt"
	"io"

	"github.com/go-git/go-billy/v5"
	"gopkg.in/yaml.v3"
)

func closeAndIgnoreError(c io.Closer) { _ = c.Close() }

// LoadDefinition reads a dataset definition document from the given
// filesystem and parses it.
func LoadDefinition(fs billy.Filesystem, path string) (*DatasetDefinition, error) {
	file, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open file %q: %w", path, err)
	}
	defer closeAndIgnoreError(file)

	contents, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("unable to read file %q: %w", path, err)
	}

	definition, err := ParseDefinition(contents)
	if err != nil {
		return nil, ConfigFileError{err: err, HumanReadableConfigFileName: "dataset definition " + path}
	}
	return definition, nil
}

// WriteDefinition marshals a dataset definition back into document form,
// overwriting the file at path.
func WriteDefinition(fs billy.Filesystem, path string, definition *DatasetDefinition) error {
	contents, err := yaml.Marshal(definition)
	if err != nil {
		return fmt.Errorf("error marshaling the dataset definition: %w", err) // untestable
	}

	file, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("error opening %q for writing: %w", path, err)
	}
	defer closeAndIgnoreError(file)

	_, err = file.Write(contents)
	if err != nil {
		return fmt.Errorf("error writing to %q: %w", path, err)
	}

	return nil
}
