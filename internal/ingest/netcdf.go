// Package ingest populates schema variables with values from upstream input
// files.
package ingest

import (
	"fmt"

	"github.com/batchatco/go-native-netcdf/netcdf"

	"github.com/maxwellevin/tsdat/pkg/schema"
)

// ReadNetCDF injects upstream values from a NetCDF file into every variable of
// the definition that declares an input. The variable's input name selects the
// upstream variable to read; time_format and units conversions are left to the
// downstream pipeline stages.
func ReadNetCDF(definition *schema.DatasetDefinition, filePath string) error {
	nc, err := netcdf.Open(filePath)
	if err != nil {
		return fmt.Errorf("unable to open input file %q: %w", filePath, err)
	}
	defer nc.Close()

	for _, variable := range definition.InputVariables() {
		getter, err := nc.GetVarGetter(variable.InputName())
		if err != nil {
			return fmt.Errorf("input %q not found for variable %q: %w", variable.InputName(), variable.Name, err)
		}
		values, err := getter.Values()
		if err != nil {
			return fmt.Errorf("unable to read input %q for variable %q: %w", variable.InputName(), variable.Name, err)
		}
		variable.SetData(values)
	}

	return nil
}
