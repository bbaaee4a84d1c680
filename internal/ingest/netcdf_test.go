package ingest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxwellevin/tsdat/internal/ingest"
	"github.com/maxwellevin/tsdat/pkg/schema"
)

func TestReadNetCDF_missingFile(t *testing.T) {
	t.Parallel()

	definition, err := schema.ParseDefinition([]byte(`
dimensions:
  time:
    length: unlimited
variables:
  temperature:
    input:
      name: SST
    dims: [time]
    type: float
`))
	require.NoError(t, err)

	err = ingest.ReadNetCDF(definition, "does-not-exist.nc")
	assert.ErrorContains(t, err, `unable to open input file "does-not-exist.nc"`)

	temperature, err := definition.Variable("temperature")
	require.NoError(t, err)
	assert.False(t, temperature.HasData())
}
