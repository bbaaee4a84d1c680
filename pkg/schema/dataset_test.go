package schema_test

import (
	"testing"

	Ω "github.com/onsi/gomega"
	"gopkg.in/yaml.v3"

	"github.com/maxwellevin/tsdat/pkg/schema"
)

const exampleDefinition = `
schema_version: "1.0"
attrs:
  title: Example Buoy Ingest
  location: Morro Bay
dimensions:
  time:
    length: unlimited
  depth:
    length: 10
variables:
  time:
    input:
      name: Timestamp
      time_format: "%Y-%m-%d %H:%M:%S"
    dims: [time]
    type: long
    attrs:
      units: seconds since 1970-01-01
  temperature:
    input:
      name: SST
      units: degF
    dims: [time]
    type: float
    attrs:
      units: degC
  depth:
    dims: [depth]
    type: float
    data: [0, 1, 2, 3, 4, 5, 6, 7, 8, 9]
    attrs:
      units: m
  latitude:
    type: double
    data: 35.37
  dew_point:
    dims: [time]
    type: float
    retrieval_rank: 7
`

func TestParseDefinition(t *testing.T) {
	t.Parallel()
	please := Ω.NewWithT(t)

	definition, err := schema.ParseDefinition([]byte(exampleDefinition))
	please.Expect(err).NotTo(Ω.HaveOccurred())

	please.Expect(definition.SchemaVersion).To(Ω.Equal("1.0"))
	please.Expect(definition.Attrs["title"].Value).To(Ω.Equal("Example Buoy Ingest"))
	please.Expect(definition.DimensionNames()).To(Ω.Equal([]string{"time", "depth"}))
	please.Expect(definition.Dimensions["time"].IsUnlimited()).To(Ω.BeTrue())
	please.Expect(definition.Dimensions["depth"].Length).To(Ω.Equal(10))
	please.Expect(definition.Variables).To(Ω.HaveLen(5))
}

func TestParseDefinition_variableClassification(t *testing.T) {
	t.Parallel()
	please := Ω.NewWithT(t)

	definition, err := schema.ParseDefinition([]byte(exampleDefinition))
	please.Expect(err).NotTo(Ω.HaveOccurred())

	names := func(variables []*schema.VariableDefinition) []string {
		var out []string
		for _, variable := range variables {
			out = append(out, variable.Name)
		}
		return out
	}

	please.Expect(names(definition.CoordinateVariables())).To(Ω.Equal([]string{"time", "depth"}))
	please.Expect(names(definition.DataVariables())).To(Ω.Equal([]string{"temperature", "latitude", "dew_point"}))
	please.Expect(names(definition.InputVariables())).To(Ω.Equal([]string{"time", "temperature"}))

	dewPoint, err := definition.Variable("dew_point")
	please.Expect(err).NotTo(Ω.HaveOccurred())
	please.Expect(dewPoint.IsDerived()).To(Ω.BeTrue())
	please.Expect(dewPoint.Extensions).To(Ω.HaveKeyWithValue("retrieval_rank", 7))

	latitude, err := definition.Variable("latitude")
	please.Expect(err).NotTo(Ω.HaveOccurred())
	please.Expect(latitude.IsConstant()).To(Ω.BeTrue())
	please.Expect(latitude.IsPredefined()).To(Ω.BeTrue())
}

func TestParseDefinition_sharedDimensions(t *testing.T) {
	t.Parallel()
	please := Ω.NewWithT(t)

	definition, err := schema.ParseDefinition([]byte(exampleDefinition))
	please.Expect(err).NotTo(Ω.HaveOccurred())

	timeVariable, err := definition.Variable("time")
	please.Expect(err).NotTo(Ω.HaveOccurred())
	temperature, err := definition.Variable("temperature")
	please.Expect(err).NotTo(Ω.HaveOccurred())

	please.Expect(timeVariable.Dims[0]).To(Ω.BeIdenticalTo(definition.Dimensions["time"]))
	please.Expect(temperature.Dims[0]).To(Ω.BeIdenticalTo(definition.Dimensions["time"]))
}

func TestParseDefinition_unknownVariable(t *testing.T) {
	t.Parallel()
	please := Ω.NewWithT(t)

	definition, err := schema.ParseDefinition([]byte(exampleDefinition))
	please.Expect(err).NotTo(Ω.HaveOccurred())

	_, err = definition.Variable("banana")
	please.Expect(err).To(Ω.MatchError(Ω.ContainSubstring(`failed to find variable with name "banana"`)))
}

func TestParseDefinition_unrecognizedDimension(t *testing.T) {
	t.Parallel()
	please := Ω.NewWithT(t)

	_, err := schema.ParseDefinition([]byte(`
dimensions:
  time:
    length: unlimited
variables:
  temperature:
    dims: [depth]
    type: float
`))
	please.Expect(err).To(Ω.MatchError(Ω.ContainSubstring(`invalid variable "temperature"`)))
	please.Expect(err).To(Ω.MatchError(Ω.ContainSubstring("available dimensions include: time")))
}

func TestParseDefinition_negativeDimensionLength(t *testing.T) {
	t.Parallel()
	please := Ω.NewWithT(t)

	_, err := schema.ParseDefinition([]byte(`
dimensions:
  time:
    length: -4
`))
	please.Expect(err).To(Ω.MatchError(Ω.ContainSubstring(`invalid dimension "time"`)))
}

func TestParseDefinition_schemaVersion(t *testing.T) {
	t.Parallel()
	please := Ω.NewWithT(t)

	_, err := schema.ParseDefinition([]byte(`schema_version: "2.0"`))
	please.Expect(err).To(Ω.MatchError(Ω.ContainSubstring("does not match the supported major version 1")))

	_, err = schema.ParseDefinition([]byte(`schema_version: "not-a-version"`))
	please.Expect(err).To(Ω.MatchError(Ω.ContainSubstring(`invalid schema_version "not-a-version"`)))

	_, err = schema.ParseDefinition([]byte(`attrs: {title: no version}`))
	please.Expect(err).NotTo(Ω.HaveOccurred())
}

func TestParseDefinition_empty(t *testing.T) {
	t.Parallel()
	please := Ω.NewWithT(t)

	definition, err := schema.ParseDefinition([]byte(""))
	please.Expect(err).NotTo(Ω.HaveOccurred())
	please.Expect(definition.Variables).To(Ω.BeEmpty())
	please.Expect(definition.DimensionNames()).To(Ω.BeEmpty())
}

func TestDatasetDefinition_roundTrip(t *testing.T) {
	t.Parallel()
	please := Ω.NewWithT(t)

	first, err := schema.ParseDefinition([]byte(exampleDefinition))
	please.Expect(err).NotTo(Ω.HaveOccurred())

	marshaled, err := yaml.Marshal(first)
	please.Expect(err).NotTo(Ω.HaveOccurred())

	second, err := schema.ParseDefinition(marshaled)
	please.Expect(err).NotTo(Ω.HaveOccurred())

	please.Expect(second.SchemaVersion).To(Ω.Equal(first.SchemaVersion))
	please.Expect(second.Variables).To(Ω.HaveLen(len(first.Variables)))
	please.Expect(second.Dimensions["time"].IsUnlimited()).To(Ω.BeTrue())

	temperature, err := second.Variable("temperature")
	please.Expect(err).NotTo(Ω.HaveOccurred())
	please.Expect(temperature.InputUnits()).To(Ω.Equal("degF"))
	please.Expect(temperature.DataType()).To(Ω.Equal(schema.DataTypeFloat32))
}
