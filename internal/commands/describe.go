package commands

import (
	"log"
	"strconv"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/pivotal-cf/jhanda"

	"github.com/maxwellevin/tsdat/pkg/schema"
)

type Describe struct {
	logger *log.Logger
	fs     billy.Filesystem

	Options struct {
		Definition string `short:"d" long:"definition" default:"dataset.yml" description:"path to the dataset definition document"`
	}
}

func NewDescribe(logger *log.Logger, fs billy.Filesystem) *Describe {
	return &Describe{
		logger: logger,
		fs:     fs,
	}
}

func (cmd *Describe) Execute(args []string) error {
	_, err := jhanda.Parse(&cmd.Options, args)
	if err != nil {
		return err
	}

	definition, err := schema.LoadDefinition(cmd.fs, cmd.Options.Definition)
	if err != nil {
		return err
	}

	cmd.logger.Println("dimensions:")
	for _, name := range definition.DimensionNames() {
		dim := definition.Dimensions[name]
		length := strconv.Itoa(dim.Length)
		if dim.IsUnlimited() {
			length = "unlimited"
		}
		cmd.logger.Printf("  %s (length: %s)\n", name, length)
	}

	cmd.logger.Println("variables:")
	for _, variable := range definition.Variables {
		line := []string{
			variable.Name,
			string(variable.DataType()),
			variable.OutputUnits(),
			classification(variable),
		}
		if variable.HasInput() {
			line = append(line, "from "+variable.InputName())
		}
		if len(variable.Dims) > 0 {
			line = append(line, "["+strings.Join(variable.CoordinateNames(), ", ")+"]")
		}
		cmd.logger.Printf("  %s\n", strings.Join(line, "  "))
	}

	return nil
}

func classification(variable *schema.VariableDefinition) string {
	switch {
	case variable.IsCoordinate():
		return "coordinate"
	case variable.IsConstant() && variable.IsPredefined():
		return "constant"
	case variable.IsPredefined():
		return "predefined"
	case variable.IsDerived():
		return "derived"
	default:
		return "input"
	}
}

func (cmd *Describe) Usage() jhanda.Usage {
	return jhanda.Usage{
		Description:      "This command prints every dimension and variable of a dataset definition document with its resolved type, units, and classification.",
		ShortDescription: "describe a dataset definition document",
		Flags:            cmd.Options,
	}
}
