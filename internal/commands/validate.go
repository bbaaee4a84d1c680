package commands

import (
	"log"

	"github.com/go-git/go-billy/v5"
	"github.com/pivotal-cf/jhanda"

	"github.com/maxwellevin/tsdat/pkg/schema"
)

type Validate struct {
	logger *log.Logger
	fs     billy.Filesystem

	Options struct {
		Definition string `short:"d" long:"definition" default:"dataset.yml" description:"path to the dataset definition document"`
	}
}

func NewValidate(logger *log.Logger, fs billy.Filesystem) *Validate {
	return &Validate{
		logger: logger,
		fs:     fs,
	}
}

func (cmd *Validate) Execute(args []string) error {
	_, err := jhanda.Parse(&cmd.Options, args)
	if err != nil {
		return err
	}

	definition, err := schema.LoadDefinition(cmd.fs, cmd.Options.Definition)
	if err != nil {
		return err
	}

	cmd.logger.Printf("%s is valid: %d dimensions, %d variables\n",
		cmd.Options.Definition, len(definition.Dimensions), len(definition.Variables))

	return nil
}

func (cmd *Validate) Usage() jhanda.Usage {
	return jhanda.Usage{
		Description:      "This command checks that a dataset definition document parses, that every variable references declared dimensions, and that every data type resolves.",
		ShortDescription: "validate a dataset definition document",
		Flags:            cmd.Options,
	}
}
