package commands

import (
	"log"

	"github.com/pivotal-cf/jhanda"

	"github.com/maxwellevin/tsdat/pkg/schema"
)

type Version struct {
	logger  *log.Logger
	version string
}

func NewVersion(logger *log.Logger, version string) Version {
	return Version{
		logger:  logger,
		version: version,
	}
}

func (v Version) Execute([]string) error {
	v.logger.Printf("tsdat version %s (dataset definition schema v%d)\n", v.version, schema.SupportedSchemaMajorVersion)

	return nil
}

func (v Version) Usage() jhanda.Usage {
	return jhanda.Usage{
		Description:      "This command prints the installed tsdat version and the dataset definition schema major version it reads.",
		ShortDescription: "prints the tsdat version",
	}
}
