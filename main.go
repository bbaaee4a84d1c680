package main

import (
	"log"
	"os"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/pivotal-cf/jhanda"

	"github.com/maxwellevin/tsdat/internal/commands"
)

var version = "unknown"

func main() {
	outLogger := log.New(os.Stdout, "", 0)

	fs := osfs.New("")

	var global struct {
		Help    bool `short:"h" long:"help"    description:"prints this usage information"    default:"false"`
		Version bool `short:"v" long:"version" description:"prints the tsdat release version" default:"false"`
	}

	args, err := jhanda.Parse(&global, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	globalFlagsUsage, err := jhanda.PrintUsage(global)
	if err != nil {
		log.Fatal(err)
	}

	var command string
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}

	if global.Version {
		command = "version"
	}

	if global.Help {
		command = "help"
	}

	if command == "" {
		command = "help"
	}

	commandSet := jhanda.CommandSet{}
	commandSet["help"] = commands.NewHelp(os.Stdout, globalFlagsUsage, commandSet)
	commandSet["version"] = commands.NewVersion(outLogger, version)
	commandSet["validate"] = commands.NewValidate(outLogger, fs)
	commandSet["describe"] = commands.NewDescribe(outLogger, fs)

	err = commandSet.Execute(command, args)
	if err != nil {
		log.Fatal(err)
	}
}
