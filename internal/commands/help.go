package commands

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pivotal-cf/jhanda"
)

type helpData struct {
	// input
	Title         string
	Description   string
	Usage         string
	GlobalFlags   []string
	ArgumentsName string
	ArgumentLines []string
}

func (tc helpData) String() string {
	var sb strings.Builder

	if tc.Title != "tsdat" {
		sb.WriteString("\n")
		sb.WriteString(tc.Title)
		sb.WriteString("\n\n")
	}
	if tc.Description != "" {
		sb.WriteString(tc.Description)
		sb.WriteString("\n\n")
	}
	if tc.Usage != "" {
		sb.WriteString("Usage: ")
		sb.WriteString(tc.Usage)
		sb.WriteString("\n")
	}
	if len(tc.GlobalFlags) > 0 {
		for _, flag := range tc.GlobalFlags {
			sb.WriteString("  ")
			sb.WriteString(flag)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if tc.ArgumentsName != "" {
		sb.WriteString(tc.ArgumentsName)
		sb.WriteString("\n")
	}

	for _, line := range tc.ArgumentLines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	sb.WriteString("\n")

	return sb.String()
}

type Help struct {
	output   io.Writer
	flags    string
	commands jhanda.CommandSet
}

func NewHelp(output io.Writer, flags string, commands jhanda.CommandSet) Help {
	return Help{
		output:   output,
		flags:    flags,
		commands: commands,
	}
}

func (h Help) Execute(args []string) error {
	globalFlags := strings.Split(h.flags, "\n")

	var data helpData
	if len(args) == 0 {
		data = h.buildGlobalContext()
	} else {
		var err error
		data, err = h.buildCommandContext(args[0])
		if err != nil {
			return err
		}
	}
	data.GlobalFlags = globalFlags

	_, err := fmt.Fprintf(h.output, "%s", data)
	return err
}

func (h Help) Usage() jhanda.Usage {
	return jhanda.Usage{
		Description:      "This command prints helpful usage information.",
		ShortDescription: "prints this usage information",
	}
}

func (h Help) buildGlobalContext() helpData {
	names := make([]string, 0, len(h.commands))
	for name := range h.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	maxLength := maxLen(names)

	commands := []string{"Commands:"}
	for _, name := range names {
		command := h.commands[name]
		name = padCommand(name, " ", maxLength)
		commands = append(commands, fmt.Sprintf("  %s  %s", name, command.Usage().ShortDescription))
	}

	return helpData{
		Title:         "tsdat",
		Description:   "tsdat validates and describes dataset definition documents",
		Usage:         "tsdat [options] <command> [<args>]",
		ArgumentLines: commands,
	}
}

func (h Help) buildCommandContext(command string) (helpData, error) {
	usage, err := h.commands.Usage(command)
	if err != nil {
		return helpData{}, err
	}

	var (
		flagList        []string
		argsPlaceholder string
	)
	if usage.Flags != nil {
		flagUsage, err := jhanda.PrintUsage(usage.Flags)
		if err != nil {
			return helpData{}, err
		}

		for _, flag := range strings.Split(flagUsage, "\n") {
			if flag != "" {
				flagList = append(flagList, "  "+flag)
			}
		}

		if len(flagList) != 0 {
			argsPlaceholder = " [<args>]"
		}
	}

	return helpData{
		Title:         fmt.Sprintf("tsdat %s", command),
		Description:   usage.Description,
		Usage:         fmt.Sprintf("tsdat [options] %s%s", command, argsPlaceholder),
		ArgumentsName: "Flags",
		ArgumentLines: flagList,
	}, nil
}

func padCommand(str, pad string, length int) string {
	return str + strings.Repeat(pad, length-len(str))
}

func maxLen(slice []string) int {
	var max int
	for _, e := range slice {
		if len(e) > max {
			max = len(e)
		}
	}
	return max
}
