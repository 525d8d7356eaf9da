package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"pkt.systems/mdtidy"
	"pkt.systems/mdtidy/internal/config"
	"pkt.systems/mdtidy/internal/logging"
	"pkt.systems/version"
)

func init() {
	version.SetDefaultModule("pkt.systems/mdtidy")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		showVersion bool
		verbose     bool
	)
	flags := pflag.NewFlagSet("mdfence", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log whether the file changed")
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: mdfence [flags] <file>\n")
		fmt.Fprintln(stderr, "\nRemoves trailing blank lines and a dangling closing ``` from <file>.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}
	if showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}
	if flags.NArg() != 1 || strings.TrimSpace(flags.Arg(0)) == "" {
		flags.Usage()
		return 2
	}

	logger := logging.New(stderr, verbose)
	path := config.ExpandHome(flags.Arg(0))
	changed, err := mdtidy.TrimFile(path)
	if err != nil {
		logger.Error("cleanup failed", "path", path, "error", err)
		return 1
	}
	logger.Debug("trimmed", "path", path, "changed", changed)
	fmt.Fprintf(stdout, "Cleaned: %s\n", path)
	return 0
}
