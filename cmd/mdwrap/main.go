package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"pkt.systems/mdtidy"
	"pkt.systems/mdtidy/internal/config"
	"pkt.systems/mdtidy/internal/logging"
	"pkt.systems/version"
)

const (
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiCyan  = "\x1b[36m"
	ansiReset = "\x1b[0m"
)

func init() {
	version.SetDefaultModule("pkt.systems/mdtidy")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		configFile  string
		check       bool
		showDiff    bool
		verbose     bool
		showVersion bool
	)

	flags := pflag.NewFlagSet("mdwrap", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.String("dir", config.DefaultDir, "Directory whose Markdown files are reflowed")
	flags.IntP("width", "w", mdtidy.DefaultWidth, "Maximum line width")
	flags.String("pattern", mdtidy.DefaultPattern, "File name pattern matched inside --dir")
	flags.Bool("front-matter", false, "Copy a leading front matter block through unchanged")
	flags.Bool("task-checkbox", false, "Hang task list continuation lines under the task text")
	flags.StringVarP(&configFile, "config", "c", "", "Config file (default ./"+config.FileName+".{yaml,toml,json})")
	flags.BoolVar(&check, "check", false, "Report files that would change without writing; exit 1 if any")
	flags.BoolVar(&showDiff, "diff", false, "Print a diff of each change without writing")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log unchanged files too")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: mdwrap [flags]\n")
		fmt.Fprintln(stderr, "\nReflows every matching Markdown file directly inside --dir.")
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
	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
		flags.Usage()
		return 2
	}

	v := viper.New()
	for key, name := range map[string]string{
		config.KeyDir:          "dir",
		config.KeyWidth:        "width",
		config.KeyPattern:      "pattern",
		config.KeyFrontMatter:  "front-matter",
		config.KeyTaskCheckbox: "task-checkbox",
	} {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			fmt.Fprintf(stderr, "bind flag %s: %v\n", name, err)
			return 2
		}
	}
	cfg, err := config.Load(v, config.ExpandHome(configFile), ".")
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 2
	}

	logger := logging.New(stderr, verbose)
	req := mdtidy.DirRequest{
		Dir:      cfg.Dir,
		Pattern:  cfg.Pattern,
		Options:  cfg.ReflowOptions(),
		Logger:   logger,
		Progress: stdout,
		DryRun:   check || showDiff,
	}
	if showDiff {
		color := isTerminal(stdout)
		req.OnChange = func(change mdtidy.FileChange) {
			text := mdtidy.UnifiedDiff(change.Path, change.Before, change.After)
			if color {
				text = colorizeDiff(text)
			}
			fmt.Fprint(stdout, text)
		}
	}

	res, err := mdtidy.ReflowDir(req)
	if err != nil {
		fmt.Fprintf(stderr, "mdwrap: %v\n", err)
		return 1
	}
	printSummary(stdout, res, req.DryRun)

	switch {
	case len(res.Failed) > 0:
		return 1
	case check && len(res.Changed) > 0:
		return 1
	}
	return 0
}

func printSummary(w io.Writer, res mdtidy.DirResult, dryRun bool) {
	if dryRun {
		fmt.Fprintln(w, "Files needing reflow:", len(res.Changed))
	} else {
		fmt.Fprintln(w, "Files changed:", len(res.Changed))
	}
	for _, path := range res.Changed {
		fmt.Fprintln(w, " -", path)
	}
	if len(res.Failed) > 0 {
		fmt.Fprintln(w, "Files failed:", len(res.Failed))
		for _, f := range res.Failed {
			fmt.Fprintln(w, " -", f.Path)
		}
	}
}

// colorizeDiff paints removed lines red, added lines green and hunk headers
// cyan. File headers are left plain.
func colorizeDiff(text string) string {
	lines := strings.SplitAfter(text, "\n")
	var b strings.Builder
	b.Grow(len(text) + len(lines)*len(ansiRed+ansiReset))
	for _, line := range lines {
		body := strings.TrimSuffix(line, "\n")
		nl := line[len(body):]
		switch {
		case strings.HasPrefix(body, "---"), strings.HasPrefix(body, "+++"), body == "":
			b.WriteString(line)
		case strings.HasPrefix(body, "@@"):
			b.WriteString(ansiCyan + body + ansiReset + nl)
		case body[0] == '-':
			b.WriteString(ansiRed + body + ansiReset + nl)
		case body[0] == '+':
			b.WriteString(ansiGreen + body + ansiReset + nl)
		default:
			b.WriteString(line)
		}
	}
	return b.String()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
