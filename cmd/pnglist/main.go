// Command pnglist writes the names of the PNG files in a directory to a text
// file, one per line.
//
// Usage:
//
//	pnglist [-config file] [-dir directory] [-o file] [-suffix suffix] [-include-dirs] [-jq query] [-v]
//
// Settings not given as flags come from the config file (by default
// pnglist.json in the current directory, if it exists), and otherwise from
// built-in defaults: the current directory, png_files_list.txt, and ".png".
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bitfield/pnglist"
	"github.com/itchyny/gojq"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns 2 for usage and config errors. A failure to list the directory
// or write the file is reported on stdout and still exits 0; failing to print
// that line to stdout exits 1.
func run(args []string, stdout, stderr io.Writer) int {
	fset := flag.NewFlagSet("pnglist", flag.ContinueOnError)
	fset.SetOutput(stderr)
	fset.Usage = func() {
		fmt.Fprintln(stderr, "Usage: pnglist [flags]")
		fset.PrintDefaults()
	}
	var (
		flags   pnglist.Flags
		query   string
		verbose bool
	)
	fset.StringVar(&flags.ConfigFile, "config", "", "read settings from `file` (default ./"+pnglist.DefaultConfigFile+", if present)")
	fset.StringVar(&flags.Dir, "dir", pnglist.DefaultDir, "`directory` to scan")
	fset.StringVar(&flags.Output, "o", pnglist.DefaultOutput, "`file` to write the names to")
	fset.StringVar(&flags.Suffix, "suffix", pnglist.DefaultSuffix, "file name `suffix` to match, ignoring case")
	fset.BoolVar(&flags.IncludeDirs, "include-dirs", false, "also list directories whose names match")
	fset.StringVar(&query, "jq", "", "print the result of jq `query` on the JSON report instead of the summary")
	fset.BoolVar(&verbose, "v", false, "log each matched and skipped entry to stderr")
	if err := fset.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fset.NArg() > 0 {
		fmt.Fprintf(stderr, "pnglist: unexpected argument %q\n", fset.Arg(0))
		fset.Usage()
		return 2
	}
	fset.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dir":
			flags.DirSet = true
		case "o":
			flags.OutputSet = true
		case "suffix":
			flags.SuffixSet = true
		case "include-dirs":
			flags.IncludeDirsSet = true
		}
	})
	if query != "" {
		if _, err := gojq.Parse(query); err != nil {
			fmt.Fprintf(stderr, "pnglist: -jq: %v\n", err)
			return 2
		}
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(stderr, "pnglist: %v\n", err)
		return 1
	}
	settings, err := pnglist.LoadSettings(cwd, flags, nil)
	if err != nil {
		fmt.Fprintf(stderr, "pnglist: %v\n", err)
		return 2
	}
	log.Debug("settings", "dir", settings.Dir, "output", settings.Output,
		"suffix", settings.Suffix, "include_dirs", settings.IncludeDirs)

	report, err := settings.Lister(log).Run()
	if err != nil {
		return printLine(stdout, stderr, "Error: "+err.Error())
	}
	if query == "" {
		return printLine(stdout, stderr, report.String())
	}
	js, err := report.JSON()
	if err != nil {
		fmt.Fprintf(stderr, "pnglist: %v\n", err)
		return 1
	}
	if _, err := pnglist.Echo(js).JQ(query).WithStdout(stdout).Stdout(); err != nil {
		fmt.Fprintf(stderr, "pnglist: -jq: %v\n", err)
		return 1
	}
	return 0
}

// printLine writes the single result line, returning 1 if it can't.
func printLine(stdout, stderr io.Writer, line string) int {
	if _, err := pnglist.Echo(line + "\n").WithStdout(stdout).Stdout(); err != nil {
		fmt.Fprintf(stderr, "pnglist: %v\n", err)
		return 1
	}
	return 0
}
