package config

// This file implements CLI flag parsing and help text. The pipeline flags map
// 1:1 to the six pipeline parameters; display flags only affect output.

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and
// exits. On error it returns non-nil (e.g. unknown flag, missing project dir).
func ParseFlags(cfg *Config, version string) error {
	fs := flag.NewFlagSet("cardforge", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs) }

	var showHelp, showVersion, forceColor, noColor bool

	// Pipeline parameters.
	fs.IntVar(&cfg.GridRows, "rows", cfg.GridRows, "Grid rows per sheet")
	fs.IntVar(&cfg.GridCols, "cols", cfg.GridCols, "Grid columns per sheet")
	fs.StringVar(&cfg.Background, "background", cfg.Background, "Grid background color name")
	fs.StringVar(&cfg.Background, "b", cfg.Background, "Same as --background")
	fs.IntVar(&cfg.Spacing, "spacing", cfg.Spacing, "Pixels between grid cells")
	fs.IntVar(&cfg.DownscaleFactor, "downscale", cfg.DownscaleFactor, "Downscale divisor after the bleed crop")

	// Display and utility.
	fs.BoolVar(&forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Inspect the Print folder and exit without writing")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
	fs.BoolVar(&showVersion, "version", false, "Show version and exit")
	fs.BoolVar(&showHelp, "help", false, "Show this help")
	fs.BoolVar(&showHelp, "h", false, "Same as --help")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	if showHelp {
		printUsage(fs)
		os.Exit(0)
	}
	if showVersion {
		fmt.Fprintln(os.Stdout, "cardforge v"+version)
		os.Exit(0)
	}

	if forceColor {
		cfg.ColorMode = ColorAlways
	}
	if noColor {
		cfg.ColorMode = ColorNever
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("need exactly one project directory argument, got %d", fs.NArg())
	}
	cfg.ProjectDir = NormalizeDirArg(fs.Arg(0))
	return nil
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprint(os.Stderr, `Usage: cardforge [options] <project_dir>

Crops the print bleed from the scans in <project_dir>/Print, downscales them
into <project_dir>/Share, tiles contact-sheet grids into <project_dir>, and
exports renamed copies to <project_dir>/Forge.

Options:
`)
	fs.PrintDefaults()
}
