package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jdefrancesco/fsident/internal/config"
	"github.com/jdefrancesco/fsident/internal/dfs"
	"github.com/jdefrancesco/fsident/internal/dident"
	"github.com/jdefrancesco/fsident/internal/dmnt"
	"github.com/jdefrancesco/fsident/internal/dsklog"
	"github.com/jdefrancesco/fsident/internal/report"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

func init() {

	// Custom help message
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: fsident [options] PATHS\n\n")
		flag.PrintDefaults()
	}
}

// Version
const ver = "0.0.1"

func main() {

	cfg := config.Default()

	// Parse command flags. Parsing stops at the first path.
	var flShowVersion bool
	flag.StringVar(&cfg.MnttabPath, "mnttab", cfg.MnttabPath, "Mount table to read.")
	flag.BoolVar(&cfg.ListMounts, "list", false, "Print the mount table and exit.")
	flag.BoolVar(&cfg.Verbose, "v", false, "Show the mount records each path matched.")
	flag.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output.")
	flag.StringVar(&cfg.LogFile, "log-file", "", "Write log output to this file instead of stderr.")
	flag.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error).")
	flag.BoolVar(&flShowVersion, "version", false, "Display version")
	flag.Parse()

	if flShowVersion {
		showVersion()
		return
	}

	if err := cfg.Validate(); err != nil {
		fatal(err)
	}

	dsklog.InitializeDlogger(cfg.LogFile)
	if cfg.LogLevel != "" {
		if err := dsklog.SetLevel(cfg.LogLevel); err != nil {
			fatal(err)
		}
	}

	if cfg.NoColor {
		pterm.DisableColor()
	}

	paths := flag.Args()
	if len(paths) == 0 && !cfg.ListMounts {
		flag.Usage()
		os.Exit(2)
	}

	// The table is read once and shared by every path.
	records, err := dmnt.ReadAll(cfg.MnttabPath)
	if err != nil {
		fatal(err)
	}

	rep := report.New(os.Stdout, cfg.NoColor)

	if cfg.ListMounts {
		if err := rep.Mounts(records); err != nil {
			fatal(err)
		}
		return
	}

	if err := identify(rep, paths, records, dfs.NewProber(), cfg.Verbose); err != nil {
		fatal(err)
	}
}

// identify probes and resolves each path in order, stopping at the first
// failure.
func identify(rep *report.Reporter, paths []string, records []dmnt.MountRecord, prober dfs.Prober, verbose bool) error {
	for _, path := range paths {
		fsDesc, pathDesc, err := prober.Probe(path)
		if err != nil {
			return err
		}
		dsklog.Dlogger.Debugf("Probed %s: %+v %+v", path, fsDesc, pathDesc)

		rep.Descriptors(path, fsDesc, pathDesc)
		if verbose {
			rep.Candidates(dident.Matches(fsDesc, pathDesc, records))
		}

		c, err := dident.Resolve(fsDesc, pathDesc, records)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		dsklog.Dlogger.Infof("%s resolved to %s %s", path, c.Kind, c.Device)

		rep.Classification(c)
	}
	return nil
}

func fatal(err error) {
	dsklog.Dlogger.Error(err)
	pterm.Error.WithWriter(os.Stderr).Println(err)
	os.Exit(1)
}

// showHeader prints colorful fsident banner.
func showHeader() {

	fmt.Println("")

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("fs", pterm.NewStyle(pterm.FgLightGreen)),
		putils.LettersFromStringWithStyle("ident", pterm.NewStyle(pterm.FgLightWhite))).
		Render()
}

func showVersion() {
	showHeader()
	fmt.Printf("Version: %s\n\n", ver)
}
