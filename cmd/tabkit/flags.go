package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/kbukum/tabkit/config"
	"github.com/kbukum/tabkit/demo"
)

type flags struct {
	configFile string
	envFile    string
	demos      []string
	format     string
	locale     string
	minMarks   int
	workers    int
	runID      string
	logLevel   string
	trace      bool
	version    bool
}

func newFlagSet(f *flags) *pflag.FlagSet {
	fs := pflag.NewFlagSet("tabkit", pflag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: tabkit [flags]\n\nFlags:\n%s", fs.FlagUsages())
	}

	fs.StringVarP(&f.configFile, "config", "c", "", "config file (default: search ./cmd/tabkit, ./config, .)")
	fs.StringVar(&f.envFile, "env-file", "", ".env file to load before binding TABKIT_* variables")
	fs.StringSliceVarP(&f.demos, "demo", "d", []string{demo.All}, "scenarios to run: all, employees, products, students")
	fs.StringVarP(&f.format, "format", "f", "", "output format: text, json, yaml")
	fs.StringVar(&f.locale, "locale", "", "BCP 47 locale for amounts in text output")
	fs.IntVar(&f.minMarks, "min-marks", config.DefaultMinMarks, "students demo keeps marks strictly above this")
	fs.IntVar(&f.workers, "workers", 4, "goroutines summarizing product categories")
	fs.StringVar(&f.runID, "run-id", "", "UUID tagging logs and spans (default: random)")
	fs.StringVar(&f.logLevel, "log-level", "", "trace, debug, info, warn, error")
	fs.BoolVar(&f.trace, "trace", false, "export spans and metrics over OTLP HTTP")
	fs.BoolVarP(&f.version, "version", "v", false, "print version and exit")
	return fs
}

// apply copies explicitly set flags over the loaded configuration.
func (f *flags) apply(fs *pflag.FlagSet, cfg *config.AppConfig) {
	if fs.Changed("format") {
		cfg.Output.Format = f.format
	}
	if fs.Changed("locale") {
		cfg.Output.Locale = f.locale
	}
	if fs.Changed("min-marks") {
		cfg.Students.MinMarks = f.minMarks
	}
	if fs.Changed("log-level") {
		cfg.Logging.Level = f.logLevel
	}
	if fs.Changed("trace") {
		cfg.Tracing.Enabled = f.trace
	}
}
