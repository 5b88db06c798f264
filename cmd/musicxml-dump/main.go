// Command musicxml-dump parses MusicXML and MXL files and prints a summary,
// the full score as JSON, or the diagnostics of each file.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/simonhull/musicxml"
	"github.com/simonhull/musicxml/internal/config"
	"github.com/simonhull/musicxml/internal/logging"
)

// CLI defines the command-line interface for musicxml-dump.
var CLI struct {
	Config   string `name:"config" short:"c" help:"YAML configuration file" type:"path"`
	LogLevel string `name:"log-level" help:"Log level (debug, info, warn, error)"`
	LogFmt   string `name:"log-format" help:"Log format (text, json)"`
	NoColor  bool   `name:"no-color" help:"Disable colored output"`

	Dump    DumpCmd    `cmd:"" default:"withargs" help:"Parse files and print them (default)"`
	Show    ConfigCmd  `cmd:"" name:"show-config" help:"Print the effective configuration"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// globals are the settings shared by every command after the config file
// and the flags have been merged.
type globals struct {
	cfg     config.Config
	logger  *slog.Logger
	noColor bool
	stdout  io.Writer
	stderr  io.Writer
}

// errFailed reports that at least one file did not parse. The failures
// themselves have already been printed.
var errFailed = errors.New("one or more files failed to parse")

// DumpCmd parses each file and prints it.
type DumpCmd struct {
	Paths          []string `arg:"" help:"MusicXML (.musicxml, .xml) or MXL (.mxl) files" type:"existingfile"`
	Output         string   `name:"output" short:"o" help:"Output format (summary, json, diagnostics)"`
	Strict         bool     `name:"strict" help:"Fail a file on its first warning"`
	IgnoreWarnings bool     `name:"ignore-warnings" help:"Do not report warnings"`
	DurationCheck  string   `name:"duration-check" help:"Measure duration check (off, warn, strict)"`
}

// Run parses the files one after another so every failure is reported.
func (cmd *DumpCmd) Run(g *globals) error {
	cfg := g.cfg
	if cmd.Output != "" {
		cfg.Output = cmd.Output
	}
	if cmd.DurationCheck != "" {
		cfg.DurationCheck = cmd.DurationCheck
	}
	cfg.Strict = cfg.Strict || cmd.Strict
	cfg.IgnoreWarnings = cfg.IgnoreWarnings || cmd.IgnoreWarnings
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts, err := parseOptions(cfg, g.logger)
	if err != nil {
		return err
	}
	r := newRenderer(cfg.Output, g.stdout, colorEnabled(g.stdout, g.noColor))

	failed := false
	for _, path := range cmd.Paths {
		c := musicxml.NewCollector()
		res, err := musicxml.ParseFile(path, append(opts, musicxml.WithCollector(c))...)
		if err != nil {
			failed = true
			g.logger.Error("parse failed", "path", path, "error", err)
			if rerr := r.failure(path, err, c.Snapshot()); rerr != nil {
				return rerr
			}
			continue
		}
		if err := r.result(path, res); err != nil {
			return err
		}
	}
	if failed {
		return errFailed
	}
	return nil
}

// parseOptions maps the configuration onto library options.
func parseOptions(cfg config.Config, logger *slog.Logger) ([]musicxml.Option, error) {
	mode, err := musicxml.ParseDurationCheck(cfg.DurationCheck)
	if err != nil {
		return nil, err
	}
	opts := []musicxml.Option{
		musicxml.WithLogger(logger),
		musicxml.WithDurationCheck(mode),
	}
	if cfg.Strict {
		opts = append(opts, musicxml.WithStrictParsing())
	}
	if cfg.IgnoreWarnings {
		opts = append(opts, musicxml.WithIgnoreWarnings())
	}
	return opts, nil
}

// ConfigCmd prints the merged configuration as YAML.
type ConfigCmd struct{}

// Run prints the configuration.
func (cmd *ConfigCmd) Run(g *globals) error {
	data, err := g.cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = g.stdout.Write(data)
	return err
}

// VersionCmd prints version information.
type VersionCmd struct{}

// Run prints the version.
func (cmd *VersionCmd) Run(g *globals) error {
	_, err := fmt.Fprintln(g.stdout, musicxml.GetVersionInfo())
	return err
}

// setup loads the configuration file and applies the global flags.
func setup(stdout, stderr io.Writer) (*globals, error) {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return nil, err
	}
	if CLI.LogLevel != "" {
		cfg.Log.Level = CLI.LogLevel
	}
	if CLI.LogFmt != "" {
		cfg.Log.Format = CLI.LogFmt
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	return &globals{
		cfg:     cfg,
		logger:  logging.New(stderr, level, format),
		noColor: CLI.NoColor,
		stdout:  stdout,
		stderr:  stderr,
	}, nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("musicxml-dump"),
		kong.Description("Parse MusicXML and MXL files and print their contents"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	g, err := setup(os.Stdout, os.Stderr)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(g)
	if errors.Is(err, errFailed) {
		os.Exit(1)
	}
	ctx.FatalIfErrorf(err)
}
