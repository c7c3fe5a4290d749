package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/mcncl/jfield/internal/config"
	"github.com/mcncl/jfield/internal/errors"
	"github.com/mcncl/jfield/internal/field"
	"github.com/mcncl/jfield/internal/formatter"
	"github.com/mcncl/jfield/internal/parser"
)

// Version information
const (
	Version = "0.1.0"
)

// CLI defines the command-line interface
type CLI struct {
	Config  string           `help:"Path to a config file. Defaults to the nearest .jfield.yml." short:"c"`
	Debug   bool             `help:"Enable debug logging." short:"d"`
	Version kong.VersionFlag `help:"Show version information."`

	Get     GetCmd     `cmd:"" help:"Print the value at one or more field paths."`
	Set     SetCmd     `cmd:"" help:"Set the value at a field path."`
	Length  LengthCmd  `cmd:"" help:"Print the length of the array at a field path."`
	Element ElementCmd `cmd:"" help:"Print one element of the array at a field path."`

	Name        NameCmd        `cmd:"" help:"Print the package name of a package.json file."`
	PackVersion PackVersionCmd `cmd:"" name:"version" help:"Print the package version of a package.json file."`
	Deps        DepsCmd        `cmd:"" help:"List the dependencies of a package.json file."`
}

// Context holds the runtime context shared by all commands
type Context struct {
	ConfigPath string
	Debug      bool
	Out        io.Writer
	Err        io.Writer
	LookupEnv  func(string) (string, bool)
}

// Load builds the effective configuration for a command and configures
// logging from it.
func (c *Context) Load(o config.Overrides) (*config.Config, error) {
	path := c.ConfigPath
	if path == "" {
		path = config.FindConfigFile()
	}
	o.Debug = o.Debug || c.Debug

	cfg, err := config.LoadConfigWithCLI(path, o, c.LookupEnv)
	if err != nil {
		if errors.IsType(err, errors.ErrorTypeConfig) {
			return nil, err
		}
		return nil, errors.NewConfigError("failed to load configuration", err)
	}

	setupLogging(c.Err, cfg.Dev.Debug)
	slog.Debug("configuration loaded", "config", path, "file", cfg.File, "output_format", cfg.OutputFormat)
	return cfg, nil
}

// GetCmd prints field values
type GetCmd struct {
	File        string   `help:"JSON file to read, '-' for stdin." short:"f"`
	Keys        []string `help:"Field path, e.g. authors[0].name. May be repeated." short:"k" name:"key" required:""`
	Output      string   `help:"Output format: raw, json, compact, json-pretty, pretty or yaml." short:"o"`
	StripQuotes bool     `help:"Print strings without surrounding quotes." short:"s"`
}

// Run executes the get command
func (g *GetCmd) Run(ctx *Context) error {
	cfg, err := ctx.Load(config.Overrides{File: g.File, OutputFormat: g.Output, StripQuotes: g.StripQuotes})
	if err != nil {
		return err
	}
	format, err := formatter.ParseFormat(cfg.OutputFormat)
	if err != nil {
		return errors.NewConfigError("invalid output format", err)
	}

	result, err := field.ExtractFields(field.ExtractConfig{
		FilePath:     cfg.File,
		OutputFormat: format,
		StripQuotes:  cfg.StripQuotes,
		Indent:       cfg.Indent,
	}, g.Keys)
	if err != nil {
		return err
	}

	for _, f := range result.Fields {
		if err := writeLine(ctx.Out, f.Value); err != nil {
			return err
		}
	}
	return nil
}

// SetCmd writes a field value
type SetCmd struct {
	File          string `help:"JSON file to modify, '-' for stdin." short:"f"`
	Key           string `help:"Field path to set." short:"k" required:""`
	Value         string `help:"New value." short:"v" required:""`
	Type          string `help:"Value type: string, integer, float, boolean, null or auto." short:"t" default:"auto"`
	CreateMissing bool   `help:"Create missing intermediate objects." name:"create-missing"`
	InPlace       bool   `help:"Write the result back to the file." short:"i"`
	Diff          bool   `help:"Print a unified diff of the change."`
	Patch         bool   `help:"Print the change as a JSON merge patch."`
}

// Run executes the set command
func (s *SetCmd) Run(ctx *Context) error {
	cfg, err := ctx.Load(config.Overrides{File: s.File, CreateMissing: s.CreateMissing, InPlace: s.InPlace})
	if err != nil {
		return err
	}
	if cfg.InPlace && cfg.File == parser.StdinName {
		return errors.NewOutputError("cannot modify stdin in place", errors.ErrInvalidFilePath)
	}

	change, err := field.Update(field.SetConfig{
		FilePath:      cfg.File,
		FieldPath:     s.Key,
		Value:         s.Value,
		ValueType:     s.Type,
		CreateMissing: cfg.CreateMissing,
		Indent:        cfg.Indent,
	})
	if err != nil {
		return err
	}

	if s.Diff {
		diff, err := change.Diff()
		if err != nil {
			return err
		}
		if _, err := io.WriteString(ctx.Out, diff); err != nil {
			return errors.NewOutputError("failed to write to stdout", err)
		}
	}
	if s.Patch {
		patch, err := change.MergePatch()
		if err != nil {
			return err
		}
		if err := writeLine(ctx.Out, patch); err != nil {
			return err
		}
	}

	if cfg.InPlace {
		if err := change.Save(); err != nil {
			return err
		}
		fmt.Fprintf(ctx.Err, "Field '%s' set to '%s' in %s\n", s.Key, s.Value, cfg.File)
		return nil
	}
	if !s.Diff && !s.Patch {
		return writeLine(ctx.Out, change.Updated)
	}
	return nil
}

// LengthCmd prints an array length
type LengthCmd struct {
	File string `help:"JSON file to read, '-' for stdin." short:"f"`
	Key  string `help:"Field path of the array." short:"k" required:""`
}

// Run executes the length command
func (l *LengthCmd) Run(ctx *Context) error {
	cfg, err := ctx.Load(config.Overrides{File: l.File})
	if err != nil {
		return err
	}
	n, err := field.ExtractArrayLength(cfg.File, l.Key)
	if err != nil {
		return err
	}
	return writeLine(ctx.Out, fmt.Sprint(n))
}

// ElementCmd prints one array element
type ElementCmd struct {
	File        string `help:"JSON file to read, '-' for stdin." short:"f"`
	Key         string `help:"Field path of the array." short:"k" required:""`
	Index       int    `help:"Zero-based element index." short:"n" required:""`
	StripQuotes bool   `help:"Print strings without surrounding quotes." short:"s"`
}

// Run executes the element command
func (e *ElementCmd) Run(ctx *Context) error {
	cfg, err := ctx.Load(config.Overrides{File: e.File, StripQuotes: e.StripQuotes})
	if err != nil {
		return err
	}
	out, err := field.ExtractArrayElement(cfg.File, e.Key, e.Index, cfg.StripQuotes)
	if err != nil {
		return err
	}
	return writeLine(ctx.Out, out)
}

// PresetFlags are shared by the package.json commands
type PresetFlags struct {
	File string `help:"package.json file to read." short:"f"`
}

// load resolves the preset file: the flag, then presets.file from config.
func (p PresetFlags) load(ctx *Context) (string, error) {
	cfg, err := ctx.Load(config.Overrides{})
	if err != nil {
		return "", err
	}
	if p.File != "" {
		return p.File, nil
	}
	return cfg.Presets.File, nil
}

// NameCmd prints the package name
type NameCmd struct {
	PresetFlags
}

// Run executes the name command
func (n *NameCmd) Run(ctx *Context) error {
	file, err := n.load(ctx)
	if err != nil {
		return err
	}
	name, err := field.GetPackageName(file)
	if err != nil {
		return err
	}
	return writeLine(ctx.Out, name)
}

// PackVersionCmd prints the package version
type PackVersionCmd struct {
	PresetFlags
}

// Run executes the version command
func (v *PackVersionCmd) Run(ctx *Context) error {
	file, err := v.load(ctx)
	if err != nil {
		return err
	}
	version, err := field.GetPackageVersion(file)
	if err != nil {
		return err
	}
	return writeLine(ctx.Out, version)
}

// DepsCmd lists dependencies as "name: version" lines
type DepsCmd struct {
	PresetFlags
}

// Run executes the deps command
func (d *DepsCmd) Run(ctx *Context) error {
	file, err := d.load(ctx)
	if err != nil {
		return err
	}
	deps, err := field.ListDependencies(file)
	if err != nil {
		return err
	}
	for _, dep := range deps {
		if err := writeLine(ctx.Out, fmt.Sprintf("%s: %s", dep.Path, dep.Value)); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}
}

// execute parses args and runs the selected command
func execute(args []string, stdout, stderr io.Writer) error {
	var cli CLI
	app, err := kong.New(&cli,
		kong.Name("jfield"),
		kong.Description("Read and write individual fields of JSON files"),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Vars{"version": fmt.Sprintf("jfield version %s", Version)},
	)
	if err != nil {
		return err
	}

	ctx, err := app.Parse(args)
	if err != nil {
		return err
	}

	return ctx.Run(&Context{
		ConfigPath: cli.Config,
		Debug:      cli.Debug,
		Out:        stdout,
		Err:        stderr,
		LookupEnv:  os.LookupEnv,
	})
}

func setupLogging(w io.Writer, debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func writeLine(w io.Writer, s string) error {
	if _, err := fmt.Fprintln(w, s); err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}
