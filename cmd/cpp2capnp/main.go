package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/hmartens/cpp2capnp/cppast"
	"github.com/hmartens/cpp2capnp/encode"
	"github.com/hmartens/cpp2capnp/schema"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

func MainCommand() *cli.Command {
	cfg := &Config{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommand("cpp2capnp").
		WithSynopsis("cpp2capnp [opts]").
		WithDescription("Derive a Cap'n Proto schema from the classes declared in a tree of C++ headers.").
		WithOpts(sOpts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}

type Config struct {
	Output     string `cli:"name=o desc='output schema file (default generated.capnp, - for stdout)'"`
	Dir        string `cli:"name=dir desc='directory to scan for C++ headers (default: current directory)'"`
	Lenient    bool   `cli:"name=lenient desc='skip members with unsupported types instead of failing'"`
	Filter     string `cli:"name=filter desc='expr expression selecting classes by name/file/fieldCount'"`
	Check      bool   `cli:"name=check desc='compare the regenerated schema against the existing output file, write nothing'"`
	ConfigFile string `cli:"name=config desc='YAML config file; flags take precedence'"`
	Color      string `cli:"name=color desc='color schema written to stdout: auto, always, never'"`
	FileID     string `cli:"name=file-id desc='top-level capnp file identifier (0x... form)'"`
}

func run(cfg *Config, cc *cli.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: unexpected arguments %v", cli.ErrUsage, args)
	}
	if cfg.ConfigFile != "" {
		if err := cfg.applyFile(cfg.ConfigFile); err != nil {
			return err
		}
	}
	cfg.applyDefaults()

	classes, err := cppast.Discover(cfg.Dir)
	if err != nil {
		return err
	}
	if cfg.Filter != "" {
		classes, err = filterClasses(classes, cfg.Filter)
		if err != nil {
			return err
		}
	}
	if len(classes) == 0 {
		return fmt.Errorf("no classes with data members found in %q", cfg.Dir)
	}

	mode := schema.Strict
	if cfg.Lenient {
		mode = schema.Lenient
	}
	res, err := schema.Derive(classes, schema.WithMode(mode))
	if err != nil {
		return err
	}
	for _, d := range res.Diagnostics {
		theLog.Warn(d.String())
	}

	opts := []encode.EncodeOption{encode.FileID(cfg.FileID)}
	if cfg.Check {
		return checkSchema(cfg, cc, res.Decls, opts)
	}
	if cfg.Output == "-" {
		if useColor(cfg.Color) {
			opts = append(opts, encode.EncodeColors(encode.NewColors()))
		}
		return encode.Encode(res.Decls, cc.Out, opts...)
	}
	f, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}
	if err := encode.Encode(res.Decls, f, opts...); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	theLog.Info("wrote schema", "file", cfg.Output, "decls", len(res.Decls))
	return nil
}

func useColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
