package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/iutf-format/iutf/encode"
	"github.com/iutf-format/iutf/format"
	"github.com/iutf-format/iutf/include"
	"github.com/iutf-format/iutf/internal/logging"
)

type MainConfig struct {
	Color    bool   `cli:"name=color desc='colour output and diagnostics'"`
	WireOut  bool   `cli:"name=wire desc='output on a single line'"`
	Modules  bool   `cli:"name=m desc='treat arguments as module names'"`
	Include  string `cli:"name=I desc='include roots, overriding IUTF_INCLUDE_PATH'"`
	LogLevel string `cli:"name=log-level desc='log level: debug, info, warn, error'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error
	ErrOut   io.Writer

	Log  *log.Logger
	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) logger() *log.Logger {
	if cfg.Log == nil {
		return logging.Default()
	}
	return cfg.Log
}

func (cfg *MainConfig) errOut() io.Writer {
	if cfg.ErrOut == nil {
		return os.Stderr
	}
	return cfg.ErrOut
}

func (cfg *MainConfig) resolver() *include.Resolver {
	if cfg.Include == "" {
		return include.FromEnv()
	}
	return include.NewResolver(filepath.SplitList(cfg.Include)...)
}

func (cfg *MainConfig) outputFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.IUTFFormat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outputFormat()),
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// useColor reports whether output to w should be coloured: -color forces
// it, otherwise it is on for terminals unless -color was given as false.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			if opt.Value != nil {
				return false
			}
			break
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only report failures'"`

	Check *cli.Command
}

type DumpConfig struct {
	*MainConfig

	Dump *cli.Command
}

type TokensConfig struct {
	*MainConfig

	Tokens *cli.Command
}

type FindConfig struct {
	*MainConfig

	Find *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Merge bool `cli:"name=merge desc='print a JSON merge patch instead of a text diff'"`

	Diff *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env map[string]any

	Eval *cli.Command
}
