package main

import (
	"io"

	"github.com/scott-cotton/cli"

	"github.com/iutf-format/iutf/token"
)

func tokens(cfg *TokensConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokens.Parse(cc, args)
	if err != nil {
		return err
	}
	inputs, err := cfg.inputs(args)
	if err != nil {
		return err
	}
	for _, in := range inputs {
		d, err := readInput(cc, in)
		if err != nil {
			return err
		}
		if err := tokensSource(cc.Out, cfg.errOut(), in.name, d, cfg.useColor(cfg.errOut())); err != nil {
			return err
		}
	}
	return nil
}

// tokensSource prints the tokens of d up to the first lexical error.
func tokensSource(w, ew io.Writer, name string, d []byte, colored bool) error {
	toks, lexErr := token.Tokenize(d)
	if err := token.PrintTokens(w, toks); err != nil {
		return err
	}
	if lexErr != nil {
		reportErr(ew, name, lexErr, colored)
		return cli.ExitCodeErr(1)
	}
	return nil
}
