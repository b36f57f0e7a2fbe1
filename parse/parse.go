package parse

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/iutf-format/iutf/debug"
	"github.com/iutf-format/iutf/ir"
	"github.com/iutf-format/iutf/token"
)

var header = []string{"iutf", "init", "main"}

// Parser holds the state of a single parse. It must not be shared between
// goroutines.
type Parser struct {
	lex  *token.Lexer
	cur  token.Token
	opts *parseOpts
}

func NewParser(d []byte, opts ...ParseOption) *Parser {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return &Parser{lex: token.NewLexer(d), opts: pOpts}
}

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	return NewParser(d, opts...).Parse()
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// Parse parses a whole document and returns its root branch. Tokens after
// the closing brace of the root are not examined.
func (p *Parser) Parse() (*ir.Node, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.header(); err != nil {
		return nil, err
	}
	if p.cur.Type != token.TLCurl {
		return nil, p.unexpected("'{'")
	}
	pos := p.cur.Pos
	root, err := p.branch()
	if err != nil {
		return nil, err
	}
	p.trackPos(root, pos)
	if debug.Parse() {
		debug.Logf("parsed document with %d top level entries\n", len(root.Values))
	}
	return root, nil
}

func (p *Parser) header() error {
	for i, word := range header {
		if i > 0 {
			if err := p.expect(token.TColon, "':'"); err != nil {
				return err
			}
		}
		if p.cur.Type != token.TIdentifier {
			return p.unexpected(strconv.Quote(word))
		}
		if got := string(p.cur.Bytes); got != word {
			return &ParseErr{
				Err: fmt.Errorf("%w: expected %q, got %q", ErrHeader, word, got),
				Pos: p.cur.Pos,
				Got: p.cur.Type,
			}
		}
		if err := p.advance(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) advance() error {
	tok, err := p.lex.Next()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}
	p.cur = tok
	return nil
}

// expect checks the current token is of type t and moves past it.
func (p *Parser) expect(t token.TokenType, want string) error {
	if p.cur.Type != t {
		return p.unexpected(want)
	}
	return p.advance()
}

func (p *Parser) unexpected(want string) error {
	e := ErrUnexpected
	if p.cur.Type == token.TEOF {
		e = ErrUnexpectedEOF
	}
	if debug.Parse() {
		debug.Logf("expected %s, got %s\n", want, p.cur.Info())
	}
	return &ParseErr{
		Err: fmt.Errorf("%w: expected %s, got %s", e, want, p.cur.Type),
		Pos: p.cur.Pos,
		Got: p.cur.Type,
	}
}

func (p *Parser) trackPos(n *ir.Node, pos *token.Pos) {
	if p.opts.positions != nil && pos != nil {
		p.opts.positions[n] = pos
	}
}

// value parses a value and moves past its last token.
func (p *Parser) value() (*ir.Node, error) {
	pos := p.cur.Pos
	n, err := p.valueAt()
	if err != nil {
		return nil, err
	}
	p.trackPos(n, pos)
	if err := p.advance(); err != nil {
		n.Release()
		return nil, err
	}
	return n, nil
}

// valueAt parses the value starting at the current token, leaving the
// current token on its last token.
func (p *Parser) valueAt() (*ir.Node, error) {
	tok := &p.cur
	switch tok.Type {
	case token.TString:
		return ir.FromString(string(tok.Bytes[1 : len(tok.Bytes)-1])), nil
	case token.TInteger:
		i, err := strconv.ParseInt(string(tok.Bytes), 10, 64)
		if err != nil {
			return nil, p.numberErr(err)
		}
		return ir.FromInt(i), nil
	case token.TLong:
		i, err := strconv.ParseInt(string(tok.Bytes[:len(tok.Bytes)-1]), 10, 64)
		if err != nil {
			return nil, p.numberErr(err)
		}
		return ir.FromLong(i), nil
	case token.TFloat:
		f, err := strconv.ParseFloat(string(tok.Bytes), 64)
		if err != nil {
			return nil, p.numberErr(err)
		}
		return ir.FromFloat(f), nil
	case token.TCharacter:
		return p.character()
	case token.TTrue:
		return ir.FromBool(true), nil
	case token.TFalse:
		return ir.FromBool(false), nil
	case token.TNull:
		return ir.Null(), nil
	case token.TLSquare:
		return p.array()
	case token.TLCurl:
		return p.branch()
	case token.TBigString:
		return p.bigString()
	case token.TPipe:
		return p.pipeString()
	}
	return nil, p.unexpected("value")
}

func (p *Parser) numberErr(err error) error {
	if ne, ok := err.(*strconv.NumError); ok {
		err = ne.Err
	}
	return &ParseErr{
		Err: fmt.Errorf("%w %q: %w", ErrNumber, p.cur.Bytes, err),
		Pos: p.cur.Pos,
		Got: p.cur.Type,
	}
}

// character decodes 'c' or '\c'. Escapes are not translated.
func (p *Parser) character() (*ir.Node, error) {
	b := p.cur.Bytes
	if len(b) < 3 {
		return nil, &ParseErr{Err: ErrCharLiteral, Pos: p.cur.Pos, Got: p.cur.Type}
	}
	content := b[1 : len(b)-1]
	if len(content) >= 2 && content[0] == '\\' {
		content = content[1:]
	}
	r, sz := utf8.DecodeRune(content)
	if r == utf8.RuneError && sz <= 1 {
		return nil, &ParseErr{Err: ErrCharLiteral, Pos: p.cur.Pos, Got: p.cur.Type}
	}
	return ir.FromChar(r), nil
}

// branch parses entries "key : value [,]" until the closing brace, which
// is left as the current token.
func (p *Parser) branch() (*ir.Node, error) {
	n := ir.NewBranch()
	if err := p.advance(); err != nil {
		return nil, err
	}
	for {
		switch p.cur.Type {
		case token.TRCurl:
			return n, nil
		case token.TIdentifier:
		default:
			n.Release()
			return nil, p.unexpected("identifier or '}'")
		}
		key := string(p.cur.Bytes)
		if err := p.advance(); err != nil {
			n.Release()
			return nil, err
		}
		if err := p.expect(token.TColon, "':'"); err != nil {
			n.Release()
			return nil, err
		}
		child, err := p.value()
		if err != nil {
			n.Release()
			return nil, err
		}
		if err := n.Add(key, child); err != nil {
			child.Release()
			n.Release()
			return nil, err
		}
		if p.cur.Type == token.TComma {
			if err := p.advance(); err != nil {
				n.Release()
				return nil, err
			}
		}
	}
}

// array parses values until the closing bracket, which is left as the
// current token.
func (p *Parser) array() (*ir.Node, error) {
	n := ir.NewArray()
	if err := p.advance(); err != nil {
		return nil, err
	}
	for p.cur.Type != token.TRSquare {
		if p.cur.Type == token.TEOF {
			n.Release()
			return nil, p.unexpected("value or ']'")
		}
		child, err := p.value()
		if err != nil {
			n.Release()
			return nil, err
		}
		if err := n.Append(child); err != nil {
			child.Release()
			n.Release()
			return nil, err
		}
		if p.cur.Type == token.TComma {
			if err := p.advance(); err != nil {
				n.Release()
				return nil, err
			}
		}
	}
	return n, nil
}

// bigString takes the body between the outer brackets from the source and
// resumes lexing after the closing bracket.
func (p *Parser) bigString() (*ir.Node, error) {
	src := p.lex.Source()
	open := p.cur.Off() + len("BigString[")
	// the lexer rejects unbalanced brackets before emitting the token
	end, _ := token.MatchBracket(src, open)
	p.lex.ResumeAt(end + 1)
	return ir.FromBigString(string(src[open:end])), nil
}

// pipeString scans tokens up to the closing '|' and takes the source text
// in between. Lexical errors inside the region are ignored.
func (p *Parser) pipeString() (*ir.Node, error) {
	open := p.cur
	for {
		tok, err := p.lex.Next()
		if err != nil {
			continue
		}
		switch tok.Type {
		case token.TEOF:
			p.cur = tok
			return nil, p.unexpected("'|'")
		case token.TPipe:
			p.cur = tok
			return ir.FromPipeString(string(p.lex.Source()[open.End():tok.Off()])), nil
		}
	}
}
