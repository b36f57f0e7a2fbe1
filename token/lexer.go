package token

import (
	"unicode/utf8"

	"github.com/iutf-format/iutf/debug"
)

const bigStringWord = "BigString"

// Lexer produces tokens from an input buffer. Its position only moves
// forward, except through [Lexer.ResumeAt].
type Lexer struct {
	d   []byte
	doc *PosDoc
	pos int
}

func NewLexer(d []byte) *Lexer {
	return &Lexer{d: d, doc: NewPosDoc(d)}
}

// Source returns the buffer being scanned.
func (l *Lexer) Source() []byte {
	return l.d
}

// PosDoc returns the line index of the buffer being scanned.
func (l *Lexer) PosDoc() *PosDoc {
	return l.doc
}

// Offset returns the byte offset at which the next scan starts.
func (l *Lexer) Offset() int {
	return l.pos
}

// ResumeAt moves the scan position to byte offset off, which is clamped to
// the buffer.
func (l *Lexer) ResumeAt(off int) {
	l.pos = min(max(off, 0), len(l.d))
	if debug.Lex() {
		line, col := l.doc.LineCol(l.pos)
		debug.Logf("lex resume at %d (line=%d, col=%d)\n", l.pos, line, col)
	}
}

// Next returns the next token. At the end of input it returns a TEOF token;
// on malformed input it returns a TError token and a *TokenizeErr. After an
// error the lexer has advanced, so calling Next until TEOF terminates.
func (l *Lexer) Next() (Token, error) {
	tok, err := l.next()
	if debug.Lex() {
		if err != nil {
			debug.Logf("lex error %s\n", err)
		} else {
			debug.Logf("lex %s `%s`\n", tok.Type, tok.Bytes)
		}
	}
	return tok, err
}

func (l *Lexer) next() (Token, error) {
	for l.pos < len(l.d) {
		start := l.pos
		c := l.d[l.pos]
		l.pos++
		switch c {
		case ' ', '\t', '\r', '\n':
			continue
		case '{':
			return l.token(TLCurl, start), nil
		case '}':
			return l.token(TRCurl, start), nil
		case '[':
			if l.followsBigStringWord(start) {
				return l.bigString(start - len(bigStringWord))
			}
			return l.token(TLSquare, start), nil
		case ']':
			return l.token(TRSquare, start), nil
		case ':':
			return l.token(TColon, start), nil
		case '=':
			return l.token(TEquals, start), nil
		case '|':
			return l.token(TPipe, start), nil
		case ',':
			return l.token(TComma, start), nil
		case '#':
			if l.peek() == '!' {
				l.skipLine()
				continue
			}
			return l.token(TIdentifier, start), nil
		case '/':
			switch l.peek() {
			case '/':
				l.skipLine()
				continue
			case '*':
				l.pos++
				if !l.skipBlock() {
					return l.errToken(ErrUnterminatedComment, l.pos)
				}
				continue
			}
			return l.token(TIdentifier, start), nil
		case '"':
			return l.quoted(start, '"', TString, ErrUnterminatedString)
		case '\'':
			return l.quoted(start, '\'', TCharacter, ErrUnterminatedChar)
		default:
			switch {
			case isDigit(c):
				return l.number(start)
			case isIdentStart(c):
				return l.identifier(start)
			}
			_, sz := utf8.DecodeRune(l.d[start:])
			l.pos = start + sz
			return l.errToken(ErrUnexpectedChar, start)
		}
	}
	return Token{Type: TEOF, Pos: l.doc.Pos(len(l.d)), Bytes: l.d[len(l.d):]}, nil
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.d) {
		return 0
	}
	return l.d[l.pos]
}

func (l *Lexer) token(t TokenType, start int) Token {
	return Token{Type: t, Pos: l.doc.Pos(start), Bytes: l.d[start:l.pos]}
}

func (l *Lexer) errToken(e error, at int) (Token, error) {
	p := l.doc.Pos(at)
	return Token{Type: TError, Pos: p}, NewTokenizeErr(e, p)
}

func (l *Lexer) skipLine() {
	for l.pos < len(l.d) && l.d[l.pos] != '\n' {
		l.pos++
	}
}

// skipBlock consumes a block comment body up to and including the closing
// "*/". It reports false if the input ends first.
func (l *Lexer) skipBlock() bool {
	for l.pos < len(l.d) {
		if l.d[l.pos] == '*' && l.pos+1 < len(l.d) && l.d[l.pos+1] == '/' {
			l.pos += 2
			return true
		}
		l.pos++
	}
	return false
}

func (l *Lexer) quoted(start int, q byte, t TokenType, unterminated error) (Token, error) {
	for l.pos < len(l.d) {
		switch l.d[l.pos] {
		case '\\':
			l.pos++
			if l.pos >= len(l.d) {
				return l.errToken(ErrUnterminatedEscape, l.pos)
			}
			l.pos++
			continue
		case q:
			l.pos++
			return l.token(t, start), nil
		}
		l.pos++
	}
	return l.errToken(unterminated, l.pos)
}

func (l *Lexer) number(start int) (Token, error) {
	dot := false
	for l.pos < len(l.d) {
		c := l.d[l.pos]
		if c == '.' {
			dot = true
		} else if !isDigit(c) {
			break
		}
		l.pos++
	}
	switch {
	case dot:
		return l.token(TFloat, start), nil
	case l.peek() == 'L':
		l.pos++
		return l.token(TLong, start), nil
	}
	return l.token(TInteger, start), nil
}

func (l *Lexer) identifier(start int) (Token, error) {
	for l.pos < len(l.d) && isIdentContinue(l.d[l.pos]) {
		l.pos++
	}
	switch string(l.d[start:l.pos]) {
	case "true":
		return l.token(TTrue, start), nil
	case "false":
		return l.token(TFalse, start), nil
	case "null":
		return l.token(TNull, start), nil
	case bigStringWord:
		if l.peek() == '[' {
			l.pos++
			return l.bigString(start)
		}
	}
	return l.token(TIdentifier, start), nil
}

// followsBigStringWord reports whether the '[' at offset i is directly
// preceded by the word BigString, itself not part of a longer identifier.
func (l *Lexer) followsBigStringWord(i int) bool {
	n := len(bigStringWord)
	if i < n || string(l.d[i-n:i]) != bigStringWord {
		return false
	}
	return i == n || !isIdentContinue(l.d[i-n-1])
}

// bigString scans a BigString body whose opening '[' has been consumed;
// start is the offset of the word BigString.
func (l *Lexer) bigString(start int) (Token, error) {
	end, ok := MatchBracket(l.d, l.pos)
	if !ok {
		l.pos = len(l.d)
		return l.errToken(ErrUnterminatedBigString, l.pos)
	}
	l.pos = end + 1
	return l.token(TBigString, start), nil
}

// MatchBracket scans d from offset off, which lies just after an opening
// '[', counting nested brackets. It returns the offset of the matching ']'.
func MatchBracket(d []byte, off int) (int, bool) {
	depth := 1
	for i := off; i < len(d); i++ {
		switch d[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return len(d), false
}

// Tokenize scans all of d, returning the tokens up to but not including
// TEOF. It stops at the first lexical error.
func Tokenize(d []byte) ([]Token, error) {
	l := NewLexer(d)
	var res []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return res, err
		}
		if tok.Type == TEOF {
			return res, nil
		}
		res = append(res, tok)
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isIdentContinue(c byte) bool {
	return isIdentStart(c) || isDigit(c) || c == '-'
}

// IsIdentifier reports whether s lexes as a single identifier token.
func IsIdentifier(s string) bool {
	if s == "" || !isIdentStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isIdentContinue(s[i]) {
			return false
		}
	}
	switch s {
	case "true", "false", "null":
		return false
	}
	return true
}
