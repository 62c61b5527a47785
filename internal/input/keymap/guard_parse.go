package keymap

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/dshills/keycore/internal/input/mode"
)

// ErrInvalidGuard is matched by every guard syntax error.
var ErrInvalidGuard = errors.New("invalid guard expression")

// GuardSyntaxError describes a guard expression that failed to parse.
type GuardSyntaxError struct {
	Expr string
	Pos  int
	Msg  string
}

// Error implements error.
func (e *GuardSyntaxError) Error() string {
	return fmt.Sprintf("guard %q at offset %d: %s", e.Expr, e.Pos, e.Msg)
}

// Is reports whether target is ErrInvalidGuard.
func (e *GuardSyntaxError) Is(target error) bool {
	return target == ErrInvalidGuard
}

// ParseGuard parses a guard expression. The empty string yields a nil guard.
//
// Grammar:
//
//	expr    = and { "||" and }
//	and     = unary { "&&" unary }
//	unary   = "!" unary | primary
//	primary = "(" expr ")" | "mode" ( "==" | "!=" ) NAME | NAME | "true" | "false"
//
// A bare NAME is shorthand for "mode == NAME". Mode names are
// case-insensitive.
func ParseGuard(expr string) (*Guard, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, nil
	}

	p := &guardParser{src: expr}
	if err := p.tokenize(); err != nil {
		return nil, err
	}

	g, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, p.errorf(tok.pos, "unexpected %q", tok.text)
	}
	return g, nil
}

// MustParseGuard is like ParseGuard but panics on error.
func MustParseGuard(expr string) *Guard {
	g, err := ParseGuard(expr)
	if err != nil {
		panic(err)
	}
	return g
}

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokIdent
	tokAnd
	tokOr
	tokNot
	tokEq
	tokNe
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

type guardParser struct {
	src    string
	tokens []token
	next   int
}

func (p *guardParser) errorf(pos int, format string, args ...any) error {
	return &GuardSyntaxError{Expr: p.src, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *guardParser) tokenize() error {
	src := p.src
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '(':
			p.tokens = append(p.tokens, token{tokLParen, "(", i})
			i++
		case c == ')':
			p.tokens = append(p.tokens, token{tokRParen, ")", i})
			i++
		case strings.HasPrefix(src[i:], "&&"):
			p.tokens = append(p.tokens, token{tokAnd, "&&", i})
			i += 2
		case strings.HasPrefix(src[i:], "||"):
			p.tokens = append(p.tokens, token{tokOr, "||", i})
			i += 2
		case strings.HasPrefix(src[i:], "=="):
			p.tokens = append(p.tokens, token{tokEq, "==", i})
			i += 2
		case strings.HasPrefix(src[i:], "!="):
			p.tokens = append(p.tokens, token{tokNe, "!=", i})
			i += 2
		case c == '!':
			p.tokens = append(p.tokens, token{tokNot, "!", i})
			i++
		case isIdentByte(c):
			start := i
			for i < len(src) && isIdentByte(src[i]) {
				i++
			}
			p.tokens = append(p.tokens, token{tokIdent, src[start:i], start})
		default:
			return p.errorf(i, "unexpected character %q", c)
		}
	}
	p.tokens = append(p.tokens, token{tokEOF, "end of input", len(src)})
	return nil
}

func isIdentByte(c byte) bool {
	return c == '_' || c < 0x80 && (unicode.IsLetter(rune(c)) || unicode.IsDigit(rune(c)))
}

func (p *guardParser) peek() token {
	return p.tokens[p.next]
}

func (p *guardParser) advance() token {
	tok := p.tokens[p.next]
	if tok.kind != tokEOF {
		p.next++
	}
	return tok
}

func (p *guardParser) parseOr() (*Guard, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	operands := []*Guard{left}
	for p.peek().kind == tokOr {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		operands = append(operands, right)
	}
	if len(operands) == 1 {
		return left, nil
	}
	return Or(operands...), nil
}

func (p *guardParser) parseAnd() (*Guard, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	operands := []*Guard{left}
	for p.peek().kind == tokAnd {
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		operands = append(operands, right)
	}
	if len(operands) == 1 {
		return left, nil
	}
	return And(operands...), nil
}

func (p *guardParser) parseUnary() (*Guard, error) {
	if p.peek().kind == tokNot {
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Not(operand), nil
	}
	return p.parsePrimary()
}

func (p *guardParser) parsePrimary() (*Guard, error) {
	tok := p.advance()
	switch tok.kind {
	case tokLParen:
		g, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if closing := p.advance(); closing.kind != tokRParen {
			return nil, p.errorf(closing.pos, "expected ')', got %q", closing.text)
		}
		return g, nil

	case tokIdent:
		switch strings.ToLower(tok.text) {
		case "true":
			return And(), nil
		case "false":
			return Or(), nil
		case "mode":
			op := p.advance()
			if op.kind != tokEq && op.kind != tokNe {
				return nil, p.errorf(op.pos, "expected '==' or '!=' after mode, got %q", op.text)
			}
			name := p.advance()
			if name.kind != tokIdent {
				return nil, p.errorf(name.pos, "expected mode name, got %q", name.text)
			}
			m, err := p.mode(name)
			if err != nil {
				return nil, err
			}
			if op.kind == tokNe {
				return Not(Equals(m)), nil
			}
			return Equals(m), nil
		default:
			m, err := p.mode(tok)
			if err != nil {
				return nil, err
			}
			return Equals(m), nil
		}

	default:
		return nil, p.errorf(tok.pos, "unexpected %q", tok.text)
	}
}

func (p *guardParser) mode(tok token) (mode.Mode, error) {
	m, err := mode.Parse(tok.text)
	if err != nil {
		return 0, p.errorf(tok.pos, "unknown mode %q", tok.text)
	}
	return m, nil
}
