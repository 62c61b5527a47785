package keymap

import (
	"strings"

	"github.com/dshills/keycore/internal/input/mode"
)

// GuardOp identifies the node type of a guard expression.
type GuardOp uint8

const (
	// GuardEquals is true when the live mode equals Guard.Mode.
	GuardEquals GuardOp = iota

	// GuardNot negates its single operand.
	GuardNot

	// GuardAnd is true when every operand is true.
	GuardAnd

	// GuardOr is true when any operand is true.
	GuardOr
)

// Guard is a boolean expression over the live mode. A nil *Guard is always
// true and matches every mode.
type Guard struct {
	Op       GuardOp
	Mode     mode.Mode
	Operands []*Guard
}

// Equals returns a guard that is true in mode m.
func Equals(m mode.Mode) *Guard {
	return &Guard{Op: GuardEquals, Mode: m}
}

// Not returns the negation of g.
func Not(g *Guard) *Guard {
	return &Guard{Op: GuardNot, Operands: []*Guard{g}}
}

// And returns a guard that is true when all of gs are true.
func And(gs ...*Guard) *Guard {
	return &Guard{Op: GuardAnd, Operands: gs}
}

// Or returns a guard that is true when any of gs is true.
func Or(gs ...*Guard) *Guard {
	return &Guard{Op: GuardOr, Operands: gs}
}

// In returns a guard that is true in any of modes.
func In(modes ...mode.Mode) *Guard {
	if len(modes) == 1 {
		return Equals(modes[0])
	}
	gs := make([]*Guard, len(modes))
	for i, m := range modes {
		gs[i] = Equals(m)
	}
	return Or(gs...)
}

// Eval evaluates the guard against m.
func (g *Guard) Eval(m mode.Mode) bool {
	if g == nil {
		return true
	}

	switch g.Op {
	case GuardEquals:
		return m == g.Mode
	case GuardNot:
		return len(g.Operands) == 1 && !g.Operands[0].Eval(m)
	case GuardAnd:
		for _, op := range g.Operands {
			if !op.Eval(m) {
				return false
			}
		}
		return true
	case GuardOr:
		for _, op := range g.Operands {
			if op.Eval(m) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// String returns the guard in the expression syntax accepted by ParseGuard.
// A nil guard renders as "".
func (g *Guard) String() string {
	if g == nil {
		return ""
	}
	var sb strings.Builder
	g.write(&sb, false)
	return sb.String()
}

func (g *Guard) write(sb *strings.Builder, nested bool) {
	switch g.Op {
	case GuardEquals:
		sb.WriteString("mode == ")
		sb.WriteString(g.Mode.String())
	case GuardNot:
		if len(g.Operands) == 1 && g.Operands[0] != nil && g.Operands[0].Op == GuardEquals {
			sb.WriteString("mode != ")
			sb.WriteString(g.Operands[0].Mode.String())
			return
		}
		sb.WriteString("!(")
		if len(g.Operands) == 1 && g.Operands[0] != nil {
			g.Operands[0].write(sb, false)
		}
		sb.WriteString(")")
	case GuardAnd, GuardOr:
		sep := " && "
		if g.Op == GuardOr {
			sep = " || "
		}
		if len(g.Operands) == 0 {
			if g.Op == GuardAnd {
				sb.WriteString("true")
			} else {
				sb.WriteString("false")
			}
			return
		}
		if nested {
			sb.WriteString("(")
		}
		for i, op := range g.Operands {
			if i > 0 {
				sb.WriteString(sep)
			}
			if op == nil {
				sb.WriteString("true")
				continue
			}
			op.write(sb, op.Op == GuardAnd || op.Op == GuardOr)
		}
		if nested {
			sb.WriteString(")")
		}
	}
}
