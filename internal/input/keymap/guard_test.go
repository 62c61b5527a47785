package keymap

import (
	"errors"
	"testing"

	"github.com/dshills/keycore/internal/input/mode"
)

func TestGuardEval(t *testing.T) {
	tests := []struct {
		name  string
		guard *Guard
		want  [3]bool // normal, insert, visual
	}{
		{"nil", nil, [3]bool{true, true, true}},
		{"equals", Equals(mode.Insert), [3]bool{false, true, false}},
		{"not", Not(Equals(mode.Insert)), [3]bool{true, false, true}},
		{"or", Or(Equals(mode.Normal), Equals(mode.Visual)), [3]bool{true, false, true}},
		{"and", And(Not(Equals(mode.Normal)), Not(Equals(mode.Visual))), [3]bool{false, true, false}},
		{"in", In(mode.Normal, mode.Insert), [3]bool{true, true, false}},
		{"empty and", And(), [3]bool{true, true, true}},
		{"empty or", Or(), [3]bool{false, false, false}},
		{"malformed not", &Guard{Op: GuardNot}, [3]bool{false, false, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, m := range mode.All() {
				if got := tt.guard.Eval(m); got != tt.want[i] {
					t.Errorf("Eval(%v) = %v, want %v", m, got, tt.want[i])
				}
			}
		})
	}
}

func TestParseGuard(t *testing.T) {
	tests := []struct {
		expr string
		want [3]bool // normal, insert, visual
	}{
		{"mode == normal", [3]bool{true, false, false}},
		{"mode==insert", [3]bool{false, true, false}},
		{"mode != insert", [3]bool{true, false, true}},
		{"!(mode == visual)", [3]bool{true, true, false}},
		{"!visual", [3]bool{true, true, false}},
		{"Normal || VISUAL", [3]bool{true, false, true}},
		{"mode == normal && !(mode == visual)", [3]bool{true, false, false}},
		{"normal || insert && visual", [3]bool{true, false, false}},
		{"(normal || insert) && !normal", [3]bool{false, true, false}},
		{"!!insert", [3]bool{false, true, false}},
		{"true", [3]bool{true, true, true}},
		{"false || visual", [3]bool{false, false, true}},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			g, err := ParseGuard(tt.expr)
			if err != nil {
				t.Fatalf("ParseGuard(%q) error = %v", tt.expr, err)
			}
			for i, m := range mode.All() {
				if got := g.Eval(m); got != tt.want[i] {
					t.Errorf("Eval(%v) = %v, want %v", m, got, tt.want[i])
				}
			}

			// The printed form must parse back to an equivalent guard.
			again, err := ParseGuard(g.String())
			if err != nil {
				t.Fatalf("ParseGuard(%q) error = %v", g.String(), err)
			}
			for _, m := range mode.All() {
				if again.Eval(m) != g.Eval(m) {
					t.Errorf("round trip %q -> %q differs in %v", tt.expr, g.String(), m)
				}
			}
		})
	}
}

func TestParseGuardEmpty(t *testing.T) {
	g, err := ParseGuard("  ")
	if err != nil || g != nil {
		t.Errorf("ParseGuard(blank) = %v, %v; want nil, nil", g, err)
	}
	if g.String() != "" {
		t.Errorf("nil guard String() = %q", g.String())
	}
}

func TestParseGuardErrors(t *testing.T) {
	exprs := []string{
		"mode",
		"mode = normal",
		"mode == ",
		"mode == replace",
		"command",
		"(normal",
		"normal)",
		"normal &&",
		"|| normal",
		"normal $ insert",
		"!",
	}

	for _, expr := range exprs {
		_, err := ParseGuard(expr)
		if !errors.Is(err, ErrInvalidGuard) {
			t.Errorf("ParseGuard(%q) error = %v, want ErrInvalidGuard", expr, err)
		}
		var se *GuardSyntaxError
		if !errors.As(err, &se) {
			t.Errorf("ParseGuard(%q) error type = %T", expr, err)
		}
	}
}

func TestGuardString(t *testing.T) {
	tests := []struct {
		guard *Guard
		want  string
	}{
		{Equals(mode.Normal), "mode == normal"},
		{Not(Equals(mode.Insert)), "mode != insert"},
		{Or(Equals(mode.Normal), Equals(mode.Visual)), "mode == normal || mode == visual"},
		{And(Or(Equals(mode.Normal), Equals(mode.Visual)), Not(Equals(mode.Visual))),
			"(mode == normal || mode == visual) && mode != visual"},
		{Not(Or(Equals(mode.Normal))), "!(mode == normal)"},
		{And(), "true"},
	}

	for _, tt := range tests {
		if got := tt.guard.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestMustParseGuardPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseGuard should panic")
		}
	}()
	MustParseGuard("mode ==")
}
