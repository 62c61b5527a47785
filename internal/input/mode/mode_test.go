package mode

import (
	"errors"
	"testing"
)

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{Normal, "normal"},
		{Insert, "insert"},
		{Visual, "visual"},
		{Mode(9), "mode(9)"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestModeDisplayName(t *testing.T) {
	if got := Insert.DisplayName(); got != "INSERT" {
		t.Errorf("Insert.DisplayName() = %q, want INSERT", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{"normal", Normal, false},
		{"Insert", Insert, false},
		{" VISUAL ", Visual, false},
		{"replace", Normal, true},
		{"", Normal, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownMode) {
					t.Errorf("Parse(%q) error = %v, want ErrUnknownMode", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, m := range All() {
		got, err := Parse(m.String())
		if err != nil || got != m {
			t.Errorf("Parse(%q) = %v, %v", m.String(), got, err)
		}
	}
}

func TestModeCursorStyle(t *testing.T) {
	tests := []struct {
		mode Mode
		want CursorStyle
	}{
		{Insert, CursorSteadyBar},
		{Normal, CursorSteadyBlock},
		{Visual, CursorSteadyUnderline},
	}

	for _, tt := range tests {
		if got := tt.mode.CursorStyle(); got != tt.want {
			t.Errorf("%v.CursorStyle() = %v, want %v", tt.mode, got, tt.want)
		}
	}
}

func TestCursorStyleString(t *testing.T) {
	styles := []CursorStyle{
		CursorDefault,
		CursorBlinkingBlock,
		CursorSteadyBlock,
		CursorBlinkingUnderline,
		CursorSteadyUnderline,
		CursorBlinkingBar,
		CursorSteadyBar,
	}

	seen := make(map[string]bool)
	for _, s := range styles {
		name := s.String()
		if name == "unknown" {
			t.Errorf("CursorStyle(%d).String() = unknown", s)
		}
		if seen[name] {
			t.Errorf("duplicate cursor style name %q", name)
		}
		seen[name] = true
	}

	if got := CursorStyle(42).String(); got != "unknown" {
		t.Errorf("CursorStyle(42).String() = %q, want unknown", got)
	}
}

func TestModeValid(t *testing.T) {
	for _, m := range All() {
		if !m.Valid() {
			t.Errorf("%v.Valid() = false", m)
		}
	}
	if Mode(3).Valid() {
		t.Error("Mode(3).Valid() = true")
	}
}
