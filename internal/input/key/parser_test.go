package key

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Event
	}{
		{"a", Event{Key: KeyRune, Rune: 'a'}},
		{"A", Event{Key: KeyRune, Rune: 'A'}},
		{"1", Event{Key: KeyRune, Rune: '1'}},
		{"@", Event{Key: KeyRune, Rune: '@'}},
		{"+", Event{Key: KeyRune, Rune: '+'}},
		{"<", Event{Key: KeyRune, Rune: '<'}},
		{"Space", Event{Key: KeyRune, Rune: ' '}},
		{"Enter", Event{Key: KeyEnter}},
		{"esc", Event{Key: KeyEscape}},
		{"F5", Event{Key: KeyF5}},
		{"Ctrl+Q", Event{Key: KeyRune, Rune: 'q', Modifiers: ModCtrl}},
		{"ctrl+shift+p", Event{Key: KeyRune, Rune: 'p', Modifiers: ModCtrl}},
		{"Alt+F4", Event{Key: KeyF4, Modifiers: ModAlt}},
		{"Ctrl++", Event{Key: KeyRune, Rune: '+', Modifiers: ModCtrl}},
		{"Shift+a", Event{Key: KeyRune, Rune: 'A'}},
		{"<C-q>", Event{Key: KeyRune, Rune: 'q', Modifiers: ModCtrl}},
		{"<C-Q>", Event{Key: KeyRune, Rune: 'q', Modifiers: ModCtrl}},
		{"<A-f>", Event{Key: KeyRune, Rune: 'f', Modifiers: ModAlt}},
		{"<S-Tab>", Event{Key: KeyTab, Modifiers: ModShift}},
		{"<CR>", Event{Key: KeyEnter}},
		{"<Esc>", Event{Key: KeyEscape}},
		{"<Space>", Event{Key: KeyRune, Rune: ' '}},
		{"<C-->", Event{Key: KeyRune, Rune: '-', Modifiers: ModCtrl}},
		{"<H-x>", Event{Key: KeyRune, Rune: 'x', Modifiers: ModHyper}},
		{"<D-s>", Event{Key: KeyRune, Rune: 's', Modifiers: ModSuper}},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.spec, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec string
		want error
	}{
		{"", ErrEmptySpec},
		{"   ", ErrEmptySpec},
		{"Banana", ErrInvalidSpec},
		{"Foo+a", ErrInvalidSpec},
		{"<X-a>", ErrInvalidSpec},
		{"<Ctrl-a>", ErrInvalidSpec},
		{"Ctrl+", ErrInvalidSpec},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			_, err := Parse(tt.spec)
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.spec, err, tt.want)
			}
		})
	}
}

func TestNormalizeSpecRoundTrip(t *testing.T) {
	specs := []string{"a", "A", "<C-q>", "<CR>", "<Esc>", "<S-Tab>", "<F5>", "<Space>", "<C-A-x>"}
	for _, spec := range specs {
		got, err := NormalizeSpec(spec)
		if err != nil {
			t.Fatalf("NormalizeSpec(%q) error = %v", spec, err)
		}
		if got != spec {
			t.Errorf("NormalizeSpec(%q) = %q", spec, got)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse should panic on an invalid spec")
		}
	}()
	MustParse("NotAKey")
}
