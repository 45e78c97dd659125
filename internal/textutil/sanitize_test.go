package textutil

import "testing"

func TestSanitizeNamePassthrough(t *testing.T) {
	name := "żółty plik.txt"
	if got := SanitizeName(name); got != name {
		t.Errorf("Clean names must pass through unchanged, got %q", got)
	}
}

func TestSanitizeNameControlChars(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"evil\x1b[31mname", "evil?[31mname"},
		{"tab\there", "tab here"},
		{"line\nbreak", "line break"},
		{"del\x7f", "del?"},
	}
	for _, c := range cases {
		if got := SanitizeName(c.in); got != c.want {
			t.Errorf("SanitizeName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSanitizeNameFormattingRunes(t *testing.T) {
	got := SanitizeName("exe‮txt.bat")
	if got != "exe⟪RLO⟫txt.bat" {
		t.Errorf("Bidi override must be made visible, got %q", got)
	}
}
