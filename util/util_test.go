package util

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"shorter than limit", "hello", 10, "hello"},
		{"exactly at limit", "hello", 5, "hello"},
		{"over limit", "hello world", 5, "hello..."},
		{"zero limit", "hello", 0, ""},
		{"multibyte runes", "héllo wörld", 5, "héllo..."},
		{"empty", "", 5, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Truncate(tc.in, tc.n); got != tc.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tc.in, tc.n, got, tc.want)
			}
		})
	}
}

func TestMaskSecret(t *testing.T) {
	if got := MaskSecret("sk-abcdef123456", 3); got != "sk-****" {
		t.Errorf("expected prefixed mask, got %q", got)
	}
	if got := MaskSecret("short", 4); got != "****" {
		t.Errorf("expected full mask for short secret, got %q", got)
	}
	if got := MaskSecret("", 3); got != "" {
		t.Errorf("expected empty for empty secret, got %q", got)
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce("", "fallback", "last"); got != "fallback" {
		t.Errorf("expected first non-zero value, got %q", got)
	}
	if got := Coalesce(0, 0); got != 0 {
		t.Errorf("expected zero when all zero, got %d", got)
	}
	if got := Coalesce(7, 3); got != 7 {
		t.Errorf("expected 7, got %d", got)
	}
}
