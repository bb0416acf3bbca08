package util

// Truncate shortens s to at most n runes, appending "..." when it was cut.
// Inputs are user text, so runes rather than bytes.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

// MaskSecret hides all but the first visiblePrefix characters of s.
// Short secrets are fully masked so their length cannot be inferred.
func MaskSecret(s string, visiblePrefix int) string {
	if s == "" {
		return ""
	}
	if visiblePrefix < 0 {
		visiblePrefix = 0
	}
	if len(s) <= visiblePrefix*2 {
		return "****"
	}
	return s[:visiblePrefix] + "****"
}
