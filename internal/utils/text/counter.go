// Package text provides utilities for text processing and analysis.
// It includes markup sanitization for untrusted feed content and
// character counting used by summarizer metrics.
package text

// CountRunes counts the number of Unicode characters (runes) in the given text.
// Multi-byte characters count once, so "canción" is 7 and "日本語" is 3.
func CountRunes(text string) int {
	return len([]rune(text))
}
