package text

import (
	"html"
	"regexp"
	"strings"
)

// Pre-compiled patterns, applied in declaration order by StripMarkup.
var (
	scriptBlock = regexp.MustCompile(`(?is)<script[^>]*?>.*?</script>`)
	styleBlock  = regexp.MustCompile(`(?is)<style[^>]*?>.*?</style>`)
	anyTag      = regexp.MustCompile(`<[^>]*>`)
	lineBreaks  = regexp.MustCompile(`[\r\n]+`)
	spaceRuns   = regexp.MustCompile(` +`)
)

// noiseReplacer collapses vertical bars to spaces and drops double quotes and backslashes.
var noiseReplacer = strings.NewReplacer(
	"|", " ",
	`"`, "",
	`\`, "",
)

// StripMarkup converts raw feed markup into plain text.
//
// Steps, in order:
//  1. Decode HTML/XML character entities.
//  2. Remove <script> and <style> blocks (case-insensitive, multi-line).
//  3. Remove every remaining tag.
//  4. Collapse line breaks to a space, replace '|' with a space, drop '"' and '\',
//     and squeeze runs of spaces.
//  5. Trim surrounding whitespace.
//
// Entities are decoded before tags are stripped, so an encoded "&lt;script&gt;"
// block is removed too. Markup that only appears after stripping is not
// re-sanitized.
func StripMarkup(raw string) string {
	s := html.UnescapeString(raw)
	s = scriptBlock.ReplaceAllString(s, "")
	s = styleBlock.ReplaceAllString(s, "")
	s = anyTag.ReplaceAllString(s, "")
	s = lineBreaks.ReplaceAllString(s, " ")
	s = noiseReplacer.Replace(s)
	s = spaceRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Sanitize is the nil-preserving form of StripMarkup: an absent input
// yields an absent output.
func Sanitize(raw *string) *string {
	if raw == nil {
		return nil
	}
	out := StripMarkup(*raw)
	return &out
}
