package email

import (
	"regexp"
	"strings"
)

var (
	brTagRegex         = regexp.MustCompile(`(?i)<br\s*/?>`)
	blockCloseRegex    = regexp.MustCompile(`(?i)</(p|div|h[1-6])>`)
	anyTagRegex        = regexp.MustCompile(`<[^>]*>`)
	excessNewlineRegex = regexp.MustCompile(`\n{3,}`)
)

// entityReplacer decodes the small fixed set of entities that matter for
// plaintext fallbacks. Anything rarer passes through literally.
var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
)

// htmlToText derives a plaintext fallback from an HTML body for providers
// that want both parts but were only given HTML. Line breaks become newlines,
// closing block tags become paragraph breaks, remaining tags are stripped,
// and runs of three or more newlines collapse to two.
func htmlToText(html string) string {
	text := brTagRegex.ReplaceAllString(html, "\n")
	text = blockCloseRegex.ReplaceAllString(text, "\n\n")
	text = anyTagRegex.ReplaceAllString(text, "")
	text = entityReplacer.Replace(text)
	text = excessNewlineRegex.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
