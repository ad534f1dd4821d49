package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTMLToText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		html     string
		expected string
	}{
		{
			name:     "br becomes newline",
			html:     "line one<br>line two<br/>line three<BR />line four",
			expected: "line one\nline two\nline three\nline four",
		},
		{
			name:     "paragraphs become blank lines",
			html:     "<p>first paragraph</p><p>second paragraph</p>",
			expected: "first paragraph\n\nsecond paragraph",
		},
		{
			name:     "headings become blank lines",
			html:     "<h1>Title</h1><div>body text</div>",
			expected: "Title\n\nbody text",
		},
		{
			name:     "inline tags stripped",
			html:     "some <strong>bold</strong> and <a href=\"https://example.com\">a link</a>",
			expected: "some bold and a link",
		},
		{
			name:     "entities decoded",
			html:     "Fish &amp; chips &lt;today&gt; for &quot;free&quot;&nbsp;&#39;now&#39;",
			expected: `Fish & chips <today> for "free" 'now'`,
		},
		{
			name:     "excess newlines collapsed",
			html:     "<p>one</p><br><br><br><p>two</p>",
			expected: "one\n\ntwo",
		},
		{
			name:     "surrounding whitespace trimmed",
			html:     "<p>  only paragraph  </p>",
			expected: "only paragraph",
		},
		{
			name:     "empty input",
			html:     "",
			expected: "",
		},
		{
			name:     "plain text passes through",
			html:     "no markup at all",
			expected: "no markup at all",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, htmlToText(tt.html))
		})
	}
}
