package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeadingsAndLists(t *testing.T) {
	tokens := Parse(`# Title

Some intro text.

### Step 1: Register
#### Actionable Steps
1. File Form A
2. Get Certificate B

- Unordered one
- Unordered two`)

	require.Len(t, tokens, 6)

	assert.Equal(t, Token{Type: TokenHeading, Depth: 1, Text: "Title"}, tokens[0])
	assert.Equal(t, TokenParagraph, tokens[1].Type)
	assert.Equal(t, Token{Type: TokenHeading, Depth: 3, Text: "Step 1: Register"}, tokens[2])
	assert.Equal(t, Token{Type: TokenHeading, Depth: 4, Text: "Actionable Steps"}, tokens[3])
	assert.Equal(t, []string{"File Form A", "Get Certificate B"}, tokens[4].Items)
	assert.Equal(t, []string{"Unordered one", "Unordered two"}, tokens[5].Items)
}

func TestParseStripsLiteralEnumerators(t *testing.T) {
	// Generated text sometimes double-enumerates list items.
	tokens := Parse("- 7. Obtain the certificate")

	require.Len(t, tokens, 1)
	assert.Equal(t, []string{"Obtain the certificate"}, tokens[0].Items)
}

func TestParseToleratesInlineFormatting(t *testing.T) {
	tokens := Parse("## **Bold** heading\n1. Item with [a link](https://example.com) and `code`")

	require.Len(t, tokens, 2)
	assert.Equal(t, TokenHeading, tokens[0].Type)
	assert.Contains(t, tokens[0].Text, "Bold")
	assert.Contains(t, tokens[1].Items[0], "a link")
}

func TestStripFence(t *testing.T) {
	doc := "### Step 1: Go\n1. Do it"

	assert.Equal(t, doc, StripFence("```markdown\n"+doc+"\n```"))
	assert.Equal(t, doc, StripFence("```\n"+doc+"\n```"))
	assert.Equal(t, doc, StripFence(doc))
}

func TestParseNeverFails(t *testing.T) {
	for _, input := range []string{
		"",
		"Just a plain sentence with no markdown structure.",
		"``` broken fence",
		"######## too deep",
	} {
		tokens := Parse(input)
		for _, tok := range tokens {
			assert.NotEqual(t, TokenHeading, tok.Type, "input %q should yield no headings", input)
		}
	}
}
