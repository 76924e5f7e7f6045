package markdown

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

type TokenType int

const (
	TokenHeading TokenType = iota
	TokenList
	TokenParagraph
	TokenOther
)

// Token is one top-level structural block of a guidance document.
// Depth is set for headings only (1-6), Items for lists only.
type Token struct {
	Type  TokenType
	Depth int
	Text  string
	Items []string
}

var (
	// Advice services tend to wrap their own markdown output in a code fence.
	markdownFenceRegex = regexp.MustCompile("(?s)^```markdown\n(.*?)\n```$")
	genericFenceRegex  = regexp.MustCompile("(?s)^```(?:\\w*\n)?(.*?)\n?```$")
	enumeratorRegex    = regexp.MustCompile(`^[0-9]+\.\s*`)
)

// StripFence removes a wrapping code fence from the document if the whole
// input is a single fenced block. Anything else passes through unchanged.
func StripFence(raw string) string {
	if m := markdownFenceRegex.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	if m := genericFenceRegex.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	return raw
}

// Parse tokenizes guidance markdown into structural tokens, in document order.
// It never fails: spans goldmark cannot classify degrade to TokenOther, and the
// worst case is a stream with no headings and no lists.
func Parse(raw string) []Token {
	source := []byte(StripFence(raw))

	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(source))

	var tokens []Token
	for node := root.FirstChild(); node != nil; node = node.NextSibling() {
		switch n := node.(type) {
		case *ast.Heading:
			tokens = append(tokens, Token{
				Type:  TokenHeading,
				Depth: n.Level,
				Text:  strings.TrimSpace(string(n.Text(source))),
			})
		case *ast.List:
			tokens = append(tokens, Token{
				Type:  TokenList,
				Items: listItems(n, source),
			})
		case *ast.Paragraph:
			tokens = append(tokens, Token{
				Type: TokenParagraph,
				Text: strings.TrimSpace(string(n.Text(source))),
			})
		default:
			tokens = append(tokens, Token{Type: TokenOther})
		}
	}
	return tokens
}

// listItems extracts the item texts of a list block. Goldmark already strips
// the markdown enumerator, but generated text sometimes carries a second
// literal one ("7. Do the thing"), so we strip that too.
func listItems(list *ast.List, source []byte) []string {
	var items []string
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		// First child block holds the item's own line. Nested sub-lists
		// hang off the item as later children and are ignored here.
		block := item.FirstChild()
		if block == nil {
			continue
		}
		text := strings.TrimSpace(string(block.Text(source)))
		text = strings.TrimSpace(enumeratorRegex.ReplaceAllString(text, ""))
		if text != "" {
			items = append(items, text)
		}
	}
	return items
}
