package parser

import (
	"html/template"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// summaryTags are the only elements kept from a directory summary, always without attributes.
var summaryTags = map[atom.Atom]bool{
	atom.P:      true,
	atom.Br:     true,
	atom.B:      true,
	atom.Strong: true,
	atom.I:      true,
	atom.Em:     true,
	atom.U:      true,
}

// droppedContent are elements whose text content is removed along with the tags.
var droppedContent = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Iframe:   true,
	atom.Noscript: true,
}

// SanitizeSummary turns the HTML summary of a show into markup that is safe to embed in a page.
// Text is re-escaped, allowed tags are re-emitted bare, everything else is stripped.
func SanitizeSummary(raw string) template.HTML {
	if raw == "" {
		return ""
	}

	var sb strings.Builder
	skipDepth := 0
	z := html.NewTokenizer(strings.NewReader(raw))

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			// io.EOF, or a malformed tail that the tokenizer cannot recover from
			return template.HTML(sb.String())

		case html.TextToken:
			if skipDepth == 0 {
				sb.WriteString(html.EscapeString(string(z.Text())))
			}

		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			if droppedContent[a] {
				if tt == html.StartTagToken {
					skipDepth++
				}
				continue
			}
			if skipDepth == 0 && summaryTags[a] {
				sb.WriteString("<" + a.String() + ">")
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			if droppedContent[a] {
				if skipDepth > 0 {
					skipDepth--
				}
				continue
			}
			if skipDepth == 0 && summaryTags[a] && a != atom.Br {
				sb.WriteString("</" + a.String() + ">")
			}
		}
	}
}
