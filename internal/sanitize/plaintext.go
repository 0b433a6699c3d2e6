package sanitize

import (
	"strings"

	"golang.org/x/net/html"
)

// PlainText drops all markup and collapses whitespace. It feeds the search blob only.
func PlainText(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	skip := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or a malformed tail; either way the text gathered so far is the answer.
			return strings.Join(strings.Fields(b.String()), " ")
		case html.StartTagToken:
			if isRawText(z) {
				skip++
			}
			b.WriteByte(' ')
		case html.EndTagToken:
			if isRawText(z) && skip > 0 {
				skip--
			}
			b.WriteByte(' ')
		case html.SelfClosingTagToken:
			b.WriteByte(' ')
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		}
	}
}

func isRawText(z *html.Tokenizer) bool {
	name, _ := z.TagName()
	switch string(name) {
	case "script", "style", "iframe":
		return true
	}
	return false
}
