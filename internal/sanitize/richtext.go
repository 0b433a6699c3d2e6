package sanitize

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// The rich-text pass is a denylist, not a full sanitizer. Tags are read with the
// HTML tokenizer so attribute separators and quoted values parse the way a browser
// parses them.
var urlAttrs = map[string]bool{
	"href":       true,
	"xlink:href": true,
}

// RichText caps the description and strips the known-dangerous markup.
// It is idempotent: RichText(RichText(s)) == RichText(s).
func RichText(s string) string {
	if utf8.RuneCountInString(s) > MaxDescription {
		s = string([]rune(s)[:MaxDescription])
	}
	// Removing markup can splice fragments into a new dangerous tag, so run to a fixed point.
	// Tags are canonical after one pass and every later change drops a '<'.
	for {
		next := stripOnce(s)
		if next == s {
			return s
		}
		s = next
	}
}

func stripOnce(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	inRaw := false
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			if !inRaw {
				b.Write(z.Raw())
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			if dangerous(tok.Data) {
				inRaw = tt == html.StartTagToken
				continue
			}
			tok.Attr = safeAttrs(tok.Attr)
			b.WriteString(tok.String())
		case html.EndTagToken:
			tok := z.Token()
			if dangerous(tok.Data) {
				inRaw = false
				continue
			}
			b.WriteString(tok.String())
		default:
			b.WriteString(z.Token().String())
		}
	}
}

func dangerous(tag string) bool {
	switch tag {
	case "script", "style", "iframe":
		return true
	}
	return false
}

func safeAttrs(attrs []html.Attribute) []html.Attribute {
	out := attrs[:0]
	for _, a := range attrs {
		key := strings.TrimLeft(strings.ToLower(a.Key), "/")
		if strings.HasPrefix(key, "on") {
			continue
		}
		if urlAttrs[key] && isScriptURL(a.Val) {
			a.Val = "#"
		}
		out = append(out, a)
	}
	return out
}

// isScriptURL ignores the tabs, newlines and leading control characters browsers skip in URLs.
func isScriptURL(v string) bool {
	v = strings.Map(func(r rune) rune {
		switch r {
		case '\t', '\n', '\r':
			return -1
		}
		return r
	}, v)
	v = strings.TrimLeft(v, "\x00\x01\x02\x03\x04\x05\x06\x07\x08\x0b\x0c\x0e\x0f\x10\x11\x12\x13\x14\x15\x16\x17\x18\x19\x1a\x1b\x1c\x1d\x1e\x1f ")
	return strings.HasPrefix(strings.ToLower(v), "javascript:")
}
