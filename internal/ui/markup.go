package ui

import (
	"strings"

	"golang.org/x/net/html"
)

// markupLine is one line of a row's text block
type markupLine struct {
	Class string // class attribute of the enclosing div
	Text  string // unescaped text
	Bold  bool
}

// parseMarkup splits row markup into lines, one per div. Entities are
// decoded, so escaped markup comes back as literal text. Unknown tags are
// ignored.
func parseMarkup(markup string) []markupLine {
	var (
		lines []markupLine
		cur   *markupLine
		text  strings.Builder
		bold  int
	)

	flush := func() {
		if cur == nil {
			return
		}
		cur.Text = strings.TrimSpace(text.String())
		lines = append(lines, *cur)
		cur = nil
		text.Reset()
	}

	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			// io.EOF, or a read error on the in-memory reader which cannot happen
			flush()
			return lines
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			switch tok.Data {
			case tagLine:
				flush()
				cur = &markupLine{Class: attrValue(tok, attrCls)}
			case tagBold:
				bold++
			}
		case html.EndTagToken:
			tok := z.Token()
			switch tok.Data {
			case tagLine:
				flush()
			case tagBold:
				if bold > 0 {
					bold--
				}
			}
		case html.TextToken:
			s := string(z.Text())
			if strings.TrimSpace(s) == "" && cur == nil {
				continue
			}
			if cur == nil {
				cur = &markupLine{}
			}
			if bold > 0 {
				cur.Bold = true
			}
			text.WriteString(s)
		}
	}
}

func attrValue(tok html.Token, key string) string {
	for _, a := range tok.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
