package passage

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// ErrNoPassage is returned when markup has no passage container, which is
// what the site serves for an unknown reference or version.
var ErrNoPassage = errors.New("no passage text in markup")

// verseClassRe matches the per-verse class of a text span, e.g. "Gen-1-3"
// or "1Sam-2-10".
var verseClassRe = regexp.MustCompile(`^[0-9A-Za-z]+-(\d+)-(\d+)$`)

// skipped holds classes whose subtree never contributes text.
var skipped = map[string]bool{
	"footnote":            true,
	"crossreference":      true,
	"footnotes":           true,
	"crossrefs":           true,
	"versenum":            true,
	"chapternum":          true,
	"full-chap-link":      true,
	"passage-other-trans": true,
}

// GatewayParser extracts subtitles and verses from a passage page.
type GatewayParser struct{}

// ParseChapter implements Parser. Within the passage container, h3
// headings become subtitles and text spans are grouped by verse number:
// every span of one verse (poetry lines, text after a mid-verse heading) is
// joined onto the first element for that verse with a space.
func (GatewayParser) ParseChapter(markup string) ([]Element, error) {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}
	container := findByClass(doc, "passage-text")
	if container == nil {
		return nil, ErrNoPassage
	}

	var out []Element
	// A heading may split a verse; later spans still belong to the verse
	// already emitted.
	verseAt := make(map[int]int)
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type != html.ElementNode {
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				walk(c)
			}
			return
		}
		if hasAnyClass(n, skipped) {
			return
		}
		switch {
		case n.Data == "h3":
			if text := nodeText(n); text != "" {
				out = append(out, Subtitle(text))
			}
			return
		case n.Data == "span" && hasClass(n, "text"):
			if verse, ok := verseNumber(n); ok {
				text := nodeText(n)
				if i, seen := verseAt[verse]; seen {
					out[i].Text = joinText(out[i].Text, text)
				} else {
					verseAt[verse] = len(out)
					out = append(out, Verse(verse, text))
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(container)
	return out, nil
}

// HasPassage reports ErrNoPassage for markup without a passage container,
// such as a "No results found" or bot-check page served with status 200.
func HasPassage(markup string) error {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return err
	}
	if findByClass(doc, "passage-text") == nil {
		return ErrNoPassage
	}
	return nil
}

func verseNumber(n *html.Node) (int, bool) {
	for _, class := range classes(n) {
		m := verseClassRe.FindStringSubmatch(class)
		if m == nil {
			continue
		}
		v, err := strconv.Atoi(m[2])
		if err != nil || v < 1 {
			return 0, false
		}
		return v, true
	}
	return 0, false
}

// nodeText collects the visible text below n with whitespace collapsed.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			sb.WriteString(n.Data)
			return
		case html.ElementNode:
			if hasAnyClass(n, skipped) {
				return
			}
			if n.Data == "br" {
				sb.WriteByte(' ')
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}

func joinText(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + " " + b
}

func findByClass(n *html.Node, class string) *html.Node {
	if n.Type == html.ElementNode && hasClass(n, class) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByClass(c, class); found != nil {
			return found
		}
	}
	return nil
}

func classes(n *html.Node) []string {
	for _, a := range n.Attr {
		if a.Key == "class" {
			return strings.Fields(a.Val)
		}
	}
	return nil
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range classes(n) {
		if c == class {
			return true
		}
	}
	return false
}

func hasAnyClass(n *html.Node, set map[string]bool) bool {
	for _, c := range classes(n) {
		if set[c] {
			return true
		}
	}
	return false
}
