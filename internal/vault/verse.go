package vault

import (
	"fmt"
	"strings"

	"biblevault/internal/passage"
)

const frontMatter = "---\ncssclass: \"bible\"\n---\n"

// renderVerse builds the note for a single verse element.
func renderVerse(book string, chapter int, el passage.Element, maxVerses int) string {
	ref := VerseRef(book, chapter, el.Verse)
	aliases := ref.Aliases()

	var sb strings.Builder
	sb.WriteString("---\n")
	sb.WriteString("cssclass: \"bible\"\n")
	fmt.Fprintf(&sb, "aliases: [%q, %q]\n", aliases[0], aliases[1])
	sb.WriteString("---\n\n")
	sb.WriteString(VerseBreadcrumb(book, chapter, el.Verse, maxVerses) + "\n\n")
	sb.WriteString("### " + ref.Citation() + "\n\n")
	sb.WriteString(el.Text + "\n\n")
	sb.WriteString(ref.Anchor() + "\n")
	return sb.String()
}

// writeVerses emits one note per verse element of a chapter. Verse numbers
// come from the elements themselves; maxVerses is the count of verse
// elements.
func (p *Pipeline) writeVerses(bookDir, book string, chapter int, elements []passage.Element) error {
	maxVerses := passage.CountVerses(elements)
	for _, el := range elements {
		if el.Kind != passage.KindVerse {
			continue
		}
		ref := VerseRef(book, chapter, el.Verse)
		if err := p.write(bookDir, ref, renderVerse(book, chapter, el, maxVerses)); err != nil {
			return err
		}
	}
	return nil
}
