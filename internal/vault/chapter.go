package vault

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"biblevault/internal/passage"
)

// renderChapter builds a chapter note. Subtitles become level-2 headings;
// verses are transcluded from their own notes rather than copied.
func renderChapter(book string, chapter, maxChapters int, elements []passage.Element) string {
	ref := ChapterRef(book, chapter)

	var sb strings.Builder
	sb.WriteString(frontMatter)
	sb.WriteString("# " + ref.Citation() + "\n\n")
	sb.WriteString(ChapterBreadcrumb(book, chapter, maxChapters) + "\n\n---\n\n")
	for _, el := range elements {
		switch el.Kind {
		case passage.KindSubtitle:
			sb.WriteString("## " + el.Text + "\n\n")
		case passage.KindVerse:
			sb.WriteString(VerseRef(book, chapter, el.Verse).Embed() + "\n\n")
		}
	}
	return sb.String()
}

// writeChapter fetches and parses one chapter, writes its note, then its
// verse notes.
func (p *Pipeline) writeChapter(ctx context.Context, bookDir, book string, chapter, maxChapters int) error {
	ref := ChapterRef(book, chapter)
	elements, err := p.source.Chapter(ctx, ref.Citation(), p.version)
	if err != nil {
		return err
	}

	if gapErr := passage.CheckContiguous(elements); gapErr != nil {
		if p.strict {
			return fmt.Errorf("%s: %w", ref.Citation(), gapErr)
		}
		var gap *passage.VerseGapError
		if errors.As(gapErr, &gap) {
			p.logger.Warn("verse numbering is not contiguous; neighbour links may dangle",
				zap.String("chapter", ref.Citation()),
				zap.Int("want", gap.Want),
				zap.Int("got", gap.Got))
		}
	}

	if err := p.write(bookDir, ref, renderChapter(book, chapter, maxChapters, elements)); err != nil {
		return err
	}
	return p.writeVerses(bookDir, book, chapter, elements)
}
