package vault

import (
	"fmt"
	"path/filepath"
)

// Ref addresses a book landing page (Chapter == 0), a chapter
// (Verse == 0) or a single verse. The same Ref always yields the same file
// name and link text, which is what keeps links between emitters resolvable.
type Ref struct {
	Book    string
	Chapter int
	Verse   int
}

// BookRef addresses a book's landing file.
func BookRef(book string) Ref { return Ref{Book: book} }

// ChapterRef addresses a chapter file.
func ChapterRef(book string, chapter int) Ref { return Ref{Book: book, Chapter: chapter} }

// VerseRef addresses a verse file.
func VerseRef(book string, chapter, verse int) Ref {
	return Ref{Book: book, Chapter: chapter, Verse: verse}
}

// Name is the note name: the file name without the .md extension.
func (r Ref) Name() string {
	switch {
	case r.Chapter == 0:
		return r.Book
	case r.Verse == 0:
		return fmt.Sprintf("%s %d", r.Book, r.Chapter)
	default:
		return fmt.Sprintf("%s %d-%d", r.Book, r.Chapter, r.Verse)
	}
}

// FileName is the note's file name inside its book folder.
func (r Ref) FileName() string { return r.Name() + ".md" }

// Path is the note's path below the vault root.
func (r Ref) Path(root string) string {
	return filepath.Join(root, r.Book, r.FileName())
}

// Citation is the human-readable reference, "Ruth 1" or "Ruth 1:2".
func (r Ref) Citation() string {
	switch {
	case r.Chapter == 0:
		return r.Book
	case r.Verse == 0:
		return fmt.Sprintf("%s %d", r.Book, r.Chapter)
	default:
		return fmt.Sprintf("%s %d:%d", r.Book, r.Chapter, r.Verse)
	}
}

// ShortCitation uses the first three characters of the book name.
func (r Ref) ShortCitation() string {
	short := r
	if b := []rune(r.Book); len(b) > 3 {
		short.Book = string(b[:3])
	}
	return short.Citation()
}

// Aliases returns the long and short alias of a verse.
func (r Ref) Aliases() []string {
	return []string{r.Citation(), r.ShortCitation()}
}

// Heading is the heading-link fragment the note tool derives from a
// "### Ruth 1:2" heading, which drops the colon.
func (r Ref) Heading() string {
	return fmt.Sprintf("%s %d %d", r.Book, r.Chapter, r.Verse)
}

// Anchor is the block id placed at the end of a verse file.
func (r Ref) Anchor() string {
	return fmt.Sprintf("^v%d", r.Verse)
}

// Link renders [[name|display]].
func (r Ref) Link(display string) string {
	return link(r.Name(), display)
}

// VaultLink renders a link qualified by the book folder, as used by the index.
func (r Ref) VaultLink(display string) string {
	return link(r.Book+"/"+r.Name(), display)
}

// Embed renders the transclusion of a verse file's heading block.
func (r Ref) Embed() string {
	return fmt.Sprintf("![[%s#%s]]", r.Name(), r.Heading())
}

func link(target, display string) string {
	return "[[" + target + "|" + display + "]]"
}
