package vault

import "strings"

const crumbSeparator = " | "

// ChapterBreadcrumb links the previous chapter, the book and the next
// chapter. Neighbours outside 1..maxChapters are omitted.
func ChapterBreadcrumb(book string, chapter, maxChapters int) string {
	var prev, next Ref
	if chapter > 1 {
		prev = ChapterRef(book, chapter-1)
	}
	if chapter < maxChapters {
		next = ChapterRef(book, chapter+1)
	}
	return crumbs(prev, BookRef(book), next)
}

// VerseBreadcrumb links the previous verse, the chapter and the next verse.
// Neighbours outside 1..maxVerses are omitted.
func VerseBreadcrumb(book string, chapter, verse, maxVerses int) string {
	var prev, next Ref
	if verse > 1 {
		prev = VerseRef(book, chapter, verse-1)
	}
	if verse < maxVerses {
		next = VerseRef(book, chapter, verse+1)
	}
	return crumbs(prev, ChapterRef(book, chapter), next)
}

func crumbs(prev, self, next Ref) string {
	parts := make([]string, 0, 3)
	if prev.Book != "" {
		parts = append(parts, prev.Link("← "+prev.Citation()))
	}
	parts = append(parts, self.Link(self.Citation()))
	if next.Book != "" {
		parts = append(parts, next.Link(next.Citation()+" →"))
	}
	return strings.Join(parts, crumbSeparator)
}
