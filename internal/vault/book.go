package vault

import (
	"context"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// renderBook builds a book's landing note.
func renderBook(book string) string {
	return frontMatter +
		"# " + book + "\n\n" +
		ChapterRef(book, 1).Link("Start Reading →") + "\n"
}

// writeBook creates the book folder, its landing note and every chapter
// 1..b.Chapters in order.
func (p *Pipeline) writeBook(ctx context.Context, root string, b Book) error {
	bookDir := filepath.Join(root, b.Name)
	if err := os.MkdirAll(bookDir, 0755); err != nil {
		return &IOError{Operation: "mkdir", Path: bookDir, Err: err}
	}
	p.logger.Info("writing book", zap.String("book", b.Name), zap.Int("chapters", b.Chapters))

	if err := p.write(bookDir, BookRef(b.Name), renderBook(b.Name)); err != nil {
		return err
	}
	for chapter := 1; chapter <= b.Chapters; chapter++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.writeChapter(ctx, bookDir, b.Name, chapter, b.Chapters); err != nil {
			return err
		}
	}
	return nil
}
