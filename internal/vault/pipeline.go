// Package vault generates a linked note vault from a book manifest: one
// index, then per book a landing note, chapter notes and verse notes.
package vault

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"biblevault/internal/passage"
)

// Pipeline drives a full vault generation. It is single-threaded: chapters
// are fetched and written strictly in manifest order.
type Pipeline struct {
	manifest Manifest
	source   passage.Source
	version  string
	logger   *zap.Logger
	strict   bool
	only     string

	files int
	bytes int64
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// WithStrictVerses makes a chapter whose verses are not numbered 1..n fail
// the run instead of being written with possibly dangling neighbour links.
func WithStrictVerses(strict bool) Option {
	return func(p *Pipeline) { p.strict = strict }
}

// WithOnly restricts book emission to a single manifest book. The index
// still lists the whole manifest.
func WithOnly(book string) Option {
	return func(p *Pipeline) { p.only = book }
}

// New returns a Pipeline emitting m with chapter content from src in the
// given version.
func New(m Manifest, src passage.Source, version string, opts ...Option) *Pipeline {
	p := &Pipeline{
		manifest: m,
		source:   src,
		version:  version,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Summary counts what a run wrote.
type Summary struct {
	Files int
	Bytes int64
}

// Run writes the whole vault under root, replacing any existing notes.
// Errors abort the run and leave already written notes in place.
func (p *Pipeline) Run(ctx context.Context, root string) (Summary, error) {
	p.files, p.bytes = 0, 0

	books := p.manifest.books
	if p.only != "" {
		b, ok := p.manifest.Lookup(p.only)
		if !ok {
			return Summary{}, fmt.Errorf("%w: %q is not in the manifest", ErrUnknownBook, p.only)
		}
		books = []Book{b}
	}

	if err := os.MkdirAll(root, 0755); err != nil {
		return Summary{}, &IOError{Operation: "mkdir", Path: root, Err: err}
	}
	if err := p.writeIndex(root); err != nil {
		return p.summary(), err
	}
	for _, b := range books {
		if err := p.writeBook(ctx, root, b); err != nil {
			return p.summary(), err
		}
	}

	p.logger.Info("vault generated",
		zap.String("root", root),
		zap.String("files", humanize.Comma(int64(p.files))),
		zap.String("size", humanize.Bytes(uint64(p.bytes))))
	return p.summary(), nil
}

func (p *Pipeline) summary() Summary {
	return Summary{Files: p.files, Bytes: p.bytes}
}

func (p *Pipeline) write(dir string, ref Ref, content string) error {
	return p.writePath(filepath.Join(dir, ref.FileName()), content)
}

func (p *Pipeline) writePath(path, content string) error {
	if err := writeFile(path, content); err != nil {
		return err
	}
	p.files++
	p.bytes += int64(len(content))
	p.logger.Debug("wrote note", zap.String("path", path), zap.Int("bytes", len(content)))
	return nil
}
