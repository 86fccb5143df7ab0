// Package passage retrieves and parses the content of a single chapter:
// the fetch and parse collaborators of the vault pipeline, plus caching and
// prefetch decorators around them.
package passage

import (
	"context"
	"fmt"
)

// Kind tags a content element.
type Kind int

const (
	// KindSubtitle is a section heading inside a chapter.
	KindSubtitle Kind = iota + 1
	// KindVerse is a numbered verse.
	KindVerse
)

func (k Kind) String() string {
	switch k {
	case KindSubtitle:
		return "subtitle"
	case KindVerse:
		return "verse"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Element is one display item of a parsed chapter. Verse is set only for
// KindVerse elements.
type Element struct {
	Kind  Kind
	Verse int
	Text  string
}

// Subtitle builds a subtitle element.
func Subtitle(text string) Element {
	return Element{Kind: KindSubtitle, Text: text}
}

// Verse builds a verse element.
func Verse(number int, text string) Element {
	return Element{Kind: KindVerse, Verse: number, Text: text}
}

// Fetcher retrieves the raw markup of a reference such as "Ruth 1" in the
// given version. Implementations must be deterministic within a run.
type Fetcher interface {
	FetchMarkup(ctx context.Context, reference, version string) (string, error)
}

// Parser turns a chapter's markup into display-ordered elements.
type Parser interface {
	ParseChapter(markup string) ([]Element, error)
}

// Source yields the parsed elements of one chapter.
type Source interface {
	Chapter(ctx context.Context, reference, version string) ([]Element, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, reference, version string) ([]Element, error)

func (f SourceFunc) Chapter(ctx context.Context, reference, version string) ([]Element, error) {
	return f(ctx, reference, version)
}

type fetchParse struct {
	fetcher Fetcher
	parser  Parser
}

// NewSource combines a Fetcher and a Parser: one fetch, then one parse, per call.
func NewSource(f Fetcher, p Parser) Source {
	return &fetchParse{fetcher: f, parser: p}
}

func (s *fetchParse) Chapter(ctx context.Context, reference, version string) ([]Element, error) {
	markup, err := s.fetcher.FetchMarkup(ctx, reference, version)
	if err != nil {
		return nil, fmt.Errorf("fetching %s (%s): %w", reference, version, err)
	}
	elements, err := s.parser.ParseChapter(markup)
	if err != nil {
		return nil, fmt.Errorf("parsing %s (%s): %w", reference, version, err)
	}
	return elements, nil
}

// CountVerses returns the number of verse elements.
func CountVerses(elements []Element) int {
	n := 0
	for _, e := range elements {
		if e.Kind == KindVerse {
			n++
		}
	}
	return n
}

// VerseGapError reports verse numbering that is not exactly 1..n in order.
type VerseGapError struct {
	Position int // index among verse elements, 0-based
	Want     int
	Got      int
}

func (e *VerseGapError) Error() string {
	return fmt.Sprintf("verse numbering gap: verse #%d is %d, want %d", e.Position+1, e.Got, e.Want)
}

// CheckContiguous verifies the verse elements are numbered 1, 2, ... n.
func CheckContiguous(elements []Element) error {
	pos := 0
	for _, e := range elements {
		if e.Kind != KindVerse {
			continue
		}
		if e.Verse != pos+1 {
			return &VerseGapError{Position: pos, Want: pos + 1, Got: e.Verse}
		}
		pos++
	}
	return nil
}
