package vault

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Book holds the manifest entry for a single book.
type Book struct {
	Name     string `yaml:"name"`
	Chapters int    `yaml:"chapters"`
}

// Manifest is an ordered, immutable list of books. Order drives the index
// layout; chapter counts drive chapter breadcrumbs.
type Manifest struct {
	books  []Book
	byName map[string]Book
}

// NewManifest pairs book names with chapter counts. The two slices must have
// equal length, names must be non-empty and unique, counts must be >= 1.
func NewManifest(names []string, chapters []int) (Manifest, error) {
	if len(names) != len(chapters) {
		return Manifest{}, newValidation("chapters", "have %d counts for %d books", len(chapters), len(names))
	}
	books := make([]Book, len(names))
	for i := range names {
		books[i] = Book{Name: names[i], Chapters: chapters[i]}
	}
	return newManifest(books)
}

func newManifest(books []Book) (Manifest, error) {
	if len(books) == 0 {
		return Manifest{}, newValidation("books", "manifest is empty")
	}
	m := Manifest{
		books:  make([]Book, len(books)),
		byName: make(map[string]Book, len(books)),
	}
	for i, b := range books {
		name := strings.TrimSpace(b.Name)
		if name == "" {
			return Manifest{}, newValidation(fmt.Sprintf("books[%d].name", i), "book name is empty")
		}
		if b.Chapters < 1 {
			return Manifest{}, newValidation(fmt.Sprintf("books[%d].chapters", i), "%s has %d chapters", name, b.Chapters)
		}
		if _, dup := m.byName[name]; dup {
			return Manifest{}, newValidation(fmt.Sprintf("books[%d].name", i), "duplicate book %q", name)
		}
		b.Name = name
		m.books[i] = b
		m.byName[name] = b
	}
	return m, nil
}

// manifestFile is the on-disk YAML shape read by LoadManifest.
type manifestFile struct {
	Books []Book `yaml:"books"`
}

// LoadManifest reads a YAML manifest of the form
//
//	books:
//	  - name: Genesis
//	    chapters: 50
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, &IOError{Operation: "read", Path: path, Err: err}
	}
	var f manifestFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Manifest{}, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return newManifest(f.Books)
}

// Books returns a copy of the manifest entries in order.
func (m Manifest) Books() []Book {
	out := make([]Book, len(m.books))
	copy(out, m.books)
	return out
}

// Len returns the number of books.
func (m Manifest) Len() int { return len(m.books) }

// Lookup finds a book by its exact name.
func (m Manifest) Lookup(name string) (Book, bool) {
	b, ok := m.byName[name]
	return b, ok
}

// TotalChapters sums the chapter counts of every book.
func (m Manifest) TotalChapters() int {
	n := 0
	for _, b := range m.books {
		n += b.Chapters
	}
	return n
}

// DefaultManifest returns the 66-book Protestant canon in canonical order.
func DefaultManifest() Manifest {
	m, err := newManifest(canon)
	if err != nil {
		panic(err)
	}
	return m
}

var canon = []Book{
	// ── Old Testament ──────────────────────────────────────────────────────────
	{"Genesis", 50},
	{"Exodus", 40},
	{"Leviticus", 27},
	{"Numbers", 36},
	{"Deuteronomy", 34},
	{"Joshua", 24},
	{"Judges", 21},
	{"Ruth", 4},
	{"1 Samuel", 31},
	{"2 Samuel", 24},
	{"1 Kings", 22},
	{"2 Kings", 25},
	{"1 Chronicles", 29},
	{"2 Chronicles", 36},
	{"Ezra", 10},
	{"Nehemiah", 13},
	{"Esther", 10},
	{"Job", 42},
	{"Psalms", 150},
	{"Proverbs", 31},
	{"Ecclesiastes", 12},
	{"Song of Solomon", 8},
	{"Isaiah", 66},
	{"Jeremiah", 52},
	{"Lamentations", 5},
	{"Ezekiel", 48},
	{"Daniel", 12},
	{"Hosea", 14},
	{"Joel", 3},
	{"Amos", 9},
	{"Obadiah", 1},
	{"Jonah", 4},
	{"Micah", 7},
	{"Nahum", 3},
	{"Habakkuk", 3},
	{"Zephaniah", 3},
	{"Haggai", 2},
	{"Zechariah", 14},
	{"Malachi", 4},
	// ── New Testament ─────────────────────────────────────────────────────────
	{"Matthew", 28},
	{"Mark", 16},
	{"Luke", 24},
	{"John", 21},
	{"Acts", 28},
	{"Romans", 16},
	{"1 Corinthians", 16},
	{"2 Corinthians", 13},
	{"Galatians", 6},
	{"Ephesians", 6},
	{"Philippians", 4},
	{"Colossians", 4},
	{"1 Thessalonians", 5},
	{"2 Thessalonians", 3},
	{"1 Timothy", 6},
	{"2 Timothy", 4},
	{"Titus", 3},
	{"Philemon", 1},
	{"Hebrews", 13},
	{"James", 5},
	{"1 Peter", 5},
	{"2 Peter", 3},
	{"1 John", 5},
	{"2 John", 1},
	{"3 John", 1},
	{"Jude", 1},
	{"Revelation", 22},
}
