package vault

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultManifest(t *testing.T) {
	m := DefaultManifest()
	assert.Equal(t, 66, m.Len())
	assert.Equal(t, 1189, m.TotalChapters())

	books := m.Books()
	assert.Equal(t, Book{Name: "Genesis", Chapters: 50}, books[0])
	assert.Equal(t, Book{Name: "Revelation", Chapters: 22}, books[65])

	psalms, ok := m.Lookup("Psalms")
	require.True(t, ok)
	assert.Equal(t, 150, psalms.Chapters)
}

func TestManifestBooksIsACopy(t *testing.T) {
	m := DefaultManifest()
	books := m.Books()
	books[0].Chapters = 1
	assert.Equal(t, 50, m.Books()[0].Chapters)
}

func TestNewManifest(t *testing.T) {
	m, err := NewManifest([]string{"Ruth", "Job"}, []int{4, 42})
	require.NoError(t, err)
	assert.Equal(t, []Book{{"Ruth", 4}, {"Job", 42}}, m.Books())
}

func TestNewManifestRejects(t *testing.T) {
	tests := []struct {
		name     string
		names    []string
		chapters []int
		field    string
	}{
		{"length mismatch", []string{"Ruth", "Job"}, []int{4}, "chapters"},
		{"empty", nil, nil, "books"},
		{"zero chapters", []string{"Ruth"}, []int{0}, "books[0].chapters"},
		{"blank name", []string{"Ruth", " "}, []int{4, 1}, "books[1].name"},
		{"duplicate", []string{"Ruth", "Ruth"}, []int{4, 4}, "books[1].name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewManifest(tt.names, tt.chapters)
			require.ErrorIs(t, err, ErrInvalidManifest)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestLoadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte("books:\n  - name: Ruth\n    chapters: 4\n  - name: Jude\n    chapters: 1\n"), 0644))

	m, err := LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, []Book{{"Ruth", 4}, {"Jude", 1}}, m.Books())
}

func TestLoadManifestErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadManifest(filepath.Join(dir, "missing.yaml"))
	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "read", ioErr.Operation)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("books:\n  - name: Ruth\n    chapters: -1\n"), 0644))
	_, err = LoadManifest(bad)
	assert.ErrorIs(t, err, ErrInvalidManifest)
}
