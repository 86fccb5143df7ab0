package vault

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRefNames(t *testing.T) {
	assert.Equal(t, "Song of Solomon", BookRef("Song of Solomon").Name())
	assert.Equal(t, "Song of Solomon 3", ChapterRef("Song of Solomon", 3).Name())
	assert.Equal(t, "Song of Solomon 3-4", VerseRef("Song of Solomon", 3, 4).Name())
	assert.Equal(t, filepath.Join("root", "Ruth", "Ruth 1-2.md"), VerseRef("Ruth", 1, 2).Path("root"))
}

func TestRefAliases(t *testing.T) {
	assert.Equal(t, []string{"Ruth 1:2", "Rut 1:2"}, VerseRef("Ruth", 1, 2).Aliases())
	assert.Equal(t, []string{"1 Samuel 3:10", "1 S 3:10"}, VerseRef("1 Samuel", 3, 10).Aliases())
	assert.Equal(t, []string{"Job 1:1", "Job 1:1"}, VerseRef("Job", 1, 1).Aliases())
	assert.Equal(t, []string{"Ésaïe 1:1", "Ésa 1:1"}, VerseRef("Ésaïe", 1, 1).Aliases())
}

func TestRefLinks(t *testing.T) {
	r := VerseRef("Ruth", 1, 1)
	assert.Equal(t, "![[Ruth 1-1#Ruth 1 1]]", r.Embed())
	assert.Equal(t, "^v1", r.Anchor())
	assert.Equal(t, "[[Ruth/Ruth 4|4]]", ChapterRef("Ruth", 4).VaultLink("4"))
	assert.Equal(t, "[[Ruth 1|Start]]", ChapterRef("Ruth", 1).Link("Start"))
}

func TestAliasPairsAreUnique(t *testing.T) {
	seen := make(map[[2]string]Ref)
	for _, b := range DefaultManifest().Books() {
		for ch := 1; ch <= min(b.Chapters, 3); ch++ {
			for v := 1; v <= 3; v++ {
				r := VerseRef(b.Name, ch, v)
				a := r.Aliases()
				key := [2]string{a[0], a[1]}
				prev, dup := seen[key]
				assert.False(t, dup, "%v collides with %v", r, prev)
				seen[key] = r
			}
		}
	}
}
