package vault

import (
	"path/filepath"
	"strconv"
	"strings"
)

// IndexFileName is the master index at the vault root.
const IndexFileName = "The Bible.md"

// renderIndex lists every book with links to each of its chapters.
func renderIndex(m Manifest) string {
	var sb strings.Builder
	sb.WriteString(frontMatter)
	sb.WriteString("# The Bible\n\n")
	for _, b := range m.books {
		sb.WriteString("**" + BookRef(b.Name).VaultLink(b.Name) + ":** ")
		links := make([]string, b.Chapters)
		for ch := 1; ch <= b.Chapters; ch++ {
			links[ch-1] = ChapterRef(b.Name, ch).VaultLink(strconv.Itoa(ch))
		}
		sb.WriteString(strings.Join(links, ", "))
		sb.WriteString("\n\n")
	}
	return sb.String()
}

func (p *Pipeline) writeIndex(root string) error {
	return p.writePath(filepath.Join(root, IndexFileName), renderIndex(p.manifest))
}
