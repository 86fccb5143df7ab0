package passage

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ruthPage = `<!DOCTYPE html>
<html><head><title>Ruth 1 NIV</title></head>
<body>
<div class="passage-other-trans"><h3>Other translations</h3></div>
<div class="passage-text">
 <div class="passage-content">
  <h3><span id="en-NIV-7099" class="text Ruth-1-1">Naomi Loses Her Husband and Sons</span></h3>
  <p class="chapter-1"><span class="text Ruth-1-1"><span class="chapternum">1&nbsp;</span>In the days when the judges ruled,<sup class="footnote" data-fn="#fen-NIV-7099a">[<a href="#fen-NIV-7099a">a</a>]</sup> there was a famine in the land.</span>
  <span id="en-NIV-7100" class="text Ruth-1-2"><sup class="versenum">2&nbsp;</sup>The man&#8217;s name was Elimelek,<sup class="crossreference" data-cr="#cen-NIV-7100A">(<a href="#cen-NIV-7100A">A</a>)</sup> his wife&#8217;s name was Naomi.</span></p>
  <h3>Naomi and Ruth Return</h3>
  <div class="poetry"><p class="line"><span class="text Ruth-1-16"><sup class="versenum">16&nbsp;</sup>Where you go I will go,</span><br /><span class="text Ruth-1-16">and where you stay I will stay.</span></p></div>
  <div class="footnotes"><h4>Footnotes</h4><ol><li><span class="text Ruth-1-1">not a verse</span></li></ol></div>
  <div class="crossrefs hidden"><h4>Cross references</h4></div>
 </div>
</div>
</body></html>`

func TestGatewayParserParseChapter(t *testing.T) {
	got, err := GatewayParser{}.ParseChapter(ruthPage)
	require.NoError(t, err)

	want := []Element{
		Subtitle("Naomi Loses Her Husband and Sons"),
		Verse(1, "In the days when the judges ruled, there was a famine in the land."),
		Verse(2, "The man’s name was Elimelek, his wife’s name was Naomi."),
		Subtitle("Naomi and Ruth Return"),
		Verse(16, "Where you go I will go, and where you stay I will stay."),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseChapter mismatch (-want +got):\n%s", diff)
	}
}

func TestGatewayParserNoPassage(t *testing.T) {
	_, err := GatewayParser{}.ParseChapter(`<html><body><p>No results found.</p></body></html>`)
	assert.ErrorIs(t, err, ErrNoPassage)
}

func TestGatewayParserMultiWordBook(t *testing.T) {
	page := `<div class="passage-text"><p><span class="text 1Sam-3-10"><sup class="versenum">10 </sup>Speak, for your servant is listening.</span></p></div>`
	got, err := GatewayParser{}.ParseChapter(page)
	require.NoError(t, err)
	assert.Equal(t, []Element{Verse(10, "Speak, for your servant is listening.")}, got)
}

func TestGatewayParserHeadingInsideVerse(t *testing.T) {
	page := `<div class="passage-text">
<p><span class="text Gen-2-3"><sup class="versenum">3 </sup>Then God blessed the seventh day.</span>
<span class="text Gen-2-4"><sup class="versenum">4 </sup>This is the account of the heavens and the earth when they were created.</span></p>
<h3><span class="text Gen-2-4">Adam and Eve</span></h3>
<p><span class="text Gen-2-4">When the LORD God made the earth and the heavens&#8212;</span>
<span class="text Gen-2-5"><sup class="versenum">5 </sup>Now no shrub had yet appeared.</span></p>
</div>`
	got, err := GatewayParser{}.ParseChapter(page)
	require.NoError(t, err)

	want := []Element{
		Verse(3, "Then God blessed the seventh day."),
		Verse(4, "This is the account of the heavens and the earth when they were created. When the LORD God made the earth and the heavens—"),
		Subtitle("Adam and Eve"),
		Verse(5, "Now no shrub had yet appeared."),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseChapter mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3, CountVerses(got))
}
