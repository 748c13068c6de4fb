package client

import (
	"testing"

	"github.com/Conceptual-Machines/music-creator/internal/catalog"
	"github.com/Conceptual-Machines/music-creator/internal/models"
	"github.com/Conceptual-Machines/music-creator/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mountedModals(t *testing.T) *Document {
	t.Helper()
	doc := NewDocument()
	NewModals(doc).Mount()
	return doc
}

func check(t *testing.T, doc *Document, class string, values ...string) {
	t.Helper()
	want := make(map[string]bool)
	for _, v := range values {
		want[v] = true
	}
	for _, cb := range doc.QueryClass(class) {
		v, _ := cb.Attr("value")
		cb.SetChecked(want[v])
	}
}

func TestCollectStyleJoinsInstrumentsInDocumentOrder(t *testing.T) {
	doc := mountedModals(t)

	assert.Equal(t, "", CollectStyle(doc, false).Instruments)

	check(t, doc, view.ClassInstrument, "orchestra", "drums", "piano")
	assert.Equal(t, "piano, drums, orchestra", CollectStyle(doc, false).Instruments)

	check(t, doc, view.ClassInstrument, catalog.Values(catalog.Instruments)...)
	assert.Equal(t, "piano, guitar, drums, bass, violin, saxophone, synthesizer, orchestra",
		CollectStyle(doc, false).Instruments)

	check(t, doc, view.ClassInstrument)
	assert.Equal(t, "", CollectStyle(doc, false).Instruments)
}

func TestCollectStyleReadsControls(t *testing.T) {
	doc := mountedModals(t)
	set := func(id, v string) {
		el, ok := doc.Lookup(id)
		require.True(t, ok, id)
		el.SetValue(v)
	}
	set(view.IDGenreSelect, "Rock")
	set(view.IDMoodSelect, "Dark")
	set(view.IDTempoSelect, "Fast")
	set(view.IDCustomKeywords, "gritty")
	set(view.IDInfluences, "90s grunge")
	set(view.IDCreativity, "35")

	req := CollectStyle(doc, true)
	assert.Equal(t, models.StyleRequest{
		Genre:             "Rock",
		Mood:              "Dark",
		Tempo:             "Fast",
		CustomKeywords:    "gritty",
		Influences:        "90s grunge",
		OriginalInfluence: catalog.DefaultOriginalInfluence,
		Creativity:        35,
		HasAudio:          true,
	}, req)
}

func TestCollectStyleWithoutModals(t *testing.T) {
	req := CollectStyle(NewDocument(), false)
	assert.Equal(t, models.StyleRequest{}, req)
}

func TestCollectLyrics(t *testing.T) {
	doc := mountedModals(t)
	check(t, doc, view.ClassVocalEffect, "falsetto", "harmonies")
	theme, _ := doc.Lookup(view.IDLyricsTheme)
	theme.SetValue("바다")

	req := CollectLyrics(doc, nil)
	assert.Equal(t, "바다", req.Theme)
	assert.Equal(t, []string{"harmonies", "falsetto"}, req.VocalEffects)
	assert.Equal(t, "standard", req.Structure)
	assert.Equal(t, "ko", req.Language)
	assert.False(t, req.UseAnalysis)
	assert.Nil(t, req.AnalysisData)
}

func TestCollectLyricsAnalysisFlag(t *testing.T) {
	doc := mountedModals(t)
	analysis := &models.AnalysisResult{Style: "Pop"}

	cb, ok := doc.Lookup(view.IDUseAnalysisReference)
	require.True(t, ok)
	cb.SetChecked(true)
	req := CollectLyrics(doc, analysis)
	assert.True(t, req.UseAnalysis)
	assert.Same(t, analysis, req.AnalysisData)

	ref, _ := doc.Lookup(view.IDAnalysisReference)
	ref.Remove()
	req = CollectLyrics(doc, analysis)
	assert.False(t, req.UseAnalysis)
	assert.Empty(t, req.VocalEffects)
}
