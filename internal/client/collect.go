package client

import (
	"strconv"
	"strings"

	"github.com/Conceptual-Machines/music-creator/internal/models"
	"github.com/Conceptual-Machines/music-creator/internal/view"
)

const instrumentSeparator = ", "

func value(doc *Document, id string) string {
	if el, ok := doc.Lookup(id); ok {
		return el.Value()
	}
	return ""
}

func percent(doc *Document, id string) models.Percent {
	n, err := strconv.Atoi(value(doc, id))
	if err != nil {
		return 0
	}
	return models.ClampPercent(n)
}

func checkedValues(doc *Document, class string) []string {
	values := []string{}
	for _, cb := range doc.QueryClass(class) {
		if cb.Checked() {
			v, _ := cb.Attr("value")
			values = append(values, v)
		}
	}
	return values
}

// CollectStyle reads the style overlay into a request. Checked instruments
// are joined in document order.
func CollectStyle(doc *Document, hasAudio bool) models.StyleRequest {
	return models.StyleRequest{
		Genre:             value(doc, view.IDGenreSelect),
		Instruments:       strings.Join(checkedValues(doc, view.ClassInstrument), instrumentSeparator),
		Mood:              value(doc, view.IDMoodSelect),
		Tempo:             value(doc, view.IDTempoSelect),
		CustomKeywords:    value(doc, view.IDCustomKeywords),
		Influences:        value(doc, view.IDInfluences),
		OriginalInfluence: percent(doc, view.IDOriginalInfluence),
		Creativity:        percent(doc, view.IDCreativity),
		HasAudio:          hasAudio,
	}
}

// CollectLyrics reads the lyrics overlay into a request
func CollectLyrics(doc *Document, analysis *models.AnalysisResult) models.LyricsRequest {
	useAnalysis := false
	if cb, ok := doc.Lookup(view.IDUseAnalysisReference); ok {
		useAnalysis = cb.Checked()
	}
	return models.LyricsRequest{
		Theme:        value(doc, view.IDLyricsTheme),
		Mood:         value(doc, view.IDLyricsMood),
		Structure:    value(doc, view.IDLyricsStructure),
		Language:     value(doc, view.IDLyricsLanguage),
		Keywords:     value(doc, view.IDLyricsKeywords),
		Message:      value(doc, view.IDLyricsMessage),
		VocalStyle:   value(doc, view.IDVocalStyle),
		VocalEffects: checkedValues(doc, view.ClassVocalEffect),
		UseAnalysis:  useAnalysis,
		AnalysisData: analysis,
	}
}

// splitInstruments undoes the ", " join of a stored request
func splitInstruments(joined string) map[string]bool {
	set := make(map[string]bool)
	for _, part := range strings.Split(joined, ",") {
		if part = strings.TrimSpace(part); part != "" {
			set[part] = true
		}
	}
	return set
}
