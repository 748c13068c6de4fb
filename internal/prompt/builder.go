package prompt

import (
	"fmt"
	"strings"

	"github.com/Conceptual-Machines/music-creator/internal/catalog"
	"github.com/Conceptual-Machines/music-creator/internal/models"
)

// Builder turns creator requests into LLM instructions and user messages
type Builder struct {
	loader    *Loader
	structure map[string]string
}

// NewPromptBuilder creates a new prompt builder
func NewPromptBuilder() *Builder {
	loader := NewPromptLoader()
	return &Builder{
		loader:    loader,
		structure: loader.GetStructureGuide(),
	}
}

// StylePrompt returns the system prompt and user message for a style request
func (b *Builder) StylePrompt(req models.StyleRequest) (string, string) {
	var lines []string
	add := func(label, value string) {
		if strings.TrimSpace(value) != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", label, value))
		}
	}

	add("Genre", req.Genre)
	add("Style", req.Style)
	add("Mood", req.Mood)
	add("Tempo", req.Tempo)
	add("Instruments", req.Instruments)
	add("Custom keywords", req.CustomKeywords)
	add("Influences", req.Influences)
	if req.HasAudio {
		lines = append(lines,
			"A reference track was uploaded.",
			fmt.Sprintf("Original influence: %s", req.OriginalInfluence),
			fmt.Sprintf("Creativity: %s", req.Creativity),
		)
	}
	if len(lines) == 0 {
		lines = append(lines, "No preferences given; choose a broadly appealing pop style.")
	}

	return b.loader.GetStyleSystemPrompt(), "Write the style prompt for:\n" + strings.Join(lines, "\n")
}

// LyricsPrompt returns the system prompt and user message for a lyrics request
func (b *Builder) LyricsPrompt(req models.LyricsRequest) (string, string) {
	var lines []string
	add := func(label, value string) {
		if strings.TrimSpace(value) != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", label, value))
		}
	}

	add("Theme", req.Theme)
	add("Mood", req.Mood)
	add("Structure", b.structureFor(req.Structure))
	add("Language", languageName(req.Language))
	add("Keywords", req.Keywords)
	add("Message", req.Message)
	add("Vocal style", req.VocalStyle)
	add("Vocal effects", strings.Join(req.VocalEffects, ", "))

	if req.UseAnalysis && req.AnalysisData != nil {
		a := req.AnalysisData
		lines = append(lines, "Reference analysis:")
		add("  Style", a.Style)
		add("  Key", a.Key)
		add("  Tempo", a.Tempo)
		add("  Chords", a.ChordLine())
	}

	return b.loader.GetLyricsSystemPrompt(), "Write lyrics for:\n" + strings.Join(lines, "\n")
}

// AnalysisPrompt returns the system prompt and user message for audio analysis
func (b *Builder) AnalysisPrompt(filename string) (string, string) {
	return b.loader.GetAnalysisSystemPrompt(), fmt.Sprintf("Analyze the attached song %q.", filename)
}

func (b *Builder) structureFor(name string) string {
	if name == "" {
		name = catalog.Structures[0].Value
	}
	if sections, ok := b.structure[name]; ok {
		return sections
	}
	return name
}

func languageName(code string) string {
	switch code {
	case "", "ko":
		return "Korean"
	case "en":
		return "English"
	case "mix":
		return "Korean with some English phrases"
	}
	return code
}
