package prompt

import (
	"strings"

	"github.com/Conceptual-Machines/music-creator/pkg/embedded"
)

type Loader struct{}

func NewPromptLoader() *Loader {
	return &Loader{}
}

// GetStyleSystemPrompt loads the instructions for style prompt generation
func (l *Loader) GetStyleSystemPrompt() string {
	return strings.TrimSpace(string(embedded.StyleSystemPromptTxt))
}

// GetLyricsSystemPrompt loads the instructions for lyrics generation
func (l *Loader) GetLyricsSystemPrompt() string {
	return strings.TrimSpace(string(embedded.LyricsSystemPromptTxt))
}

// GetAnalysisSystemPrompt loads the instructions for audio analysis
func (l *Loader) GetAnalysisSystemPrompt() string {
	return strings.TrimSpace(string(embedded.AnalysisSystemPromptTxt))
}

// GetStructureGuide returns the section layout of each named song structure
func (l *Loader) GetStructureGuide() map[string]string {
	guide := make(map[string]string)
	for _, line := range strings.Split(string(embedded.StructureGuideTxt), "\n") {
		name, sections, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		guide[strings.TrimSpace(name)] = strings.TrimSpace(sections)
	}
	return guide
}
