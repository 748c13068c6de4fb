package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPromptLoader(t *testing.T) {
	assert.NotNil(t, NewPromptLoader())
}

func TestSystemPromptsLoaded(t *testing.T) {
	loader := NewPromptLoader()

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{"style", loader.GetStyleSystemPrompt(), "Suno"},
		{"lyrics", loader.GetLyricsSystemPrompt(), "[Verse 1]"},
		{"analysis", loader.GetAnalysisSystemPrompt(), "chords"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.content)
			assert.Contains(t, tt.content, tt.expected)
			assert.Equal(t, strings.TrimSpace(tt.content), tt.content)
		})
	}
}

func TestGetStructureGuide(t *testing.T) {
	guide := NewPromptLoader().GetStructureGuide()

	assert.Len(t, guide, 4)
	assert.Equal(t, "[Verse 1], [Chorus], [Verse 2], [Chorus]", guide["simple"])
	assert.True(t, strings.HasSuffix(guide["ballad"], "[Outro]"))
	assert.NotContains(t, guide, "custom")
}
