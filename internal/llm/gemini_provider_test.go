package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGeminiProvider_Name(t *testing.T) {
	provider := &GeminiProvider{client: nil}
	assert.Equal(t, "gemini", provider.Name())
}

func TestGeminiProvider_BuildContents(t *testing.T) {
	provider := &GeminiProvider{client: nil}

	tests := []struct {
		name        string
		inputArray  []map[string]any
		attachments []Attachment
		wantLen     int
		lastParts   int
	}{
		{
			name:       "single user message",
			inputArray: []map[string]any{{"role": "user", "content": "test content"}},
			wantLen:    1,
			lastParts:  1,
		},
		{
			name:       "developer role converted to user",
			inputArray: []map[string]any{{"role": "developer", "content": "system message"}},
			wantLen:    1,
			lastParts:  1,
		},
		{
			name: "invalid message skipped",
			inputArray: []map[string]any{
				{"role": "user", "content": "valid"},
				{"role": "user"},
			},
			wantLen:   1,
			lastParts: 1,
		},
		{
			name:        "attachment joins last message",
			inputArray:  []map[string]any{{"role": "user", "content": "analyze"}},
			attachments: []Attachment{{MIMEType: "audio/mpeg", Data: []byte("ID3")}},
			wantLen:     1,
			lastParts:   2,
		},
		{
			name:        "attachment without text",
			attachments: []Attachment{{MIMEType: "audio/wav", Data: []byte("RIFF")}},
			wantLen:     1,
			lastParts:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contents := provider.buildGeminiContents(tt.inputArray, tt.attachments)
			require.Len(t, contents, tt.wantLen)
			for _, content := range contents {
				assert.Equal(t, "user", content.Role)
			}
			assert.Len(t, contents[len(contents)-1].Parts, tt.lastParts)
		})
	}
}

func TestGeminiProvider_ConvertSchema(t *testing.T) {
	provider := &GeminiProvider{client: nil}

	schema := provider.convertSchemaToGemini(GetAnalysisOutputSchema())
	require.NotNil(t, schema)
	assert.Equal(t, genai.TypeObject, schema.Type)
	require.Contains(t, schema.Properties, "chords")
	assert.Equal(t, genai.TypeArray, schema.Properties["chords"].Type)
	assert.Equal(t, genai.TypeString, schema.Properties["chords"].Items.Type)
	assert.ElementsMatch(t, []string{"lyrics", "chords", "style", "key", "tempo"}, schema.Required)
}
