package llm

// GetAnalysisOutputSchema returns the JSON schema for audio analysis output
func GetAnalysisOutputSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"lyrics": map[string]any{"type": "string", "description": "Transcribed or summarized lyrics"},
			"chords": map[string]any{
				"type":        "array",
				"description": "Main chord progression in order",
				"items":       map[string]any{"type": "string"},
			},
			"style": map[string]any{"type": "string", "description": "Comma separated genre, feel and tempo class"},
			"key":   map[string]any{"type": "string", "description": "Key and mode, e.g. C Major"},
			"tempo": map[string]any{"type": "string", "description": "Tempo in the form '120 BPM'"},
		},
		"required":             []string{"lyrics", "chords", "style", "key", "tempo"},
		"additionalProperties": false,
	}
}

// AnalysisOutputSchema wraps the analysis schema for a request
func AnalysisOutputSchema() *OutputSchema {
	return &OutputSchema{
		Name:        "AudioAnalysis",
		Description: "Musical analysis of an uploaded song",
		Schema:      GetAnalysisOutputSchema(),
	}
}
