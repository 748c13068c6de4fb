package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentDecodesNumbersAndStrings(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Percent
	}{
		{"number", `{"creativity": 60}`, 60},
		{"numeric string", `{"creativity": "80"}`, 80},
		{"float", `{"creativity": 42.7}`, 42},
		{"clamped high", `{"creativity": 140}`, 100},
		{"clamped low", `{"creativity": "-5"}`, 0},
		{"empty string", `{"creativity": ""}`, 0},
		{"null", `{"creativity": null}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req StyleRequest
			require.NoError(t, json.Unmarshal([]byte(tt.in), &req))
			assert.Equal(t, tt.want, req.Creativity)
		})
	}
}

func TestPercentRejectsGarbage(t *testing.T) {
	var req StyleRequest
	err := json.Unmarshal([]byte(`{"originalInfluence": "lots"}`), &req)
	assert.Error(t, err)
}

func TestPercentLabel(t *testing.T) {
	assert.Equal(t, "80%", Percent(80).String())
	assert.Equal(t, "0%", Percent(0).String())
}

func TestStylePresetEncodesPercentAsNumber(t *testing.T) {
	preset := StylePreset{Name: "night drive", Data: StyleRequest{Genre: "Electronic", OriginalInfluence: 80}}
	raw, err := json.Marshal(preset)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"originalInfluence":80`)
}

func TestChordLine(t *testing.T) {
	a := &AnalysisResult{Chords: []string{"C", "Am", "F", "G"}}
	assert.Equal(t, "C, Am, F, G", a.ChordLine())
}
