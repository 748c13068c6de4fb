package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Percent is a 0-100 slider value. It decodes from a JSON number or a numeric
// string, since older presets stored the raw input value.
type Percent int

const (
	minPercent = 0
	maxPercent = 100
)

// ClampPercent bounds v to 0..100
func ClampPercent(v int) Percent {
	if v < minPercent {
		return minPercent
	}
	if v > maxPercent {
		return maxPercent
	}
	return Percent(v)
}

// String renders the slider label, e.g. "80%"
func (p Percent) String() string {
	return strconv.Itoa(int(p)) + "%"
}

func (p *Percent) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" || raw == `""` {
		*p = 0
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid percent %q: %w", raw, err)
	}
	*p = ClampPercent(int(f))
	return nil
}

// StyleRequest is the style-directing form as sent to /api/generate-prompt.
// Instruments is a display-ready ", "-joined string, not a list.
type StyleRequest struct {
	Genre             string  `json:"genre"`
	Style             string  `json:"style,omitempty"`
	Instruments       string  `json:"instruments"`
	Mood              string  `json:"mood"`
	Tempo             string  `json:"tempo"`
	CustomKeywords    string  `json:"customKeywords"`
	Influences        string  `json:"influences"`
	OriginalInfluence Percent `json:"originalInfluence"`
	Creativity        Percent `json:"creativity"`
	HasAudio          bool    `json:"hasAudio"`
}

// StylePreset is a named, saved StyleRequest
type StylePreset struct {
	Name    string       `json:"name"`
	Data    StyleRequest `json:"data"`
	Created time.Time    `json:"created"`
}

// VocalPersona is a named vocal direction (style plus effects)
type VocalPersona struct {
	Name         string    `json:"name"`
	VocalStyle   string    `json:"vocalStyle"`
	VocalEffects []string  `json:"vocalEffects"`
	Created      time.Time `json:"created"`
}

// AnalysisResult is the output of inspecting an uploaded audio file
type AnalysisResult struct {
	Lyrics string   `json:"lyrics"`
	Chords []string `json:"chords"`
	Style  string   `json:"style"`
	Key    string   `json:"key"`
	Tempo  string   `json:"tempo"`
}

// ChordLine joins the chord sequence for display
func (a *AnalysisResult) ChordLine() string {
	return strings.Join(a.Chords, ", ")
}

// LyricsRequest is the lyrics-writing form as sent to /api/generate-lyrics
type LyricsRequest struct {
	Theme        string          `json:"theme"`
	Mood         string          `json:"mood"`
	Structure    string          `json:"structure"`
	Language     string          `json:"language"`
	Keywords     string          `json:"keywords"`
	Message      string          `json:"message"`
	VocalStyle   string          `json:"vocalStyle"`
	VocalEffects []string        `json:"vocalEffects"`
	UseAnalysis  bool            `json:"useAnalysis"`
	AnalysisData *AnalysisResult `json:"analysisData"`
}

// PromptResult is what a prompt generator produces
type PromptResult struct {
	Prompt       string `json:"prompt"`
	Instructions string `json:"instructions"`
}

// AnalyzeResponse is the success body of /api/analyze-audio
type AnalyzeResponse struct {
	Success  bool            `json:"success"`
	Analysis *AnalysisResult `json:"analysis,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// PromptResponse is the success body of /api/generate-prompt
type PromptResponse struct {
	Success      bool   `json:"success"`
	Prompt       string `json:"prompt,omitempty"`
	Instructions string `json:"instructions,omitempty"`
	Error        string `json:"error,omitempty"`
}

// LyricsResponse is the success body of /api/generate-lyrics
type LyricsResponse struct {
	Success bool   `json:"success"`
	Lyrics  string `json:"lyrics,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ErrorResponse is the uniform failure body
type ErrorResponse struct {
	Error string `json:"error"`
}
