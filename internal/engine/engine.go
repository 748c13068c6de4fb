// Package engine holds the analysis and generation back ends behind the API.
package engine

import (
	"context"
	"errors"

	"github.com/Conceptual-Machines/music-creator/internal/models"
)

// Engine kinds selectable through configuration
const (
	KindStub   = "stub"
	KindTags   = "tags"
	KindGemini = "gemini"
	KindOpenAI = "openai"
)

var (
	// ErrEmptyAudio is returned when an upload carries no bytes
	ErrEmptyAudio = errors.New("audio file is empty")
	// ErrUnknownEngine is returned for an unsupported engine kind
	ErrUnknownEngine = errors.New("unknown engine")
	// ErrMalformedOutput is returned when a model answers with unusable content
	ErrMalformedOutput = errors.New("malformed engine output")
)

// Audio is an uploaded file as received by the analyzer
type Audio struct {
	Filename string
	MIMEType string
	Data     []byte
}

// Analyzer inspects an uploaded song
type Analyzer interface {
	Name() string
	Analyze(ctx context.Context, audio Audio) (*models.AnalysisResult, error)
}

// PromptGenerator turns style settings into a music prompt
type PromptGenerator interface {
	Name() string
	GeneratePrompt(ctx context.Context, req models.StyleRequest) (*models.PromptResult, error)
}

// LyricsGenerator writes song lyrics
type LyricsGenerator interface {
	Name() string
	GenerateLyrics(ctx context.Context, req models.LyricsRequest) (string, error)
}

// Engine bundles the three back ends the API needs
type Engine struct {
	Analyzer Analyzer
	Prompts  PromptGenerator
	Lyrics   LyricsGenerator
}

// NewStubEngine returns an engine producing the fixed placeholder outputs
func NewStubEngine() *Engine {
	stub := &StubEngine{}
	return &Engine{Analyzer: stub, Prompts: stub, Lyrics: stub}
}
