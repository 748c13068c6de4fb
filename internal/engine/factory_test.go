package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/Conceptual-Machines/music-creator/internal/config"
	"github.com/Conceptual-Machines/music-creator/internal/llm"
	"github.com/Conceptual-Machines/music-creator/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSelectsEngines(t *testing.T) {
	ctx := context.Background()
	obs := NewObserver(nil, nil)

	tests := []struct {
		name      string
		cfg       config.Config
		analyzer  string
		generator string
	}{
		{"defaults", config.Config{}, KindStub, KindStub},
		{"tags analyzer", config.Config{Analyzer: KindTags}, KindTags, KindStub},
		{"openai generator", config.Config{Generator: KindOpenAI, OpenAIAPIKey: "sk-test", OpenAIModel: "gpt-5-mini"}, KindStub, KindOpenAI},
		{"gemini everything", config.Config{Analyzer: KindGemini, Generator: KindGemini, GeminiAPIKey: "key"}, KindGemini, KindGemini},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := New(ctx, &tt.cfg, obs)
			require.NoError(t, err)
			assert.Equal(t, tt.analyzer, e.Analyzer.Name())
			assert.Equal(t, tt.generator, e.Prompts.Name())
			assert.Equal(t, tt.generator, e.Lyrics.Name())
		})
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	ctx := context.Background()
	obs := NewObserver(nil, nil)

	_, err := New(ctx, &config.Config{Analyzer: "magic"}, obs)
	assert.ErrorIs(t, err, ErrUnknownEngine)

	_, err = New(ctx, &config.Config{Generator: "llama"}, obs)
	assert.ErrorIs(t, err, ErrUnknownEngine)

	_, err = New(ctx, &config.Config{Generator: KindOpenAI}, obs)
	assert.True(t, errors.Is(err, llm.ErrMissingAPIKey))
}

func TestObserverAccumulatesUsage(t *testing.T) {
	obs := NewObserver(nil, nil)
	provider := &mockProvider{output: "[Verse 1]\nhello"}
	e := obs.Wrap(&Engine{
		Analyzer: &StubEngine{},
		Prompts:  &StubEngine{},
		Lyrics:   NewLLMEngine(provider, "gpt-5-mini", obs.RecordUsage),
	})

	lyrics, err := e.Lyrics.GenerateLyrics(context.Background(), models.LyricsRequest{})
	require.NoError(t, err)
	assert.Equal(t, "[Verse 1]\nhello", lyrics)
	assert.Equal(t, "mock", e.Lyrics.Name())

	_, err = e.Analyzer.Analyze(context.Background(), Audio{})
	assert.ErrorIs(t, err, ErrEmptyAudio)

	prompt, err := e.Prompts.GeneratePrompt(context.Background(), models.StyleRequest{Genre: "Rock"})
	require.NoError(t, err)
	assert.Contains(t, prompt.Prompt, "Rock, Contemporary")
}

func TestRecordUsageWithoutRun(t *testing.T) {
	// usage outside an observed call only reaches metrics
	NewObserver(nil, nil).RecordUsage(context.Background(), "gpt-5-mini", 1, 1)
}
