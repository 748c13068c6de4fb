package engine

import (
	"context"
	"fmt"

	"github.com/Conceptual-Machines/music-creator/internal/config"
	"github.com/Conceptual-Machines/music-creator/internal/llm"
)

// New builds the engine selected by cfg.Analyzer and cfg.Generator, observed by obs
func New(ctx context.Context, cfg *config.Config, obs *Observer) (*Engine, error) {
	factory := llm.NewProviderFactory(cfg.OpenAIAPIKey, cfg.GeminiAPIKey)
	stub := &StubEngine{}
	e := &Engine{Analyzer: stub, Prompts: stub, Lyrics: stub}

	llmEngine := func(kind string) (*LLMEngine, error) {
		provider, err := factory.GetProvider(ctx, "", kind)
		if err != nil {
			return nil, err
		}
		model := cfg.OpenAIModel
		if kind == KindGemini {
			model = cfg.GeminiModel
		}
		return NewLLMEngine(provider, model, obs.RecordUsage), nil
	}

	switch cfg.Analyzer {
	case "", KindStub:
	case KindTags:
		e.Analyzer = &TagAnalyzer{}
	case KindGemini:
		analyzer, err := llmEngine(KindGemini)
		if err != nil {
			return nil, fmt.Errorf("analyzer: %w", err)
		}
		e.Analyzer = analyzer
	default:
		return nil, fmt.Errorf("analyzer %q: %w", cfg.Analyzer, ErrUnknownEngine)
	}

	switch cfg.Generator {
	case "", KindStub:
	case KindGemini, KindOpenAI:
		generator, err := llmEngine(cfg.Generator)
		if err != nil {
			return nil, fmt.Errorf("generator: %w", err)
		}
		e.Prompts = generator
		e.Lyrics = generator
	default:
		return nil, fmt.Errorf("generator %q: %w", cfg.Generator, ErrUnknownEngine)
	}

	return obs.Wrap(e), nil
}
