package engine

import (
	"context"
	"time"

	"github.com/Conceptual-Machines/music-creator/internal/logger"
	"github.com/Conceptual-Machines/music-creator/internal/metrics"
	"github.com/Conceptual-Machines/music-creator/internal/models"
	"github.com/Conceptual-Machines/music-creator/internal/observability"
)

// Operation names used in logs, metrics and traces
const (
	OpAnalyze = "analyze"
	OpPrompt  = "prompt"
	OpLyrics  = "lyrics"
)

// Observer logs, measures and traces every engine call
type Observer struct {
	recorder *metrics.Recorder
	langfuse *observability.LangfuseClient
}

// NewObserver creates an observer; both arguments may be nil
func NewObserver(recorder *metrics.Recorder, langfuse *observability.LangfuseClient) *Observer {
	if langfuse == nil {
		langfuse = observability.GetClient()
	}
	return &Observer{recorder: recorder, langfuse: langfuse}
}

type usageKey struct{}

type usage struct {
	model        string
	inputTokens  int
	outputTokens int
}

// RecordUsage is the UsageFunc handed to LLM engines
func (o *Observer) RecordUsage(ctx context.Context, model string, inputTokens, outputTokens int) {
	if u, ok := ctx.Value(usageKey{}).(*usage); ok {
		u.model = model
		u.inputTokens += inputTokens
		u.outputTokens += outputTokens
	}
	o.recorder.RecordTokenUsage(ctx, model, inputTokens, outputTokens)
}

func (o *Observer) run(ctx context.Context, engine, operation string, input any, fn func(ctx context.Context) (string, error)) error {
	trace := o.langfuse.StartTrace(ctx, "music-creator."+operation, map[string]any{"engine": engine})
	defer trace.Finish()
	gen := trace.Generation(operation, map[string]any{"engine": engine})
	defer gen.Finish()

	u := &usage{model: engine}
	ctx = context.WithValue(ctx, usageKey{}, u)

	start := time.Now()
	output, err := fn(ctx)
	duration := time.Since(start)

	o.recorder.RecordGeneration(ctx, engine, operation, duration, err == nil)
	gen.Record(u.model, input, output, u.inputTokens, u.outputTokens)

	if err != nil {
		gen.SetLevel("ERROR")
		logger.Error("Generation failed", err, logger.Fields{"engine": engine, "operation": operation})
		return err
	}
	logger.LogGeneration(engine, operation, duration, logger.Fields{
		"input_tokens":  u.inputTokens,
		"output_tokens": u.outputTokens,
	})
	return nil
}

// Wrap returns e with every back end observed
func (o *Observer) Wrap(e *Engine) *Engine {
	return &Engine{
		Analyzer: &observedAnalyzer{next: e.Analyzer, obs: o},
		Prompts:  &observedPrompts{next: e.Prompts, obs: o},
		Lyrics:   &observedLyrics{next: e.Lyrics, obs: o},
	}
}

type observedAnalyzer struct {
	next Analyzer
	obs  *Observer
}

func (a *observedAnalyzer) Name() string { return a.next.Name() }

func (a *observedAnalyzer) Analyze(ctx context.Context, audio Audio) (*models.AnalysisResult, error) {
	var result *models.AnalysisResult
	input := map[string]any{"filename": audio.Filename, "mime": audio.MIMEType, "bytes": len(audio.Data)}
	err := a.obs.run(ctx, a.Name(), OpAnalyze, input, func(ctx context.Context) (string, error) {
		var err error
		result, err = a.next.Analyze(ctx, audio)
		if err != nil {
			return "", err
		}
		return result.Style + " / " + result.Key + " / " + result.Tempo, nil
	})
	return result, err
}

type observedPrompts struct {
	next PromptGenerator
	obs  *Observer
}

func (p *observedPrompts) Name() string { return p.next.Name() }

func (p *observedPrompts) GeneratePrompt(ctx context.Context, req models.StyleRequest) (*models.PromptResult, error) {
	var result *models.PromptResult
	err := p.obs.run(ctx, p.Name(), OpPrompt, req, func(ctx context.Context) (string, error) {
		var err error
		result, err = p.next.GeneratePrompt(ctx, req)
		if err != nil {
			return "", err
		}
		return result.Prompt, nil
	})
	return result, err
}

type observedLyrics struct {
	next LyricsGenerator
	obs  *Observer
}

func (l *observedLyrics) Name() string { return l.next.Name() }

func (l *observedLyrics) GenerateLyrics(ctx context.Context, req models.LyricsRequest) (string, error) {
	var lyrics string
	err := l.obs.run(ctx, l.Name(), OpLyrics, req, func(ctx context.Context) (string, error) {
		var err error
		lyrics, err = l.next.GenerateLyrics(ctx, req)
		return lyrics, err
	})
	return lyrics, err
}
