package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Conceptual-Machines/music-creator/internal/llm"
	"github.com/Conceptual-Machines/music-creator/internal/models"
	"github.com/Conceptual-Machines/music-creator/internal/prompt"
)

const reasoningMode = "low"

// LLMEngine analyzes and generates through an llm.Provider
type LLMEngine struct {
	provider llm.Provider
	model    string
	prompts  *prompt.Builder
	usage    UsageFunc
}

// UsageFunc receives the token counts of every successful call
type UsageFunc func(ctx context.Context, model string, inputTokens, outputTokens int)

// NewLLMEngine creates an engine for the given provider and model
func NewLLMEngine(provider llm.Provider, model string, usage UsageFunc) *LLMEngine {
	return &LLMEngine{
		provider: provider,
		model:    model,
		prompts:  prompt.NewPromptBuilder(),
		usage:    usage,
	}
}

func (e *LLMEngine) Name() string {
	return e.provider.Name()
}

// Analyze sends the audio inline and decodes the structured answer
func (e *LLMEngine) Analyze(ctx context.Context, audio Audio) (*models.AnalysisResult, error) {
	if len(audio.Data) == 0 {
		return nil, ErrEmptyAudio
	}

	system, user := e.prompts.AnalysisPrompt(audio.Filename)
	resp, err := e.generate(ctx, &llm.GenerationRequest{
		SystemPrompt: system,
		InputArray:   []map[string]any{llm.UserMessage(user)},
		OutputSchema: llm.AnalysisOutputSchema(),
		Attachments: []llm.Attachment{{
			MIMEType: DetectMIME(audio.Data, audio.MIMEType),
			Data:     audio.Data,
		}},
	})
	if err != nil {
		return nil, err
	}

	var result models.AnalysisResult
	if err := json.Unmarshal([]byte(resp.RawOutput), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	if result.Chords == nil {
		result.Chords = []string{}
	}
	return &result, nil
}

// GeneratePrompt asks the model for a single-line style prompt
func (e *LLMEngine) GeneratePrompt(ctx context.Context, req models.StyleRequest) (*models.PromptResult, error) {
	system, user := e.prompts.StylePrompt(req)
	resp, err := e.generate(ctx, &llm.GenerationRequest{
		SystemPrompt: system,
		InputArray:   []map[string]any{llm.UserMessage(user)},
	})
	if err != nil {
		return nil, err
	}

	line := strings.TrimSpace(strings.SplitN(resp.RawOutput, "\n", 2)[0])
	line = strings.Trim(line, `"`)
	if line == "" {
		return nil, ErrMalformedOutput
	}
	return &models.PromptResult{Prompt: line, Instructions: FollowOriginalDirective}, nil
}

// GenerateLyrics asks the model for sectioned lyrics
func (e *LLMEngine) GenerateLyrics(ctx context.Context, req models.LyricsRequest) (string, error) {
	system, user := e.prompts.LyricsPrompt(req)
	resp, err := e.generate(ctx, &llm.GenerationRequest{
		SystemPrompt: system,
		InputArray:   []map[string]any{llm.UserMessage(user)},
	})
	if err != nil {
		return "", err
	}
	if !strings.Contains(resp.RawOutput, "[") {
		return "", fmt.Errorf("%w: lyrics without section tags", ErrMalformedOutput)
	}
	return resp.RawOutput, nil
}

func (e *LLMEngine) generate(ctx context.Context, req *llm.GenerationRequest) (*llm.GenerationResponse, error) {
	req.Model = e.model
	req.ReasoningMode = reasoningMode

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return nil, err
	}
	if e.usage != nil {
		e.usage(ctx, e.model, resp.InputTokens, resp.OutputTokens)
	}
	return resp, nil
}
