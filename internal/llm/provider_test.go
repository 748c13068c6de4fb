package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockProvider is a test implementation of the Provider interface
type MockProvider struct {
	name         string
	generateFunc func(ctx context.Context, request *GenerationRequest) (*GenerationResponse, error)
}

func (m *MockProvider) Name() string {
	return m.name
}

func (m *MockProvider) Generate(ctx context.Context, request *GenerationRequest) (*GenerationResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, request)
	}
	return &GenerationResponse{}, nil
}

func TestProviderInterface(t *testing.T) {
	var p Provider = &MockProvider{name: "mock"}
	assert.Equal(t, "mock", p.Name())
}

func TestMockProviderGenerate(t *testing.T) {
	callCount := 0
	mock := &MockProvider{
		name: "test",
		generateFunc: func(_ context.Context, request *GenerationRequest) (*GenerationResponse, error) {
			callCount++
			require.Equal(t, "test-model", request.Model)
			return &GenerationResponse{RawOutput: "hello"}, nil
		},
	}

	resp, err := mock.Generate(context.Background(), &GenerationRequest{
		Model:      "test-model",
		InputArray: []map[string]any{UserMessage("hi")},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, callCount)
	assert.Equal(t, "hello", resp.RawOutput)
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, map[string]any{"role": "user", "content": "x"}, UserMessage("x"))
}

func TestAnalysisOutputSchema(t *testing.T) {
	s := AnalysisOutputSchema()
	assert.Equal(t, "AudioAnalysis", s.Name)
	assert.ElementsMatch(t, []string{"lyrics", "chords", "style", "key", "tempo"}, s.Schema["required"])
}

func TestProviderFactory(t *testing.T) {
	ctx := context.Background()

	t.Run("missing openai key", func(t *testing.T) {
		_, err := NewProviderFactory("", "").GetProvider(ctx, "gpt-5-mini", "")
		assert.True(t, errors.Is(err, ErrMissingAPIKey))
	})

	t.Run("missing gemini key", func(t *testing.T) {
		_, err := NewProviderFactory("sk", "").GetProvider(ctx, "", "gemini")
		assert.True(t, errors.Is(err, ErrMissingAPIKey))
	})

	t.Run("explicit openai", func(t *testing.T) {
		p, err := NewProviderFactory("sk", "").GetProvider(ctx, "", "OpenAI")
		require.NoError(t, err)
		assert.Equal(t, "openai", p.Name())
	})

	t.Run("model prefix selects gemini", func(t *testing.T) {
		p, err := NewProviderFactory("", "key").GetProvider(ctx, "gemini-2.5-flash", "")
		require.NoError(t, err)
		assert.Equal(t, "gemini", p.Name())
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewProviderFactory("sk", "key").GetProvider(ctx, "", "llama")
		assert.Error(t, err)
	})
}

func TestCleanOutput(t *testing.T) {
	assert.Equal(t, `{"a":1}`, cleanOutput("```json\n{\"a\":1}\n```"))
	assert.Equal(t, "plain", cleanOutput("  plain \n"))
}
