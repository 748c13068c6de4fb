package observability

import (
	"context"
	"testing"

	"github.com/Conceptual-Machines/music-creator/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestCalculateCost(t *testing.T) {
	assert.InDelta(t, 0.00025+0.002, CalculateCost("gpt-5-mini", 1000, 1000), 1e-9)
	assert.InDelta(t, 0.0003, CalculateCost("gemini-2.5-flash", 1000, 0), 1e-9)

	// unknown models fall back to the default pricing
	assert.Equal(t, CalculateCost("gpt-5-mini", 500, 200), CalculateCost("unknown", 500, 200))
}

func TestFormatCost(t *testing.T) {
	assert.Equal(t, "$0.002250", FormatCost(0.00225))
}

func TestDisabledLangfuseIsNoop(t *testing.T) {
	client := InitializeLangfuse(context.Background(), &config.Config{LangfuseEnabled: false})
	assert.False(t, client.IsEnabled())

	trace := client.StartTrace(context.Background(), "test", nil)
	gen := trace.Generation("gen", nil)
	gen.Record("gpt-5-mini", "in", "out", 1, 2)
	gen.SetLevel("ERROR")
	gen.Finish()
	trace.Finish()

	assert.Same(t, client, GetClient())
}
