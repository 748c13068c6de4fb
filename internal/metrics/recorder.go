package metrics

import (
	"context"
	"time"
)

// Recorder fans metrics out to Sentry and CloudWatch. The zero value and a
// nil *Recorder are both safe to use and record nothing.
type Recorder struct {
	Sentry     *SentryMetrics
	CloudWatch *Client
}

// NewRecorder creates a recorder for the given environment
func NewRecorder(ctx context.Context, environment string) *Recorder {
	return &Recorder{
		Sentry:     NewSentryMetrics(),
		CloudWatch: NewClient(ctx, environment),
	}
}

// RecordAPIRequest records one handled HTTP request
func (r *Recorder) RecordAPIRequest(ctx context.Context, endpoint string, statusCode int, duration time.Duration) {
	if r == nil {
		return
	}
	if r.Sentry != nil {
		r.Sentry.RecordAPIRequest(ctx, endpoint, statusCode, duration)
	}
	if r.CloudWatch != nil {
		r.CloudWatch.RecordAPIRequest(endpoint, statusCode, duration)
	}
}

// RecordGeneration records one engine call
func (r *Recorder) RecordGeneration(ctx context.Context, engine, operation string, duration time.Duration, success bool) {
	if r == nil {
		return
	}
	if r.Sentry != nil {
		r.Sentry.RecordGeneration(ctx, engine, operation, duration, success)
	}
	if r.CloudWatch != nil {
		r.CloudWatch.RecordGeneration(engine, operation, duration, success)
	}
}

// RecordTokenUsage records LLM token counts
func (r *Recorder) RecordTokenUsage(ctx context.Context, model string, inputTokens, outputTokens int) {
	if r == nil {
		return
	}
	if r.Sentry != nil {
		r.Sentry.RecordTokenUsage(ctx, model, inputTokens, outputTokens)
	}
	if r.CloudWatch != nil {
		r.CloudWatch.RecordTokenUsage(model, inputTokens, outputTokens)
	}
}

// Close waits for pending CloudWatch writes
func (r *Recorder) Close() {
	if r != nil && r.CloudWatch != nil {
		r.CloudWatch.Wait()
	}
}
