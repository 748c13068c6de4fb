package logger

import (
	"bytes"
	"errors"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	flags := log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prev)
		log.SetFlags(flags)
	})
	return &buf
}

func TestFormatFieldsSorted(t *testing.T) {
	out := formatFields(Fields{"path": "/api/health", "duration_ms": int64(12), "ratio": 0.5})
	assert.Equal(t, "{duration_ms=12, path=/api/health, ratio=0.50}", out)
	assert.Equal(t, "", formatFields(nil))
}

func TestLevelsPrefix(t *testing.T) {
	buf := captureLog(t)

	Info("started", Fields{"port": "8080"})
	Warn("slow", nil)
	Error("failed", errors.New("boom"), Fields{"engine": "stub"})

	out := buf.String()
	assert.Contains(t, out, "[INFO] started {port=8080}")
	assert.Contains(t, out, "[WARN] slow")
	assert.Contains(t, out, "[ERROR] failed: boom {engine=stub}")
}

func TestLogGeneration(t *testing.T) {
	buf := captureLog(t)
	LogGeneration("stub", "lyrics", 1500*time.Millisecond, Fields{"theme": "사랑"})
	assert.Contains(t, buf.String(), "[INFO] Generation completed {duration_ms=1500, engine=stub, operation=lyrics, theme=사랑}")
}
