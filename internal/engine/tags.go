package engine

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Conceptual-Machines/music-creator/internal/logger"
	"github.com/Conceptual-Machines/music-creator/internal/models"
	"github.com/dhowden/tag"
)

const (
	slowTempoMax = 90
	midTempoMax  = 130
)

// TagAnalyzer reads embedded audio metadata (ID3, MP4, FLAC, OGG) and lays
// whatever it finds over the placeholder analysis
type TagAnalyzer struct{}

func (a *TagAnalyzer) Name() string {
	return KindTags
}

func (a *TagAnalyzer) Analyze(_ context.Context, audio Audio) (*models.AnalysisResult, error) {
	if len(audio.Data) == 0 {
		return nil, ErrEmptyAudio
	}

	result := StubAnalysis()

	metadata, err := tag.ReadFrom(bytes.NewReader(audio.Data))
	if err != nil {
		logger.Warn("No readable tags in upload, using placeholder analysis", logger.Fields{
			"filename": audio.Filename,
			"error":    err.Error(),
		})
		return result, nil
	}

	bpm := readBPM(metadata.Raw())
	if bpm > 0 {
		result.Tempo = fmt.Sprintf("%d BPM", bpm)
	}
	if genre := strings.TrimSpace(metadata.Genre()); genre != "" {
		parts := []string{genre}
		if bpm > 0 {
			parts = append(parts, tempoClass(bpm))
		}
		result.Style = strings.Join(parts, ", ")
	}
	if key := readKey(metadata.Raw()); key != "" {
		result.Key = key
	}
	if lyrics := strings.TrimSpace(metadata.Lyrics()); lyrics != "" {
		result.Lyrics = lyrics
	}

	logger.Debug("Read audio tags", logger.Fields{
		"format": string(metadata.Format()),
		"title":  metadata.Title(),
		"artist": metadata.Artist(),
	})
	return result, nil
}

// readBPM looks through the format specific tempo tags
func readBPM(raw map[string]interface{}) int {
	for _, key := range []string{"TBPM", "BPM", "bpm", "tmpo", "tempo"} {
		val, exists := raw[key]
		if !exists {
			continue
		}
		var bpm float64
		switch v := val.(type) {
		case string:
			bpm, _ = strconv.ParseFloat(strings.TrimSpace(v), 64)
		case int:
			bpm = float64(v)
		case float64:
			bpm = v
		}
		if bpm > 0 {
			return int(math.Round(bpm))
		}
	}
	return 0
}

// readKey converts an initial-key tag ("Am", "F#") to "A Minor" / "F# Major"
func readKey(raw map[string]interface{}) string {
	for _, name := range []string{"TKEY", "INITIALKEY", "initialkey", "KEY"} {
		v, ok := raw[name].(string)
		if !ok {
			continue
		}
		if key := formatKey(v); key != "" {
			return key
		}
	}
	return ""
}

func formatKey(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if strings.HasSuffix(v, "m") && len(v) > 1 {
		return strings.TrimSuffix(v, "m") + " Minor"
	}
	if strings.HasSuffix(v, "Major") || strings.HasSuffix(v, "Minor") {
		return v
	}
	return v + " Major"
}

func tempoClass(bpm int) string {
	switch {
	case bpm < slowTempoMax:
		return "Slow"
	case bpm <= midTempoMax:
		return "Mid-tempo"
	default:
		return "Up-tempo"
	}
}
