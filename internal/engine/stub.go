package engine

import (
	"context"
	"strings"

	"github.com/Conceptual-Machines/music-creator/internal/models"
)

// Defaults substituted for empty style fields
const (
	DefaultGenre       = "Pop"
	DefaultStyle       = "Contemporary"
	DefaultMood        = "Upbeat"
	DefaultInstruments = "piano, guitar, drums"
	DefaultInfluences  = "modern artists"

	// FollowOriginalDirective is returned with every generated prompt
	FollowOriginalDirective = "원곡을 따르라 - 업로드된 멜로디 구조를 유지하며 편곡하세요"

	promptSuffix = "high quality production, professional mixing"
)

// StubEngine returns fixed placeholder data without looking at the input audio
type StubEngine struct{}

func (s *StubEngine) Name() string {
	return KindStub
}

// StubAnalysis returns the fixed analysis result
func StubAnalysis() *models.AnalysisResult {
	return &models.AnalysisResult{
		Lyrics: "분석된 가사 내용...",
		Chords: []string{"C", "Am", "F", "G"},
		Style:  "Pop, Emotional, Mid-tempo",
		Key:    "C Major",
		Tempo:  "120 BPM",
	}
}

func (s *StubEngine) Analyze(_ context.Context, audio Audio) (*models.AnalysisResult, error) {
	if len(audio.Data) == 0 {
		return nil, ErrEmptyAudio
	}
	return StubAnalysis(), nil
}

func (s *StubEngine) GeneratePrompt(_ context.Context, req models.StyleRequest) (*models.PromptResult, error) {
	return &models.PromptResult{
		Prompt:       TemplatePrompt(req),
		Instructions: FollowOriginalDirective,
	}, nil
}

// TemplatePrompt fills the fixed prompt template, defaulting empty fields
func TemplatePrompt(req models.StyleRequest) string {
	return strings.Join([]string{
		or(req.Genre, DefaultGenre),
		or(req.Style, DefaultStyle),
		or(req.Mood, DefaultMood),
		"featuring " + or(req.Instruments, DefaultInstruments),
		"inspired by " + or(req.Influences, DefaultInfluences),
		promptSuffix,
	}, ", ")
}

func (s *StubEngine) GenerateLyrics(_ context.Context, req models.LyricsRequest) (string, error) {
	return TemplateLyrics(req.Theme, req.Mood), nil
}

// TemplateLyrics fills the fixed six-section lyrics template
func TemplateLyrics(theme, mood string) string {
	chorus := []string{"[Chorus]", "가슴을 울리는 후렴구", "기억에 남을 멜로디와 함께"}
	sections := [][]string{
		{"[Verse 1]", theme + "에 대한 감정을 담은 첫 번째 구절", mood + "한 분위기로 시작하는 이야기"},
		chorus,
		{"[Verse 2]", "더 깊어지는 이야기", "감정의 절정으로 향하는 여정"},
		chorus,
		{"[Bridge]", "잠깐의 휴식과 변화", "새로운 관점에서 바라본 세상"},
		{"[Outro]", "여운을 남기는 마무리", theme + "에 대한 최종 메시지"},
	}

	blocks := make([]string, len(sections))
	for i, lines := range sections {
		blocks[i] = strings.Join(lines, "\n")
	}
	return strings.Join(blocks, "\n\n")
}

func or(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
