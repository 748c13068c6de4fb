package engine

import (
	"context"
	"strings"
	"testing"

	"github.com/Conceptual-Machines/music-creator/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubAnalyze(t *testing.T) {
	stub := &StubEngine{}

	result, err := stub.Analyze(context.Background(), Audio{Filename: "song.mp3", Data: []byte("abc")})
	require.NoError(t, err)
	assert.Equal(t, &models.AnalysisResult{
		Lyrics: "분석된 가사 내용...",
		Chords: []string{"C", "Am", "F", "G"},
		Style:  "Pop, Emotional, Mid-tempo",
		Key:    "C Major",
		Tempo:  "120 BPM",
	}, result)

	_, err = stub.Analyze(context.Background(), Audio{Filename: "empty.mp3"})
	assert.ErrorIs(t, err, ErrEmptyAudio)
}

func TestStubGeneratePrompt(t *testing.T) {
	stub := &StubEngine{}

	tests := []struct {
		name string
		req  models.StyleRequest
		want string
	}{
		{
			name: "all defaults",
			req:  models.StyleRequest{},
			want: "Pop, Contemporary, Upbeat, featuring piano, guitar, drums, inspired by modern artists, high quality production, professional mixing",
		},
		{
			name: "genre and mood given",
			req:  models.StyleRequest{Genre: "Rock", Mood: "Dark"},
			want: "Rock, Contemporary, Dark, featuring piano, guitar, drums, inspired by modern artists, high quality production, professional mixing",
		},
		{
			name: "everything given",
			req: models.StyleRequest{Genre: "Jazz", Style: "Smooth", Mood: "Calm", Instruments: "saxophone, bass",
				Influences: "late night radio", Tempo: "slow"},
			want: "Jazz, Smooth, Calm, featuring saxophone, bass, inspired by late night radio, high quality production, professional mixing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := stub.GeneratePrompt(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Prompt)
			assert.Equal(t, "원곡을 따르라 - 업로드된 멜로디 구조를 유지하며 편곡하세요", result.Instructions)
		})
	}
}

func TestStubGenerateLyrics(t *testing.T) {
	lyrics, err := (&StubEngine{}).GenerateLyrics(context.Background(), models.LyricsRequest{Theme: "사랑", Mood: "슬픈"})
	require.NoError(t, err)

	want := "[Verse 1]\n사랑에 대한 감정을 담은 첫 번째 구절\n슬픈한 분위기로 시작하는 이야기\n\n" +
		"[Chorus]\n가슴을 울리는 후렴구\n기억에 남을 멜로디와 함께\n\n" +
		"[Verse 2]\n더 깊어지는 이야기\n감정의 절정으로 향하는 여정\n\n" +
		"[Chorus]\n가슴을 울리는 후렴구\n기억에 남을 멜로디와 함께\n\n" +
		"[Bridge]\n잠깐의 휴식과 변화\n새로운 관점에서 바라본 세상\n\n" +
		"[Outro]\n여운을 남기는 마무리\n사랑에 대한 최종 메시지"
	assert.Equal(t, want, lyrics)

	sections := strings.Split(lyrics, "\n\n")
	assert.Len(t, sections, 6)
}

func TestStubLyricsEmptyTheme(t *testing.T) {
	lyrics := TemplateLyrics("", "")
	assert.True(t, strings.HasPrefix(lyrics, "[Verse 1]\n에 대한 감정을 담은 첫 번째 구절\n한 분위기로"))
	assert.NotContains(t, lyrics, "undefined")
}
