package handlers

const (
	// multipart field carrying the uploaded song
	audioFormField = "audio"

	serviceName = "AI Music Creator"

	defaultLyricsLanguage = "ko"
)

// Messages are the user-facing error strings returned by the API
type Messages struct {
	AudioRequired string
	AudioTooLarge string
	AnalyzeFailed string
	PromptFailed  string
	LyricsFailed  string
}

var messagesByLocale = map[string]Messages{
	"ko": {
		AudioRequired: "오디오 파일이 필요합니다",
		AudioTooLarge: "오디오 파일이 너무 큽니다",
		AnalyzeFailed: "분석 중 오류가 발생했습니다",
		PromptFailed:  "프롬프트 생성 중 오류가 발생했습니다",
		LyricsFailed:  "가사 생성 중 오류가 발생했습니다",
	},
	"en": {
		AudioRequired: "An audio file is required",
		AudioTooLarge: "The audio file is too large",
		AnalyzeFailed: "An error occurred during analysis",
		PromptFailed:  "An error occurred while generating the prompt",
		LyricsFailed:  "An error occurred while generating lyrics",
	},
}

// MessagesFor returns the messages of a locale, falling back to Korean
func MessagesFor(locale string) Messages {
	if m, ok := messagesByLocale[locale]; ok {
		return m
	}
	return messagesByLocale[defaultLyricsLanguage]
}
