// Package catalog holds the option tables behind the style and lyrics forms.
// Both the server-rendered page and the headless client build their controls
// from these tables.
package catalog

// Option is one selectable value and its display label
type Option struct {
	Value string
	Label string
}

// Genres lists the genre select options
var Genres = []Option{
	{"Pop", "팝 (Pop)"},
	{"Rock", "록 (Rock)"},
	{"Jazz", "재즈 (Jazz)"},
	{"Classical", "클래식 (Classical)"},
	{"Electronic", "일렉트로닉 (Electronic)"},
	{"Hip-hop", "힙합 (Hip-hop)"},
	{"R&B", "알앤비 (R&B)"},
	{"Country", "컨트리 (Country)"},
	{"Folk", "포크 (Folk)"},
	{"Reggae", "레게 (Reggae)"},
	{"K-pop", "케이팝 (K-pop)"},
	{"J-pop", "제이팝 (J-pop)"},
}

// Instruments lists the instrument checkboxes in display order
var Instruments = []Option{
	{"piano", "피아노"},
	{"guitar", "기타"},
	{"drums", "드럼"},
	{"bass", "베이스"},
	{"violin", "바이올린"},
	{"saxophone", "색소폰"},
	{"synthesizer", "신디사이저"},
	{"orchestra", "오케스트라"},
}

// Moods lists the style mood select options
var Moods = []Option{
	{"Upbeat", "경쾌함 (Upbeat)"},
	{"Emotional", "감동적 (Emotional)"},
	{"Melancholy", "우울한 (Melancholy)"},
	{"Energetic", "에너지틱 (Energetic)"},
	{"Romantic", "로맨틱 (Romantic)"},
	{"Dramatic", "드라마틱 (Dramatic)"},
	{"Peaceful", "평화로운 (Peaceful)"},
	{"Dark", "어두운 (Dark)"},
	{"Cinematic", "영화적 (Cinematic)"},
	{"Nostalgic", "향수적 (Nostalgic)"},
	{"Inspiring", "영감을 주는 (Inspiring)"},
	{"Mysterious", "신비로운 (Mysterious)"},
}

// Tempos lists the tempo select options
var Tempos = []Option{
	{"Slow", "느림 (60-80 BPM)"},
	{"Mid-tempo", "중간 (80-120 BPM)"},
	{"Fast", "빠름 (120-140 BPM)"},
	{"Very Fast", "매우 빠름 (140+ BPM)"},
}

// LyricsMoods lists the lyrics emotion select options
var LyricsMoods = []Option{
	{"희망적", "희망적"},
	{"슬픈", "슬픈"},
	{"기쁜", "기쁜"},
	{"그리운", "그리운"},
	{"용기있는", "용기있는"},
	{"로맨틱", "로맨틱"},
	{"강렬한", "강렬한"},
	{"평화로운", "평화로운"},
	{"신비로운", "신비로운"},
	{"에너지틱", "에너지틱"},
}

// Structures lists the song structure options; the first entry is the default
var Structures = []Option{
	{"standard", "표준 (Verse-Chorus-Verse-Chorus-Bridge-Chorus)"},
	{"simple", "단순 (Verse-Chorus-Verse-Chorus)"},
	{"extended", "확장 (Intro-Verse-Pre-Chorus-Chorus-Verse-Pre-Chorus-Chorus-Bridge-Chorus-Outro)"},
	{"ballad", "발라드 (Verse-Chorus-Verse-Chorus-Bridge-Chorus-Outro)"},
	{"custom", "사용자 정의"},
}

// Languages lists the lyrics language options; the first entry is the default
var Languages = []Option{
	{"ko", "한국어"},
	{"en", "영어"},
	{"mix", "한영 혼용"},
}

// VocalStyles lists the vocal style select options
var VocalStyles = []Option{
	{"powerful", "파워풀"},
	{"soft", "부드러운"},
	{"emotional", "감정적인"},
	{"breathy", "숨소리가 섞인"},
	{"soulful", "소울풀"},
	{"gentle", "젠틀한"},
	{"dramatic", "드라마틱"},
}

// VocalEffects lists the vocal effect checkboxes in display order
var VocalEffects = []Option{
	{"harmonies", "하모니"},
	{"reverb", "리버브"},
	{"whisper", "위스퍼"},
	{"falsetto", "팔세토"},
}

// Slider defaults for the advanced style settings
const (
	DefaultOriginalInfluence = 80
	DefaultCreativity        = 60
)

// Values returns the option values in table order
func Values(options []Option) []string {
	out := make([]string, len(options))
	for i, o := range options {
		out[i] = o.Value
	}
	return out
}

// Contains reports whether value is one of the table's values
func Contains(options []Option, value string) bool {
	for _, o := range options {
		if o.Value == value {
			return true
		}
	}
	return false
}
