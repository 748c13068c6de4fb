package view

import (
	"github.com/Conceptual-Machines/music-creator/internal/models"
)

const (
	cardClass    = "bg-white/10 backdrop-blur-md rounded-2xl p-6 border border-white/20"
	outputClass  = "w-full h-32 bg-black/20 border border-white/30 rounded-lg p-4 text-white placeholder-gray-400 resize-none"
	SunoURL      = "https://suno.com"
	scriptSource = "/static/app.js"
)

func card(icon, gradient, title, description string, action Node) Node {
	return El("div", A("class", cardClass),
		El("div", A("class", "flex items-center mb-4"),
			El("div", A("class", "w-12 h-12 bg-gradient-to-r "+gradient+" rounded-full flex items-center justify-center mr-4"),
				El("span", A("class", "text-white text-xl"), Text(icon))),
			El("h2", A("class", "text-xl font-semibold text-white"), Text(title)),
		),
		El("p", A("class", "text-gray-300 mb-4"), Text(description)),
		action,
	)
}

func actionButton(id, gradient, label string) Node {
	return El("button", A("type", "button", "id", id,
		"class", "w-full bg-gradient-to-r "+gradient+" text-white font-semibold py-3 px-6 rounded-lg transition-all duration-300"),
		Text(label))
}

func output(id, label, placeholder, copyID, copyLabel, copyColor string) Node {
	return El("div", nil,
		El("label", A("class", "block text-white font-medium mb-2"), Text(label)),
		El("textarea", A("id", id, "readonly", "", "class", outputClass, "placeholder", placeholder)),
		El("button", A("type", "button", "id", copyID, "class", "mt-2 "+copyColor+" text-white px-4 py-2 rounded-lg transition-colors"), Text(copyLabel)),
	)
}

func feature(icon, title, description string) Node {
	return El("div", A("class", "text-center"),
		El("div", A("class", "w-16 h-16 bg-gradient-to-r from-blue-500 to-purple-500 rounded-full flex items-center justify-center mx-auto mb-4"),
			El("span", A("class", "text-white text-2xl"), Text(icon))),
		El("h3", A("class", "text-white font-semibold mb-2"), Text(title)),
		El("p", A("class", "text-gray-400 text-sm"), Text(description)),
	)
}

// Shell is the interactive main page without the modals
func Shell() Node {
	return El("div", A("class", "min-h-screen bg-gradient-to-br from-purple-900 via-blue-900 to-indigo-900"),
		El("div", A("class", "container mx-auto px-4 py-8"),
			El("header", A("class", "text-center mb-12"),
				El("h1", A("class", "text-5xl font-bold text-white mb-4"), Text("🎵 AI Music Creator")),
				El("p", A("class", "text-xl text-gray-300 max-w-2xl mx-auto"),
					Text("Suno AI와 연동하여 머릿속 멜로디를 현실로 만드는 혁신적인 음악 창작 플랫폼")),
			),
			El("div", A("class", "grid md:grid-cols-2 lg:grid-cols-3 gap-8 mb-12"),
				card("🎧", "from-blue-500 to-cyan-500", "오디오 분석",
					"기존 곡을 업로드하여 가사, 코드, 스타일을 AI가 자동 분석",
					El("div", A("id", "audio-upload-section"),
						El("input", A("type", "file", "id", IDAudioFile, "accept", "audio/*", "class", ClassHidden)),
						actionButton(IDUploadButton, "from-blue-600 to-cyan-600", "음악 파일 업로드"),
					)),
				card("🎨", "from-purple-500 to-pink-500", "스타일 디렉팅",
					"장르, 악기, 분위기를 세밀하게 조정하여 원하는 음악 스타일 생성",
					actionButton(IDOpenStyleModal, "from-purple-600 to-pink-600", "스타일 설정하기")),
				card("✍️", "from-green-500 to-teal-500", "가사 생성",
					"테마와 감정을 입력하면 AI가 완성도 높은 가사 자동 생성",
					actionButton(IDOpenLyricsModal, "from-green-600 to-teal-600", "가사 작성하기")),
			),
			El("div", A("class", "bg-white/10 backdrop-blur-md rounded-2xl p-8 border border-white/20 mb-12"),
				El("h2", A("class", "text-2xl font-semibold text-white mb-2"), Text("🚀 Suno AI 연동 생성")),
				El("p", A("class", "text-gray-300 mb-6"), Text("최적화된 프롬프트로 Suno AI에서 전문가급 음악 생성")),
				El("div", A("class", "grid md:grid-cols-2 gap-6"),
					output(IDMusicPrompt, "생성된 음악 스타일 프롬프트", "스타일 설정 후 자동으로 최적화된 프롬프트가 생성됩니다.",
						IDCopyPrompt, "📋 프롬프트 복사", "bg-orange-600"),
					output(IDGeneratedLyrics, "생성된 가사", "가사 작성 후 여기에 표시됩니다.",
						IDCopyLyrics, "📋 가사 복사", "bg-green-600"),
				),
				El("div", A("class", "mt-6 text-center"),
					El("a", A("href", SunoURL, "target", "_blank", "rel", "noopener noreferrer",
						"class", "inline-flex items-center bg-gradient-to-r from-red-600 to-orange-600 text-white font-bold py-4 px-8 rounded-xl"),
						Text("🎵 Suno AI에서 음악 생성하기")),
				),
			),
			El("div", A("class", "bg-white/5 backdrop-blur-sm rounded-2xl p-8 border border-white/10"),
				El("h2", A("class", "text-3xl font-bold text-white text-center mb-8"), Text("🌟 핵심 기능")),
				El("div", A("class", "grid md:grid-cols-2 lg:grid-cols-4 gap-6"),
					feature("🔍", "AI 음악 분석", "업로드한 음악의 구조와 스타일을 딥러닝으로 분석"),
					feature("🎯", "정밀 디렉팅", "장르, 악기, 보컬 스타일을 세밀하게 조정"),
					feature("⚡", "원클릭 생성", "최적화된 프롬프트로 10-20분 내 완곡 생성"),
					feature("💾", "페르소나 저장", "선호하는 보컬 스타일을 저장하고 재사용"),
				),
			),
			El("footer", A("class", "text-center mt-12 text-gray-400"),
				El("p", A("class", "text-sm"), Text("AI 기반 음악 창작의 새로운 패러다임을 제시합니다")),
			),
		),
	)
}

// Script is the client script tag
func Script() Node {
	return El("script", A("src", scriptSource))
}

// AnalysisReference is the content of the lyrics modal's analysis block
func AnalysisReference(a *models.AnalysisResult) Node {
	return El("div", A("class", "grid grid-cols-2 gap-4 text-sm"),
		labeled("감지된 스타일", a.Style),
		labeled("키", a.Key),
		labeled("템포", a.Tempo),
		labeled("코드 진행", a.ChordLine()),
	)
}

// AnalysisSummary is the transient panel shown after a successful analysis
func AnalysisSummary(a *models.AnalysisResult) Node {
	return El("div", A("class", "fixed top-4 right-4 bg-blue-500 text-white p-4 rounded-lg shadow-lg z-50 max-w-sm"),
		El("h4", A("class", "font-semibold mb-2"), Text("🎵 분석 완료!")),
		El("p", A("class", "text-sm mb-2"), labeledParts("스타일", a.Style)...),
		El("p", A("class", "text-sm mb-2"), labeledParts("키", a.Key)...),
		El("p", A("class", "text-sm mb-2"), labeledParts("템포", a.Tempo)...),
		El("p", A("class", "text-sm"), labeledParts("코드", a.ChordLine())...),
	)
}

// ClassOffscreen keeps a notification banner outside the viewport
const ClassOffscreen = "translate-x-full"

// Notification is a status banner; it starts off-screen
func Notification(bgClass, icon, message string) Node {
	return El("div", A("class", "fixed top-4 right-4 "+bgClass+" text-white p-4 rounded-lg shadow-lg z-50 max-w-sm transform transition-all duration-300 "+ClassOffscreen),
		El("div", A("class", "flex items-center"),
			El("span", A("class", "text-xl mr-2"), Text(icon)),
			El("span", nil, Text(message)),
		),
	)
}

func labeled(label, value string) Node {
	return El("div", nil, labeledParts(label, value)...)
}

func labeledParts(label, value string) []Node {
	return []Node{El("strong", nil, Text(label+":")), Text(" " + value)}
}
