package view

import (
	"strconv"

	"github.com/Conceptual-Machines/music-creator/internal/catalog"
)

const (
	selectClass   = "w-full p-3 border border-gray-300 rounded-lg focus:ring-2 focus:border-transparent"
	inputClass    = "w-full p-3 border border-gray-300 rounded-lg focus:ring-2 focus:border-transparent"
	fieldLabel    = "block text-sm font-medium text-gray-700 mb-3"
	hintClass     = "text-sm text-gray-500 mt-1"
	rangeClass    = "w-full h-2 bg-gray-200 rounded-lg appearance-none cursor-pointer"
	overlayClass  = "fixed inset-0 bg-black bg-opacity-50 z-50 flex items-center justify-center p-4 hidden"
	cancelClass   = "px-6 py-4 bg-gray-300 text-gray-700 rounded-lg font-semibold hover:bg-gray-400 transition-colors modal-close"
	closeXClass   = "text-gray-500 hover:text-gray-700 text-2xl modal-close"
	checkboxLabel = "flex items-center"
)

// SelectBox renders a select with an optional empty placeholder option
func SelectBox(id, placeholder string, options []catalog.Option) Node {
	children := make([]Node, 0, len(options)+1)
	if placeholder != "" {
		children = append(children, El("option", A("value", ""), Text(placeholder)))
	}
	for _, o := range options {
		children = append(children, El("option", A("value", o.Value), Text(o.Label)))
	}
	return El("select", A("id", id, "class", selectClass), children...)
}

// CheckboxGroup renders one checkbox per option, all sharing class
func CheckboxGroup(class string, options []catalog.Option) Node {
	children := make([]Node, 0, len(options))
	for _, o := range options {
		children = append(children, El("label", A("class", checkboxLabel),
			El("input", A("type", "checkbox", "value", o.Value, "class", "mr-2 "+class)),
			Text(" "+o.Label),
		))
	}
	return El("div", A("class", "grid grid-cols-2 gap-2"), children...)
}

// Slider renders a 0-100 range input with its mirrored percentage label
func Slider(id, valueID, title, low, high string, value int) Node {
	v := strconv.Itoa(value)
	return El("div", nil,
		El("label", A("class", "block text-sm text-gray-600 mb-2"), Text(title)),
		El("input", A("type", "range", "id", id, "min", "0", "max", "100", "value", v, "class", rangeClass)),
		El("div", A("class", "flex justify-between text-xs text-gray-500 mt-1"),
			El("span", nil, Text(low)),
			El("span", A("id", valueID), Text(v+"%")),
			El("span", nil, Text(high)),
		),
	)
}

func field(title string, control Node, hint string) Node {
	children := []Node{El("label", A("class", fieldLabel), Text(title)), control}
	if hint != "" {
		children = append(children, El("p", A("class", hintClass), Text(hint)))
	}
	return El("div", A("class", "mt-6"), children...)
}

func textInput(id, placeholder string) Node {
	return El("input", A("type", "text", "id", id, "placeholder", placeholder, "class", inputClass))
}

func modalFrame(id, title string, body ...Node) Node {
	return El("div", A("id", id, "class", overlayClass),
		El("div", A("class", "bg-white rounded-2xl max-w-4xl w-full max-h-[90vh] overflow-y-auto"),
			El("div", A("class", "sticky top-0 bg-white border-b border-gray-200 px-6 py-4 flex items-center justify-between"),
				El("h2", A("class", "text-2xl font-bold text-gray-800"), Text(title)),
				El("button", A("type", "button", "class", closeXClass, AttrCloses, id), Text("×")),
			),
			El("div", A("class", "p-6"), body...),
		),
	)
}

func actions(primaryID, primaryText, modalID string) Node {
	return El("div", A("class", "mt-8 flex gap-4"),
		El("button", A("type", "button", "id", primaryID,
			"class", "flex-1 text-white py-4 px-6 rounded-lg font-semibold transition-all duration-300"),
			Text(primaryText)),
		El("button", A("type", "button", "class", cancelClass, AttrCloses, modalID), Text("취소")),
	)
}

// StyleModal is the style-directing overlay
func StyleModal() Node {
	return modalFrame(IDStyleModal, "🎨 음악 스타일 디렉팅",
		El("div", A("class", "grid md:grid-cols-2 gap-8"),
			field("🎵 장르 선택", SelectBox(IDGenreSelect, "장르 선택...", catalog.Genres), ""),
			field("🎸 주요 악기", CheckboxGroup(ClassInstrument, catalog.Instruments), ""),
			field("🌟 분위기/무드", SelectBox(IDMoodSelect, "분위기 선택...", catalog.Moods), ""),
			field("⚡ 템포", SelectBox(IDTempoSelect, "템포 선택...", catalog.Tempos), ""),
		),
		field("✨ 추가 키워드 (선택사항)",
			textInput(IDCustomKeywords, "예: vintage, dreamy, ethereal, powerful..."),
			"쉼표로 구분하여 여러 키워드를 입력할 수 있습니다."),
		field("🎤 참고 스타일 (선택사항)",
			textInput(IDInfluences, "예: Beatles-style, Taylor Swift-inspired..."),
			"특정 아티스트나 밴드의 스타일을 참고할 수 있습니다. (직접적인 아티스트명 사용은 권장하지 않습니다)"),
		El("div", A("class", "mt-6 p-4 bg-gray-50 rounded-lg"),
			El("h3", A("class", "font-medium text-gray-800 mb-3"), Text("🔧 고급 설정")),
			El("div", A("class", "grid md:grid-cols-2 gap-4"),
				Slider(IDOriginalInfluence, IDOriginalInfluenceValue, "원곡 따라하기 강도", "자유롭게", "정확하게", catalog.DefaultOriginalInfluence),
				Slider(IDCreativity, IDCreativityValue, "창의성 수준", "보수적", "혁신적", catalog.DefaultCreativity),
			),
		),
		El("div", A("class", "mt-6 flex gap-4"),
			El("input", A("type", "text", "id", IDPresetName, "placeholder", "프리셋 이름...", "class", "flex-1 p-3 border border-gray-300 rounded-lg")),
			El("button", A("type", "button", "id", IDSavePreset, "class", "px-6 py-3 bg-green-600 text-white rounded-lg hover:bg-green-700 transition-colors"), Text("💾 저장")),
			El("select", A("id", IDPresetSelect, "class", "p-3 border border-gray-300 rounded-lg"),
				El("option", A("value", ""), Text(PresetPlaceholder))),
		),
		actions(IDGeneratePrompt, "🚀 프롬프트 생성하기", IDStyleModal),
	)
}

// LyricsModal is the lyrics-writing overlay
func LyricsModal() Node {
	return modalFrame(IDLyricsModal, "✍️ 가사 작성",
		El("div", A("class", "grid md:grid-cols-2 gap-8"),
			field("🎯 노래 주제", textInput(IDLyricsTheme, "예: 사랑, 이별, 희망, 우정, 꿈..."), ""),
			field("💫 감정/무드", SelectBox(IDLyricsMood, "감정 선택...", catalog.LyricsMoods), ""),
			field("🏗️ 곡 구조", SelectBox(IDLyricsStructure, "", catalog.Structures), ""),
			field("🌐 언어", SelectBox(IDLyricsLanguage, "", catalog.Languages), ""),
		),
		field("🔑 핵심 키워드 (선택사항)",
			textInput(IDLyricsKeywords, "예: 별, 바다, 꿈, 시간, 기억..."),
			"가사에 포함하고 싶은 단어들을 쉼표로 구분하여 입력하세요."),
		field("💬 전달하고 싶은 메시지",
			El("textarea", A("id", IDLyricsMessage, "rows", "3",
				"placeholder", "이 노래를 통해 전달하고 싶은 메시지나 이야기를 간단히 적어주세요...",
				"class", inputClass+" resize-none")),
			""),
		El("div", A("class", "mt-6 p-4 bg-gray-50 rounded-lg"),
			El("h3", A("class", "font-medium text-gray-800 mb-3"), Text("🎤 보컬 디렉팅")),
			El("div", A("class", "grid md:grid-cols-2 gap-4"),
				El("div", nil,
					El("label", A("class", "block text-sm text-gray-600 mb-2"), Text("보컬 스타일")),
					SelectBox(IDVocalStyle, "선택...", catalog.VocalStyles),
				),
				El("div", nil,
					El("label", A("class", "block text-sm text-gray-600 mb-2"), Text("특수 효과")),
					CheckboxGroup(ClassVocalEffect, catalog.VocalEffects),
				),
			),
			El("div", A("class", "mt-4 flex gap-4"),
				El("input", A("type", "text", "id", IDPersonaName, "placeholder", "페르소나 이름...", "class", "flex-1 p-2 border border-gray-300 rounded")),
				El("button", A("type", "button", "id", IDSavePersona, "class", "px-4 py-2 bg-green-600 text-white rounded"), Text("💾 페르소나 저장")),
				El("select", A("id", IDPersonaSelect, "class", "p-2 border border-gray-300 rounded"),
					El("option", A("value", ""), Text(PersonaPlaceholder))),
			),
		),
		El("div", A("id", IDAnalysisReference, "class", "mt-6 p-4 bg-blue-50 rounded-lg hidden"),
			El("h3", A("class", "font-medium text-blue-800 mb-3"), Text("📊 분석된 곡 정보 참조")),
			El("div", A("id", IDAnalysisReferenceContent)),
			El("label", A("class", "flex items-center mt-3"),
				El("input", A("type", "checkbox", "id", IDUseAnalysisReference, "class", "mr-2")),
				El("span", A("class", "text-sm text-blue-700"), Text("분석된 곡의 스타일을 가사 생성에 반영")),
			),
		),
		actions(IDGenerateLyrics, "✨ 가사 생성하기", IDLyricsModal),
	)
}

// Placeholder entries of the preset and persona selects
const (
	PresetPlaceholder  = "저장된 프리셋..."
	PersonaPlaceholder = "저장된 페르소나..."
)
