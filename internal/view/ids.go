package view

// Element ids and classes shared by the page, app.js and the headless client
const (
	// Main page
	IDAudioFile       = "audioFile"
	IDUploadButton    = "uploadAudio"
	IDOpenStyleModal  = "openStyleModal"
	IDOpenLyricsModal = "openLyricsModal"
	IDMusicPrompt     = "musicPrompt"
	IDGeneratedLyrics = "generatedLyrics"
	IDCopyPrompt      = "copyPrompt"
	IDCopyLyrics      = "copyLyrics"

	// Style modal
	IDStyleModal             = "styleModal"
	IDGenreSelect            = "genreSelect"
	IDMoodSelect             = "moodSelect"
	IDTempoSelect            = "tempoSelect"
	IDCustomKeywords         = "customKeywords"
	IDInfluences             = "influences"
	IDOriginalInfluence      = "originalInfluence"
	IDOriginalInfluenceValue = "originalInfluenceValue"
	IDCreativity             = "creativity"
	IDCreativityValue        = "creativityValue"
	IDPresetName             = "presetName"
	IDSavePreset             = "savePreset"
	IDPresetSelect           = "presetSelect"
	IDGeneratePrompt         = "generatePrompt"

	// Lyrics modal
	IDLyricsModal              = "lyricsModal"
	IDLyricsTheme              = "lyricsTheme"
	IDLyricsMood               = "lyricsMood"
	IDLyricsStructure          = "lyricsStructure"
	IDLyricsLanguage           = "lyricsLanguage"
	IDLyricsKeywords           = "lyricsKeywords"
	IDLyricsMessage            = "lyricsMessage"
	IDVocalStyle               = "vocalStyle"
	IDPersonaName              = "personaName"
	IDSavePersona              = "savePersona"
	IDPersonaSelect            = "personaSelect"
	IDAnalysisReference        = "analysisReference"
	IDAnalysisReferenceContent = "analysisReferenceContent"
	IDUseAnalysisReference     = "useAnalysisReference"
	IDGenerateLyrics           = "generateLyrics"

	ClassInstrument  = "instrument-checkbox"
	ClassVocalEffect = "vocal-effect"
	ClassModalClose  = "modal-close"
	ClassHidden      = "hidden"

	// AttrCloses names the modal a close button hides
	AttrCloses = "data-closes"
)
