package embedded

import (
	"embed"
	"io/fs"
)

// Embed all prompt data files
//
//go:embed data/prompts/style_system_prompt.txt
var StyleSystemPromptTxt []byte

//go:embed data/prompts/lyrics_system_prompt.txt
var LyricsSystemPromptTxt []byte

//go:embed data/prompts/analysis_system_prompt.txt
var AnalysisSystemPromptTxt []byte

//go:embed data/prompts/structure_guide.txt
var StructureGuideTxt []byte

//go:embed static
var staticFiles embed.FS

// Static returns the browser assets rooted at the static directory
func Static() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
