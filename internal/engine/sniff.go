package engine

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const octetStream = "application/octet-stream"

// DetectMIME sniffs the content type of data. The declared type from the
// upload is used only when sniffing finds nothing more specific.
func DetectMIME(data []byte, declared string) string {
	detected := mimetype.Detect(data)
	if detected.Is(octetStream) && declared != "" {
		return declared
	}
	return detected.String()
}

// IsAudio reports whether a MIME type names audio content
func IsAudio(mime string) bool {
	return strings.HasPrefix(mime, "audio/") || mime == "application/ogg"
}
