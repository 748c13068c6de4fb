package client

import (
	"encoding/json"
	"fmt"

	"github.com/Conceptual-Machines/music-creator/internal/logger"
	"github.com/Conceptual-Machines/music-creator/internal/store"
)

// Storage keys
const (
	KeyPersonas     = "musicPersonas"
	KeyStylePresets = "stylePresets"
	KeyLastPrompt   = "lastMusicPrompt"
	KeyLastLyrics   = "lastGeneratedLyrics"
)

// Persistence reads and writes JSON blobs in a key/value store
type Persistence struct {
	store store.Store
}

func NewPersistence(s store.Store) *Persistence {
	return &Persistence{store: s}
}

// LoadList decodes the list under key. Absent, unreadable or unparsable
// content yields an empty list.
func LoadList[T any](p *Persistence, key string) []T {
	list := []T{}
	raw, ok, err := p.store.Get(key)
	if err != nil {
		logger.Warn("Failed to read stored list", logger.Fields{"key": key, "error": err.Error()})
		return list
	}
	if !ok || raw == "" {
		return list
	}
	var decoded []T
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		logger.Warn("Ignoring unparsable stored list", logger.Fields{"key": key, "error": err.Error()})
		return list
	}
	if decoded == nil {
		return list
	}
	return decoded
}

// SaveList stores the whole list under key
func SaveList[T any](p *Persistence, key string, list []T) error {
	if list == nil {
		list = []T{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return p.store.Set(key, string(data))
}

// LoadString returns the string under key; ok is false when absent
func (p *Persistence) LoadString(key string) (string, bool) {
	v, ok, err := p.store.Get(key)
	if err != nil {
		logger.Warn("Failed to read stored value", logger.Fields{"key": key, "error": err.Error()})
		return "", false
	}
	return v, ok
}

func (p *Persistence) SaveString(key, value string) error {
	return p.store.Set(key, value)
}
