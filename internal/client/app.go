// Package client is a headless rendition of the browser controller. It drives
// the same page structure as the served script against an in-memory document,
// so the UI behavior can be exercised from Go and from the CLI.
package client

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Conceptual-Machines/music-creator/internal/logger"
	"github.com/Conceptual-Machines/music-creator/internal/models"
	"github.com/Conceptual-Machines/music-creator/internal/store"
	"github.com/Conceptual-Machines/music-creator/internal/view"
)

var (
	// ErrMissingInput is returned when a required value is empty; nothing is sent or written
	ErrMissingInput = errors.New("missing input")
	// ErrRejected wraps a failure reported by the server
	ErrRejected = errors.New("request rejected")
	// ErrNotFound is returned for an out-of-range preset or persona index
	ErrNotFound = errors.New("no such entry")
	// ErrNoClipboard is returned when copying without a clipboard
	ErrNoClipboard = errors.New("clipboard unavailable")
)

// User-facing messages
const (
	msgAnalyzing       = "오디오 분석 중..."
	msgAnalyzed        = "오디오 분석이 완료되었습니다!"
	msgAnalyzeFailed   = "분석 중 오류가 발생했습니다."
	msgAnalyzeError    = "오디오 분석 중 오류가 발생했습니다."
	msgPromptLoading   = "프롬프트 생성 중..."
	msgPromptDone      = "프롬프트가 생성되었습니다!"
	msgPromptFailed    = "프롬프트 생성 중 오류가 발생했습니다."
	msgFollowOriginal  = `💡 원곡 업로드 시 "원곡을 따르라" 지시어를 반드시 포함하세요!`
	msgLyricsLoading   = "가사 생성 중..."
	msgLyricsDone      = "가사가 생성되었습니다!"
	msgLyricsFailed    = "가사 생성 중 오류가 발생했습니다."
	msgPresetNameEmpty = "프리셋 이름을 입력하세요."
	msgPresetSaved     = `프리셋 "%s"이 저장되었습니다!`
	msgPresetLoaded    = `프리셋 "%s"을 불러왔습니다!`
	msgPersonaEmpty    = "페르소나 이름을 입력하세요."
	msgPersonaSaved    = `페르소나 "%s"이 저장되었습니다!`
	msgPersonaApplied  = `페르소나 "%s"을 불러왔습니다!`
	msgSaveFailed      = "저장 중 오류가 발생했습니다."
	msgNothingToCopy   = "복사할 내용이 없습니다."
	msgCopyFailed      = "복사 중 오류가 발생했습니다."

	MsgPromptCopied = "프롬프트가 복사되었습니다!"
	MsgLyricsCopied = "가사가 복사되었습니다!"
)

// Operation names a request the controller makes
type Operation string

const (
	OpAnalyze Operation = "analyze"
	OpPrompt  Operation = "prompt"
	OpLyrics  Operation = "lyrics"
)

// State is the lifecycle of an operation: idle, loading, then success or
// error until its notification is gone, then idle again.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateError   State = "error"
)

type opState struct {
	state State
	seq   int
}

// Clipboard receives copied text
type Clipboard interface {
	WriteText(text string) error
}

// ClipboardFunc adapts a function to Clipboard
type ClipboardFunc func(text string) error

func (f ClipboardFunc) WriteText(text string) error { return f(text) }

// Options configure an App. Only Backend is required.
type Options struct {
	Backend   Backend
	Store     store.Store
	Clock     Clock
	Clipboard Clipboard
	// Notify observes every notification shown
	Notify func(kind Kind, message string)
	Now    func() time.Time
}

// App owns the session state and the page document
type App struct {
	doc       *Document
	modals    *Modals
	notifier  *Notifier
	persist   *Persistence
	backend   Backend
	clipboard Clipboard
	now       func() time.Time

	mu       sync.Mutex
	audio    *File
	analysis *models.AnalysisResult
	prompt   string
	lyrics   string
	presets  []models.StylePreset
	personas []models.VocalPersona
	ops      map[Operation]*opState
}

// New mounts the page and overlays, wires the controls and restores saved data
func New(opts Options) *App {
	if opts.Store == nil {
		opts.Store = store.NewMemory()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	doc := NewDocument()
	doc.Mount(view.Shell())

	a := &App{
		doc:       doc,
		modals:    NewModals(doc),
		notifier:  NewNotifier(doc, opts.Clock, opts.Notify),
		persist:   NewPersistence(opts.Store),
		backend:   opts.Backend,
		clipboard: opts.Clipboard,
		now:       opts.Now,
		ops:       make(map[Operation]*opState),
	}
	for _, op := range []Operation{OpAnalyze, OpPrompt, OpLyrics} {
		a.ops[op] = &opState{state: StateIdle}
	}

	a.presets = LoadList[models.StylePreset](a.persist, KeyStylePresets)
	a.personas = LoadList[models.VocalPersona](a.persist, KeyPersonas)

	a.modals.Mount()
	a.modals.OnOpen(view.IDStyleModal, a.refreshPresetSelect)
	a.modals.OnOpen(view.IDLyricsModal, func() {
		a.refreshPersonaSelect()
		a.showAnalysisReference()
	})

	a.wire()
	a.LoadSavedData()
	return a
}

func (a *App) bind(id, event string, fn func(el *Element)) {
	el, ok := a.doc.Lookup(id)
	if !ok {
		return
	}
	el.On(event, func() { fn(el) })
}

func (a *App) wire() {
	ctx := context.Background()

	a.bind(view.IDAudioFile, EventChange, func(el *Element) { _ = a.HandleAudioUpload(ctx, el.File()) })
	a.bind(view.IDOpenStyleModal, EventClick, func(*Element) { a.OpenStyleModal() })
	a.bind(view.IDOpenLyricsModal, EventClick, func(*Element) { a.OpenLyricsModal() })
	a.bind(view.IDCopyPrompt, EventClick, func(*Element) { _ = a.CopyToClipboard(view.IDMusicPrompt, MsgPromptCopied) })
	a.bind(view.IDCopyLyrics, EventClick, func(*Element) { _ = a.CopyToClipboard(view.IDGeneratedLyrics, MsgLyricsCopied) })
	a.bind(view.IDGeneratePrompt, EventClick, func(*Element) { _ = a.GeneratePrompt(ctx) })
	a.bind(view.IDGenerateLyrics, EventClick, func(*Element) { _ = a.GenerateLyrics(ctx) })
	a.bind(view.IDSavePreset, EventClick, func(*Element) { _ = a.SaveStylePreset() })
	a.bind(view.IDSavePersona, EventClick, func(*Element) { _ = a.SavePersona() })
	a.bind(view.IDPresetSelect, EventChange, func(el *Element) {
		if i, err := strconv.Atoi(el.Value()); err == nil {
			_ = a.LoadPreset(i)
		}
	})
	a.bind(view.IDPersonaSelect, EventChange, func(el *Element) {
		if i, err := strconv.Atoi(el.Value()); err == nil {
			_ = a.ApplyPersona(i)
		}
	})
}

// Document exposes the page for inspection and event dispatch
func (a *App) Document() *Document { return a.doc }

// Modals exposes the overlay manager
func (a *App) Modals() *Modals { return a.modals }

// Notifier exposes the notification presenter
func (a *App) Notifier() *Notifier { return a.notifier }

func (a *App) Prompt() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.prompt
}

func (a *App) Lyrics() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lyrics
}

func (a *App) Analysis() *models.AnalysisResult {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.analysis
}

func (a *App) Presets() []models.StylePreset {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.presets)
}

func (a *App) Personas() []models.VocalPersona {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.personas)
}

// State returns where an operation is in its lifecycle
func (a *App) State(op Operation) State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ops[op].state
}

func (a *App) begin(op Operation, message string) int {
	a.mu.Lock()
	s := a.ops[op]
	s.seq++
	s.state = StateLoading
	seq := s.seq
	a.mu.Unlock()

	a.notifier.Show(message, KindLoading, 0)
	return seq
}

// settle records the outcome and returns to idle once its banner is gone.
// A newer call of the same operation takes over the state.
func (a *App) settle(op Operation, seq int, state State, kind Kind, message string) {
	a.mu.Lock()
	if s := a.ops[op]; s.seq == seq {
		s.state = state
	}
	a.mu.Unlock()

	a.notifier.show(message, kind, 0, func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		if s := a.ops[op]; s.seq == seq {
			s.state = StateIdle
		}
	})
}

func (a *App) setField(id, value string) {
	if el, ok := a.doc.Lookup(id); ok {
		el.SetValue(value)
	}
}

func (a *App) saveString(key, value string) {
	if err := a.persist.SaveString(key, value); err != nil {
		logger.Warn("Failed to persist value", logger.Fields{"key": key, "error": err.Error()})
	}
}

func orMessage(message, fallback string) string {
	if message == "" {
		return fallback
	}
	return message
}

// HandleAudioUpload sends a picked file for analysis. A nil file is ignored.
func (a *App) HandleAudioUpload(ctx context.Context, file *File) error {
	if file == nil {
		return nil
	}
	a.mu.Lock()
	a.audio = file
	a.mu.Unlock()

	seq := a.begin(OpAnalyze, msgAnalyzing)

	resp, err := a.backend.AnalyzeAudio(ctx, file)
	if err != nil {
		logger.Error("Audio analysis error", err, logger.Fields{"filename": file.Name})
		a.settle(OpAnalyze, seq, StateError, KindError, msgAnalyzeError)
		return err
	}
	if !resp.Success || resp.Analysis == nil {
		message := orMessage(resp.Error, msgAnalyzeFailed)
		a.settle(OpAnalyze, seq, StateError, KindError, message)
		return fmt.Errorf("%w: %s", ErrRejected, message)
	}

	a.mu.Lock()
	a.analysis = resp.Analysis
	a.mu.Unlock()

	a.notifier.Panel(view.AnalysisSummary(resp.Analysis), AnalysisShowDuration)
	a.settle(OpAnalyze, seq, StateSuccess, KindSuccess, msgAnalyzed)
	return nil
}

// GeneratePrompt submits the style overlay
func (a *App) GeneratePrompt(ctx context.Context) error {
	a.mu.Lock()
	hasAudio := a.audio != nil
	a.mu.Unlock()

	req := CollectStyle(a.doc, hasAudio)
	seq := a.begin(OpPrompt, msgPromptLoading)

	resp, err := a.backend.GeneratePrompt(ctx, req)
	if err != nil {
		logger.Error("Prompt generation error", err, nil)
		a.settle(OpPrompt, seq, StateError, KindError, msgPromptFailed)
		return err
	}
	if !resp.Success {
		message := orMessage(resp.Error, msgPromptFailed)
		a.settle(OpPrompt, seq, StateError, KindError, message)
		return fmt.Errorf("%w: %s", ErrRejected, message)
	}

	a.mu.Lock()
	a.prompt = resp.Prompt
	a.mu.Unlock()

	a.setField(view.IDMusicPrompt, resp.Prompt)
	a.saveString(KeyLastPrompt, resp.Prompt)
	a.modals.Close(view.IDStyleModal)
	a.settle(OpPrompt, seq, StateSuccess, KindSuccess, msgPromptDone)

	if hasAudio {
		a.notifier.Show(msgFollowOriginal, KindInfo, InfoDuration)
	}
	return nil
}

// GenerateLyrics submits the lyrics overlay
func (a *App) GenerateLyrics(ctx context.Context) error {
	req := CollectLyrics(a.doc, a.Analysis())
	seq := a.begin(OpLyrics, msgLyricsLoading)

	resp, err := a.backend.GenerateLyrics(ctx, req)
	if err != nil {
		logger.Error("Lyrics generation error", err, nil)
		a.settle(OpLyrics, seq, StateError, KindError, msgLyricsFailed)
		return err
	}
	if !resp.Success {
		message := orMessage(resp.Error, msgLyricsFailed)
		a.settle(OpLyrics, seq, StateError, KindError, message)
		return fmt.Errorf("%w: %s", ErrRejected, message)
	}

	a.mu.Lock()
	a.lyrics = resp.Lyrics
	a.mu.Unlock()

	a.setField(view.IDGeneratedLyrics, resp.Lyrics)
	a.saveString(KeyLastLyrics, resp.Lyrics)
	a.modals.Close(view.IDLyricsModal)
	a.settle(OpLyrics, seq, StateSuccess, KindSuccess, msgLyricsDone)
	return nil
}

// OpenStyleModal shows the style overlay with a fresh preset list
func (a *App) OpenStyleModal() {
	a.modals.Open(view.IDStyleModal)
}

// OpenLyricsModal shows the lyrics overlay, with the analysis block when a
// result is held
func (a *App) OpenLyricsModal() {
	a.modals.Open(view.IDLyricsModal)
}

func (a *App) showAnalysisReference() {
	analysis := a.Analysis()
	if analysis == nil {
		return
	}
	ref, ok := a.doc.Lookup(view.IDAnalysisReference)
	if !ok {
		return
	}
	content, ok := a.doc.Lookup(view.IDAnalysisReferenceContent)
	if !ok {
		return
	}
	content.ReplaceChildren(view.AnalysisReference(analysis))
	ref.RemoveClass(view.ClassHidden)
}

func refreshSelect(doc *Document, id, placeholder string, names []string) {
	sel, ok := doc.Lookup(id)
	if !ok {
		return
	}
	options := []view.Node{view.El("option", view.A("value", ""), view.Text(placeholder))}
	for i, name := range names {
		options = append(options, view.El("option", view.A("value", strconv.Itoa(i)), view.Text(name)))
	}
	sel.ReplaceChildren(options...)
}

func (a *App) refreshPresetSelect() {
	a.mu.Lock()
	names := make([]string, len(a.presets))
	for i, p := range a.presets {
		names[i] = p.Name
	}
	a.mu.Unlock()
	refreshSelect(a.doc, view.IDPresetSelect, view.PresetPlaceholder, names)
}

func (a *App) refreshPersonaSelect() {
	a.mu.Lock()
	names := make([]string, len(a.personas))
	for i, p := range a.personas {
		names[i] = p.Name
	}
	a.mu.Unlock()
	refreshSelect(a.doc, view.IDPersonaSelect, view.PersonaPlaceholder, names)
}

func (a *App) nameInput(id string) (*Element, string) {
	el, ok := a.doc.Lookup(id)
	if !ok {
		return nil, ""
	}
	return el, strings.TrimSpace(el.Value())
}

// SaveStylePreset appends the current style settings under the typed name.
// An empty name is rejected before anything is written.
func (a *App) SaveStylePreset() error {
	input, name := a.nameInput(view.IDPresetName)
	if name == "" {
		a.notifier.Show(msgPresetNameEmpty, KindError, 0)
		return ErrMissingInput
	}

	a.mu.Lock()
	preset := models.StylePreset{
		Name:    name,
		Data:    CollectStyle(a.doc, a.audio != nil),
		Created: a.now().UTC(),
	}
	presets := append(slices.Clone(a.presets), preset)
	if err := SaveList(a.persist, KeyStylePresets, presets); err != nil {
		a.mu.Unlock()
		logger.Error("Failed to save style preset", err, logger.Fields{"name": name})
		a.notifier.Show(msgSaveFailed, KindError, 0)
		return err
	}
	a.presets = presets
	a.mu.Unlock()

	a.refreshPresetSelect()
	a.notifier.Show(fmt.Sprintf(msgPresetSaved, name), KindSuccess, 0)
	input.SetValue("")
	return nil
}

// LoadPreset puts preset i back into the style overlay. Zero slider values
// leave the sliders untouched.
func (a *App) LoadPreset(i int) error {
	a.mu.Lock()
	if i < 0 || i >= len(a.presets) {
		a.mu.Unlock()
		return ErrNotFound
	}
	preset := a.presets[i]
	a.mu.Unlock()

	data := preset.Data
	a.setField(view.IDGenreSelect, data.Genre)
	a.setField(view.IDMoodSelect, data.Mood)
	a.setField(view.IDTempoSelect, data.Tempo)
	a.setField(view.IDCustomKeywords, data.CustomKeywords)
	a.setField(view.IDInfluences, data.Influences)
	a.restoreSlider(view.IDOriginalInfluence, view.IDOriginalInfluenceValue, data.OriginalInfluence)
	a.restoreSlider(view.IDCreativity, view.IDCreativityValue, data.Creativity)

	members := splitInstruments(data.Instruments)
	for _, cb := range a.doc.QueryClass(view.ClassInstrument) {
		v, _ := cb.Attr("value")
		cb.SetChecked(members[v])
	}

	a.notifier.Show(fmt.Sprintf(msgPresetLoaded, preset.Name), KindSuccess, 0)
	return nil
}

func (a *App) restoreSlider(sliderID, labelID string, p models.Percent) {
	if p == 0 {
		return
	}
	a.setField(sliderID, strconv.Itoa(int(p)))
	if label, ok := a.doc.Lookup(labelID); ok {
		label.SetText(p.String())
	}
}

// SavePersona stores the current vocal style and effects under the typed name
func (a *App) SavePersona() error {
	input, name := a.nameInput(view.IDPersonaName)
	if name == "" {
		a.notifier.Show(msgPersonaEmpty, KindError, 0)
		return ErrMissingInput
	}

	lyrics := CollectLyrics(a.doc, nil)
	persona := models.VocalPersona{
		Name:         name,
		VocalStyle:   lyrics.VocalStyle,
		VocalEffects: lyrics.VocalEffects,
		Created:      a.now().UTC(),
	}

	a.mu.Lock()
	personas := append(slices.Clone(a.personas), persona)
	if err := SaveList(a.persist, KeyPersonas, personas); err != nil {
		a.mu.Unlock()
		logger.Error("Failed to save persona", err, logger.Fields{"name": name})
		a.notifier.Show(msgSaveFailed, KindError, 0)
		return err
	}
	a.personas = personas
	a.mu.Unlock()

	a.refreshPersonaSelect()
	a.notifier.Show(fmt.Sprintf(msgPersonaSaved, name), KindSuccess, 0)
	input.SetValue("")
	return nil
}

// ApplyPersona puts persona i back into the lyrics overlay
func (a *App) ApplyPersona(i int) error {
	a.mu.Lock()
	if i < 0 || i >= len(a.personas) {
		a.mu.Unlock()
		return ErrNotFound
	}
	persona := a.personas[i]
	a.mu.Unlock()

	a.setField(view.IDVocalStyle, persona.VocalStyle)
	effects := make(map[string]bool, len(persona.VocalEffects))
	for _, e := range persona.VocalEffects {
		effects[e] = true
	}
	for _, cb := range a.doc.QueryClass(view.ClassVocalEffect) {
		v, _ := cb.Attr("value")
		cb.SetChecked(effects[v])
	}

	a.notifier.Show(fmt.Sprintf(msgPersonaApplied, persona.Name), KindSuccess, 0)
	return nil
}

// CopyToClipboard copies the value of a field. Blank content is rejected.
func (a *App) CopyToClipboard(id, successMessage string) error {
	el, ok := a.doc.Lookup(id)
	if !ok {
		return nil
	}
	text := el.Value()
	if text == "" {
		text = el.Text()
	}
	if strings.TrimSpace(text) == "" {
		a.notifier.Show(msgNothingToCopy, KindError, 0)
		return ErrMissingInput
	}

	err := ErrNoClipboard
	if a.clipboard != nil {
		err = a.clipboard.WriteText(text)
	}
	if err != nil {
		logger.Error("Clipboard error", err, nil)
		a.notifier.Show(msgCopyFailed, KindError, 0)
		return err
	}

	a.notifier.Show(successMessage, KindSuccess, 0)
	return nil
}

// LoadSavedData restores the last prompt and lyrics into their fields
func (a *App) LoadSavedData() {
	if v, ok := a.persist.LoadString(KeyLastPrompt); ok && v != "" {
		a.setField(view.IDMusicPrompt, v)
		a.mu.Lock()
		a.prompt = v
		a.mu.Unlock()
	}
	if v, ok := a.persist.LoadString(KeyLastLyrics); ok && v != "" {
		a.setField(view.IDGeneratedLyrics, v)
		a.mu.Lock()
		a.lyrics = v
		a.mu.Unlock()
	}
}

// Flush writes the session artifacts again, as on page unload
func (a *App) Flush() error {
	a.mu.Lock()
	prompt, lyrics := a.prompt, a.lyrics
	a.mu.Unlock()

	var errs []error
	if prompt != "" {
		errs = append(errs, a.persist.SaveString(KeyLastPrompt, prompt))
	}
	if lyrics != "" {
		errs = append(errs, a.persist.SaveString(KeyLastLyrics, lyrics))
	}
	return errors.Join(errs...)
}
