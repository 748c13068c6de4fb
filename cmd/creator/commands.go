package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Conceptual-Machines/music-creator/internal/client"
	"github.com/Conceptual-Machines/music-creator/internal/store"
	"github.com/Conceptual-Machines/music-creator/internal/view"
	"github.com/spf13/cobra"
)

// session is one command run: an app bound to the server and the store
type session struct {
	app   *client.App
	store store.Store
}

func (s *session) close() error {
	err := s.app.Flush()
	if cerr := s.store.Close(); err == nil {
		err = cerr
	}
	return err
}

type rootOptions struct {
	server    string
	storePath string
}

func (o *rootOptions) open(cmd *cobra.Command) (*session, error) {
	st, err := store.OpenSQLite(o.storePath)
	if err != nil {
		return nil, err
	}
	stderr := cmd.ErrOrStderr()
	app := client.New(client.Options{
		Backend: client.NewAPIClient(o.server, nil),
		Store:   st,
		Notify: func(kind client.Kind, message string) {
			fmt.Fprintf(stderr, "[%s] %s\n", kind, message)
		},
	})
	return &session{app: app, store: st}, nil
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "creator",
		Short: "Analyze songs and generate Suno prompts and lyrics",
		Long: `creator talks to a running music creator server.

Presets, personas and the last generated prompt and lyrics are kept in a
local store, shared between runs.

Examples:
  creator analyze demo.mp3
  creator prompt --genre Rock --mood Dark --instruments guitar,drums
  creator lyrics --theme 사랑 --mood 그리운 --audio demo.mp3 --use-analysis
  creator preset save "night drive" --genre Electronic --tempo Fast`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.server, "server", envOr("CREATOR_SERVER", defaultServer), "Server base URL")
	root.PersistentFlags().StringVar(&opts.storePath, "store", envOr("CREATOR_STORE", defaultStorePath()), "Path of the local SQLite store")

	root.AddCommand(
		newAnalyzeCmd(opts),
		newPromptCmd(opts),
		newLyricsCmd(opts),
		newPresetCmd(opts),
		newLastCmd(opts),
	)
	return root
}

func readAudio(path string) (*client.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio: %w", err)
	}
	return &client.File{Name: filepath.Base(path), Data: data}, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func newAnalyzeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <audio>",
		Short: "Analyze an audio file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := readAudio(args[0])
			if err != nil {
				return err
			}
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			if err := s.app.HandleAudioUpload(cmd.Context(), file); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), s.app.Analysis())
		},
	}
}

// styleFlags fill the style overlay from the command line
type styleFlags struct {
	genre             string
	mood              string
	tempo             string
	keywords          string
	influences        string
	instruments       []string
	originalInfluence int
	creativity        int
}

func (f *styleFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.genre, "genre", "", "Genre (Pop, Rock, Jazz, ...)")
	cmd.Flags().StringVar(&f.mood, "mood", "", "Mood (Upbeat, Dark, ...)")
	cmd.Flags().StringVar(&f.tempo, "tempo", "", "Tempo (Slow, Mid-tempo, Fast, Very Fast)")
	cmd.Flags().StringVar(&f.keywords, "keywords", "", "Additional keywords")
	cmd.Flags().StringVar(&f.influences, "influences", "", "Reference styles")
	cmd.Flags().StringSliceVar(&f.instruments, "instruments", nil, "Instruments (piano,guitar,drums,...)")
	cmd.Flags().IntVar(&f.originalInfluence, "original-influence", -1, "How closely to follow the original, 0-100")
	cmd.Flags().IntVar(&f.creativity, "creativity", -1, "Creativity level, 0-100")
}

func (f *styleFlags) apply(doc *client.Document) error {
	fields := []struct{ id, name, value string }{
		{view.IDGenreSelect, "genre", f.genre},
		{view.IDMoodSelect, "mood", f.mood},
		{view.IDTempoSelect, "tempo", f.tempo},
		{view.IDCustomKeywords, "keywords", f.keywords},
		{view.IDInfluences, "influences", f.influences},
	}
	for _, field := range fields {
		if err := setControl(doc, field.id, field.name, field.value); err != nil {
			return err
		}
	}
	if f.originalInfluence >= 0 {
		setSlider(doc, view.IDOriginalInfluence, f.originalInfluence)
	}
	if f.creativity >= 0 {
		setSlider(doc, view.IDCreativity, f.creativity)
	}
	if f.instruments != nil {
		return checkAll(doc, view.ClassInstrument, "instrument", f.instruments)
	}
	return nil
}

func setControl(doc *client.Document, id, name, value string) error {
	if value == "" {
		return nil
	}
	el, ok := doc.Lookup(id)
	if !ok {
		return nil
	}
	el.SetValue(value)
	if el.Value() == value {
		return nil
	}
	var choices []string
	for _, o := range el.Options() {
		if o != "" {
			choices = append(choices, o)
		}
	}
	return fmt.Errorf("unknown %s %q (choose from %s)", name, value, strings.Join(choices, ", "))
}

func setSlider(doc *client.Document, id string, v int) {
	if el, ok := doc.Lookup(id); ok {
		el.SetValue(strconv.Itoa(v))
		el.Dispatch(client.EventInput)
	}
}

func checkAll(doc *client.Document, class, name string, values []string) error {
	want := make(map[string]bool, len(values))
	for _, v := range values {
		want[strings.TrimSpace(v)] = true
	}
	for _, cb := range doc.QueryClass(class) {
		v, _ := cb.Attr("value")
		cb.SetChecked(want[v])
		delete(want, v)
	}
	for v := range want {
		return fmt.Errorf("unknown %s %q", name, v)
	}
	return nil
}

func newPromptCmd(opts *rootOptions) *cobra.Command {
	var (
		style styleFlags
		audio string
	)
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Generate a music style prompt",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			if audio != "" {
				file, err := readAudio(audio)
				if err != nil {
					return err
				}
				if err := s.app.HandleAudioUpload(cmd.Context(), file); err != nil {
					return err
				}
			}
			s.app.OpenStyleModal()
			if err := style.apply(s.app.Document()); err != nil {
				return err
			}
			if err := s.app.GeneratePrompt(cmd.Context()); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s.app.Prompt())
			return err
		},
	}
	style.register(cmd)
	cmd.Flags().StringVar(&audio, "audio", "", "Analyze this audio file first")
	return cmd
}

func newLyricsCmd(opts *rootOptions) *cobra.Command {
	var (
		theme, mood, structure, language string
		keywords, message, vocalStyle    string
		effects                          []string
		audio                            string
		useAnalysis                      bool
		persona                          int
	)
	cmd := &cobra.Command{
		Use:   "lyrics",
		Short: "Generate song lyrics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			if audio != "" {
				file, err := readAudio(audio)
				if err != nil {
					return err
				}
				if err := s.app.HandleAudioUpload(cmd.Context(), file); err != nil {
					return err
				}
			}
			s.app.OpenLyricsModal()
			doc := s.app.Document()

			if persona >= 0 {
				if err := s.app.ApplyPersona(persona); err != nil {
					return fmt.Errorf("persona %d: %w", persona, err)
				}
			}
			fields := []struct{ id, name, value string }{
				{view.IDLyricsTheme, "theme", theme},
				{view.IDLyricsMood, "mood", mood},
				{view.IDLyricsStructure, "structure", structure},
				{view.IDLyricsLanguage, "language", language},
				{view.IDLyricsKeywords, "keywords", keywords},
				{view.IDLyricsMessage, "message", message},
				{view.IDVocalStyle, "vocal style", vocalStyle},
			}
			for _, field := range fields {
				if err := setControl(doc, field.id, field.name, field.value); err != nil {
					return err
				}
			}
			if effects != nil {
				if err := checkAll(doc, view.ClassVocalEffect, "vocal effect", effects); err != nil {
					return err
				}
			}
			if cb, ok := doc.Lookup(view.IDUseAnalysisReference); ok {
				cb.SetChecked(useAnalysis)
			}

			if err := s.app.GenerateLyrics(cmd.Context()); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s.app.Lyrics())
			return err
		},
	}
	cmd.Flags().StringVar(&theme, "theme", "", "Song theme")
	cmd.Flags().StringVar(&mood, "mood", "", "Emotion")
	cmd.Flags().StringVar(&structure, "structure", "", "Song structure (standard, simple, extended, ballad, custom)")
	cmd.Flags().StringVar(&language, "language", "", "Language (ko, en, mix)")
	cmd.Flags().StringVar(&keywords, "keywords", "", "Key words to include")
	cmd.Flags().StringVar(&message, "message", "", "Message of the song")
	cmd.Flags().StringVar(&vocalStyle, "vocal-style", "", "Vocal style")
	cmd.Flags().StringSliceVar(&effects, "vocal-effects", nil, "Vocal effects (harmonies,reverb,whisper,falsetto)")
	cmd.Flags().StringVar(&audio, "audio", "", "Analyze this audio file first")
	cmd.Flags().BoolVar(&useAnalysis, "use-analysis", false, "Reflect the analyzed song in the lyrics")
	cmd.Flags().IntVar(&persona, "persona", -1, "Apply a saved persona by index")
	return cmd
}

func newPresetCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage style presets",
	}

	var style styleFlags
	save := &cobra.Command{
		Use:   "save <name>",
		Short: "Save style settings as a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			doc := s.app.Document()
			if err := style.apply(doc); err != nil {
				return err
			}
			if name, ok := doc.Lookup(view.IDPresetName); ok {
				name.SetValue(args[0])
			}
			return s.app.SaveStylePreset()
		},
	}
	style.register(save)

	list := &cobra.Command{
		Use:   "list",
		Short: "List saved presets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			out := cmd.OutOrStdout()
			for i, p := range s.app.Presets() {
				fmt.Fprintf(out, "%d\t%s\t%s\n", i, p.Name, p.Created.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}

	load := &cobra.Command{
		Use:   "load <index>",
		Short: "Show the style settings of a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid index %q", args[0])
			}
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			s.app.OpenStyleModal()
			if err := s.app.LoadPreset(i); err != nil {
				return fmt.Errorf("preset %d: %w", i, err)
			}
			return printJSON(cmd.OutOrStdout(), client.CollectStyle(s.app.Document(), false))
		},
	}

	cmd.AddCommand(save, list, load)
	return cmd
}

func newLastCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "last",
		Short: "Print the last generated prompt and lyrics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# prompt\n%s\n\n# lyrics\n%s\n", s.app.Prompt(), s.app.Lyrics())
			return nil
		},
	}
}
