package main

import (
	"bytes"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/Conceptual-Machines/music-creator/internal/api"
	"github.com/Conceptual-Machines/music-creator/internal/config"
	"github.com/Conceptual-Machines/music-creator/internal/engine"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cli struct {
	server string
	store  string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{Environment: "test", Locale: "ko", MaxUploadMB: 1}
	srv := httptest.NewServer(api.SetupRouter(cfg, engine.NewStubEngine(), nil, "test"))
	t.Cleanup(srv.Close)
	return &cli{server: srv.URL, store: filepath.Join(t.TempDir(), "creator.db")}
}

func (c *cli) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--server", c.server, "--store", c.store}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeWAV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "demo.wav")
	data := append([]byte("RIFF\x24\x00\x00\x00WAVEfmt "), make([]byte, 64)...)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestAnalyzeCommand(t *testing.T) {
	c := newCLI(t)

	out, errOut, err := c.run(t, "analyze", writeWAV(t))
	require.NoError(t, err)
	assert.Contains(t, out, "C Major")
	assert.Contains(t, out, "120 BPM")
	assert.Contains(t, errOut, "[loading]")
	assert.Contains(t, errOut, "[success]")
}

func TestAnalyzeCommandMissingFile(t *testing.T) {
	c := newCLI(t)

	_, _, err := c.run(t, "analyze", filepath.Join(t.TempDir(), "nope.wav"))
	assert.Error(t, err)
}

func TestPromptCommandAndLast(t *testing.T) {
	c := newCLI(t)

	out, _, err := c.run(t, "prompt", "--genre", "Rock", "--mood", "Dark", "--instruments", "guitar,drums")
	require.NoError(t, err)
	assert.Contains(t, out, "Rock")
	assert.Contains(t, out, "Dark")

	last, _, err := c.run(t, "last")
	require.NoError(t, err)
	assert.Contains(t, last, "# prompt")
	assert.Contains(t, last, "Rock")
}

func TestPromptCommandRejectsUnknownChoices(t *testing.T) {
	c := newCLI(t)

	_, _, err := c.run(t, "prompt", "--genre", "Polka")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown genre "Polka"`)

	_, _, err = c.run(t, "prompt", "--instruments", "theremin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown instrument "theremin"`)
}

func TestLyricsCommandWithAnalysis(t *testing.T) {
	c := newCLI(t)

	out, _, err := c.run(t, "lyrics", "--theme", "사랑", "--mood", "그리운", "--audio", writeWAV(t), "--use-analysis")
	require.NoError(t, err)
	assert.Contains(t, out, "[Verse 1]")
	assert.Contains(t, out, "사랑에 대한 감정을 담은 첫 번째 구절")
}

func TestPresetCommands(t *testing.T) {
	c := newCLI(t)

	_, _, err := c.run(t, "preset", "save", "night drive", "--genre", "Electronic", "--instruments", "synthesizer", "--creativity", "70")
	require.NoError(t, err)

	list, _, err := c.run(t, "preset", "list")
	require.NoError(t, err)
	assert.Contains(t, list, "0\tnight drive")

	out, _, err := c.run(t, "preset", "load", "0")
	require.NoError(t, err)
	assert.Contains(t, out, `"genre": "Electronic"`)
	assert.Contains(t, out, `"instruments": "synthesizer"`)
	assert.Contains(t, out, `"creativity": 70`)

	_, _, err = c.run(t, "preset", "load", "5")
	assert.Error(t, err)

	_, _, err = c.run(t, "preset", "load", "x")
	assert.Error(t, err)
}
