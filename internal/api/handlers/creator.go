package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/Conceptual-Machines/music-creator/internal/config"
	"github.com/Conceptual-Machines/music-creator/internal/engine"
	"github.com/Conceptual-Machines/music-creator/internal/logger"
	"github.com/Conceptual-Machines/music-creator/internal/models"
	"github.com/gin-gonic/gin"
)

// CreatorHandler serves the analysis and generation endpoints. It holds no
// mutable state; everything it does goes through the engine.
type CreatorHandler struct {
	engine    *engine.Engine
	messages  Messages
	language  string
	maxUpload int64
}

func NewCreatorHandler(cfg *config.Config, e *engine.Engine) *CreatorHandler {
	language := cfg.Locale
	if language == "" {
		language = defaultLyricsLanguage
	}
	return &CreatorHandler{
		engine:    e,
		messages:  MessagesFor(cfg.Locale),
		language:  language,
		maxUpload: cfg.MaxUploadBytes(),
	}
}

// AnalyzeAudio handles POST /api/analyze-audio
func (h *CreatorHandler) AnalyzeAudio(c *gin.Context) {
	fields := logger.WithContext(c)

	if h.maxUpload > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload)
	}

	fileHeader, err := c.FormFile(audioFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			logger.Warn("Audio upload exceeds limit", fields)
			c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{Error: h.messages.AudioTooLarge})
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: h.messages.AudioRequired})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded audio", err, fields)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: h.messages.AnalyzeFailed})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		logger.Error("Failed to read uploaded audio", err, fields)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: h.messages.AnalyzeFailed})
		return
	}
	if len(data) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: h.messages.AudioRequired})
		return
	}

	audio := engine.Audio{
		Filename: fileHeader.Filename,
		MIMEType: engine.DetectMIME(data, fileHeader.Header.Get("Content-Type")),
		Data:     data,
	}
	fields["filename"] = audio.Filename
	fields["mime_type"] = audio.MIMEType
	fields["size"] = len(data)
	if !engine.IsAudio(audio.MIMEType) {
		logger.Warn("Upload does not look like audio", fields)
	}

	result, err := h.engine.Analyzer.Analyze(c.Request.Context(), audio)
	if err != nil {
		logger.Error("Audio analysis failed", err, fields)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: h.messages.AnalyzeFailed})
		return
	}

	logger.Info("Audio analyzed", fields)
	c.JSON(http.StatusOK, models.AnalyzeResponse{Success: true, Analysis: result})
}

// GeneratePrompt handles POST /api/generate-prompt
func (h *CreatorHandler) GeneratePrompt(c *gin.Context) {
	var req models.StyleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid prompt request", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: h.messages.PromptFailed})
		return
	}

	result, err := h.engine.Prompts.GeneratePrompt(c.Request.Context(), req)
	if err != nil {
		logger.Error("Prompt generation failed", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: h.messages.PromptFailed})
		return
	}

	c.JSON(http.StatusOK, models.PromptResponse{
		Success:      true,
		Prompt:       result.Prompt,
		Instructions: result.Instructions,
	})
}

// GenerateLyrics handles POST /api/generate-lyrics
func (h *CreatorHandler) GenerateLyrics(c *gin.Context) {
	var req models.LyricsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid lyrics request", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: h.messages.LyricsFailed})
		return
	}
	if req.Language == "" {
		req.Language = h.language
	}

	lyrics, err := h.engine.Lyrics.GenerateLyrics(c.Request.Context(), req)
	if err != nil {
		logger.Error("Lyrics generation failed", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: h.messages.LyricsFailed})
		return
	}

	c.JSON(http.StatusOK, models.LyricsResponse{Success: true, Lyrics: lyrics})
}
