package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/Conceptual-Machines/music-creator/internal/models"
)

// ErrBadResponse is returned when the server answers with a body that is not
// the expected JSON
var ErrBadResponse = errors.New("unexpected response from server")

// Backend is the server API as seen by the controller
type Backend interface {
	AnalyzeAudio(ctx context.Context, file *File) (*models.AnalyzeResponse, error)
	GeneratePrompt(ctx context.Context, req models.StyleRequest) (*models.PromptResponse, error)
	GenerateLyrics(ctx context.Context, req models.LyricsRequest) (*models.LyricsResponse, error)
}

// APIClient calls the HTTP API. Every call is a single round trip; a
// server-reported failure comes back in the response, not as an error.
type APIClient struct {
	baseURL string
	http    *http.Client
}

func NewAPIClient(baseURL string, httpClient *http.Client) *APIClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &APIClient{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

func (c *APIClient) AnalyzeAudio(ctx context.Context, file *File) (*models.AnalyzeResponse, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("audio", file.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload: %w", err)
	}
	if _, err := part.Write(file.Data); err != nil {
		return nil, fmt.Errorf("failed to build upload: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to build upload: %w", err)
	}

	var resp models.AnalyzeResponse
	if err := c.do(ctx, "/api/analyze-audio", w.FormDataContentType(), &body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *APIClient) GeneratePrompt(ctx context.Context, req models.StyleRequest) (*models.PromptResponse, error) {
	var resp models.PromptResponse
	if err := c.postJSON(ctx, "/api/generate-prompt", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *APIClient) GenerateLyrics(ctx context.Context, req models.LyricsRequest) (*models.LyricsResponse, error) {
	var resp models.LyricsResponse
	if err := c.postJSON(ctx, "/api/generate-lyrics", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *APIClient) postJSON(ctx context.Context, path string, payload, out any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}
	return c.do(ctx, path, "application/json", bytes.NewReader(data), out)
}

func (c *APIClient) do(ctx context.Context, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: status %d: %v", ErrBadResponse, resp.StatusCode, err)
	}
	return nil
}
