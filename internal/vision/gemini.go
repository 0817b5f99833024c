package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/guhdnews/lacqr-sub000/internal/quote"
)

type GeminiDescriber struct {
	apiKey string
	model  string
	client *http.Client
}

func NewGeminiDescriber() *GeminiDescriber {
	return &GeminiDescriber{
		apiKey: os.Getenv("GEMINI_API_KEY"),
		model:  os.Getenv("GEMINI_MODEL"),
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// Describe sends the photo to Gemini and guarantees JSON-only output.
func (g *GeminiDescriber) Describe(ctx context.Context, imageURL string) (*quote.VisionDescription, error) {
	if g.apiKey == "" {
		return nil, errors.New("missing GEMINI_API_KEY")
	}
	if g.model == "" {
		return nil, errors.New("missing GEMINI_MODEL")
	}
	if imageURL == "" {
		return nil, errors.New("empty image url")
	}

	imageData, mimeType, err := g.fetchImage(ctx, imageURL)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s",
		g.model,
		g.apiKey,
	)

	payload := map[string]any{
		"contents": []map[string]any{
			{
				"parts": []map[string]any{
					{"text": BuildDescribePrompt()},
					{"inline_data": map[string]string{
						"mime_type": mimeType,
						"data":      base64.StdEncoding.EncodeToString(imageData),
					}},
				},
			},
		},
		"generationConfig": map[string]any{
			"temperature":     0.2,
			"maxOutputTokens": 2048,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini api error: %s", string(raw))
	}

	// Gemini response shape
	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}

	if len(result.Candidates) == 0 ||
		len(result.Candidates[0].Content.Parts) == 0 {
		return nil, errors.New("empty gemini response")
	}

	return ParseDescription(result.Candidates[0].Content.Parts[0].Text)
}

func (g *GeminiDescriber) fetchImage(ctx context.Context, imageURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("image fetch failed: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	return data, mimeType, nil
}

// ParseDescription turns the model's raw output into a VisionDescription.
// Models ignore "no markdown" often enough that code fences are stripped
// before validating.
func ParseDescription(raw string) (*quote.VisionDescription, error) {
	cleaned := stripCodeFences(raw)

	if !json.Valid([]byte(cleaned)) {
		return nil, errors.New("describer returned non-json output")
	}

	var desc quote.VisionDescription
	if err := json.Unmarshal([]byte(cleaned), &desc); err != nil {
		return nil, errors.New("invalid describer JSON output")
	}

	return &desc, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
