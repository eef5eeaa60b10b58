package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pageza/snapdish/backend/internal/model"
)

// visionModel is the fixed model identifier used for every generation call.
const visionModel = "gpt-4o-mini"

// maxOutputTokens bounds the model reply; five recipes fit comfortably.
const maxOutputTokens = 1600

// systemPrompt is the fixed instruction passage sent with every image.
const systemPrompt = `You are a culinary assistant that creates recipes from photos of leftover food.
Identify the ingredients visible in the photo, blend in the user's notes, and respond with recipes that use what is shown.
Respond with raw JSON only. No prose, no markdown, no code fences. Use exactly this structure:
{
  "summary": "one or two sentences naming the ingredients you detected",
  "recipes": [
    {
      "name": "Recipe name",
      "description": "Short appetizing description",
      "ingredients": ["200g pasta", "2 tomatoes"],
      "steps": ["Boil the pasta", "Saute the tomatoes"]
    }
  ]
}
Produce 3 to 4 distinct recipes. Every recipe needs at least 3 ingredients and at least 3 steps.`

// noNotesPlaceholder stands in for omitted user notes so the user turn is
// never empty.
const noNotesPlaceholder = "No additional notes provided."

// dataURLPattern accepts a base64 data URL with any image media type and a
// non-empty payload.
var dataURLPattern = regexp.MustCompile(`^data:image/[a-zA-Z0-9.+-]+;base64,.+$`)

// VisionService generates recipes from food photos via the OpenAI
// chat-completions API.
type VisionService struct {
	apiKey string
	apiURL string
	client *http.Client
	logger *zap.Logger
}

// NewVisionService creates a new VisionService instance. apiURL falls back to
// nothing here; the config layer supplies the default.
func NewVisionService(apiKey, apiURL string, logger *zap.Logger) (*VisionService, error) {
	if apiKey == "" {
		return nil, NewConfigError("OpenAI API key is not configured")
	}
	if apiURL == "" {
		return nil, NewConfigError("OpenAI API URL is not configured")
	}
	return &VisionService{
		apiKey: apiKey,
		apiURL: apiURL,
		client: http.DefaultClient,
		logger: logger,
	}, nil
}

// chatMessage is one turn in the chat-completions request. Content is either
// a plain string or a slice of content parts for multimodal turns.
type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL    string `json:"url"`
	Detail string `json:"detail"`
}

type chatRequest struct {
	Model          string            `json:"model"`
	Messages       []chatMessage     `json:"messages"`
	ResponseFormat map[string]string `json:"response_format"`
	MaxTokens      int               `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate submits one multimodal request and returns the validated recipe
// list. The image is checked locally before any network call so malformed
// input never spends model quota.
func (s *VisionService) Generate(ctx context.Context, imageDataURL, notes string) (*model.GenerationResult, error) {
	if !dataURLPattern.MatchString(imageDataURL) {
		return nil, NewValidationError("imageDataUrl must be a base64 data URL with an image media type")
	}

	userText := strings.TrimSpace(notes)
	if userText == "" {
		userText = noNotesPlaceholder
	}

	reqBody := chatRequest{
		Model: visionModel,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: []contentPart{
				{Type: "text", Text: userText},
				{Type: "image_url", ImageURL: &imageURL{URL: imageDataURL, Detail: "high"}},
			}},
		},
		ResponseFormat: map[string]string{"type": "json_object"},
		MaxTokens:      maxOutputTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, NewUpstreamError("model request failed", 0, "", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewUpstreamError("failed to read model response", 0, "", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.logger.Error("model request rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("body", truncate(string(body), 512)))
		return nil, NewUpstreamError("model request failed", resp.StatusCode, string(body), nil)
	}

	var chat chatResponse
	if err := json.Unmarshal(body, &chat); err != nil {
		return nil, NewUpstreamError("failed to decode model response", 0, "", err)
	}
	if len(chat.Choices) == 0 || strings.TrimSpace(chat.Choices[0].Message.Content) == "" {
		return nil, NewUpstreamError("model returned no text", 0, "", nil)
	}
	content := chat.Choices[0].Message.Content

	var result model.GenerationResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		s.logger.Error("model reply is not valid JSON",
			zap.Error(err),
			zap.String("content", truncate(content, 512)))
		return nil, NewParseError("could not read the model reply, please retake the photo and try again", err)
	}

	if err := model.ValidateGenerationResult(&result); err != nil {
		s.logger.Error("model reply failed schema validation", zap.Error(err))
		return nil, NewSchemaError("the model reply was incomplete, please retake the photo and try again", err)
	}

	s.logger.Info("generated recipes",
		zap.Int("recipes", len(result.Recipes)),
		zap.Duration("duration", time.Since(start)))

	return &result, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
