package intelligence

import (
	"context"
	"fmt"
	"strings"
	"time"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const (
	geminiModel    = "models/gemini-1.5-pro"
	systemPreamble = "You are an AI assistant for calendar and general questions."

	missingKeyMessage = "Gemini API key not found. Please set GEMINI_API_KEY in your environment."
	apologyMessage    = "Sorry, I couldn't get a response from the AI model. Please try again later."
	badShapeMessage   = "Sorry, I couldn't understand the response from the AI model."
)

// GeminiCompletion calls the Gemini API for general questions. A zero API key
// leaves the model nil and every call returns the fixed missing-key message.
type GeminiCompletion struct {
	model   *genai.GenerativeModel
	timeout time.Duration
	logger  *zap.Logger
}

// NewGeminiCompletion builds the fallback completion client. The API key may
// be empty; the service then degrades instead of failing requests.
func NewGeminiCompletion(apiKey string, timeout time.Duration, logger *zap.Logger) (*GeminiCompletion, error) {
	g := &GeminiCompletion{timeout: timeout, logger: logger}
	if apiKey == "" {
		logger.Warn("no Gemini API key configured, completion fallback disabled")
		return g, nil
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	g.model = client.GenerativeModel(geminiModel)
	return g, nil
}

func (g *GeminiCompletion) Complete(ctx context.Context, prompt string) string {
	if g.model == nil {
		return missingKeyMessage
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.model.GenerateContent(ctx, genai.Text(systemPreamble+"\n\n"+prompt))
	if err != nil {
		g.logger.Error("Gemini completion failed", zap.Error(err))
		return apologyMessage
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		g.logger.Warn("Gemini returned no candidates")
		return badShapeMessage
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return badShapeMessage
	}
	return text
}
