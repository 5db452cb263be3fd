// Package ai answers free-text customer questions with an OpenAI chat model.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
	"go.uber.org/zap"

	"github.com/kaapav/kaapav-bot/internal/config"
)

var ErrNotConfigured = errors.New("ai: openai not configured")

// handoffMarker is what the model answers when a human should take over.
const handoffMarker = "HANDOFF"

const defaultSystemPrompt = `You are the WhatsApp assistant of %s, an Indian fashion jewellery brand.
Answer in at most 3 short sentences, warmly, in the customer's language (%s).
You may talk about earrings, necklaces, bracelets, rings, anklets and jewellery sets,
shipping (free above ₹498, otherwise ₹49, 3-7 business days), easy 7 day returns and
prepaid payments via UPI, cards and net banking.
Never invent prices, order statuses or tracking numbers.
If the question needs order details, a complaint resolution or a human, answer exactly ` + handoffMarker + `.`

type Responder struct {
	client *openai.Client
	cfg    config.OpenAIConfig
	shop   string
	logger *zap.Logger
}

func NewResponder(cfg config.OpenAIConfig, shopName string, logger *zap.Logger) *Responder {
	r := &Responder{cfg: cfg, shop: shopName, logger: logger}
	if !cfg.Enabled() {
		return r
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(1),
		option.WithRequestTimeout(20 * time.Second),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	cl := openai.NewClient(opts...)
	r.client = &cl
	return r
}

func (r *Responder) Configured() bool {
	return r.client != nil
}

// Reply asks the model about text. handled is false when the model defers
// to a human or returns nothing usable.
func (r *Responder) Reply(ctx context.Context, text, language string) (reply string, handled bool, err error) {
	if !r.Configured() {
		return "", false, ErrNotConfigured
	}

	prompt := r.cfg.SystemPrompt
	if prompt == "" {
		prompt = fmt.Sprintf(defaultSystemPrompt, r.shop, languageName(language))
	}

	params := openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompt),
			openai.UserMessage(text),
		},
		Model: shared.ChatModel(r.cfg.Model),
	}
	if r.cfg.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(r.cfg.MaxTokens))
	}
	if r.cfg.Temperature != 0 {
		params.Temperature = openai.Float(r.cfg.Temperature)
	}

	start := time.Now()
	resp, err := r.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", false, fmt.Errorf("failed to get completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", false, nil
	}

	reply = strings.TrimSpace(resp.Choices[0].Message.Content)
	r.logger.Debug("AI reply generated",
		zap.String("model", resp.Model),
		zap.Int64("tokens", resp.Usage.TotalTokens),
		zap.Duration("duration", time.Since(start)))

	if reply == "" || strings.Contains(strings.ToUpper(reply), handoffMarker) {
		return "", false, nil
	}
	return reply, true, nil
}

func languageName(code string) string {
	if code == "hi" {
		return "Hindi or Hinglish"
	}
	return "English"
}
