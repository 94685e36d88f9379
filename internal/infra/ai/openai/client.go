package openai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	domai "github.com/bryanwahyu/ideaforge/internal/domain/ai"
	"github.com/bryanwahyu/ideaforge/internal/domain/ideas"
	"github.com/bryanwahyu/ideaforge/internal/infra/ai/prompt"
)

const maxTokens = 2048

// Client wraps the provider SDK and implements the Analyzer, ImageGenerator
// and Transcriber ports.
type Client struct {
	*openai.Client
	Model           string
	ImageModel      string
	TranscribeModel string
}

func NewClient(apiKey, model, imageModel, transcribeModel string) *Client {
	return &Client{
		Client:          openai.NewClient(apiKey),
		Model:           model,
		ImageModel:      imageModel,
		TranscribeModel: transcribeModel,
	}
}

// Analyze sends the instruction template plus transcript and validates the
// reply against the analysis contract. A malformed reply is not retried.
func (c *Client) Analyze(ctx context.Context, transcript string) (*ideas.Analysis, error) {
	model := c.Model
	if model == "" {
		model = openai.GPT4oMini
	}
	req := openai.ChatCompletionRequest{
		Model: model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.AnalysisInstructions},
			{Role: openai.ChatMessageRoleUser, Content: transcript},
		},
	}
	// For reasoning models (o1/o3/o4/gpt-5*) use MaxCompletionTokens instead of MaxTokens
	if strings.HasPrefix(model, "o1") || strings.HasPrefix(model, "o3") || strings.HasPrefix(model, "o4") || strings.HasPrefix(model, "gpt-5") {
		req.MaxCompletionTokens = maxTokens
	} else {
		req.MaxTokens = maxTokens
	}

	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, mapProviderErr(fmt.Errorf("failed to create chat completion: %w", err))
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty choices", domai.ErrParse)
	}

	return prompt.ParseAnalysis(resp.Choices[0].Message.Content)
}

// GenerateImage requests one rendering of the prompt and decodes the inline
// base64 payload from the reply.
func (c *Client) GenerateImage(ctx context.Context, p string) ([]byte, error) {
	model := c.ImageModel
	if model == "" {
		model = openai.CreateImageModelDallE3
	}
	resp, err := c.CreateImage(ctx, openai.ImageRequest{
		Prompt:         p,
		Model:          model,
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return nil, mapProviderErr(fmt.Errorf("failed to create image: %w", err))
	}

	for _, d := range resp.Data {
		if d.B64JSON == "" {
			continue
		}
		raw, err := base64.StdEncoding.DecodeString(d.B64JSON)
		if err != nil {
			return nil, fmt.Errorf("failed to decode image payload: %w", err)
		}
		return raw, nil
	}
	return nil, domai.ErrNoImage
}

// Transcribe sends recorded audio to the speech model and returns plain text.
func (c *Client) Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error) {
	model := c.TranscribeModel
	if model == "" {
		model = openai.Whisper1
	}
	resp, err := c.CreateTranscription(ctx, openai.AudioRequest{
		Model:    model,
		FilePath: filename,
		Reader:   audio,
	})
	if err != nil {
		return "", mapProviderErr(fmt.Errorf("failed to transcribe audio: %w", err))
	}
	return resp.Text, nil
}

// mapProviderErr tags provider rate-limit responses so the router can answer 429.
func mapProviderErr(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("%w: %v", domai.ErrQuotaExceeded, err)
	}
	return err
}
