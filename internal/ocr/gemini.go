package ocr

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sshub/ledger-assist/internal/logging"
	"sshub/ledger-assist/internal/parsererror"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const providerGemini = "gemini"

const transcriptionPrompt = `Transcribe this receipt image to plain text.
Keep the original line breaks: the store name first, then the date, then one line per item with its price, then the total.
Do not add commentary, markdown or currency conversions.`

// contentGenerator is the part of *genai.GenerativeModel used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiExtractor transcribes receipts with a Gemini vision model.
type GeminiExtractor struct {
	client  *genai.Client
	model   contentGenerator
	timeout time.Duration
	logger  logging.Logger
}

// NewGeminiExtractor creates a Gemini client for the given model.
func NewGeminiExtractor(ctx context.Context, apiKey, model string, timeout time.Duration, logger logging.Logger) (*GeminiExtractor, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	generativeModel := client.GenerativeModel(model)
	generativeModel.SetTemperature(0)

	return &GeminiExtractor{
		client:  client,
		model:   generativeModel,
		timeout: timeout,
		logger:  logger,
	}, nil
}

// Extract sends the image and a transcription prompt and returns the text
// of the first candidate. Gemini reports no confidence.
func (g *GeminiExtractor) Extract(ctx context.Context, image []byte, mimeType string) (Result, error) {
	if len(image) == 0 {
		return Result{}, &parsererror.OCRError{Provider: providerGemini, MimeType: mimeType, Err: fmt.Errorf("empty image")}
	}
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := g.model.GenerateContent(ctx, genai.ImageData(imageFormat(mimeType), image), genai.Text(transcriptionPrompt))
	if err != nil {
		return Result{}, &parsererror.OCRError{Provider: providerGemini, MimeType: mimeType, Err: err}
	}

	text := responseText(resp)
	if text == "" {
		return Result{}, &parsererror.OCRError{Provider: providerGemini, MimeType: mimeType, Err: fmt.Errorf("no text in response")}
	}

	g.logger.WithFields(
		logging.Field{Key: logging.FieldProvider, Value: providerGemini},
		logging.Field{Key: logging.FieldDuration, Value: time.Since(start).Milliseconds()},
	).Debug("Receipt image transcribed")
	return Result{Text: text}, nil
}

// Close releases the underlying client.
func (g *GeminiExtractor) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return strings.TrimSpace(sb.String())
}
