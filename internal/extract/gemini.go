package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"mbaxter/ledgerize/internal/logging"
	"mbaxter/ledgerize/internal/models"
	"mbaxter/ledgerize/internal/parsererror"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiExtractor implements extraction against the Google Gemini API. The
// model is asked to return a bare JSON array; everything downstream treats
// that array exactly like pasted JSON.
type GeminiExtractor struct {
	client *genai.Client
	model  *genai.GenerativeModel
	logger logging.Logger
}

// NewGeminiExtractor creates a GeminiExtractor. The API key is required; the
// model name falls back to a sensible default when empty.
func NewGeminiExtractor(ctx context.Context, apiKey, modelName string, logger logging.Logger) (*GeminiExtractor, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}
	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}
	if logger == nil {
		logger = logging.GetLogger()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiExtractor{
		client: client,
		model:  client.GenerativeModel(modelName),
		logger: logger,
	}, nil
}

// Close releases the underlying API client.
func (g *GeminiExtractor) Close() error {
	return g.client.Close()
}

// ExtractTransactions sends the document to the model and decodes the
// returned JSON array of transactions.
func (g *GeminiExtractor) ExtractTransactions(ctx context.Context, data []byte, mimeType, targetMonth string) ([]models.RawTransaction, error) {
	prompt := fmt.Sprintf(`Extract every spending transaction from this statement for the month %s.
Respond with only a JSON array; each element must have "date" (YYYY-MM-DD),
"merchant", "amount" (number, negative for credits/refunds) and optionally
"category".`, targetMonth)

	text, err := g.generate(ctx, data, mimeType, prompt)
	if err != nil {
		return nil, err
	}

	var records []models.RawTransaction
	if err := json.Unmarshal([]byte(text), &records); err != nil {
		return nil, &parsererror.InvalidFormatError{
			ExpectedFormat: "JSON transaction array from model",
			Msg:            err.Error(),
		}
	}
	return records, nil
}

// ExtractPaycheck sends the document to the model and decodes the returned
// JSON array of permissive paycheck objects.
func (g *GeminiExtractor) ExtractPaycheck(ctx context.Context, data []byte, mimeType string) ([]map[string]interface{}, error) {
	prompt := `Extract the pay statement fields from this document.
Respond with only a JSON array of one object using snake_case keys such as
"pay_period", "gross_amount", "federal_tax_amount", "medicare_amount",
"employee_401k_contribution", "net_amount", "pay_date".`

	text, err := g.generate(ctx, data, mimeType, prompt)
	if err != nil {
		return nil, err
	}

	var records []map[string]interface{}
	if err := json.Unmarshal([]byte(text), &records); err != nil {
		return nil, &parsererror.InvalidFormatError{
			ExpectedFormat: "JSON paycheck array from model",
			Msg:            err.Error(),
		}
	}
	return records, nil
}

func (g *GeminiExtractor) generate(ctx context.Context, data []byte, mimeType, prompt string) (string, error) {
	parts := []genai.Part{genai.Text(prompt)}
	if strings.HasPrefix(mimeType, "text/") || mimeType == "" {
		parts = append(parts, genai.Text(string(data)))
	} else {
		parts = append(parts, genai.Blob{MIMEType: mimeType, Data: data})
	}

	resp, err := g.model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini API")
	}

	text := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	return stripCodeFence(text), nil
}

// stripCodeFence removes a markdown code fence the model sometimes wraps
// around JSON output.
func stripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
