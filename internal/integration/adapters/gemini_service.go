// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/shopspring/decimal"
	"google.golang.org/api/option"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/domain/entity"
	domainerror "github.com/homeledger/backend/internal/domain/error"
)

// GeminiService implements the AIExtractor adapter using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey, modelName string) *GeminiService {
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}
	return &GeminiService{apiKey: apiKey, modelName: modelName}
}

// IsAvailable checks if the Gemini service is properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// geminiCandidate is the raw transaction shape requested from the model.
type geminiCandidate struct {
	Type         string  `json:"type"`
	MainCategory string  `json:"mainCategory"`
	SubCategory  string  `json:"subCategory"`
	Amount       float64 `json:"amount"`
	Medium       string  `json:"medium"`
	Date         string  `json:"date"`
	Notes        string  `json:"notes"`
	Payee        string  `json:"payee"`
}

// geminiChatReply is the raw chat response shape requested from the model.
type geminiChatReply struct {
	Type         string            `json:"type"`
	Message      string            `json:"message"`
	Transactions []geminiCandidate `json:"transactions"`
}

// Chat runs one conversational extraction turn.
func (s *GeminiService) Chat(ctx context.Context, request adapter.ChatRequest) (*adapter.ChatCompletion, error) {
	if !s.IsAvailable() {
		return nil, domainerror.NewExtractorError(
			domainerror.ErrCodeExtractorUnavailable,
			"gemini service is not configured",
			domainerror.ErrExtractorUnavailable,
		)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(s.chatSystemPrompt(request))},
	}

	parts := []genai.Part{genai.Text(request.Message)}
	if request.Attachment != nil {
		parts = append(parts, genai.Blob{
			MIMEType: request.Attachment.MIMEType,
			Data:     request.Attachment.Data,
		})
	}

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	raw, err := responseText(resp)
	if err != nil {
		return nil, err
	}

	var reply geminiChatReply
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &reply); err != nil {
		return nil, domainerror.NewExtractorError(
			domainerror.ErrCodeExtractorResponseInvalid,
			"gemini chat reply is not valid JSON",
			fmt.Errorf("%w: %s", domainerror.ErrExtractorResponseInvalid, err),
		)
	}

	completion := &adapter.ChatCompletion{
		Type:    adapter.ChatCompletionType(reply.Type),
		Message: reply.Message,
	}
	switch completion.Type {
	case adapter.ChatCompletionChat, adapter.ChatCompletionConfirmation, adapter.ChatCompletionError:
	default:
		completion.Type = adapter.ChatCompletionChat
	}
	if completion.Type == adapter.ChatCompletionConfirmation {
		completion.Transactions = toCandidates(reply.Transactions, "")
	}
	return completion, nil
}

// ExtractFromFiles extracts candidate transactions from uploaded
// documents. A file the model cannot read is skipped with a warning.
func (s *GeminiService) ExtractFromFiles(
	ctx context.Context,
	files []adapter.ImportFile,
	recentTransactions []entity.Transaction,
) ([]entity.CandidateTransaction, error) {
	if !s.IsAvailable() {
		return nil, domainerror.NewExtractorError(
			domainerror.ErrCodeExtractorUnavailable,
			"gemini service is not configured",
			domainerror.ErrExtractorUnavailable,
		)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.2)
	model.ResponseMIMEType = "application/json"
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(s.extractionSystemPrompt(recentTransactions))},
	}

	var candidates []entity.CandidateTransaction
	for _, file := range files {
		extracted, err := s.extractFile(ctx, model, file)
		if err != nil {
			slog.Warn("file extraction failed, skipping",
				"file", file.Name,
				"error", err,
			)
			continue
		}
		candidates = append(candidates, extracted...)
	}
	return candidates, nil
}

func (s *GeminiService) extractFile(ctx context.Context, model *genai.GenerativeModel, file adapter.ImportFile) ([]entity.CandidateTransaction, error) {
	var parts []genai.Part
	switch file.Kind {
	case adapter.ImportFileCSV:
		parts = []genai.Part{
			genai.Text("Extract every transaction from this CSV statement:\n\n" + string(file.Content)),
		}
	case adapter.ImportFileImage:
		parts = []genai.Part{
			genai.Text("Extract every transaction visible in this receipt or statement image."),
			genai.Blob{MIMEType: "image/jpeg", Data: file.Content},
		}
	case adapter.ImportFilePDF:
		parts = []genai.Part{
			genai.Text("Extract every transaction from this statement document."),
			genai.Blob{MIMEType: "application/pdf", Data: file.Content},
		}
	default:
		return nil, fmt.Errorf("unsupported file kind %q", file.Kind)
	}

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}
	raw, err := responseText(resp)
	if err != nil {
		return nil, err
	}

	var extracted []geminiCandidate
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &extracted); err != nil {
		return nil, domainerror.NewExtractorError(
			domainerror.ErrCodeExtractorResponseInvalid,
			"gemini extraction reply is not valid JSON",
			fmt.Errorf("%w: %s", domainerror.ErrExtractorResponseInvalid, err),
		)
	}
	return toCandidates(extracted, file.Name), nil
}

func (s *GeminiService) chatSystemPrompt(request adapter.ChatRequest) string {
	var sb strings.Builder
	sb.WriteString(`You are a bookkeeping assistant for a shared household ledger. The user describes money movements in natural language, or asks questions about their finances.

Respond with a single JSON object:
{
  "type": "chat" | "confirmation" | "error",
  "message": "reply shown to the user",
  "transactions": [ ... ] // only when type is "confirmation"
}

Use "confirmation" when the user described one or more transactions to record. Each transaction object:
{
  "type": "income" | "expense" | "transfer",
  "mainCategory": "string",
  "subCategory": "string",
  "amount": number,
  "medium": "cash" | "card" | "mamo" | "tabby" | "other",
  "date": "YYYY-MM-DD",
  "notes": "string",
  "payee": "string"
}

Main categories: Gym, Typing Services, Borrowings, Personal, Other. If none fits, pass the user's wording through as mainCategory.
`)
	sb.WriteString(fmt.Sprintf("\nToday is %s.\n", request.Today.Format("2006-01-02")))

	if len(request.Budgets) > 0 {
		sb.WriteString("\nConfigured monthly budgets:\n")
		for _, b := range request.Budgets {
			sb.WriteString(fmt.Sprintf("- %s: %s\n", b.Category, b.Limit))
		}
	}
	if len(request.RecentTransactions) > 0 {
		sb.WriteString("\nRecent transactions for context:\n")
		for _, t := range request.RecentTransactions {
			sb.WriteString(fmt.Sprintf("- %s | %s | %s | %s | %s\n",
				t.Date.Format("2006-01-02"), t.Type, t.MainCategory, t.Amount, t.Payee))
		}
	}
	return sb.String()
}

func (s *GeminiService) extractionSystemPrompt(recent []entity.Transaction) string {
	var sb strings.Builder
	sb.WriteString(`You extract financial transactions from bank statements, receipts, and CSV exports.

Respond with a JSON array of transaction objects:
{
  "type": "income" | "expense",
  "mainCategory": "string",
  "subCategory": "string",
  "amount": number,
  "medium": "cash" | "card" | "mamo" | "tabby" | "other",
  "date": "YYYY-MM-DD",
  "notes": "string",
  "payee": "string"
}

Main categories: Gym, Typing Services, Borrowings, Personal, Other. Amounts are always positive; the type carries the direction. Omit rows that are not transactions (balances, headers, totals).
`)
	if len(recent) > 0 {
		sb.WriteString("\nRecent transactions, useful for matching category conventions:\n")
		for _, t := range recent {
			sb.WriteString(fmt.Sprintf("- %s | %s | %s | %s\n",
				t.Date.Format("2006-01-02"), t.MainCategory, t.SubCategory, t.Payee))
		}
	}
	return sb.String()
}

func toCandidates(raw []geminiCandidate, sourceFile string) []entity.CandidateTransaction {
	candidates := make([]entity.CandidateTransaction, 0, len(raw))
	for _, r := range raw {
		candidate := entity.CandidateTransaction{
			Type:         entity.TransactionType(r.Type),
			MainCategory: entity.MainCategory(r.MainCategory),
			SubCategory:  r.SubCategory,
			Amount:       decimal.NewFromFloat(r.Amount),
			Medium:       entity.Medium(r.Medium),
			Notes:        r.Notes,
			Payee:        r.Payee,
			SourceFile:   sourceFile,
		}
		if date, err := time.Parse("2006-01-02", r.Date); err == nil {
			candidate.Date = date
		}
		candidates = append(candidates, candidate)
	}
	return candidates
}

// responseText pulls the concatenated text parts out of a Gemini response.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", domainerror.NewExtractorError(
			domainerror.ErrCodeExtractorResponseInvalid,
			"empty response from gemini",
			domainerror.ErrExtractorResponseInvalid,
		)
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", domainerror.NewExtractorError(
			domainerror.ErrCodeExtractorResponseInvalid,
			"no text content in gemini response",
			domainerror.ErrExtractorResponseInvalid,
		)
	}
	return sb.String(), nil
}

// stripCodeFences removes markdown fences the model sometimes wraps JSON in
// despite the response MIME type.
func stripCodeFences(raw string) string {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	return strings.TrimSpace(trimmed)
}
