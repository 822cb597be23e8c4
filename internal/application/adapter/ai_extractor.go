// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/homeledger/backend/internal/domain/entity"
)

// ChatCompletionType classifies an extractor chat response.
type ChatCompletionType string

const (
	ChatCompletionChat         ChatCompletionType = "chat"
	ChatCompletionConfirmation ChatCompletionType = "confirmation"
	ChatCompletionError        ChatCompletionType = "error"
)

// ChatAttachment is an optional inline image sent with a chat message.
type ChatAttachment struct {
	Data     []byte
	MIMEType string
}

// ChatRequest carries one conversational turn plus the ledger context the
// extractor may use for smarter suggestions.
type ChatRequest struct {
	Message            string
	Attachment         *ChatAttachment
	RecentTransactions []entity.Transaction
	Budgets            []entity.Budget
	Today              time.Time
}

// ChatCompletion is the extractor's structured reply. Transactions is nil
// unless Type is "confirmation"; every candidate field is untrusted.
type ChatCompletion struct {
	Type         ChatCompletionType
	Message      string
	Transactions []entity.CandidateTransaction
}

// ImportFileKind is the declared format of an uploaded file. The core never
// decodes file contents itself; they pass to the extractor opaque.
type ImportFileKind string

const (
	ImportFileCSV   ImportFileKind = "csv"
	ImportFileImage ImportFileKind = "image"
	ImportFilePDF   ImportFileKind = "pdf"
)

// ImportFile is one uploaded document for bulk extraction.
type ImportFile struct {
	Name    string
	Kind    ImportFileKind
	Content []byte
}

// AIExtractor is the black-box natural-language/vision extraction boundary.
// Its output may be wrong, inconsistent, or unavailable and must always be
// validated before being trusted.
type AIExtractor interface {
	// IsAvailable reports whether the extractor is configured.
	IsAvailable() bool

	// Chat runs one conversational extraction turn.
	Chat(ctx context.Context, request ChatRequest) (*ChatCompletion, error)

	// ExtractFromFiles extracts candidate transactions from uploaded
	// documents. Per-file failures are skipped, not fatal.
	ExtractFromFiles(
		ctx context.Context,
		files []ImportFile,
		recentTransactions []entity.Transaction,
	) ([]entity.CandidateTransaction, error)
}
