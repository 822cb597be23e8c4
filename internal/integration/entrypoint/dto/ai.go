package dto

import "github.com/homeledger/backend/internal/application/adapter"

// ChatRequest represents one conversational turn from the user. The
// attachment is base64-encoded by gin's JSON binding of []byte.
type ChatRequest struct {
	Message            string `json:"message" binding:"required"`
	AttachmentData     []byte `json:"attachmentData,omitempty"`
	AttachmentMIMEType string `json:"attachmentMimeType,omitempty"`
}

// ChatResponse represents the assistant's reply.
type ChatResponse struct {
	Type         string                    `json:"type"`
	Message      string                    `json:"message"`
	Transactions []CandidateTransactionDTO `json:"transactions,omitempty"`
}

// ToChatResponse converts a chat completion to its response form.
func ToChatResponse(completion adapter.ChatCompletion) ChatResponse {
	response := ChatResponse{
		Type:    string(completion.Type),
		Message: completion.Message,
	}
	for _, candidate := range completion.Transactions {
		response.Transactions = append(response.Transactions, ToCandidateDTO(candidate))
	}
	return response
}

// ProcessFilesResponse holds the reconciled candidates from an upload.
type ProcessFilesResponse struct {
	Candidates []CandidateTransactionDTO `json:"candidates"`
}
