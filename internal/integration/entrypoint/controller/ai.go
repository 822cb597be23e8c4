package controller

import (
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/application/usecase/aichat"
	"github.com/homeledger/backend/internal/integration/entrypoint/dto"
)

// maxImportFileSize caps a single uploaded statement at 10 MiB.
const maxImportFileSize = 10 << 20

// AIController handles the assistant and file-import endpoints.
type AIController struct {
	chatUseCase         *aichat.ChatUseCase
	processFilesUseCase *aichat.ProcessFilesUseCase
}

// NewAIController creates a new AI controller instance.
func NewAIController(chatUseCase *aichat.ChatUseCase, processFilesUseCase *aichat.ProcessFilesUseCase) *AIController {
	return &AIController{
		chatUseCase:         chatUseCase,
		processFilesUseCase: processFilesUseCase,
	}
}

// Chat handles POST /ai/chat requests.
func (c *AIController) Chat(ctx *gin.Context) {
	var req dto.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	input := aichat.ChatInput{Message: req.Message}
	if len(req.AttachmentData) > 0 {
		input.Attachment = &adapter.ChatAttachment{
			Data:     req.AttachmentData,
			MIMEType: req.AttachmentMIMEType,
		}
	}

	output, err := c.chatUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToChatResponse(output.Completion))
}

// ProcessFiles handles POST /ai/process-files multipart requests.
func (c *AIController) ProcessFiles(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid multipart form"})
		return
	}

	uploads := form.File["files"]
	if len(uploads) == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "No files uploaded"})
		return
	}

	files := make([]adapter.ImportFile, 0, len(uploads))
	for _, upload := range uploads {
		if upload.Size > maxImportFileSize {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "File too large: " + upload.Filename})
			return
		}
		opened, err := upload.Open()
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Unreadable file: " + upload.Filename})
			return
		}
		content, err := io.ReadAll(opened)
		opened.Close()
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Unreadable file: " + upload.Filename})
			return
		}
		files = append(files, adapter.ImportFile{
			Name:    upload.Filename,
			Kind:    fileKind(upload.Filename),
			Content: content,
		})
	}

	output, err := c.processFilesUseCase.Execute(ctx.Request.Context(), aichat.ProcessFilesInput{Files: files})
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := dto.ProcessFilesResponse{Candidates: []dto.CandidateTransactionDTO{}}
	for _, candidate := range output.Candidates {
		response.Candidates = append(response.Candidates, dto.ToCandidateDTO(candidate))
	}
	ctx.JSON(http.StatusOK, response)
}

// fileKind maps a filename extension onto the declared import format.
func fileKind(name string) adapter.ImportFileKind {
	switch strings.ToLower(path.Ext(name)) {
	case ".csv":
		return adapter.ImportFileCSV
	case ".pdf":
		return adapter.ImportFilePDF
	case ".png", ".jpg", ".jpeg", ".webp":
		return adapter.ImportFileImage
	}
	return adapter.ImportFileImage
}
