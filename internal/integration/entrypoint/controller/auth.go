package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/homeledger/backend/internal/application/usecase/auth"
	"github.com/homeledger/backend/internal/integration/entrypoint/dto"
)

// AuthController handles the PIN-gate login endpoints.
type AuthController struct {
	loginUseCase *auth.LoginUserUseCase
	users        []string
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(loginUseCase *auth.LoginUserUseCase, users []string) *AuthController {
	return &AuthController{loginUseCase: loginUseCase, users: users}
}

// Login handles POST /auth/login requests.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	output, err := c.loginUseCase.Execute(ctx.Request.Context(), auth.LoginUserInput{
		User: req.User,
		PIN:  req.PIN,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		User:      output.User,
		Token:     output.Token,
		ExpiresAt: output.ExpiresAt,
	})
}

// Users handles GET /auth/users requests, listing the ledger members
// available on the login screen.
func (c *AuthController) Users(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.UsersResponse{Users: c.users})
}
