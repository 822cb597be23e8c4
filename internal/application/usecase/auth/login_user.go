// Package auth contains the PIN-gate login use case.
package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/homeledger/backend/internal/application/adapter"
	domainerror "github.com/homeledger/backend/internal/domain/error"
)

// LoginUserInput represents a login attempt.
type LoginUserInput struct {
	User string
	PIN  string
}

// LoginUserOutput carries the issued session token.
type LoginUserOutput struct {
	User      string
	Token     string
	ExpiresAt time.Time
}

// LoginUserUseCase gates access behind a shared PIN. When the settings
// hold a PIN hash it wins; otherwise the configured fallback PIN applies.
type LoginUserUseCase struct {
	store        adapter.LedgerStore
	tokens       adapter.TokenService
	pins         adapter.PinService
	users        []string
	universalPIN string
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	store adapter.LedgerStore,
	tokens adapter.TokenService,
	pins adapter.PinService,
	users []string,
	universalPIN string,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		store:        store,
		tokens:       tokens,
		pins:         pins,
		users:        users,
		universalPIN: universalPIN,
	}
}

// Execute verifies the user and PIN and issues a token.
func (uc *LoginUserUseCase) Execute(_ context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	if !uc.isKnownUser(input.User) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUnknownUser,
			fmt.Sprintf("user %q is not a member of this ledger", input.User),
			domainerror.ErrUnknownUser,
		)
	}

	if !uc.pinMatches(input.PIN) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidPIN,
			"incorrect pin",
			domainerror.ErrInvalidPIN,
		)
	}

	token, expiresAt, err := uc.tokens.IssueToken(input.User)
	if err != nil {
		return nil, err
	}

	return &LoginUserOutput{User: input.User, Token: token, ExpiresAt: expiresAt}, nil
}

func (uc *LoginUserUseCase) isKnownUser(user string) bool {
	for _, candidate := range uc.users {
		if candidate == user {
			return true
		}
	}
	return false
}

func (uc *LoginUserUseCase) pinMatches(pin string) bool {
	if hash := uc.store.Snapshot().Settings.PinHash; hash != "" {
		return uc.pins.Compare(hash, pin) == nil
	}
	return subtle.ConstantTimeCompare([]byte(pin), []byte(uc.universalPIN)) == 1
}
