package handlers

import (
	"wicket/internal/application/auth/usecases"
)

// Use case interfaces for AuthHandler - enables unit testing with mocks.

type requestLoginUseCase interface {
	Execute(cmd usecases.RequestLoginCommand) error
}

type redeemMagicLinkUseCase interface {
	Execute(cmd usecases.RedeemMagicLinkCommand) (*usecases.RedeemMagicLinkResult, error)
}

type logoutUseCase interface {
	Execute(cmd usecases.LogoutCommand) error
}
