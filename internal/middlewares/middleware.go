package middlewares

import (
	"github.com/luxloom/storefront-backend/internal/auth"
	"go.uber.org/zap"
)

type tokenManager interface {
	ValidateAccessToken(tokenStr string) (isValid bool, claims *auth.TokenClaims, err error)
}

type middleware struct {
	jwtManager tokenManager
	log        *zap.Logger
}

func NewMiddleware(tokenManager tokenManager, log *zap.Logger) *middleware {
	return &middleware{
		jwtManager: tokenManager,
		log:        log,
	}
}
