package admin

import (
	"crypto/subtle"
	"time"
)

type tokenCreator interface {
	CreateAccessToken(entityID, entityType string) (tokenStr string, expiresAt time.Time, err error)
}

type service struct {
	adminUsername string
	adminPassword string
	tokenManager  tokenCreator
}

func NewService(adminUsername, adminPassword string, tokenManager tokenCreator) *service {
	return &service{
		adminUsername: adminUsername,
		adminPassword: adminPassword,
		tokenManager:  tokenManager,
	}
}

// verifyCredentials compares a login attempt against the configured secrets.
// Both fields are always compared so response timing does not reveal which
// one was wrong. Unset secrets never verify.
func (s *service) verifyCredentials(creds *VerifyCredentialsRequest) bool {
	if s.adminUsername == "" || s.adminPassword == "" {
		return false
	}

	usernameMatch := subtle.ConstantTimeCompare(
		[]byte(creds.Username),
		[]byte(s.adminUsername),
	)
	passwordMatch := subtle.ConstantTimeCompare(
		[]byte(creds.Password),
		[]byte(s.adminPassword),
	)

	return usernameMatch == 1 && passwordMatch == 1
}

// createSession issues the access token an authenticated admin presents on
// order-management routes.
func (s *service) createSession(username string) (tokenStr string, expiresAt time.Time, err error) {
	return s.tokenManager.CreateAccessToken(username, "admin")
}
