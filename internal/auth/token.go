package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims are the claims carried by a signed access token. EntityType
// distinguishes admin sessions from any future customer sessions.
type TokenClaims struct {
	EntityID   string `json:"entityID"`
	EntityType string `json:"entityType"`
	jwt.RegisteredClaims
}

type TokenService struct {
	accessTokenSecret       string
	accessTokenExpiryInSecs int64
}

func NewTokenService(accessTokenSecret string, accessTokenExpiryInSecs int64) *TokenService {
	return &TokenService{
		accessTokenSecret:       accessTokenSecret,
		accessTokenExpiryInSecs: accessTokenExpiryInSecs,
	}
}

func (ts *TokenService) CreateAccessToken(entityID, entityType string) (tokenStr string, expiresAt time.Time, err error) {
	expiresAt = time.Now().Add(
		time.Duration(ts.accessTokenExpiryInSecs) * time.Second,
	)

	claims := &TokenClaims{
		EntityID:   entityID,
		EntityType: entityType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(
		jwt.SigningMethodHS256,
		claims,
	)

	tokenStr, err = token.SignedString([]byte(ts.accessTokenSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf(
			"failed to sign access token: %w",
			err,
		)
	}

	return tokenStr, expiresAt, nil
}

func (ts *TokenService) ValidateAccessToken(tokenStr string) (isValid bool, claims *TokenClaims, err error) {
	claims = &TokenClaims{}

	token, err := jwt.ParseWithClaims(
		tokenStr,
		claims,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf(
					"unexpected signing method: %v",
					token.Header["alg"],
				)
			}

			return []byte(ts.accessTokenSecret), nil
		},
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) || errors.Is(err, jwt.ErrTokenMalformed) || errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return false, nil, nil
		}

		return false, nil, fmt.Errorf(
			"failed to parse access token: %w",
			err,
		)
	}

	return token.Valid, claims, nil
}
