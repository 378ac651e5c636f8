package middlewares

import (
	"context"
	"net/http"

	"github.com/luxloom/storefront-backend/internal/handlerutils"
	"github.com/luxloom/storefront-backend/internal/servererrors"
)

type contextKey struct{}

var EntityKey contextKey = contextKey{}

// AuthWithContext guards a handler behind a valid accessToken cookie whose
// claims carry the expected entity type, and stashes the entity id in the
// request context.
func (mw *middleware) AuthWithContext(h handlerutils.APIHandler, authEntityType string) handlerutils.APIHandler {
	return func(w http.ResponseWriter, r *http.Request) error {
		accessToken, err := r.Cookie("accessToken")
		if err != nil {
			return servererrors.New(
				http.StatusUnauthorized,
				servererrors.ErrNoAccessTokenCookie.Error(),
				nil,
			)
		}

		isValid, claims, err := mw.jwtManager.ValidateAccessToken(accessToken.Value)
		if err != nil {
			return err
		}

		if !isValid {
			return servererrors.New(
				http.StatusUnauthorized,
				servererrors.ErrUnauthorized.Error(),
				nil,
			)
		}

		if claims.EntityType != authEntityType {
			return servererrors.New(
				http.StatusUnauthorized,
				servererrors.ErrUnauthorizedAccess.Error(),
				nil,
			)
		}

		ctx := context.WithValue(
			r.Context(),
			EntityKey,
			claims.EntityID,
		)
		r = r.WithContext(ctx)

		return h(w, r)
	}
}

func GetEntityIDFromContextKey(ctx context.Context) string {
	entityID, ok := ctx.Value(EntityKey).(string)
	if !ok {
		return ""
	}

	return entityID
}
