package middlewares

import (
	"errors"
	"net/http"

	"github.com/luxloom/storefront-backend/internal/handlerutils"
	"github.com/luxloom/storefront-backend/internal/servererrors"
	"go.uber.org/zap"
)

// ErrorHandler wraps a handler that returns an error into an http.HandlerFunc
// so error logging and response writing stay in one place. Errors that are not
// a [servererrors.ServerError] never leak detail to the client.
func (mw *middleware) ErrorHandler(h handlerutils.APIHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := h(w, r)
		if err == nil {
			return
		}

		mw.log.Error(
			"request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)

		var serverError *servererrors.ServerError
		if errors.As(err, &serverError) {
			handlerutils.WriteErrorJSON(
				w,
				serverError.StatusCode,
				serverError.Error(),
				serverError.Errors,
			)
			return
		}

		handlerutils.WriteErrorJSON(
			w,
			http.StatusInternalServerError,
			"something went wrong",
			nil,
		)
	}
}
