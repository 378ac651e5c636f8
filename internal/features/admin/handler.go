package admin

import (
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/luxloom/storefront-backend/internal/handlerutils"
	"github.com/luxloom/storefront-backend/internal/servererrors"
)

type servicer interface {
	verifyCredentials(creds *VerifyCredentialsRequest) bool
	createSession(username string) (tokenStr string, expiresAt time.Time, err error)
}

type middleware interface {
	ErrorHandler(h handlerutils.APIHandler) http.HandlerFunc
}

type handler struct {
	service    servicer
	middleware middleware
}

func NewHandler(adminService servicer, middleware middleware) *handler {
	return &handler{
		service:    adminService,
		middleware: middleware,
	}
}

func (h *handler) RegisterRoutes(router *chi.Mux) {
	router.Post(
		"/admin/verify",
		h.middleware.ErrorHandler(
			h.verifyHandler,
		),
	)
}

// verifyHandler keeps the response shape the login modal expects: a success
// flag, and on mismatch a single generic message that never says which field
// was wrong. A successful verify additionally sets the accessToken cookie the
// admin-only routes check.
func (h *handler) verifyHandler(w http.ResponseWriter, r *http.Request) error {
	var payload *VerifyCredentialsRequest
	defer r.Body.Close()

	if err := handlerutils.ParseJSON(r, &payload); err != nil || payload == nil {
		return handlerutils.WriteJSON(
			w,
			http.StatusInternalServerError,
			VerifyCredentialsResponse{
				Success: false,
				Message: "authentication failed",
			},
		)
	}

	if !h.service.verifyCredentials(payload) {
		return handlerutils.WriteJSON(
			w,
			http.StatusOK,
			VerifyCredentialsResponse{
				Success: false,
				Message: servererrors.ErrInvalidCredentials.Error(),
			},
		)
	}

	tokenStr, expiresAt, err := h.service.createSession(payload.Username)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "accessToken",
		Value:    tokenStr,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	return handlerutils.WriteJSON(
		w,
		http.StatusOK,
		VerifyCredentialsResponse{
			Success: true,
		},
	)
}
