package admin

// VerifyCredentialsRequest holds a login attempt. It lives only for the
// duration of the request and is never persisted.
type VerifyCredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type VerifyCredentialsResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
