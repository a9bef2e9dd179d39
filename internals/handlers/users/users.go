package users

import (
	"context"
	"net/http"

	"FounderX/internals/apperrors"
	"FounderX/internals/auth"
	"FounderX/internals/handlers/httpx"
	"FounderX/internals/handlers/middleware"
	"FounderX/internals/models"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (models.User, error)
	Authenticate(ctx context.Context, email, password string) (auth.Token, error)
	CurrentUser(ctx context.Context, email string) (models.User, error)
}

type Metrics interface {
	RecordSignup()
	RecordLogin(ok bool)
}

type signupRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,max=72"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	Id    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func toUserResponse(u models.User) userResponse {
	return userResponse{Id: u.Id, Name: u.Name, Email: u.Email}
}

// SignupHandler handles user registration
func SignupHandler(svc AuthService, m Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req signupRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		u, err := svc.Register(r.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		m.RecordSignup()

		httpx.JSON(w, r, http.StatusOK, toUserResponse(u))
	}
}

// LoginHandler exchanges email and password for a bearer token
func LoginHandler(svc AuthService, m Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		tok, err := svc.Authenticate(r.Context(), req.Email, req.Password)
		if err != nil {
			if apperrors.Is(err, "invalid_credentials") {
				m.RecordLogin(false)
			}
			httpx.WriteError(w, r, err)
			return
		}
		m.RecordLogin(true)

		httpx.JSON(w, r, http.StatusOK, tokenResponse{AccessToken: tok.AccessToken, TokenType: tok.TokenType})
	}
}

// MeHandler returns the user behind the bearer token. It must run after
// middleware.Bearer.
func MeHandler(svc AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			httpx.WriteError(w, r, apperrors.ErrTokenMissing())
			return
		}

		u, err := svc.CurrentUser(r.Context(), claims.Subject)
		if err != nil {
			if apperrors.Is(err, "user_not_found") {
				err = apperrors.ErrTokenInvalid()
			}
			httpx.WriteError(w, r, err)
			return
		}

		httpx.JSON(w, r, http.StatusOK, toUserResponse(u))
	}
}
