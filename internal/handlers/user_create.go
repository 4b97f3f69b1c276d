package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dkovalev/adboard/internal/logger"
	"github.com/dkovalev/adboard/internal/services"
)

// UserRegisterer defines the interface that the service must implement.
type UserRegisterer interface {
	Register(ctx context.Context, login, plaintext string, mail *string) (int64, error)
}

// UserCreateRequest represents the JSON body for user creation
// swagger:model UserCreateRequest
type UserCreateRequest struct {
	// Login
	// required: true
	// default: alice
	Login string `json:"login" validate:"required"`

	// Password, stored only as a salted hash
	// required: true
	// default: secret
	Password string `json:"password" validate:"required"`

	// Mail, optional
	// default: alice@example.com
	Mail *string `json:"mail"`
}

// UserCreateResponse represents a successful user creation response
// swagger:model UserCreateResponse
type UserCreateResponse struct {
	// New user id
	// default: 1
	ID int64 `json:"id"`
}

// NewUserCreateHandler returns an HTTP handler for user creation.
// @Summary Create a new user
// @Description Hashes the password, issues a fresh bearer token and inserts the user.
// @Tags user
// @Accept json
// @Produce json
// @Param userCreateRequest body handlers.UserCreateRequest true "User creation request"
// @Success 200 {object} handlers.UserCreateResponse "New user id"
// @Failure 400 {object} handlers.ErrorResponse "Malformed body"
// @Failure 409 {object} handlers.ErrorResponse "Login already taken"
// @Router /user [post]
func NewUserCreateHandler(svc UserRegisterer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UserCreateRequest

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}
		if err := validate.Struct(req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "login and password are required"})
			return
		}

		id, err := svc.Register(r.Context(), req.Login, req.Password, req.Mail)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "user already exists"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UserCreateResponse{ID: id})
	}
}
