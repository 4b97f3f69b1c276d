package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dkovalev/adboard/internal/logger"
	"github.com/dkovalev/adboard/internal/models"
	"github.com/dkovalev/adboard/internal/services"
)

// UserUpdater defines the interface that the service must implement.
type UserUpdater interface {
	Update(ctx context.Context, id int64, patch models.UserPatch) error
}

// UserUpdateRequest represents the JSON body for a partial user update.
// Absent fields are left untouched.
// swagger:model UserUpdateRequest
type UserUpdateRequest struct {
	// Login
	// default: alice
	Login *string `json:"login"`

	// Password, re-hashed before storing
	// default: secret
	Password *string `json:"password"`

	// Mail
	// default: alice@example.com
	Mail *string `json:"mail"`
}

// UserUpdateResponse confirms a user update
// swagger:model UserUpdateResponse
type UserUpdateResponse struct {
	// default: updated
	User string `json:"user"`
}

// NewUserUpdateHandler returns an HTTP handler for partially updating a user.
// @Summary Update a user
// @Description Overwrites the supplied allow-listed fields of an existing user.
// @Tags user
// @Accept json
// @Produce json
// @Param user_id path int true "User id"
// @Param userUpdateRequest body handlers.UserUpdateRequest true "Fields to overwrite"
// @Success 200 {object} handlers.UserUpdateResponse "Confirmation"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 409 {object} handlers.ErrorResponse "Login already taken"
// @Router /user/{user_id} [patch]
func NewUserUpdateHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		id, err := urlParamID(r, "user_id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid user id"})
			return
		}

		var req UserUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		patch := models.UserPatch{
			Login:    req.Login,
			Password: req.Password,
			Mail:     req.Mail,
		}

		if err := svc.Update(r.Context(), id, patch); err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: fmt.Sprintf("user %d not found", id)})
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
		json.NewEncoder(w).Encode(UserUpdateResponse{User: "updated"})
	}
}
