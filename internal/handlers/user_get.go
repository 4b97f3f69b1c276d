package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dkovalev/adboard/internal/logger"
	"github.com/dkovalev/adboard/internal/models"
	"github.com/dkovalev/adboard/internal/services"
)

// UserGetter defines the interface that the service must implement.
type UserGetter interface {
	Get(ctx context.Context, id int64) (*models.UserDB, error)
}

// UserResponse represents a serialized user. The password hash and bearer
// token are never exposed.
// swagger:model UserResponse
type UserResponse struct {
	// User id
	// default: 1
	ID int64 `json:"id"`

	// Login
	// default: alice
	Login string `json:"login"`

	// Mail
	// default: alice@example.com
	Mail *string `json:"mail"`

	// Registration time, ISO-8601
	// default: 2025-01-01T00:00:00Z
	RegistrationTime string `json:"registration_time"`
}

// NewUserGetHandler returns an HTTP handler for fetching a user by id.
// @Summary Get a user
// @Tags user
// @Produce json
// @Param user_id path int true "User id"
// @Success 200 {object} handlers.UserResponse "User"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /user/{user_id} [get]
func NewUserGetHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		id, err := urlParamID(r, "user_id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid user id"})
			return
		}

		user, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: fmt.Sprintf("user %d not found", id)})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UserResponse{
			ID:               user.ID,
			Login:            user.Login,
			Mail:             user.Mail,
			RegistrationTime: user.RegistrationTime.Format(time.RFC3339),
		})
	}
}
