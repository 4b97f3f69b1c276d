package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dkovalev/adboard/internal/logger"
	"github.com/dkovalev/adboard/internal/services"
)

// UserDeleter defines the interface that the service must implement.
type UserDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// UserDeleteResponse confirms a user deletion
// swagger:model UserDeleteResponse
type UserDeleteResponse struct {
	// default: deleted
	User string `json:"user"`
}

// NewUserDeleteHandler returns an HTTP handler for deleting a user.
// @Summary Delete a user
// @Tags user
// @Produce json
// @Param user_id path int true "User id"
// @Success 200 {object} handlers.UserDeleteResponse "Confirmation"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /user/{user_id} [delete]
func NewUserDeleteHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		id, err := urlParamID(r, "user_id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid user id"})
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
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
		json.NewEncoder(w).Encode(UserDeleteResponse{User: "deleted"})
	}
}
