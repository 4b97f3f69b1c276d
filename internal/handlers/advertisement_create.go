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

// AdvertisementCreator defines the interface that the service must implement.
type AdvertisementCreator interface {
	Create(ctx context.Context, header, description string, owner int64, token string) (int64, error)
}

// AdvertisementCreateRequest represents the JSON body for advertisement creation
// swagger:model AdvertisementCreateRequest
type AdvertisementCreateRequest struct {
	// Header, unique across advertisements
	// required: true
	// default: ad1
	Header string `json:"header" validate:"required"`

	// Description
	// required: true
	// default: nice adv
	Description string `json:"description" validate:"required"`

	// Owner user id
	// required: true
	// default: 1
	Owner int64 `json:"owner" validate:"required,gt=0"`
}

// NewAdvertisementCreateHandler returns an HTTP handler for creating an
// advertisement. The caller must send the owner's bearer token in the
// "token" header; a mismatch yields a 200 body {"incorrect":"token"}.
// @Summary Create an advertisement
// @Tags adv
// @Accept json
// @Produce json
// @Param token header string true "Owner bearer token"
// @Param advertisementCreateRequest body handlers.AdvertisementCreateRequest true "Advertisement creation request"
// @Success 200 {object} map[string]string "Confirmation keyed by header, or incorrect-token body"
// @Failure 404 {object} handlers.ErrorResponse "Owner not found"
// @Failure 409 {object} handlers.ErrorResponse "Header already taken"
// @Router /adv [post]
func NewAdvertisementCreateHandler(svc AdvertisementCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req AdvertisementCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}
		if err := validate.Struct(req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "header, description and owner are required"})
			return
		}

		token := r.Header.Get(tokenHeader)

		_, err := svc.Create(r.Context(), req.Header, req.Description, req.Owner, token)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrTokenMismatch):
				w.WriteHeader(http.StatusOK)
				json.NewEncoder(w).Encode(IncorrectTokenResponse{Incorrect: "token"})
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: fmt.Sprintf("user %d not found", req.Owner)})
			case errors.Is(err, services.ErrAdvertisementExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "adv already exists"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{req.Header: "created successfully"})
	}
}
