package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dkovalev/adboard/internal/logger"
	"github.com/dkovalev/adboard/internal/models"
	"github.com/dkovalev/adboard/internal/services"
)

// AdvertisementUpdater defines the interface that the service must implement.
type AdvertisementUpdater interface {
	Update(ctx context.Context, id int64, patch models.AdvertisementPatch, token string) error
}

// AdvertisementUpdateRequest represents the JSON body for a partial
// advertisement update. Absent fields are left untouched.
// swagger:model AdvertisementUpdateRequest
type AdvertisementUpdateRequest struct {
	// Header
	// default: ad1
	Header *string `json:"header"`

	// Description
	// default: nice adv
	Description *string `json:"description"`

	// Owner user id
	// default: 1
	Owner *int64 `json:"owner"`
}

// AdvertisementUpdateResponse confirms an advertisement update
// swagger:model AdvertisementUpdateResponse
type AdvertisementUpdateResponse struct {
	// default: patched
	Adv string `json:"adv"`
}

// NewAdvertisementUpdateHandler returns an HTTP handler for partially
// updating an advertisement. The token is checked against the stored owner.
// @Summary Update an advertisement
// @Tags adv
// @Accept json
// @Produce json
// @Param token header string true "Owner bearer token"
// @Param adv_id path int true "Advertisement id"
// @Param advertisementUpdateRequest body handlers.AdvertisementUpdateRequest true "Fields to overwrite"
// @Success 200 {object} handlers.AdvertisementUpdateResponse "Confirmation or incorrect-token body"
// @Failure 404 {object} handlers.ErrorResponse "Advertisement not found"
// @Failure 409 {object} handlers.ErrorResponse "Header already taken"
// @Router /adv/{adv_id} [patch]
func NewAdvertisementUpdateHandler(svc AdvertisementUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		id, err := urlParamID(r, "adv_id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid advertisement id"})
			return
		}

		var req AdvertisementUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		patch := models.AdvertisementPatch{
			Header:      req.Header,
			Description: req.Description,
			Owner:       req.Owner,
		}
		token := r.Header.Get(tokenHeader)

		if err := svc.Update(r.Context(), id, patch, token); err != nil {
			switch {
			case errors.Is(err, services.ErrTokenMismatch):
				w.WriteHeader(http.StatusOK)
				json.NewEncoder(w).Encode(IncorrectTokenResponse{Incorrect: "token"})
			case errors.Is(err, services.ErrAdvertisementNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "this advertisement is not found"})
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "owner not found"})
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
		json.NewEncoder(w).Encode(AdvertisementUpdateResponse{Adv: "patched"})
	}
}
