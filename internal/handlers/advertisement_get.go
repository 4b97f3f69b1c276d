package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dkovalev/adboard/internal/logger"
	"github.com/dkovalev/adboard/internal/models"
	"github.com/dkovalev/adboard/internal/services"
)

// AdvertisementGetter defines the interface that the service must implement.
type AdvertisementGetter interface {
	Get(ctx context.Context, id int64) (*models.AdvertisementDB, error)
}

// AdvertisementResponse represents a serialized advertisement
// swagger:model AdvertisementResponse
type AdvertisementResponse struct {
	// Advertisement id
	// default: 1
	ID int64 `json:"id"`

	// Header
	// default: ad1
	Header string `json:"header"`

	// Description
	// default: nice adv
	Description string `json:"description"`

	// Creation time, ISO-8601
	// default: 2025-01-01T00:00:00Z
	DateOfCreation string `json:"date_of_creation"`

	// Owner user id
	// default: 1
	Owner int64 `json:"owner"`
}

// NewAdvertisementGetHandler returns an HTTP handler for fetching an
// advertisement by id.
// @Summary Get an advertisement
// @Tags adv
// @Produce json
// @Param adv_id path int true "Advertisement id"
// @Success 200 {object} handlers.AdvertisementResponse "Advertisement"
// @Failure 404 {object} handlers.ErrorResponse "Advertisement not found"
// @Router /adv/{adv_id} [get]
func NewAdvertisementGetHandler(svc AdvertisementGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		id, err := urlParamID(r, "adv_id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid advertisement id"})
			return
		}

		adv, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAdvertisementNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "this advertisement is not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AdvertisementResponse{
			ID:             adv.ID,
			Header:         adv.Header,
			Description:    adv.Description,
			DateOfCreation: adv.DateOfCreation.Format(time.RFC3339),
			Owner:          adv.Owner,
		})
	}
}
