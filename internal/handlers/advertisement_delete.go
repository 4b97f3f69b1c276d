package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dkovalev/adboard/internal/logger"
	"github.com/dkovalev/adboard/internal/services"
)

// AdvertisementDeleter defines the interface that the service must implement.
type AdvertisementDeleter interface {
	Delete(ctx context.Context, id int64, token string) error
}

// AdvertisementDeleteResponse confirms an advertisement deletion
// swagger:model AdvertisementDeleteResponse
type AdvertisementDeleteResponse struct {
	// default: deleted
	Adv string `json:"adv"`
}

// NewAdvertisementDeleteHandler returns an HTTP handler for deleting an
// advertisement. The token is checked against the stored owner.
// @Summary Delete an advertisement
// @Tags adv
// @Produce json
// @Param token header string true "Owner bearer token"
// @Param adv_id path int true "Advertisement id"
// @Success 200 {object} handlers.AdvertisementDeleteResponse "Confirmation or incorrect-token body"
// @Failure 404 {object} handlers.ErrorResponse "Advertisement not found"
// @Router /adv/{adv_id} [delete]
func NewAdvertisementDeleteHandler(svc AdvertisementDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		id, err := urlParamID(r, "adv_id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid advertisement id"})
			return
		}

		token := r.Header.Get(tokenHeader)

		if err := svc.Delete(r.Context(), id, token); err != nil {
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
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AdvertisementDeleteResponse{Adv: "deleted"})
	}
}
