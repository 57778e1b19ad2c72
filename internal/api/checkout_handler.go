package api

import (
	"errors"
	"net/http"

	"dukaan-be/internal/checkout"
	"dukaan-be/internal/utils"
)

type CheckoutHandler struct {
	checkouts checkout.Service
}

func NewCheckoutHandler(checkouts checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{checkouts: checkouts}
}

func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	var input checkout.Input
	if err := decodeJSON(r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.checkouts.Checkout(r.Context(), userID, input)
	if err != nil {
		var verr *checkout.ValidationError
		switch {
		case errors.As(err, &verr):
			respondWithFieldErrors(w, verr.Fields)
		case errors.Is(err, checkout.ErrEmptyCart):
			respondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, checkout.ErrProductNotFound):
			respondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, checkout.ErrInvalidQuantity),
			errors.Is(err, checkout.ErrUnknownDeliveryType):
			respondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, checkout.ErrCheckoutInFlight):
			respondWithError(w, http.StatusConflict, err.Error())
		default:
			respondWithError(w, http.StatusInternalServerError, "checkout failed")
		}
		return
	}

	respondWithJSON(w, http.StatusCreated, res)
}
