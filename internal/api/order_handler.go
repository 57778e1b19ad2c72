package api

import (
	"errors"
	"net/http"

	"dukaan-be/internal/order"
	"dukaan-be/internal/utils"

	"github.com/go-chi/chi/v5"
)

type OrderHandler struct {
	orders order.Service
}

func NewOrderHandler(orders order.Service) *OrderHandler {
	return &OrderHandler{orders: orders}
}

func (h *OrderHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	orders, err := h.orders.ListForUser(r.Context(), userID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load orders")
		return
	}
	if orders == nil {
		orders = []*order.Order{}
	}

	respondWithJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	o, err := h.orders.GetForUser(r.Context(), userID, chi.URLParam(r, "orderID"))
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			respondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		respondWithError(w, http.StatusInternalServerError, "failed to load order")
		return
	}

	respondWithJSON(w, http.StatusOK, o)
}

func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	o, err := h.orders.Cancel(r.Context(), userID, chi.URLParam(r, "orderID"))
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			respondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, order.ErrCancelNotAllowed):
			respondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			respondWithError(w, http.StatusInternalServerError, "failed to cancel order")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, o)
}

// Admin surface.

func (h *OrderHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	var status *order.Status
	if v := r.URL.Query().Get("status"); v != "" {
		s := order.Status(v)
		status = &s
	}

	orders, err := h.orders.ListAll(r.Context(), status)
	if err != nil {
		if errors.Is(err, order.ErrInvalidStatus) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondWithError(w, http.StatusInternalServerError, "failed to load orders")
		return
	}
	if orders == nil {
		orders = []*order.Order{}
	}

	respondWithJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var input order.UpdateStatusInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(input); err != nil {
		respondWithFieldErrors(w, fieldErrors(err))
		return
	}

	o, err := h.orders.UpdateStatus(r.Context(), chi.URLParam(r, "orderID"), input.Status)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			respondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, order.ErrInvalidStatus):
			respondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, order.ErrOrderFinalized):
			respondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			respondWithError(w, http.StatusInternalServerError, "failed to update status")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, o)
}
