package api

import (
	"errors"
	"net/http"

	"dukaan-be/internal/cart"
	"dukaan-be/internal/utils"

	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	carts cart.Service
}

func NewCartHandler(carts cart.Service) *CartHandler {
	return &CartHandler{carts: carts}
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	c, err := h.carts.GetCart(r.Context(), userID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load cart")
		return
	}

	respondWithJSON(w, http.StatusOK, c)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	var input cart.AddItemInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(input); err != nil {
		respondWithFieldErrors(w, fieldErrors(err))
		return
	}

	c, err := h.carts.AddItem(r.Context(), userID, input)
	if err != nil {
		if errors.Is(err, cart.ErrProductUnavailable) {
			respondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		respondWithError(w, http.StatusInternalServerError, "failed to add item")
		return
	}

	respondWithJSON(w, http.StatusOK, c)
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	var input cart.UpdateQuantityInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.carts.UpdateQuantity(r.Context(), userID, chi.URLParam(r, "productID"), input.Quantity)
	if err != nil {
		if errors.Is(err, cart.ErrItemNotFound) {
			respondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		respondWithError(w, http.StatusInternalServerError, "failed to update quantity")
		return
	}

	respondWithJSON(w, http.StatusOK, c)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	c, err := h.carts.RemoveItem(r.Context(), userID, chi.URLParam(r, "productID"))
	if err != nil {
		if errors.Is(err, cart.ErrItemNotFound) {
			respondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		respondWithError(w, http.StatusInternalServerError, "failed to remove item")
		return
	}

	respondWithJSON(w, http.StatusOK, c)
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	if err := h.carts.Clear(r.Context(), userID); err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to clear cart")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "cart cleared"})
}
