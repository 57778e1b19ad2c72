package api

import (
	"errors"
	"net/http"

	"dukaan-be/internal/review"
	"dukaan-be/internal/utils"
)

type ReviewHandler struct {
	reviews review.Service
}

func NewReviewHandler(reviews review.Service) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

func (h *ReviewHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	var input review.SubmitInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(input); err != nil {
		respondWithFieldErrors(w, fieldErrors(err))
		return
	}

	rv, err := h.reviews.Submit(r.Context(), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, review.ErrInvalidRating):
			respondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, review.ErrNotEligible):
			respondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, review.ErrAlreadyReviewed):
			respondWithError(w, http.StatusConflict, err.Error())
		default:
			respondWithError(w, http.StatusInternalServerError, "failed to submit review")
		}
		return
	}

	respondWithJSON(w, http.StatusCreated, rv)
}
