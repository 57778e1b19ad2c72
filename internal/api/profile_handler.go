package api

import (
	"errors"
	"net/http"

	"dukaan-be/internal/user"
	"dukaan-be/internal/utils"
)

type ProfileHandler struct {
	users user.Service
}

func NewProfileHandler(users user.Service) *ProfileHandler {
	return &ProfileHandler{users: users}
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	email := utils.GetUserEmailFromContext(r.Context())

	p, err := h.users.GetProfile(r.Context(), userID, email)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	respondWithJSON(w, http.StatusOK, p)
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	var input user.UpdateProfileInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(input); err != nil {
		respondWithFieldErrors(w, fieldErrors(err))
		return
	}

	p, err := h.users.UpdateProfile(r.Context(), userID, input)
	if err != nil {
		if errors.Is(err, user.ErrProfileNotFound) {
			respondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		respondWithError(w, http.StatusInternalServerError, "failed to update profile")
		return
	}

	respondWithJSON(w, http.StatusOK, p)
}
