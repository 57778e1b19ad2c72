package api

import (
	"errors"
	"net/http"

	"dukaan-be/internal/hero"

	"github.com/go-chi/chi/v5"
)

type HeroHandler struct {
	heroes hero.Service
}

func NewHeroHandler(heroes hero.Service) *HeroHandler {
	return &HeroHandler{heroes: heroes}
}

func (h *HeroHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	sections, err := h.heroes.ListActive(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load hero sections")
		return
	}
	if sections == nil {
		sections = []*hero.Section{}
	}

	respondWithJSON(w, http.StatusOK, sections)
}

func (h *HeroHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	sections, err := h.heroes.ListAll(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load hero sections")
		return
	}
	if sections == nil {
		sections = []*hero.Section{}
	}

	respondWithJSON(w, http.StatusOK, sections)
}

func (h *HeroHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input hero.NewSectionInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(input); err != nil {
		respondWithFieldErrors(w, fieldErrors(err))
		return
	}

	s, err := h.heroes.Create(r.Context(), input)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to create hero section")
		return
	}

	respondWithJSON(w, http.StatusCreated, s)
}

func (h *HeroHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input hero.UpdateSectionInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(input); err != nil {
		respondWithFieldErrors(w, fieldErrors(err))
		return
	}

	s, err := h.heroes.Update(r.Context(), chi.URLParam(r, "sectionID"), input)
	if err != nil {
		if errors.Is(err, hero.ErrSectionNotFound) {
			respondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		respondWithError(w, http.StatusInternalServerError, "failed to update hero section")
		return
	}

	respondWithJSON(w, http.StatusOK, s)
}

func (h *HeroHandler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	var input struct {
		IsActive bool `json:"isActive"`
	}
	if err := decodeJSON(r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s, err := h.heroes.ToggleActive(r.Context(), chi.URLParam(r, "sectionID"), input.IsActive)
	if err != nil {
		if errors.Is(err, hero.ErrSectionNotFound) {
			respondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		respondWithError(w, http.StatusInternalServerError, "failed to toggle hero section")
		return
	}

	respondWithJSON(w, http.StatusOK, s)
}

func (h *HeroHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.heroes.Delete(r.Context(), chi.URLParam(r, "sectionID"))
	if err != nil {
		if errors.Is(err, hero.ErrSectionNotFound) {
			respondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		respondWithError(w, http.StatusInternalServerError, "failed to delete hero section")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "hero section deleted"})
}
