package api

import (
	"errors"
	"net/http"

	"dukaan-be/internal/category"

	"github.com/go-chi/chi/v5"
)

type CategoryHandler struct {
	categories category.Service
}

func NewCategoryHandler(categories category.Service) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.List(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load categories")
		return
	}
	if categories == nil {
		categories = []*category.Category{}
	}

	respondWithJSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.categories.GetByID(r.Context(), chi.URLParam(r, "categoryID"))
	if err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			respondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		respondWithError(w, http.StatusInternalServerError, "failed to load category")
		return
	}

	respondWithJSON(w, http.StatusOK, c)
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input category.NewCategoryInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(input); err != nil {
		respondWithFieldErrors(w, fieldErrors(err))
		return
	}

	c, err := h.categories.Create(r.Context(), input)
	if err != nil {
		if errors.Is(err, category.ErrCategoryNameTaken) {
			respondWithError(w, http.StatusConflict, err.Error())
			return
		}
		respondWithError(w, http.StatusInternalServerError, "failed to create category")
		return
	}

	respondWithJSON(w, http.StatusCreated, c)
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input category.UpdateCategoryInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(input); err != nil {
		respondWithFieldErrors(w, fieldErrors(err))
		return
	}

	c, err := h.categories.Update(r.Context(), chi.URLParam(r, "categoryID"), input)
	if err != nil {
		switch {
		case errors.Is(err, category.ErrCategoryNotFound):
			respondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, category.ErrCategoryNameTaken):
			respondWithError(w, http.StatusConflict, err.Error())
		default:
			respondWithError(w, http.StatusInternalServerError, "failed to update category")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, c)
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.categories.Delete(r.Context(), chi.URLParam(r, "categoryID"))
	if err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			respondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		respondWithError(w, http.StatusInternalServerError, "failed to delete category")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "category deleted"})
}
