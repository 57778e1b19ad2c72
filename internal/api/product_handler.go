package api

import (
	"errors"
	"net/http"
	"strconv"

	"dukaan-be/internal/product"
	"dukaan-be/internal/review"
	"dukaan-be/internal/utils"

	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	products product.Service
	reviews  review.Service
}

func NewProductHandler(products product.Service, reviews review.Service) *ProductHandler {
	return &ProductHandler{products: products, reviews: reviews}
}

// parseCatalogQuery maps list query parameters onto the catalog filter and
// sort. Unknown sort values fall back to the defaults.
func parseCatalogQuery(r *http.Request) (product.Filter, product.Sort) {
	q := r.URL.Query()

	var filter product.Filter
	if v := q.Get("category"); v != "" {
		filter.CategoryID = &v
	}
	if v := q.Get("search"); v != "" {
		filter.Search = &v
	}
	if v := q.Get("min_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = &f
		}
	}
	if v := q.Get("max_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = &f
		}
	}

	srt := product.Sort{
		Field: product.SortField(q.Get("sort")),
		Order: product.SortOrder(q.Get("order")),
	}
	return filter, srt
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, srt := parseCatalogQuery(r)

	products, err := h.products.GetCatalog(r.Context(), filter, srt)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load products")
		return
	}

	respondWithJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.products.GetProductByID(r.Context(), chi.URLParam(r, "productID"))
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			respondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		respondWithError(w, http.StatusInternalServerError, "failed to load product")
		return
	}

	respondWithJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	out, err := h.reviews.ListByProduct(r.Context(), chi.URLParam(r, "productID"))
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load reviews")
		return
	}

	respondWithJSON(w, http.StatusOK, out)
}

func (h *ProductHandler) ReviewEligibility(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	elig, err := h.reviews.CheckEligibility(r.Context(), userID, chi.URLParam(r, "productID"))
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to check eligibility")
		return
	}

	respondWithJSON(w, http.StatusOK, elig)
}

// Admin surface.

func (h *ProductHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.ListAll(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load products")
		return
	}

	respondWithJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input product.NewProductInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(input); err != nil {
		respondWithFieldErrors(w, fieldErrors(err))
		return
	}

	p, err := h.products.Create(r.Context(), input)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to create product")
		return
	}

	respondWithJSON(w, http.StatusCreated, p)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input product.UpdateProductInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(input); err != nil {
		respondWithFieldErrors(w, fieldErrors(err))
		return
	}

	p, err := h.products.Update(r.Context(), chi.URLParam(r, "productID"), input)
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			respondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		respondWithError(w, http.StatusInternalServerError, "failed to update product")
		return
	}

	respondWithJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.products.Delete(r.Context(), chi.URLParam(r, "productID"))
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			respondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		respondWithError(w, http.StatusInternalServerError, "failed to delete product")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "product deleted"})
}
