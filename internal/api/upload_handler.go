package api

import (
	"net/http"

	"dukaan-be/internal/upload"
)

// maxUploadSize caps image uploads at 10 MiB.
const maxUploadSize = 10 << 20

type UploadHandler struct {
	gateway upload.Gateway
}

func NewUploadHandler(gateway upload.Gateway) *UploadHandler {
	return &UploadHandler{gateway: gateway}
}

func (h *UploadHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondWithError(w, http.StatusBadRequest, "file too large or malformed form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	folder := r.FormValue("folder")
	if folder == "" {
		folder = "products"
	}

	res, err := h.gateway.UploadImage(r.Context(), header.Filename, file, folder)
	if err != nil {
		respondWithError(w, http.StatusBadGateway, "image upload failed")
		return
	}

	respondWithJSON(w, http.StatusCreated, res)
}
