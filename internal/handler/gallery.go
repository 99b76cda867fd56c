package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/torioweb/cj-hair-lounge/backend/internal/domain"
)

func (h *Handler) GetGalleryImages(w http.ResponseWriter, r *http.Request) {
	images, err := h.repository.GetAllGalleryImages()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "gallery fetched", images)
}

func (h *Handler) AddGalleryImage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ImageURL     string `json:"imageUrl" validate:"required,url,max=500"`
		Title        string `json:"title" validate:"max=200"`
		Description  string `json:"description" validate:"max=1000"`
		DisplayOrder int32  `json:"displayOrder" validate:"min=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	img := &domain.GalleryImage{
		ImageURL:     req.ImageURL,
		Title:        strings.TrimSpace(req.Title),
		Description:  strings.TrimSpace(req.Description),
		DisplayOrder: req.DisplayOrder,
	}

	if err := h.repository.CreateGalleryImage(img); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "image added", img)
}

func (h *Handler) DeleteGalleryImage(w http.ResponseWriter, r *http.Request) {
	idParam := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		h.errorResponse(w, r, "invalid image ID")
		return
	}

	if err := h.repository.DeleteGalleryImage(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "image removed", nil)
}
