package handlers

import (
	"net/http"

	"maxdata/internal/models"
	"maxdata/internal/services"
)

type ListingHandler struct {
	Service *services.ListingService
}

type publishRequest struct {
	Listing models.Listing `json:"listing"`
	Cart    []string       `json:"cart"`
}

type previewResponse struct {
	Preview models.Preview      `json:"preview"`
	Missing []models.TabMissing `json:"missing"`
}

func (h *ListingHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.Service.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// Defaults returns the record a fresh editor opens with.
func (h *ListingHandler) Defaults(w http.ResponseWriter, r *http.Request) {
	l := models.NewEditorListing()
	writeJSON(w, http.StatusOK, map[string]any{
		"listing":        l,
		"property_types": models.PropertyTypes,
		"missing":        models.TabSummary(l),
	})
}

func (h *ListingHandler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	var l models.Listing
	if err := decodeJSON(w, r, &l); err != nil {
		writeError(w, err)
		return
	}
	res, err := h.Service.SaveDraft(r.Context(), l)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *ListingHandler) Publish(w http.ResponseWriter, r *http.Request) {
	var req publishRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	res, err := h.Service.Publish(r.Context(), req.Listing, req.Cart)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *ListingHandler) Get(w http.ResponseWriter, r *http.Request) {
	l, err := h.Service.Get(r.Context(), getParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func (h *ListingHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var l models.Listing
	if err := decodeJSON(w, r, &l); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, previewResponse{
		Preview: h.Service.Preview(l),
		Missing: h.Service.Missing(l),
	})
}

func (h *ListingHandler) Card(w http.ResponseWriter, r *http.Request) {
	l, err := h.Service.Get(r.Context(), getParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.BuildCard(l, h.Service.Fallback))
}

func (h *ListingHandler) Cart(w http.ResponseWriter, r *http.Request) {
	addons, err := h.Service.Cart(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count":  len(addons),
		"addons": addons,
	})
}

func (h *ListingHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Clear(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
