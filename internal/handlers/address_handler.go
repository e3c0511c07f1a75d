package handlers

import (
	"net/http"

	"maxdata/internal/models"
)

type AddressHandler struct {
	Book []string
}

func (h *AddressHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	book := h.Book
	if book == nil {
		book = models.MockAddresses
	}
	writeJSON(w, http.StatusOK, models.SuggestAddresses(r.URL.Query().Get("q"), book))
}
