package handlers

import (
	"net/http"

	"maxdata/internal/services"
)

type AskMaxHandler struct {
	Service *services.AskMaxService
}

type startRequest struct {
	Prompt     string `json:"prompt"`
	Suggestion string `json:"suggestion"`
}

type replyRequest struct {
	Answer string `json:"answer"`
}

func (h *AskMaxHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	view, err := h.Service.Start(r.Context(), req.Prompt, req.Suggestion)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

func (h *AskMaxHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.Service.Get(r.Context(), getParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *AskMaxHandler) Reply(w http.ResponseWriter, r *http.Request) {
	var req replyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	view, err := h.Service.Reply(r.Context(), getParam(r, "id"), req.Answer)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *AskMaxHandler) Continue(w http.ResponseWriter, r *http.Request) {
	view, err := h.Service.Continue(r.Context(), getParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
