package handlers

import (
	"io"
	"mime/multipart"
	"net/http"

	"maxdata/internal/services"
)

const photoFormField = "photos"

type PhotoHandler struct {
	Service *services.PhotoService
	// MaxMemory bounds the multipart form kept in memory.
	MaxMemory int64
}

type replaceRequest struct {
	Photos []string `json:"photos"`
	Index  int      `json:"index"`
	URL    string   `json:"url"`
}

// collectImageFiles gathers all files under the given form keys.
func collectImageFiles(form *multipart.Form, keys ...string) []*multipart.FileHeader {
	if form == nil {
		return nil
	}

	var result []*multipart.FileHeader
	for _, key := range keys {
		if headers, ok := form.File[key]; ok {
			result = append(result, headers...)
		}
	}
	return result
}

// Upload stores every file of the photos field and returns the new photo
// list. Existing photos may be sent back as repeated "existing" values.
func (h *PhotoHandler) Upload(w http.ResponseWriter, r *http.Request) {
	maxMemory := h.MaxMemory
	if maxMemory <= 0 {
		maxMemory = 32 << 20
	}
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}
	files := collectImageFiles(r.MultipartForm, photoFormField)
	if len(files) == 0 {
		http.Error(w, "no photos uploaded", http.StatusBadRequest)
		return
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		data, err := readFormFile(fh)
		if err != nil {
			http.Error(w, "failed to read uploaded file", http.StatusBadRequest)
			return
		}
		url, err := h.Service.Upload(r.Context(), data, fh.Filename)
		if err != nil {
			writeError(w, err)
			return
		}
		urls = append(urls, url)
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"uploaded": urls,
		"photos":   h.Service.Attach(r.MultipartForm.Value["existing"], urls...),
	})
}

func (h *PhotoHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var req replaceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	photos, err := h.Service.Replace(req.Photos, req.Index, req.URL)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"photos": photos})
}

func readFormFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
