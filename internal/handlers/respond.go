package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"maxdata/internal/askmax"
	"maxdata/internal/models"
	"maxdata/internal/repositories"
	"maxdata/internal/services"
)

const maxBodyBytes = 1 << 20

var errInvalidBody = errors.New("invalid request body")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errInvalidBody
	}
	return nil
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, repositories.ErrListingNotFound),
		errors.Is(err, repositories.ErrOrderNotFound),
		errors.Is(err, repositories.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, askmax.ErrNotReady),
		errors.Is(err, askmax.ErrNoPendingField),
		errors.Is(err, askmax.ErrInvalidStep):
		return http.StatusConflict
	case errors.Is(err, errInvalidBody),
		errors.Is(err, models.ErrUnknownAddon),
		errors.Is(err, models.ErrEmptyCart),
		errors.Is(err, models.ErrPhotoIndex),
		errors.Is(err, askmax.ErrEmptyPrompt),
		errors.Is(err, askmax.ErrEmptyReply),
		errors.Is(err, services.ErrEmptyPhoto):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrUnsupportedImage):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, services.ErrImageTooLarge):
		return http.StatusRequestEntityTooLarge
	case isDuplicateKeyError(err):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = http.StatusText(status)
	}
	http.Error(w, msg, status)
}
