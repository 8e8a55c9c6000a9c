package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"cookbook/apperr"
)

const maxBodyBytes = 1 << 20

// DecodeJSON reads a single JSON object from the body, rejecting unknown fields.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.Invalid("Request body must not be empty", nil)
		}
		return apperr.Invalid("Invalid request body", err)
	}
	if dec.More() {
		return apperr.Invalid("Request body must contain a single JSON object", nil)
	}
	return nil
}
