// Link-Lab - Graph-Based Movie Recommendation Service
// Copyright 2026 Muhammad Ahmad Amin
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/muhammad-ahmad-amin/Link-Lab

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/muhammad-ahmad-amin/Link-Lab/internal/engine"
	"github.com/muhammad-ahmad-amin/Link-Lab/internal/graph"
	"github.com/muhammad-ahmad-amin/Link-Lab/internal/logging"
	"github.com/muhammad-ahmad-amin/Link-Lab/internal/models"
	"github.com/muhammad-ahmad-amin/Link-Lab/internal/store"
	"github.com/muhammad-ahmad-amin/Link-Lab/internal/validation"
)

// sanitizeLogValue escapes control characters so request-supplied strings
// cannot forge log lines.
func sanitizeLogValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			b.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// respondJSON writes the envelope with an FNV-1a ETag.
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("ETag", generateETag(data))
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("write response")
	}
}

func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return strconv.FormatUint(uint64(hash), 16)
}

// respondError writes an error envelope and logs the underlying cause.
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	if err != nil {
		logging.Error().
			Str("code", code).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("api error")
	}
	respondJSON(w, status, &models.APIResponse{
		Status:   "error",
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
		Error: &models.APIError{
			Code:    code,
			Message: message,
		},
	})
}

// respondEngineError maps error kinds from the graph and engine layers to
// HTTP statuses: unknown ids are 404, bad input 400, range and blend
// violations 422, duplicates 409. Anything unrecognized is a 500.
func respondEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, graph.ErrUnknownUser),
		errors.Is(err, graph.ErrUnknownMovie),
		errors.Is(err, store.ErrNoSnapshot):
		respondError(w, http.StatusNotFound, models.ErrCodeNotFound, err.Error(), nil)
	case errors.Is(err, graph.ErrUnknownReference),
		errors.Is(err, engine.ErrInvalidMethod):
		respondError(w, http.StatusBadRequest, models.ErrCodeBadRequest, err.Error(), nil)
	case errors.Is(err, graph.ErrInvalidRange),
		errors.Is(err, engine.ErrInvalidWeights):
		respondError(w, http.StatusUnprocessableEntity, models.ErrCodeUnprocessable, err.Error(), nil)
	case errors.Is(err, graph.ErrDuplicateID):
		respondError(w, http.StatusConflict, models.ErrCodeConflict, err.Error(), nil)
	default:
		respondError(w, http.StatusInternalServerError, models.ErrCodeInternal, "internal error", err)
	}
}

// decodeJSON decodes a request body, rejecting unknown fields.
func decodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

// validateRequest runs struct-tag validation and converts failures to the
// API error shape.
func validateRequest(v interface{}) *models.APIError {
	verr := validation.ValidateStruct(v)
	if verr == nil {
		return nil
	}
	return &models.APIError{
		Code:    models.ErrCodeBadRequest,
		Message: verr.Error(),
	}
}

// getIntParam reads an integer query parameter, falling back to def when
// absent or malformed.
func getIntParam(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// getFloatParam reads a float query parameter with a fallback.
func getFloatParam(r *http.Request, name string, def float64) float64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}

// ok wraps data in a success envelope with timing metadata.
func ok(data interface{}, started time.Time, count int) *models.APIResponse {
	return &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now().UTC(),
			QueryTimeMS: float64(time.Since(started).Microseconds()) / 1000.0,
			Count:       count,
		},
	}
}
