package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"trivia/pkg/types"
)

const (
	labelNotFound         = "NOT FOUND"
	labelBadEntry         = "BAD ENTRY"
	labelMethodNotAllowed = "METHOD NOT ALLOWED"
	labelInternal         = "INTERNAL SERVER ERROR"
)

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError maps err onto one of the fixed error bodies. Only the label is
// sent; the cause is logged.
func (s *Service) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case types.IsNotFound(err):
		s.requestLogger(r).WithError(err).Debug("resource not found")
		s.notFound(w)
	case errors.Is(err, types.ErrInvalidInput):
		s.requestLogger(r).WithError(err).Info("rejected request")
		s.badEntry(w)
	default:
		s.requestLogger(r).WithError(err).Error("request failed")
		s.internalServerError(w)
	}
}

func (s *Service) notFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, errorResponse{Success: false, Error: labelNotFound})
}

func (s *Service) badEntry(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Success: false, Error: labelBadEntry})
}

func (s *Service) internalServerError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, errorResponse{Success: false, Error: labelInternal})
}

func (s *Service) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	s.notFound(w)
}

func (s *Service) handleMethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Success: false, Error: labelMethodNotAllowed})
}

// decodeBody reads a JSON request body into dst. Any decoding failure,
// including an empty body, is ErrInvalidInput.
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.Join(types.ErrInvalidInput, err)
	}
	return nil
}

// pathID parses the :id route parameter. The route pattern only admits
// integers, so a failure here means the value overflowed and is reported as
// notFound.
func pathID(r *http.Request, notFound error) (int, error) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return 0, errors.Join(notFound, err)
	}
	return id, nil
}
