package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
)

// ErrMissingInput indicates the request carried no document.
type ErrMissingInput struct {
	Field string
}

func (e *ErrMissingInput) Error() string {
	return fmt.Sprintf("missing form file %q", e.Field)
}

// ErrUnsupportedMedia indicates the uploaded part is not a PDF.
type ErrUnsupportedMedia struct {
	Filename    string
	ContentType string
}

func (e *ErrUnsupportedMedia) Error() string {
	return fmt.Sprintf("unsupported upload %s (%s)", e.Filename, e.ContentType)
}

// ErrProcessing wraps any failure after a document was accepted: decoding,
// oversized forms or a panic during analysis.
type ErrProcessing struct {
	Err error
}

func (e *ErrProcessing) Error() string {
	return fmt.Sprintf("processing failed: %v", e.Err)
}

func (e *ErrProcessing) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		missing     *ErrMissingInput
		unsupported *ErrUnsupportedMedia
	)
	switch {
	case errors.As(err, &missing), errors.As(err, &unsupported):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage is the only error text returned to clients; causes are logged.
func publicMessage(err error) string {
	var (
		missing     *ErrMissingInput
		unsupported *ErrUnsupportedMedia
	)
	switch {
	case errors.As(err, &missing):
		return "No PDF file uploaded"
	case errors.As(err, &unsupported):
		return "Please upload a PDF file"
	default:
		return "Error processing PDF file"
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("ERROR: Failed to encode JSON response: %v", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, component string, err error) {
	status := HTTPStatus(err)
	log.Printf("[%s] request_id=%s status=%d err=%v", component, RequestIDFrom(r.Context()), status, err)
	writeJSON(w, status, errorResponse{Error: publicMessage(err)})
}
