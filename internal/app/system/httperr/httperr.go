// Package httperr maps internal error kinds to HTTP status codes.
//
// Handlers resolve every store or parse error into one of three kinds and
// hand it to Write; this is the only place error kinds become status codes,
// so the mapping stays in one table and is testable without a store.
// All error responses carry an empty body: no error detail ever reaches
// the client.
package httperr

import "net/http"

// Kind classifies an error for the HTTP boundary.
type Kind int

const (
	// BadRequest covers malformed input the store never sees,
	// such as an identifier that fails to parse.
	BadRequest Kind = iota + 1
	// NotFound covers a record absent at fetch time, or a write that
	// matched zero documents.
	NotFound
	// Internal covers every driver, network, or server-side store failure.
	Internal
)

// Status returns the HTTP status code for the kind.
func (k Kind) Status() int {
	switch k {
	case BadRequest:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Write emits the status for the kind with an empty body.
func Write(w http.ResponseWriter, k Kind) {
	w.WriteHeader(k.Status())
}
