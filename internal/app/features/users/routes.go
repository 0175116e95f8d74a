// internal/app/features/users/routes.go
package users

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the users resource.
// It is mounted under /users.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Create)
	r.Get("/", h.GetAll)
	r.Get("/{id}", h.GetOne)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}
