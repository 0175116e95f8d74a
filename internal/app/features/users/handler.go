package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	userstore "github.com/dalemusser/userhub/internal/app/store/users"
	"github.com/dalemusser/userhub/internal/app/system/httperr"
	"github.com/dalemusser/userhub/internal/app/system/timeouts"
	"github.com/dalemusser/userhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds dependencies for the users resource.
type Handler struct {
	Store *userstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a users Handler backed by the given database.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: userstore.New(db),
		Log:   logger,
	}
}

// userPayload is the inbound body for create and update. Both fields are
// optional; a client-supplied id has no field to land in and is ignored.
type userPayload struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// Create handles POST /users.
//
// A fresh ObjectID is always generated server-side; the record is returned
// in full, including the generated id. Store failure yields 500 with an
// empty body.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var p userPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		httperr.Write(w, httperr.BadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Store.Create(ctx, p.Name, p.Email)
	if err != nil {
		h.Log.Error("create user failed", zap.Error(err))
		httperr.Write(w, httperr.Internal)
		return
	}
	writeJSON(w, u)
}

// GetOne handles GET /users/{id}.
func (h *Handler) GetOne(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httperr.Write(w, httperr.BadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Store.GetByID(ctx, id)
	if err != nil {
		h.fail(w, "get user failed", id, err)
		return
	}
	writeJSON(w, u)
}

// GetAll handles GET /users.
//
// The whole collection is materialized before responding. An empty
// collection is reported as 404, not as an empty 200 array; existing
// clients depend on that convention.
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	users, err := h.Store.GetAll(ctx)
	if err != nil {
		h.Log.Error("list users failed", zap.Error(err))
		httperr.Write(w, httperr.Internal)
		return
	}
	if len(users) == 0 {
		httperr.Write(w, httperr.NotFound)
		return
	}
	writeJSON(w, users)
}

// Update handles PUT /users/{id} with field-level merge semantics.
//
// For name and email independently, the client value wins when present and
// the stored value is kept otherwise, so omitting a field never erases it.
// The write targets the existing record only (no upsert), and success
// requires the store to report a modified document: a merge that changes
// nothing is indistinguishable from a failed update and maps to 500.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httperr.Write(w, httperr.BadRequest)
		return
	}

	var p userPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		httperr.Write(w, httperr.BadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	existing, err := h.Store.GetByID(ctx, id)
	if err != nil {
		h.fail(w, "fetch user for update failed", id, err)
		return
	}

	merged := models.User{
		ID:    id,
		Name:  coalesce(p.Name, existing.Name),
		Email: coalesce(p.Email, existing.Email),
	}

	if err := h.Store.UpdateFields(ctx, id, merged); err != nil {
		h.Log.Error("update user failed", zap.String("id", id.Hex()), zap.Error(err))
		httperr.Write(w, httperr.Internal)
		return
	}
	writeJSON(w, merged)
}

// Delete handles DELETE /users/{id}.
//
// The record is fetched first so its content can be echoed back. A delete
// that removes zero documents (e.g. a concurrent delete won the race
// between fetch and delete) is a 404, not an error.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httperr.Write(w, httperr.BadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Store.GetByID(ctx, id)
	if err != nil {
		h.fail(w, "fetch user for delete failed", id, err)
		return
	}

	deleted, err := h.Store.Delete(ctx, id)
	if err != nil {
		h.Log.Error("delete user failed", zap.String("id", id.Hex()), zap.Error(err))
		httperr.Write(w, httperr.Internal)
		return
	}
	if deleted != 1 {
		httperr.Write(w, httperr.NotFound)
		return
	}
	writeJSON(w, u)
}

// fail resolves a store read error into the HTTP boundary: absent records
// become 404, everything else is logged and becomes 500.
func (h *Handler) fail(w http.ResponseWriter, msg string, id primitive.ObjectID, err error) {
	if errors.Is(err, userstore.ErrNotFound) {
		httperr.Write(w, httperr.NotFound)
		return
	}
	h.Log.Error(msg, zap.String("id", id.Hex()), zap.Error(err))
	httperr.Write(w, httperr.Internal)
}

// coalesce returns the client value when supplied, else the stored value.
func coalesce(client, stored *string) *string {
	if client != nil {
		return client
	}
	return stored
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
