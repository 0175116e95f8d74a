package httperr_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/userhub/internal/app/system/httperr"
)

func TestKind_Status(t *testing.T) {
	cases := []struct {
		name string
		kind httperr.Kind
		want int
	}{
		{"bad request", httperr.BadRequest, http.StatusBadRequest},
		{"not found", httperr.NotFound, http.StatusNotFound},
		{"internal", httperr.Internal, http.StatusInternalServerError},
		{"zero value falls back to internal", httperr.Kind(0), http.StatusInternalServerError},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.kind.Status(); got != c.want {
				t.Errorf("Status(): got %d, want %d", got, c.want)
			}
		})
	}
}

func TestWrite_EmptyBody(t *testing.T) {
	rec := httptest.NewRecorder()
	httperr.Write(rec, httperr.NotFound)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", rec.Body.String())
	}
}
