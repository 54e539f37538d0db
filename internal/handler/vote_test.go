package handler

import (
	"net/http"
	"testing"
)

func TestCastRequiresAuthenticatedUser(t *testing.T) {
	h := &VoteHandler{}

	// No user_id in context: JWTAuth never ran (or was bypassed).
	c, rec := newJSONContext(http.MethodPost, "/vote", `{"candidate_id":1}`)
	if err := h.Cast(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestCastValidation(t *testing.T) {
	h := &VoteHandler{}

	tests := []struct {
		name string
		body string
	}{
		{"not json", "votes-for-everyone"},
		{"empty body", "{}"},
		{"zero candidate id", `{"candidate_id":0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newJSONContext(http.MethodPost, "/vote", tt.body)
			c.Set("user_id", uint64(1))
			if err := h.Cast(c); err != nil {
				t.Fatalf("handler returned error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}
