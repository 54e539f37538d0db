package handler

import (
	"net/http"
	"testing"
)

func TestCreateCandidateValidation(t *testing.T) {
	h := &AdminHandler{}

	tests := []struct {
		name string
		body string
	}{
		{"empty body", "{}"},
		{"missing party", `{"name":"Alpha"}`},
		{"missing name", `{"party":"Red"}`},
		{"blank name", `{"name":"  ","party":"Red"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newJSONContext(http.MethodPost, "/admin/candidates", tt.body)
			if err := h.CreateCandidate(c); err != nil {
				t.Fatalf("handler returned error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestUpdateCandidateInvalidID(t *testing.T) {
	h := &AdminHandler{}

	for _, id := range []string{"abc", "0", "-1", ""} {
		t.Run("id="+id, func(t *testing.T) {
			c, rec := newJSONContext(http.MethodPut, "/admin/candidates/"+id, `{"name":"Alpha","party":"Red"}`)
			c.SetParamNames("id")
			c.SetParamValues(id)
			if err := h.UpdateCandidate(c); err != nil {
				t.Fatalf("handler returned error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestDeleteCandidateInvalidID(t *testing.T) {
	h := &AdminHandler{}

	c, rec := newJSONContext(http.MethodDelete, "/admin/candidates/xyz", "")
	c.SetParamNames("id")
	c.SetParamValues("xyz")
	if err := h.DeleteCandidate(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
