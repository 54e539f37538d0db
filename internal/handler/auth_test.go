package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/online-voting/internal/config"
)

// newJSONContext builds an echo context carrying a JSON body, the way the
// front end calls the API.
func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegisterValidation(t *testing.T) {
	h := &AuthHandler{Cfg: config.Config{BcryptCost: 4}}

	tests := []struct {
		name string
		body string
	}{
		{"not json", "this is not json"},
		{"empty body", "{}"},
		{"missing full_name", `{"email":"a@x.com","password":"p1"}`},
		{"missing email", `{"full_name":"Alice","password":"p1"}`},
		{"missing password", `{"full_name":"Alice","email":"a@x.com"}`},
		{"blank full_name", `{"full_name":"   ","email":"a@x.com","password":"p1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newJSONContext(http.MethodPost, "/register", tt.body)
			if err := h.Register(c); err != nil {
				t.Fatalf("handler returned error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestLoginValidation(t *testing.T) {
	h := &AuthHandler{}

	tests := []struct {
		name string
		body string
	}{
		{"empty body", "{}"},
		{"missing password", `{"email":"a@x.com"}`},
		{"missing email", `{"password":"p1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newJSONContext(http.MethodPost, "/login", tt.body)
			if err := h.Login(c); err != nil {
				t.Fatalf("handler returned error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestRegisterAdminDomainPolicy(t *testing.T) {
	h := &AuthHandler{Cfg: config.Config{AdminEmailDomain: "@admin.gmail.com", BcryptCost: 4}}

	tests := []struct {
		name string
		body string
	}{
		{"plain gmail", `{"full_name":"Eve","email":"eve@gmail.com","password":"p1"}`},
		{"lookalike domain", `{"full_name":"Eve","email":"eve@admin.gmail.com.evil.io","password":"p1"}`},
		{"missing fields", `{"email":"eve@admin.gmail.com"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newJSONContext(http.MethodPost, "/admin/register", tt.body)
			if err := h.RegisterAdmin(c); err != nil {
				t.Fatalf("handler returned error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}
