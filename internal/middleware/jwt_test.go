package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/online-voting/internal/utils"
)

const testSecret = "unit-test-secret"

// invoke runs the JWTAuth middleware against a request carrying the given
// Authorization header and reports the response code plus whatever the
// middleware stored in the context.
func invokeJWT(t *testing.T, authHeader string) (code int, userID interface{}, role interface{}) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotUser, gotRole interface{}
	next := func(c echo.Context) error {
		gotUser = c.Get("user_id")
		gotRole = c.Get("role")
		return c.NoContent(http.StatusOK)
	}

	if err := JWTAuth(testSecret)(next)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return rec.Code, gotUser, gotRole
}

func TestJWTAuthValidToken(t *testing.T) {
	access, err := utils.NewAccessToken(testSecret, 99, "admin", 60)
	if err != nil {
		t.Fatalf("NewAccessToken() error = %v", err)
	}

	code, userID, role := invokeJWT(t, "Bearer "+access.Token)
	if code != http.StatusOK {
		t.Fatalf("status = %d, want %d", code, http.StatusOK)
	}
	if id, ok := userID.(uint64); !ok || id != 99 {
		t.Errorf("user_id in context = %v (%T), want uint64(99)", userID, userID)
	}
	if r, ok := role.(string); !ok || r != "admin" {
		t.Errorf("role in context = %v, want admin", role)
	}
}

func TestJWTAuthRejections(t *testing.T) {
	expired, err := utils.NewAccessToken(testSecret, 5, "voter", -5)
	if err != nil {
		t.Fatalf("NewAccessToken() error = %v", err)
	}
	otherSecret, err := utils.NewAccessToken("some-other-secret", 5, "voter", 60)
	if err != nil {
		t.Fatalf("NewAccessToken() error = %v", err)
	}

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"malformed token", "Bearer not.a.jwt"},
		{"expired token", "Bearer " + expired.Token},
		{"wrong secret", "Bearer " + otherSecret.Token},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, userID, _ := invokeJWT(t, tt.header)
			if code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", code, http.StatusUnauthorized)
			}
			if userID != nil {
				t.Errorf("user_id leaked into context: %v", userID)
			}
		})
	}
}
