package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestJWTRoundTrip(t *testing.T) {
	svc := NewAuthService("test-secret")
	tok, err := svc.IssueJWT("u1", "student")
	if err != nil {
		t.Fatal(err)
	}
	claims, err := svc.Parse(tok)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Sub != "u1" || claims.Role != "student" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	tok, err := NewAuthService("secret-a").IssueJWT("u1", "student")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewAuthService("secret-b").Parse(tok); err == nil {
		t.Fatal("token signed with another secret must not parse")
	}
}

func TestJWTMiddleware(t *testing.T) {
	svc := NewAuthService("test-secret")
	var gotSub, gotRole string
	h := JWTMiddleware(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSub = SubjectFromContext(r.Context())
		gotRole = RoleFromContext(r.Context())
	}))

	// No header.
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("no header: status = %d, want 401", rec.Code)
	}

	// Garbage token.
	rec = httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bad token: status = %d, want 401", rec.Code)
	}

	// Valid token injects subject and role.
	tok, err := svc.IssueJWT("u1", "admin")
	if err != nil {
		t.Fatal(err)
	}
	rec = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("valid token: status = %d", rec.Code)
	}
	if gotSub != "u1" || gotRole != "admin" {
		t.Errorf("context got %q/%q, want u1/admin", gotSub, gotRole)
	}
}

func TestRequireRole(t *testing.T) {
	h := RequireRole("admin")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/", nil)
	req = req.WithContext(WithRole(req.Context(), "student"))
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("student on admin route: status = %d, want 403", rec.Code)
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/", nil)
	req = req.WithContext(WithRole(req.Context(), "admin"))
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("admin on admin route: status = %d, want 200", rec.Code)
	}
}
