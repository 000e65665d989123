package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/sportsmania/sports_mania_server/auth"
	"github.com/sportsmania/sports_mania_server/handlers"
)

func TestIssueToken(t *testing.T) {
	tokens := &auth.TokenService{Secret: []byte("test-secret"), TTL: time.Hour}
	app := newTestApp(&handlers.Handler{Tokens: tokens})

	resp := doJSON(t, app, http.MethodPost, "/jwt", map[string]interface{}{
		"email": "student@example.com",
		"name":  "Student One",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body := decode(t, resp)
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("token missing from response")
	}

	claims, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("issued token failed verification: %v", err)
	}
	if claims["email"] != "student@example.com" {
		t.Errorf("email claim = %v, want student@example.com", claims["email"])
	}
}

func TestIssueTokenRequiresEmail(t *testing.T) {
	tokens := &auth.TokenService{Secret: []byte("test-secret"), TTL: time.Hour}
	app := newTestApp(&handlers.Handler{Tokens: tokens})

	resp := doJSON(t, app, http.MethodPost, "/jwt", map[string]interface{}{
		"name": "No Email",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}
