package payments

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		price float64
		want  int64
	}{
		{19.99, 1999},
		{10, 1000},
		{0.5, 50},
		{149.95, 14995},
	}
	for _, tc := range cases {
		if got := MinorUnits(tc.price); got != tc.want {
			t.Errorf("MinorUnits(%v) = %d, want %d", tc.price, got, tc.want)
		}
	}
}

func TestCreatePaymentIntent(t *testing.T) {
	var gotForm map[string][]string
	var gotAuth, gotIdempotency string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/payment_intents" {
			t.Errorf("path = %s, want /v1/payment_intents", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("failed to parse form: %v", err)
		}
		gotForm = r.PostForm
		gotAuth = r.Header.Get("Authorization")
		gotIdempotency = r.Header.Get("Idempotency-Key")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"id":            "pi_123",
			"client_secret": "pi_123_secret_456",
		})
	}))
	defer srv.Close()

	t.Setenv("STRIPE_API_BASE_URL", srv.URL)
	t.Setenv("PAYMENT_SECRET_KEY", "sk_test_abc")

	clientSecret, err := CreatePaymentIntent(19.99)
	if err != nil {
		t.Fatalf("CreatePaymentIntent returned error: %v", err)
	}

	if clientSecret != "pi_123_secret_456" {
		t.Errorf("clientSecret = %s, want pi_123_secret_456", clientSecret)
	}
	if got := gotForm["amount"]; len(got) != 1 || got[0] != "1999" {
		t.Errorf("amount = %v, want [1999]", got)
	}
	if got := gotForm["currency"]; len(got) != 1 || got[0] != "usd" {
		t.Errorf("currency = %v, want [usd]", got)
	}
	if got := gotForm["payment_method_types[]"]; len(got) != 1 || got[0] != "card" {
		t.Errorf("payment_method_types[] = %v, want [card]", got)
	}
	if gotAuth != "Bearer sk_test_abc" {
		t.Errorf("Authorization = %s, want Bearer sk_test_abc", gotAuth)
	}
	if gotIdempotency == "" {
		t.Error("Idempotency-Key header is empty")
	}
}

func TestCreatePaymentIntentProviderFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Invalid API Key"}}`))
	}))
	defer srv.Close()

	t.Setenv("STRIPE_API_BASE_URL", srv.URL)
	t.Setenv("PAYMENT_SECRET_KEY", "sk_bad")

	if _, err := CreatePaymentIntent(10); err == nil {
		t.Fatal("expected error on provider failure, got nil")
	}
}
