package payments

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	config "github.com/sportsmania/sports_mania_server/configs"
)

const defaultAPIBase = "https://api.stripe.com"

type paymentIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

func apiBase() string {
	if base := config.Config("STRIPE_API_BASE_URL"); base != "" {
		return base
	}
	return defaultAPIBase
}

// MinorUnits converts a decimal currency amount to integer minor units,
// rounded to the nearest cent so 19.99 becomes 1999 despite binary-float
// representation error.
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CreatePaymentIntent asks the provider for a card payment intent in USD and
// returns only the client secret the caller needs to complete payment.
func CreatePaymentIntent(price float64) (string, error) {
	secretKey := config.Config("PAYMENT_SECRET_KEY")

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(MinorUnits(price), 10))
	form.Set("currency", "usd")
	form.Add("payment_method_types[]", "card")

	req, err := http.NewRequest("POST", fmt.Sprintf("%s/v1/payment_intents", apiBase()), strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", secretKey))
	req.Header.Set("Idempotency-Key", uuid.NewString())

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("failed to create payment intent: %s", string(respBody))
	}

	var intent paymentIntentResponse
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return "", err
	}

	return intent.ClientSecret, nil
}
