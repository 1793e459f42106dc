// Package payments wraps the Stripe payment-intent call the checkout flow
// uses to obtain a client-side confirmation secret.
package payments

import (
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"

	"bistro/config"
)

// IntentCreator creates a payment intent for an amount in minor units and
// returns the client secret. Handlers depend on this interface so tests can
// substitute a stub for the live Stripe API.
type IntentCreator interface {
	CreateIntent(amountMinor int64) (clientSecret string, err error)
}

// StripeClient calls the live Stripe API with the configured secret key.
type StripeClient struct{}

// NewStripeClient configures the global Stripe key from config and returns
// a client.
func NewStripeClient() *StripeClient {
	stripe.Key = config.StripeSecretKey()
	return &StripeClient{}
}

// CreateIntent creates a card payment intent in USD.
func (c *StripeClient) CreateIntent(amountMinor int64) (string, error) {
	pi, err := paymentintent.New(&stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountMinor),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	})
	if err != nil {
		return "", fmt.Errorf("payments: create intent: %w", err)
	}
	return pi.ClientSecret, nil
}

// MinorUnits converts a decimal price to integer minor units (cents).
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}
