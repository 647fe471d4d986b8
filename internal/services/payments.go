package services

import (
	"context"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// IntentCreator wraps the payment gateway's "create payment intent" call.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amountCents int64) (string, error)
}

// StripeGateway creates card payment intents in USD. The package-level
// stripe.Key must be set before use.
type StripeGateway struct{}

func (StripeGateway) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}
