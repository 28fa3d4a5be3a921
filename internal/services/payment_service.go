package services

import (
	"errors"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// ErrInvalidPrice is returned for a missing, zero or negative price. The
// original behavior was to drop such requests without any response; here it
// is an explicit error so the handler can answer with a 400.
var ErrInvalidPrice = errors.New("invalid price")

// PaymentService creates Stripe payment intents for meal purchases.
type PaymentService struct {
	stripe *client.API
}

func NewPaymentService(secretKey string) *PaymentService {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &PaymentService{stripe: api}
}

// minorUnits converts a price in major units (dollars) to Stripe's minor
// units (cents), truncating fractional cents.
func minorUnits(price float64) int64 {
	return int64(price * 100)
}

// CreateIntent creates a card payment intent in USD and returns the client
// secret the frontend needs to complete the payment.
func (s *PaymentService) CreateIntent(price float64) (string, error) {
	amount := minorUnits(price)
	if amount < 1 {
		return "", ErrInvalidPrice
	}

	intent, err := s.stripe.PaymentIntents.New(&stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	})
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
