package payments

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"
	stripe "github.com/stripe/stripe-go/v76"
	checkout "github.com/stripe/stripe-go/v76/checkout/session"
)

const (
	premiumProductName = "Premium Membership"
	premiumUnitAmount  = 999
	premiumCurrency    = "usd"
)

// CheckoutSession is what the client needs to hand control to the externally
// hosted payment page.
type CheckoutSession struct {
	SessionID   string `json:"sessionId"`
	RedirectURL string `json:"redirectUrl"`
}

type sessionCreator func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)

// Broker creates one-time-payment checkout sessions for membership upgrades.
// It never confirms payment; the upgrade itself is a separate explicit call.
type Broker struct {
	clientURL string
	create    sessionCreator
}

func NewBroker(secretKey, clientURL string) *Broker {
	stripe.Key = secretKey
	return &Broker{clientURL: clientURL, create: checkout.New}
}

// CreateUpgradeSession requests a session for the fixed premium upgrade price.
// The success and cancel redirects carry the email back to the client, which
// then calls the upgrade endpoint itself.
func (b *Broker) CreateUpgradeSession(ctx context.Context, email string) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		CustomerEmail:      stripe.String(email),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(premiumCurrency),
					UnitAmount: stripe.Int64(premiumUnitAmount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(premiumProductName),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(fmt.Sprintf("%s/payment-success?email=%s", b.clientURL, url.QueryEscape(email))),
		CancelURL:  stripe.String(fmt.Sprintf("%s/payment-cancelled?email=%s", b.clientURL, url.QueryEscape(email))),
	}
	params.Context = ctx
	params.IdempotencyKey = stripe.String(uuid.NewString())

	sess, err := b.create(params)
	if err != nil {
		return nil, err
	}

	return &CheckoutSession{SessionID: sess.ID, RedirectURL: sess.URL}, nil
}
