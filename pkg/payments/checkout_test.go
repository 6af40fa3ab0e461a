package payments

import (
	"context"
	"errors"
	"strings"
	"testing"

	stripe "github.com/stripe/stripe-go/v76"
)

func TestCreateUpgradeSession(t *testing.T) {
	var captured *stripe.CheckoutSessionParams
	broker := &Broker{
		clientURL: "http://localhost:5173",
		create: func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
			captured = params
			return &stripe.CheckoutSession{ID: "cs_test_123", URL: "https://checkout.stripe.com/pay/cs_test_123"}, nil
		},
	}

	sess, err := broker.CreateUpgradeSession(context.Background(), "a+b@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sess.SessionID != "cs_test_123" {
		t.Errorf("expected session id cs_test_123, but was %s", sess.SessionID)
	}
	if sess.RedirectURL != "https://checkout.stripe.com/pay/cs_test_123" {
		t.Errorf("unexpected redirect url: %s", sess.RedirectURL)
	}

	if captured == nil {
		t.Fatalf("session creator was not called")
	}
	if *captured.Mode != string(stripe.CheckoutSessionModePayment) {
		t.Errorf("expected one-time payment mode, but was %s", *captured.Mode)
	}
	if len(captured.LineItems) != 1 {
		t.Fatalf("expected a single line item, but was %d", len(captured.LineItems))
	}

	item := captured.LineItems[0]
	if *item.PriceData.ProductData.Name != "Premium Membership" {
		t.Errorf("unexpected product name: %s", *item.PriceData.ProductData.Name)
	}
	if *item.PriceData.UnitAmount != 999 {
		t.Errorf("unexpected amount: %d", *item.PriceData.UnitAmount)
	}
	if *item.Quantity != 1 {
		t.Errorf("unexpected quantity: %d", *item.Quantity)
	}

	if !strings.Contains(*captured.SuccessURL, "email=a%2Bb%40example.com") {
		t.Errorf("success url must embed the escaped email, got %s", *captured.SuccessURL)
	}
	if !strings.HasPrefix(*captured.CancelURL, "http://localhost:5173/payment-cancelled") {
		t.Errorf("unexpected cancel url: %s", *captured.CancelURL)
	}
	if captured.IdempotencyKey == nil || *captured.IdempotencyKey == "" {
		t.Errorf("idempotency key must be set")
	}
}

func TestCreateUpgradeSessionProviderError(t *testing.T) {
	providerErr := errors.New("stripe: invalid api key")
	broker := &Broker{
		clientURL: "http://localhost:5173",
		create: func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
			return nil, providerErr
		},
	}

	_, err := broker.CreateUpgradeSession(context.Background(), "a@example.com")
	if err != providerErr {
		t.Errorf("provider error must surface unchanged, expected %v, but was %v", providerErr, err)
	}
}
