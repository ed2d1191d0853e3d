// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"dindigul/internal/domain/entity"
)

// --- Input DTOs ---

// AddressInput defines the delivery address form as submitted. City is not
// part of the form; it is fixed to the delivery city.
type AddressInput struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Street   string `json:"street"`
	Area     string `json:"area"`
	Pincode  string `json:"pincode"`
	Landmark string `json:"landmark"`
}

// --- Output DTOs ---

// CheckoutView describes the flow to the caller: the current state, the
// in-progress address draft while collecting one, and the route to
// navigate to when the flow demands it.
type CheckoutView struct {
	State      entity.CheckoutState
	Draft      *entity.Address
	RedirectTo string
}

// PlaceOrderOutput returns the confirmed order after a successful
// placement together with the route back to the storefront.
type PlaceOrderOutput struct {
	Order      *entity.Order
	RedirectTo string
}

// CheckoutUsecase drives the short-lived checkout state machine. It reads
// the cart and session stores but owns neither; its only cross-store side
// effect is clearing the cart after a successful placement.
type CheckoutUsecase interface {
	// Begin handles a checkout request. Without an authenticated session
	// the flow halts at AuthGate and the view redirects to the auth
	// route; nothing is retained and the cart is untouched. With a
	// session and a non-empty cart the flow enters AddressEntry with a
	// draft address pre-filled from the active user.
	Begin(ctx context.Context) (*CheckoutView, error)

	// SubmitAddress validates the form. Every violated field is reported
	// at once via *dindigul/internal/domain/errors.ValidationError and
	// the flow stays in AddressEntry with the submitted values retained.
	// On success the order is placed, the cart cleared and the flow
	// returns to Browsing.
	SubmitAddress(ctx context.Context, input *AddressInput) (*PlaceOrderOutput, error)

	// Cancel abandons the in-progress address without side effects.
	Cancel(ctx context.Context) error

	// View returns the current state of the flow.
	View(ctx context.Context) *CheckoutView
}
