// Package entity contains the core business objects of the project.
package entity

// CheckoutState names the step the checkout flow is currently in.
//
// The flow moves Browsing -> AddressEntry -> Placing -> Confirmed and back
// to Browsing. A checkout request without an authenticated session lands in
// AuthGate, which retains nothing: re-entering checkout restarts at Browsing.
type CheckoutState string

const (
	// CheckoutBrowsing is the default state; no checkout is in progress.
	CheckoutBrowsing CheckoutState = "browsing"
	// CheckoutAuthGate means checkout was requested without a session and
	// the user has been redirected to authentication.
	CheckoutAuthGate CheckoutState = "auth_gate"
	// CheckoutAddressEntry means a delivery address is being collected.
	CheckoutAddressEntry CheckoutState = "address_entry"
	// CheckoutPlacing is the transient state while an order is placed.
	CheckoutPlacing CheckoutState = "placing"
	// CheckoutConfirmed means the order was placed and the cart cleared.
	CheckoutConfirmed CheckoutState = "confirmed"
)

// String returns the string representation of the CheckoutState.
func (s CheckoutState) String() string {
	return string(s)
}
