// Package entity contains the core business objects of the project.
package entity

// Address is the ephemeral delivery destination collected during checkout.
// It is created when checkout begins, pre-filled from the active user where
// fields exist, and discarded when checkout completes or is abandoned. It is
// never persisted.
type Address struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Street   string `json:"street"`
	Area     string `json:"area"`    // Must name one of the delivery Areas.
	City     string `json:"city"`    // Always DeliveryCity.
	Pincode  string `json:"pincode"` // 6-digit numeric postal code.
	Landmark string `json:"landmark,omitempty"`
}
