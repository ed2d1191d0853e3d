package handler

import (
	"net/http"

	"dindigul/internal/delivery/http/response"
	"dindigul/internal/domain/entity"
	"dindigul/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckoutHandler holds dependencies for checkout-related handlers.
type CheckoutHandler struct {
	uc usecase.CheckoutUsecase
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

// checkoutViewBody is the wire shape of the flow state.
type checkoutViewBody struct {
	State entity.CheckoutState `json:"state"`
	Draft *entity.Address      `json:"draft,omitempty"`
	Areas []entity.Area        `json:"areas,omitempty"`
}

// Begin handles a checkout request. An unauthenticated request is not an
// error: it answers with the auth gate state and the route to the login
// page, leaving the cart untouched.
func (h *CheckoutHandler) Begin(c echo.Context) error {
	view, err := h.uc.Begin(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	body := checkoutViewBody{State: view.State, Draft: view.Draft}
	if view.State == entity.CheckoutAddressEntry {
		// The address form needs the selectable areas.
		body.Areas = entity.Areas()
	}

	if view.State == entity.CheckoutAuthGate {
		return response.SuccessWithRedirect(c, http.StatusOK, body,
			"Please login first", view.RedirectTo)
	}

	return response.Success(c, http.StatusOK, body, "")
}

// SubmitAddress validates the delivery address and places the order.
// Validation failures come back as one response naming every violated
// field; the flow stays open for a corrected resubmit.
func (h *CheckoutHandler) SubmitAddress(c echo.Context) error {
	var input usecase.AddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	output, err := h.uc.SubmitAddress(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithRedirect(c, http.StatusOK, output.Order,
		"Order Placed Successfully!", output.RedirectTo)
}

// Cancel abandons the in-progress checkout.
func (h *CheckoutHandler) Cancel(c echo.Context) error {
	if err := h.uc.Cancel(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Checkout cancelled")
}

// GetState returns the current flow state.
func (h *CheckoutHandler) GetState(c echo.Context) error {
	view := h.uc.View(c.Request().Context())

	body := checkoutViewBody{State: view.State, Draft: view.Draft}
	if view.State == entity.CheckoutAddressEntry {
		body.Areas = entity.Areas()
	}

	return response.Success(c, http.StatusOK, body, "")
}
