// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"dindigul/config"
	"dindigul/internal/domain/entity"
	domainerrors "dindigul/internal/domain/errors"
	"dindigul/internal/domain/service"
	"dindigul/internal/usecase"
)

const (
	defaultFreeDeliveryMinimum = 500
	defaultDeliveryFee         = 40

	// deliveryWindow is the promise made in the confirmation message.
	deliveryWindow = "30-45 minutes"

	authRoute = "/auth"
	homeRoute = "/"
)

// addressForm carries the delivery address fields through validation.
type addressForm struct {
	FullName string `json:"fullName" validate:"required"`
	Phone    string `json:"phone" validate:"required,inphone"`
	Street   string `json:"street" validate:"required"`
	Area     string `json:"area" validate:"required,deliveryarea"`
	Pincode  string `json:"pincode" validate:"required,pincode"`
	Landmark string `json:"landmark"`
}

var addressMessages = fieldMessages{
	"fullName": {
		"required": "Name is required",
	},
	"phone": {
		"required": "Phone is required",
		"inphone":  "Enter valid 10-digit number",
	},
	"street": {
		"required": "Street address is required",
	},
	"area": {
		"required":     "Please select your area",
		"deliveryarea": "Please select your area",
	},
	"pincode": {
		"required": "Pincode is required",
		"pincode":  "Enter valid 6-digit pincode",
	},
}

// checkoutService implements the CheckoutUsecase interface. It reads the
// cart and session stores; its only cross-store side effect is clearing
// the cart after a successful placement.
type checkoutService struct {
	cart     usecase.CartUsecase
	session  usecase.SessionUsecase
	notifier service.Notifier
	logger   *slog.Logger

	freeDeliveryMinimum int
	deliveryFee         int

	mu    sync.Mutex
	state entity.CheckoutState
	draft *entity.Address
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	cart usecase.CartUsecase,
	session usecase.SessionUsecase,
	notifier service.Notifier,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	freeMinimum := defaultFreeDeliveryMinimum
	fee := defaultDeliveryFee
	if cfg != nil && cfg.Delivery != nil {
		freeMinimum = cfg.Delivery.FreeDeliveryMinimum
		fee = cfg.Delivery.Fee
	}

	return &checkoutService{
		cart:                cart,
		session:             session,
		notifier:            notifier,
		logger:              logger,
		freeDeliveryMinimum: freeMinimum,
		deliveryFee:         fee,
		state:               entity.CheckoutBrowsing,
	}
}

// Begin handles a checkout request.
func (srv *checkoutService) Begin(ctx context.Context) (*usecase.CheckoutView, error) {
	if !srv.session.IsAuthenticated(ctx) {
		// The flow halts here and retains nothing; a later checkout
		// request starts over from Browsing.
		srv.reset()
		srv.notifier.Notify(ctx, "Please login first", "You need to login to place an order")
		srv.logger.Info("Checkout requested without a session, redirecting to auth")

		return &usecase.CheckoutView{
			State:      entity.CheckoutAuthGate,
			RedirectTo: authRoute,
		}, nil
	}

	if srv.cart.View(ctx).Totals.ItemCount == 0 {
		srv.reset()

		return nil, domainerrors.ErrCartEmpty
	}

	user := srv.session.CurrentUser(ctx)
	draft := &entity.Address{
		FullName: user.Name,
		Phone:    user.Phone,
		Area:     user.Location,
		City:     entity.DeliveryCity,
	}

	srv.mu.Lock()
	srv.state = entity.CheckoutAddressEntry
	srv.draft = draft
	srv.mu.Unlock()

	srv.logger.Debug("Checkout entered address entry", slog.String("userID", user.ID))

	return &usecase.CheckoutView{
		State: entity.CheckoutAddressEntry,
		Draft: draft,
	}, nil
}

// SubmitAddress validates the form and, on success, places the order.
func (srv *checkoutService) SubmitAddress(ctx context.Context, input *usecase.AddressInput) (*usecase.PlaceOrderOutput, error) {
	srv.mu.Lock()
	if srv.state != entity.CheckoutAddressEntry {
		srv.mu.Unlock()

		return nil, domainerrors.ErrNoCheckoutInProgress
	}

	// Retain the submitted values either way: on a failed validation the
	// user stays on the form with everything they typed still present.
	draft := &entity.Address{
		FullName: strings.TrimSpace(input.FullName),
		Phone:    strings.TrimSpace(input.Phone),
		Street:   strings.TrimSpace(input.Street),
		Area:     input.Area,
		City:     entity.DeliveryCity,
		Pincode:  strings.TrimSpace(input.Pincode),
		Landmark: strings.TrimSpace(input.Landmark),
	}
	srv.draft = draft
	srv.mu.Unlock()

	form := &addressForm{
		FullName: draft.FullName,
		Phone:    draft.Phone,
		Street:   draft.Street,
		Area:     draft.Area,
		Pincode:  draft.Pincode,
		Landmark: draft.Landmark,
	}
	if verr := validateForm(form, addressMessages); verr != nil {
		srv.logger.Debug("Delivery address rejected", slog.String("fields", verr.Details()))

		return nil, verr
	}

	return srv.placeOrder(ctx, draft)
}

// placeOrder runs the Placing -> Confirmed leg: price the order, notify,
// clear the cart and return the flow to Browsing.
func (srv *checkoutService) placeOrder(ctx context.Context, address *entity.Address) (*usecase.PlaceOrderOutput, error) {
	srv.mu.Lock()
	srv.state = entity.CheckoutPlacing
	srv.mu.Unlock()

	cart := srv.cart.View(ctx)
	if cart.Totals.ItemCount == 0 {
		// The cart emptied between Begin and Submit; there is nothing
		// to place, so the flow abandons itself.
		srv.reset()

		return nil, domainerrors.ErrCartEmpty
	}

	fee := srv.deliveryFee
	if cart.Totals.Subtotal >= srv.freeDeliveryMinimum {
		fee = 0
	}

	order := &entity.Order{
		Lines:       cart.Lines,
		Subtotal:    cart.Totals.Subtotal,
		DeliveryFee: fee,
		GrandTotal:  cart.Totals.Subtotal + fee,
		Address:     *address,
		PlacedAt:    time.Now(),
	}

	// Placing is local and always succeeds once validation passed; the
	// notification and cart clear are the whole side effect.
	srv.notifier.Notify(ctx, "Order Placed Successfully! 🎉", fmt.Sprintf(
		"Your order of ₹%d will be delivered to %s, %s within %s.",
		order.GrandTotal, address.Area, entity.DeliveryCity, deliveryWindow,
	))

	if err := srv.cart.Clear(ctx); err != nil {
		return nil, err
	}

	srv.reset()
	srv.logger.Info("Order placed",
		slog.Int("subtotal", order.Subtotal),
		slog.Int("deliveryFee", order.DeliveryFee),
		slog.Int("grandTotal", order.GrandTotal),
		slog.String("area", address.Area),
	)

	return &usecase.PlaceOrderOutput{Order: order, RedirectTo: homeRoute}, nil
}

// Cancel abandons the in-progress address without side effects.
func (srv *checkoutService) Cancel(ctx context.Context) error {
	srv.reset()
	srv.logger.Debug("Checkout cancelled")

	return nil
}

// View returns the current state of the flow.
func (srv *checkoutService) View(ctx context.Context) *usecase.CheckoutView {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	view := &usecase.CheckoutView{State: srv.state}
	if srv.draft != nil {
		draft := *srv.draft
		view.Draft = &draft
	}

	return view
}

// reset returns the flow to Browsing and discards any draft.
func (srv *checkoutService) reset() {
	srv.mu.Lock()
	srv.state = entity.CheckoutBrowsing
	srv.draft = nil
	srv.mu.Unlock()
}
