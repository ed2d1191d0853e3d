package impl

import (
	"context"
	"testing"

	"dindigul/config"
	"dindigul/internal/domain/entity"
	domainerrors "dindigul/internal/domain/errors"
	"dindigul/internal/infra/persistence/memory"
	"dindigul/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkoutFixture wires a checkout flow over real cart and session
// services with an in-memory record store.
type checkoutFixture struct {
	cart     usecase.CartUsecase
	session  usecase.SessionUsecase
	checkout usecase.CheckoutUsecase
	notifier *recordingNotifier
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()

	cart := newTestCart()
	notifier := &recordingNotifier{}
	session := NewSessionService(context.Background(), memory.NewUserRecordStore(), notifier, newDiscardLogger())
	checkout := NewCheckoutService(cart, session, notifier, nil, newDiscardLogger())

	return &checkoutFixture{
		cart:     cart,
		session:  session,
		checkout: checkout,
		notifier: notifier,
	}
}

// login authenticates the fixture session and drops the notifier calls
// it produced so checkout assertions start clean.
func (f *checkoutFixture) login(t *testing.T) {
	t.Helper()

	_, err := f.session.Signup(context.Background(), &usecase.SignupInput{
		Name:     "Meena",
		Phone:    "9363940672",
		Location: "Palani",
		Password: "secret1",
	})
	require.NoError(t, err)
	f.notifier.calls = nil
}

func (f *checkoutFixture) fillCart(t *testing.T, itemID string, quantity int) {
	t.Helper()

	_, err := f.cart.AddItem(context.Background(), itemID)
	require.NoError(t, err)
	if quantity > 1 {
		_, err = f.cart.UpdateQuantity(context.Background(), itemID, quantity)
		require.NoError(t, err)
	}
}

// testDeliveryConfig builds a minimal config carrying only the delivery
// tariff.
func testDeliveryConfig(freeMinimum, fee int) *config.Config {
	return &config.Config{
		Delivery: &config.DeliveryConfig{
			FreeDeliveryMinimum: freeMinimum,
			Fee:                 fee,
		},
	}
}

func validAddress() *usecase.AddressInput {
	return &usecase.AddressInput{
		FullName: "Meena",
		Phone:    "9363940672",
		Street:   "12 Salai Road",
		Area:     "Palani",
		Pincode:  "624001",
	}
}

func TestCheckoutService_Begin_WithoutSession(t *testing.T) {
	t.Parallel()

	f := newCheckoutFixture(t)
	ctx := context.Background()
	f.fillCart(t, testBiryani.ID, 2)

	view, err := f.checkout.Begin(ctx)

	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutAuthGate, view.State)
	assert.Equal(t, "/auth", view.RedirectTo)
	assert.Nil(t, view.Draft)

	// The halt retains nothing: the stored flow is back at Browsing and
	// the cart is untouched.
	assert.Equal(t, entity.CheckoutBrowsing, f.checkout.View(ctx).State)
	assert.Equal(t, 2, f.cart.View(ctx).Totals.ItemCount)

	calls := f.notifier.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "Please login first", calls[0].Title)
	assert.Equal(t, "You need to login to place an order", calls[0].Description)
}

func TestCheckoutService_Begin_EmptyCart(t *testing.T) {
	t.Parallel()

	f := newCheckoutFixture(t)
	f.login(t)

	_, err := f.checkout.Begin(context.Background())

	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
	assert.Equal(t, entity.CheckoutBrowsing, f.checkout.View(context.Background()).State)
}

func TestCheckoutService_Begin_PrefillsDraftFromUser(t *testing.T) {
	t.Parallel()

	f := newCheckoutFixture(t)
	f.login(t)
	f.fillCart(t, testBiryani.ID, 1)

	view, err := f.checkout.Begin(context.Background())

	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutAddressEntry, view.State)
	require.NotNil(t, view.Draft)
	assert.Equal(t, "Meena", view.Draft.FullName)
	assert.Equal(t, "9363940672", view.Draft.Phone)
	assert.Equal(t, "Palani", view.Draft.Area)
	assert.Equal(t, "Dindigul", view.Draft.City)
	assert.Empty(t, view.Draft.Street)
	assert.Empty(t, view.Draft.Pincode)
}

func TestCheckoutService_SubmitAddress_WithoutBegin(t *testing.T) {
	t.Parallel()

	f := newCheckoutFixture(t)
	f.login(t)

	_, err := f.checkout.SubmitAddress(context.Background(), validAddress())

	assert.ErrorIs(t, err, domainerrors.ErrNoCheckoutInProgress)
}

func TestCheckoutService_SubmitAddress_ReportsAllViolatedFieldsAtOnce(t *testing.T) {
	t.Parallel()

	f := newCheckoutFixture(t)
	f.login(t)
	f.fillCart(t, testBiryani.ID, 1)
	ctx := context.Background()
	_, err := f.checkout.Begin(ctx)
	require.NoError(t, err)

	_, err = f.checkout.SubmitAddress(ctx, &usecase.AddressInput{
		FullName: "",
		Phone:    "12345",
		Street:   "",
		Area:     "Atlantis",
		Pincode:  "62400a",
	})

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	fields := verr.Fields()
	assert.Equal(t, "Name is required", fields["fullName"])
	assert.Equal(t, "Enter valid 10-digit number", fields["phone"])
	assert.Equal(t, "Street address is required", fields["street"])
	assert.Equal(t, "Please select your area", fields["area"])
	assert.Equal(t, "Enter valid 6-digit pincode", fields["pincode"])

	// The flow stays in address entry with the submitted values retained.
	view := f.checkout.View(ctx)
	assert.Equal(t, entity.CheckoutAddressEntry, view.State)
	require.NotNil(t, view.Draft)
	assert.Equal(t, "12345", view.Draft.Phone)
	assert.Equal(t, "Atlantis", view.Draft.Area)
}

func TestCheckoutService_SubmitAddress_PincodeValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pincode string
		wantErr string
	}{
		{name: "six digits", pincode: "624001"},
		{name: "five digits", pincode: "62400", wantErr: "Enter valid 6-digit pincode"},
		{name: "letter inside", pincode: "62400a", wantErr: "Enter valid 6-digit pincode"},
		{name: "missing", pincode: "", wantErr: "Pincode is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newCheckoutFixture(t)
			f.login(t)
			f.fillCart(t, testBiryani.ID, 1)
			ctx := context.Background()
			_, err := f.checkout.Begin(ctx)
			require.NoError(t, err)

			address := validAddress()
			address.Pincode = tt.pincode
			_, err = f.checkout.SubmitAddress(ctx, address)

			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}

			var verr *domainerrors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantErr, verr.Fields()["pincode"])
		})
	}
}

func TestCheckoutService_DeliveryFee(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		fill       map[string]int
		subtotal   int
		fee        int
		grandTotal int
	}{
		{
			name:       "one below the free delivery minimum",
			fill:       map[string]int{testFamilyCombo.ID: 1},
			subtotal:   499,
			fee:        40,
			grandTotal: 539,
		},
		{
			name:       "exactly at the free delivery minimum",
			fill:       map[string]int{testDosa.ID: 2, testJigarthanda.ID: 4},
			subtotal:   500,
			fee:        0,
			grandTotal: 500,
		},
		{
			name:       "above the free delivery minimum",
			fill:       map[string]int{testBiryani.ID: 2},
			subtotal:   560,
			fee:        0,
			grandTotal: 560,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newCheckoutFixture(t)
			f.login(t)
			for id, qty := range tt.fill {
				f.fillCart(t, id, qty)
			}
			ctx := context.Background()
			_, err := f.checkout.Begin(ctx)
			require.NoError(t, err)

			output, err := f.checkout.SubmitAddress(ctx, validAddress())

			require.NoError(t, err)
			assert.Equal(t, tt.subtotal, output.Order.Subtotal)
			assert.Equal(t, tt.fee, output.Order.DeliveryFee)
			assert.Equal(t, tt.grandTotal, output.Order.GrandTotal)
		})
	}
}

func TestCheckoutService_SubmitAddress_PlacesOrder(t *testing.T) {
	t.Parallel()

	f := newCheckoutFixture(t)
	f.login(t)
	f.fillCart(t, testBiryani.ID, 2)
	ctx := context.Background()
	_, err := f.checkout.Begin(ctx)
	require.NoError(t, err)

	output, err := f.checkout.SubmitAddress(ctx, validAddress())

	require.NoError(t, err)
	assert.Equal(t, "/", output.RedirectTo)
	require.Len(t, output.Order.Lines, 1)
	assert.Equal(t, testBiryani.ID, output.Order.Lines[0].Item.ID)
	assert.Equal(t, "Palani", output.Order.Address.Area)
	assert.Equal(t, "Dindigul", output.Order.Address.City)
	assert.False(t, output.Order.PlacedAt.IsZero())

	// Placement clears the cart and returns the flow to Browsing.
	assert.Equal(t, 0, f.cart.View(ctx).Totals.ItemCount)
	view := f.checkout.View(ctx)
	assert.Equal(t, entity.CheckoutBrowsing, view.State)
	assert.Nil(t, view.Draft)

	calls := f.notifier.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "Order Placed Successfully! 🎉", calls[0].Title)
	assert.Equal(t, "Your order of ₹560 will be delivered to Palani, Dindigul within 30-45 minutes.", calls[0].Description)
}

func TestCheckoutService_SubmitAddress_CartEmptiedAfterBegin(t *testing.T) {
	t.Parallel()

	f := newCheckoutFixture(t)
	f.login(t)
	f.fillCart(t, testBiryani.ID, 1)
	ctx := context.Background()
	_, err := f.checkout.Begin(ctx)
	require.NoError(t, err)

	require.NoError(t, f.cart.Clear(ctx))
	_, err = f.checkout.SubmitAddress(ctx, validAddress())

	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
	assert.Equal(t, entity.CheckoutBrowsing, f.checkout.View(ctx).State)
}

func TestCheckoutService_Cancel(t *testing.T) {
	t.Parallel()

	f := newCheckoutFixture(t)
	f.login(t)
	f.fillCart(t, testBiryani.ID, 1)
	ctx := context.Background()
	_, err := f.checkout.Begin(ctx)
	require.NoError(t, err)

	require.NoError(t, f.checkout.Cancel(ctx))

	view := f.checkout.View(ctx)
	assert.Equal(t, entity.CheckoutBrowsing, view.State)
	assert.Nil(t, view.Draft)
	// Abandoning the address leaves the cart alone.
	assert.Equal(t, 1, f.cart.View(ctx).Totals.ItemCount)

	_, err = f.checkout.SubmitAddress(ctx, validAddress())
	assert.ErrorIs(t, err, domainerrors.ErrNoCheckoutInProgress)
}

func TestCheckoutService_ConfiguredDeliveryPricing(t *testing.T) {
	t.Parallel()

	f := newCheckoutFixture(t)
	// Rebuild the flow with a custom tariff: free delivery from 300.
	f.checkout = NewCheckoutService(f.cart, f.session, f.notifier, testDeliveryConfig(300, 25), newDiscardLogger())
	f.login(t)
	f.fillCart(t, testJigarthanda.ID, 3) // subtotal 240
	ctx := context.Background()
	_, err := f.checkout.Begin(ctx)
	require.NoError(t, err)

	output, err := f.checkout.SubmitAddress(ctx, validAddress())

	require.NoError(t, err)
	assert.Equal(t, 240, output.Order.Subtotal)
	assert.Equal(t, 25, output.Order.DeliveryFee)
	assert.Equal(t, 265, output.Order.GrandTotal)
}
