package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"darkher/internal/domain"
	"darkher/internal/payment"
	"darkher/internal/service"
	"darkher/internal/storage"
	"darkher/internal/store"
)

// recorder собирает уведомления вместо их отправки
type recorder struct {
	successes []string
	errors    []string
}

func (r *recorder) Success(msg string) { r.successes = append(r.successes, msg) }
func (r *recorder) Error(msg string)   { r.errors = append(r.errors, msg) }

// stubGateway всегда отвечает заданной ошибкой (nil — платёж одобрен)
type stubGateway struct {
	err error
}

func (g stubGateway) Attempt(_ context.Context, _ decimal.Decimal) error { return g.err }

type fixture struct {
	cart     *store.Cart
	catalog  *store.Catalog
	notif    *recorder
	cartSvc  *service.CartService
	catSvc   *service.CatalogService
	checkout *service.CheckoutService
}

var serviceSeed = []domain.Product{
	{ID: "p1", Name: "Shine Wash", Description: "Gentle daily shampoo", Price: decimal.NewFromFloat(24.99), Category: "shampoo", Stock: 50},
	{ID: "p2", Name: "Gel", Description: "Strong hold styling", Price: decimal.NewFromFloat(12.50), Category: "styling", Stock: 8},
}

func validForm() service.CheckoutForm {
	return service.CheckoutForm{
		Name:    "Jane",
		Email:   "jane@example.com",
		Address: "12 Main St",
		City:    "Riga",
		Zip:     "LV-1010",
		Country: "Latvia",
	}
}

func setup(t *testing.T, gatewayErr error) *fixture {
	t.Helper()
	backend, err := storage.NewFileStore(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)

	nextID := 0
	newID := func() string {
		nextID++
		return string(rune('a' + nextID - 1))
	}

	cart := store.NewCart(backend)
	catalog, err := store.NewCatalog(backend, serviceSeed, newID, time.Now)
	require.NoError(t, err)

	notif := &recorder{}
	return &fixture{
		cart:     cart,
		catalog:  catalog,
		notif:    notif,
		cartSvc:  service.NewCartService(cart, catalog, notif),
		catSvc:   service.NewCatalogService(catalog, notif),
		checkout: service.NewCheckoutService(cart, catalog, stubGateway{err: gatewayErr}, notif),
	}
}

func TestCartService_AddDefaultsToOne(t *testing.T) {
	f := setup(t, nil)

	require.NoError(t, f.cartSvc.Add("p1", 0))
	require.EqualValues(t, 1, f.cartSvc.TotalItems())
	require.Contains(t, f.notif.successes, "Added to cart")
}

func TestCartService_AddMergeNotification(t *testing.T) {
	f := setup(t, nil)

	require.NoError(t, f.cartSvc.Add("p1", 1))
	require.NoError(t, f.cartSvc.Add("p1", 2))
	require.Contains(t, f.notif.successes, "Updated quantity in cart")
	require.EqualValues(t, 3, f.cartSvc.TotalItems())
}

func TestCartService_AddUnknownProduct(t *testing.T) {
	f := setup(t, nil)

	err := f.cartSvc.Add("missing", 1)
	require.ErrorIs(t, err, store.ErrNotFound)
	require.Empty(t, f.cartSvc.Items())
	require.Contains(t, f.notif.errors, "Product not found")
}

func TestCheckout_Success(t *testing.T) {
	f := setup(t, nil)

	require.NoError(t, f.cartSvc.Add("p1", 2))
	require.NoError(t, f.cartSvc.Add("p2", 1))
	subtotal := f.cartSvc.Subtotal()

	before := time.Now().UTC()
	order, err := f.checkout.Checkout(context.Background(), validForm())
	require.NoError(t, err)

	require.Equal(t, domain.OrderStatusPending, order.Status)
	require.True(t, order.Total.Equal(subtotal))
	require.Equal(t, "12 Main St, Riga, LV-1010, Latvia", order.Customer.Address)
	require.Len(t, order.Items, 2)
	require.False(t, order.CreatedAt.Before(before))

	// cart cleared after a successful checkout
	require.Empty(t, f.cartSvc.Items())
	require.Len(t, f.catSvc.Orders(), 1)
	require.Contains(t, f.notif.successes, "Order placed successfully")
}

func TestCheckout_MissingFields(t *testing.T) {
	f := setup(t, nil)
	require.NoError(t, f.cartSvc.Add("p1", 1))

	form := validForm()
	form.Email = ""
	_, err := f.checkout.Checkout(context.Background(), form)
	require.ErrorIs(t, err, service.ErrInvalidInput)

	// no partial state change
	require.Len(t, f.cartSvc.Items(), 1)
	require.Empty(t, f.catSvc.Orders())
	require.Contains(t, f.notif.errors, "Please fill in all required fields")
}

func TestCheckout_EmptyCart(t *testing.T) {
	f := setup(t, nil)

	_, err := f.checkout.Checkout(context.Background(), validForm())
	require.ErrorIs(t, err, service.ErrEmptyCart)
	require.Contains(t, f.notif.errors, "Your cart is empty")
}

func TestCheckout_DeclinedLeavesStateUntouched(t *testing.T) {
	f := setup(t, payment.ErrDeclined)
	require.NoError(t, f.cartSvc.Add("p1", 2))

	_, err := f.checkout.Checkout(context.Background(), validForm())
	require.ErrorIs(t, err, payment.ErrDeclined)

	// cart and orders untouched, retry possible
	require.Len(t, f.cartSvc.Items(), 1)
	require.Empty(t, f.catSvc.Orders())
	require.Contains(t, f.notif.errors, "Payment failed. Please try again.")
}

func TestCatalogService_ProductValidation(t *testing.T) {
	f := setup(t, nil)

	_, err := f.catSvc.CreateProduct(domain.Product{Price: decimal.NewFromInt(10), Stock: 1})
	require.ErrorIs(t, err, service.ErrInvalidInput)

	_, err = f.catSvc.CreateProduct(domain.Product{Name: "X", Price: decimal.NewFromInt(-1), Stock: 1})
	require.ErrorIs(t, err, service.ErrInvalidInput)

	created, err := f.catSvc.CreateProduct(domain.Product{Name: "X", Price: decimal.NewFromInt(10), Category: "styling", Stock: 1})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Contains(t, f.notif.successes, "Product added successfully")
}

func TestCatalogService_ContentValidation(t *testing.T) {
	f := setup(t, nil)

	_, err := f.catSvc.CreateContent(domain.Content{Body: "b", MediaType: domain.MediaTypeNone})
	require.ErrorIs(t, err, service.ErrInvalidInput)

	// media URL required when a media type is selected
	_, err = f.catSvc.CreateContent(domain.Content{Title: "t", Body: "b", MediaType: domain.MediaTypeImage})
	require.ErrorIs(t, err, service.ErrInvalidInput)
	require.Contains(t, f.notif.errors, "Media URL is required when media type is selected")

	_, err = f.catSvc.CreateContent(domain.Content{Title: "t", Body: "b", MediaType: domain.MediaTypeNone})
	require.NoError(t, err)
}

func TestCatalogService_OrderStatus(t *testing.T) {
	f := setup(t, nil)
	require.NoError(t, f.cartSvc.Add("p1", 1))
	order, err := f.checkout.Checkout(context.Background(), validForm())
	require.NoError(t, err)

	_, err = f.catSvc.UpdateOrderStatus(order.ID, "teleported")
	require.ErrorIs(t, err, service.ErrInvalidInput)

	updated, err := f.catSvc.UpdateOrderStatus(order.ID, "processing")
	require.NoError(t, err)
	require.Equal(t, domain.OrderStatusProcessing, updated.Status)

	_, err = f.catSvc.UpdateOrderStatus("missing", "shipped")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestCatalogService_Categories(t *testing.T) {
	f := setup(t, nil)
	require.Equal(t, []string{"all", "shampoo", "styling"}, f.catSvc.Categories())
}

func TestCatalogService_Dashboard(t *testing.T) {
	f := setup(t, nil)
	require.NoError(t, f.cartSvc.Add("p1", 2))
	_, err := f.checkout.Checkout(context.Background(), validForm())
	require.NoError(t, err)

	_, err = f.catSvc.CreateContent(domain.Content{Title: "t", Body: "b", MediaType: domain.MediaTypeNone, Active: true})
	require.NoError(t, err)

	stats := f.catSvc.Dashboard()
	require.Equal(t, 1, stats.OrderCount)
	require.Equal(t, 1, stats.PendingOrders)
	require.Equal(t, 1, stats.ActiveContent)
	require.True(t, stats.Revenue.Equal(decimal.NewFromFloat(49.98)))
	// p2 has stock 8, below the low-stock threshold
	require.Len(t, stats.LowStock, 1)
	require.Equal(t, "p2", stats.LowStock[0].ID)
}
