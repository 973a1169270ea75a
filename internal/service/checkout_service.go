package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"darkher/internal/domain"
	"darkher/internal/notify"
	"darkher/internal/store"
)

// ErrEmptyCart возвращается при попытке оформить пустую корзину
var ErrEmptyCart = errors.New("cart is empty")

// PaymentGateway контракт платёжного шлюза для оформления заказа
type PaymentGateway interface {
	Attempt(ctx context.Context, amount decimal.Decimal) error
}

// CheckoutForm данные покупателя с формы оформления; обязательны все поля
type CheckoutForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

func (f CheckoutForm) validate() error {
	if f.Name == "" || f.Email == "" || f.Address == "" || f.City == "" || f.Zip == "" || f.Country == "" {
		return ErrInvalidInput
	}
	return nil
}

// CheckoutService оформление заказа: валидация формы, платёж, создание
// заказа и очистка корзины. При любой неудаче состояние не меняется.
type CheckoutService struct {
	cart    *store.Cart
	catalog *store.Catalog
	gateway PaymentGateway
	notif   notify.Notifier
}

func NewCheckoutService(cart *store.Cart, catalog *store.Catalog, gateway PaymentGateway, notif notify.Notifier) *CheckoutService {
	return &CheckoutService{cart: cart, catalog: catalog, gateway: gateway, notif: notif}
}

// Checkout проводит платёж на сумму корзины и создаёт заказ из её снимка
func (s *CheckoutService) Checkout(ctx context.Context, form CheckoutForm) (domain.Order, error) {
	if err := form.validate(); err != nil {
		s.notif.Error("Please fill in all required fields")
		return domain.Order{}, err
	}

	items := s.cart.Items()
	if len(items) == 0 {
		s.notif.Error("Your cart is empty")
		return domain.Order{}, ErrEmptyCart
	}
	subtotal := s.cart.Subtotal()

	if err := s.gateway.Attempt(ctx, subtotal); err != nil {
		s.notif.Error("Payment failed. Please try again.")
		return domain.Order{}, fmt.Errorf("gateway.Attempt: %w", err)
	}
	s.notif.Success("Payment processed successfully!")

	customer := domain.Customer{
		Name:    form.Name,
		Email:   form.Email,
		Address: fmt.Sprintf("%s, %s, %s, %s", form.Address, form.City, form.Zip, form.Country),
	}
	orderItems := lo.Map(items, func(it domain.CartItem, _ int) domain.OrderItem {
		return domain.OrderItem{Product: it.Product, Quantity: it.Quantity}
	})

	order, err := s.catalog.AddOrder(orderItems, customer, subtotal)
	if err != nil {
		return domain.Order{}, fmt.Errorf("catalog.AddOrder: %w", err)
	}
	s.notif.Success("Order placed successfully")

	if err := s.cart.Clear(); err != nil {
		return domain.Order{}, fmt.Errorf("cart.Clear: %w", err)
	}
	return order, nil
}
