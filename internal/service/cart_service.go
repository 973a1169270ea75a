package service

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"darkher/internal/domain"
	"darkher/internal/notify"
	"darkher/internal/store"
)

var ErrInvalidInput = errors.New("invalid input")

// CartService операции корзины поверх хранилища: разрешает товар по
// идентификатору, проверяет количество и шлёт уведомления.
type CartService struct {
	cart    *store.Cart
	catalog *store.Catalog
	notif   notify.Notifier
}

func NewCartService(cart *store.Cart, catalog *store.Catalog, notif notify.Notifier) *CartService {
	return &CartService{cart: cart, catalog: catalog, notif: notif}
}

// Add кладёт товар в корзину; нулевое количество трактуется как единица
func (s *CartService) Add(productID string, qty int64) error {
	if qty == 0 {
		qty = 1
	}
	if qty < 1 {
		s.notif.Error("Invalid quantity")
		return fmt.Errorf("%w: quantity %d", ErrInvalidInput, qty)
	}
	p, err := s.catalog.GetProduct(productID)
	if err != nil {
		s.notif.Error("Product not found")
		return fmt.Errorf("catalog.GetProduct: %w", err)
	}
	merged, err := s.cart.Add(p, qty)
	if err != nil {
		return fmt.Errorf("cart.Add: %w", err)
	}
	if merged {
		s.notif.Success("Updated quantity in cart")
	} else {
		s.notif.Success("Added to cart")
	}
	return nil
}

// UpdateQuantity выставляет количество позиции
func (s *CartService) UpdateQuantity(productID string, qty int64) error {
	if err := s.cart.UpdateQuantity(productID, qty); err != nil {
		if errors.Is(err, store.ErrInvalidQuantity) {
			s.notif.Error("Invalid quantity")
		}
		return fmt.Errorf("cart.UpdateQuantity: %w", err)
	}
	s.notif.Success("Updated quantity in cart")
	return nil
}

// Remove убирает позицию из корзины
func (s *CartService) Remove(productID string) error {
	if err := s.cart.Remove(productID); err != nil {
		return fmt.Errorf("cart.Remove: %w", err)
	}
	s.notif.Success("Removed from cart")
	return nil
}

// Clear опустошает корзину
func (s *CartService) Clear() error {
	if err := s.cart.Clear(); err != nil {
		return fmt.Errorf("cart.Clear: %w", err)
	}
	s.notif.Success("Cart cleared")
	return nil
}

// Items снимок позиций корзины
func (s *CartService) Items() []domain.CartItem { return s.cart.Items() }

// TotalItems суммарное количество единиц
func (s *CartService) TotalItems() int64 { return s.cart.TotalItems() }

// Subtotal сумма корзины
func (s *CartService) Subtotal() decimal.Decimal { return s.cart.Subtotal() }
