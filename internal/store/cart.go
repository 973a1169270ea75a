package store

import (
	"fmt"
	"sync"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"darkher/internal/domain"
)

const cartKey = "cart"

// Cart корзина покупателя: упорядоченный список позиций, не более одной
// на товар. Гидратируется из хранилища при создании и сохраняется после
// каждого изменения.
type Cart struct {
	mu      sync.RWMutex
	backend Backend
	items   []domain.CartItem
}

func NewCart(backend Backend) *Cart {
	c := &Cart{backend: backend}
	backend.Load(cartKey, &c.items)
	return c
}

// persist вызывается под write-локом
func (c *Cart) persist() error {
	if err := c.backend.Save(cartKey, c.items); err != nil {
		return fmt.Errorf("backend.Save: %w", err)
	}
	return nil
}

// Add добавляет товар в корзину. Если позиция уже есть, количество
// увеличивается; merged сообщает, какой из случаев произошёл.
// Верхняя граница по остатку на этом слое не проверяется.
func (c *Cart) Add(p domain.Product, qty int64) (merged bool, err error) {
	if qty < 1 {
		return false, ErrInvalidQuantity
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Product.ID == p.ID {
			c.items[i].Quantity += qty
			return true, c.persist()
		}
	}
	c.items = append(c.items, domain.CartItem{Product: p, Quantity: qty})
	return false, c.persist()
}

// Remove удаляет позицию товара. Отсутствие позиции не ошибка:
// повторный вызов — no-op.
func (c *Cart) Remove(productID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return c.persist()
		}
	}
	return nil
}

// UpdateQuantity выставляет количество позиции ровно в qty.
// Количество меньше единицы отклоняется; ограничение сверху остатком
// товара — забота вызывающей стороны.
func (c *Cart) UpdateQuantity(productID string, qty int64) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items[i].Quantity = qty
			return c.persist()
		}
	}
	return ErrNotFound
}

// Clear опустошает корзину
func (c *Cart) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = c.items[:0]
	return c.persist()
}

// Items возвращает копию позиций в порядке добавления
func (c *Cart) Items() []domain.CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// TotalItems суммарное количество единиц товара; считается заново при каждом вызове
func (c *Cart) TotalItems() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return lo.SumBy(c.items, func(it domain.CartItem) int64 { return it.Quantity })
}

// Subtotal сумма (цена × количество) по всем позициям; считается заново при каждом вызове
func (c *Cart) Subtotal() decimal.Decimal {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return lo.Reduce(c.items, func(acc decimal.Decimal, it domain.CartItem, _ int) decimal.Decimal {
		return acc.Add(it.Product.Price.Mul(decimal.NewFromInt(it.Quantity)))
	}, decimal.Zero)
}
