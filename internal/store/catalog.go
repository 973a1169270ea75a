package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"darkher/internal/domain"
)

const (
	productsKey = "products"
	ordersKey   = "orders"
	contentKey  = "politicalContent"
)

// Catalog административное хранилище витрины: товары, заказы и рекламные
// блоки. Каждая коллекция живёт под своим ключом и сохраняется после
// каждой мутации; товары при отсутствии сохранённых данных берутся из seed.
type Catalog struct {
	mu      sync.RWMutex
	backend Backend
	newID   func() string
	now     func() time.Time

	products []domain.Product
	orders   []domain.Order
	content  []domain.Content
}

// NewCatalog гидратирует все три коллекции. Генератор идентификаторов и
// часы передаются явно, чтобы тесты были детерминированными.
func NewCatalog(backend Backend, seed []domain.Product, newID func() string, now func() time.Time) (*Catalog, error) {
	c := &Catalog{backend: backend, newID: newID, now: now}
	if !backend.Load(productsKey, &c.products) {
		c.products = make([]domain.Product, len(seed))
		copy(c.products, seed)
		if err := backend.Save(productsKey, c.products); err != nil {
			return nil, fmt.Errorf("backend.Save: %w", err)
		}
	}
	backend.Load(ordersKey, &c.orders)
	backend.Load(contentKey, &c.content)
	return c, nil
}

// --- товары ---

// AddProduct генерирует идентификатор и добавляет товар в конец коллекции
func (c *Catalog) AddProduct(p domain.Product) (domain.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p.ID = c.newID()
	c.products = append(c.products, p)
	return p, c.persistProducts()
}

// UpdateProduct замещает товар с совпадающим идентификатором
func (c *Catalog) UpdateProduct(p domain.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.products {
		if c.products[i].ID == p.ID {
			c.products[i] = p
			return c.persistProducts()
		}
	}
	return ErrNotFound
}

// DeleteProduct удаляет товар по идентификатору
func (c *Catalog) DeleteProduct(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.products {
		if c.products[i].ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			return c.persistProducts()
		}
	}
	return ErrNotFound
}

// GetProduct возвращает товар по идентификатору
func (c *Catalog) GetProduct(id string) (domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, ErrNotFound
}

// ListProducts возвращает товары, прошедшие фильтр, в исходном порядке
func (c *Catalog) ListProducts(f ProductFilter) []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return lo.Filter(c.products, func(p domain.Product, _ int) bool {
		if f.Category != "" && f.Category != "all" && p.Category != f.Category {
			return false
		}
		if f.Query != "" &&
			!containsIgnoreCase(p.Name, f.Query) &&
			!containsIgnoreCase(p.Description, f.Query) {
			return false
		}
		if f.FeaturedOnly && !p.Featured {
			return false
		}
		return true
	})
}

// Categories возвращает различные категории товаров в порядке первого появления
func (c *Catalog) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return lo.Uniq(lo.Map(c.products, func(p domain.Product, _ int) string { return p.Category }))
}

// --- заказы ---

// AddOrder создаёт заказ: идентификатор, текущее время, статус pending.
// Возвращает созданный заказ.
func (c *Catalog) AddOrder(items []domain.OrderItem, customer domain.Customer, total decimal.Decimal) (domain.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	o := domain.Order{
		ID:        c.newID(),
		Items:     items,
		Customer:  customer,
		Total:     total,
		CreatedAt: c.now().UTC(),
		Status:    domain.OrderStatusPending,
	}
	c.orders = append(c.orders, o)
	return o, c.persistOrders()
}

// UpdateOrderStatus перезаписывает только статус заказа. Любой допустимый
// статус принимается из любого: порядок жизненного цикла не навязывается.
func (c *Catalog) UpdateOrderStatus(id string, status domain.OrderStatus) (domain.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.orders {
		if c.orders[i].ID == id {
			c.orders[i].Status = status
			return c.orders[i], c.persistOrders()
		}
	}
	return domain.Order{}, ErrNotFound
}

// GetOrder возвращает заказ по идентификатору
func (c *Catalog) GetOrder(id string) (domain.Order, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, o := range c.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return domain.Order{}, ErrNotFound
}

// ListOrders возвращает заказы в порядке создания
func (c *Catalog) ListOrders() []domain.Order {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Order, len(c.orders))
	copy(out, c.orders)
	return out
}

// --- рекламные блоки ---

// AddContent генерирует идентификатор и метку времени, добавляет блок
func (c *Catalog) AddContent(ct domain.Content) (domain.Content, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ct.ID = c.newID()
	ct.CreatedAt = c.now().UTC()
	c.content = append(c.content, ct)
	return ct, c.persistContent()
}

// UpdateContent замещает блок с совпадающим идентификатором,
// дата создания при этом сохраняется
func (c *Catalog) UpdateContent(ct domain.Content) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.content {
		if c.content[i].ID == ct.ID {
			ct.CreatedAt = c.content[i].CreatedAt
			c.content[i] = ct
			return c.persistContent()
		}
	}
	return ErrNotFound
}

// DeleteContent удаляет блок по идентификатору
func (c *Catalog) DeleteContent(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.content {
		if c.content[i].ID == id {
			c.content = append(c.content[:i], c.content[i+1:]...)
			return c.persistContent()
		}
	}
	return ErrNotFound
}

// ToggleContent переключает флаг активности блока
func (c *Catalog) ToggleContent(id string) (domain.Content, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.content {
		if c.content[i].ID == id {
			c.content[i].Active = !c.content[i].Active
			return c.content[i], c.persistContent()
		}
	}
	return domain.Content{}, ErrNotFound
}

// ListContent возвращает все блоки в порядке создания
func (c *Catalog) ListContent() []domain.Content {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Content, len(c.content))
	copy(out, c.content)
	return out
}

// ActiveContent возвращает только активные блоки; их показывает витрина
func (c *Catalog) ActiveContent() []domain.Content {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return lo.Filter(c.content, func(ct domain.Content, _ int) bool { return ct.Active })
}

// persist helpers вызываются под write-локом

func (c *Catalog) persistProducts() error {
	if err := c.backend.Save(productsKey, c.products); err != nil {
		return fmt.Errorf("backend.Save: %w", err)
	}
	return nil
}

func (c *Catalog) persistOrders() error {
	if err := c.backend.Save(ordersKey, c.orders); err != nil {
		return fmt.Errorf("backend.Save: %w", err)
	}
	return nil
}

func (c *Catalog) persistContent() error {
	if err := c.backend.Save(contentKey, c.content); err != nil {
		return fmt.Errorf("backend.Save: %w", err)
	}
	return nil
}
