package service

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"darkher/internal/domain"
	"darkher/internal/notify"
	"darkher/internal/store"
)

// товары с остатком ниже порога попадают в сводку как заканчивающиеся
const lowStockThreshold = 10

// CatalogService административные операции над товарами, заказами и
// рекламными блоками: валидация до мутации, уведомление после.
type CatalogService struct {
	catalog *store.Catalog
	notif   notify.Notifier
}

func NewCatalogService(catalog *store.Catalog, notif notify.Notifier) *CatalogService {
	return &CatalogService{catalog: catalog, notif: notif}
}

func (s *CatalogService) validateProduct(p domain.Product) error {
	if p.Name == "" || p.Price.IsNegative() || p.Stock < 0 {
		s.notif.Error("Please fill in all required fields")
		return ErrInvalidInput
	}
	return nil
}

// CreateProduct проверяет поля и добавляет товар
func (s *CatalogService) CreateProduct(p domain.Product) (domain.Product, error) {
	if err := s.validateProduct(p); err != nil {
		return domain.Product{}, err
	}
	created, err := s.catalog.AddProduct(p)
	if err != nil {
		return domain.Product{}, fmt.Errorf("catalog.AddProduct: %w", err)
	}
	s.notif.Success("Product added successfully")
	return created, nil
}

// UpdateProduct проверяет поля и замещает товар
func (s *CatalogService) UpdateProduct(p domain.Product) error {
	if p.ID == "" {
		s.notif.Error("Please fill in all required fields")
		return ErrInvalidInput
	}
	if err := s.validateProduct(p); err != nil {
		return err
	}
	if err := s.catalog.UpdateProduct(p); err != nil {
		return fmt.Errorf("catalog.UpdateProduct: %w", err)
	}
	s.notif.Success("Product updated successfully")
	return nil
}

// DeleteProduct удаляет товар
func (s *CatalogService) DeleteProduct(id string) error {
	if err := s.catalog.DeleteProduct(id); err != nil {
		return fmt.Errorf("catalog.DeleteProduct: %w", err)
	}
	s.notif.Success("Product deleted successfully")
	return nil
}

// GetProduct возвращает товар по идентификатору
func (s *CatalogService) GetProduct(id string) (domain.Product, error) {
	return s.catalog.GetProduct(id)
}

// ListProducts возвращает товары по фильтру
func (s *CatalogService) ListProducts(f store.ProductFilter) []domain.Product {
	return s.catalog.ListProducts(f)
}

// Categories значения для фильтра категорий: "all" плюс различные
// категории каталога в порядке первого появления
func (s *CatalogService) Categories() []string {
	return append([]string{"all"}, s.catalog.Categories()...)
}

// Orders возвращает все заказы
func (s *CatalogService) Orders() []domain.Order { return s.catalog.ListOrders() }

// GetOrder возвращает заказ по идентификатору
func (s *CatalogService) GetOrder(id string) (domain.Order, error) {
	return s.catalog.GetOrder(id)
}

// UpdateOrderStatus разбирает строку статуса и перезаписывает статус заказа
func (s *CatalogService) UpdateOrderStatus(id, status string) (domain.Order, error) {
	parsed, err := domain.ToOrderStatus(status)
	if err != nil {
		s.notif.Error("Invalid order status")
		return domain.Order{}, fmt.Errorf("%w: %s", ErrInvalidInput, status)
	}
	o, err := s.catalog.UpdateOrderStatus(id, parsed)
	if err != nil {
		return domain.Order{}, fmt.Errorf("catalog.UpdateOrderStatus: %w", err)
	}
	s.notif.Success("Order status updated")
	return o, nil
}

func (s *CatalogService) validateContent(ct domain.Content) error {
	if ct.Title == "" || ct.Body == "" {
		s.notif.Error("Title and content are required")
		return ErrInvalidInput
	}
	if _, err := domain.ToMediaType(string(ct.MediaType)); err != nil {
		s.notif.Error("Invalid media type")
		return ErrInvalidInput
	}
	if ct.MediaType != domain.MediaTypeNone && ct.MediaURL == "" {
		s.notif.Error("Media URL is required when media type is selected")
		return ErrInvalidInput
	}
	return nil
}

// CreateContent проверяет поля и добавляет рекламный блок
func (s *CatalogService) CreateContent(ct domain.Content) (domain.Content, error) {
	if err := s.validateContent(ct); err != nil {
		return domain.Content{}, err
	}
	created, err := s.catalog.AddContent(ct)
	if err != nil {
		return domain.Content{}, fmt.Errorf("catalog.AddContent: %w", err)
	}
	s.notif.Success("Political content added successfully")
	return created, nil
}

// UpdateContent проверяет поля и замещает блок
func (s *CatalogService) UpdateContent(ct domain.Content) error {
	if ct.ID == "" {
		s.notif.Error("Title and content are required")
		return ErrInvalidInput
	}
	if err := s.validateContent(ct); err != nil {
		return err
	}
	if err := s.catalog.UpdateContent(ct); err != nil {
		return fmt.Errorf("catalog.UpdateContent: %w", err)
	}
	s.notif.Success("Political content updated successfully")
	return nil
}

// DeleteContent удаляет блок
func (s *CatalogService) DeleteContent(id string) error {
	if err := s.catalog.DeleteContent(id); err != nil {
		return fmt.Errorf("catalog.DeleteContent: %w", err)
	}
	s.notif.Success("Political content deleted successfully")
	return nil
}

// ToggleContent переключает активность блока
func (s *CatalogService) ToggleContent(id string) (domain.Content, error) {
	ct, err := s.catalog.ToggleContent(id)
	if err != nil {
		return domain.Content{}, fmt.Errorf("catalog.ToggleContent: %w", err)
	}
	s.notif.Success("Content status updated")
	return ct, nil
}

// Content возвращает все блоки
func (s *CatalogService) Content() []domain.Content { return s.catalog.ListContent() }

// ActiveContent возвращает только активные блоки
func (s *CatalogService) ActiveContent() []domain.Content { return s.catalog.ActiveContent() }

// DashboardStats сводка административной панели
type DashboardStats struct {
	Revenue       decimal.Decimal  `json:"revenue"`
	OrderCount    int              `json:"order_count"`
	PendingOrders int              `json:"pending_orders"`
	ActiveContent int              `json:"active_content"`
	LowStock      []domain.Product `json:"low_stock"`
}

// Dashboard пересчитывает сводку по текущему состоянию коллекций
func (s *CatalogService) Dashboard() DashboardStats {
	orders := s.catalog.ListOrders()
	return DashboardStats{
		Revenue: lo.Reduce(orders, func(acc decimal.Decimal, o domain.Order, _ int) decimal.Decimal {
			return acc.Add(o.Total)
		}, decimal.Zero),
		OrderCount: len(orders),
		PendingOrders: lo.CountBy(orders, func(o domain.Order) bool {
			return o.Status == domain.OrderStatusPending
		}),
		ActiveContent: len(s.catalog.ActiveContent()),
		LowStock: lo.Filter(s.catalog.ListProducts(store.ProductFilter{}), func(p domain.Product, _ int) bool {
			return p.Stock < lowStockThreshold
		}),
	}
}
