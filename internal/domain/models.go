package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Product представляет товар витрины
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	Featured    bool            `json:"featured,omitempty"`
	Stock       int64           `json:"stock"`
}

// CartItem позиция корзины: снимок товара плюс количество
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int64   `json:"quantity"`
}

// OrderItem позиция заказа. Снимок товара фиксируется в момент оформления,
// последующие правки каталога заказ не меняют.
type OrderItem struct {
	Product  Product `json:"product"`
	Quantity int64   `json:"quantity"`
}

// Customer данные покупателя в заказе; адрес — составная строка
type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// OrderStatus тип статуса заказа
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// remember to add new statuses to the validOrderStatuses map
var validOrderStatuses = map[OrderStatus]struct{}{
	OrderStatusPending:    {},
	OrderStatusProcessing: {},
	OrderStatusShipped:    {},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

// ToOrderStatus проверяет строку и возвращает статус заказа
func ToOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if _, ok := validOrderStatuses[status]; ok {
		return status, nil
	}
	return "", errors.New("invalid order status")
}

// Order сущность заказа. После создания меняется только статус.
type Order struct {
	ID        string          `json:"id"`
	Items     []OrderItem     `json:"items"`
	Customer  Customer        `json:"customer"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"date"`
	Status    OrderStatus     `json:"status"`
}

// MediaType тип медиа-вложения рекламного блока
type MediaType string

const (
	MediaTypeNone  MediaType = "none"
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

var validMediaTypes = map[MediaType]struct{}{
	MediaTypeNone:  {},
	MediaTypeImage: {},
	MediaTypeVideo: {},
}

// ToMediaType проверяет строку и возвращает тип медиа
func ToMediaType(s string) (MediaType, error) {
	mt := MediaType(s)
	if _, ok := validMediaTypes[mt]; ok {
		return mt, nil
	}
	return "", errors.New("invalid media type")
}

// Content рекламный блок витрины ("political content" в терминах исходного
// интерфейса). Body хранит абзацы, разделённые переводом строки.
type Content struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"content"`
	MediaType MediaType `json:"mediaType"`
	MediaURL  string    `json:"mediaUrl,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}
