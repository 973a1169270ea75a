package store

import (
	"errors"
	"strings"
)

// ErrNotFound возвращается, когда сущность не найдена
var ErrNotFound = errors.New("not found")

// ErrInvalidQuantity возвращается при количестве меньше единицы
var ErrInvalidQuantity = errors.New("invalid quantity")

// Backend абстракция долговременного хранилища коллекций.
// Load сообщает false, если данных по ключу нет или они нечитаемы.
type Backend interface {
	Load(key string, dest any) bool
	Save(key string, value any) error
}

// ProductFilter параметры фильтрации списка товаров.
// Category сравнивается точно (с учётом регистра), "all" и пустая строка
// отключают фильтр; Query ищется как подстрока без учёта регистра
// в имени и описании.
type ProductFilter struct {
	Category     string
	Query        string
	FeaturedOnly bool
}

// helper: case-insensitive contains
func containsIgnoreCase(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
