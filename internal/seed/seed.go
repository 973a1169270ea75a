package seed

import (
	"github.com/shopspring/decimal"

	"darkher/internal/domain"
)

// Products возвращает стартовый каталог витрины. Используется, когда под
// ключом products ещё нет сохранённых данных.
func Products() []domain.Product {
	return []domain.Product{
		{
			ID:          "p1",
			Name:        "Revitalizing Shampoo",
			Description: "A nourishing shampoo that revitalizes dry and damaged hair, leaving it soft, smooth, and shiny. Infused with argan oil and vitamin E to restore hair health from within.",
			Price:       decimal.NewFromFloat(24.99),
			Image:       "https://images.unsplash.com/photo-1576426863848-c21f53c60b19?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Category:    "shampoo",
			Featured:    true,
			Stock:       50,
		},
		{
			ID:          "p2",
			Name:        "Hydrating Conditioner",
			Description: "Deeply hydrates and detangles hair, making it smoother and more manageable without weighing it down. Contains coconut oil and shea butter for ultimate moisture.",
			Price:       decimal.NewFromFloat(22.99),
			Image:       "https://images.unsplash.com/photo-1535585209827-a15fcdbc4c2d?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Category:    "conditioner",
			Stock:       45,
		},
		{
			ID:          "p3",
			Name:        "Repair Hair Mask",
			Description: "An intensive treatment that repairs severely damaged hair and split ends, restoring strength and vitality. Weekly use transforms even the most damaged hair.",
			Price:       decimal.NewFromFloat(29.99),
			Image:       "https://images.unsplash.com/photo-1526947425960-945c6e72858f?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Category:    "treatment",
			Featured:    true,
			Stock:       30,
		},
		{
			ID:          "p4",
			Name:        "Volumizing Mousse",
			Description: "Adds incredible volume and texture to fine hair without stiffness or stickiness. Perfect for creating bouncy, full-bodied styles that last all day.",
			Price:       decimal.NewFromFloat(18.99),
			Image:       "https://images.unsplash.com/photo-1571875257727-256c39da42af?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Category:    "styling",
			Stock:       40,
		},
		{
			ID:          "p5",
			Name:        "Anti-Frizz Serum",
			Description: "Tames frizz and flyaways while adding brilliant shine to all hair types. This lightweight serum controls humidity and leaves hair silky smooth.",
			Price:       decimal.NewFromFloat(26.99),
			Image:       "https://images.unsplash.com/photo-1567721913486-6585f069b332?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Category:    "styling",
			Featured:    true,
			Stock:       35,
		},
		{
			ID:          "p6",
			Name:        "Curl Defining Cream",
			Description: "Enhances natural curls, providing definition and bounce without crunchiness. Formulated to fight frizz while maintaining curl pattern and adding moisture.",
			Price:       decimal.NewFromFloat(21.99),
			Image:       "https://images.unsplash.com/photo-1594938298603-c8148c4dae35?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Category:    "styling",
			Stock:       25,
		},
		{
			ID:          "p7",
			Name:        "Scalp Treatment Oil",
			Description: "Nourishing oil blend that soothes dry, irritated scalps and promotes healthy hair growth. Contains tea tree oil and rosemary to stimulate circulation.",
			Price:       decimal.NewFromFloat(32.99),
			Image:       "https://images.unsplash.com/photo-1608248543803-ba4f8c70ae0b?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Category:    "treatment",
			Stock:       20,
		},
		{
			ID:          "p8",
			Name:        "Color Protection Shampoo",
			Description: "Specially formulated to preserve color-treated hair, preventing fade and extending vibrancy between salon visits. Contains UV filters and antioxidants.",
			Price:       decimal.NewFromFloat(27.99),
			Image:       "https://images.unsplash.com/photo-1566534236478-bfa845a518d4?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Category:    "shampoo",
			Stock:       38,
		},
	}
}
