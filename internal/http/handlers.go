package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"darkher/internal/domain"
	"darkher/internal/payment"
	"darkher/internal/service"
	"darkher/internal/store"
)

type Server struct {
	engine   *gin.Engine
	cart     *service.CartService
	catalog  *service.CatalogService
	checkout *service.CheckoutService
}

func NewServer(cart *service.CartService, catalog *service.CatalogService, checkout *service.CheckoutService) *Server {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), requestID())
	s := &Server{engine: r, cart: cart, catalog: catalog, checkout: checkout}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

// requestID проставляет X-Request-ID в ответ, сохраняя входящий заголовок
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

func (s *Server) registerRoutes() {
	// Swagger UI
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := s.engine.Group("/api/v1")
	{
		products := v1.Group("/products")
		products.GET("", s.listProducts)
		products.GET("/categories", s.listCategories)
		products.GET(":id", s.getProduct)

		cart := v1.Group("/cart")
		cart.GET("", s.getCart)
		cart.POST("/items", s.addCartItem)
		cart.PUT("/items/:productId", s.updateCartItem)
		cart.DELETE("/items/:productId", s.removeCartItem)
		cart.DELETE("", s.clearCart)

		v1.POST("/checkout", s.checkoutOrder)
		v1.GET("/content", s.listActiveContent)

		admin := v1.Group("/admin")
		{
			admin.POST("/products", s.createProduct)
			admin.PUT("/products/:id", s.updateProduct)
			admin.DELETE("/products/:id", s.deleteProduct)

			admin.GET("/orders", s.listOrders)
			admin.GET("/orders/:id", s.getOrder)
			admin.PUT("/orders/:id/status", s.updateOrderStatus)

			admin.GET("/content", s.listContent)
			admin.POST("/content", s.createContent)
			admin.PUT("/content/:id", s.updateContent)
			admin.DELETE("/content/:id", s.deleteContent)
			admin.POST("/content/:id/toggle", s.toggleContent)

			admin.GET("/dashboard", s.dashboard)
		}
	}
}

// Storefront handlers

// @Summary List products
// @Tags products
// @Produce json
// @Param category query string false "Category, 'all' disables the filter"
// @Param q query string false "Name or description contains"
// @Param featured query bool false "Featured products only"
// @Success 200 {array} domain.Product
// @Router /products [get]
func (s *Server) listProducts(c *gin.Context) {
	f := store.ProductFilter{
		Category: c.Query("category"),
		Query:    c.Query("q"),
	}
	if c.Query("featured") == "true" {
		f.FeaturedOnly = true
	}
	c.JSON(http.StatusOK, s.catalog.ListProducts(f))
}

// @Summary List filter categories
// @Tags products
// @Produce json
// @Success 200 {array} string
// @Router /products/categories [get]
func (s *Server) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.Categories())
}

// @Summary Get product by id
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} domain.Product
// @Failure 404 {object} map[string]string
// @Router /products/{id} [get]
func (s *Server) getProduct(c *gin.Context) {
	p, err := s.catalog.GetProduct(c.Param("id"))
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// Cart handlers

type cartView struct {
	Items      []domain.CartItem `json:"items"`
	TotalItems int64             `json:"total_items"`
	Subtotal   decimal.Decimal   `json:"subtotal"`
}

func (s *Server) cartSnapshot() cartView {
	return cartView{
		Items:      s.cart.Items(),
		TotalItems: s.cart.TotalItems(),
		Subtotal:   s.cart.Subtotal(),
	}
}

// @Summary Get cart with totals
// @Tags cart
// @Produce json
// @Success 200 {object} cartView
// @Router /cart [get]
func (s *Server) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, s.cartSnapshot())
}

type addCartItemReq struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int64  `json:"quantity"`
}

// @Summary Add product to cart
// @Tags cart
// @Accept json
// @Produce json
// @Param input body addCartItemReq true "Item"
// @Success 200 {object} cartView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items [post]
func (s *Server) addCartItem(c *gin.Context) {
	var req addCartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if err := s.cart.Add(req.ProductID, req.Quantity); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.cartSnapshot())
}

type updateCartItemReq struct {
	Quantity int64 `json:"quantity"`
}

// @Summary Set cart item quantity
// @Tags cart
// @Accept json
// @Produce json
// @Param productId path string true "Product ID"
// @Param input body updateCartItemReq true "Quantity"
// @Success 200 {object} cartView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items/{productId} [put]
func (s *Server) updateCartItem(c *gin.Context) {
	var req updateCartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if err := s.cart.UpdateQuantity(c.Param("productId"), req.Quantity); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.cartSnapshot())
}

// @Summary Remove product from cart
// @Tags cart
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} cartView
// @Router /cart/items/{productId} [delete]
func (s *Server) removeCartItem(c *gin.Context) {
	if err := s.cart.Remove(c.Param("productId")); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.cartSnapshot())
}

// @Summary Clear cart
// @Tags cart
// @Produce json
// @Success 200 {object} cartView
// @Router /cart [delete]
func (s *Server) clearCart(c *gin.Context) {
	if err := s.cart.Clear(); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.cartSnapshot())
}

// Checkout handler

// @Summary Checkout: simulated payment, then order creation
// @Tags checkout
// @Accept json
// @Produce json
// @Param input body service.CheckoutForm true "Customer"
// @Success 201 {object} domain.Order
// @Failure 400 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Router /checkout [post]
func (s *Server) checkoutOrder(c *gin.Context) {
	var form service.CheckoutForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	o, err := s.checkout.Checkout(c, form)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, o)
}

// Content handlers

// @Summary List active promo content
// @Tags content
// @Produce json
// @Success 200 {array} domain.Content
// @Router /content [get]
func (s *Server) listActiveContent(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.ActiveContent())
}

// Admin handlers

type productReq struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	Featured    bool            `json:"featured"`
	Stock       int64           `json:"stock"`
}

func (r productReq) toDomain(id string) domain.Product {
	return domain.Product{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Image:       r.Image,
		Category:    r.Category,
		Featured:    r.Featured,
		Stock:       r.Stock,
	}
}

// @Summary Create product
// @Tags admin
// @Accept json
// @Produce json
// @Param input body productReq true "Product"
// @Success 201 {object} domain.Product
// @Failure 400 {object} map[string]string
// @Router /admin/products [post]
func (s *Server) createProduct(c *gin.Context) {
	var req productReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	p, err := s.catalog.CreateProduct(req.toDomain(""))
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, p)
}

// @Summary Update product
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param input body productReq true "Product"
// @Success 200 {object} domain.Product
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/products/{id} [put]
func (s *Server) updateProduct(c *gin.Context) {
	var req productReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	p := req.toDomain(c.Param("id"))
	if err := s.catalog.UpdateProduct(p); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary Delete product
// @Tags admin
// @Param id path string true "Product ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /admin/products/{id} [delete]
func (s *Server) deleteProduct(c *gin.Context) {
	if err := s.catalog.DeleteProduct(c.Param("id")); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List orders
// @Tags admin
// @Produce json
// @Success 200 {array} domain.Order
// @Router /admin/orders [get]
func (s *Server) listOrders(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.Orders())
}

// @Summary Get order by id
// @Tags admin
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} domain.Order
// @Failure 404 {object} map[string]string
// @Router /admin/orders/{id} [get]
func (s *Server) getOrder(c *gin.Context) {
	o, err := s.catalog.GetOrder(c.Param("id"))
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, o)
}

type updateOrderStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// @Summary Update order status
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param input body updateOrderStatusReq true "Status"
// @Success 200 {object} domain.Order
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/orders/{id}/status [put]
func (s *Server) updateOrderStatus(c *gin.Context) {
	var req updateOrderStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	o, err := s.catalog.UpdateOrderStatus(c.Param("id"), req.Status)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, o)
}

type contentReq struct {
	Title     string `json:"title"`
	Body      string `json:"content"`
	MediaType string `json:"mediaType"`
	MediaURL  string `json:"mediaUrl"`
	Active    bool   `json:"active"`
}

func (r contentReq) toDomain(id string) domain.Content {
	return domain.Content{
		ID:        id,
		Title:     r.Title,
		Body:      r.Body,
		MediaType: domain.MediaType(r.MediaType),
		MediaURL:  r.MediaURL,
		Active:    r.Active,
	}
}

// @Summary List all promo content
// @Tags admin
// @Produce json
// @Success 200 {array} domain.Content
// @Router /admin/content [get]
func (s *Server) listContent(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.Content())
}

// @Summary Create promo content
// @Tags admin
// @Accept json
// @Produce json
// @Param input body contentReq true "Content"
// @Success 201 {object} domain.Content
// @Failure 400 {object} map[string]string
// @Router /admin/content [post]
func (s *Server) createContent(c *gin.Context) {
	var req contentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	ct, err := s.catalog.CreateContent(req.toDomain(""))
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, ct)
}

// @Summary Update promo content
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Content ID"
// @Param input body contentReq true "Content"
// @Success 200 {object} domain.Content
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/content/{id} [put]
func (s *Server) updateContent(c *gin.Context) {
	var req contentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	ct := req.toDomain(c.Param("id"))
	if err := s.catalog.UpdateContent(ct); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ct)
}

// @Summary Delete promo content
// @Tags admin
// @Param id path string true "Content ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /admin/content/{id} [delete]
func (s *Server) deleteContent(c *gin.Context) {
	if err := s.catalog.DeleteContent(c.Param("id")); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Toggle promo content active flag
// @Tags admin
// @Produce json
// @Param id path string true "Content ID"
// @Success 200 {object} domain.Content
// @Failure 404 {object} map[string]string
// @Router /admin/content/{id}/toggle [post]
func (s *Server) toggleContent(c *gin.Context) {
	ct, err := s.catalog.ToggleContent(c.Param("id"))
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ct)
}

// @Summary Admin dashboard aggregates
// @Tags admin
// @Produce json
// @Success 200 {object} service.DashboardStats
// @Router /admin/dashboard [get]
func (s *Server) dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.Dashboard())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, store.ErrInvalidQuantity):
		return http.StatusBadRequest
	case errors.Is(err, payment.ErrDeclined):
		return http.StatusPaymentRequired
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
