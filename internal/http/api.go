package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"shopfront/internal/catalog"
	"shopfront/internal/domain"
	"shopfront/internal/service"
)

// Handler wires HTTP routes to the storefront services.
type Handler struct {
	catalog  *catalog.Catalog
	cart     service.CartService
	sessions service.SessionService
	tokens   *TokenIssuer
}

func NewHandler(cat *catalog.Catalog, cart service.CartService, sessions service.SessionService, tokens *TokenIssuer) *Handler {
	return &Handler{
		catalog:  cat,
		cart:     cart,
		sessions: sessions,
		tokens:   tokens,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	api := router.Group("/api")
	{
		api.GET("/products", h.listProducts)
		api.GET("/products/:id", h.getProduct)

		api.GET("/cart", h.getCart)
		api.POST("/cart/items", h.addCartItem)
		api.PATCH("/cart/items/:id", h.setCartItemQuantity)
		api.DELETE("/cart/items/:id", h.removeCartItem)
		api.DELETE("/cart", h.clearCart)
		api.GET("/cart/badge", h.getCartBadge)
		api.POST("/cart/checkout", h.checkout)

		api.POST("/orders", h.placeOrder)
		api.GET("/orders", h.authRequired(), h.listOrders)

		api.POST("/auth/register", h.register)
		api.POST("/auth/login", h.login)
		api.POST("/auth/logout", h.logout)
		api.GET("/auth/me", h.currentUser)

		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"ok": "ok"})
		})
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func (h *Handler) listProducts(c *gin.Context) {
	var products []domain.Product

	switch {
	case c.Query("q") != "":
		products = h.catalog.Search(c.Query("q"))
	case c.Query("featured") == "true":
		products = h.catalog.Featured()
	default:
		products = h.catalog.ByCategory(domain.Category(c.DefaultQuery("category", "all")))
	}

	resp := make([]ProductResponse, len(products))
	for i := range products {
		resp[i] = productToResponse(products[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	product, ok := h.catalog.GetByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": service.ErrProductNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, productToResponse(product))
}

type addCartItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
}

type setQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func (h *Handler) getCart(c *gin.Context) {
	lines, err := h.cart.Items(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	cart := domain.Cart{Lines: lines}
	c.JSON(http.StatusOK, cartToResponse(lines, cart.Total()))
}

func (h *Handler) addCartItem(c *gin.Context) {
	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	line, err := h.cart.AddItem(c.Request.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, lineToResponse(line))
}

func (h *Handler) setCartItemQuantity(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	var req setQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.cart.SetQuantity(c.Request.Context(), id, *req.Quantity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.getCart(c)
}

func (h *Handler) removeCartItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	if err := h.cart.RemoveItem(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": id})
}

func (h *Handler) clearCart(c *gin.Context) {
	if err := h.cart.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) getCartBadge(c *gin.Context) {
	badge, err := h.cart.Badge(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, badge)
}

func (h *Handler) checkout(c *gin.Context) {
	summary, err := h.cart.Checkout(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summaryToResponse(summary))
}

func (h *Handler) placeOrder(c *gin.Context) {
	order, err := h.cart.PlaceOrder(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, orderToResponse(*order))
}

func (h *Handler) listOrders(c *gin.Context) {
	orders, err := h.cart.Orders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]OrderResponse, len(orders))
	for i := range orders {
		resp[i] = orderToResponse(orders[i])
	}
	c.JSON(http.StatusOK, resp)
}

type ProductResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Featured    bool    `json:"featured"`
	Badge       string  `json:"badge,omitempty"`
}

type CartLineResponse struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

type CartResponse struct {
	Lines []CartLineResponse `json:"lines"`
	Total float64            `json:"total"`
}

type OrderSummaryResponse struct {
	Subtotal   float64 `json:"subtotal"`
	Shipping   float64 `json:"shipping"`
	Tax        float64 `json:"tax"`
	GrandTotal float64 `json:"grand_total"`
	ItemCount  int     `json:"item_count"`
}

type OrderResponse struct {
	ID        string               `json:"id"`
	Lines     []CartLineResponse   `json:"lines"`
	Summary   OrderSummaryResponse `json:"summary"`
	CreatedAt string               `json:"created_at"`
}

func productToResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    string(p.Category),
		Price:       p.Price,
		Image:       p.Image,
		Description: p.Description,
		Featured:    p.Featured,
		Badge:       p.Badge,
	}
}

func lineToResponse(line domain.CartLine) CartLineResponse {
	return CartLineResponse{
		ProductID: line.ProductID,
		Name:      line.Name,
		Price:     line.Price,
		Image:     line.Image,
		Quantity:  line.Quantity,
	}
}

func cartToResponse(lines []domain.CartLine, total float64) CartResponse {
	resp := CartResponse{
		Lines: make([]CartLineResponse, len(lines)),
		Total: total,
	}
	for i := range lines {
		resp.Lines[i] = lineToResponse(lines[i])
	}
	return resp
}

func summaryToResponse(s domain.OrderSummary) OrderSummaryResponse {
	return OrderSummaryResponse{
		Subtotal:   s.Subtotal,
		Shipping:   s.Shipping,
		Tax:        s.Tax,
		GrandTotal: s.GrandTotal,
		ItemCount:  s.ItemCount,
	}
}

func orderToResponse(order domain.Order) OrderResponse {
	resp := OrderResponse{
		ID:        order.ID,
		Lines:     make([]CartLineResponse, len(order.Lines)),
		Summary:   summaryToResponse(order.Summary),
		CreatedAt: order.CreatedAt.Format(time.RFC3339),
	}
	for i := range order.Lines {
		resp.Lines[i] = lineToResponse(order.Lines[i])
	}
	return resp
}
