package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"shopfront/internal/catalog"
	"shopfront/internal/domain"
	"shopfront/internal/notify"
	"shopfront/internal/store"
)

var (
	// ErrProductNotFound indicates the requested product id is not in the catalog.
	ErrProductNotFound = errors.New("product not found")
	// ErrEmptyCart is returned when checkout is attempted on an empty cart.
	ErrEmptyCart = errors.New("cart is empty")
)

// CheckoutConfig holds the pricing knobs used to derive an order summary.
type CheckoutConfig struct {
	FreeShippingThreshold float64
	ShippingFee           float64
	TaxRate               float64
	ProcessingDelay       time.Duration
}

// DefaultCheckoutConfig mirrors the storefront's stock pricing: free
// shipping above 100, a flat 10 fee below, 8% tax.
func DefaultCheckoutConfig() CheckoutConfig {
	return CheckoutConfig{
		FreeShippingThreshold: 100,
		ShippingFee:           10,
		TaxRate:               0.08,
	}
}

// CartService is the single writer for the cart. Every mutation persists
// the new state and republishes the badge projection before returning.
type CartService interface {
	AddItem(ctx context.Context, productID int64) (domain.CartLine, error)
	RemoveItem(ctx context.Context, productID int64) error
	SetQuantity(ctx context.Context, productID int64, quantity int) error
	Clear(ctx context.Context) error
	Items(ctx context.Context) ([]domain.CartLine, error)
	Total(ctx context.Context) (float64, error)
	Count(ctx context.Context) (int, error)
	Badge(ctx context.Context) (notify.Badge, error)
	Checkout(ctx context.Context) (domain.OrderSummary, error)
	PlaceOrder(ctx context.Context) (*domain.Order, error)
	Orders(ctx context.Context) ([]domain.Order, error)
}

type cartService struct {
	store    *store.Adapter
	catalog  *catalog.Catalog
	notifier notify.Notifier
	badges   notify.BadgeListener
	checkout CheckoutConfig
	logger   *logrus.Logger
}

func NewCartService(adapter *store.Adapter, cat *catalog.Catalog, notifier notify.Notifier, badges notify.BadgeListener, cfg CheckoutConfig, logger *logrus.Logger) CartService {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	if badges == nil {
		badges = notify.Nop{}
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &cartService{
		store:    adapter,
		catalog:  cat,
		notifier: notifier,
		badges:   badges,
		checkout: cfg,
		logger:   logger,
	}
}

func (s *cartService) AddItem(ctx context.Context, productID int64) (domain.CartLine, error) {
	product, ok := s.catalog.GetByID(productID)
	if !ok {
		return domain.CartLine{}, ErrProductNotFound
	}

	cart, err := s.loadCart(ctx)
	if err != nil {
		return domain.CartLine{}, err
	}

	line := cart.Find(productID)
	if line != nil {
		line.Quantity++
	} else {
		cart.Lines = append(cart.Lines, domain.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			Quantity:  1,
		})
		line = &cart.Lines[len(cart.Lines)-1]
	}

	if err := s.saveCart(ctx, cart); err != nil {
		return domain.CartLine{}, err
	}

	s.notifier.Publish(notify.Notification{
		Message:  fmt.Sprintf("%s added to cart!", product.Name),
		Severity: notify.SeveritySuccess,
		Duration: notify.DefaultDuration,
	})
	return *line, nil
}

func (s *cartService) RemoveItem(ctx context.Context, productID int64) error {
	cart, err := s.loadCart(ctx)
	if err != nil {
		return err
	}

	cart.Remove(productID)
	if err := s.saveCart(ctx, cart); err != nil {
		return err
	}

	s.notifier.Publish(notify.Notification{
		Message:  "Item removed from cart",
		Severity: notify.SeverityInfo,
		Duration: notify.DefaultDuration,
	})
	return nil
}

func (s *cartService) SetQuantity(ctx context.Context, productID int64, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(ctx, productID)
	}

	cart, err := s.loadCart(ctx)
	if err != nil {
		return err
	}

	line := cart.Find(productID)
	if line == nil {
		return nil
	}
	line.Quantity = quantity
	return s.saveCart(ctx, cart)
}

func (s *cartService) Clear(ctx context.Context) error {
	if err := s.saveCart(ctx, domain.Cart{Lines: []domain.CartLine{}}); err != nil {
		return err
	}

	s.notifier.Publish(notify.Notification{
		Message:  "Cart cleared",
		Severity: notify.SeverityInfo,
		Duration: notify.DefaultDuration,
	})
	return nil
}

func (s *cartService) Items(ctx context.Context) ([]domain.CartLine, error) {
	cart, err := s.loadCart(ctx)
	if err != nil {
		return nil, err
	}
	return cart.Lines, nil
}

func (s *cartService) Total(ctx context.Context) (float64, error) {
	cart, err := s.loadCart(ctx)
	if err != nil {
		return 0, err
	}
	return cart.Total(), nil
}

func (s *cartService) Count(ctx context.Context) (int, error) {
	cart, err := s.loadCart(ctx)
	if err != nil {
		return 0, err
	}
	return cart.Count(), nil
}

func (s *cartService) Badge(ctx context.Context) (notify.Badge, error) {
	cart, err := s.loadCart(ctx)
	if err != nil {
		return notify.Badge{}, err
	}
	badge := badgeFor(cart)
	s.badges.CartChanged(badge)
	return badge, nil
}

func (s *cartService) Checkout(ctx context.Context) (domain.OrderSummary, error) {
	cart, err := s.loadCart(ctx)
	if err != nil {
		return domain.OrderSummary{}, err
	}
	if cart.IsEmpty() {
		s.notifier.Publish(notify.Notification{
			Message:  "Your cart is empty",
			Severity: notify.SeverityWarning,
			Duration: notify.DefaultDuration,
		})
		return domain.OrderSummary{}, ErrEmptyCart
	}

	// Simulated payment processing; there is no real gateway behind this.
	if s.checkout.ProcessingDelay > 0 {
		timer := time.NewTimer(s.checkout.ProcessingDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return domain.OrderSummary{}, ctx.Err()
		case <-timer.C:
		}
	}

	return s.summarize(cart), nil
}

func (s *cartService) PlaceOrder(ctx context.Context) (*domain.Order, error) {
	cart, err := s.loadCart(ctx)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	order := domain.Order{
		ID:        uuid.NewString(),
		Lines:     cart.Lines,
		Summary:   s.summarize(cart),
		CreatedAt: time.Now().UTC(),
	}

	orders, err := s.Orders(ctx)
	if err != nil {
		return nil, err
	}
	orders = append(orders, order)
	if err := s.store.Set(ctx, store.KeyOrders, orders); err != nil {
		return nil, err
	}

	if err := s.saveCart(ctx, domain.Cart{Lines: []domain.CartLine{}}); err != nil {
		return nil, err
	}

	s.logger.WithField("order_id", order.ID).Infof("order placed, total %.2f", order.Summary.GrandTotal)
	s.notifier.Publish(notify.Notification{
		Message:  "Thank you for your order!",
		Severity: notify.SeveritySuccess,
		Duration: notify.DefaultDuration,
	})
	return &order, nil
}

func (s *cartService) Orders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if _, err := s.store.Get(ctx, store.KeyOrders, &orders); err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

func (s *cartService) summarize(cart domain.Cart) domain.OrderSummary {
	subtotal := cart.Total()
	shipping := s.checkout.ShippingFee
	if subtotal > s.checkout.FreeShippingThreshold {
		shipping = 0
	}
	tax := subtotal * s.checkout.TaxRate
	return domain.OrderSummary{
		Subtotal:   subtotal,
		Shipping:   shipping,
		Tax:        tax,
		GrandTotal: subtotal + shipping + tax,
		ItemCount:  cart.Count(),
	}
}

func (s *cartService) loadCart(ctx context.Context) (domain.Cart, error) {
	var lines []domain.CartLine
	if _, err := s.store.Get(ctx, store.KeyCart, &lines); err != nil {
		return domain.Cart{}, err
	}
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return domain.Cart{Lines: lines}, nil
}

func (s *cartService) saveCart(ctx context.Context, cart domain.Cart) error {
	if err := s.store.Set(ctx, store.KeyCart, cart.Lines); err != nil {
		return err
	}
	s.badges.CartChanged(badgeFor(cart))
	return nil
}

func badgeFor(cart domain.Cart) notify.Badge {
	return notify.Badge{
		Count:    cart.Count(),
		Subtotal: cart.Total(),
	}
}
