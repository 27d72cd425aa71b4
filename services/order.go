package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/storefront-demo/storefront-api/metrics"
	"github.com/storefront-demo/storefront-api/models"
)

// OrderService converts carts into orders. Checkout is the one multi-entity
// mutation in the system and runs as a single transaction: either the order
// and its items exist and the cart is gone, or nothing changed.
type OrderService struct {
	db      *gorm.DB
	logger  *zap.Logger
	metrics *metrics.AppMetrics
}

func NewOrderService(db *gorm.DB, logger *zap.Logger, m *metrics.AppMetrics) *OrderService {
	return &OrderService{db: db, logger: logger, metrics: m}
}

// CreateFromCart checks the user out: it snapshots each product's current
// price into an OrderItem, writes the order with status confirmed, and clears
// the cart, all in one transaction. An empty cart yields ErrEmptyCart and no
// writes.
func (s *OrderService) CreateFromCart(ctx context.Context, userID uint) (*models.Order, error) {
	var created models.Order

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var items []models.CartItem
		if err := tx.Where("user_id = ?", userID).Order("id").Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		productIDs := make([]uint, 0, len(items))
		for _, item := range items {
			productIDs = append(productIDs, item.ProductID)
		}
		var products []models.Product
		if err := tx.Where("id IN ?", productIDs).Find(&products).Error; err != nil {
			return err
		}
		prices := make(map[uint]decimal.Decimal, len(products))
		for _, p := range products {
			prices[p.ID] = p.Price
		}

		// Claim the cart rows before writing the order. A concurrent checkout
		// for the same user blocks on this delete; whichever transaction
		// commits second deletes fewer rows than it read and rolls back.
		res := tx.Where("user_id = ?", userID).Delete(&models.CartItem{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected < int64(len(items)) {
			return ErrEmptyCart
		}

		total := decimal.Zero
		orderItems := make([]models.OrderItem, 0, len(items))
		for _, item := range items {
			price, ok := prices[item.ProductID]
			if !ok {
				return ErrProductNotFound
			}
			total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
			orderItems = append(orderItems, models.OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     price,
			})
		}

		// TODO: decide whether checkout should check or decrement
		// stock_quantity; today the field is informational only.

		created = models.Order{
			OrderRef:    generateOrderRef(),
			UserID:      userID,
			TotalAmount: total,
			Status:      models.OrderStatusConfirmed,
			Items:       orderItems,
		}
		return tx.Create(&created).Error
	})
	if err != nil {
		if errors.Is(err, ErrEmptyCart) || errors.Is(err, ErrProductNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("create order from cart: %w", err)
	}

	var order models.Order
	err = s.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Product.Category").
		First(&order, created.ID).Error
	if err != nil {
		return nil, fmt.Errorf("load created order: %w", err)
	}

	s.logger.Info("order created",
		zap.Uint("order_id", order.ID),
		zap.String("order_ref", order.OrderRef),
		zap.Uint("user_id", userID),
		zap.String("total_amount", order.TotalAmount.StringFixed(2)),
		zap.Int("item_count", len(order.Items)))
	s.metrics.RecordOrderCreated(ctx, order.TotalAmount.InexactFloat64())

	return &order, nil
}

// UserOrders returns the user's orders, newest first, items resolved.
func (s *OrderService) UserOrders(ctx context.Context, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Product.Category").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// Get returns one of the user's orders by id.
func (s *OrderService) Get(ctx context.Context, userID, orderID uint) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Product.Category").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}
