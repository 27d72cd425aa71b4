package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/storefront-demo/storefront-api/models"
)

// CartService owns the per-user cart rows. Every operation takes the acting
// user's id; a user can never touch another user's rows.
type CartService struct {
	db *gorm.DB
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

// Items returns the user's cart with product data fully resolved.
func (s *CartService) Items(userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := s.db.
		Preload("Product").
		Preload("Product.Category").
		Where("user_id = ?", userID).
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Add puts a product into the cart. If the (user, product) row already exists
// its quantity is incremented in place; the composite unique index plus the
// upsert keeps concurrent adds from ever creating a duplicate row.
func (s *CartService) Add(userID, productID uint, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	var product models.Product
	if err := s.db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	item := models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("cart_items.quantity + ?", quantity),
			"updated_at": time.Now(),
		}),
	}).Create(&item).Error
	if err != nil {
		return nil, err
	}

	// Re-read so the caller sees the merged quantity and the resolved product.
	var out models.CartItem
	err = s.db.
		Preload("Product").
		Preload("Product.Category").
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&out).Error
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateQuantity sets a cart row's quantity; zero or less deletes the row and
// returns nil. A row owned by someone else is reported as not found.
func (s *CartService) UpdateQuantity(userID, cartItemID uint, quantity int) (*models.CartItem, error) {
	var item models.CartItem
	err := s.db.Where("id = ? AND user_id = ?", cartItemID, userID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, err
	}

	if quantity <= 0 {
		if err := s.db.Delete(&item).Error; err != nil {
			return nil, err
		}
		return nil, nil
	}

	item.Quantity = quantity
	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}

	var out models.CartItem
	if err := s.db.Preload("Product").Preload("Product.Category").First(&out, item.ID).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// Remove deletes a single cart row owned by the user.
func (s *CartService) Remove(userID, cartItemID uint) error {
	result := s.db.Where("id = ? AND user_id = ?", cartItemID, userID).Delete(&models.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

// Clear deletes all cart rows for the user and reports whether any existed.
func (s *CartService) Clear(userID uint) (bool, error) {
	result := s.db.Where("user_id = ?", userID).Delete(&models.CartItem{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Total sums product price times quantity over the current cart.
func (s *CartService) Total(userID uint) (decimal.Decimal, error) {
	items, err := s.Items(userID)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total, nil
}
