package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/storefront-demo/storefront-api/models"
)

// ProductService is the read-only catalog. Nothing here mutates products;
// checkout reads prices through its own transaction.
type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// Products lists the catalog with optional category filtering, case-insensitive
// substring search over name and description, and offset/limit pagination.
func (s *ProductService) Products(categoryID *uint, search string, offset, limit int) ([]models.Product, error) {
	query := s.db.Model(&models.Product{}).Preload("Category")

	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern)
	}

	var products []models.Product
	if err := query.Order("id").Offset(offset).Limit(limit).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Product fetches one product with its category resolved.
func (s *ProductService) Product(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.Preload("Category").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) Categories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
