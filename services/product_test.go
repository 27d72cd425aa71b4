package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductsByCategory(t *testing.T) {
	db := newTestDB(t)
	products := NewProductService(db)
	phones := seedCategory(t, db, "Phones")
	laptops := seedCategory(t, db, "Laptops")
	seedProduct(t, db, "Phone 15", "999.00", phones.ID)
	seedProduct(t, db, "Phone 15 Pro", "1199.00", phones.ID)
	seedProduct(t, db, "Book Pro 14", "1999.00", laptops.ID)

	list, err := products.Products(nil, "", 0, 100)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	list, err = products.Products(&phones.ID, "", 0, 100)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, p := range list {
		assert.Equal(t, phones.ID, p.CategoryID)
		assert.Equal(t, "Phones", p.Category.Name)
	}
}

func TestProductsSearchIsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	products := NewProductService(db)
	phones := seedCategory(t, db, "Phones")
	seedProduct(t, db, "Phone 15", "999.00", phones.ID)
	seedProduct(t, db, "Tablet Air", "599.00", phones.ID)

	list, err := products.Products(nil, "pHoNe", 0, 100)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Phone 15", list[0].Name)

	// Description text matches too.
	list, err = products.Products(nil, "latest tablet", 0, 100)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Tablet Air", list[0].Name)

	list, err = products.Products(nil, "no such thing", 0, 100)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestProductsPagination(t *testing.T) {
	db := newTestDB(t)
	products := NewProductService(db)
	phones := seedCategory(t, db, "Phones")
	for _, name := range []string{"A", "B", "C", "D"} {
		seedProduct(t, db, "Phone "+name, "999.00", phones.ID)
	}

	page, err := products.Products(nil, "", 0, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "Phone A", page[0].Name)

	page, err = products.Products(nil, "", 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "Phone C", page[0].Name)
}

func TestProductNotFound(t *testing.T) {
	db := newTestDB(t)
	products := NewProductService(db)

	_, err := products.Product(42)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCategories(t *testing.T) {
	db := newTestDB(t)
	products := NewProductService(db)
	seedCategory(t, db, "Phones")
	seedCategory(t, db, "Laptops")

	categories, err := products.Categories()
	require.NoError(t, err)
	assert.Len(t, categories, 2)
}
