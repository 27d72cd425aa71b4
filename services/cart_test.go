package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront-demo/storefront-api/models"
)

func TestCartAdd(t *testing.T) {
	db := newTestDB(t)
	carts := NewCartService(db)
	category := seedCategory(t, db, "Phones")
	product := seedProduct(t, db, "Phone 15", "999.00", category.ID)
	user := seedUser(t, db, "a@example.com", "alice")

	item, err := carts.Add(user.ID, product.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, product.ID, item.Product.ID)
	assert.Equal(t, "Phones", item.Product.Category.Name)
}

func TestCartAddMergesDuplicateProduct(t *testing.T) {
	db := newTestDB(t)
	carts := NewCartService(db)
	category := seedCategory(t, db, "Phones")
	product := seedProduct(t, db, "Phone 15", "999.00", category.ID)
	user := seedUser(t, db, "a@example.com", "alice")

	_, err := carts.Add(user.ID, product.ID, 2)
	require.NoError(t, err)
	item, err := carts.Add(user.ID, product.ID, 3)
	require.NoError(t, err)

	assert.Equal(t, 5, item.Quantity)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count, "duplicate add must never create a second row")
}

func TestCartAddValidation(t *testing.T) {
	db := newTestDB(t)
	carts := NewCartService(db)
	category := seedCategory(t, db, "Phones")
	product := seedProduct(t, db, "Phone 15", "999.00", category.ID)
	user := seedUser(t, db, "a@example.com", "alice")

	_, err := carts.Add(user.ID, product.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = carts.Add(user.ID, product.ID+1000, 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCartUpdateQuantity(t *testing.T) {
	db := newTestDB(t)
	carts := NewCartService(db)
	category := seedCategory(t, db, "Phones")
	product := seedProduct(t, db, "Phone 15", "999.00", category.ID)
	user := seedUser(t, db, "a@example.com", "alice")

	added, err := carts.Add(user.ID, product.ID, 2)
	require.NoError(t, err)

	item, err := carts.UpdateQuantity(user.ID, added.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, item.Quantity)

	// Zero or less deletes the row.
	item, err = carts.UpdateQuantity(user.ID, added.ID, 0)
	require.NoError(t, err)
	assert.Nil(t, item)

	items, err := carts.Items(user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartUpdateQuantityNotFound(t *testing.T) {
	db := newTestDB(t)
	carts := NewCartService(db)
	user := seedUser(t, db, "a@example.com", "alice")

	_, err := carts.UpdateQuantity(user.ID, 12345, 3)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
}

func TestCartOwnershipIsolation(t *testing.T) {
	db := newTestDB(t)
	carts := NewCartService(db)
	category := seedCategory(t, db, "Phones")
	product := seedProduct(t, db, "Phone 15", "999.00", category.ID)
	alice := seedUser(t, db, "a@example.com", "alice")
	bob := seedUser(t, db, "b@example.com", "bob")

	item, err := carts.Add(alice.ID, product.ID, 1)
	require.NoError(t, err)

	// Bob cannot see, mutate or delete Alice's row.
	_, err = carts.UpdateQuantity(bob.ID, item.ID, 5)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
	assert.ErrorIs(t, carts.Remove(bob.ID, item.ID), ErrCartItemNotFound)

	items, err := carts.Items(alice.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestCartRemoveAndClear(t *testing.T) {
	db := newTestDB(t)
	carts := NewCartService(db)
	category := seedCategory(t, db, "Phones")
	phone := seedProduct(t, db, "Phone 15", "999.00", category.ID)
	tablet := seedProduct(t, db, "Tablet Air", "599.00", category.ID)
	user := seedUser(t, db, "a@example.com", "alice")

	item, err := carts.Add(user.ID, phone.ID, 1)
	require.NoError(t, err)
	_, err = carts.Add(user.ID, tablet.ID, 1)
	require.NoError(t, err)

	require.NoError(t, carts.Remove(user.ID, item.ID))
	assert.ErrorIs(t, carts.Remove(user.ID, item.ID), ErrCartItemNotFound)

	cleared, err := carts.Clear(user.ID)
	require.NoError(t, err)
	assert.True(t, cleared)

	cleared, err = carts.Clear(user.ID)
	require.NoError(t, err)
	assert.False(t, cleared, "clearing an empty cart reports nothing deleted")
}

func TestCartTotal(t *testing.T) {
	db := newTestDB(t)
	carts := NewCartService(db)
	category := seedCategory(t, db, "Phones")
	phone := seedProduct(t, db, "Phone 15", "10.00", category.ID)
	tablet := seedProduct(t, db, "Tablet Air", "5.00", category.ID)
	user := seedUser(t, db, "a@example.com", "alice")

	total, err := carts.Total(user.ID)
	require.NoError(t, err)
	assert.True(t, total.IsZero())

	_, err = carts.Add(user.ID, phone.ID, 2)
	require.NoError(t, err)
	_, err = carts.Add(user.ID, tablet.ID, 1)
	require.NoError(t, err)

	total, err = carts.Total(user.ID)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("25.00")), "got %s", total)
}
