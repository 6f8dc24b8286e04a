package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAndListProducts(t *testing.T) {
	setupDB(t)
	user, _ := seedUserStore(t, "a@b.c", "warung-menu", "MENUU")

	svc := NewProductService()
	p, err := svc.AddProduct(context.Background(), user.ID, ProductInput{
		Name: "Nasi Goreng", Price: 15000, StockQuantity: 10,
	})
	require.NoError(t, err)
	assert.True(t, p.IsActive)

	products, pg, err := svc.ListProducts(user.ID, 1, 10)
	require.NoError(t, err)
	assert.Len(t, products, 1)
	assert.EqualValues(t, 1, pg.Total)
}

func TestAddProductRequiresStore(t *testing.T) {
	setupDB(t)
	user := seedUser(t, "nostore@warung.test")

	svc := NewProductService()
	_, err := svc.AddProduct(context.Background(), user.ID, ProductInput{Name: "X", Price: 1})
	assert.ErrorIs(t, err, ErrNoStore)
}

func TestUpdateProductOwnership(t *testing.T) {
	setupDB(t)
	owner, _ := seedUserStore(t, "a@b.c", "warung-satu", "SATUU")
	intruder, _ := seedUserStore(t, "x@y.z", "warung-dua", "DUAAA")

	svc := NewProductService()
	p, err := svc.AddProduct(context.Background(), owner.ID, ProductInput{Name: "Nasi", Price: 10000})
	require.NoError(t, err)

	_, err = svc.UpdateProduct(intruder.ID, p.ID, ProductInput{Name: "Curian", Price: 1})
	assert.ErrorIs(t, err, ErrNotOwner)
}

// A seller editing price from a stale form must not undo stock the order
// path already spent: UpdateProduct writes name/price/image only.
func TestUpdateProductNeverTouchesStock(t *testing.T) {
	setupDB(t)
	user, store := seedUserStore(t, "a@b.c", "warung-ubah", "UBAHH")

	products := NewProductService()
	p, err := products.AddProduct(context.Background(), user.ID, ProductInput{
		Name: "Nasi Goreng", Price: 10000, StockQuantity: 5,
	})
	require.NoError(t, err)

	// A customer buys one unit between the seller's read and their save.
	orders := NewOrderService()
	_, err = orders.PlaceOrder(context.Background(), store.Slug,
		placeInput(OrderLine{ProductID: p.ID, Quantity: 1}))
	require.NoError(t, err)

	updated, err := products.UpdateProduct(user.ID, p.ID, ProductInput{
		Name: "Nasi Goreng Spesial", Price: 12000, StockQuantity: 5, // stale
	})
	require.NoError(t, err)

	assert.Equal(t, "Nasi Goreng Spesial", updated.Name)
	assert.Equal(t, int64(12000), updated.Price)
	assert.Equal(t, 4, updated.StockQuantity, "sold unit must stay sold")
}

func TestRestock(t *testing.T) {
	setupDB(t)
	user, _ := seedUserStore(t, "a@b.c", "warung-isi", "ISIII")

	svc := NewProductService()
	p, err := svc.AddProduct(context.Background(), user.ID, ProductInput{
		Name: "Es Teh", Price: 5000, StockQuantity: 2,
	})
	require.NoError(t, err)

	p, err = svc.Restock(user.ID, p.ID, RestockInput{Quantity: 8})
	require.NoError(t, err)
	assert.Equal(t, 10, p.StockQuantity)
}

func TestRestockUnknownProduct(t *testing.T) {
	setupDB(t)
	user, _ := seedUserStore(t, "a@b.c", "warung-isi", "ISIII")

	svc := NewProductService()
	_, err := svc.Restock(user.ID, 999, RestockInput{Quantity: 1})
	var notFound ProductNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestRemoveProductHidesFromCatalog(t *testing.T) {
	setupDB(t)
	user, store := seedUserStore(t, "a@b.c", "warung-hapus", "HAPUS")

	products := NewProductService()
	p, err := products.AddProduct(context.Background(), user.ID, ProductInput{
		Name: "Nasi", Price: 10000, StockQuantity: 5,
	})
	require.NoError(t, err)

	catalog := NewCatalogService()
	before, err := catalog.Browse(store.Slug)
	require.NoError(t, err)
	assert.Len(t, before.Products, 1)

	require.NoError(t, products.RemoveProduct(user.ID, p.ID))

	after, err := catalog.Browse(store.Slug)
	require.NoError(t, err)
	assert.Empty(t, after.Products)

	// History stays: the row is deactivated, not deleted.
	kept, _, err := products.ListProducts(user.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, kept, 1)
	assert.False(t, kept[0].IsActive)
}

func TestCatalogSkipsOutOfStock(t *testing.T) {
	setupDB(t)
	user, store := seedUserStore(t, "a@b.c", "warung-habis", "HABIS")

	products := NewProductService()
	_, err := products.AddProduct(context.Background(), user.ID, ProductInput{
		Name: "Nasi", Price: 10000, StockQuantity: 0,
	})
	require.NoError(t, err)
	_, err = products.AddProduct(context.Background(), user.ID, ProductInput{
		Name: "Teh", Price: 5000, StockQuantity: 3,
	})
	require.NoError(t, err)

	catalog, err := NewCatalogService().Browse(store.Slug)
	require.NoError(t, err)
	require.Len(t, catalog.Products, 1)
	assert.Equal(t, "Teh", catalog.Products[0].Name)
}

func TestCatalogUnknownSlug(t *testing.T) {
	setupDB(t)
	_, err := NewCatalogService().Browse("tidak-ada")
	assert.ErrorIs(t, err, ErrStoreNotFound)
}
