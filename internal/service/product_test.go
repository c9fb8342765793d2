package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cycleworks/salesdesk/internal/dto"
	"github.com/cycleworks/salesdesk/internal/models"
	"github.com/cycleworks/salesdesk/internal/repository"
)

func newProductService() (*ProductService, *fakeProductRepo) {
	products := newFakeProductRepo()
	svc := NewProductService(
		products,
		&fakeCategoryRepo{categories: map[int64]models.ProductCategory{}},
		&fakeSubcategoryRepo{subcategories: map[int64]models.ProductSubcategory{}},
		&fakeInventoryRepo{quantities: map[int64]int{}},
	)
	return svc, products
}

func TestCreate_DefaultsStandardCost(t *testing.T) {
	svc, _ := newProductService()

	p, err := svc.Create(dto.ProductCreateDto{
		Name:          "Road-150 Red, 62",
		ProductNumber: "BK-R93R-62",
		ListPrice:     decimal.NewFromInt(100),
	})

	require.NoError(t, err)
	assert.True(t, p.StandardCost.Equal(decimal.NewFromInt(60)), "got %s", p.StandardCost)
}

func TestCreate_KeepsExplicitStandardCost(t *testing.T) {
	svc, _ := newProductService()

	p, err := svc.Create(dto.ProductCreateDto{
		Name:          "Road-450 Red, 58",
		ProductNumber: "BK-R68R-58",
		StandardCost:  decimal.NewFromInt(900),
		ListPrice:     decimal.NewFromInt(1458),
	})

	require.NoError(t, err)
	assert.True(t, p.StandardCost.Equal(decimal.NewFromInt(900)), "got %s", p.StandardCost)
}

func TestCreate_NoListPriceNoCostDefault(t *testing.T) {
	svc, _ := newProductService()

	p, err := svc.Create(dto.ProductCreateDto{Name: "Chain", ProductNumber: "CH-0234"})

	require.NoError(t, err)
	assert.True(t, p.StandardCost.IsZero())
}

func TestCalculateStandardCost(t *testing.T) {
	svc, _ := newProductService()

	cost := svc.CalculateStandardCost(decimal.NewFromFloat(1457.99))

	assert.True(t, cost.Equal(decimal.NewFromFloat(874.794)), "got %s", cost)
}

func TestProductDelete_RefusedWhenOrdered(t *testing.T) {
	svc, products := newProductService()
	require.NoError(t, products.Add(&models.Product{Name: "Road-650"}))
	products.ordered[1] = true

	removed, err := svc.Delete(1)

	require.NoError(t, err)
	assert.False(t, removed)

	exists, _ := products.Exists(1)
	assert.True(t, exists)
}

func TestProductDelete_MissingIsNotFound(t *testing.T) {
	svc, _ := newProductService()

	_, err := svc.Delete(404)

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDiscontinueAndReactivate(t *testing.T) {
	svc, products := newProductService()
	require.NoError(t, products.Add(&models.Product{Name: "Road-150"}))

	ok, err := svc.Discontinue(1)
	require.NoError(t, err)
	assert.True(t, ok)

	p, _ := products.GetByID(1)
	assert.NotNil(t, p.SellEndDate)
	assert.NotNil(t, p.DiscontinuedDate)

	ok, err = svc.Reactivate(1)
	require.NoError(t, err)
	assert.True(t, ok)

	p, _ = products.GetByID(1)
	assert.Nil(t, p.SellEndDate)
	assert.Nil(t, p.DiscontinuedDate)
}

func TestUpdateStock_MissingProductIsNotFound(t *testing.T) {
	svc, _ := newProductService()

	_, err := svc.UpdateStock(7, 50)

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestIsProductNumberUnique(t *testing.T) {
	svc, products := newProductService()
	require.NoError(t, products.Add(&models.Product{Name: "Road-150", ProductNumber: "BK-R93R-62"}))

	unique, err := svc.IsProductNumberUnique("BK-R93R-44", nil)
	require.NoError(t, err)
	assert.True(t, unique)

	unique, err = svc.IsProductNumberUnique("BK-R93R-62", nil)
	require.NoError(t, err)
	assert.False(t, unique)

	// The product itself is excluded when updating its own row.
	unique, err = svc.IsProductNumberUnique("BK-R93R-62", int64ptr(1))
	require.NoError(t, err)
	assert.True(t, unique)
}

func TestIsInStock(t *testing.T) {
	products := newFakeProductRepo()
	inventories := &fakeInventoryRepo{quantities: map[int64]int{1: 12}}
	svc := NewProductService(
		products,
		&fakeCategoryRepo{categories: map[int64]models.ProductCategory{}},
		&fakeSubcategoryRepo{subcategories: map[int64]models.ProductSubcategory{}},
		inventories,
	)

	in, err := svc.IsInStock(1)
	require.NoError(t, err)
	assert.True(t, in)

	in, err = svc.IsInStock(2)
	require.NoError(t, err)
	assert.False(t, in)
}

func TestGetCategories_CountsSubcategories(t *testing.T) {
	products := newFakeProductRepo()
	svc := NewProductService(
		products,
		&fakeCategoryRepo{categories: map[int64]models.ProductCategory{
			1: {ProductCategoryID: 1, Name: "Bikes"},
			2: {ProductCategoryID: 2, Name: "Components"},
		}},
		&fakeSubcategoryRepo{subcategories: map[int64]models.ProductSubcategory{
			10: {ProductSubcategoryID: 10, ProductCategoryID: 1, Name: "Road Bikes"},
			11: {ProductSubcategoryID: 11, ProductCategoryID: 1, Name: "Mountain Bikes"},
		}},
		&fakeInventoryRepo{quantities: map[int64]int{}},
	)

	categories, err := svc.GetCategories()

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, 2, categories[0].SubcategoryCount)
	assert.Equal(t, 0, categories[1].SubcategoryCount)
}
