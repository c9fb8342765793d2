package service

import (
	"fmt"
	"time"

	"github.com/cycleworks/salesdesk/internal/dto"
	"github.com/cycleworks/salesdesk/internal/mapper"
	"github.com/cycleworks/salesdesk/internal/models"
	"github.com/cycleworks/salesdesk/internal/repository"
	"github.com/shopspring/decimal"
)

// standardCostRatio is the default cost fraction of the list price
// applied when a new product carries no explicit standard cost.
var standardCostRatio = decimal.NewFromFloat(0.6)

// ProductRepo is the slice of the product repository the service uses.
type ProductRepo interface {
	GetByID(id int64) (*models.Product, error)
	GetAll() ([]models.Product, error)
	GetWithDetails(id int64) (*models.Product, error)
	ByCategory(categoryID int64) ([]models.Product, error)
	BySubcategory(subcategoryID int64) ([]models.Product, error)
	Search(term string) ([]models.Product, error)
	ByPriceRange(min, max decimal.Decimal) ([]models.Product, error)
	Active() ([]models.Product, error)
	Discontinued() ([]models.Product, error)
	LowStock() ([]models.Product, error)
	ToReorder() ([]models.Product, error)
	ByProductNumber(number string) (*models.Product, error)
	HasOrders(productID int64) (bool, error)
	CountBySubcategory(subcategoryID int64) (int, error)
	Add(p *models.Product) error
	Update(p *models.Product) error
	Delete(id int64) (bool, error)
	Exists(id int64) (bool, error)
	Count() (int, error)
}

type CategoryRepo interface {
	GetByID(id int64) (*models.ProductCategory, error)
	GetAll() ([]models.ProductCategory, error)
}

type SubcategoryRepo interface {
	GetByID(id int64) (*models.ProductSubcategory, error)
	GetAll() ([]models.ProductSubcategory, error)
	GetWithCategory(id int64) (*models.ProductSubcategory, error)
	ByCategory(categoryID int64) ([]models.ProductSubcategory, error)
	CountByCategory(categoryID int64) (int, error)
}

type InventoryRepo interface {
	ByProduct(productID int64) ([]models.ProductInventory, error)
	TotalQuantity(productID int64) (int, error)
	SetQuantity(productID int64, quantity int) (bool, error)
}

type ProductService struct {
	products      ProductRepo
	categories    CategoryRepo
	subcategories SubcategoryRepo
	inventories   InventoryRepo
}

func NewProductService(products ProductRepo, categories CategoryRepo, subcategories SubcategoryRepo, inventories InventoryRepo) *ProductService {
	return &ProductService{
		products:      products,
		categories:    categories,
		subcategories: subcategories,
		inventories:   inventories,
	}
}

func (s *ProductService) GetAll() ([]dto.ProductListDto, error) {
	products, err := s.products.GetAll()
	if err != nil {
		return nil, err
	}
	return mapper.ProductsToListDto(products), nil
}

func (s *ProductService) GetByID(id int64) (*dto.ProductDto, error) {
	p, err := s.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	out := mapper.ProductToDto(*p)
	return &out, nil
}

// GetWithDetails returns the product with subcategory, category and
// stock level resolved.
func (s *ProductService) GetWithDetails(id int64) (*dto.ProductDto, error) {
	p, err := s.products.GetWithDetails(id)
	if err != nil {
		return nil, err
	}
	out := mapper.ProductToDto(*p)
	return &out, nil
}

func (s *ProductService) Search(term string) ([]dto.ProductListDto, error) {
	products, err := s.products.Search(term)
	if err != nil {
		return nil, err
	}
	return mapper.ProductsToListDto(products), nil
}

func (s *ProductService) ByCategory(categoryID int64) ([]dto.ProductListDto, error) {
	products, err := s.products.ByCategory(categoryID)
	if err != nil {
		return nil, err
	}
	return mapper.ProductsToListDto(products), nil
}

func (s *ProductService) BySubcategory(subcategoryID int64) ([]dto.ProductListDto, error) {
	products, err := s.products.BySubcategory(subcategoryID)
	if err != nil {
		return nil, err
	}
	return mapper.ProductsToListDto(products), nil
}

func (s *ProductService) ByPriceRange(min, max decimal.Decimal) ([]dto.ProductListDto, error) {
	products, err := s.products.ByPriceRange(min, max)
	if err != nil {
		return nil, err
	}
	return mapper.ProductsToListDto(products), nil
}

func (s *ProductService) Active() ([]dto.ProductListDto, error) {
	products, err := s.products.Active()
	if err != nil {
		return nil, err
	}
	return mapper.ProductsToListDto(products), nil
}

func (s *ProductService) Discontinued() ([]dto.ProductListDto, error) {
	products, err := s.products.Discontinued()
	if err != nil {
		return nil, err
	}
	return mapper.ProductsToListDto(products), nil
}

func (s *ProductService) LowStock() ([]dto.ProductListDto, error) {
	products, err := s.products.LowStock()
	if err != nil {
		return nil, err
	}
	return mapper.ProductsToListDto(products), nil
}

func (s *ProductService) ToReorder() ([]dto.ProductListDto, error) {
	products, err := s.products.ToReorder()
	if err != nil {
		return nil, err
	}
	return mapper.ProductsToListDto(products), nil
}

// Create persists a new product. When no standard cost is supplied it
// defaults to a fixed fraction of the list price.
func (s *ProductService) Create(d dto.ProductCreateDto) (*dto.ProductDto, error) {
	if d.StandardCost.IsZero() && d.ListPrice.IsPositive() {
		d.StandardCost = s.CalculateStandardCost(d.ListPrice)
	}

	p := mapper.ProductFromCreate(d)
	if err := s.products.Add(&p); err != nil {
		return nil, err
	}

	out := mapper.ProductToDto(p)
	return &out, nil
}

func (s *ProductService) Update(d dto.ProductUpdateDto) (*dto.ProductDto, error) {
	existing, err := s.products.GetByID(d.ProductID)
	if err != nil {
		return nil, err
	}

	mapper.ApplyProductUpdate(d, existing)
	if err := s.products.Update(existing); err != nil {
		return nil, err
	}

	out := mapper.ProductToDto(*existing)
	return &out, nil
}

// Delete removes a product unless order lines reference it. A refusal is
// a false return, not an error; a missing product is ErrNotFound.
func (s *ProductService) Delete(id int64) (bool, error) {
	exists, err := s.products.Exists(id)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, fmt.Errorf("product id %d: %w", id, repository.ErrNotFound)
	}

	ok, err := s.CanDelete(id)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	return s.products.Delete(id)
}

func (s *ProductService) Exists(id int64) (bool, error) {
	return s.products.Exists(id)
}

// CanDelete reports whether no order line references the product.
func (s *ProductService) CanDelete(id int64) (bool, error) {
	has, err := s.products.HasOrders(id)
	if err != nil {
		return false, err
	}
	return !has, nil
}

// IsProductNumberUnique reports whether no other product already carries
// the number. The optional exclude identity lets updates skip their own row.
func (s *ProductService) IsProductNumberUnique(number string, excludeProductID *int64) (bool, error) {
	p, err := s.products.ByProductNumber(number)
	if err != nil {
		return false, err
	}
	if p == nil {
		return true, nil
	}
	if excludeProductID != nil && p.ProductID == *excludeProductID {
		return true, nil
	}
	return false, nil
}

// CalculateStandardCost derives the default standard cost from a list
// price.
func (s *ProductService) CalculateStandardCost(listPrice decimal.Decimal) decimal.Decimal {
	return listPrice.Mul(standardCostRatio)
}

// Discontinue closes the product's sales window as of now.
func (s *ProductService) Discontinue(id int64) (bool, error) {
	p, err := s.products.GetByID(id)
	if err != nil {
		return false, err
	}

	now := time.Now()
	p.SellEndDate = &now
	p.DiscontinuedDate = &now
	p.ModifiedDate = now
	if err := s.products.Update(p); err != nil {
		return false, err
	}
	return true, nil
}

// Reactivate reopens a discontinued product for sale.
func (s *ProductService) Reactivate(id int64) (bool, error) {
	p, err := s.products.GetByID(id)
	if err != nil {
		return false, err
	}

	p.SellEndDate = nil
	p.DiscontinuedDate = nil
	p.ModifiedDate = time.Now()
	if err := s.products.Update(p); err != nil {
		return false, err
	}
	return true, nil
}

func (s *ProductService) GetStockLevel(id int64) (int, error) {
	return s.inventories.TotalQuantity(id)
}

// IsInStock reports whether any quantity is on hand across locations.
func (s *ProductService) IsInStock(id int64) (bool, error) {
	quantity, err := s.inventories.TotalQuantity(id)
	if err != nil {
		return false, err
	}
	return quantity > 0, nil
}

// UpdateStock overwrites the on-hand quantity across the product's
// inventory locations. False means no inventory row exists for it.
func (s *ProductService) UpdateStock(id int64, quantity int) (bool, error) {
	exists, err := s.products.Exists(id)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, fmt.Errorf("product id %d: %w", id, repository.ErrNotFound)
	}
	return s.inventories.SetQuantity(id, quantity)
}

func (s *ProductService) GetCategories() ([]dto.ProductCategoryDto, error) {
	categories, err := s.categories.GetAll()
	if err != nil {
		return nil, err
	}

	out := make([]dto.ProductCategoryDto, 0, len(categories))
	for i := range categories {
		c := &categories[i]
		n, err := s.subcategories.CountByCategory(c.ProductCategoryID)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.ProductCategoryDto{
			ProductCategoryID: c.ProductCategoryID,
			Name:              c.Name,
			SubcategoryCount:  n,
		})
	}
	return out, nil
}

func (s *ProductService) GetSubcategories(categoryID int64) ([]dto.ProductSubcategoryDto, error) {
	category, err := s.categories.GetByID(categoryID)
	if err != nil {
		return nil, err
	}

	subcategories, err := s.subcategories.ByCategory(categoryID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ProductSubcategoryDto, 0, len(subcategories))
	for i := range subcategories {
		sc := &subcategories[i]
		n, err := s.products.CountBySubcategory(sc.ProductSubcategoryID)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.ProductSubcategoryDto{
			ProductSubcategoryID: sc.ProductSubcategoryID,
			ProductCategoryID:    sc.ProductCategoryID,
			Name:                 sc.Name,
			CategoryName:         category.Name,
			ProductCount:         n,
		})
	}
	return out, nil
}
