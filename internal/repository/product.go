package repository

import (
	"fmt"
	"time"

	"github.com/cycleworks/salesdesk/internal/database"
	"github.com/cycleworks/salesdesk/internal/models"
	"github.com/shopspring/decimal"
)

type ProductRepository struct {
	table[models.Product]
	subcategories *SubcategoryRepository
	inventories   *InventoryRepository
	details       *SalesOrderDetailRepository
}

func NewProductRepository(db *database.DB) *ProductRepository {
	return &ProductRepository{
		table: table[models.Product]{
			db:       db,
			name:     "products",
			idColumn: "product_id",
			columns: []string{
				"product_id", "name", "product_number", "make_flag", "finished_goods_flag",
				"color", "safety_stock_level", "reorder_point", "standard_cost", "list_price",
				"size", "weight", "days_to_manufacture", "product_subcategory_id",
				"product_model_id", "sell_start_date", "sell_end_date", "discontinued_date",
				"rowguid", "modified_date",
			},
			scanRow: func(r rowScanner) (*models.Product, error) {
				var p models.Product
				err := r.Scan(
					&p.ProductID, &p.Name, &p.ProductNumber, &p.MakeFlag, &p.FinishedGoodsFlag,
					&p.Color, &p.SafetyStockLevel, &p.ReorderPoint, &p.StandardCost, &p.ListPrice,
					&p.Size, &p.Weight, &p.DaysToManufacture, &p.ProductSubcategoryID,
					&p.ProductModelID, &p.SellStartDate, &p.SellEndDate, &p.DiscontinuedDate,
					&p.Rowguid, &p.ModifiedDate,
				)
				return &p, err
			},
			insertColumns: []string{
				"name", "product_number", "make_flag", "finished_goods_flag",
				"color", "safety_stock_level", "reorder_point", "standard_cost", "list_price",
				"size", "weight", "days_to_manufacture", "product_subcategory_id",
				"product_model_id", "sell_start_date", "sell_end_date", "discontinued_date",
				"rowguid", "modified_date",
			},
			insertArgs: func(p *models.Product) []any {
				return []any{
					p.Name, p.ProductNumber, p.MakeFlag, p.FinishedGoodsFlag,
					p.Color, p.SafetyStockLevel, p.ReorderPoint, p.StandardCost, p.ListPrice,
					p.Size, p.Weight, p.DaysToManufacture, p.ProductSubcategoryID,
					p.ProductModelID, p.SellStartDate, p.SellEndDate, p.DiscontinuedDate,
					p.Rowguid, p.ModifiedDate,
				}
			},
			setID: func(p *models.Product, id int64) { p.ProductID = id },
			updateColumns: []string{
				"name", "product_number", "make_flag", "finished_goods_flag",
				"color", "safety_stock_level", "reorder_point", "standard_cost", "list_price",
				"size", "weight", "days_to_manufacture", "product_subcategory_id",
				"product_model_id", "sell_start_date", "sell_end_date", "discontinued_date",
				"modified_date",
			},
			updateArgs: func(p *models.Product) []any {
				return []any{
					p.Name, p.ProductNumber, p.MakeFlag, p.FinishedGoodsFlag,
					p.Color, p.SafetyStockLevel, p.ReorderPoint, p.StandardCost, p.ListPrice,
					p.Size, p.Weight, p.DaysToManufacture, p.ProductSubcategoryID,
					p.ProductModelID, p.SellStartDate, p.SellEndDate, p.DiscontinuedDate,
					p.ModifiedDate,
				}
			},
			idOf: func(p *models.Product) int64 { return p.ProductID },
			sortable: map[string]string{
				"name":          "name",
				"productnumber": "product_number",
				"listprice":     "list_price",
				"modifieddate":  "modified_date",
			},
		},
		subcategories: NewSubcategoryRepository(db),
		inventories:   NewInventoryRepository(db),
		details:       NewSalesOrderDetailRepository(db),
	}
}

// GetWithDetails loads a product with its subcategory (and that
// subcategory's category) and inventory rows.
func (r *ProductRepository) GetWithDetails(id int64) (*models.Product, error) {
	p, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	if p.ProductSubcategoryID != nil {
		sub, err := r.subcategories.GetWithCategory(*p.ProductSubcategoryID)
		if err != nil {
			return nil, err
		}
		p.Subcategory = sub
	}

	if p.Inventories, err = r.inventories.ByProduct(id); err != nil {
		return nil, err
	}

	return p, nil
}

// ByCategory returns products whose subcategory belongs to the category,
// ordered by name.
func (r *ProductRepository) ByCategory(categoryID int64) ([]models.Product, error) {
	return r.queryMany(
		` WHERE product_subcategory_id IN
		    (SELECT product_subcategory_id FROM product_subcategories WHERE product_category_id = ?)
		  ORDER BY name`, categoryID)
}

// BySubcategory returns the subcategory's products ordered by name.
func (r *ProductRepository) BySubcategory(subcategoryID int64) ([]models.Product, error) {
	return r.queryMany(" WHERE product_subcategory_id = ? ORDER BY name", subcategoryID)
}

// ByProductNumber returns the product carrying the number, or nil when
// none does.
func (r *ProductRepository) ByProductNumber(number string) (*models.Product, error) {
	return r.FindFirst(Eq("product_number", number))
}

// Search matches the term against product name, product number and the
// names of the product's subcategory and category, ordered by name.
func (r *ProductRepository) Search(term string) ([]models.Product, error) {
	pattern := "%" + term + "%"
	return r.queryMany(
		` WHERE name LIKE ? OR product_number LIKE ?
		    OR product_subcategory_id IN
		      (SELECT sc.product_subcategory_id FROM product_subcategories sc
		       JOIN product_categories pc ON pc.product_category_id = sc.product_category_id
		       WHERE sc.name LIKE ? OR pc.name LIKE ?)
		  ORDER BY name`,
		pattern, pattern, pattern, pattern)
}

// ByPriceRange returns products with list price within [min, max],
// ordered by list price ascending.
func (r *ProductRepository) ByPriceRange(min, max decimal.Decimal) ([]models.Product, error) {
	return r.Find(Ge("list_price", min), Le("list_price", max))
}

// Active returns products still being sold, ordered by name.
func (r *ProductRepository) Active() ([]models.Product, error) {
	return r.queryMany(" WHERE sell_end_date IS NULL OR sell_end_date > ? ORDER BY name", time.Now())
}

// Discontinued returns products no longer sold, ordered by name.
func (r *ProductRepository) Discontinued() ([]models.Product, error) {
	return r.queryMany(
		" WHERE discontinued_date IS NOT NULL OR (sell_end_date IS NOT NULL AND sell_end_date <= ?) ORDER BY name",
		time.Now())
}

// LowStock returns products with on-hand quantity at or below their
// reorder point, ordered by name.
func (r *ProductRepository) LowStock() ([]models.Product, error) {
	return r.queryMany(
		` WHERE EXISTS (SELECT 1 FROM product_inventories pi
		                WHERE pi.product_id = products.product_id
		                  AND pi.quantity <= products.reorder_point)
		  ORDER BY name`)
}

// ToReorder returns products with on-hand quantity at or below their
// safety stock level, ordered by name.
func (r *ProductRepository) ToReorder() ([]models.Product, error) {
	return r.queryMany(
		` WHERE EXISTS (SELECT 1 FROM product_inventories pi
		                WHERE pi.product_id = products.product_id
		                  AND pi.quantity <= products.safety_stock_level)
		  ORDER BY name`)
}

// CountBySubcategory counts the subcategory's products.
func (r *ProductRepository) CountBySubcategory(subcategoryID int64) (int, error) {
	return r.CountWhere(Eq("product_subcategory_id", subcategoryID))
}

// HasOrders reports whether any sales order detail references the product.
func (r *ProductRepository) HasOrders(productID int64) (bool, error) {
	return r.details.Any(Eq("product_id", productID))
}

type CategoryRepository struct {
	table[models.ProductCategory]
}

func NewCategoryRepository(db *database.DB) *CategoryRepository {
	return &CategoryRepository{
		table: table[models.ProductCategory]{
			db:       db,
			name:     "product_categories",
			idColumn: "product_category_id",
			columns:  []string{"product_category_id", "name", "rowguid", "modified_date"},
			scanRow: func(r rowScanner) (*models.ProductCategory, error) {
				var c models.ProductCategory
				err := r.Scan(&c.ProductCategoryID, &c.Name, &c.Rowguid, &c.ModifiedDate)
				return &c, err
			},
			insertColumns: []string{"name", "rowguid", "modified_date"},
			insertArgs: func(c *models.ProductCategory) []any {
				return []any{c.Name, c.Rowguid, c.ModifiedDate}
			},
			setID:         func(c *models.ProductCategory, id int64) { c.ProductCategoryID = id },
			updateColumns: []string{"name", "modified_date"},
			updateArgs: func(c *models.ProductCategory) []any {
				return []any{c.Name, c.ModifiedDate}
			},
			idOf: func(c *models.ProductCategory) int64 { return c.ProductCategoryID },
		},
	}
}

type SubcategoryRepository struct {
	table[models.ProductSubcategory]
}

func NewSubcategoryRepository(db *database.DB) *SubcategoryRepository {
	return &SubcategoryRepository{
		table: table[models.ProductSubcategory]{
			db:       db,
			name:     "product_subcategories",
			idColumn: "product_subcategory_id",
			columns: []string{
				"product_subcategory_id", "product_category_id", "name", "rowguid", "modified_date",
			},
			scanRow: func(r rowScanner) (*models.ProductSubcategory, error) {
				var s models.ProductSubcategory
				err := r.Scan(&s.ProductSubcategoryID, &s.ProductCategoryID, &s.Name, &s.Rowguid, &s.ModifiedDate)
				return &s, err
			},
			insertColumns: []string{"product_category_id", "name", "rowguid", "modified_date"},
			insertArgs: func(s *models.ProductSubcategory) []any {
				return []any{s.ProductCategoryID, s.Name, s.Rowguid, s.ModifiedDate}
			},
			setID:         func(s *models.ProductSubcategory, id int64) { s.ProductSubcategoryID = id },
			updateColumns: []string{"product_category_id", "name", "modified_date"},
			updateArgs: func(s *models.ProductSubcategory) []any {
				return []any{s.ProductCategoryID, s.Name, s.ModifiedDate}
			},
			idOf: func(s *models.ProductSubcategory) int64 { return s.ProductSubcategoryID },
		},
	}
}

// GetWithCategory loads a subcategory with its category attached.
func (r *SubcategoryRepository) GetWithCategory(id int64) (*models.ProductSubcategory, error) {
	s, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	cats := NewCategoryRepository(r.db)
	c, err := cats.GetByID(s.ProductCategoryID)
	if err != nil {
		return nil, err
	}
	s.Category = c

	return s, nil
}

// ByCategory returns the category's subcategories ordered by name.
func (r *SubcategoryRepository) ByCategory(categoryID int64) ([]models.ProductSubcategory, error) {
	return r.queryMany(" WHERE product_category_id = ? ORDER BY name", categoryID)
}

// CountByCategory counts the category's subcategories.
func (r *SubcategoryRepository) CountByCategory(categoryID int64) (int, error) {
	return r.CountWhere(Eq("product_category_id", categoryID))
}

type InventoryRepository struct {
	db *database.DB
}

func NewInventoryRepository(db *database.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) ByProduct(productID int64) ([]models.ProductInventory, error) {
	rows, err := r.db.Query(
		`SELECT product_id, location_id, quantity, rowguid, modified_date
		 FROM product_inventories WHERE product_id = ?`, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to query product_inventories: %w", err)
	}
	defer rows.Close()

	var inventories []models.ProductInventory
	for rows.Next() {
		var inv models.ProductInventory
		if err := rows.Scan(&inv.ProductID, &inv.LocationID, &inv.Quantity, &inv.Rowguid, &inv.ModifiedDate); err != nil {
			return nil, fmt.Errorf("failed to scan product_inventories row: %w", err)
		}
		inventories = append(inventories, inv)
	}

	return inventories, rows.Err()
}

func (r *InventoryRepository) Add(inv *models.ProductInventory) error {
	_, err := r.db.Exec(
		`INSERT INTO product_inventories (product_id, location_id, quantity, rowguid, modified_date)
		 VALUES (?, ?, ?, ?, ?)`,
		inv.ProductID, inv.LocationID, inv.Quantity, inv.Rowguid, inv.ModifiedDate)
	if err != nil {
		return fmt.Errorf("failed to insert product_inventories: %w", err)
	}
	return nil
}

// TotalQuantity sums the product's on-hand quantity across locations.
func (r *InventoryRepository) TotalQuantity(productID int64) (int, error) {
	var total int
	err := r.db.QueryRow(
		"SELECT COALESCE(SUM(quantity), 0) FROM product_inventories WHERE product_id = ?",
		productID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum product_inventories: %w", err)
	}
	return total, nil
}

// SetQuantity overwrites the quantity of every inventory row for the
// product and reports whether any row matched.
func (r *InventoryRepository) SetQuantity(productID int64, quantity int) (bool, error) {
	res, err := r.db.Exec(
		"UPDATE product_inventories SET quantity = ?, modified_date = ? WHERE product_id = ?",
		quantity, time.Now(), productID)
	if err != nil {
		return false, fmt.Errorf("failed to update product_inventories: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read product_inventories update result: %w", err)
	}
	return affected > 0, nil
}
