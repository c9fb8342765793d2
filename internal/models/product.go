package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ProductID            int64           `json:"product_id" db:"product_id"`
	Name                 string          `json:"name" db:"name"`
	ProductNumber        string          `json:"product_number" db:"product_number"`
	MakeFlag             bool            `json:"make_flag" db:"make_flag"`
	FinishedGoodsFlag    bool            `json:"finished_goods_flag" db:"finished_goods_flag"`
	Color                *string         `json:"color" db:"color"`
	SafetyStockLevel     int             `json:"safety_stock_level" db:"safety_stock_level"`
	ReorderPoint         int             `json:"reorder_point" db:"reorder_point"`
	StandardCost         decimal.Decimal `json:"standard_cost" db:"standard_cost"`
	ListPrice            decimal.Decimal `json:"list_price" db:"list_price"`
	Size                 *string         `json:"size" db:"size"`
	Weight               *decimal.Decimal `json:"weight" db:"weight"`
	DaysToManufacture    int             `json:"days_to_manufacture" db:"days_to_manufacture"`
	ProductSubcategoryID *int64          `json:"product_subcategory_id" db:"product_subcategory_id"`
	ProductModelID       *int64          `json:"product_model_id" db:"product_model_id"`
	SellStartDate        time.Time       `json:"sell_start_date" db:"sell_start_date"`
	SellEndDate          *time.Time      `json:"sell_end_date" db:"sell_end_date"`
	DiscontinuedDate     *time.Time      `json:"discontinued_date" db:"discontinued_date"`
	Rowguid              string          `json:"rowguid" db:"rowguid"`
	ModifiedDate         time.Time       `json:"modified_date" db:"modified_date"`

	// Loaded by ProductRepository fetch shapes, nil otherwise.
	Subcategory *ProductSubcategory `json:"subcategory,omitempty" db:"-"`
	Inventories []ProductInventory  `json:"inventories,omitempty" db:"-"`
}

type ProductCategory struct {
	ProductCategoryID int64     `json:"product_category_id" db:"product_category_id"`
	Name              string    `json:"name" db:"name"`
	Rowguid           string    `json:"rowguid" db:"rowguid"`
	ModifiedDate      time.Time `json:"modified_date" db:"modified_date"`
}

type ProductSubcategory struct {
	ProductSubcategoryID int64     `json:"product_subcategory_id" db:"product_subcategory_id"`
	ProductCategoryID    int64     `json:"product_category_id" db:"product_category_id"`
	Name                 string    `json:"name" db:"name"`
	Rowguid              string    `json:"rowguid" db:"rowguid"`
	ModifiedDate         time.Time `json:"modified_date" db:"modified_date"`

	Category *ProductCategory `json:"category,omitempty" db:"-"`
}

type ProductInventory struct {
	ProductID    int64     `json:"product_id" db:"product_id"`
	LocationID   int64     `json:"location_id" db:"location_id"`
	Quantity     int       `json:"quantity" db:"quantity"`
	Rowguid      string    `json:"rowguid" db:"rowguid"`
	ModifiedDate time.Time `json:"modified_date" db:"modified_date"`
}
