package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductDto struct {
	ProductID            int64            `json:"product_id"`
	Name                 string           `json:"name"`
	ProductNumber        string           `json:"product_number"`
	Color                string           `json:"color,omitempty"`
	StandardCost         decimal.Decimal  `json:"standard_cost"`
	ListPrice            decimal.Decimal  `json:"list_price"`
	Size                 string           `json:"size,omitempty"`
	Weight               *decimal.Decimal `json:"weight,omitempty"`
	SafetyStockLevel     int              `json:"safety_stock_level"`
	ReorderPoint         int              `json:"reorder_point"`
	ProductSubcategoryID *int64           `json:"product_subcategory_id"`
	ProductModelID       *int64           `json:"product_model_id"`
	CategoryName         string           `json:"category_name,omitempty"`
	SubcategoryName      string           `json:"subcategory_name,omitempty"`
	SellStartDate        time.Time        `json:"sell_start_date"`
	SellEndDate          *time.Time       `json:"sell_end_date"`
	DiscontinuedDate     *time.Time       `json:"discontinued_date"`
	StockLevel           int              `json:"stock_level"`
	ModifiedDate         time.Time        `json:"modified_date"`
}

// IsActive reports whether the product is still being sold.
func (p ProductDto) IsActive() bool {
	return p.SellEndDate == nil || p.SellEndDate.After(time.Now())
}

type ProductListDto struct {
	ProductID       int64           `json:"product_id"`
	Name            string          `json:"name"`
	ProductNumber   string          `json:"product_number"`
	ListPrice       decimal.Decimal `json:"list_price"`
	Color           string          `json:"color,omitempty"`
	CategoryName    string          `json:"category_name,omitempty"`
	SubcategoryName string          `json:"subcategory_name,omitempty"`
	IsActive        bool            `json:"is_active"`
}

type ProductCreateDto struct {
	Name                 string           `json:"name" binding:"required"`
	ProductNumber        string           `json:"product_number" binding:"required"`
	MakeFlag             bool             `json:"make_flag"`
	FinishedGoodsFlag    bool             `json:"finished_goods_flag"`
	Color                string           `json:"color"`
	SafetyStockLevel     int              `json:"safety_stock_level"`
	ReorderPoint         int              `json:"reorder_point"`
	StandardCost         decimal.Decimal  `json:"standard_cost"`
	ListPrice            decimal.Decimal  `json:"list_price"`
	Size                 string           `json:"size"`
	Weight               *decimal.Decimal `json:"weight"`
	DaysToManufacture    int              `json:"days_to_manufacture"`
	ProductSubcategoryID *int64           `json:"product_subcategory_id"`
	ProductModelID       *int64           `json:"product_model_id"`
	SellStartDate        *time.Time       `json:"sell_start_date"`
	SellEndDate          *time.Time       `json:"sell_end_date"`
}

type ProductUpdateDto struct {
	ProductCreateDto
	ProductID int64 `json:"product_id" binding:"required"`
}

type ProductCategoryDto struct {
	ProductCategoryID int64  `json:"product_category_id"`
	Name              string `json:"name"`
	SubcategoryCount  int    `json:"subcategory_count"`
}

type ProductSubcategoryDto struct {
	ProductSubcategoryID int64  `json:"product_subcategory_id"`
	ProductCategoryID    int64  `json:"product_category_id"`
	Name                 string `json:"name"`
	CategoryName         string `json:"category_name,omitempty"`
	ProductCount         int    `json:"product_count"`
}
