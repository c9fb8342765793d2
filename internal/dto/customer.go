package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CustomerDto struct {
	CustomerID    int64      `json:"customer_id"`
	PersonID      *int64     `json:"person_id"`
	StoreID       *int64     `json:"store_id"`
	TerritoryID   *int64     `json:"territory_id"`
	AccountNumber string     `json:"account_number"`
	Person        *PersonDto `json:"person,omitempty"`
	StoreName     string     `json:"store_name,omitempty"`
	TerritoryName string     `json:"territory_name,omitempty"`
	ModifiedDate  time.Time  `json:"modified_date"`
}

// CustomerName is the person's full name for individuals, the store name
// otherwise, "Unknown" when neither is loaded.
func (c CustomerDto) CustomerName() string {
	if c.Person != nil {
		return c.Person.FullName()
	}
	if c.StoreName != "" {
		return c.StoreName
	}
	return "Unknown"
}

// CustomerType distinguishes individual from store customers.
func (c CustomerDto) CustomerType() string {
	if c.PersonID != nil {
		return "Individual"
	}
	return "Store"
}

type CustomerCreateDto struct {
	PersonID    *int64 `json:"person_id"`
	StoreID     *int64 `json:"store_id"`
	TerritoryID *int64 `json:"territory_id"`
}

type CustomerUpdateDto struct {
	CustomerCreateDto
	CustomerID    int64  `json:"customer_id" binding:"required"`
	AccountNumber string `json:"account_number"`
}

type CustomerSummaryDto struct {
	CustomerID     int64           `json:"customer_id"`
	CustomerName   string          `json:"customer_name"`
	CustomerType   string          `json:"customer_type"`
	AccountNumber  string          `json:"account_number"`
	TotalOrders    int             `json:"total_orders"`
	TotalSales     decimal.Decimal `json:"total_sales"`
	LastOrderDate  *time.Time      `json:"last_order_date"`
	FirstOrderDate *time.Time      `json:"first_order_date"`
	TerritoryName  string          `json:"territory_name,omitempty"`
	IsActive       bool            `json:"is_active"`
}
