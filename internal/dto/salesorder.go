package dto

import (
	"fmt"
	"time"

	"github.com/cycleworks/salesdesk/internal/models"
	"github.com/shopspring/decimal"
)

type SalesOrderHeaderDto struct {
	SalesOrderID        int64                 `json:"sales_order_id"`
	RevisionNumber      int                   `json:"revision_number"`
	OrderDate           time.Time             `json:"order_date"`
	DueDate             time.Time             `json:"due_date"`
	ShipDate            *time.Time            `json:"ship_date"`
	Status              int                   `json:"status"`
	OnlineOrderFlag     bool                  `json:"online_order_flag"`
	SalesOrderNumber    string                `json:"sales_order_number"`
	PurchaseOrderNumber string                `json:"purchase_order_number,omitempty"`
	AccountNumber       string                `json:"account_number,omitempty"`
	CustomerID          int64                 `json:"customer_id"`
	SalesPersonID       *int64                `json:"sales_person_id"`
	TerritoryID         *int64                `json:"territory_id"`
	BillToAddressID     int64                 `json:"bill_to_address_id"`
	ShipToAddressID     int64                 `json:"ship_to_address_id"`
	ShipMethodID        int64                 `json:"ship_method_id"`
	SubTotal            decimal.Decimal       `json:"subtotal"`
	TaxAmt              decimal.Decimal       `json:"tax_amt"`
	Freight             decimal.Decimal       `json:"freight"`
	TotalDue            decimal.Decimal       `json:"total_due"`
	Comment             string                `json:"comment,omitempty"`
	Customer            *CustomerDto          `json:"customer,omitempty"`
	OrderDetails        []SalesOrderDetailDto `json:"order_details,omitempty"`
	ModifiedDate        time.Time             `json:"modified_date"`
}

// StatusDisplay is the human-readable status; unknown codes render as
// "Unknown" without being rejected.
func (o SalesOrderHeaderDto) StatusDisplay() string {
	return models.OrderStatusName(o.Status)
}

// OrderType distinguishes online orders from sales-person orders.
func (o SalesOrderHeaderDto) OrderType() string {
	if o.OnlineOrderFlag {
		return "Online"
	}
	return "Sales Person"
}

// DaysSinceOrder counts whole days since the order was placed.
func (o SalesOrderHeaderDto) DaysSinceOrder() int {
	return int(time.Since(o.OrderDate).Hours() / 24)
}

// IsOverdue reports an unshipped order past its due date.
func (o SalesOrderHeaderDto) IsOverdue() bool {
	return o.ShipDate == nil && time.Now().After(o.DueDate)
}

type SalesOrderDetailDto struct {
	SalesOrderID          int64           `json:"sales_order_id"`
	SalesOrderDetailID    int64           `json:"sales_order_detail_id"`
	CarrierTrackingNumber string          `json:"carrier_tracking_number,omitempty"`
	OrderQty              int             `json:"order_qty"`
	ProductID             int64           `json:"product_id"`
	SpecialOfferID        int64           `json:"special_offer_id"`
	UnitPrice             decimal.Decimal `json:"unit_price"`
	UnitPriceDiscount     decimal.Decimal `json:"unit_price_discount"`
	LineTotal             decimal.Decimal `json:"line_total"`
	ProductName           string          `json:"product_name,omitempty"`
	ProductNumber         string          `json:"product_number,omitempty"`
	ModifiedDate          time.Time       `json:"modified_date"`
}

// DiscountAmount is the total discount applied across the line.
func (d SalesOrderDetailDto) DiscountAmount() decimal.Decimal {
	return d.UnitPrice.Mul(d.UnitPriceDiscount).Mul(decimal.NewFromInt(int64(d.OrderQty)))
}

// ExtendedPrice is the undiscounted line amount.
func (d SalesOrderDetailDto) ExtendedPrice() decimal.Decimal {
	return d.UnitPrice.Mul(decimal.NewFromInt(int64(d.OrderQty)))
}

// ProductSummary renders a one-line description of the line item.
func (d SalesOrderDetailDto) ProductSummary() string {
	return fmt.Sprintf("%s (%s) - Qty: %d", d.ProductName, d.ProductNumber, d.OrderQty)
}

type SalesOrderCreateDto struct {
	CustomerID          int64                       `json:"customer_id" binding:"required"`
	SalesPersonID       *int64                      `json:"sales_person_id"`
	TerritoryID         *int64                      `json:"territory_id"`
	BillToAddressID     int64                       `json:"bill_to_address_id" binding:"required"`
	ShipToAddressID     int64                       `json:"ship_to_address_id" binding:"required"`
	ShipMethodID        int64                       `json:"ship_method_id" binding:"required"`
	OnlineOrderFlag     bool                        `json:"online_order_flag"`
	OrderDate           *time.Time                  `json:"order_date"`
	DueDate             time.Time                   `json:"due_date" binding:"required"`
	PurchaseOrderNumber string                      `json:"purchase_order_number"`
	Comment             string                      `json:"comment"`
	TaxAmt              decimal.Decimal             `json:"tax_amt"`
	Freight             decimal.Decimal             `json:"freight"`
	OrderDetails        []SalesOrderDetailCreateDto `json:"order_details"`
}

type SalesOrderUpdateDto struct {
	SalesOrderCreateDto
	SalesOrderID   int64 `json:"sales_order_id" binding:"required"`
	RevisionNumber int   `json:"revision_number"`
}

type SalesOrderDetailCreateDto struct {
	ProductID             int64           `json:"product_id" binding:"required"`
	SpecialOfferID        int64           `json:"special_offer_id"`
	OrderQty              int             `json:"order_qty" binding:"required,gt=0"`
	UnitPrice             decimal.Decimal `json:"unit_price"`
	UnitPriceDiscount     decimal.Decimal `json:"unit_price_discount"`
	CarrierTrackingNumber string          `json:"carrier_tracking_number"`
}

type SalesOrderDetailUpdateDto struct {
	SalesOrderDetailCreateDto
	SalesOrderID       int64 `json:"sales_order_id" binding:"required"`
	SalesOrderDetailID int64 `json:"sales_order_detail_id" binding:"required"`
}

type SalesSummaryDto struct {
	TotalSales        decimal.Decimal `json:"total_sales"`
	TotalOrders       int             `json:"total_orders"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
	TotalCustomers    int             `json:"total_customers"`
	TotalProducts     int             `json:"total_products"`
	StartDate         *time.Time      `json:"start_date"`
	EndDate           *time.Time      `json:"end_date"`
}

type TopProductDto struct {
	ProductID     int64           `json:"product_id"`
	ProductName   string          `json:"product_name"`
	ProductNumber string          `json:"product_number"`
	QuantitySold  int             `json:"quantity_sold"`
	TotalSales    decimal.Decimal `json:"total_sales"`
	OrderCount    int             `json:"order_count"`
}

type SalesPersonPerformanceDto struct {
	BusinessEntityID  int64           `json:"business_entity_id"`
	SalesPersonName   string          `json:"sales_person_name"`
	TotalSales        decimal.Decimal `json:"total_sales"`
	TotalOrders       int             `json:"total_orders"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
}

type MonthlySalesDto struct {
	Year              int             `json:"year"`
	Month             int             `json:"month"`
	MonthName         string          `json:"month_name"`
	TotalSales        decimal.Decimal `json:"total_sales"`
	TotalOrders       int             `json:"total_orders"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
}
