package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sales order status codes. Stored as-is; codes outside this set display
// as "Unknown" but are not rejected by the data layer.
const (
	OrderStatusInProcess   = 1
	OrderStatusApproved    = 2
	OrderStatusBackordered = 3
	OrderStatusRejected    = 4
	OrderStatusShipped     = 5
	OrderStatusCancelled   = 6
)

// OrderStatusName returns the display text for a status code.
func OrderStatusName(status int) string {
	switch status {
	case OrderStatusInProcess:
		return "In Process"
	case OrderStatusApproved:
		return "Approved"
	case OrderStatusBackordered:
		return "Backordered"
	case OrderStatusRejected:
		return "Rejected"
	case OrderStatusShipped:
		return "Shipped"
	case OrderStatusCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

type SalesOrderHeader struct {
	SalesOrderID        int64           `json:"sales_order_id" db:"sales_order_id"`
	RevisionNumber      int             `json:"revision_number" db:"revision_number"`
	OrderDate           time.Time       `json:"order_date" db:"order_date"`
	DueDate             time.Time       `json:"due_date" db:"due_date"`
	ShipDate            *time.Time      `json:"ship_date" db:"ship_date"`
	Status              int             `json:"status" db:"status"`
	OnlineOrderFlag     bool            `json:"online_order_flag" db:"online_order_flag"`
	SalesOrderNumber    string          `json:"sales_order_number" db:"sales_order_number"`
	PurchaseOrderNumber *string         `json:"purchase_order_number" db:"purchase_order_number"`
	AccountNumber       *string         `json:"account_number" db:"account_number"`
	CustomerID          int64           `json:"customer_id" db:"customer_id"`
	SalesPersonID       *int64          `json:"sales_person_id" db:"sales_person_id"`
	TerritoryID         *int64          `json:"territory_id" db:"territory_id"`
	BillToAddressID     int64           `json:"bill_to_address_id" db:"bill_to_address_id"`
	ShipToAddressID     int64           `json:"ship_to_address_id" db:"ship_to_address_id"`
	ShipMethodID        int64           `json:"ship_method_id" db:"ship_method_id"`
	SubTotal            decimal.Decimal `json:"subtotal" db:"subtotal"`
	TaxAmt              decimal.Decimal `json:"tax_amt" db:"tax_amt"`
	Freight             decimal.Decimal `json:"freight" db:"freight"`
	TotalDue            decimal.Decimal `json:"total_due" db:"total_due"`
	Comment             *string         `json:"comment" db:"comment"`
	Rowguid             string          `json:"rowguid" db:"rowguid"`
	ModifiedDate        time.Time       `json:"modified_date" db:"modified_date"`

	// Loaded by SalesOrderRepository.GetWithDetails, nil otherwise.
	Details  []SalesOrderDetail `json:"details,omitempty" db:"-"`
	Customer *Customer          `json:"customer,omitempty" db:"-"`
}

type SalesOrderDetail struct {
	SalesOrderID          int64           `json:"sales_order_id" db:"sales_order_id"`
	SalesOrderDetailID    int64           `json:"sales_order_detail_id" db:"sales_order_detail_id"`
	CarrierTrackingNumber *string         `json:"carrier_tracking_number" db:"carrier_tracking_number"`
	OrderQty              int             `json:"order_qty" db:"order_qty"`
	ProductID             int64           `json:"product_id" db:"product_id"`
	SpecialOfferID        int64           `json:"special_offer_id" db:"special_offer_id"`
	UnitPrice             decimal.Decimal `json:"unit_price" db:"unit_price"`
	UnitPriceDiscount     decimal.Decimal `json:"unit_price_discount" db:"unit_price_discount"`
	LineTotal             decimal.Decimal `json:"line_total" db:"line_total"`
	Rowguid               string          `json:"rowguid" db:"rowguid"`
	ModifiedDate          time.Time       `json:"modified_date" db:"modified_date"`

	// Loaded by SalesOrderRepository.GetWithDetails.
	ProductName   string `json:"product_name,omitempty" db:"-"`
	ProductNumber string `json:"product_number,omitempty" db:"-"`
}

// ComputeLineTotal recalculates LineTotal from quantity, unit price and
// discount. Must be called whenever any of the three change.
func (d *SalesOrderDetail) ComputeLineTotal() {
	qty := decimal.NewFromInt(int64(d.OrderQty))
	d.LineTotal = d.UnitPrice.Mul(qty).Mul(decimal.NewFromInt(1).Sub(d.UnitPriceDiscount))
}

type SpecialOffer struct {
	SpecialOfferID int64           `json:"special_offer_id" db:"special_offer_id"`
	Description    string          `json:"description" db:"description"`
	DiscountPct    decimal.Decimal `json:"discount_pct" db:"discount_pct"`
	Rowguid        string          `json:"rowguid" db:"rowguid"`
	ModifiedDate   time.Time       `json:"modified_date" db:"modified_date"`
}
