package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeLineTotal(t *testing.T) {
	d := SalesOrderDetail{
		OrderQty:          3,
		UnitPrice:         decimal.NewFromFloat(19.99),
		UnitPriceDiscount: decimal.Zero,
	}
	d.ComputeLineTotal()

	assert.True(t, d.LineTotal.Equal(decimal.NewFromFloat(59.97)), "got %s", d.LineTotal)
}

func TestComputeLineTotal_Discount(t *testing.T) {
	d := SalesOrderDetail{
		OrderQty:          2,
		UnitPrice:         decimal.NewFromInt(100),
		UnitPriceDiscount: decimal.NewFromFloat(0.15),
	}
	d.ComputeLineTotal()

	assert.True(t, d.LineTotal.Equal(decimal.NewFromInt(170)), "got %s", d.LineTotal)
}

func TestComputeLineTotal_FullDiscount(t *testing.T) {
	d := SalesOrderDetail{
		OrderQty:          5,
		UnitPrice:         decimal.NewFromInt(40),
		UnitPriceDiscount: decimal.NewFromInt(1),
	}
	d.ComputeLineTotal()

	assert.True(t, d.LineTotal.IsZero(), "got %s", d.LineTotal)
}

func TestOrderStatusName_AllCodes(t *testing.T) {
	names := map[int]string{
		OrderStatusInProcess:   "In Process",
		OrderStatusApproved:    "Approved",
		OrderStatusBackordered: "Backordered",
		OrderStatusRejected:    "Rejected",
		OrderStatusShipped:     "Shipped",
		OrderStatusCancelled:   "Cancelled",
	}
	for code, want := range names {
		assert.Equal(t, want, OrderStatusName(code))
	}
	assert.Equal(t, "Unknown", OrderStatusName(7))
}
