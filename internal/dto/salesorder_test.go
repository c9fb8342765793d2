package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStatusDisplay(t *testing.T) {
	assert.Equal(t, "In Process", SalesOrderHeaderDto{Status: 1}.StatusDisplay())
	assert.Equal(t, "Shipped", SalesOrderHeaderDto{Status: 5}.StatusDisplay())
	assert.Equal(t, "Cancelled", SalesOrderHeaderDto{Status: 6}.StatusDisplay())
}

// Unknown status codes render as "Unknown" instead of being rejected.
func TestStatusDisplay_UnknownCode(t *testing.T) {
	assert.Equal(t, "Unknown", SalesOrderHeaderDto{Status: 99}.StatusDisplay())
	assert.Equal(t, "Unknown", SalesOrderHeaderDto{Status: 0}.StatusDisplay())
}

func TestOrderType(t *testing.T) {
	assert.Equal(t, "Online", SalesOrderHeaderDto{OnlineOrderFlag: true}.OrderType())
	assert.Equal(t, "Sales Person", SalesOrderHeaderDto{}.OrderType())
}

func TestIsOverdue(t *testing.T) {
	past := time.Now().AddDate(0, 0, -2)
	future := time.Now().AddDate(0, 0, 2)
	shipped := time.Now().AddDate(0, 0, -1)

	assert.True(t, SalesOrderHeaderDto{DueDate: past}.IsOverdue())
	assert.False(t, SalesOrderHeaderDto{DueDate: future}.IsOverdue())
	assert.False(t, SalesOrderHeaderDto{DueDate: past, ShipDate: &shipped}.IsOverdue())
}

func TestDetailAmounts(t *testing.T) {
	d := SalesOrderDetailDto{
		OrderQty:          4,
		UnitPrice:         decimal.NewFromInt(25),
		UnitPriceDiscount: decimal.NewFromFloat(0.1),
	}

	assert.True(t, d.ExtendedPrice().Equal(decimal.NewFromInt(100)))
	assert.True(t, d.DiscountAmount().Equal(decimal.NewFromInt(10)))
}

func TestProductSummary(t *testing.T) {
	d := SalesOrderDetailDto{ProductName: "Road-150 Red, 62", ProductNumber: "BK-R93R-62", OrderQty: 3}
	assert.Equal(t, "Road-150 Red, 62 (BK-R93R-62) - Qty: 3", d.ProductSummary())
}
