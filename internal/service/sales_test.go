package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cycleworks/salesdesk/internal/dto"
	"github.com/cycleworks/salesdesk/internal/models"
	"github.com/cycleworks/salesdesk/internal/repository"
)

func newSalesService(products ...models.Product) (*SalesService, *fakeOrderRepo, *fakeDetailRepo) {
	orders := newFakeOrderRepo()
	details := newFakeDetailRepo()
	svc := NewSalesService(
		orders,
		details,
		newFakeProductLookup(products...),
		newFakeCustomerRepo(),
		&fakePersonLookup{persons: map[int64]models.Person{}},
	)
	return svc, orders, details
}

func TestGenerateOrderNumber_FirstOrder(t *testing.T) {
	svc, _, _ := newSalesService()

	n, err := svc.GenerateOrderNumber()

	require.NoError(t, err)
	assert.Equal(t, "SO1", n)
}

func TestGenerateOrderNumber_FollowsHighestIdentity(t *testing.T) {
	svc, orders, _ := newSalesService()
	for i := 0; i < 41; i++ {
		require.NoError(t, orders.Add(&models.SalesOrderHeader{CustomerID: 1}))
	}

	n, err := svc.GenerateOrderNumber()

	require.NoError(t, err)
	assert.Equal(t, "SO42", n)
}

func TestCalculateOrderTotal(t *testing.T) {
	svc, _, _ := newSalesService(testProduct(1, "Road-150", 3578.27))

	o, err := svc.Create(dto.SalesOrderCreateDto{
		CustomerID:      1,
		BillToAddressID: 1,
		ShipToAddressID: 1,
		ShipMethodID:    1,
		DueDate:         time.Now().AddDate(0, 0, 12),
		TaxAmt:          decimal.NewFromInt(12),
		Freight:         decimal.NewFromInt(3),
		OrderDetails:    []dto.SalesOrderDetailCreateDto{orderLine(1, 2, 100)},
	})
	require.NoError(t, err)

	total, err := svc.CalculateOrderTotal(o.SalesOrderID)

	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(215)), "got %s", total)
}

func TestGetDetails_ReturnsOrderLines(t *testing.T) {
	svc, _, _ := newSalesService(
		testProduct(1, "Road-150", 3578.27),
		testProduct(2, "Road-650", 782.99),
	)

	o, err := svc.Create(dto.SalesOrderCreateDto{
		CustomerID:      1,
		BillToAddressID: 1,
		ShipToAddressID: 1,
		ShipMethodID:    1,
		DueDate:         time.Now().AddDate(0, 0, 12),
		OrderDetails: []dto.SalesOrderDetailCreateDto{
			orderLine(1, 1, 100),
			orderLine(2, 3, 50),
		},
	})
	require.NoError(t, err)

	lines, err := svc.GetDetails(o.SalesOrderID)

	require.NoError(t, err)
	require.Len(t, lines, 2)
}

func TestOrderCreate_ComputesTotals(t *testing.T) {
	svc, _, _ := newSalesService(
		testProduct(1, "Road-150", 3578.27),
		testProduct(2, "Road-650", 782.99),
	)

	o, err := svc.Create(dto.SalesOrderCreateDto{
		CustomerID:      1,
		BillToAddressID: 1,
		ShipToAddressID: 1,
		ShipMethodID:    1,
		DueDate:         time.Now().AddDate(0, 0, 12),
		TaxAmt:          decimal.NewFromInt(10),
		Freight:         decimal.NewFromInt(5),
		OrderDetails: []dto.SalesOrderDetailCreateDto{
			orderLine(1, 2, 100),
			orderLine(2, 1, 50),
		},
	})

	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusInProcess, o.Status)
	assert.Equal(t, "SO1", o.SalesOrderNumber)
	assert.True(t, o.SubTotal.Equal(decimal.NewFromInt(250)), "got %s", o.SubTotal)
	assert.True(t, o.TotalDue.Equal(decimal.NewFromInt(265)), "got %s", o.TotalDue)
	require.Len(t, o.OrderDetails, 2)
	assert.True(t, o.OrderDetails[0].LineTotal.Equal(decimal.NewFromInt(200)))
}

// A line without a unit price picks up the product's current list price.
func TestOrderCreate_DefaultsUnitPriceFromCatalog(t *testing.T) {
	svc, _, _ := newSalesService(testProduct(1, "Road-150", 3578.27))

	o, err := svc.Create(dto.SalesOrderCreateDto{
		CustomerID:      1,
		BillToAddressID: 1,
		ShipToAddressID: 1,
		ShipMethodID:    1,
		DueDate:         time.Now().AddDate(0, 0, 12),
		OrderDetails: []dto.SalesOrderDetailCreateDto{
			{ProductID: 1, OrderQty: 1},
		},
	})

	require.NoError(t, err)
	assert.True(t, o.OrderDetails[0].UnitPrice.Equal(decimal.NewFromFloat(3578.27)))
}

func TestOrderCreate_DiscountedLine(t *testing.T) {
	svc, _, _ := newSalesService(testProduct(1, "Road-150", 100))

	line := orderLine(1, 3, 19.99)
	line.UnitPriceDiscount = decimal.NewFromFloat(0.1)

	o, err := svc.Create(dto.SalesOrderCreateDto{
		CustomerID:      1,
		BillToAddressID: 1,
		ShipToAddressID: 1,
		ShipMethodID:    1,
		DueDate:         time.Now().AddDate(0, 0, 12),
		OrderDetails:    []dto.SalesOrderDetailCreateDto{line},
	})

	require.NoError(t, err)
	assert.True(t, o.SubTotal.Equal(decimal.NewFromFloat(53.973)), "got %s", o.SubTotal)
}

func TestValidateDetails(t *testing.T) {
	svc, _, _ := newSalesService(testProduct(1, "Road-150", 100))

	valid, err := svc.ValidateDetails([]dto.SalesOrderDetailCreateDto{orderLine(1, 1, 100)})
	require.NoError(t, err)
	assert.True(t, valid)

	invalidQty := orderLine(1, 0, 100)
	valid, err = svc.ValidateDetails([]dto.SalesOrderDetailCreateDto{invalidQty})
	require.NoError(t, err)
	assert.False(t, valid)

	badDiscount := orderLine(1, 1, 100)
	badDiscount.UnitPriceDiscount = decimal.NewFromFloat(1.5)
	valid, err = svc.ValidateDetails([]dto.SalesOrderDetailCreateDto{badDiscount})
	require.NoError(t, err)
	assert.False(t, valid)

	missingProduct := orderLine(99, 1, 100)
	valid, err = svc.ValidateDetails([]dto.SalesOrderDetailCreateDto{missingProduct})
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestShip_SetsStatusAndDate(t *testing.T) {
	svc, orders, _ := newSalesService()
	require.NoError(t, orders.Add(&models.SalesOrderHeader{
		CustomerID: 1, Status: models.OrderStatusInProcess,
	}))

	shipped, err := svc.Ship(1, nil)

	require.NoError(t, err)
	assert.True(t, shipped)

	o, _ := orders.GetByID(1)
	assert.Equal(t, models.OrderStatusShipped, o.Status)
	assert.NotNil(t, o.ShipDate)
}

func TestShip_RefusedWhenCancelled(t *testing.T) {
	svc, orders, _ := newSalesService()
	require.NoError(t, orders.Add(&models.SalesOrderHeader{
		CustomerID: 1, Status: models.OrderStatusCancelled,
	}))

	shipped, err := svc.Ship(1, nil)

	require.NoError(t, err)
	assert.False(t, shipped)
}

func TestCancel_RefusedWhenShipped(t *testing.T) {
	svc, orders, _ := newSalesService()
	require.NoError(t, orders.Add(&models.SalesOrderHeader{
		CustomerID: 1, Status: models.OrderStatusShipped,
	}))

	cancelled, err := svc.Cancel(1)

	require.NoError(t, err)
	assert.False(t, cancelled)

	o, _ := orders.GetByID(1)
	assert.Equal(t, models.OrderStatusShipped, o.Status)
}

func TestOrderDelete_RefusedWhenShipped(t *testing.T) {
	svc, orders, _ := newSalesService()
	require.NoError(t, orders.Add(&models.SalesOrderHeader{
		CustomerID: 1, Status: models.OrderStatusShipped,
	}))

	removed, err := svc.Delete(1)

	require.NoError(t, err)
	assert.False(t, removed)
}

func TestOrderDelete_RemovesDetailLines(t *testing.T) {
	svc, orders, details := newSalesService()
	require.NoError(t, orders.Add(&models.SalesOrderHeader{
		CustomerID: 1, Status: models.OrderStatusInProcess,
	}))
	require.NoError(t, details.Add(&models.SalesOrderDetail{SalesOrderID: 1, OrderQty: 1}))
	require.NoError(t, details.Add(&models.SalesOrderDetail{SalesOrderID: 1, OrderQty: 2}))

	removed, err := svc.Delete(1)

	require.NoError(t, err)
	assert.True(t, removed)

	remaining, _ := details.ByOrder(1)
	assert.Empty(t, remaining)
}

func TestOrderDelete_MissingIsNotFound(t *testing.T) {
	svc, _, _ := newSalesService()

	_, err := svc.Delete(123)

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAddDetail_RefreshesOrderTotals(t *testing.T) {
	svc, orders, _ := newSalesService(testProduct(1, "Road-150", 100))
	require.NoError(t, orders.Add(&models.SalesOrderHeader{
		CustomerID: 1, Status: models.OrderStatusInProcess,
		TaxAmt: decimal.NewFromInt(10), Freight: decimal.NewFromInt(5),
	}))

	_, err := svc.AddDetail(1, orderLine(1, 2, 100))

	require.NoError(t, err)
	o, _ := orders.GetByID(1)
	assert.True(t, o.SubTotal.Equal(decimal.NewFromInt(200)), "got %s", o.SubTotal)
	assert.True(t, o.TotalDue.Equal(decimal.NewFromInt(215)), "got %s", o.TotalDue)
}

func TestAddDetail_RefusedOnClosedOrder(t *testing.T) {
	svc, orders, _ := newSalesService(testProduct(1, "Road-150", 100))
	require.NoError(t, orders.Add(&models.SalesOrderHeader{
		CustomerID: 1, Status: models.OrderStatusShipped,
	}))

	_, err := svc.AddDetail(1, orderLine(1, 1, 100))

	assert.Error(t, err)
}

func TestGetSalesSummary(t *testing.T) {
	svc, orders, _ := newSalesService()
	require.NoError(t, orders.Add(&models.SalesOrderHeader{
		CustomerID: 1, OrderDate: time.Now(), TotalDue: decimal.NewFromInt(100),
	}))
	require.NoError(t, orders.Add(&models.SalesOrderHeader{
		CustomerID: 1, OrderDate: time.Now(), TotalDue: decimal.NewFromInt(300),
	}))

	summary, err := svc.GetSalesSummary(nil, nil)

	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalOrders)
	assert.True(t, summary.TotalSales.Equal(decimal.NewFromInt(400)))
	assert.True(t, summary.AverageOrderValue.Equal(decimal.NewFromInt(200)))
}

func TestGetSalesSummary_NoOrders(t *testing.T) {
	svc, _, _ := newSalesService()

	summary, err := svc.GetSalesSummary(nil, nil)

	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalOrders)
	assert.True(t, summary.TotalSales.IsZero())
	assert.True(t, summary.AverageOrderValue.IsZero())
}

func TestGetTopSellingProducts_RanksBySales(t *testing.T) {
	svc, orders, details := newSalesService()
	require.NoError(t, orders.Add(&models.SalesOrderHeader{CustomerID: 1, OrderDate: time.Now()}))

	cheap := models.SalesOrderDetail{
		SalesOrderID: 1, ProductID: 1, ProductName: "Chain", OrderQty: 5,
		LineTotal: decimal.NewFromInt(60),
	}
	pricey := models.SalesOrderDetail{
		SalesOrderID: 1, ProductID: 2, ProductName: "Road-150", OrderQty: 1,
		LineTotal: decimal.NewFromInt(3578),
	}
	require.NoError(t, details.Add(&cheap))
	require.NoError(t, details.Add(&pricey))

	top, err := svc.GetTopSellingProducts(1, nil, nil)

	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, int64(2), top[0].ProductID)
	assert.Equal(t, "Road-150", top[0].ProductName)
}

func TestGetSalesPersonPerformance_SkipsOnlineOrders(t *testing.T) {
	svc, orders, _ := newSalesService()
	require.NoError(t, orders.Add(&models.SalesOrderHeader{
		CustomerID: 1, OrderDate: time.Now(), TotalDue: decimal.NewFromInt(100),
		SalesPersonID: int64ptr(9),
	}))
	require.NoError(t, orders.Add(&models.SalesOrderHeader{
		CustomerID: 1, OrderDate: time.Now(), TotalDue: decimal.NewFromInt(999),
	}))

	performance, err := svc.GetSalesPersonPerformance(nil, nil)

	require.NoError(t, err)
	require.Len(t, performance, 1)
	assert.Equal(t, int64(9), performance[0].BusinessEntityID)
	assert.Equal(t, 1, performance[0].TotalOrders)
	assert.True(t, performance[0].TotalSales.Equal(decimal.NewFromInt(100)))
}

func TestGetMonthlySales_GroupsByMonth(t *testing.T) {
	svc, orders, _ := newSalesService()
	jan := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	alsoJan := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)
	march := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	require.NoError(t, orders.Add(&models.SalesOrderHeader{CustomerID: 1, OrderDate: jan, TotalDue: decimal.NewFromInt(100)}))
	require.NoError(t, orders.Add(&models.SalesOrderHeader{CustomerID: 1, OrderDate: alsoJan, TotalDue: decimal.NewFromInt(200)}))
	require.NoError(t, orders.Add(&models.SalesOrderHeader{CustomerID: 1, OrderDate: march, TotalDue: decimal.NewFromInt(50)}))

	monthly, err := svc.GetMonthlySales(2025)

	require.NoError(t, err)
	require.Len(t, monthly, 2)
	assert.Equal(t, "January", monthly[0].MonthName)
	assert.Equal(t, 2, monthly[0].TotalOrders)
	assert.True(t, monthly[0].TotalSales.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, 3, monthly[1].Month)
}

func TestGetMonthlySales_EmptyYear(t *testing.T) {
	svc, _, _ := newSalesService()

	monthly, err := svc.GetMonthlySales(1998)

	require.NoError(t, err)
	assert.NotNil(t, monthly)
	assert.Empty(t, monthly)
}
