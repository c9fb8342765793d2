package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/cycleworks/salesdesk/internal/dto"
	"github.com/cycleworks/salesdesk/internal/mapper"
	"github.com/cycleworks/salesdesk/internal/models"
	"github.com/cycleworks/salesdesk/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderRepo is the slice of the sales order repository the service uses.
type OrderRepo interface {
	GetByID(id int64) (*models.SalesOrderHeader, error)
	GetAll() ([]models.SalesOrderHeader, error)
	GetWithDetails(id int64) (*models.SalesOrderHeader, error)
	ByCustomer(customerID int64) ([]models.SalesOrderHeader, error)
	ByDateRange(start, end time.Time) ([]models.SalesOrderHeader, error)
	ByStatus(status int) ([]models.SalesOrderHeader, error)
	BySalesPerson(salesPersonID int64) ([]models.SalesOrderHeader, error)
	Recent(count int) ([]models.SalesOrderHeader, error)
	Last() (*models.SalesOrderHeader, error)
	Add(o *models.SalesOrderHeader) error
	Update(o *models.SalesOrderHeader) error
	Delete(id int64) (bool, error)
	Exists(id int64) (bool, error)
	Count() (int, error)
}

type OrderDetailRepo interface {
	GetByID(id int64) (*models.SalesOrderDetail, error)
	ByOrder(orderID int64) ([]models.SalesOrderDetail, error)
	Add(d *models.SalesOrderDetail) error
	Update(d *models.SalesOrderDetail) error
	Delete(id int64) (bool, error)
	DeleteByOrder(orderID int64) (int, error)
}

// ProductLookup resolves order line products and the catalog size.
type ProductLookup interface {
	GetByID(id int64) (*models.Product, error)
	Count() (int, error)
}

type CustomerCounter interface {
	Count() (int, error)
}

type PersonLookup interface {
	GetByID(id int64) (*models.Person, error)
}

type SalesService struct {
	orders    OrderRepo
	details   OrderDetailRepo
	products  ProductLookup
	customers CustomerCounter
	persons   PersonLookup
}

func NewSalesService(orders OrderRepo, details OrderDetailRepo, products ProductLookup, customers CustomerCounter, persons PersonLookup) *SalesService {
	return &SalesService{
		orders:    orders,
		details:   details,
		products:  products,
		customers: customers,
		persons:   persons,
	}
}

func (s *SalesService) GetAll() ([]dto.SalesOrderHeaderDto, error) {
	orders, err := s.orders.GetAll()
	if err != nil {
		return nil, err
	}
	return mapper.OrdersToDto(orders), nil
}

func (s *SalesService) GetByID(id int64) (*dto.SalesOrderHeaderDto, error) {
	o, err := s.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	out := mapper.OrderToDto(*o)
	return &out, nil
}

// GetWithDetails returns the order with its detail lines loaded.
func (s *SalesService) GetWithDetails(id int64) (*dto.SalesOrderHeaderDto, error) {
	o, err := s.orders.GetWithDetails(id)
	if err != nil {
		return nil, err
	}
	out := mapper.OrderToDto(*o)
	return &out, nil
}

func (s *SalesService) ByCustomer(customerID int64) ([]dto.SalesOrderHeaderDto, error) {
	orders, err := s.orders.ByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	return mapper.OrdersToDto(orders), nil
}

func (s *SalesService) ByStatus(status int) ([]dto.SalesOrderHeaderDto, error) {
	orders, err := s.orders.ByStatus(status)
	if err != nil {
		return nil, err
	}
	return mapper.OrdersToDto(orders), nil
}

func (s *SalesService) ByDateRange(start, end time.Time) ([]dto.SalesOrderHeaderDto, error) {
	orders, err := s.orders.ByDateRange(start, end)
	if err != nil {
		return nil, err
	}
	return mapper.OrdersToDto(orders), nil
}

func (s *SalesService) BySalesPerson(salesPersonID int64) ([]dto.SalesOrderHeaderDto, error) {
	orders, err := s.orders.BySalesPerson(salesPersonID)
	if err != nil {
		return nil, err
	}
	return mapper.OrdersToDto(orders), nil
}

func (s *SalesService) Recent(count int) ([]dto.SalesOrderHeaderDto, error) {
	if count < 1 {
		count = 10
	}
	orders, err := s.orders.Recent(count)
	if err != nil {
		return nil, err
	}
	return mapper.OrdersToDto(orders), nil
}

// Create persists a new order with its detail lines. Line totals, the
// subtotal and the grand total are computed here; the order number is
// generated from the highest known order identity.
func (s *SalesService) Create(d dto.SalesOrderCreateDto) (*dto.SalesOrderHeaderDto, error) {
	ok, err := s.ValidateDetails(d.OrderDetails)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("order details failed validation")
	}

	number, err := s.GenerateOrderNumber()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	orderDate := now
	if d.OrderDate != nil {
		orderDate = *d.OrderDate
	}

	o := models.SalesOrderHeader{
		RevisionNumber:      1,
		OrderDate:           orderDate,
		DueDate:             d.DueDate,
		Status:              models.OrderStatusInProcess,
		OnlineOrderFlag:     d.OnlineOrderFlag,
		SalesOrderNumber:    number,
		PurchaseOrderNumber: optionalString(d.PurchaseOrderNumber),
		CustomerID:          d.CustomerID,
		SalesPersonID:       d.SalesPersonID,
		TerritoryID:         d.TerritoryID,
		BillToAddressID:     d.BillToAddressID,
		ShipToAddressID:     d.ShipToAddressID,
		ShipMethodID:        d.ShipMethodID,
		TaxAmt:              d.TaxAmt,
		Freight:             d.Freight,
		Comment:             optionalString(d.Comment),
		Rowguid:             uuid.NewString(),
		ModifiedDate:        now,
	}

	details := make([]models.SalesOrderDetail, 0, len(d.OrderDetails))
	subtotal := decimal.Zero
	for _, line := range d.OrderDetails {
		detail, err := s.buildDetail(line)
		if err != nil {
			return nil, err
		}
		subtotal = subtotal.Add(detail.LineTotal)
		details = append(details, *detail)
	}

	o.SubTotal = subtotal
	o.TotalDue = subtotal.Add(o.TaxAmt).Add(o.Freight)

	if err := s.orders.Add(&o); err != nil {
		return nil, err
	}
	for i := range details {
		details[i].SalesOrderID = o.SalesOrderID
		if err := s.details.Add(&details[i]); err != nil {
			return nil, err
		}
	}
	o.Details = details

	out := mapper.OrderToDto(o)
	return &out, nil
}

// buildDetail turns a create line into a stored detail. A zero unit
// price falls back to the product's current list price; a zero special
// offer maps to the catalog's no-discount offer.
func (s *SalesService) buildDetail(line dto.SalesOrderDetailCreateDto) (*models.SalesOrderDetail, error) {
	detail := models.SalesOrderDetail{
		CarrierTrackingNumber: optionalString(line.CarrierTrackingNumber),
		OrderQty:              line.OrderQty,
		ProductID:             line.ProductID,
		SpecialOfferID:        line.SpecialOfferID,
		UnitPrice:             line.UnitPrice,
		UnitPriceDiscount:     line.UnitPriceDiscount,
		Rowguid:               uuid.NewString(),
		ModifiedDate:          time.Now(),
	}
	if detail.SpecialOfferID == 0 {
		detail.SpecialOfferID = 1
	}
	if detail.UnitPrice.IsZero() {
		p, err := s.products.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		detail.UnitPrice = p.ListPrice
	}
	detail.ComputeLineTotal()
	return &detail, nil
}

// ValidateDetails checks every line: positive quantity, non-negative
// unit price, discount within [0, 1] and an existing product.
func (s *SalesService) ValidateDetails(lines []dto.SalesOrderDetailCreateDto) (bool, error) {
	one := decimal.NewFromInt(1)
	for _, line := range lines {
		if line.OrderQty <= 0 {
			return false, nil
		}
		if line.UnitPrice.IsNegative() {
			return false, nil
		}
		if line.UnitPriceDiscount.IsNegative() || line.UnitPriceDiscount.GreaterThan(one) {
			return false, nil
		}
		_, err := s.products.GetByID(line.ProductID)
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
	}
	return true, nil
}

// Update rewrites the order's mutable fields and recomputes the grand
// total from the stored subtotal plus the new tax and freight.
func (s *SalesService) Update(d dto.SalesOrderUpdateDto) (*dto.SalesOrderHeaderDto, error) {
	o, err := s.orders.GetByID(d.SalesOrderID)
	if err != nil {
		return nil, err
	}

	if d.RevisionNumber > 0 {
		o.RevisionNumber = d.RevisionNumber
	} else {
		o.RevisionNumber++
	}
	if d.OrderDate != nil {
		o.OrderDate = *d.OrderDate
	}
	o.DueDate = d.DueDate
	o.OnlineOrderFlag = d.OnlineOrderFlag
	o.PurchaseOrderNumber = optionalString(d.PurchaseOrderNumber)
	o.CustomerID = d.CustomerID
	o.SalesPersonID = d.SalesPersonID
	o.TerritoryID = d.TerritoryID
	o.BillToAddressID = d.BillToAddressID
	o.ShipToAddressID = d.ShipToAddressID
	o.ShipMethodID = d.ShipMethodID
	o.TaxAmt = d.TaxAmt
	o.Freight = d.Freight
	o.Comment = optionalString(d.Comment)
	o.TotalDue = o.SubTotal.Add(o.TaxAmt).Add(o.Freight)
	o.ModifiedDate = time.Now()

	if err := s.orders.Update(o); err != nil {
		return nil, err
	}

	out := mapper.OrderToDto(*o)
	return &out, nil
}

// Delete removes an order with its detail lines unless it has shipped.
// A refusal is a false return, not an error.
func (s *SalesService) Delete(id int64) (bool, error) {
	o, err := s.orders.GetByID(id)
	if err != nil {
		return false, err
	}
	if o.Status == models.OrderStatusShipped {
		return false, nil
	}

	if _, err := s.details.DeleteByOrder(id); err != nil {
		return false, err
	}
	return s.orders.Delete(id)
}

func (s *SalesService) Exists(id int64) (bool, error) {
	return s.orders.Exists(id)
}

// GetDetails returns the order's lines.
func (s *SalesService) GetDetails(orderID int64) ([]dto.SalesOrderDetailDto, error) {
	details, err := s.details.ByOrder(orderID)
	if err != nil {
		return nil, err
	}
	return mapper.DetailsToDto(details), nil
}

// CalculateOrderTotal recomputes the amount due from the order's stored
// lines plus its tax and freight. The stored TotalDue is left untouched.
func (s *SalesService) CalculateOrderTotal(orderID int64) (decimal.Decimal, error) {
	o, err := s.orders.GetByID(orderID)
	if err != nil {
		return decimal.Zero, err
	}

	details, err := s.details.ByOrder(orderID)
	if err != nil {
		return decimal.Zero, err
	}

	subTotal := decimal.Zero
	for i := range details {
		subTotal = subTotal.Add(details[i].LineTotal)
	}
	return subTotal.Add(o.TaxAmt).Add(o.Freight), nil
}

// CanModify reports whether the order is still open for changes.
func (s *SalesService) CanModify(id int64) (bool, error) {
	o, err := s.orders.GetByID(id)
	if err != nil {
		return false, err
	}
	return o.Status != models.OrderStatusShipped && o.Status != models.OrderStatusCancelled, nil
}

// Ship marks the order shipped. Shipping an already shipped or
// cancelled order is refused with a false return.
func (s *SalesService) Ship(id int64, shipDate *time.Time) (bool, error) {
	o, err := s.orders.GetByID(id)
	if err != nil {
		return false, err
	}
	if o.Status == models.OrderStatusShipped || o.Status == models.OrderStatusCancelled {
		return false, nil
	}

	when := time.Now()
	if shipDate != nil {
		when = *shipDate
	}
	o.ShipDate = &when
	o.Status = models.OrderStatusShipped
	o.ModifiedDate = time.Now()
	if err := s.orders.Update(o); err != nil {
		return false, err
	}
	return true, nil
}

// Cancel marks the order cancelled. A shipped order cannot be cancelled.
func (s *SalesService) Cancel(id int64) (bool, error) {
	o, err := s.orders.GetByID(id)
	if err != nil {
		return false, err
	}
	if o.Status == models.OrderStatusShipped {
		return false, nil
	}

	o.Status = models.OrderStatusCancelled
	o.ModifiedDate = time.Now()
	if err := s.orders.Update(o); err != nil {
		return false, err
	}
	return true, nil
}

// GenerateOrderNumber derives the next order number from the highest
// known order identity. Concurrent creates can collide; the unique key
// on sales_order_number is the backstop.
func (s *SalesService) GenerateOrderNumber() (string, error) {
	last, err := s.orders.Last()
	if err != nil {
		return "", err
	}

	var nextID int64 = 1
	if last != nil {
		nextID = last.SalesOrderID + 1
	}
	return fmt.Sprintf("SO%d", nextID), nil
}

// AddDetail appends a line to an open order and refreshes the order
// totals.
func (s *SalesService) AddDetail(orderID int64, line dto.SalesOrderDetailCreateDto) (*dto.SalesOrderDetailDto, error) {
	ok, err := s.CanModify(orderID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("order is closed for changes")
	}

	valid, err := s.ValidateDetails([]dto.SalesOrderDetailCreateDto{line})
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, errors.New("order detail failed validation")
	}

	detail, err := s.buildDetail(line)
	if err != nil {
		return nil, err
	}
	detail.SalesOrderID = orderID
	if err := s.details.Add(detail); err != nil {
		return nil, err
	}
	if err := s.refreshTotals(orderID); err != nil {
		return nil, err
	}

	out := mapper.DetailToDto(*detail)
	return &out, nil
}

// UpdateDetail rewrites a line, recomputes its total and refreshes the
// order totals.
func (s *SalesService) UpdateDetail(d dto.SalesOrderDetailUpdateDto) (*dto.SalesOrderDetailDto, error) {
	detail, err := s.details.GetByID(d.SalesOrderDetailID)
	if err != nil {
		return nil, err
	}

	detail.CarrierTrackingNumber = optionalString(d.CarrierTrackingNumber)
	detail.OrderQty = d.OrderQty
	detail.ProductID = d.ProductID
	if d.SpecialOfferID > 0 {
		detail.SpecialOfferID = d.SpecialOfferID
	}
	if !d.UnitPrice.IsZero() {
		detail.UnitPrice = d.UnitPrice
	}
	detail.UnitPriceDiscount = d.UnitPriceDiscount
	detail.ComputeLineTotal()
	detail.ModifiedDate = time.Now()

	if err := s.details.Update(detail); err != nil {
		return nil, err
	}
	if err := s.refreshTotals(detail.SalesOrderID); err != nil {
		return nil, err
	}

	out := mapper.DetailToDto(*detail)
	return &out, nil
}

// RemoveDetail deletes a line and refreshes the order totals.
func (s *SalesService) RemoveDetail(detailID int64) (bool, error) {
	detail, err := s.details.GetByID(detailID)
	if err != nil {
		return false, err
	}

	removed, err := s.details.Delete(detailID)
	if err != nil || !removed {
		return removed, err
	}
	return true, s.refreshTotals(detail.SalesOrderID)
}

// refreshTotals recomputes the order's subtotal and grand total from its
// stored detail lines.
func (s *SalesService) refreshTotals(orderID int64) error {
	o, err := s.orders.GetByID(orderID)
	if err != nil {
		return err
	}

	details, err := s.details.ByOrder(orderID)
	if err != nil {
		return err
	}

	subtotal := decimal.Zero
	for i := range details {
		subtotal = subtotal.Add(details[i].LineTotal)
	}
	o.SubTotal = subtotal
	o.TotalDue = subtotal.Add(o.TaxAmt).Add(o.Freight)
	o.ModifiedDate = time.Now()

	return s.orders.Update(o)
}

// ordersInRange fetches orders scoped by the optional bounds. Absent
// bounds fall back to the beginning of time and now.
func (s *SalesService) ordersInRange(start, end *time.Time) ([]models.SalesOrderHeader, error) {
	if start == nil && end == nil {
		return s.orders.GetAll()
	}

	from := time.Time{}
	if start != nil {
		from = *start
	}
	to := time.Now()
	if end != nil {
		to = *end
	}
	return s.orders.ByDateRange(from, to)
}

// GetSalesSummary aggregates the orders in the optional date range. An
// empty range yields zero totals.
func (s *SalesService) GetSalesSummary(start, end *time.Time) (*dto.SalesSummaryDto, error) {
	orders, err := s.ordersInRange(start, end)
	if err != nil {
		return nil, err
	}

	totalCustomers, err := s.customers.Count()
	if err != nil {
		return nil, err
	}
	totalProducts, err := s.products.Count()
	if err != nil {
		return nil, err
	}

	summary := dto.SalesSummaryDto{
		TotalSales:        decimal.Zero,
		TotalOrders:       len(orders),
		AverageOrderValue: decimal.Zero,
		TotalCustomers:    totalCustomers,
		TotalProducts:     totalProducts,
		StartDate:         start,
		EndDate:           end,
	}
	for i := range orders {
		summary.TotalSales = summary.TotalSales.Add(orders[i].TotalDue)
	}
	if len(orders) > 0 {
		summary.AverageOrderValue = summary.TotalSales.Div(decimal.NewFromInt(int64(len(orders))))
	}

	return &summary, nil
}

// GetTotalSales sums the grand totals of the orders in the optional
// date range.
func (s *SalesService) GetTotalSales(start, end *time.Time) (decimal.Decimal, error) {
	orders, err := s.ordersInRange(start, end)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for i := range orders {
		total = total.Add(orders[i].TotalDue)
	}
	return total, nil
}

// GetTopSellingProducts ranks products by sales amount over the orders
// in the optional date range.
func (s *SalesService) GetTopSellingProducts(count int, start, end *time.Time) ([]dto.TopProductDto, error) {
	if count < 1 {
		count = 10
	}

	orders, err := s.ordersInRange(start, end)
	if err != nil {
		return nil, err
	}

	byProduct := map[int64]*dto.TopProductDto{}
	for i := range orders {
		details, err := s.details.ByOrder(orders[i].SalesOrderID)
		if err != nil {
			return nil, err
		}
		for j := range details {
			d := &details[j]
			agg, ok := byProduct[d.ProductID]
			if !ok {
				agg = &dto.TopProductDto{
					ProductID:     d.ProductID,
					ProductName:   d.ProductName,
					ProductNumber: d.ProductNumber,
					TotalSales:    decimal.Zero,
				}
				byProduct[d.ProductID] = agg
			}
			agg.QuantitySold += d.OrderQty
			agg.TotalSales = agg.TotalSales.Add(d.LineTotal)
			agg.OrderCount++
		}
	}

	ranked := make([]dto.TopProductDto, 0, len(byProduct))
	for _, agg := range byProduct {
		ranked = append(ranked, *agg)
	}
	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].TotalSales.GreaterThan(ranked[j].TotalSales)
	})

	if len(ranked) > count {
		ranked = ranked[:count]
	}
	return ranked, nil
}

// GetSalesPersonPerformance aggregates order totals per sales person
// over the optional date range, ranked by sales amount.
func (s *SalesService) GetSalesPersonPerformance(start, end *time.Time) ([]dto.SalesPersonPerformanceDto, error) {
	orders, err := s.ordersInRange(start, end)
	if err != nil {
		return nil, err
	}

	byPerson := map[int64]*dto.SalesPersonPerformanceDto{}
	for i := range orders {
		o := &orders[i]
		if o.SalesPersonID == nil {
			continue
		}
		agg, ok := byPerson[*o.SalesPersonID]
		if !ok {
			agg = &dto.SalesPersonPerformanceDto{
				BusinessEntityID: *o.SalesPersonID,
				SalesPersonName:  s.salesPersonName(*o.SalesPersonID),
				TotalSales:       decimal.Zero,
			}
			byPerson[*o.SalesPersonID] = agg
		}
		agg.TotalSales = agg.TotalSales.Add(o.TotalDue)
		agg.TotalOrders++
	}

	ranked := make([]dto.SalesPersonPerformanceDto, 0, len(byPerson))
	for _, agg := range byPerson {
		if agg.TotalOrders > 0 {
			agg.AverageOrderValue = agg.TotalSales.Div(decimal.NewFromInt(int64(agg.TotalOrders)))
		}
		ranked = append(ranked, *agg)
	}
	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].TotalSales.GreaterThan(ranked[j].TotalSales)
	})

	return ranked, nil
}

func (s *SalesService) salesPersonName(id int64) string {
	p, err := s.persons.GetByID(id)
	if err != nil {
		return "Unknown"
	}
	return p.FirstName + " " + p.LastName
}

// GetMonthlySales buckets the year's orders by calendar month. Months
// without orders are omitted; a year without orders yields an empty
// slice.
func (s *SalesService) GetMonthlySales(year int) ([]dto.MonthlySalesDto, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)
	orders, err := s.orders.ByDateRange(start, end)
	if err != nil {
		return nil, err
	}

	byMonth := map[int]*dto.MonthlySalesDto{}
	for i := range orders {
		o := &orders[i]
		m := int(o.OrderDate.Month())
		agg, ok := byMonth[m]
		if !ok {
			agg = &dto.MonthlySalesDto{
				Year:       year,
				Month:      m,
				MonthName:  o.OrderDate.Month().String(),
				TotalSales: decimal.Zero,
			}
			byMonth[m] = agg
		}
		agg.TotalSales = agg.TotalSales.Add(o.TotalDue)
		agg.TotalOrders++
	}

	out := make([]dto.MonthlySalesDto, 0, len(byMonth))
	for m := 1; m <= 12; m++ {
		agg, ok := byMonth[m]
		if !ok {
			continue
		}
		if agg.TotalOrders > 0 {
			agg.AverageOrderValue = agg.TotalSales.Div(decimal.NewFromInt(int64(agg.TotalOrders)))
		}
		out = append(out, *agg)
	}
	return out, nil
}

// optionalString maps an empty string to an absent column value.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
