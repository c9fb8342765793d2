package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cycleworks/salesdesk/internal/database"
	"github.com/cycleworks/salesdesk/internal/models"
)

type SalesOrderRepository struct {
	table[models.SalesOrderHeader]
	details *SalesOrderDetailRepository
}

func NewSalesOrderRepository(db *database.DB) *SalesOrderRepository {
	return &SalesOrderRepository{
		table: table[models.SalesOrderHeader]{
			db:       db,
			name:     "sales_order_headers",
			idColumn: "sales_order_id",
			columns: []string{
				"sales_order_id", "revision_number", "order_date", "due_date", "ship_date",
				"status", "online_order_flag", "sales_order_number", "purchase_order_number",
				"account_number", "customer_id", "sales_person_id", "territory_id",
				"bill_to_address_id", "ship_to_address_id", "ship_method_id",
				"subtotal", "tax_amt", "freight", "total_due", "comment",
				"rowguid", "modified_date",
			},
			scanRow: func(r rowScanner) (*models.SalesOrderHeader, error) {
				var o models.SalesOrderHeader
				err := r.Scan(
					&o.SalesOrderID, &o.RevisionNumber, &o.OrderDate, &o.DueDate, &o.ShipDate,
					&o.Status, &o.OnlineOrderFlag, &o.SalesOrderNumber, &o.PurchaseOrderNumber,
					&o.AccountNumber, &o.CustomerID, &o.SalesPersonID, &o.TerritoryID,
					&o.BillToAddressID, &o.ShipToAddressID, &o.ShipMethodID,
					&o.SubTotal, &o.TaxAmt, &o.Freight, &o.TotalDue, &o.Comment,
					&o.Rowguid, &o.ModifiedDate,
				)
				return &o, err
			},
			insertColumns: []string{
				"revision_number", "order_date", "due_date", "ship_date",
				"status", "online_order_flag", "sales_order_number", "purchase_order_number",
				"account_number", "customer_id", "sales_person_id", "territory_id",
				"bill_to_address_id", "ship_to_address_id", "ship_method_id",
				"subtotal", "tax_amt", "freight", "total_due", "comment",
				"rowguid", "modified_date",
			},
			insertArgs: func(o *models.SalesOrderHeader) []any {
				return []any{
					o.RevisionNumber, o.OrderDate, o.DueDate, o.ShipDate,
					o.Status, o.OnlineOrderFlag, o.SalesOrderNumber, o.PurchaseOrderNumber,
					o.AccountNumber, o.CustomerID, o.SalesPersonID, o.TerritoryID,
					o.BillToAddressID, o.ShipToAddressID, o.ShipMethodID,
					o.SubTotal, o.TaxAmt, o.Freight, o.TotalDue, o.Comment,
					o.Rowguid, o.ModifiedDate,
				}
			},
			setID: func(o *models.SalesOrderHeader, id int64) { o.SalesOrderID = id },
			updateColumns: []string{
				"revision_number", "order_date", "due_date", "ship_date",
				"status", "online_order_flag", "purchase_order_number",
				"account_number", "customer_id", "sales_person_id", "territory_id",
				"bill_to_address_id", "ship_to_address_id", "ship_method_id",
				"subtotal", "tax_amt", "freight", "total_due", "comment",
				"modified_date",
			},
			updateArgs: func(o *models.SalesOrderHeader) []any {
				return []any{
					o.RevisionNumber, o.OrderDate, o.DueDate, o.ShipDate,
					o.Status, o.OnlineOrderFlag, o.PurchaseOrderNumber,
					o.AccountNumber, o.CustomerID, o.SalesPersonID, o.TerritoryID,
					o.BillToAddressID, o.ShipToAddressID, o.ShipMethodID,
					o.SubTotal, o.TaxAmt, o.Freight, o.TotalDue, o.Comment,
					o.ModifiedDate,
				}
			},
			idOf: func(o *models.SalesOrderHeader) int64 { return o.SalesOrderID },
			sortable: map[string]string{
				"orderdate":   "order_date",
				"duedate":     "due_date",
				"status":      "status",
				"totaldue":    "total_due",
				"ordernumber": "sales_order_number",
			},
		},
		details: NewSalesOrderDetailRepository(db),
	}
}

// ByCustomer returns the customer's orders, newest first.
func (r *SalesOrderRepository) ByCustomer(customerID int64) ([]models.SalesOrderHeader, error) {
	return r.queryMany(" WHERE customer_id = ? ORDER BY order_date DESC", customerID)
}

// ByDateRange returns orders placed within [start, end], newest first.
func (r *SalesOrderRepository) ByDateRange(start, end time.Time) ([]models.SalesOrderHeader, error) {
	return r.queryMany(
		" WHERE order_date >= ? AND order_date <= ? ORDER BY order_date DESC", start, end)
}

// ByStatus returns orders with the given status code, newest first.
func (r *SalesOrderRepository) ByStatus(status int) ([]models.SalesOrderHeader, error) {
	return r.queryMany(" WHERE status = ? ORDER BY order_date DESC", status)
}

// BySalesPerson returns the sales person's orders, newest first.
func (r *SalesOrderRepository) BySalesPerson(salesPersonID int64) ([]models.SalesOrderHeader, error) {
	return r.queryMany(" WHERE sales_person_id = ? ORDER BY order_date DESC", salesPersonID)
}

// Recent returns the count most recent orders.
func (r *SalesOrderRepository) Recent(count int) ([]models.SalesOrderHeader, error) {
	return r.queryMany(" ORDER BY order_date DESC LIMIT ?", count)
}

// GetWithDetails loads an order with its detail lines, each carrying the
// referenced product's name and number.
func (r *SalesOrderRepository) GetWithDetails(id int64) (*models.SalesOrderHeader, error) {
	o, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	if o.Details, err = r.details.ByOrder(id); err != nil {
		return nil, err
	}

	return o, nil
}

// Last returns the order with the highest identity, or nil when the table
// is empty. Order number generation reads this.
func (r *SalesOrderRepository) Last() (*models.SalesOrderHeader, error) {
	o, err := r.scanRow(r.db.QueryRow(
		"SELECT " + r.selectList() + " FROM sales_order_headers ORDER BY sales_order_id DESC LIMIT 1"))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last sales order: %w", err)
	}
	return o, nil
}

type SalesOrderDetailRepository struct {
	table[models.SalesOrderDetail]
}

func NewSalesOrderDetailRepository(db *database.DB) *SalesOrderDetailRepository {
	return &SalesOrderDetailRepository{
		table: table[models.SalesOrderDetail]{
			db:       db,
			name:     "sales_order_details",
			idColumn: "sales_order_detail_id",
			columns: []string{
				"sales_order_detail_id", "sales_order_id", "carrier_tracking_number",
				"order_qty", "product_id", "special_offer_id", "unit_price",
				"unit_price_discount", "line_total", "rowguid", "modified_date",
			},
			scanRow: func(r rowScanner) (*models.SalesOrderDetail, error) {
				var d models.SalesOrderDetail
				err := r.Scan(
					&d.SalesOrderDetailID, &d.SalesOrderID, &d.CarrierTrackingNumber,
					&d.OrderQty, &d.ProductID, &d.SpecialOfferID, &d.UnitPrice,
					&d.UnitPriceDiscount, &d.LineTotal, &d.Rowguid, &d.ModifiedDate,
				)
				return &d, err
			},
			insertColumns: []string{
				"sales_order_id", "carrier_tracking_number", "order_qty", "product_id",
				"special_offer_id", "unit_price", "unit_price_discount", "line_total",
				"rowguid", "modified_date",
			},
			insertArgs: func(d *models.SalesOrderDetail) []any {
				return []any{
					d.SalesOrderID, d.CarrierTrackingNumber, d.OrderQty, d.ProductID,
					d.SpecialOfferID, d.UnitPrice, d.UnitPriceDiscount, d.LineTotal,
					d.Rowguid, d.ModifiedDate,
				}
			},
			setID: func(d *models.SalesOrderDetail, id int64) { d.SalesOrderDetailID = id },
			updateColumns: []string{
				"carrier_tracking_number", "order_qty", "product_id", "special_offer_id",
				"unit_price", "unit_price_discount", "line_total", "modified_date",
			},
			updateArgs: func(d *models.SalesOrderDetail) []any {
				return []any{
					d.CarrierTrackingNumber, d.OrderQty, d.ProductID, d.SpecialOfferID,
					d.UnitPrice, d.UnitPriceDiscount, d.LineTotal, d.ModifiedDate,
				}
			},
			idOf: func(d *models.SalesOrderDetail) int64 { return d.SalesOrderDetailID },
		},
	}
}

// ByOrder returns the order's detail lines with product name and number
// attached, in detail-identity order.
func (r *SalesOrderDetailRepository) ByOrder(orderID int64) ([]models.SalesOrderDetail, error) {
	rows, err := r.db.Query(
		`SELECT d.sales_order_detail_id, d.sales_order_id, d.carrier_tracking_number,
		        d.order_qty, d.product_id, d.special_offer_id, d.unit_price,
		        d.unit_price_discount, d.line_total, d.rowguid, d.modified_date,
		        p.name, p.product_number
		 FROM sales_order_details d
		 JOIN products p ON p.product_id = d.product_id
		 WHERE d.sales_order_id = ?
		 ORDER BY d.sales_order_detail_id`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales_order_details: %w", err)
	}
	defer rows.Close()

	var details []models.SalesOrderDetail
	for rows.Next() {
		var d models.SalesOrderDetail
		err := rows.Scan(
			&d.SalesOrderDetailID, &d.SalesOrderID, &d.CarrierTrackingNumber,
			&d.OrderQty, &d.ProductID, &d.SpecialOfferID, &d.UnitPrice,
			&d.UnitPriceDiscount, &d.LineTotal, &d.Rowguid, &d.ModifiedDate,
			&d.ProductName, &d.ProductNumber,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sales_order_details row: %w", err)
		}
		details = append(details, d)
	}

	return details, rows.Err()
}

// DeleteByOrder removes every detail line of the order and returns how
// many rows were removed.
func (r *SalesOrderDetailRepository) DeleteByOrder(orderID int64) (int, error) {
	res, err := r.db.Exec("DELETE FROM sales_order_details WHERE sales_order_id = ?", orderID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete from sales_order_details: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read sales_order_details delete result: %w", err)
	}
	return int(affected), nil
}

type SpecialOfferRepository struct {
	table[models.SpecialOffer]
}

func NewSpecialOfferRepository(db *database.DB) *SpecialOfferRepository {
	return &SpecialOfferRepository{
		table: table[models.SpecialOffer]{
			db:       db,
			name:     "special_offers",
			idColumn: "special_offer_id",
			columns:  []string{"special_offer_id", "description", "discount_pct", "rowguid", "modified_date"},
			scanRow: func(r rowScanner) (*models.SpecialOffer, error) {
				var s models.SpecialOffer
				err := r.Scan(&s.SpecialOfferID, &s.Description, &s.DiscountPct, &s.Rowguid, &s.ModifiedDate)
				return &s, err
			},
			insertColumns: []string{"description", "discount_pct", "rowguid", "modified_date"},
			insertArgs: func(s *models.SpecialOffer) []any {
				return []any{s.Description, s.DiscountPct, s.Rowguid, s.ModifiedDate}
			},
			setID:         func(s *models.SpecialOffer, id int64) { s.SpecialOfferID = id },
			updateColumns: []string{"description", "discount_pct", "modified_date"},
			updateArgs: func(s *models.SpecialOffer) []any {
				return []any{s.Description, s.DiscountPct, s.ModifiedDate}
			},
			idOf: func(s *models.SpecialOffer) int64 { return s.SpecialOfferID },
		},
	}
}
