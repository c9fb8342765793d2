package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/cycleworks/salesdesk/internal/dto"
	"github.com/cycleworks/salesdesk/internal/models"
	"github.com/cycleworks/salesdesk/internal/repository"
	"github.com/shopspring/decimal"
)

// In-memory repository fakes backing the service tests. They mirror the
// store contract: identity assignment on Add, ErrNotFound on missing
// identities, nil results for optional lookups.

type fakeCustomerRepo struct {
	customers map[int64]models.Customer
	nextID    int64
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: map[int64]models.Customer{}}
}

func (f *fakeCustomerRepo) sorted() []models.Customer {
	out := make([]models.Customer, 0, len(f.customers))
	for _, c := range f.customers {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CustomerID < out[j].CustomerID })
	return out
}

func (f *fakeCustomerRepo) GetByID(id int64) (*models.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, fmt.Errorf("customers id %d: %w", id, repository.ErrNotFound)
	}
	return &c, nil
}

func (f *fakeCustomerRepo) GetAll() ([]models.Customer, error) { return f.sorted(), nil }

func (f *fakeCustomerRepo) Search(term string) ([]models.Customer, error) {
	var out []models.Customer
	for _, c := range f.sorted() {
		if strings.Contains(c.AccountNumber, term) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCustomerRepo) Individuals() ([]models.Customer, error) {
	var out []models.Customer
	for _, c := range f.sorted() {
		if c.PersonID != nil {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCustomerRepo) Stores() ([]models.Customer, error) {
	var out []models.Customer
	for _, c := range f.sorted() {
		if c.StoreID != nil {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCustomerRepo) ByTerritory(territoryID int64) ([]models.Customer, error) {
	var out []models.Customer
	for _, c := range f.sorted() {
		if c.TerritoryID != nil && *c.TerritoryID == territoryID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCustomerRepo) ByAccountNumber(accountNumber string) (*models.Customer, error) {
	for _, c := range f.sorted() {
		if c.AccountNumber == accountNumber {
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) Last() (*models.Customer, error) {
	all := f.sorted()
	if len(all) == 0 {
		return nil, nil
	}
	last := all[len(all)-1]
	return &last, nil
}

func (f *fakeCustomerRepo) Top(count int) ([]models.Customer, error) {
	all := f.sorted()
	if len(all) > count {
		all = all[:count]
	}
	return all, nil
}

func (f *fakeCustomerRepo) Add(c *models.Customer) error {
	f.nextID++
	c.CustomerID = f.nextID
	f.customers[c.CustomerID] = *c
	return nil
}

func (f *fakeCustomerRepo) Update(c *models.Customer) error {
	if _, ok := f.customers[c.CustomerID]; !ok {
		return fmt.Errorf("customers id %d: %w", c.CustomerID, repository.ErrNotFound)
	}
	f.customers[c.CustomerID] = *c
	return nil
}

func (f *fakeCustomerRepo) Delete(id int64) (bool, error) {
	if _, ok := f.customers[id]; !ok {
		return false, nil
	}
	delete(f.customers, id)
	return true, nil
}

func (f *fakeCustomerRepo) Exists(id int64) (bool, error) {
	_, ok := f.customers[id]
	return ok, nil
}

func (f *fakeCustomerRepo) Count() (int, error) { return len(f.customers), nil }

type fakeOrderRepo struct {
	orders map[int64]models.SalesOrderHeader
	nextID int64
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[int64]models.SalesOrderHeader{}}
}

func (f *fakeOrderRepo) sorted() []models.SalesOrderHeader {
	out := make([]models.SalesOrderHeader, 0, len(f.orders))
	for _, o := range f.orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SalesOrderID < out[j].SalesOrderID })
	return out
}

func (f *fakeOrderRepo) GetByID(id int64) (*models.SalesOrderHeader, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, fmt.Errorf("sales_order_headers id %d: %w", id, repository.ErrNotFound)
	}
	return &o, nil
}

func (f *fakeOrderRepo) GetAll() ([]models.SalesOrderHeader, error) { return f.sorted(), nil }

func (f *fakeOrderRepo) GetWithDetails(id int64) (*models.SalesOrderHeader, error) {
	return f.GetByID(id)
}

func (f *fakeOrderRepo) ByCustomer(customerID int64) ([]models.SalesOrderHeader, error) {
	var out []models.SalesOrderHeader
	for _, o := range f.sorted() {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ByDateRange(start, end time.Time) ([]models.SalesOrderHeader, error) {
	var out []models.SalesOrderHeader
	for _, o := range f.sorted() {
		if !o.OrderDate.Before(start) && !o.OrderDate.After(end) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ByStatus(status int) ([]models.SalesOrderHeader, error) {
	var out []models.SalesOrderHeader
	for _, o := range f.sorted() {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) BySalesPerson(salesPersonID int64) ([]models.SalesOrderHeader, error) {
	var out []models.SalesOrderHeader
	for _, o := range f.sorted() {
		if o.SalesPersonID != nil && *o.SalesPersonID == salesPersonID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) Recent(count int) ([]models.SalesOrderHeader, error) {
	all := f.sorted()
	if len(all) > count {
		all = all[len(all)-count:]
	}
	return all, nil
}

func (f *fakeOrderRepo) Last() (*models.SalesOrderHeader, error) {
	all := f.sorted()
	if len(all) == 0 {
		return nil, nil
	}
	last := all[len(all)-1]
	return &last, nil
}

func (f *fakeOrderRepo) Add(o *models.SalesOrderHeader) error {
	f.nextID++
	o.SalesOrderID = f.nextID
	f.orders[o.SalesOrderID] = *o
	return nil
}

func (f *fakeOrderRepo) Update(o *models.SalesOrderHeader) error {
	if _, ok := f.orders[o.SalesOrderID]; !ok {
		return fmt.Errorf("sales_order_headers id %d: %w", o.SalesOrderID, repository.ErrNotFound)
	}
	f.orders[o.SalesOrderID] = *o
	return nil
}

func (f *fakeOrderRepo) Delete(id int64) (bool, error) {
	if _, ok := f.orders[id]; !ok {
		return false, nil
	}
	delete(f.orders, id)
	return true, nil
}

func (f *fakeOrderRepo) Exists(id int64) (bool, error) {
	_, ok := f.orders[id]
	return ok, nil
}

func (f *fakeOrderRepo) Count() (int, error) { return len(f.orders), nil }

type fakeDetailRepo struct {
	details map[int64]models.SalesOrderDetail
	nextID  int64
}

func newFakeDetailRepo() *fakeDetailRepo {
	return &fakeDetailRepo{details: map[int64]models.SalesOrderDetail{}}
}

func (f *fakeDetailRepo) GetByID(id int64) (*models.SalesOrderDetail, error) {
	d, ok := f.details[id]
	if !ok {
		return nil, fmt.Errorf("sales_order_details id %d: %w", id, repository.ErrNotFound)
	}
	return &d, nil
}

func (f *fakeDetailRepo) ByOrder(orderID int64) ([]models.SalesOrderDetail, error) {
	var out []models.SalesOrderDetail
	for _, d := range f.details {
		if d.SalesOrderID == orderID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SalesOrderDetailID < out[j].SalesOrderDetailID
	})
	return out, nil
}

func (f *fakeDetailRepo) Add(d *models.SalesOrderDetail) error {
	f.nextID++
	d.SalesOrderDetailID = f.nextID
	f.details[d.SalesOrderDetailID] = *d
	return nil
}

func (f *fakeDetailRepo) Update(d *models.SalesOrderDetail) error {
	if _, ok := f.details[d.SalesOrderDetailID]; !ok {
		return fmt.Errorf("sales_order_details id %d: %w", d.SalesOrderDetailID, repository.ErrNotFound)
	}
	f.details[d.SalesOrderDetailID] = *d
	return nil
}

func (f *fakeDetailRepo) Delete(id int64) (bool, error) {
	if _, ok := f.details[id]; !ok {
		return false, nil
	}
	delete(f.details, id)
	return true, nil
}

func (f *fakeDetailRepo) DeleteByOrder(orderID int64) (int, error) {
	var removed int
	for id, d := range f.details {
		if d.SalesOrderID == orderID {
			delete(f.details, id)
			removed++
		}
	}
	return removed, nil
}

type fakeProductLookup struct {
	products map[int64]models.Product
}

func newFakeProductLookup(products ...models.Product) *fakeProductLookup {
	f := &fakeProductLookup{products: map[int64]models.Product{}}
	for _, p := range products {
		f.products[p.ProductID] = p
	}
	return f
}

func (f *fakeProductLookup) GetByID(id int64) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, fmt.Errorf("products id %d: %w", id, repository.ErrNotFound)
	}
	return &p, nil
}

func (f *fakeProductLookup) Count() (int, error) { return len(f.products), nil }

type fakePersonLookup struct {
	persons map[int64]models.Person
}

func (f *fakePersonLookup) GetByID(id int64) (*models.Person, error) {
	p, ok := f.persons[id]
	if !ok {
		return nil, fmt.Errorf("persons id %d: %w", id, repository.ErrNotFound)
	}
	return &p, nil
}

type fakeProductRepo struct {
	products  map[int64]models.Product
	ordered   map[int64]bool
	nextID    int64
	subCounts map[int64]int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products:  map[int64]models.Product{},
		ordered:   map[int64]bool{},
		subCounts: map[int64]int{},
	}
}

func (f *fakeProductRepo) sorted() []models.Product {
	out := make([]models.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out
}

func (f *fakeProductRepo) GetByID(id int64) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, fmt.Errorf("products id %d: %w", id, repository.ErrNotFound)
	}
	return &p, nil
}

func (f *fakeProductRepo) GetAll() ([]models.Product, error) { return f.sorted(), nil }

func (f *fakeProductRepo) GetWithDetails(id int64) (*models.Product, error) { return f.GetByID(id) }

func (f *fakeProductRepo) ByCategory(int64) ([]models.Product, error)    { return f.sorted(), nil }
func (f *fakeProductRepo) BySubcategory(int64) ([]models.Product, error) { return f.sorted(), nil }

func (f *fakeProductRepo) Search(term string) ([]models.Product, error) {
	var out []models.Product
	for _, p := range f.sorted() {
		if strings.Contains(p.Name, term) || strings.Contains(p.ProductNumber, term) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) ByPriceRange(min, max decimal.Decimal) ([]models.Product, error) {
	var out []models.Product
	for _, p := range f.sorted() {
		if p.ListPrice.GreaterThanOrEqual(min) && p.ListPrice.LessThanOrEqual(max) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Active() ([]models.Product, error) {
	var out []models.Product
	for _, p := range f.sorted() {
		if p.SellEndDate == nil || p.SellEndDate.After(time.Now()) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Discontinued() ([]models.Product, error) {
	var out []models.Product
	for _, p := range f.sorted() {
		if p.DiscontinuedDate != nil {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) LowStock() ([]models.Product, error)  { return nil, nil }
func (f *fakeProductRepo) ToReorder() ([]models.Product, error) { return nil, nil }

func (f *fakeProductRepo) ByProductNumber(number string) (*models.Product, error) {
	for _, p := range f.sorted() {
		if p.ProductNumber == number {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) HasOrders(productID int64) (bool, error) {
	return f.ordered[productID], nil
}

func (f *fakeProductRepo) CountBySubcategory(subcategoryID int64) (int, error) {
	return f.subCounts[subcategoryID], nil
}

func (f *fakeProductRepo) Add(p *models.Product) error {
	f.nextID++
	p.ProductID = f.nextID
	f.products[p.ProductID] = *p
	return nil
}

func (f *fakeProductRepo) Update(p *models.Product) error {
	if _, ok := f.products[p.ProductID]; !ok {
		return fmt.Errorf("products id %d: %w", p.ProductID, repository.ErrNotFound)
	}
	f.products[p.ProductID] = *p
	return nil
}

func (f *fakeProductRepo) Delete(id int64) (bool, error) {
	if _, ok := f.products[id]; !ok {
		return false, nil
	}
	delete(f.products, id)
	return true, nil
}

func (f *fakeProductRepo) Exists(id int64) (bool, error) {
	_, ok := f.products[id]
	return ok, nil
}

func (f *fakeProductRepo) Count() (int, error) { return len(f.products), nil }

type fakeCategoryRepo struct {
	categories map[int64]models.ProductCategory
}

func (f *fakeCategoryRepo) GetByID(id int64) (*models.ProductCategory, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, fmt.Errorf("product_categories id %d: %w", id, repository.ErrNotFound)
	}
	return &c, nil
}

func (f *fakeCategoryRepo) GetAll() ([]models.ProductCategory, error) {
	out := make([]models.ProductCategory, 0, len(f.categories))
	for _, c := range f.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductCategoryID < out[j].ProductCategoryID })
	return out, nil
}

type fakeSubcategoryRepo struct {
	subcategories map[int64]models.ProductSubcategory
}

func (f *fakeSubcategoryRepo) GetByID(id int64) (*models.ProductSubcategory, error) {
	s, ok := f.subcategories[id]
	if !ok {
		return nil, fmt.Errorf("product_subcategories id %d: %w", id, repository.ErrNotFound)
	}
	return &s, nil
}

func (f *fakeSubcategoryRepo) GetAll() ([]models.ProductSubcategory, error) {
	out := make([]models.ProductSubcategory, 0, len(f.subcategories))
	for _, s := range f.subcategories {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ProductSubcategoryID < out[j].ProductSubcategoryID
	})
	return out, nil
}

func (f *fakeSubcategoryRepo) GetWithCategory(id int64) (*models.ProductSubcategory, error) {
	return f.GetByID(id)
}

func (f *fakeSubcategoryRepo) ByCategory(categoryID int64) ([]models.ProductSubcategory, error) {
	all, _ := f.GetAll()
	var out []models.ProductSubcategory
	for _, s := range all {
		if s.ProductCategoryID == categoryID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSubcategoryRepo) CountByCategory(categoryID int64) (int, error) {
	matches, _ := f.ByCategory(categoryID)
	return len(matches), nil
}

type fakeInventoryRepo struct {
	quantities map[int64]int
}

func (f *fakeInventoryRepo) ByProduct(productID int64) ([]models.ProductInventory, error) {
	q, ok := f.quantities[productID]
	if !ok {
		return nil, nil
	}
	return []models.ProductInventory{{ProductID: productID, Quantity: q}}, nil
}

func (f *fakeInventoryRepo) TotalQuantity(productID int64) (int, error) {
	return f.quantities[productID], nil
}

func (f *fakeInventoryRepo) SetQuantity(productID int64, quantity int) (bool, error) {
	if _, ok := f.quantities[productID]; !ok {
		return false, nil
	}
	f.quantities[productID] = quantity
	return true, nil
}

func testProduct(id int64, name string, listPrice float64) models.Product {
	return models.Product{
		ProductID: id,
		Name:      name,
		ListPrice: decimal.NewFromFloat(listPrice),
	}
}

func int64ptr(v int64) *int64 { return &v }

func orderLine(productID int64, qty int, price float64) dto.SalesOrderDetailCreateDto {
	return dto.SalesOrderDetailCreateDto{
		ProductID: productID,
		OrderQty:  qty,
		UnitPrice: decimal.NewFromFloat(price),
	}
}
