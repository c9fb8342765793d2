package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/cycleworks/salesdesk/internal/database"
	"github.com/cycleworks/salesdesk/internal/models"
)

type CustomerRepository struct {
	table[models.Customer]
}

func NewCustomerRepository(db *database.DB) *CustomerRepository {
	return &CustomerRepository{
		table: table[models.Customer]{
			db:       db,
			name:     "customers",
			idColumn: "customer_id",
			columns: []string{
				"customer_id", "person_id", "store_id", "territory_id",
				"account_number", "rowguid", "modified_date",
			},
			scanRow: func(r rowScanner) (*models.Customer, error) {
				var c models.Customer
				err := r.Scan(
					&c.CustomerID, &c.PersonID, &c.StoreID, &c.TerritoryID,
					&c.AccountNumber, &c.Rowguid, &c.ModifiedDate,
				)
				return &c, err
			},
			insertColumns: []string{
				"person_id", "store_id", "territory_id", "account_number",
				"rowguid", "modified_date",
			},
			insertArgs: func(c *models.Customer) []any {
				return []any{c.PersonID, c.StoreID, c.TerritoryID, c.AccountNumber, c.Rowguid, c.ModifiedDate}
			},
			setID: func(c *models.Customer, id int64) { c.CustomerID = id },
			updateColumns: []string{
				"person_id", "store_id", "territory_id", "account_number", "modified_date",
			},
			updateArgs: func(c *models.Customer) []any {
				return []any{c.PersonID, c.StoreID, c.TerritoryID, c.AccountNumber, c.ModifiedDate}
			},
			idOf: func(c *models.Customer) int64 { return c.CustomerID },
			sortable: map[string]string{
				"accountnumber": "account_number",
				"modifieddate":  "modified_date",
			},
		},
	}
}

const customerJoinedSelect = `SELECT c.customer_id, c.person_id, c.store_id, c.territory_id,
       c.account_number, c.rowguid, c.modified_date,
       p.business_entity_id, p.person_type, p.title, p.first_name,
       p.middle_name, p.last_name, p.suffix, p.rowguid, p.modified_date,
       s.store_id, s.name, s.rowguid, s.modified_date,
       t.territory_id, t.name, t.country_region, t.territory_group, t.rowguid, t.modified_date
FROM customers c
LEFT JOIN persons p ON p.business_entity_id = c.person_id
LEFT JOIN stores s ON s.store_id = c.store_id
LEFT JOIN sales_territories t ON t.territory_id = c.territory_id`

func scanJoinedCustomer(r rowScanner) (*models.Customer, error) {
	var c models.Customer
	var p struct {
		id                    *int64
		ptype, first, last    *string
		title, middle, suffix *string
		rowguid               *string
		modified              sql.NullTime
	}
	var s struct {
		id       *int64
		name     *string
		rowguid  *string
		modified sql.NullTime
	}
	var t struct {
		id                            *int64
		name, country, group, rowguid *string
		modified                      sql.NullTime
	}

	err := r.Scan(
		&c.CustomerID, &c.PersonID, &c.StoreID, &c.TerritoryID,
		&c.AccountNumber, &c.Rowguid, &c.ModifiedDate,
		&p.id, &p.ptype, &p.title, &p.first, &p.middle, &p.last, &p.suffix, &p.rowguid, &p.modified,
		&s.id, &s.name, &s.rowguid, &s.modified,
		&t.id, &t.name, &t.country, &t.group, &t.rowguid, &t.modified,
	)
	if err != nil {
		return nil, err
	}

	if p.id != nil {
		c.Person = &models.Person{
			BusinessEntityID: *p.id,
			PersonType:       *p.ptype,
			Title:            p.title,
			FirstName:        *p.first,
			MiddleName:       p.middle,
			LastName:         *p.last,
			Suffix:           p.suffix,
			Rowguid:          *p.rowguid,
			ModifiedDate:     p.modified.Time,
		}
	}
	if s.id != nil {
		c.Store = &models.Store{
			StoreID:      *s.id,
			Name:         *s.name,
			Rowguid:      *s.rowguid,
			ModifiedDate: s.modified.Time,
		}
	}
	if t.id != nil {
		c.Territory = &models.SalesTerritory{
			TerritoryID:    *t.id,
			Name:           *t.name,
			CountryRegion:  *t.country,
			TerritoryGroup: *t.group,
			Rowguid:        *t.rowguid,
			ModifiedDate:   t.modified.Time,
		}
	}

	return &c, nil
}

func (r *CustomerRepository) queryJoined(suffix string, args ...any) ([]models.Customer, error) {
	rows, err := r.db.Query(customerJoinedSelect+suffix, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	var customers []models.Customer
	for rows.Next() {
		c, err := scanJoinedCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customers row: %w", err)
		}
		customers = append(customers, *c)
	}

	return customers, rows.Err()
}

// GetByID eager-loads the owning person or store and the territory.
func (r *CustomerRepository) GetByID(id int64) (*models.Customer, error) {
	c, err := scanJoinedCustomer(r.db.QueryRow(customerJoinedSelect+" WHERE c.customer_id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("customers id %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer by id: %w", err)
	}
	return c, nil
}

// ByTerritory returns the territory's customers ordered by account number,
// with person and store loaded.
func (r *CustomerRepository) ByTerritory(territoryID int64) ([]models.Customer, error) {
	return r.queryJoined(" WHERE c.territory_id = ? ORDER BY c.account_number", territoryID)
}

// ByAccountNumber returns the customer with the given account number, or
// nil when absent.
func (r *CustomerRepository) ByAccountNumber(accountNumber string) (*models.Customer, error) {
	c, err := scanJoinedCustomer(r.db.QueryRow(customerJoinedSelect+" WHERE c.account_number = ?", accountNumber))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer by account number: %w", err)
	}
	return c, nil
}

// Individuals returns person-owned customers ordered by last then first
// name, with the person loaded.
func (r *CustomerRepository) Individuals() ([]models.Customer, error) {
	return r.queryJoined(" WHERE c.person_id IS NOT NULL ORDER BY p.last_name, p.first_name")
}

// Stores returns store-owned customers ordered by store name, with the
// store loaded.
func (r *CustomerRepository) Stores() ([]models.Customer, error) {
	return r.queryJoined(" WHERE c.store_id IS NOT NULL ORDER BY s.name")
}

// Search matches the term against person names, store names and account
// numbers, ordered by account number.
func (r *CustomerRepository) Search(term string) ([]models.Customer, error) {
	pattern := "%" + term + "%"
	return r.queryJoined(
		" WHERE p.first_name LIKE ? OR p.last_name LIKE ? OR s.name LIKE ? OR c.account_number LIKE ?"+
			" ORDER BY c.account_number",
		pattern, pattern, pattern, pattern,
	)
}

// Last returns the customer with the highest identity, or nil when the
// table is empty. Account number generation reads this.
func (r *CustomerRepository) Last() (*models.Customer, error) {
	c, err := r.scanRow(r.db.QueryRow(
		"SELECT " + r.selectList() + " FROM customers ORDER BY customer_id DESC LIMIT 1"))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last customer: %w", err)
	}
	return c, nil
}

// Top returns the count highest-spending customers by lifetime order
// total, with person and store loaded.
func (r *CustomerRepository) Top(count int) ([]models.Customer, error) {
	return r.queryJoined(
		` ORDER BY (SELECT COALESCE(SUM(o.total_due), 0)
		            FROM sales_order_headers o
		            WHERE o.customer_id = c.customer_id) DESC
		  LIMIT ?`, count)
}

type StoreRepository struct {
	table[models.Store]
}

func NewStoreRepository(db *database.DB) *StoreRepository {
	return &StoreRepository{
		table: table[models.Store]{
			db:       db,
			name:     "stores",
			idColumn: "store_id",
			columns:  []string{"store_id", "name", "rowguid", "modified_date"},
			scanRow: func(r rowScanner) (*models.Store, error) {
				var s models.Store
				err := r.Scan(&s.StoreID, &s.Name, &s.Rowguid, &s.ModifiedDate)
				return &s, err
			},
			insertColumns: []string{"name", "rowguid", "modified_date"},
			insertArgs: func(s *models.Store) []any {
				return []any{s.Name, s.Rowguid, s.ModifiedDate}
			},
			setID:         func(s *models.Store, id int64) { s.StoreID = id },
			updateColumns: []string{"name", "modified_date"},
			updateArgs: func(s *models.Store) []any {
				return []any{s.Name, s.ModifiedDate}
			},
			idOf: func(s *models.Store) int64 { return s.StoreID },
		},
	}
}

type TerritoryRepository struct {
	table[models.SalesTerritory]
}

func NewTerritoryRepository(db *database.DB) *TerritoryRepository {
	return &TerritoryRepository{
		table: table[models.SalesTerritory]{
			db:       db,
			name:     "sales_territories",
			idColumn: "territory_id",
			columns: []string{
				"territory_id", "name", "country_region", "territory_group",
				"rowguid", "modified_date",
			},
			scanRow: func(r rowScanner) (*models.SalesTerritory, error) {
				var t models.SalesTerritory
				err := r.Scan(&t.TerritoryID, &t.Name, &t.CountryRegion, &t.TerritoryGroup, &t.Rowguid, &t.ModifiedDate)
				return &t, err
			},
			insertColumns: []string{"name", "country_region", "territory_group", "rowguid", "modified_date"},
			insertArgs: func(t *models.SalesTerritory) []any {
				return []any{t.Name, t.CountryRegion, t.TerritoryGroup, t.Rowguid, t.ModifiedDate}
			},
			setID:         func(t *models.SalesTerritory, id int64) { t.TerritoryID = id },
			updateColumns: []string{"name", "country_region", "territory_group", "modified_date"},
			updateArgs: func(t *models.SalesTerritory) []any {
				return []any{t.Name, t.CountryRegion, t.TerritoryGroup, t.ModifiedDate}
			},
			idOf: func(t *models.SalesTerritory) int64 { return t.TerritoryID },
		},
	}
}
