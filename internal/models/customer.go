package models

import "time"

// Customer references exactly one of Person or Store. Both columns are
// nullable in the schema; the service layer enforces the XOR.
type Customer struct {
	CustomerID    int64     `json:"customer_id" db:"customer_id"`
	PersonID      *int64    `json:"person_id" db:"person_id"`
	StoreID       *int64    `json:"store_id" db:"store_id"`
	TerritoryID   *int64    `json:"territory_id" db:"territory_id"`
	AccountNumber string    `json:"account_number" db:"account_number"`
	Rowguid       string    `json:"rowguid" db:"rowguid"`
	ModifiedDate  time.Time `json:"modified_date" db:"modified_date"`

	// Loaded by CustomerRepository fetch shapes, nil otherwise.
	Person    *Person         `json:"person,omitempty" db:"-"`
	Store     *Store          `json:"store,omitempty" db:"-"`
	Territory *SalesTerritory `json:"territory,omitempty" db:"-"`
}

type Store struct {
	StoreID      int64     `json:"store_id" db:"store_id"`
	Name         string    `json:"name" db:"name"`
	Rowguid      string    `json:"rowguid" db:"rowguid"`
	ModifiedDate time.Time `json:"modified_date" db:"modified_date"`
}

type SalesTerritory struct {
	TerritoryID    int64     `json:"territory_id" db:"territory_id"`
	Name           string    `json:"name" db:"name"`
	CountryRegion  string    `json:"country_region" db:"country_region"`
	TerritoryGroup string    `json:"territory_group" db:"territory_group"`
	Rowguid        string    `json:"rowguid" db:"rowguid"`
	ModifiedDate   time.Time `json:"modified_date" db:"modified_date"`
}
