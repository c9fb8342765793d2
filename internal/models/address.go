package models

import "time"

type Address struct {
	AddressID     int64     `json:"address_id" db:"address_id"`
	AddressLine1  string    `json:"address_line1" db:"address_line1"`
	AddressLine2  *string   `json:"address_line2" db:"address_line2"`
	City          string    `json:"city" db:"city"`
	StateProvince string    `json:"state_province" db:"state_province"`
	PostalCode    string    `json:"postal_code" db:"postal_code"`
	CountryRegion string    `json:"country_region" db:"country_region"`
	Rowguid       string    `json:"rowguid" db:"rowguid"`
	ModifiedDate  time.Time `json:"modified_date" db:"modified_date"`
}

type BusinessEntityAddress struct {
	BusinessEntityID int64     `json:"business_entity_id" db:"business_entity_id"`
	AddressID        int64     `json:"address_id" db:"address_id"`
	AddressTypeID    int64     `json:"address_type_id" db:"address_type_id"`
	Rowguid          string    `json:"rowguid" db:"rowguid"`
	ModifiedDate     time.Time `json:"modified_date" db:"modified_date"`

	// Loaded alongside the link row when the repository joins addresses.
	Address *Address `json:"address,omitempty" db:"-"`
}
