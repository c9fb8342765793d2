package dto

import "time"

type AddressDto struct {
	AddressID     int64     `json:"address_id"`
	AddressLine1  string    `json:"address_line1" binding:"required"`
	AddressLine2  string    `json:"address_line2,omitempty"`
	City          string    `json:"city" binding:"required"`
	StateProvince string    `json:"state_province"`
	PostalCode    string    `json:"postal_code" binding:"required"`
	CountryRegion string    `json:"country_region"`
	ModifiedDate  time.Time `json:"modified_date"`
}

// FullAddress renders the single-line postal form.
func (a AddressDto) FullAddress() string {
	out := a.AddressLine1
	if a.AddressLine2 != "" {
		out += ", " + a.AddressLine2
	}
	out += ", " + a.City + ", " + a.StateProvince + " " + a.PostalCode
	if a.CountryRegion != "" {
		out += ", " + a.CountryRegion
	}
	return out
}

type BusinessEntityAddressDto struct {
	BusinessEntityID int64       `json:"business_entity_id"`
	AddressID        int64       `json:"address_id"`
	AddressTypeID    int64       `json:"address_type_id"`
	Address          *AddressDto `json:"address,omitempty"`
	ModifiedDate     time.Time   `json:"modified_date"`
}
