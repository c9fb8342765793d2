package models

import (
	"time"
)

// Person type codes as stored in person.person_type
const (
	PersonTypeIndividual    = "IN"
	PersonTypeEmployee      = "EM"
	PersonTypeSalesPerson   = "SP"
	PersonTypeStoreContact  = "SC"
	PersonTypeVendorContact = "VC"
)

type Person struct {
	BusinessEntityID int64      `json:"business_entity_id" db:"business_entity_id"`
	PersonType       string     `json:"person_type" db:"person_type"`
	Title            *string    `json:"title" db:"title"`
	FirstName        string     `json:"first_name" db:"first_name"`
	MiddleName       *string    `json:"middle_name" db:"middle_name"`
	LastName         string     `json:"last_name" db:"last_name"`
	Suffix           *string    `json:"suffix" db:"suffix"`
	Rowguid          string     `json:"rowguid" db:"rowguid"`
	ModifiedDate     time.Time  `json:"modified_date" db:"modified_date"`

	// Loaded by PersonRepository.GetWithDetails, nil otherwise.
	EmailAddresses []EmailAddress          `json:"email_addresses,omitempty" db:"-"`
	Phones         []PersonPhone           `json:"phones,omitempty" db:"-"`
	Addresses      []BusinessEntityAddress `json:"addresses,omitempty" db:"-"`
}

type EmailAddress struct {
	BusinessEntityID int64     `json:"business_entity_id" db:"business_entity_id"`
	EmailAddressID   int64     `json:"email_address_id" db:"email_address_id"`
	EmailAddress     string    `json:"email_address" db:"email_address"`
	Rowguid          string    `json:"rowguid" db:"rowguid"`
	ModifiedDate     time.Time `json:"modified_date" db:"modified_date"`
}

type PersonPhone struct {
	BusinessEntityID  int64     `json:"business_entity_id" db:"business_entity_id"`
	PhoneNumber       string    `json:"phone_number" db:"phone_number"`
	PhoneNumberTypeID int64     `json:"phone_number_type_id" db:"phone_number_type_id"`
	ModifiedDate      time.Time `json:"modified_date" db:"modified_date"`
}
