package dto

import (
	"fmt"
	"strings"
	"time"
)

type PersonDto struct {
	BusinessEntityID int64                     `json:"business_entity_id"`
	PersonType       string                    `json:"person_type"`
	Title            string                    `json:"title,omitempty"`
	FirstName        string                    `json:"first_name"`
	MiddleName       string                    `json:"middle_name,omitempty"`
	LastName         string                    `json:"last_name"`
	Suffix           string                    `json:"suffix,omitempty"`
	EmailAddresses   []string                   `json:"email_addresses"`
	Phones           []PersonPhoneDto           `json:"phones"`
	Addresses        []BusinessEntityAddressDto `json:"addresses"`
	ModifiedDate     time.Time                  `json:"modified_date"`
}

// FullName joins the name parts, skipping an absent middle name.
func (p PersonDto) FullName() string {
	parts := []string{p.FirstName}
	if p.MiddleName != "" {
		parts = append(parts, p.MiddleName)
	}
	parts = append(parts, p.LastName)
	return strings.Join(parts, " ")
}

type PersonListDto struct {
	BusinessEntityID int64  `json:"business_entity_id"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	PersonType       string `json:"person_type"`
	PrimaryEmail     string `json:"primary_email,omitempty"`
	PrimaryPhone     string `json:"primary_phone,omitempty"`
}

func (p PersonListDto) FullName() string {
	return p.FirstName + " " + p.LastName
}

type PersonCreateDto struct {
	PersonType string `json:"person_type"`
	Title      string `json:"title"`
	FirstName  string `json:"first_name" binding:"required"`
	MiddleName string `json:"middle_name"`
	LastName   string `json:"last_name" binding:"required"`
	Suffix     string `json:"suffix"`
}

type PersonUpdateDto struct {
	PersonCreateDto
	BusinessEntityID int64 `json:"business_entity_id" binding:"required"`
}

type EmailAddressDto struct {
	BusinessEntityID int64     `json:"business_entity_id"`
	EmailAddressID   int64     `json:"email_address_id"`
	EmailAddress     string    `json:"email_address" binding:"required,email"`
	PersonName       string    `json:"person_name,omitempty"`
	ModifiedDate     time.Time `json:"modified_date"`
}

// ContactInfo renders the address book style "Name <email>" form.
func (e EmailAddressDto) ContactInfo() string {
	return fmt.Sprintf("%s <%s>", e.PersonName, e.EmailAddress)
}

type PersonPhoneDto struct {
	BusinessEntityID  int64     `json:"business_entity_id"`
	PhoneNumber       string    `json:"phone_number" binding:"required"`
	PhoneNumberTypeID int64     `json:"phone_number_type_id"`
	ModifiedDate      time.Time `json:"modified_date"`
}
