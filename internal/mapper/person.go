package mapper

import (
	"time"

	"github.com/cycleworks/salesdesk/internal/dto"
	"github.com/cycleworks/salesdesk/internal/models"
	"github.com/google/uuid"
)

func PersonToDto(p models.Person) dto.PersonDto {
	out := dto.PersonDto{
		BusinessEntityID: p.BusinessEntityID,
		PersonType:       p.PersonType,
		Title:            deref(p.Title),
		FirstName:        p.FirstName,
		MiddleName:       deref(p.MiddleName),
		LastName:         p.LastName,
		Suffix:           deref(p.Suffix),
		EmailAddresses:   []string{},
		Phones:           []dto.PersonPhoneDto{},
		Addresses:        []dto.BusinessEntityAddressDto{},
		ModifiedDate:     p.ModifiedDate,
	}

	for _, e := range p.EmailAddresses {
		out.EmailAddresses = append(out.EmailAddresses, e.EmailAddress)
	}
	for _, ph := range p.Phones {
		out.Phones = append(out.Phones, PhoneToDto(ph))
	}
	for _, a := range p.Addresses {
		out.Addresses = append(out.Addresses, BusinessEntityAddressToDto(a))
	}

	return out
}

func PersonToListDto(p models.Person) dto.PersonListDto {
	out := dto.PersonListDto{
		BusinessEntityID: p.BusinessEntityID,
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		PersonType:       p.PersonType,
	}
	if len(p.EmailAddresses) > 0 {
		out.PrimaryEmail = p.EmailAddresses[0].EmailAddress
	}
	if len(p.Phones) > 0 {
		out.PrimaryPhone = p.Phones[0].PhoneNumber
	}
	return out
}

func PersonsToListDto(persons []models.Person) []dto.PersonListDto {
	out := make([]dto.PersonListDto, 0, len(persons))
	for _, p := range persons {
		out = append(out, PersonToListDto(p))
	}
	return out
}

// PersonFromCreate builds a new entity from the create shape, assigning
// the generated row marker and modification timestamp. The identity is
// assigned by the store on insert.
func PersonFromCreate(d dto.PersonCreateDto) models.Person {
	personType := d.PersonType
	if personType == "" {
		personType = models.PersonTypeIndividual
	}
	return models.Person{
		PersonType:   personType,
		Title:        optional(d.Title),
		FirstName:    d.FirstName,
		MiddleName:   optional(d.MiddleName),
		LastName:     d.LastName,
		Suffix:       optional(d.Suffix),
		Rowguid:      uuid.NewString(),
		ModifiedDate: time.Now(),
	}
}

// ApplyPersonUpdate copies the mutable fields onto the loaded entity and
// refreshes the modification timestamp. Identity and rowguid are never
// touched.
func ApplyPersonUpdate(d dto.PersonUpdateDto, p *models.Person) {
	if d.PersonType != "" {
		p.PersonType = d.PersonType
	}
	p.Title = optional(d.Title)
	p.FirstName = d.FirstName
	p.MiddleName = optional(d.MiddleName)
	p.LastName = d.LastName
	p.Suffix = optional(d.Suffix)
	p.ModifiedDate = time.Now()
}

func EmailToDto(e models.EmailAddress) dto.EmailAddressDto {
	return dto.EmailAddressDto{
		BusinessEntityID: e.BusinessEntityID,
		EmailAddressID:   e.EmailAddressID,
		EmailAddress:     e.EmailAddress,
		ModifiedDate:     e.ModifiedDate,
	}
}

func EmailsToDto(emails []models.EmailAddress) []dto.EmailAddressDto {
	out := make([]dto.EmailAddressDto, 0, len(emails))
	for _, e := range emails {
		out = append(out, EmailToDto(e))
	}
	return out
}

// EmailToEntity rebuilds the stored shape from a transfer shape. Fields
// present in both round-trip unchanged.
func EmailToEntity(d dto.EmailAddressDto) models.EmailAddress {
	return models.EmailAddress{
		BusinessEntityID: d.BusinessEntityID,
		EmailAddressID:   d.EmailAddressID,
		EmailAddress:     d.EmailAddress,
		ModifiedDate:     d.ModifiedDate,
	}
}

func PhoneToDto(p models.PersonPhone) dto.PersonPhoneDto {
	return dto.PersonPhoneDto{
		BusinessEntityID:  p.BusinessEntityID,
		PhoneNumber:       p.PhoneNumber,
		PhoneNumberTypeID: p.PhoneNumberTypeID,
		ModifiedDate:      p.ModifiedDate,
	}
}

func PhonesToDto(phones []models.PersonPhone) []dto.PersonPhoneDto {
	out := make([]dto.PersonPhoneDto, 0, len(phones))
	for _, p := range phones {
		out = append(out, PhoneToDto(p))
	}
	return out
}

func PhoneToEntity(d dto.PersonPhoneDto) models.PersonPhone {
	return models.PersonPhone{
		BusinessEntityID:  d.BusinessEntityID,
		PhoneNumber:       d.PhoneNumber,
		PhoneNumberTypeID: d.PhoneNumberTypeID,
		ModifiedDate:      d.ModifiedDate,
	}
}

func AddressToDto(a models.Address) dto.AddressDto {
	return dto.AddressDto{
		AddressID:     a.AddressID,
		AddressLine1:  a.AddressLine1,
		AddressLine2:  deref(a.AddressLine2),
		City:          a.City,
		StateProvince: a.StateProvince,
		PostalCode:    a.PostalCode,
		CountryRegion: a.CountryRegion,
		ModifiedDate:  a.ModifiedDate,
	}
}

func BusinessEntityAddressToDto(link models.BusinessEntityAddress) dto.BusinessEntityAddressDto {
	out := dto.BusinessEntityAddressDto{
		BusinessEntityID: link.BusinessEntityID,
		AddressID:        link.AddressID,
		AddressTypeID:    link.AddressTypeID,
		ModifiedDate:     link.ModifiedDate,
	}
	if link.Address != nil {
		addr := AddressToDto(*link.Address)
		out.Address = &addr
	}
	return out
}

func BusinessEntityAddressesToDto(links []models.BusinessEntityAddress) []dto.BusinessEntityAddressDto {
	out := make([]dto.BusinessEntityAddressDto, 0, len(links))
	for _, link := range links {
		out = append(out, BusinessEntityAddressToDto(link))
	}
	return out
}
