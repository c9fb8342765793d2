package mapper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cycleworks/salesdesk/internal/dto"
	"github.com/cycleworks/salesdesk/internal/models"
)

func strptr(s string) *string { return &s }

func TestPersonToDto_CollectionsAlwaysPresent(t *testing.T) {
	p := models.Person{
		BusinessEntityID: 7,
		PersonType:       models.PersonTypeIndividual,
		FirstName:        "Ken",
		LastName:         "Sanchez",
	}

	out := PersonToDto(p)

	assert.NotNil(t, out.EmailAddresses)
	assert.NotNil(t, out.Phones)
	assert.NotNil(t, out.Addresses)
	assert.Empty(t, out.EmailAddresses)
}

func TestPersonDto_FullName(t *testing.T) {
	withMiddle := PersonToDto(models.Person{
		FirstName:  "Ken",
		MiddleName: strptr("J"),
		LastName:   "Sanchez",
	})
	without := PersonToDto(models.Person{FirstName: "Ken", LastName: "Sanchez"})

	assert.Equal(t, "Ken J Sanchez", withMiddle.FullName())
	assert.Equal(t, "Ken Sanchez", without.FullName())
}

func TestPersonToListDto_PrimaryContacts(t *testing.T) {
	p := models.Person{
		FirstName: "Terri",
		LastName:  "Duffy",
		EmailAddresses: []models.EmailAddress{
			{EmailAddress: "terri.duffy@example.com"},
			{EmailAddress: "terri@example.com"},
		},
		Phones: []models.PersonPhone{{PhoneNumber: "819-555-0175"}},
	}

	out := PersonToListDto(p)

	assert.Equal(t, "terri.duffy@example.com", out.PrimaryEmail)
	assert.Equal(t, "819-555-0175", out.PrimaryPhone)
}

func TestPersonFromCreate_Defaults(t *testing.T) {
	p := PersonFromCreate(dto.PersonCreateDto{FirstName: "Linda", LastName: "Mitchell"})

	assert.Equal(t, models.PersonTypeIndividual, p.PersonType)
	assert.NotEmpty(t, p.Rowguid)
	assert.False(t, p.ModifiedDate.IsZero())
	assert.Zero(t, p.BusinessEntityID)
}

func TestApplyPersonUpdate_KeepsIdentity(t *testing.T) {
	existing := models.Person{
		BusinessEntityID: 42,
		PersonType:       models.PersonTypeIndividual,
		FirstName:        "Old",
		LastName:         "Name",
		Rowguid:          "fixed-guid",
		ModifiedDate:     time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	ApplyPersonUpdate(dto.PersonUpdateDto{
		PersonCreateDto:  dto.PersonCreateDto{FirstName: "New", LastName: "Name"},
		BusinessEntityID: 42,
	}, &existing)

	assert.Equal(t, int64(42), existing.BusinessEntityID)
	assert.Equal(t, "fixed-guid", existing.Rowguid)
	assert.Equal(t, "New", existing.FirstName)
	assert.Equal(t, models.PersonTypeIndividual, existing.PersonType)
	assert.True(t, existing.ModifiedDate.After(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)))
}

// Fields present in both shapes round-trip unchanged.
func TestEmailRoundTrip(t *testing.T) {
	entity := models.EmailAddress{
		BusinessEntityID: 3,
		EmailAddressID:   9,
		EmailAddress:     "ken.sanchez@example.com",
		ModifiedDate:     time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	back := EmailToEntity(EmailToDto(entity))

	assert.Equal(t, entity.BusinessEntityID, back.BusinessEntityID)
	assert.Equal(t, entity.EmailAddressID, back.EmailAddressID)
	assert.Equal(t, entity.EmailAddress, back.EmailAddress)
	assert.Equal(t, entity.ModifiedDate, back.ModifiedDate)
}

func TestContactInfo(t *testing.T) {
	d := dto.EmailAddressDto{PersonName: "Ken Sanchez", EmailAddress: "ken@example.com"}
	assert.Equal(t, "Ken Sanchez <ken@example.com>", d.ContactInfo())
}

func TestBusinessEntityAddressToDto_CarriesAddress(t *testing.T) {
	link := models.BusinessEntityAddress{
		BusinessEntityID: 5,
		AddressID:        11,
		Address: &models.Address{
			AddressID:     11,
			AddressLine1:  "4350 Minute Dr.",
			City:          "Newport Hills",
			StateProvince: "WA",
			PostalCode:    "98006",
			CountryRegion: "US",
		},
	}

	out := BusinessEntityAddressToDto(link)

	assert.NotNil(t, out.Address)
	assert.Equal(t, "Newport Hills", out.Address.City)
}
