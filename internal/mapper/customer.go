package mapper

import (
	"time"

	"github.com/cycleworks/salesdesk/internal/dto"
	"github.com/cycleworks/salesdesk/internal/models"
	"github.com/google/uuid"
)

func CustomerToDto(c models.Customer) dto.CustomerDto {
	out := dto.CustomerDto{
		CustomerID:    c.CustomerID,
		PersonID:      c.PersonID,
		StoreID:       c.StoreID,
		TerritoryID:   c.TerritoryID,
		AccountNumber: c.AccountNumber,
		ModifiedDate:  c.ModifiedDate,
	}
	if c.Person != nil {
		p := PersonToDto(*c.Person)
		out.Person = &p
	}
	if c.Store != nil {
		out.StoreName = c.Store.Name
	}
	if c.Territory != nil {
		out.TerritoryName = c.Territory.Name
	}
	return out
}

func CustomersToDto(customers []models.Customer) []dto.CustomerDto {
	out := make([]dto.CustomerDto, 0, len(customers))
	for _, c := range customers {
		out = append(out, CustomerToDto(c))
	}
	return out
}

// CustomerFromCreate builds a new customer entity. The account number is
// generated by the service before insert.
func CustomerFromCreate(d dto.CustomerCreateDto, accountNumber string) models.Customer {
	return models.Customer{
		PersonID:      d.PersonID,
		StoreID:       d.StoreID,
		TerritoryID:   d.TerritoryID,
		AccountNumber: accountNumber,
		Rowguid:       uuid.NewString(),
		ModifiedDate:  time.Now(),
	}
}

// ApplyCustomerUpdate copies the mutable fields onto the loaded entity.
// The account number is kept unless the update carries a new one.
func ApplyCustomerUpdate(d dto.CustomerUpdateDto, c *models.Customer) {
	c.PersonID = d.PersonID
	c.StoreID = d.StoreID
	c.TerritoryID = d.TerritoryID
	if d.AccountNumber != "" {
		c.AccountNumber = d.AccountNumber
	}
	c.ModifiedDate = time.Now()
}
