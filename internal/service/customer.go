// Package service orchestrates repositories and mappers into the
// business operations exposed to the presentation layer. Services hold
// no state of their own; every operation runs to completion against the
// store it is handed.
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/cycleworks/salesdesk/internal/dto"
	"github.com/cycleworks/salesdesk/internal/mapper"
	"github.com/cycleworks/salesdesk/internal/models"
	"github.com/cycleworks/salesdesk/internal/repository"
	"github.com/shopspring/decimal"
)

// CustomerRepo is the slice of the customer repository the service uses.
type CustomerRepo interface {
	GetByID(id int64) (*models.Customer, error)
	GetAll() ([]models.Customer, error)
	Search(term string) ([]models.Customer, error)
	Individuals() ([]models.Customer, error)
	Stores() ([]models.Customer, error)
	ByTerritory(territoryID int64) ([]models.Customer, error)
	ByAccountNumber(accountNumber string) (*models.Customer, error)
	Last() (*models.Customer, error)
	Top(count int) ([]models.Customer, error)
	Add(c *models.Customer) error
	Update(c *models.Customer) error
	Delete(id int64) (bool, error)
	Exists(id int64) (bool, error)
}

// CustomerOrderRepo is the order-side view the customer service needs.
type CustomerOrderRepo interface {
	ByCustomer(customerID int64) ([]models.SalesOrderHeader, error)
}

type CustomerService struct {
	customers CustomerRepo
	orders    CustomerOrderRepo
}

func NewCustomerService(customers CustomerRepo, orders CustomerOrderRepo) *CustomerService {
	return &CustomerService{customers: customers, orders: orders}
}

func (s *CustomerService) GetAll() ([]dto.CustomerDto, error) {
	customers, err := s.customers.GetAll()
	if err != nil {
		return nil, err
	}
	return mapper.CustomersToDto(customers), nil
}

func (s *CustomerService) GetByID(id int64) (*dto.CustomerDto, error) {
	c, err := s.customers.GetByID(id)
	if err != nil {
		return nil, err
	}
	out := mapper.CustomerToDto(*c)
	return &out, nil
}

func (s *CustomerService) Search(term string) ([]dto.CustomerDto, error) {
	customers, err := s.customers.Search(term)
	if err != nil {
		return nil, err
	}
	return mapper.CustomersToDto(customers), nil
}

func (s *CustomerService) Individuals() ([]dto.CustomerDto, error) {
	customers, err := s.customers.Individuals()
	if err != nil {
		return nil, err
	}
	return mapper.CustomersToDto(customers), nil
}

func (s *CustomerService) Stores() ([]dto.CustomerDto, error) {
	customers, err := s.customers.Stores()
	if err != nil {
		return nil, err
	}
	return mapper.CustomersToDto(customers), nil
}

func (s *CustomerService) ByTerritory(territoryID int64) ([]dto.CustomerDto, error) {
	customers, err := s.customers.ByTerritory(territoryID)
	if err != nil {
		return nil, err
	}
	return mapper.CustomersToDto(customers), nil
}

// Create persists a new customer. The caller supplies the owner
// references; identity, account number, row marker and timestamp are
// generated here.
func (s *CustomerService) Create(d dto.CustomerCreateDto) (*dto.CustomerDto, error) {
	if (d.PersonID == nil) == (d.StoreID == nil) {
		return nil, errors.New("customer must reference exactly one of person or store")
	}

	accountNumber, err := s.GenerateAccountNumber()
	if err != nil {
		return nil, err
	}

	c := mapper.CustomerFromCreate(d, accountNumber)
	if err := s.customers.Add(&c); err != nil {
		return nil, err
	}

	out := mapper.CustomerToDto(c)
	return &out, nil
}

// Update copies the permitted fields onto the stored customer. Identity
// and row marker are never overwritten.
func (s *CustomerService) Update(d dto.CustomerUpdateDto) (*dto.CustomerDto, error) {
	existing, err := s.customers.GetByID(d.CustomerID)
	if err != nil {
		return nil, err
	}

	mapper.ApplyCustomerUpdate(d, existing)
	if err := s.customers.Update(existing); err != nil {
		return nil, err
	}

	out := mapper.CustomerToDto(*existing)
	return &out, nil
}

// Delete removes a customer unless orders reference it. A refusal is a
// false return, not an error; a missing customer is ErrNotFound.
func (s *CustomerService) Delete(id int64) (bool, error) {
	exists, err := s.customers.Exists(id)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, fmt.Errorf("customer id %d: %w", id, repository.ErrNotFound)
	}

	ok, err := s.CanDelete(id)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	return s.customers.Delete(id)
}

func (s *CustomerService) Exists(id int64) (bool, error) {
	return s.customers.Exists(id)
}

// CanDelete reports whether the customer has no referencing orders.
func (s *CustomerService) CanDelete(id int64) (bool, error) {
	orders, err := s.orders.ByCustomer(id)
	if err != nil {
		return false, err
	}
	return len(orders) == 0, nil
}

// GenerateAccountNumber derives the next account number from the highest
// known customer identity. Two concurrent creates can observe the same
// last identity and collide; the unique key on account_number is the
// only backstop.
func (s *CustomerService) GenerateAccountNumber() (string, error) {
	last, err := s.customers.Last()
	if err != nil {
		return "", err
	}

	var nextID int64 = 1
	if last != nil {
		nextID = last.CustomerID + 1
	}
	return fmt.Sprintf("AW%08d", nextID), nil
}

// GetSummary aggregates the customer's order history in memory. An empty
// history yields zero totals and absent dates.
func (s *CustomerService) GetSummary(id int64) (*dto.CustomerSummaryDto, error) {
	c, err := s.customers.GetByID(id)
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.ByCustomer(id)
	if err != nil {
		return nil, err
	}

	cdto := mapper.CustomerToDto(*c)
	summary := dto.CustomerSummaryDto{
		CustomerID:    c.CustomerID,
		CustomerName:  cdto.CustomerName(),
		CustomerType:  cdto.CustomerType(),
		AccountNumber: c.AccountNumber,
		TotalOrders:   len(orders),
		TotalSales:    decimal.Zero,
		TerritoryName: cdto.TerritoryName,
		// No business rule defines customer activity yet; always true.
		IsActive: true,
	}

	for i := range orders {
		o := &orders[i]
		summary.TotalSales = summary.TotalSales.Add(o.TotalDue)
		if summary.LastOrderDate == nil || o.OrderDate.After(*summary.LastOrderDate) {
			t := o.OrderDate
			summary.LastOrderDate = &t
		}
		if summary.FirstOrderDate == nil || o.OrderDate.Before(*summary.FirstOrderDate) {
			t := o.OrderDate
			summary.FirstOrderDate = &t
		}
	}

	return &summary, nil
}

func (s *CustomerService) GetOrders(id int64) ([]dto.SalesOrderHeaderDto, error) {
	orders, err := s.orders.ByCustomer(id)
	if err != nil {
		return nil, err
	}
	return mapper.OrdersToDto(orders), nil
}

func (s *CustomerService) GetTotalSales(id int64) (decimal.Decimal, error) {
	orders, err := s.orders.ByCustomer(id)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for i := range orders {
		total = total.Add(orders[i].TotalDue)
	}
	return total, nil
}

func (s *CustomerService) GetLastOrderDate(id int64) (*time.Time, error) {
	orders, err := s.orders.ByCustomer(id)
	if err != nil {
		return nil, err
	}

	var last *time.Time
	for i := range orders {
		if last == nil || orders[i].OrderDate.After(*last) {
			t := orders[i].OrderDate
			last = &t
		}
	}
	return last, nil
}

func (s *CustomerService) GetTopCustomers(count int) ([]dto.CustomerDto, error) {
	if count < 1 {
		count = 10
	}
	customers, err := s.customers.Top(count)
	if err != nil {
		return nil, err
	}
	return mapper.CustomersToDto(customers), nil
}

func (s *CustomerService) GetByAccountNumber(accountNumber string) (*dto.CustomerDto, error) {
	c, err := s.customers.ByAccountNumber(accountNumber)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("customer account %s: %w", accountNumber, repository.ErrNotFound)
	}
	out := mapper.CustomerToDto(*c)
	return &out, nil
}
