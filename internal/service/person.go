package service

import (
	"fmt"
	"time"

	"github.com/cycleworks/salesdesk/internal/config"
	"github.com/cycleworks/salesdesk/internal/dto"
	"github.com/cycleworks/salesdesk/internal/mapper"
	"github.com/cycleworks/salesdesk/internal/models"
	"github.com/cycleworks/salesdesk/internal/repository"
	"github.com/google/uuid"
)

// PersonRepo is the slice of the person repository the service uses.
type PersonRepo interface {
	GetByID(id int64) (*models.Person, error)
	GetAll() ([]models.Person, error)
	GetPaged(page, pageSize int) ([]models.Person, error)
	Search(term string) ([]models.Person, error)
	ByType(personType string) ([]models.Person, error)
	GetWithDetails(id int64) (*models.Person, error)
	FindPage(params dto.PersonQueryParameters) ([]models.Person, int, error)
	Add(p *models.Person) error
	Update(p *models.Person) error
	Delete(id int64) (bool, error)
	Exists(id int64) (bool, error)
	Count() (int, error)
}

type EmailRepo interface {
	GetByID(id int64) (*models.EmailAddress, error)
	ByBusinessEntity(businessEntityID int64) ([]models.EmailAddress, error)
	ByEmail(email string) ([]models.EmailAddress, error)
	Add(e *models.EmailAddress) error
	Update(e *models.EmailAddress) error
	Delete(id int64) (bool, error)
}

type PhoneRepo interface {
	ByBusinessEntity(businessEntityID int64) ([]models.PersonPhone, error)
	Add(p *models.PersonPhone) error
	Delete(businessEntityID, phoneNumberTypeID int64) (bool, error)
}

type ContactAddressRepo interface {
	ByBusinessEntity(businessEntityID int64) ([]models.BusinessEntityAddress, error)
	Add(link *models.BusinessEntityAddress) error
	Delete(businessEntityID, addressID int64) (bool, error)
}

type PersonService struct {
	persons   PersonRepo
	emails    EmailRepo
	phones    PhoneRepo
	addresses ContactAddressRepo
	paging    config.PagingConfig
}

func NewPersonService(persons PersonRepo, emails EmailRepo, phones PhoneRepo, addresses ContactAddressRepo, paging config.PagingConfig) *PersonService {
	return &PersonService{
		persons:   persons,
		emails:    emails,
		phones:    phones,
		addresses: addresses,
		paging:    paging,
	}
}

func (s *PersonService) GetAll() ([]dto.PersonListDto, error) {
	persons, err := s.persons.GetAll()
	if err != nil {
		return nil, err
	}
	return mapper.PersonsToListDto(persons), nil
}

func (s *PersonService) GetByID(id int64) (*dto.PersonDto, error) {
	p, err := s.persons.GetByID(id)
	if err != nil {
		return nil, err
	}
	out := mapper.PersonToDto(*p)
	return &out, nil
}

// GetWithDetails returns the person with emails, phones and addresses
// loaded.
func (s *PersonService) GetWithDetails(id int64) (*dto.PersonDto, error) {
	p, err := s.persons.GetWithDetails(id)
	if err != nil {
		return nil, err
	}
	out := mapper.PersonToDto(*p)
	return &out, nil
}

func (s *PersonService) Search(term string) ([]dto.PersonListDto, error) {
	persons, err := s.persons.Search(term)
	if err != nil {
		return nil, err
	}
	return mapper.PersonsToListDto(persons), nil
}

func (s *PersonService) ByType(personType string) ([]dto.PersonListDto, error) {
	persons, err := s.persons.ByType(personType)
	if err != nil {
		return nil, err
	}
	return mapper.PersonsToListDto(persons), nil
}

// GetPaged answers a filtered, sorted, paged person query. The same
// parameter set always yields the same page, and the total count covers
// the filtered set before paging.
func (s *PersonService) GetPaged(params dto.PersonQueryParameters) (*dto.PagedResult[dto.PersonListDto], error) {
	params.Normalize(s.paging.DefaultPageSize, s.paging.MaxPageSize)

	persons, total, err := s.persons.FindPage(params)
	if err != nil {
		return nil, err
	}

	result := dto.NewPagedResult(mapper.PersonsToListDto(persons), total, params.Page, params.PageSize)
	return &result, nil
}

func (s *PersonService) Create(d dto.PersonCreateDto) (*dto.PersonDto, error) {
	p := mapper.PersonFromCreate(d)
	if err := s.persons.Add(&p); err != nil {
		return nil, err
	}
	out := mapper.PersonToDto(p)
	return &out, nil
}

func (s *PersonService) Update(d dto.PersonUpdateDto) (*dto.PersonDto, error) {
	existing, err := s.persons.GetByID(d.BusinessEntityID)
	if err != nil {
		return nil, err
	}

	mapper.ApplyPersonUpdate(d, existing)
	if err := s.persons.Update(existing); err != nil {
		return nil, err
	}

	out := mapper.PersonToDto(*existing)
	return &out, nil
}

func (s *PersonService) Delete(id int64) (bool, error) {
	exists, err := s.persons.Exists(id)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, fmt.Errorf("person id %d: %w", id, repository.ErrNotFound)
	}
	return s.persons.Delete(id)
}

func (s *PersonService) Exists(id int64) (bool, error) {
	return s.persons.Exists(id)
}

func (s *PersonService) Count() (int, error) {
	return s.persons.Count()
}

// AddEmail attaches an address to the person. The owner must exist.
func (s *PersonService) AddEmail(businessEntityID int64, email string) (*dto.EmailAddressDto, error) {
	exists, err := s.persons.Exists(businessEntityID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("person id %d: %w", businessEntityID, repository.ErrNotFound)
	}

	e := models.EmailAddress{
		BusinessEntityID: businessEntityID,
		EmailAddress:     email,
		Rowguid:          uuid.NewString(),
		ModifiedDate:     time.Now(),
	}
	if err := s.emails.Add(&e); err != nil {
		return nil, err
	}

	out := mapper.EmailToDto(e)
	return &out, nil
}

func (s *PersonService) RemoveEmail(emailAddressID int64) (bool, error) {
	return s.emails.Delete(emailAddressID)
}

func (s *PersonService) GetEmails(businessEntityID int64) ([]dto.EmailAddressDto, error) {
	emails, err := s.emails.ByBusinessEntity(businessEntityID)
	if err != nil {
		return nil, err
	}
	return mapper.EmailsToDto(emails), nil
}

// IsEmailUnique reports whether no other person already carries the
// address. The optional exclude identity lets updates skip their own row.
func (s *PersonService) IsEmailUnique(email string, excludeBusinessEntityID *int64) (bool, error) {
	owners, err := s.emails.ByEmail(email)
	if err != nil {
		return false, err
	}
	for i := range owners {
		if excludeBusinessEntityID != nil && owners[i].BusinessEntityID == *excludeBusinessEntityID {
			continue
		}
		return false, nil
	}
	return true, nil
}

func (s *PersonService) AddPhone(d dto.PersonPhoneDto) (*dto.PersonPhoneDto, error) {
	exists, err := s.persons.Exists(d.BusinessEntityID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("person id %d: %w", d.BusinessEntityID, repository.ErrNotFound)
	}

	p := mapper.PhoneToEntity(d)
	p.ModifiedDate = time.Now()
	if err := s.phones.Add(&p); err != nil {
		return nil, err
	}

	out := mapper.PhoneToDto(p)
	return &out, nil
}

func (s *PersonService) RemovePhone(businessEntityID, phoneNumberTypeID int64) (bool, error) {
	return s.phones.Delete(businessEntityID, phoneNumberTypeID)
}

func (s *PersonService) GetPhones(businessEntityID int64) ([]dto.PersonPhoneDto, error) {
	phones, err := s.phones.ByBusinessEntity(businessEntityID)
	if err != nil {
		return nil, err
	}
	return mapper.PhonesToDto(phones), nil
}

func (s *PersonService) AddAddress(businessEntityID, addressID, addressTypeID int64) (*dto.BusinessEntityAddressDto, error) {
	exists, err := s.persons.Exists(businessEntityID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("person id %d: %w", businessEntityID, repository.ErrNotFound)
	}

	link := models.BusinessEntityAddress{
		BusinessEntityID: businessEntityID,
		AddressID:        addressID,
		AddressTypeID:    addressTypeID,
		Rowguid:          uuid.NewString(),
		ModifiedDate:     time.Now(),
	}
	if err := s.addresses.Add(&link); err != nil {
		return nil, err
	}

	out := mapper.BusinessEntityAddressToDto(link)
	return &out, nil
}

func (s *PersonService) RemoveAddress(businessEntityID, addressID int64) (bool, error) {
	return s.addresses.Delete(businessEntityID, addressID)
}

func (s *PersonService) GetAddresses(businessEntityID int64) ([]dto.BusinessEntityAddressDto, error) {
	links, err := s.addresses.ByBusinessEntity(businessEntityID)
	if err != nil {
		return nil, err
	}
	return mapper.BusinessEntityAddressesToDto(links), nil
}
