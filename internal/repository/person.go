package repository

import (
	"fmt"
	"strings"

	"github.com/cycleworks/salesdesk/internal/database"
	"github.com/cycleworks/salesdesk/internal/dto"
	"github.com/cycleworks/salesdesk/internal/models"
)

var personSortable = map[string]string{
	"firstname":    "first_name",
	"lastname":     "last_name",
	"persontype":   "person_type",
	"modifieddate": "modified_date",
}

type PersonRepository struct {
	table[models.Person]
	emails    *EmailAddressRepository
	phones    *PersonPhoneRepository
	addresses *BusinessEntityAddressRepository
}

func NewPersonRepository(db *database.DB) *PersonRepository {
	return &PersonRepository{
		table: table[models.Person]{
			db:       db,
			name:     "persons",
			idColumn: "business_entity_id",
			columns: []string{
				"business_entity_id", "person_type", "title", "first_name",
				"middle_name", "last_name", "suffix", "rowguid", "modified_date",
			},
			scanRow: func(r rowScanner) (*models.Person, error) {
				var p models.Person
				err := r.Scan(
					&p.BusinessEntityID, &p.PersonType, &p.Title, &p.FirstName,
					&p.MiddleName, &p.LastName, &p.Suffix, &p.Rowguid, &p.ModifiedDate,
				)
				return &p, err
			},
			insertColumns: []string{
				"person_type", "title", "first_name", "middle_name",
				"last_name", "suffix", "rowguid", "modified_date",
			},
			insertArgs: func(p *models.Person) []any {
				return []any{
					p.PersonType, p.Title, p.FirstName, p.MiddleName,
					p.LastName, p.Suffix, p.Rowguid, p.ModifiedDate,
				}
			},
			setID: func(p *models.Person, id int64) { p.BusinessEntityID = id },
			updateColumns: []string{
				"person_type", "title", "first_name", "middle_name",
				"last_name", "suffix", "modified_date",
			},
			updateArgs: func(p *models.Person) []any {
				return []any{
					p.PersonType, p.Title, p.FirstName, p.MiddleName,
					p.LastName, p.Suffix, p.ModifiedDate,
				}
			},
			idOf:     func(p *models.Person) int64 { return p.BusinessEntityID },
			sortable: personSortable,
		},
		emails:    NewEmailAddressRepository(db),
		phones:    NewPersonPhoneRepository(db),
		addresses: NewBusinessEntityAddressRepository(db),
	}
}

// Search matches the term against first, middle and last name, ordered by
// last then first name.
func (r *PersonRepository) Search(term string) ([]models.Person, error) {
	pattern := "%" + term + "%"
	return r.queryMany(
		" WHERE first_name LIKE ? OR middle_name LIKE ? OR last_name LIKE ?"+
			" ORDER BY last_name, first_name",
		pattern, pattern, pattern,
	)
}

// ByType returns persons with the given type code, ordered by last then
// first name.
func (r *PersonRepository) ByType(personType string) ([]models.Person, error) {
	return r.queryMany(
		" WHERE person_type = ? ORDER BY last_name, first_name",
		personType,
	)
}

// GetWithDetails loads a person together with emails, phones and
// addresses. Callers rely on those collections being populated.
func (r *PersonRepository) GetWithDetails(id int64) (*models.Person, error) {
	p, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	if p.EmailAddresses, err = r.emails.ByBusinessEntity(id); err != nil {
		return nil, err
	}
	if p.Phones, err = r.phones.ByBusinessEntity(id); err != nil {
		return nil, err
	}
	if p.Addresses, err = r.addresses.ByBusinessEntity(id); err != nil {
		return nil, err
	}

	return p, nil
}

// FindPage returns one page of persons matching the query parameters plus
// the total match count over the filtered-but-unpaged set.
func (r *PersonRepository) FindPage(params dto.PersonQueryParameters) ([]models.Person, int, error) {
	where, args := personFilterClause(params)

	var total int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM persons"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count persons: %w", err)
	}

	suffix := where +
		orderClause(personSortable, "business_entity_id", params.SortBy, params.SortDescending) +
		pageClause(params.Page, params.PageSize)
	items, err := r.queryMany(suffix, args...)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// personFilterClause compiles the typed person filters conjunctively.
// The free-text search term ORs across the name fields; email, phone and
// city narrow through EXISTS subqueries against the contact tables.
func personFilterClause(params dto.PersonQueryParameters) (string, []any) {
	var parts []string
	var args []any

	if term := strings.TrimSpace(params.SearchTerm); term != "" {
		parts = append(parts, "(first_name LIKE ? OR middle_name LIKE ? OR last_name LIKE ?)")
		pattern := "%" + term + "%"
		args = append(args, pattern, pattern, pattern)
	}
	if params.PersonType != "" {
		parts = append(parts, "person_type = ?")
		args = append(args, params.PersonType)
	}
	if params.FirstName != "" {
		parts = append(parts, "first_name LIKE ?")
		args = append(args, "%"+params.FirstName+"%")
	}
	if params.LastName != "" {
		parts = append(parts, "last_name LIKE ?")
		args = append(args, "%"+params.LastName+"%")
	}
	if params.Email != "" {
		parts = append(parts, "EXISTS (SELECT 1 FROM email_addresses e"+
			" WHERE e.business_entity_id = persons.business_entity_id AND e.email_address LIKE ?)")
		args = append(args, "%"+params.Email+"%")
	}
	if params.Phone != "" {
		parts = append(parts, "EXISTS (SELECT 1 FROM person_phones ph"+
			" WHERE ph.business_entity_id = persons.business_entity_id AND ph.phone_number LIKE ?)")
		args = append(args, "%"+params.Phone+"%")
	}
	if params.City != "" {
		parts = append(parts, "EXISTS (SELECT 1 FROM business_entity_addresses bea"+
			" JOIN addresses a ON a.address_id = bea.address_id"+
			" WHERE bea.business_entity_id = persons.business_entity_id AND a.city LIKE ?)")
		args = append(args, "%"+params.City+"%")
	}
	if params.ModifiedAfter != nil {
		parts = append(parts, "modified_date >= ?")
		args = append(args, *params.ModifiedAfter)
	}
	if params.ModifiedBefore != nil {
		parts = append(parts, "modified_date <= ?")
		args = append(args, *params.ModifiedBefore)
	}

	if len(parts) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(parts, " AND "), args
}

type EmailAddressRepository struct {
	table[models.EmailAddress]
}

func NewEmailAddressRepository(db *database.DB) *EmailAddressRepository {
	return &EmailAddressRepository{
		table: table[models.EmailAddress]{
			db:       db,
			name:     "email_addresses",
			idColumn: "email_address_id",
			columns: []string{
				"email_address_id", "business_entity_id", "email_address",
				"rowguid", "modified_date",
			},
			scanRow: func(r rowScanner) (*models.EmailAddress, error) {
				var e models.EmailAddress
				err := r.Scan(
					&e.EmailAddressID, &e.BusinessEntityID, &e.EmailAddress,
					&e.Rowguid, &e.ModifiedDate,
				)
				return &e, err
			},
			insertColumns: []string{"business_entity_id", "email_address", "rowguid", "modified_date"},
			insertArgs: func(e *models.EmailAddress) []any {
				return []any{e.BusinessEntityID, e.EmailAddress, e.Rowguid, e.ModifiedDate}
			},
			setID: func(e *models.EmailAddress, id int64) { e.EmailAddressID = id },
			updateColumns: []string{"email_address", "modified_date"},
			updateArgs: func(e *models.EmailAddress) []any {
				return []any{e.EmailAddress, e.ModifiedDate}
			},
			idOf: func(e *models.EmailAddress) int64 { return e.EmailAddressID },
		},
	}
}

func (r *EmailAddressRepository) ByBusinessEntity(businessEntityID int64) ([]models.EmailAddress, error) {
	return r.Find(Eq("business_entity_id", businessEntityID))
}

// ByEmail returns every row carrying the exact address, across owners.
func (r *EmailAddressRepository) ByEmail(email string) ([]models.EmailAddress, error) {
	return r.Find(Eq("email_address", email))
}

type PersonPhoneRepository struct {
	db *database.DB
}

func NewPersonPhoneRepository(db *database.DB) *PersonPhoneRepository {
	return &PersonPhoneRepository{db: db}
}

func (r *PersonPhoneRepository) ByBusinessEntity(businessEntityID int64) ([]models.PersonPhone, error) {
	rows, err := r.db.Query(
		`SELECT business_entity_id, phone_number, phone_number_type_id, modified_date
		 FROM person_phones WHERE business_entity_id = ?`, businessEntityID)
	if err != nil {
		return nil, fmt.Errorf("failed to query person_phones: %w", err)
	}
	defer rows.Close()

	var phones []models.PersonPhone
	for rows.Next() {
		var p models.PersonPhone
		if err := rows.Scan(&p.BusinessEntityID, &p.PhoneNumber, &p.PhoneNumberTypeID, &p.ModifiedDate); err != nil {
			return nil, fmt.Errorf("failed to scan person_phones row: %w", err)
		}
		phones = append(phones, p)
	}

	return phones, rows.Err()
}

func (r *PersonPhoneRepository) Add(p *models.PersonPhone) error {
	_, err := r.db.Exec(
		`INSERT INTO person_phones (business_entity_id, phone_number, phone_number_type_id, modified_date)
		 VALUES (?, ?, ?, ?)`,
		p.BusinessEntityID, p.PhoneNumber, p.PhoneNumberTypeID, p.ModifiedDate)
	if err != nil {
		return fmt.Errorf("failed to insert person_phones: %w", err)
	}
	return nil
}

// Delete removes every phone of the given type for the business entity and
// reports whether any row was removed.
func (r *PersonPhoneRepository) Delete(businessEntityID, phoneNumberTypeID int64) (bool, error) {
	res, err := r.db.Exec(
		"DELETE FROM person_phones WHERE business_entity_id = ? AND phone_number_type_id = ?",
		businessEntityID, phoneNumberTypeID)
	if err != nil {
		return false, fmt.Errorf("failed to delete from person_phones: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read person_phones delete result: %w", err)
	}
	return affected > 0, nil
}
