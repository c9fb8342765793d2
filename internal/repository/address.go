package repository

import (
	"fmt"

	"github.com/cycleworks/salesdesk/internal/database"
	"github.com/cycleworks/salesdesk/internal/models"
)

type AddressRepository struct {
	table[models.Address]
}

func NewAddressRepository(db *database.DB) *AddressRepository {
	return &AddressRepository{
		table: table[models.Address]{
			db:       db,
			name:     "addresses",
			idColumn: "address_id",
			columns: []string{
				"address_id", "address_line1", "address_line2", "city",
				"state_province", "postal_code", "country_region", "rowguid", "modified_date",
			},
			scanRow: func(r rowScanner) (*models.Address, error) {
				var a models.Address
				err := r.Scan(
					&a.AddressID, &a.AddressLine1, &a.AddressLine2, &a.City,
					&a.StateProvince, &a.PostalCode, &a.CountryRegion, &a.Rowguid, &a.ModifiedDate,
				)
				return &a, err
			},
			insertColumns: []string{
				"address_line1", "address_line2", "city", "state_province",
				"postal_code", "country_region", "rowguid", "modified_date",
			},
			insertArgs: func(a *models.Address) []any {
				return []any{
					a.AddressLine1, a.AddressLine2, a.City, a.StateProvince,
					a.PostalCode, a.CountryRegion, a.Rowguid, a.ModifiedDate,
				}
			},
			setID: func(a *models.Address, id int64) { a.AddressID = id },
			updateColumns: []string{
				"address_line1", "address_line2", "city", "state_province",
				"postal_code", "country_region", "modified_date",
			},
			updateArgs: func(a *models.Address) []any {
				return []any{
					a.AddressLine1, a.AddressLine2, a.City, a.StateProvince,
					a.PostalCode, a.CountryRegion, a.ModifiedDate,
				}
			},
			idOf: func(a *models.Address) int64 { return a.AddressID },
		},
	}
}

type BusinessEntityAddressRepository struct {
	db *database.DB
}

func NewBusinessEntityAddressRepository(db *database.DB) *BusinessEntityAddressRepository {
	return &BusinessEntityAddressRepository{db: db}
}

// ByBusinessEntity returns the entity's address links with the address
// rows eager-loaded.
func (r *BusinessEntityAddressRepository) ByBusinessEntity(businessEntityID int64) ([]models.BusinessEntityAddress, error) {
	rows, err := r.db.Query(
		`SELECT bea.business_entity_id, bea.address_id, bea.address_type_id, bea.rowguid, bea.modified_date,
		        a.address_id, a.address_line1, a.address_line2, a.city,
		        a.state_province, a.postal_code, a.country_region, a.rowguid, a.modified_date
		 FROM business_entity_addresses bea
		 JOIN addresses a ON a.address_id = bea.address_id
		 WHERE bea.business_entity_id = ?`, businessEntityID)
	if err != nil {
		return nil, fmt.Errorf("failed to query business_entity_addresses: %w", err)
	}
	defer rows.Close()

	var links []models.BusinessEntityAddress
	for rows.Next() {
		var link models.BusinessEntityAddress
		var addr models.Address
		err := rows.Scan(
			&link.BusinessEntityID, &link.AddressID, &link.AddressTypeID, &link.Rowguid, &link.ModifiedDate,
			&addr.AddressID, &addr.AddressLine1, &addr.AddressLine2, &addr.City,
			&addr.StateProvince, &addr.PostalCode, &addr.CountryRegion, &addr.Rowguid, &addr.ModifiedDate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan business_entity_addresses row: %w", err)
		}
		link.Address = &addr
		links = append(links, link)
	}

	return links, rows.Err()
}

func (r *BusinessEntityAddressRepository) Add(link *models.BusinessEntityAddress) error {
	_, err := r.db.Exec(
		`INSERT INTO business_entity_addresses (business_entity_id, address_id, address_type_id, rowguid, modified_date)
		 VALUES (?, ?, ?, ?, ?)`,
		link.BusinessEntityID, link.AddressID, link.AddressTypeID, link.Rowguid, link.ModifiedDate)
	if err != nil {
		return fmt.Errorf("failed to insert business_entity_addresses: %w", err)
	}
	return nil
}

func (r *BusinessEntityAddressRepository) Delete(businessEntityID, addressID int64) (bool, error) {
	res, err := r.db.Exec(
		"DELETE FROM business_entity_addresses WHERE business_entity_id = ? AND address_id = ?",
		businessEntityID, addressID)
	if err != nil {
		return false, fmt.Errorf("failed to delete from business_entity_addresses: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read business_entity_addresses delete result: %w", err)
	}
	return affected > 0, nil
}
