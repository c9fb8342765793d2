package cmd

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cycleworks/salesdesk/internal/config"
	"github.com/cycleworks/salesdesk/internal/database"
	"github.com/cycleworks/salesdesk/internal/dto"
	"github.com/cycleworks/salesdesk/internal/models"
	"github.com/cycleworks/salesdesk/internal/repository"
	"github.com/cycleworks/salesdesk/internal/service"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with sample data",
	Long: `Inserts a small set of sample rows across every table: territories,
stores, people with contact details, customers, the product catalog and
a handful of sales orders.

Run 'salesdesk setup' first to create the schema.`,
	RunE: seedData,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func seedData(cmd *cobra.Command, args []string) error {
	fmt.Println("🌱 Seeding sample data...")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	fmt.Println("   🌍 Creating territories and stores...")
	territories, err := createTerritories(db)
	if err != nil {
		return err
	}
	stores, err := createStores(db)
	if err != nil {
		return err
	}

	fmt.Println("   👥 Creating people...")
	persons, err := createPersons(db)
	if err != nil {
		return err
	}

	fmt.Println("   🏠 Creating addresses...")
	if err := createAddresses(db, persons); err != nil {
		return err
	}

	fmt.Println("   🧾 Creating customers...")
	customers, err := createCustomers(db, persons, stores, territories)
	if err != nil {
		return err
	}

	fmt.Println("   📦 Creating product catalog...")
	products, err := createCatalog(db)
	if err != nil {
		return err
	}

	fmt.Println("   🛒 Creating sales orders...")
	if err := createOrders(db, customers, persons, products); err != nil {
		return err
	}

	fmt.Println("✅ Sample data seeded!")
	return nil
}

func createTerritories(db *database.DB) ([]models.SalesTerritory, error) {
	repo := repository.NewTerritoryRepository(db)
	seed := []models.SalesTerritory{
		{Name: "Northwest", CountryRegion: "US", TerritoryGroup: "North America"},
		{Name: "Southwest", CountryRegion: "US", TerritoryGroup: "North America"},
		{Name: "France", CountryRegion: "FR", TerritoryGroup: "Europe"},
	}
	for i := range seed {
		seed[i].Rowguid = uuid.NewString()
		seed[i].ModifiedDate = time.Now()
		if err := repo.Add(&seed[i]); err != nil {
			return nil, err
		}
	}
	return seed, nil
}

func createStores(db *database.DB) ([]models.Store, error) {
	repo := repository.NewStoreRepository(db)
	seed := []models.Store{
		{Name: "Riding Supplies Inc."},
		{Name: "Metro Bike Shop"},
	}
	for i := range seed {
		seed[i].Rowguid = uuid.NewString()
		seed[i].ModifiedDate = time.Now()
		if err := repo.Add(&seed[i]); err != nil {
			return nil, err
		}
	}
	return seed, nil
}

func createPersons(db *database.DB) ([]dto.PersonDto, error) {
	personRepo := repository.NewPersonRepository(db)
	svc := service.NewPersonService(
		personRepo,
		repository.NewEmailAddressRepository(db),
		repository.NewPersonPhoneRepository(db),
		repository.NewBusinessEntityAddressRepository(db),
		config.PagingConfig{DefaultPageSize: 10, MaxPageSize: 100},
	)

	seed := []struct {
		personType, first, last, email, phone string
	}{
		{models.PersonTypeIndividual, "Ken", "Sanchez", "ken.sanchez@example.com", "697-555-0142"},
		{models.PersonTypeIndividual, "Terri", "Duffy", "terri.duffy@example.com", "819-555-0175"},
		{models.PersonTypeSalesPerson, "Stephen", "Jiang", "stephen.jiang@example.com", "238-555-0197"},
		{models.PersonTypeStoreContact, "Linda", "Mitchell", "linda.mitchell@example.com", "883-555-0116"},
	}

	var persons []dto.PersonDto
	for _, row := range seed {
		p, err := svc.Create(dto.PersonCreateDto{
			PersonType: row.personType,
			FirstName:  row.first,
			LastName:   row.last,
		})
		if err != nil {
			return nil, err
		}
		if _, err := svc.AddEmail(p.BusinessEntityID, row.email); err != nil {
			return nil, err
		}
		if _, err := svc.AddPhone(dto.PersonPhoneDto{
			BusinessEntityID:  p.BusinessEntityID,
			PhoneNumber:       row.phone,
			PhoneNumberTypeID: 1,
		}); err != nil {
			return nil, err
		}
		persons = append(persons, *p)
	}
	return persons, nil
}

func createAddresses(db *database.DB, persons []dto.PersonDto) error {
	addressRepo := repository.NewAddressRepository(db)
	linkRepo := repository.NewBusinessEntityAddressRepository(db)

	seed := []models.Address{
		{AddressLine1: "4350 Minute Dr.", City: "Newport Hills", StateProvince: "WA", PostalCode: "98006", CountryRegion: "US"},
		{AddressLine1: "7559 Worth Ct.", City: "Renton", StateProvince: "WA", PostalCode: "98055", CountryRegion: "US"},
	}
	for i := range seed {
		seed[i].Rowguid = uuid.NewString()
		seed[i].ModifiedDate = time.Now()
		if err := addressRepo.Add(&seed[i]); err != nil {
			return err
		}
	}

	for i, p := range persons {
		if i >= len(seed) {
			break
		}
		link := models.BusinessEntityAddress{
			BusinessEntityID: p.BusinessEntityID,
			AddressID:        seed[i].AddressID,
			AddressTypeID:    2,
			Rowguid:          uuid.NewString(),
			ModifiedDate:     time.Now(),
		}
		if err := linkRepo.Add(&link); err != nil {
			return err
		}
	}
	return nil
}

func createCustomers(db *database.DB, persons []dto.PersonDto, stores []models.Store, territories []models.SalesTerritory) ([]dto.CustomerDto, error) {
	svc := service.NewCustomerService(
		repository.NewCustomerRepository(db),
		repository.NewSalesOrderRepository(db),
	)

	var customers []dto.CustomerDto
	for i := range persons {
		if persons[i].PersonType != models.PersonTypeIndividual {
			continue
		}
		c, err := svc.Create(dto.CustomerCreateDto{
			PersonID:    &persons[i].BusinessEntityID,
			TerritoryID: &territories[i%len(territories)].TerritoryID,
		})
		if err != nil {
			return nil, err
		}
		customers = append(customers, *c)
	}
	for i := range stores {
		c, err := svc.Create(dto.CustomerCreateDto{
			StoreID:     &stores[i].StoreID,
			TerritoryID: &territories[i%len(territories)].TerritoryID,
		})
		if err != nil {
			return nil, err
		}
		customers = append(customers, *c)
	}
	return customers, nil
}

func createCatalog(db *database.DB) ([]dto.ProductDto, error) {
	categoryRepo := repository.NewCategoryRepository(db)
	subcategoryRepo := repository.NewSubcategoryRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	offerRepo := repository.NewSpecialOfferRepository(db)
	svc := service.NewProductService(
		repository.NewProductRepository(db),
		categoryRepo, subcategoryRepo, inventoryRepo,
	)

	offer := models.SpecialOffer{
		Description:  "No Discount",
		DiscountPct:  decimal.Zero,
		Rowguid:      uuid.NewString(),
		ModifiedDate: time.Now(),
	}
	if err := offerRepo.Add(&offer); err != nil {
		return nil, err
	}

	bikes := models.ProductCategory{Name: "Bikes", Rowguid: uuid.NewString(), ModifiedDate: time.Now()}
	if err := categoryRepo.Add(&bikes); err != nil {
		return nil, err
	}
	road := models.ProductSubcategory{
		ProductCategoryID: bikes.ProductCategoryID,
		Name:              "Road Bikes",
		Rowguid:           uuid.NewString(),
		ModifiedDate:      time.Now(),
	}
	if err := subcategoryRepo.Add(&road); err != nil {
		return nil, err
	}

	seed := []struct {
		name, number, color string
		listPrice           float64
	}{
		{"Road-150 Red, 62", "BK-R93R-62", "Red", 3578.27},
		{"Road-450 Red, 58", "BK-R68R-58", "Red", 1457.99},
		{"Road-650 Black, 52", "BK-R50B-52", "Black", 782.99},
	}

	var products []dto.ProductDto
	for _, row := range seed {
		p, err := svc.Create(dto.ProductCreateDto{
			Name:                 row.name,
			ProductNumber:        row.number,
			MakeFlag:             true,
			FinishedGoodsFlag:    true,
			Color:                row.color,
			SafetyStockLevel:     100,
			ReorderPoint:         75,
			ListPrice:            decimal.NewFromFloat(row.listPrice),
			ProductSubcategoryID: &road.ProductSubcategoryID,
		})
		if err != nil {
			return nil, err
		}
		inv := models.ProductInventory{
			ProductID:    p.ProductID,
			LocationID:   1,
			Quantity:     120,
			Rowguid:      uuid.NewString(),
			ModifiedDate: time.Now(),
		}
		if err := inventoryRepo.Add(&inv); err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, nil
}

func createOrders(db *database.DB, customers []dto.CustomerDto, persons []dto.PersonDto, products []dto.ProductDto) error {
	productRepo := repository.NewProductRepository(db)
	svc := service.NewSalesService(
		repository.NewSalesOrderRepository(db),
		repository.NewSalesOrderDetailRepository(db),
		productRepo,
		repository.NewCustomerRepository(db),
		repository.NewPersonRepository(db),
	)

	var salesPersonID *int64
	for i := range persons {
		if persons[i].PersonType == models.PersonTypeSalesPerson {
			salesPersonID = &persons[i].BusinessEntityID
			break
		}
	}

	for i, c := range customers {
		if i >= len(products) {
			break
		}
		_, err := svc.Create(dto.SalesOrderCreateDto{
			CustomerID:      c.CustomerID,
			SalesPersonID:   salesPersonID,
			TerritoryID:     c.TerritoryID,
			BillToAddressID: 1,
			ShipToAddressID: 1,
			ShipMethodID:    1,
			OnlineOrderFlag: salesPersonID == nil,
			DueDate:         time.Now().AddDate(0, 0, 12),
			Freight:         decimal.NewFromFloat(21.95),
			OrderDetails: []dto.SalesOrderDetailCreateDto{
				{ProductID: products[i].ProductID, OrderQty: 1 + i},
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}
