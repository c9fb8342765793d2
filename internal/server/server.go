package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cycleworks/salesdesk/internal/config"
	"github.com/cycleworks/salesdesk/internal/database"
	"github.com/cycleworks/salesdesk/internal/repository"
	"github.com/cycleworks/salesdesk/internal/service"
)

type Server struct {
	router    *gin.Engine
	db        *database.DB
	persons   *service.PersonService
	customers *service.CustomerService
	products  *service.ProductService
	sales     *service.SalesService
}

// NewServer wires the repositories and services and registers the routes
func NewServer(db *database.DB, cfg *config.Config) *Server {
	router := gin.Default()

	personRepo := repository.NewPersonRepository(db)
	emailRepo := repository.NewEmailAddressRepository(db)
	phoneRepo := repository.NewPersonPhoneRepository(db)
	contactAddrRepo := repository.NewBusinessEntityAddressRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	subcategoryRepo := repository.NewSubcategoryRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	orderRepo := repository.NewSalesOrderRepository(db)
	detailRepo := repository.NewSalesOrderDetailRepository(db)

	server := &Server{
		router:    router,
		db:        db,
		persons:   service.NewPersonService(personRepo, emailRepo, phoneRepo, contactAddrRepo, cfg.Paging),
		customers: service.NewCustomerService(customerRepo, orderRepo),
		products:  service.NewProductService(productRepo, categoryRepo, subcategoryRepo, inventoryRepo),
		sales:     service.NewSalesService(orderRepo, detailRepo, productRepo, customerRepo, personRepo),
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/health", s.healthCheck)

		people := api.Group("/people")
		{
			people.GET("", s.listPersons)
			people.GET("/paged", s.listPersonsPaged)
			people.GET("/search", s.searchPersons)
			people.GET("/type/:type", s.listPersonsByType)
			people.GET("/:id", s.getPerson)
			people.GET("/:id/details", s.getPersonDetails)
			people.POST("", s.createPerson)
			people.PUT("/:id", s.updatePerson)
			people.DELETE("/:id", s.deletePerson)
			people.GET("/:id/emails", s.listPersonEmails)
			people.POST("/:id/emails", s.addPersonEmail)
			people.DELETE("/:id/emails/:emailId", s.removePersonEmail)
			people.GET("/:id/phones", s.listPersonPhones)
			people.POST("/:id/phones", s.addPersonPhone)
			people.DELETE("/:id/phones/:typeId", s.removePersonPhone)
			people.GET("/:id/addresses", s.listPersonAddresses)
			people.POST("/:id/addresses", s.addPersonAddress)
			people.DELETE("/:id/addresses/:addressId", s.removePersonAddress)
		}

		customers := api.Group("/customers")
		{
			customers.GET("", s.listCustomers)
			customers.GET("/search", s.searchCustomers)
			customers.GET("/individuals", s.listIndividualCustomers)
			customers.GET("/stores", s.listStoreCustomers)
			customers.GET("/territory/:id", s.listCustomersByTerritory)
			customers.GET("/top", s.listTopCustomers)
			customers.GET("/account/:number", s.getCustomerByAccountNumber)
			customers.GET("/:id", s.getCustomer)
			customers.GET("/:id/summary", s.getCustomerSummary)
			customers.GET("/:id/orders", s.listCustomerOrders)
			customers.POST("", s.createCustomer)
			customers.PUT("/:id", s.updateCustomer)
			customers.DELETE("/:id", s.deleteCustomer)
		}

		products := api.Group("/products")
		{
			products.GET("", s.listProducts)
			products.GET("/search", s.searchProducts)
			products.GET("/active", s.listActiveProducts)
			products.GET("/discontinued", s.listDiscontinuedProducts)
			products.GET("/low-stock", s.listLowStockProducts)
			products.GET("/reorder", s.listProductsToReorder)
			products.GET("/price", s.listProductsByPriceRange)
			products.GET("/category/:id", s.listProductsByCategory)
			products.GET("/subcategory/:id", s.listProductsBySubcategory)
			products.GET("/:id", s.getProduct)
			products.GET("/:id/details", s.getProductDetails)
			products.GET("/:id/stock", s.getProductStock)
			products.PUT("/:id/stock", s.updateProductStock)
			products.POST("", s.createProduct)
			products.PUT("/:id", s.updateProduct)
			products.DELETE("/:id", s.deleteProduct)
			products.POST("/:id/discontinue", s.discontinueProduct)
			products.POST("/:id/reactivate", s.reactivateProduct)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", s.listCategories)
			categories.GET("/:id/subcategories", s.listSubcategories)
		}

		orders := api.Group("/orders")
		{
			orders.GET("", s.listOrders)
			orders.GET("/recent", s.listRecentOrders)
			orders.GET("/range", s.listOrdersByDateRange)
			orders.GET("/status/:status", s.listOrdersByStatus)
			orders.GET("/salesperson/:id", s.listOrdersBySalesPerson)
			orders.GET("/:id", s.getOrder)
			orders.GET("/:id/details", s.getOrderDetails)
			orders.POST("", s.createOrder)
			orders.PUT("/:id", s.updateOrder)
			orders.DELETE("/:id", s.deleteOrder)
			orders.POST("/:id/ship", s.shipOrder)
			orders.POST("/:id/cancel", s.cancelOrder)
			orders.POST("/:id/lines", s.addOrderLine)
			orders.PUT("/:id/lines/:lineId", s.updateOrderLine)
			orders.DELETE("/:id/lines/:lineId", s.removeOrderLine)
		}

		sales := api.Group("/sales")
		{
			sales.GET("/summary", s.getSalesSummary)
			sales.GET("/total", s.getTotalSales)
			sales.GET("/top-products", s.listTopSellingProducts)
			sales.GET("/performance", s.listSalesPersonPerformance)
			sales.GET("/monthly/:year", s.listMonthlySales)
		}
	}
}

// healthCheck endpoint for monitoring
func (s *Server) healthCheck(c *gin.Context) {
	if err := s.db.HealthCheck(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"error":  "database connection failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "salesdesk",
		"version": "0.1.0",
	})
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}

// respondError maps a service failure to a status code. A missing
// entity is 404, everything else 500.
func respondError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// respondRefusal reports a business-rule refusal as a conflict.
func respondRefusal(c *gin.Context, reason string) {
	c.JSON(http.StatusConflict, gin.H{"error": reason})
}

// pathID parses the named path segment as an identity. A false return
// means the 400 response has already been written.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// queryCount parses an optional count query parameter with a fallback.
func queryCount(c *gin.Context, fallback int) int {
	raw := c.Query("count")
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// queryDate parses an optional yyyy-mm-dd query parameter.
func queryDate(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
